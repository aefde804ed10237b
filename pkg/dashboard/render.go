package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sprsquish/airplus/pkg/palette"
)

const asOfFormat = "Jan 2 15:04"

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

func fg(c palette.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
}

func indexText(index *int) string {
	if index == nil {
		return "--"
	}
	return fmt.Sprint(*index)
}

// RenderClimate draws the climate card for a terminal.
func RenderClimate(c ClimateCard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(c.Room))
	fmt.Fprintf(&b, "%s %s\n",
		fg(c.Color).Bold(true).Render(indexText(c.Index)),
		fg(c.Color).Render(string(c.Label)))
	if c.AsOf != nil {
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render("As of "+c.AsOf.Format(asOfFormat)))
	}
	if c.AQI != nil {
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf("AQI %d %s", *c.AQI, c.AQICategory)))
	}

	fmt.Fprintf(&b, "%s %s\n",
		fg(c.TemperatureColor).Bold(true).Render(c.TemperatureFormatted),
		mutedStyle.Italic(true).Render(c.HumidityFormatted))

	dots := make([]string, 0, len(c.Dots))
	for _, d := range c.Dots {
		dots = append(dots, fmt.Sprintf("%s %s %s", fg(d.Color).Render("●"), mutedStyle.Render(d.Name), d.Formatted))
	}
	b.WriteString(strings.Join(dots, "  "))

	return boxStyle.Render(b.String())
}

// RenderReadiness draws the readiness card for a terminal.
func RenderReadiness(c ReadinessCard) string {
	status := "Unready"
	if c.IsReady {
		status = "Ready"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(c.Room), fg(c.OutlineColor).Bold(true).Render(status))
	fmt.Fprintf(&b, "%s\n", c.Explanation)
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s",
		mutedStyle.Render("Air"), fg(c.HealthColor).Bold(true).Render(indexText(c.Index)),
		mutedStyle.Render("Temp"), fg(c.TemperatureColor).Bold(true).Render(c.TemperatureFormatted),
		mutedStyle.Render("Light"), fg(c.LuxColor).Bold(true).Render(c.LuxFormatted))

	return boxStyle.BorderForeground(lipgloss.Color(string(c.OutlineColor))).Render(b.String())
}
