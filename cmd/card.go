package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sprsquish/airplus/pkg/dashboard"
	"github.com/sprsquish/airplus/pkg/palette"
	"github.com/sprsquish/airplus/pkg/units"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Render the climate and readiness cards for a set of readings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderCards(cmd.Flags(), cmd.OutOrStdout())
	},
}

// reading flags, keyed by flag name
var cardReadings = []string{"pm25", "pm10", "co2", "tvoc", "temp-f", "temp-c", "humidity", "lux"}

func init() {
	addCardFlags(cardCmd.Flags())
}

func addCardFlags(flags *pflag.FlagSet) {
	flags.String("room", "room", "Room name")
	flags.String("unit", string(units.Fahrenheit), "Display unit (f or c)")
	flags.String("theme", "", "Path to a YAML theme")
	flags.Bool("json", false, "Print the cards as JSON")
	for _, name := range cardReadings {
		flags.Float64(name, 0, fmt.Sprintf("%s reading", name))
	}
}

func renderCards(flags *pflag.FlagSet, out io.Writer) error {
	room, err := roomFromFlags(flags)
	if err != nil {
		return err
	}

	theme := palette.DefaultTheme()
	if path, _ := flags.GetString("theme"); path != "" {
		if theme, err = palette.LoadTheme(path); err != nil {
			return err
		}
	}

	unit, _ := flags.GetString("unit")
	b := dashboard.NewBuilder(theme.Palette(), units.Unit(unit))
	climate, readiness := b.Climate(room), b.Readiness(room)

	if asJSON, _ := flags.GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Climate   dashboard.ClimateCard   `json:"climate"`
			Readiness dashboard.ReadinessCard `json:"readiness"`
		}{climate, readiness})
	}

	_, err = fmt.Fprintf(out, "%s\n%s\n", dashboard.RenderClimate(climate), dashboard.RenderReadiness(readiness))
	return err
}

// roomFromFlags leaves readings whose flag was not given as nil.
func roomFromFlags(flags *pflag.FlagSet) (dashboard.Room, error) {
	name, _ := flags.GetString("room")
	room := dashboard.Room{Name: name}

	fields := map[string]**float64{
		"pm25":     &room.PM25,
		"pm10":     &room.PM10,
		"co2":      &room.CO2,
		"tvoc":     &room.TVOC,
		"temp-f":   &room.TempF,
		"temp-c":   &room.TempC,
		"humidity": &room.Humidity,
		"lux":      &room.Lux,
	}

	for _, name := range cardReadings {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			return room, fmt.Errorf("flag %s: %w", name, err)
		}
		*fields[name] = &v
	}
	return room, nil
}
