package health

import "github.com/sprsquish/airplus/pkg/palette"

type Label string

const (
	Unknown   Label = "unknown"
	VeryPoor  Label = "very poor"
	Poor      Label = "poor"
	Fair      Label = "fair"
	Good      Label = "good"
	Excellent Label = "excellent"
)

type Descriptor struct {
	Label Label         `json:"label"`
	Color palette.Color `json:"color"`
}

var bands = []struct {
	floor int
	label Label
	color func(palette.Palette) palette.Color
}{
	{90, Excellent, func(p palette.Palette) palette.Color { return p.Success(palette.Main) }},
	{75, Good, func(p palette.Palette) palette.Color { return p.Success(palette.Light) }},
	{60, Fair, func(p palette.Palette) palette.Color { return p.Warning(palette.Light) }},
	{40, Poor, func(p palette.Palette) palette.Color { return p.Error(palette.Light) }},
}

// Describe classifies an index into a label and its palette color.
func Describe(index int, ok bool, p palette.Palette) Descriptor {
	if !ok {
		return Descriptor{Label: Unknown, Color: p.Info(palette.Light)}
	}

	for _, b := range bands {
		if index >= b.floor {
			return Descriptor{Label: b.label, Color: b.color(p)}
		}
	}
	return Descriptor{Label: VeryPoor, Color: p.Error(palette.Main)}
}
