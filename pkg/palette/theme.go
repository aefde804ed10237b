package palette

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Tier struct {
	Light Color `yaml:"light" json:"light"`
	Main  Color `yaml:"main" json:"main"`
	Dark  Color `yaml:"dark" json:"dark"`
}

func (t Tier) tone(tone Tone) Color {
	switch tone {
	case Light:
		return t.Light
	case Dark:
		return t.Dark
	default:
		return t.Main
	}
}

type Text struct {
	Primary   Color `yaml:"primary" json:"primary"`
	Secondary Color `yaml:"secondary" json:"secondary"`
	Disabled  Color `yaml:"disabled" json:"disabled"`
}

type Background struct {
	Default Color `yaml:"default" json:"default"`
	Paper   Color `yaml:"paper" json:"paper"`
	Shadow  Color `yaml:"shadow" json:"shadow"`
}

// Theme is a host theme shaped like a material palette. It satisfies Palette.
type Theme struct {
	Success    Tier       `yaml:"success" json:"success"`
	Warning    Tier       `yaml:"warning" json:"warning"`
	Error      Tier       `yaml:"error" json:"error"`
	Info       Tier       `yaml:"info" json:"info"`
	Secondary  Tier       `yaml:"secondary" json:"secondary"`
	Text       Text       `yaml:"text" json:"text"`
	Background Background `yaml:"background" json:"background"`
}

// DefaultTheme returns the dark material palette the dashboard ships with.
func DefaultTheme() Theme {
	return Theme{
		Success:   Tier{Light: "#4caf50", Main: "#2e7d32", Dark: "#1b5e20"},
		Warning:   Tier{Light: "#ff9800", Main: "#ed6c02", Dark: "#e65100"},
		Error:     Tier{Light: "#ef5350", Main: "#d32f2f", Dark: "#c62828"},
		Info:      Tier{Light: "#03a9f4", Main: "#0288d1", Dark: "#01579b"},
		Secondary: Tier{Light: "#ba68c8", Main: "#9c27b0", Dark: "#7b1fa2"},
		Text: Text{
			Primary:   "#ffffff",
			Secondary: "rgba(255, 255, 255, 0.7)",
			Disabled:  "rgba(255, 255, 255, 0.5)",
		},
		Background: Background{Default: "#121212", Paper: "#1e1e1e", Shadow: "#000000"},
	}
}

// LoadTheme reads a YAML theme file. Keys missing from the file keep their
// default value.
func LoadTheme(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()

	return DecodeTheme(f)
}

func DecodeTheme(r io.Reader) (Theme, error) {
	theme := DefaultTheme()
	if err := yaml.NewDecoder(r).Decode(&theme); err != nil && err != io.EOF {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	return theme, nil
}

type themePalette struct{ t Theme }

// Palette adapts the theme to the Palette capability.
func (t Theme) Palette() Palette {
	return themePalette{t}
}

func (p themePalette) Success(t Tone) Color   { return p.t.Success.tone(t) }
func (p themePalette) Warning(t Tone) Color   { return p.t.Warning.tone(t) }
func (p themePalette) Error(t Tone) Color     { return p.t.Error.tone(t) }
func (p themePalette) Info(t Tone) Color      { return p.t.Info.tone(t) }
func (p themePalette) Secondary(t Tone) Color { return p.t.Secondary.tone(t) }
func (p themePalette) Disabled() Color        { return p.t.Text.Disabled }
