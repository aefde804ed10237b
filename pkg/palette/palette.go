// Package palette describes the narrow set of display colors the scoring
// packages pick from. Colors are opaque tokens owned by the host theme.
package palette

// Color is an opaque display token, usually a CSS color string.
type Color string

type Tone int

const (
	Light Tone = iota
	Main
	Dark
)

// Palette exposes the semantic color tiers used by the color mappers and
// health descriptors.
type Palette interface {
	Success(Tone) Color
	Warning(Tone) Color
	Error(Tone) Color
	Info(Tone) Color
	Secondary(Tone) Color
	Disabled() Color
}
