package color

import "github.com/sprsquish/airplus/pkg/palette"

const (
	LuxMin = 7
	LuxMax = 30000
)

// dim to bright
var luxRamp = [10]palette.Color{
	"#1a1a1a",
	"#2e2e2e",
	"#424242",
	"#575757",
	"#6b6b6b",
	"#808080",
	"#999999",
	"#b3b3b3",
	"#d9d9d9",
	"#ffffff",
}

// LuxRamp returns a copy of the grayscale ramp used by Lux.
func LuxRamp() [10]palette.Color {
	return luxRamp
}

func Lux(v float64) palette.Color {
	switch {
	case !finite(v) || v <= LuxMin:
		return luxRamp[0]
	case v >= LuxMax:
		return luxRamp[len(luxRamp)-1]
	}

	t := (v - LuxMin) / (LuxMax - LuxMin)
	return luxRamp[bucket(t, len(luxRamp))]
}
