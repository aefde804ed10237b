// Package color maps sensor values to display colors.
package color

import (
	"math"

	"github.com/sprsquish/airplus/pkg/palette"
)

// Domain bounds a linear severity scale.
type Domain struct {
	Min float64
	Max float64
}

var (
	PMDomain   = Domain{Min: 0, Max: 1000}
	TVOCDomain = Domain{Min: 0, Max: 1000}
	CO2Domain  = Domain{Min: 400, Max: 5000}
)

func (d Domain) Color(v float64, p palette.Palette) palette.Color {
	return For(v, d.Min, d.Max, p)
}

// For buckets v into four equal bins between min and max, ascending in
// severity from success to error.
func For(v, min, max float64, p palette.Palette) palette.Color {
	if !finite(v) {
		return p.Disabled()
	}

	var t float64
	switch {
	case min == max && v <= min:
		t = 0
	case min == max:
		t = 1
	default:
		t = clamp((v-min)/(max-min), 0, 1)
	}

	ramp := [4]palette.Color{
		p.Success(palette.Main),
		p.Warning(palette.Light),
		p.Warning(palette.Dark),
		p.Error(palette.Main),
	}
	return ramp[bucket(t, len(ramp))]
}

// bucket returns floor(t*n) capped to the last index.
func bucket(t float64, n int) int {
	i := int(math.Floor(t * float64(n)))
	if i > n-1 {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
