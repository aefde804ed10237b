package color

import (
	"github.com/sprsquish/airplus/pkg/palette"
	"github.com/sprsquish/airplus/pkg/units"
)

// upper bounds in Fahrenheit, inclusive; anything above the last is hottest
var tempBreakpoints = [...]float64{0, 16, 32, 55, 65, 80, 90, 100}

// Temperature picks a color from a nine step cold-to-hot ramp. The value is
// expressed in u and normalized to Fahrenheit before bucketing.
func Temperature(v float64, u units.Unit, p palette.Palette) palette.Color {
	if !finite(v) {
		return p.Disabled()
	}

	ramp := [len(tempBreakpoints) + 1]palette.Color{
		p.Secondary(palette.Dark),
		p.Secondary(palette.Light),
		p.Info(palette.Main),
		p.Info(palette.Light),
		p.Success(palette.Light),
		p.Success(palette.Main),
		p.Warning(palette.Light),
		p.Error(palette.Light),
		p.Error(palette.Main),
	}

	f := units.ToFahrenheit(v, u)
	for i, upper := range tempBreakpoints {
		if f <= upper {
			return ramp[i]
		}
	}
	return ramp[len(ramp)-1]
}
