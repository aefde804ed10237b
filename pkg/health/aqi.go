package health

import "math"

type breakpoint struct {
	cLow float64
	cHi  float64
	iLow float64
	iHi  float64
}

// EPA PM2.5 breakpoints (2024 revision). A concentration belongs to the
// first entry whose next cLow it is below.
var pm25Breakpoints = []breakpoint{
	{0.0, 9.0, 0, 50},
	{9.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 125.4, 151, 200},
	{125.5, 225.4, 201, 300},
	{225.5, 325.4, 301, 500},
}

func (b breakpoint) run(c float64) int {
	ret := (b.iHi-b.iLow)/(b.cHi-b.cLow)*(c-b.cLow) + b.iLow
	return int(math.Round(ret))
}

// PM25ToAQI converts a PM2.5 concentration (µg/m³) to the US EPA AQI,
// capped at 500.
func PM25ToAQI(pm25 *float64) (int, bool) {
	if pm25 == nil || math.IsNaN(*pm25) {
		return 0, false
	}

	c := math.Max(0, math.Trunc(*pm25*10)/10)
	calc := pm25Breakpoints[len(pm25Breakpoints)-1]
	for i, bp := range pm25Breakpoints {
		if i+1 == len(pm25Breakpoints) || c < pm25Breakpoints[i+1].cLow {
			calc = bp
			break
		}
	}

	return min(500, calc.run(c)), true
}

// AQICategory names the EPA category of an AQI value.
func AQICategory(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}
