package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const missing = "--"

// RoundUpIfNeeded ceils fractional values so a displayed reading is never
// lower than the measured one. Non-finite values pass through untouched.
func RoundUpIfNeeded(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	// adding zero turns the -0 that Ceil yields for (-1, 0) into 0
	return math.Ceil(v) + 0
}

// Round rounds half up, the way browsers round display values.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

func FormatLux(v *float64) string {
	if !present(v) {
		return missing
	}

	lux := *v
	if lux < 1000 {
		return strconv.FormatFloat(Round(lux), 'f', 0, 64)
	}

	k := lux / 1000
	if k >= 10 {
		return strconv.FormatFloat(Round(k), 'f', 0, 64) + "k"
	}
	return strings.TrimSuffix(strconv.FormatFloat(k, 'f', 1, 64), ".0") + "k"
}

func FormatHumidity(v *float64) string {
	if !present(v) {
		return ""
	}
	return formatNumber(RoundUpIfNeeded(*v)) + "% RH"
}

type Temp struct {
	Temperature *float64 `json:"temperature"`
	Formatted   string   `json:"temperature_formatted"`
}

// HandleTemp picks the reading already expressed in u and only converts the
// other one when it is missing.
func HandleTemp(u Unit, fahrenheit, celsius *float64) Temp {
	u = u.Normalize()

	var val *float64
	switch {
	case u == Fahrenheit && present(fahrenheit):
		val = fahrenheit
	case u == Fahrenheit && present(celsius):
		f := CToF(*celsius)
		val = &f
	case u == Celsius && present(celsius):
		val = celsius
	case u == Celsius && present(fahrenheit):
		c := FToC(*fahrenheit)
		val = &c
	}

	if val == nil {
		return Temp{Formatted: missing}
	}

	t := *val
	return Temp{
		Temperature: &t,
		Formatted:   fmt.Sprintf("%s°%s", formatNumber(RoundUpIfNeeded(t)), u),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func present(v *float64) bool {
	return v != nil && finite(*v)
}

// OrNaN unwraps an optional reading, mapping a missing one to NaN.
func OrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
