package units

// Unit is the temperature scale a caller displays values in.
type Unit string

const (
	Fahrenheit Unit = "f"
	Celsius    Unit = "c"
)

// Normalize maps anything other than Celsius to Fahrenheit.
func (u Unit) Normalize() Unit {
	if u == Celsius || u == "C" {
		return Celsius
	}
	return Fahrenheit
}

func CToF(c float64) float64 {
	return c*9/5 + 32
}

func FToC(f float64) float64 {
	return (f - 32) * 5 / 9
}

// ToFahrenheit converts v, expressed in u, to Fahrenheit.
func ToFahrenheit(v float64, u Unit) float64 {
	if u.Normalize() == Fahrenheit {
		return v
	}
	return CToF(v)
}
