package health

import (
	"fmt"
	"math"
	"strings"

	"github.com/sprsquish/airplus/pkg/units"
)

const (
	MinLux       = 300
	MinReadyIdx  = 75
	MinComfortF  = 68
	MaxComfortF  = 76
	readyMessage = "Room conditions are optimal."
)

type Conditions struct {
	Index       int
	IndexOK     bool
	Temperature float64
	Unit        units.Unit
	Lux         float64
}

type Verdict struct {
	IsReady     bool   `json:"is_ready"`
	Explanation string `json:"explanation"`
}

// Ready checks lighting, air quality and temperature, in that order. A
// missing value fails its factor.
func Ready(c Conditions) Verdict {
	var failing []string

	if math.IsNaN(c.Lux) || c.Lux < MinLux {
		failing = append(failing, "Lighting")
	}
	if !c.IndexOK || c.Index < MinReadyIdx {
		failing = append(failing, "Air Quality")
	}

	f := units.ToFahrenheit(c.Temperature, c.Unit)
	if math.IsNaN(f) || f < MinComfortF || f > MaxComfortF {
		failing = append(failing, "Temperature")
	}

	if len(failing) == 0 {
		return Verdict{IsReady: true, Explanation: readyMessage}
	}
	return Verdict{
		Explanation: fmt.Sprintf("Check %s: outside the comfortable range.", strings.Join(failing, ", ")),
	}
}
