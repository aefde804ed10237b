// Package health turns pollutant readings into a bounded indoor health index
// and derived labels.
package health

import (
	"math"
	"strings"
)

type Pollutant string

const (
	PM25 Pollutant = "pm25"
	PM10 Pollutant = "pm10"
	CO2  Pollutant = "co2"
	TVOC Pollutant = "tvoc"
)

// Family groups pollutants sharing a measurement range.
type Family string

const (
	FamilyPM   Family = "pm"
	FamilyTVOC Family = "tvoc"
	FamilyCO2  Family = "co2"
)

func (p Pollutant) Family() Family {
	switch {
	case strings.HasPrefix(string(p), "pm"):
		return FamilyPM
	case p == CO2:
		return FamilyCO2
	case p == TVOC:
		return FamilyTVOC
	default:
		return FamilyPM
	}
}

// Threshold is the upper bound of the "good" range for one pollutant. Bad is
// informational and does not take part in scoring.
type Threshold struct {
	Good float64
	Bad  *float64
}

type Thresholds map[Pollutant]Threshold

type Limit struct {
	Min float64
	Max float64
}

type Limits map[Family]Limit

func bad(v float64) *float64 { return &v }

// DefaultThresholds returns a fresh copy of the stock threshold table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PM25: {Good: 8, Bad: bad(55)},
		PM10: {Good: 15, Bad: bad(150)},
		CO2:  {Good: 800, Bad: bad(2000)},
		TVOC: {Good: 0.3, Bad: bad(1.0)},
	}
}

// DefaultLimits returns a fresh copy of the sensor range table.
func DefaultLimits() Limits {
	return Limits{
		FamilyPM:   {Min: 0, Max: 1000},
		FamilyTVOC: {Min: 0, Max: 1000},
		FamilyCO2:  {Min: 0, Max: 5000},
	}
}

// Scorer scores pollutants against its tables. The tables are never mutated.
type Scorer struct {
	thresholds Thresholds
	limits     Limits
}

func NewScorer(thresholds Thresholds, limits Limits) *Scorer {
	return &Scorer{thresholds: thresholds, limits: limits}
}

var defaultScorer = NewScorer(DefaultThresholds(), DefaultLimits())

func DefaultScorer() *Scorer {
	return defaultScorer
}

func (s *Scorer) limit(p Pollutant) Limit {
	if l, ok := s.limits[p.Family()]; ok {
		return l
	}
	return s.limits[FamilyPM]
}

// Score maps a raw reading to 0-100, 100 being best. A missing reading is
// reported as not ok so callers leave it out of aggregation.
func (s *Scorer) Score(p Pollutant, v *float64) (int, bool) {
	if v == nil || math.IsNaN(*v) {
		return 0, false
	}

	l := s.limit(p)
	good := l.Min
	if th, ok := s.thresholds[p]; ok {
		good = th.Good
	}

	switch {
	case *v <= good:
		return 100, true
	case *v >= l.Max:
		return 0, true
	}

	ratio := (*v - good) / (l.Max - good)
	score := int(math.Round(100 * (1 - ratio)))
	return clamp(score), true
}

func clamp(score int) int {
	return max(0, min(100, score))
}
