// Package dashboard composes the climate and room readiness cards from raw
// room readings.
package dashboard

import (
	"math"
	"strconv"
	"time"

	"github.com/sprsquish/airplus/pkg/color"
	"github.com/sprsquish/airplus/pkg/health"
	"github.com/sprsquish/airplus/pkg/palette"
	"github.com/sprsquish/airplus/pkg/units"
)

// Room is the latest set of readings for one room. Nil fields were not
// reported; a zero AsOf means the reading time is unknown.
type Room struct {
	Name     string    `json:"room"`
	AsOf     time.Time `json:"as_of"`
	TempF    *float64  `json:"temp_fahrenheit"`
	TempC    *float64  `json:"temp_celsius"`
	Humidity *float64  `json:"humidity"`
	Lux      *float64  `json:"brightness_lux"`
	PM25     *float64  `json:"pm25"`
	PM10     *float64  `json:"pm10"`
	CO2      *float64  `json:"co2"`
	TVOC     *float64  `json:"tvoc"`
}

func (r Room) Readings() health.Readings {
	return health.Readings{PM25: r.PM25, PM10: r.PM10, CO2: r.CO2, TVOC: r.TVOC}
}

type Dot struct {
	Name      string        `json:"name"`
	Value     *float64      `json:"value"`
	Formatted string        `json:"formatted"`
	Color     palette.Color `json:"color"`
}

type ClimateCard struct {
	Room                 string        `json:"room"`
	AsOf                 *time.Time    `json:"as_of"`
	Index                *int          `json:"index"`
	Label                health.Label  `json:"label"`
	Color                palette.Color `json:"color"`
	AQI                  *int          `json:"aqi"`
	AQICategory          string        `json:"aqi_category,omitempty"`
	Temperature          *float64      `json:"temperature"`
	TemperatureFormatted string        `json:"temperature_formatted"`
	TemperatureColor     palette.Color `json:"temperature_color"`
	HumidityFormatted    string        `json:"humidity_formatted"`
	Dots                 []Dot         `json:"dots"`
}

type ReadinessCard struct {
	Room                 string        `json:"room"`
	IsReady              bool          `json:"is_ready"`
	Explanation          string        `json:"explanation"`
	OutlineColor         palette.Color `json:"outline_color"`
	Index                *int          `json:"index"`
	Label                health.Label  `json:"label"`
	HealthColor          palette.Color `json:"health_color"`
	TemperatureFormatted string        `json:"temperature_formatted"`
	TemperatureColor     palette.Color `json:"temperature_color"`
	LuxFormatted         string        `json:"lux_formatted"`
	LuxColor             palette.Color `json:"lux_color"`
}

// Builder holds what the cards need besides the readings themselves.
type Builder struct {
	Scorer  *health.Scorer
	Palette palette.Palette
	Unit    units.Unit
}

func NewBuilder(p palette.Palette, u units.Unit) *Builder {
	return &Builder{Scorer: health.DefaultScorer(), Palette: p, Unit: u.Normalize()}
}

func (b *Builder) Climate(r Room) ClimateCard {
	index, ok := b.Scorer.Index(r.Readings())
	desc := health.Describe(index, ok, b.Palette)
	temp := units.HandleTemp(b.Unit, r.TempF, r.TempC)

	card := ClimateCard{
		Room:                 r.Name,
		Index:                optional(index, ok),
		Label:                desc.Label,
		Color:                desc.Color,
		Temperature:          temp.Temperature,
		TemperatureFormatted: temp.Formatted,
		TemperatureColor:     color.Temperature(units.OrNaN(temp.Temperature), b.Unit, b.Palette),
		HumidityFormatted:    units.FormatHumidity(r.Humidity),
		Dots: []Dot{
			b.dot("PM2.5", r.PM25, color.PMDomain),
			b.dot("PM10", r.PM10, color.PMDomain),
			b.dot("TVOC", r.TVOC, color.TVOCDomain),
			b.dot("CO2", r.CO2, color.CO2Domain),
		},
	}

	if !r.AsOf.IsZero() {
		asOf := r.AsOf
		card.AsOf = &asOf
	}
	if aqi, ok := health.PM25ToAQI(r.PM25); ok {
		card.AQI = &aqi
		card.AQICategory = health.AQICategory(aqi)
	}
	return card
}

func (b *Builder) Readiness(r Room) ReadinessCard {
	index, ok := b.Scorer.Index(r.Readings())
	desc := health.Describe(index, ok, b.Palette)
	temp := units.HandleTemp(b.Unit, r.TempF, r.TempC)

	verdict := health.Ready(health.Conditions{
		Index:       index,
		IndexOK:     ok,
		Temperature: units.OrNaN(temp.Temperature),
		Unit:        b.Unit,
		Lux:         units.OrNaN(r.Lux),
	})

	outline := b.Palette.Error(palette.Dark)
	if verdict.IsReady {
		outline = b.Palette.Success(palette.Main)
	}

	return ReadinessCard{
		Room:                 r.Name,
		IsReady:              verdict.IsReady,
		Explanation:          verdict.Explanation,
		OutlineColor:         outline,
		Index:                optional(index, ok),
		Label:                desc.Label,
		HealthColor:          desc.Color,
		TemperatureFormatted: temp.Formatted,
		TemperatureColor:     color.Temperature(units.OrNaN(temp.Temperature), b.Unit, b.Palette),
		LuxFormatted:         units.FormatLux(r.Lux),
		LuxColor:             color.Lux(units.OrNaN(r.Lux)),
	}
}

func (b *Builder) dot(name string, v *float64, d color.Domain) Dot {
	formatted := "--"
	if v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
		formatted = strconv.FormatFloat(units.RoundUpIfNeeded(*v), 'f', -1, 64)
	}
	return Dot{
		Name:      name,
		Value:     v,
		Formatted: formatted,
		Color:     d.Color(units.OrNaN(v), b.Palette),
	}
}

func optional(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}
