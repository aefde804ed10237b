package endpoint

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sprsquish/airplus/pkg/health"
	"github.com/sprsquish/airplus/pkg/units"
)

var (
	indexDesc = prometheus.NewDesc(
		"airplus_health_index",
		"Indoor health index, 0-100, 100 best.",
		[]string{"room"}, nil)
	scoreDesc = prometheus.NewDesc(
		"airplus_pollutant_score",
		"Normalized pollutant score, 0-100, 100 best.",
		[]string{"room", "pollutant"}, nil)
	readyDesc = prometheus.NewDesc(
		"airplus_room_ready",
		"1 when lighting, air quality and temperature are all in range.",
		[]string{"room"}, nil)
)

// Collector computes room scores at scrape time from the latest readings.
type Collector struct {
	rooms  Rooms
	maxAge time.Duration
	now    func() time.Time
	scorer *health.Scorer
}

func NewCollector(rooms Rooms, maxAge time.Duration, now func() time.Time) *Collector {
	return &Collector{rooms: rooms, maxAge: maxAge, now: now, scorer: health.DefaultScorer()}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- indexDesc
	ch <- scoreDesc
	ch <- readyDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	now := c.now()
	for _, name := range c.rooms.Rooms() {
		snap, ok := c.rooms.Room(name, c.maxAge, now)
		if !ok {
			continue
		}
		room := cardRoom(snap)
		readings := room.Readings()

		for p, v := range map[health.Pollutant]*float64{
			health.PM25: readings.PM25,
			health.PM10: readings.PM10,
			health.CO2:  readings.CO2,
			health.TVOC: readings.TVOC,
		} {
			if score, ok := c.scorer.Score(p, v); ok {
				ch <- prometheus.MustNewConstMetric(scoreDesc, prometheus.GaugeValue, float64(score), name, string(p))
			}
		}

		index, ok := c.scorer.Index(readings)
		if ok {
			ch <- prometheus.MustNewConstMetric(indexDesc, prometheus.GaugeValue, float64(index), name)
		}

		temp, unit := room.TempF, units.Fahrenheit
		if temp == nil {
			temp, unit = room.TempC, units.Celsius
		}
		verdict := health.Ready(health.Conditions{
			Index:       index,
			IndexOK:     ok,
			Temperature: units.OrNaN(temp),
			Unit:        unit,
			Lux:         units.OrNaN(room.Lux),
		})

		ready := 0.0
		if verdict.IsReady {
			ready = 1
		}
		ch <- prometheus.MustNewConstMetric(readyDesc, prometheus.GaugeValue, ready, name)
	}
}
