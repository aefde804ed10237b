package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sprsquish/airplus/pkg/series"
)

// Metric names written by the pollers.
const (
	MetricPM25     = "pm25"
	MetricPM10     = "pm10"
	MetricCO2      = "co2"
	MetricTVOC     = "tvoc"
	MetricTempC    = "temp_c"
	MetricTempF    = "temp_f"
	MetricHumidity = "humidity"
	MetricLux      = "lux"
)

// RoomTag groups readings from every device in one room.
const RoomTag = "room"

var ErrNoHistory = errors.New("store has no history")

type Client interface {
	Init() error
	Write(context.Context, time.Time, string, any, map[string]string)
}

// HistoryReader returns a room's samples for the trailing window, oldest
// first.
type HistoryReader interface {
	History(ctx context.Context, room string, window time.Duration) (series.Historic, error)
}

type LogClient struct {
	logger *zerolog.Logger
}

func NewLogStore(log *zerolog.Logger) *LogClient {
	storeLog := log.With().Str("store", "log").Logger()
	return &LogClient{&storeLog}
}

func (s *LogClient) Init() error { return nil }

func (s *LogClient) Write(ctx context.Context, ts time.Time, name string, val any, tags map[string]string) {
	s.logger.Info().
		Time("ts", ts).
		Str("name", name).
		Interface("val", val).
		Interface("tags", tags).
		Msg("store")
}
