package store

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryQuery(t *testing.T) {
	q := historyQuery("home", "office", 6*time.Hour, 5*time.Minute, []string{"pm25", "co2"})

	assert.Contains(t, q, `from(bucket: "home")`)
	assert.Contains(t, q, `range(start: -21600s)`)
	assert.Contains(t, q, `r.room == "office"`)
	assert.Contains(t, q, `set: ["pm25", "co2"]`)
	assert.Contains(t, q, `aggregateWindow(every: 300s, fn: mean, createEmpty: false)`)
	assert.Contains(t, q, `pivot(rowKey: ["_time"], columnKey: ["_measurement"], valueColumn: "_value")`)
}

func TestSampleFromValues(t *testing.T) {
	ts := time.Unix(1760000000, 0)
	s := sampleFromValues(ts, map[string]any{
		"_time":  ts,
		"room":   "office",
		"co2":    612.5,
		"pm25":   nil,
		"tvoc":   0.12,
		"ignore": 1.0,
	}, []string{"pm25", "pm10", "co2", "tvoc"})

	assert.True(t, s.HasTimestamp)
	assert.Equal(t, float64(1760000000), s.Timestamp)

	require.Len(t, s.Metrics, 3)
	assert.Equal(t, "pm25", s.Metrics[0].Name)
	assert.Nil(t, s.Metrics[0].Value)
	assert.Equal(t, "co2", s.Metrics[1].Name)
	assert.Equal(t, 612.5, *s.Metrics[1].Value)
	assert.Equal(t, "tvoc", s.Metrics[2].Name)
}

func TestInfluxInitRequiresConfig(t *testing.T) {
	log := zerolog.Nop()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c := NewInfluxClient(flags, &log)

	assert.Error(t, c.Init())

	require.NoError(t, flags.Parse([]string{
		"--influxdb.dest=http://localhost:8086",
		"--influxdb.bucket=home",
		"--influxdb.token=t",
		"--influxdb.org=o",
	}))
	require.NoError(t, c.Init())
	c.Close()

	assert.Equal(t, defaultHistoryMetrics, c.metrics)
}
