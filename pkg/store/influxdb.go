package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/sprsquish/airplus/pkg/series"
)

var defaultHistoryMetrics = []string{MetricPM25, MetricPM10, MetricCO2, MetricTVOC, MetricHumidity}

type InfluxClient struct {
	logger *zerolog.Logger

	dest    string
	bucket  string
	token   string
	org     string
	every   time.Duration
	metrics []string

	client influxdb2.Client
	writer api.WriteAPIBlocking
	reader api.QueryAPI
}

func NewInfluxClient(flags *pflag.FlagSet, logger *zerolog.Logger) *InfluxClient {
	modLog := logger.With().Str("store", "influxdb").Logger()
	c := &InfluxClient{
		logger: &modLog,
	}

	flags.StringVar(&c.dest, "influxdb.dest", "", "database addr")
	flags.StringVar(&c.bucket, "influxdb.bucket", "", "database")
	flags.StringVar(&c.token, "influxdb.token", "", "auth token")
	flags.StringVar(&c.org, "influxdb.org", "", "database org")
	flags.DurationVar(&c.every, "influxdb.every", 5*time.Minute, "history aggregation window")
	flags.StringSliceVar(&c.metrics, "influxdb.historyMetrics", defaultHistoryMetrics, "metrics charted by the history endpoint, in order")

	return c
}

func (i *InfluxClient) Init() error {
	if i.dest == "" || i.token == "" || i.org == "" || i.bucket == "" {
		return errors.New("influxdb: dest, token, org and bucket are required")
	}

	i.client = influxdb2.NewClient(i.dest, i.token)
	i.writer = i.client.WriteAPIBlocking(i.org, i.bucket)
	i.reader = i.client.QueryAPI(i.org)
	return nil
}

func (i *InfluxClient) Close() {
	if i.client != nil {
		i.client.Close()
	}
}

func (i *InfluxClient) Write(ctx context.Context, ts time.Time, name string, val any, tags map[string]string) {
	pointVal := map[string]any{"value": val}
	point := influxdb2.NewPoint(name, tags, pointVal, ts)

	i.logger.Debug().
		Time("ts", ts).
		Str("name", name).
		Interface("val", val).
		Interface("tags", tags).
		Msg("write")

	if err := i.writer.WritePoint(ctx, point); err != nil {
		i.logger.Error().Err(err).Msg("write error")
	}
}

func (i *InfluxClient) History(ctx context.Context, room string, window time.Duration) (series.Historic, error) {
	q := historyQuery(i.bucket, room, window, i.every, i.metrics)
	i.logger.Debug().Str("query", q).Msg("history")

	result, err := i.reader.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("history query: %w", err)
	}
	defer result.Close()

	var rows series.Historic
	for result.Next() {
		rec := result.Record()
		rows = append(rows, sampleFromValues(rec.Time(), rec.Values(), i.metrics))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("history read: %w", err)
	}
	return rows, nil
}

// historyQuery averages each metric per window and pivots the metrics into
// one row per timestamp.
func historyQuery(bucket, room string, window, every time.Duration, metrics []string) string {
	quoted := make([]string, len(metrics))
	for n, m := range metrics {
		quoted[n] = fmt.Sprintf("%q", m)
	}

	return fmt.Sprintf(`from(bucket: %q)
  |> range(start: -%s)
  |> filter(fn: (r) => r.%s == %q and r._field == "value")
  |> filter(fn: (r) => contains(value: r._measurement, set: [%s]))
  |> aggregateWindow(every: %s, fn: mean, createEmpty: false)
  |> group(columns: [%q])
  |> pivot(rowKey: ["_time"], columnKey: ["_measurement"], valueColumn: "_value")
  |> sort(columns: ["_time"])`,
		bucket, fluxDuration(window), RoomTag, room, strings.Join(quoted, ", "), fluxDuration(every), RoomTag)
}

func fluxDuration(d time.Duration) string {
	return fmt.Sprintf("%ds", max(1, int64(d/time.Second)))
}

// sampleFromValues builds a history row with metrics in the given order.
// Metrics absent from the row are left out, nil values stay as nulls.
func sampleFromValues(ts time.Time, values map[string]any, metrics []string) *series.Sample {
	s := series.NewSample(ts.Unix())
	for _, m := range metrics {
		raw, ok := values[m]
		if !ok {
			continue
		}
		v, ok := toFloat(raw)
		if !ok {
			s.Set(m, nil)
			continue
		}
		s.Set(m, &v)
	}
	return s
}
