package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprsquish/airplus/pkg/series"
)

var t0 = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestLatestRecordsPerRoom(t *testing.T) {
	rec := &recorder{}
	l := NewLatest(rec)
	ctx := context.Background()

	office := map[string]string{RoomTag: "office", "device": "awair"}
	l.Write(ctx, t0, MetricCO2, 612.0, office)
	l.Write(ctx, t0, MetricPM25, float32(3.5), office)
	l.Write(ctx, t0, MetricLux, "410", office)
	l.Write(ctx, t0, MetricTempC, 21, map[string]string{RoomTag: "bedroom"})
	l.Write(ctx, t0, MetricCO2, 700.0, map[string]string{"device": "untagged"})

	assert.Len(t, rec.writes, 5)
	assert.Equal(t, []string{"bedroom", "office"}, l.Rooms())

	room, ok := l.Room("office", 0, t0)
	require.True(t, ok)
	assert.Equal(t, "office", room.Room)
	assert.Equal(t, t0, room.AsOf)
	require.NotNil(t, room.Value(MetricCO2))
	assert.Equal(t, 612.0, *room.Value(MetricCO2))
	require.NotNil(t, room.Value(MetricPM25))
	assert.Equal(t, 3.5, *room.Value(MetricPM25))
	require.NotNil(t, room.Value(MetricLux))
	assert.Equal(t, 410.0, *room.Value(MetricLux))
	assert.Nil(t, room.Value(MetricPM10))
	assert.Nil(t, room.Value(MetricTempC))

	_, ok = l.Room("garage", 0, t0)
	assert.False(t, ok)
}

func TestLatestKeepsNewest(t *testing.T) {
	l := NewLatest(&recorder{})
	ctx := context.Background()
	tags := map[string]string{RoomTag: "office"}

	l.Write(ctx, t0, MetricCO2, 600.0, tags)
	l.Write(ctx, t0.Add(-time.Minute), MetricCO2, 900.0, tags)
	l.Write(ctx, t0.Add(time.Minute), MetricCO2, 650.0, tags)

	room, _ := l.Room("office", 0, t0)
	assert.Equal(t, 650.0, *room.Value(MetricCO2))
	assert.Equal(t, t0.Add(time.Minute), room.AsOf)
}

func TestLatestIgnoresNonNumeric(t *testing.T) {
	l := NewLatest(&recorder{})
	tags := map[string]string{RoomTag: "office"}

	l.Write(context.Background(), t0, MetricCO2, "n/a", tags)
	l.Write(context.Background(), t0, MetricPM25, nil, tags)

	assert.Empty(t, l.Rooms())
}

func TestLatestMaxAge(t *testing.T) {
	l := NewLatest(&recorder{})
	tags := map[string]string{RoomTag: "office"}

	l.Write(context.Background(), t0, MetricCO2, 600.0, tags)
	l.Write(context.Background(), t0.Add(20*time.Minute), MetricLux, 300.0, tags)

	room, ok := l.Room("office", 15*time.Minute, t0.Add(25*time.Minute))
	require.True(t, ok)
	assert.Nil(t, room.Value(MetricCO2))
	assert.NotNil(t, room.Value(MetricLux))
	assert.Equal(t, t0.Add(20*time.Minute), room.AsOf)

	room, ok = l.Room("office", 15*time.Minute, t0.Add(time.Hour))
	require.True(t, ok)
	assert.Empty(t, room.Values)
	assert.True(t, room.AsOf.IsZero())
}

type historyRecorder struct {
	recorder
	rows series.Historic
}

func (h *historyRecorder) History(ctx context.Context, room string, window time.Duration) (series.Historic, error) {
	return h.rows, nil
}

func TestLatestHistory(t *testing.T) {
	_, err := NewLatest(&recorder{}).History(context.Background(), "office", time.Hour)
	assert.ErrorIs(t, err, ErrNoHistory)

	rows := series.Historic{series.NewSample(0)}
	got, err := NewLatest(&historyRecorder{rows: rows}).History(context.Background(), "office", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestLatestInit(t *testing.T) {
	boom := errors.New("boom")
	assert.ErrorIs(t, NewLatest(&recorder{initErr: boom}).Init(), boom)

	log := zerolog.Nop()
	assert.NoError(t, NewLatest(NewLogStore(&log)).Init())
}

func TestLatestSetBackend(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	l := NewLatest(first)
	l.SetBackend(second)

	l.Write(context.Background(), t0, MetricCO2, 600.0, map[string]string{RoomTag: "office"})

	assert.Empty(t, first.writes)
	assert.Len(t, second.writes, 1)
}
