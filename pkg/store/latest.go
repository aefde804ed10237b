package store

import (
	"context"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sprsquish/airplus/pkg/series"
)

type reading struct {
	ts  time.Time
	val float64
}

// Latest remembers the newest value of each metric per room and forwards
// every write to the wrapped client.
type Latest struct {
	next Client

	mu    sync.RWMutex
	rooms map[string]map[string]reading
}

func NewLatest(next Client) *Latest {
	return &Latest{
		next:  next,
		rooms: map[string]map[string]reading{},
	}
}

// SetBackend replaces the wrapped client. Call it before Init.
func (l *Latest) SetBackend(next Client) {
	l.next = next
}

func (l *Latest) Init() error {
	return l.next.Init()
}

func (l *Latest) Write(ctx context.Context, ts time.Time, name string, val any, tags map[string]string) {
	l.record(ts, name, val, tags)
	l.next.Write(ctx, ts, name, val, tags)
}

func (l *Latest) record(ts time.Time, name string, val any, tags map[string]string) {
	room := tags[RoomTag]
	if room == "" {
		return
	}
	v, ok := toFloat(val)
	if !ok {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	metrics, ok := l.rooms[room]
	if !ok {
		metrics = map[string]reading{}
		l.rooms[room] = metrics
	}
	if prev, ok := metrics[name]; ok && ts.Before(prev.ts) {
		return
	}
	metrics[name] = reading{ts: ts, val: v}
}

// Rooms lists the rooms seen so far, sorted.
func (l *Latest) Rooms() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rooms := make([]string, 0, len(l.rooms))
	for room := range l.rooms {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}

// Snapshot is the newest value of each metric recorded for a room. AsOf is
// the time of the newest value included.
type Snapshot struct {
	Room   string
	AsOf   time.Time
	Values map[string]float64
}

// Value returns the metric's value, nil when the room has none.
func (s Snapshot) Value(name string) *float64 {
	v, ok := s.Values[name]
	if !ok {
		return nil
	}
	return &v
}

// Room returns the newest readings for room, dropping any older than maxAge
// when maxAge is positive.
func (l *Latest) Room(room string, maxAge time.Duration, now time.Time) (Snapshot, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	metrics, ok := l.rooms[room]
	if !ok {
		return Snapshot{}, false
	}

	snap := Snapshot{Room: room, Values: make(map[string]float64, len(metrics))}
	for name, r := range metrics {
		if maxAge > 0 && now.Sub(r.ts) > maxAge {
			continue
		}
		snap.Values[name] = r.val
		if r.ts.After(snap.AsOf) {
			snap.AsOf = r.ts
		}
	}
	return snap, true
}

func (l *Latest) History(ctx context.Context, room string, window time.Duration) (series.Historic, error) {
	reader, ok := l.next.(HistoryReader)
	if !ok {
		return nil, ErrNoHistory
	}
	return reader.History(ctx, room, window)
}

func toFloat(val any) (float64, bool) {
	var f float64
	switch v := val.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
