package store

import (
	"context"
	"sync"
	"time"
)

type write struct {
	ts   time.Time
	name string
	val  any
	tags map[string]string
}

// recorder is a Client that keeps every write.
type recorder struct {
	mu      sync.Mutex
	writes  []write
	initErr error
}

func (r *recorder) Init() error { return r.initErr }

func (r *recorder) Write(ctx context.Context, ts time.Time, name string, val any, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, write{ts, name, val, tags})
}
