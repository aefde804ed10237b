package looper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	hm "github.com/sprsquish/airplus/pkg"
)

type write struct {
	ts   time.Time
	name string
	val  any
	tags map[string]string
}

type recorder struct {
	mu     sync.Mutex
	writes []write
}

func (r *recorder) Init() error { return nil }

func (r *recorder) Write(ctx context.Context, ts time.Time, name string, val any, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, write{ts, name, val, tags})
}

func (r *recorder) byName() map[string]write {
	out := map[string]write{}
	for _, w := range r.writes {
		out[w.name] = w
	}
	return out
}

func (r *recorder) names() []string {
	var names []string
	for _, w := range r.writes {
		names = append(names, w.name)
	}
	sort.Strings(names)
	return names
}

// setup builds a looper from its factory and parses args into its flags.
func setup(t *testing.T, factory hm.LooperFactory, args ...string) hm.Looper {
	t.Helper()
	log := zerolog.Nop()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	l := factory("dev", flags, &log, hm.NewHttpClient())
	require.NoError(t, flags.Parse(args))
	return l
}

func serve(t *testing.T, h http.HandlerFunc) *url.URL {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return u
}
