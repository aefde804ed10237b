package looper

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprsquish/airplus/pkg/store"
)

func TestPurpleAirPoll(t *testing.T) {
	u := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json", r.URL.Path)
		fmt.Fprint(w, `{"DateTime":"2026/10/19T12:00:00z","pm2_5_atm":3.2,"pm10_0_atm":5.9,"current_temp_f":74,"current_humidity":38,"pressure":1012.4}`)
	})

	l := setup(t, NewPurpleAir, "--dev.host="+u.Host, "--dev.room=office")
	require.NoError(t, l.Init())

	rec := &recorder{}
	require.NoError(t, l.Poll(context.Background(), rec))

	assert.Equal(t, []string{"humidity", "pm10", "pm25", "temp_f"}, rec.names())
	got := rec.byName()
	assert.Equal(t, 3.2, got["pm25"].val)
	assert.Equal(t, "office", got["pm25"].tags[store.RoomTag])
}

func TestPurpleAirMissingDateTime(t *testing.T) {
	u := serve(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"pm2_5_atm":3.2}`)
	})

	l := setup(t, NewPurpleAir, "--dev.host="+u.Host, "--dev.room=office")
	require.NoError(t, l.Init())

	rec := &recorder{}
	assert.Error(t, l.Poll(context.Background(), rec))
	assert.Empty(t, rec.writes)
}

func TestPurpleAirInitRequiresRoom(t *testing.T) {
	l := setup(t, NewPurpleAir, "--dev.host=10.0.0.5")
	assert.Error(t, l.Init())
}
