package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	hm "github.com/sprsquish/airplus/pkg"
	"github.com/sprsquish/airplus/pkg/dashboard"
	"github.com/sprsquish/airplus/pkg/palette"
	"github.com/sprsquish/airplus/pkg/series"
	"github.com/sprsquish/airplus/pkg/store"
	"github.com/sprsquish/airplus/pkg/units"
)

// Rooms is the source of current room readings.
type Rooms interface {
	Rooms() []string
	Room(name string, maxAge time.Duration, now time.Time) (store.Snapshot, bool)
}

// cardRoom maps a store snapshot onto the card input.
func cardRoom(s store.Snapshot) dashboard.Room {
	return dashboard.Room{
		Name:     s.Room,
		AsOf:     s.AsOf,
		TempF:    s.Value(store.MetricTempF),
		TempC:    s.Value(store.MetricTempC),
		Humidity: s.Value(store.MetricHumidity),
		Lux:      s.Value(store.MetricLux),
		PM25:     s.Value(store.MetricPM25),
		PM10:     s.Value(store.MetricPM10),
		CO2:      s.Value(store.MetricCO2),
		TVOC:     s.Value(store.MetricTVOC),
	}
}

// Dashboard serves the climate and readiness cards, chart series and
// Prometheus metrics for every known room.
type Dashboard struct {
	logger  *zerolog.Logger
	rooms   Rooms
	history store.HistoryReader
	now     func() time.Time

	themePath string
	unit      string
	timezone  string
	window    time.Duration
	maxAge    time.Duration

	palette  palette.Palette
	location *time.Location
	router   *mux.Router
}

func NewDashboard(name string, flags *pflag.FlagSet, logger *zerolog.Logger, latest *store.Latest) hm.Handler {
	d := newDashboard(logger, latest, latest)

	flags.StringVar(&d.themePath, fmt.Sprintf("%s.theme", name), "", "YAML palette theme, built-in theme when empty")
	flags.StringVar(&d.unit, fmt.Sprintf("%s.unit", name), string(units.Fahrenheit), "Default temperature unit (f or c)")
	flags.StringVar(&d.timezone, fmt.Sprintf("%s.timezone", name), "Local", "Time zone for chart labels")
	flags.DurationVar(&d.window, fmt.Sprintf("%s.window", name), 6*time.Hour, "Default chart window")
	flags.DurationVar(&d.maxAge, fmt.Sprintf("%s.maxAge", name), 30*time.Minute, "Ignore readings older than this, 0 keeps all")

	return d
}

func newDashboard(logger *zerolog.Logger, rooms Rooms, history store.HistoryReader) *Dashboard {
	return &Dashboard{
		logger:   logger,
		rooms:    rooms,
		history:  history,
		now:      time.Now,
		unit:     string(units.Fahrenheit),
		timezone: "Local",
		window:   6 * time.Hour,
		maxAge:   30 * time.Minute,
	}
}

func (d *Dashboard) Init() error {
	theme := palette.DefaultTheme()
	if d.themePath != "" {
		var err error
		if theme, err = palette.LoadTheme(d.themePath); err != nil {
			return err
		}
	}
	d.palette = theme.Palette()

	loc, err := time.LoadLocation(d.timezone)
	if err != nil {
		return fmt.Errorf("dashboard timezone: %w", err)
	}
	d.location = loc

	registry := prometheus.NewRegistry()
	if err := registry.Register(NewCollector(d.rooms, d.maxAge, d.now)); err != nil {
		return fmt.Errorf("register collector: %w", err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/rooms", d.listRooms).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{room}/climate", d.climate).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{room}/readiness", d.readiness).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{room}/historic", d.historic).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	d.router = r

	d.logger.Info().Str("unit", d.unit).Str("tz", loc.String()).Msg("dashboard ready")
	return nil
}

func (d *Dashboard) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	d.router.ServeHTTP(w, req)
}

func (d *Dashboard) builder(req *http.Request) *dashboard.Builder {
	unit := units.Unit(d.unit)
	if u := req.URL.Query().Get("unit"); u != "" {
		unit = units.Unit(u)
	}
	return dashboard.NewBuilder(d.palette, unit)
}

func (d *Dashboard) room(w http.ResponseWriter, req *http.Request) (dashboard.Room, bool) {
	name := mux.Vars(req)["room"]
	snap, ok := d.rooms.Room(name, d.maxAge, d.now())
	if !ok {
		http.Error(w, fmt.Sprintf("unknown room %q", name), http.StatusNotFound)
		return dashboard.Room{}, false
	}

	room := cardRoom(snap)
	if !room.AsOf.IsZero() {
		room.AsOf = room.AsOf.In(d.location)
	}
	return room, true
}

func (d *Dashboard) listRooms(w http.ResponseWriter, req *http.Request) {
	d.writeJSON(w, d.rooms.Rooms())
}

func (d *Dashboard) climate(w http.ResponseWriter, req *http.Request) {
	room, ok := d.room(w, req)
	if !ok {
		return
	}
	d.writeJSON(w, d.builder(req).Climate(room))
}

func (d *Dashboard) readiness(w http.ResponseWriter, req *http.Request) {
	room, ok := d.room(w, req)
	if !ok {
		return
	}
	d.writeJSON(w, d.builder(req).Readiness(room))
}

// historic serves whatever the history store holds for the room, including
// rooms not seen since the last restart.
func (d *Dashboard) historic(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["room"]

	window := d.window
	if raw := req.URL.Query().Get("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, fmt.Sprintf("bad window %q", raw), http.StatusBadRequest)
			return
		}
		window = parsed
	}

	rows, err := d.history.History(req.Context(), name, window)
	switch {
	case errors.Is(err, store.ErrNoHistory):
		http.Error(w, err.Error(), http.StatusNotImplemented)
		return
	case err != nil:
		d.logger.Error().Err(err).Str("room", name).Msg("history error")
		http.Error(w, "history unavailable", http.StatusBadGateway)
		return
	}

	d.writeJSON(w, series.Transform(rows, d.location))
}

func (d *Dashboard) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		d.logger.Error().Err(err).Msg("encode error")
	}
}
