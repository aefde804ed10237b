package looper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	hm "github.com/sprsquish/airplus/pkg"
	"github.com/sprsquish/airplus/pkg/store"
)

const particleTimeFormat = "2006-01-02T15:04:05.999Z"

// Particle follows a device event stream carrying illuminance readings.
type Particle struct {
	client *hm.HttpClient
	logger *zerolog.Logger

	stream    string
	auth      string
	event     string
	roomsFlag []string

	rooms     map[string]string
	streamURL *url.URL
}

// NewParticle ignores the shared client: its request deadline would cut the
// event stream.
func NewParticle(name string, flags *pflag.FlagSet, logger *zerolog.Logger, _ *hm.HttpClient) hm.Looper {
	p := Particle{
		client: hm.NewStreamClient(),
		logger: logger,
	}

	flags.StringVar(&p.stream, fmt.Sprintf("%s.stream", name), "https://api.particle.io/v1/devices/events", "Stream URL")
	flags.StringVar(&p.auth, fmt.Sprintf("%s.auth", name), "", "Auth code")
	flags.StringVar(&p.event, fmt.Sprintf("%s.event", name), "lum-full-avg", "Event carrying lux")
	flags.StringArrayVar(&p.roomsFlag, fmt.Sprintf("%s.rooms", name), nil, "coreid=room pairs")

	return &p
}

func (p *Particle) Init() error {
	p.rooms = make(map[string]string, len(p.roomsFlag))
	for _, pair := range p.roomsFlag {
		coreID, room, ok := strings.Cut(pair, "=")
		if !ok || coreID == "" || room == "" {
			return fmt.Errorf("bad room mapping %q, want coreid=room", pair)
		}
		p.rooms[coreID] = room
	}

	streamURL, err := url.Parse(p.stream)
	if err != nil {
		return err
	}
	q := streamURL.Query()
	q.Set("access_token", p.auth)
	streamURL.RawQuery = q.Encode()
	p.streamURL = streamURL
	return nil
}

func (p *Particle) Poll(ctx context.Context, sink store.Client) error {
	eventChan, err := p.client.Events(ctx, p.logger, hm.URLOpt(p.streamURL))
	if err != nil {
		return err
	}

	for evt := range eventChan {
		p.logger.Debug().Interface("event", evt).Msg("event received")

		if evt.Type != p.event {
			continue
		}

		var data struct {
			Value       string `json:"data"`
			CoreID      string `json:"coreid"`
			PublishedAt string `json:"published_at"`
		}
		if err := json.NewDecoder(strings.NewReader(evt.Data)).Decode(&data); err != nil {
			p.logger.Error().Err(err).Interface("event", evt).Msg("couldn't parse event data")
			continue
		}

		room, ok := p.rooms[data.CoreID]
		if !ok {
			p.logger.Debug().Str("coreid", data.CoreID).Msg("no room for device")
			continue
		}

		val, err := strconv.ParseFloat(data.Value, 64)
		if err != nil {
			p.logger.Error().Err(err).Interface("data", data).Msg("could not convert data value")
			continue
		}

		ts, err := time.Parse(particleTimeFormat, data.PublishedAt)
		if err != nil {
			p.logger.Error().Err(err).Interface("data", data).Msg("could not parse published_at")
			ts = time.Now()
		}

		tags := map[string]string{"device": "particle", "coreid": data.CoreID, store.RoomTag: room}
		sink.Write(ctx, ts, store.MetricLux, val, tags)
	}

	p.logger.Info().Msg("event channel closed")
	return nil
}
