package looper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	hm "github.com/sprsquish/airplus/pkg"
	"github.com/sprsquish/airplus/pkg/store"
)

const pTimeFormat = "2006/01/02T15:04:05z"

var purpleAirFields = map[string]string{
	"pm2_5_atm":        store.MetricPM25,
	"pm10_0_atm":       store.MetricPM10,
	"current_humidity": store.MetricHumidity,
	"current_temp_f":   store.MetricTempF,
}

type PurpleAir struct {
	client *hm.HttpClient
	logger *zerolog.Logger

	host string
	room string

	url *url.URL
}

func NewPurpleAir(name string, flags *pflag.FlagSet, logger *zerolog.Logger, client *hm.HttpClient) hm.Looper {
	p := PurpleAir{
		client: client,
		logger: logger,
	}

	flags.StringVar(&p.host, fmt.Sprintf("%s.host", name), "", "Local device host")
	flags.StringVar(&p.room, fmt.Sprintf("%s.room", name), "", "Room the sensor is in")

	return &p
}

func (p *PurpleAir) Init() error {
	if p.host == "" || p.room == "" {
		return errors.New("purpleair: host and room are required")
	}

	u, err := url.Parse(fmt.Sprintf("http://%s/json", p.host))
	if err != nil {
		return err
	}

	p.url = u
	return nil
}

func (p *PurpleAir) Poll(ctx context.Context, sink store.Client) error {
	var reading map[string]any
	if err := p.client.GetJSON(ctx, p.logger, &reading, hm.URLOpt(p.url)); err != nil {
		return err
	}

	tsAny, found := reading["DateTime"]
	if !found {
		return errors.New("did not find DateTime in reading")
	}

	tsStr, ok := tsAny.(string)
	if !ok {
		return fmt.Errorf("DateTime was not a string: %#v", tsAny)
	}

	ts, err := time.Parse(pTimeFormat, tsStr)
	if err != nil {
		return err
	}

	tags := map[string]string{"device": "purpleair", store.RoomTag: p.room}
	for field, name := range purpleAirFields {
		if val, ok := reading[field]; ok {
			sink.Write(ctx, ts, name, val, tags)
		}
	}

	return nil
}
