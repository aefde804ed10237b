package looper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	hm "github.com/sprsquish/airplus/pkg"
	"github.com/sprsquish/airplus/pkg/store"
)

const awairTimeFormat = "2006-01-02T15:04:05.999Z"

// VOC is reported in ppb; TVOC is scored in mg/m³ (isobutylene equivalent).
const vocPPBToMg = 0.0045

var awairComps = map[string]string{
	"temp":     store.MetricTempC,
	"humid":    store.MetricHumidity,
	"co2":      store.MetricCO2,
	"voc":      store.MetricTVOC,
	"pm25":     store.MetricPM25,
	"pm10_est": store.MetricPM10,
	"lux":      store.MetricLux,
}

type awairDevice struct {
	room string
	url  *url.URL
}

type Awair struct {
	client *hm.HttpClient
	logger *zerolog.Logger

	api     string
	token   string
	devices []string

	devs []awairDevice
}

type AwairReading struct {
	Data []struct {
		Timestamp string
		Sensors   []struct {
			Comp  string
			Value float64
		}
	}
}

func NewAwair(name string, flags *pflag.FlagSet, logger *zerolog.Logger, client *hm.HttpClient) hm.Looper {
	a := Awair{
		client: client,
		logger: logger,
	}

	flags.StringVar(&a.api, fmt.Sprintf("%s.api", name), "https://developer-apis.awair.is", "API base URL")
	flags.StringVar(&a.token, fmt.Sprintf("%s.token", name), "", "Access token")
	flags.StringSliceVar(&a.devices, fmt.Sprintf("%s.devices", name), []string{}, "List of devices: 'room:type:id'")

	return &a
}

func (a *Awair) Init() error {
	a.devs = a.devs[:0]
	for _, device := range a.devices {
		dev := strings.Split(device, ":")
		if len(dev) != 3 {
			return fmt.Errorf("bad device %q, want room:type:id", device)
		}

		room, devType, devID := dev[0], dev[1], dev[2]

		urlStr := fmt.Sprintf("%s/v1/users/self/devices/%s/%s/air-data/latest", strings.TrimSuffix(a.api, "/"), devType, devID)
		u, err := url.Parse(urlStr)
		if err != nil {
			return fmt.Errorf("device %s: %w", room, err)
		}
		a.devs = append(a.devs, awairDevice{room: room, url: u})
	}
	return nil
}

func (a *Awair) Poll(ctx context.Context, sink store.Client) error {
	a.logger.Debug().Msg("polling devices")

	for _, dev := range a.devs {
		var reading AwairReading
		if err := a.client.GetJSON(ctx, a.logger, &reading, hm.BearerOpt(dev.url, a.token)); err != nil {
			return err
		}

		tags := map[string]string{"device": "awair", store.RoomTag: dev.room}
		for _, entry := range reading.Data {
			ts, err := time.Parse(awairTimeFormat, entry.Timestamp)
			if err != nil {
				a.logger.Error().Err(err).Str("ts", entry.Timestamp).Msg("could not parse timestamp")
				ts = time.Now()
			}

			for _, sensor := range entry.Sensors {
				name, ok := awairComps[sensor.Comp]
				if !ok {
					a.logger.Debug().Str("comp", sensor.Comp).Msg("skipping sensor")
					continue
				}

				val := sensor.Value
				if sensor.Comp == "voc" {
					val *= vocPPBToMg
				}
				sink.Write(ctx, ts, name, val, tags)
			}
		}
	}

	return nil
}
