package airplus

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var ErrFailedRequest = errors.New("failed request")

type HttpClient struct {
	client *http.Client
}

type Event struct {
	Type string
	Data string
}

func NewHttpClient() *HttpClient {
	return &HttpClient{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewStreamClient returns a client without a response deadline, for event
// streams that stay open until their context ends.
func NewStreamClient() *HttpClient {
	return &HttpClient{client: &http.Client{}}
}

type RequestOpt func(req *http.Request)

func URLOpt(u *url.URL) RequestOpt {
	return func(req *http.Request) {
		req.URL = u
		req.Host = u.Host
	}
}

func BearerOpt(u *url.URL, token string) RequestOpt {
	return func(req *http.Request) {
		URLOpt(u)(req)
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	}
}

func (c *HttpClient) GetJSON(ctx context.Context, log *zerolog.Logger, data any, opts RequestOpt) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	opts(req)

	rep, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer rep.Body.Close()

	if rep.StatusCode < 200 || rep.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(rep.Body)
		log.Error().Int("code", rep.StatusCode).Bytes("rep", bodyBytes).Msg("request error")
		return ErrFailedRequest
	}

	bodyBytes, err := io.ReadAll(rep.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	log.Debug().Bytes("body", bodyBytes).Msg("GetJSON body")

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(data); err != nil {
		return fmt.Errorf("%w data: %s", err, string(bodyBytes))
	}
	return nil
}

// Events streams server-sent events until ctx is done or the stream breaks,
// then closes the returned channel.
func (c *HttpClient) Events(ctx context.Context, log *zerolog.Logger, opts RequestOpt) (<-chan *Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	opts(req)

	rep, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if rep.StatusCode < 200 || rep.StatusCode >= 300 {
		rep.Body.Close()
		log.Error().Int("code", rep.StatusCode).Msg("event stream refused")
		return nil, ErrFailedRequest
	}

	eventChan := make(chan *Event)

	go func() {
		defer close(eventChan)
		defer rep.Body.Close()

		reader := bufio.NewReader(rep.Body)

		var event *Event
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if ctx.Err() == nil && err != io.EOF {
					log.Error().Err(err).Msg("event stream read error")
				}
				return
			}

			line = strings.TrimRight(line, "\r\n")
			if line == "" {
				continue
			}
			log.Debug().Str("line", line).Msg("event line")

			if strings.HasPrefix(line, "data: ") && event != nil {
				event.Data = line[6:]

				select {
				case eventChan <- event:
				case <-ctx.Done():
					return
				}

				event = nil
				continue
			}

			if strings.HasPrefix(line, "event: ") {
				event = &Event{Type: line[7:]}
			}
		}
	}()

	return eventChan, nil
}
