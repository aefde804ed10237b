package airplus

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sprsquish/airplus/pkg/store"
)

type Looper interface {
	Init() error
	Poll(context.Context, store.Client) error
}

type LoopRunner struct {
	name   string
	looper Looper
	logger *zerolog.Logger

	pollFreq time.Duration
	backoff  time.Duration
	enabled  bool
}

func (r *LoopRunner) Name() string { return r.name }

func (r *LoopRunner) Run(ctx context.Context, store store.Client) {
	if !r.enabled {
		r.logger.Info().Msg("disabled")
		return
	}

	if err := r.looper.Init(); err != nil {
		r.logger.Error().Err(err).Msg("init failed")
		return
	}

	r.logger.Info().Dur("freq", r.pollFreq).Msg("starting")
	ticker := time.NewTicker(r.pollFreq)
	defer ticker.Stop()

	r.poll(ctx, store)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("stopping")
			return

		case <-ticker.C:
			r.poll(ctx, store)
		}
	}
}

func (r *LoopRunner) poll(ctx context.Context, store store.Client) {
	err := r.looper.Poll(ctx, store)
	switch {
	case err == nil || ctx.Err() != nil:
	case errors.Is(err, ErrFailedRequest):
		r.logger.Info().Dur("backoff", r.backoff).Msg("failed request.. sleeping")
		select {
		case <-ctx.Done():
		case <-time.After(r.backoff):
		}
	default:
		r.logger.Error().Err(err).Msg("poll error")
	}
}
