package airplus

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelWriter(t *testing.T) {
	var std, errs bytes.Buffer
	log := zerolog.New(LevelWriter{Std: &std, Err: &errs, Threshold: zerolog.InfoLevel})

	log.Info().Msg("polling")
	log.Warn().Msg("slow")
	log.Error().Msg("failed")

	assert.Contains(t, std.String(), "polling")
	assert.NotContains(t, std.String(), "failed")
	assert.Contains(t, errs.String(), "slow")
	assert.Contains(t, errs.String(), "failed")
}

func TestLevelWriterDefaultThreshold(t *testing.T) {
	var std, errs bytes.Buffer
	log := zerolog.New(LevelWriter{Std: &std, Err: &errs})

	log.Info().Msg("polling")
	log.Warn().Msg("slow")

	assert.Contains(t, std.String(), "polling")
	assert.NotContains(t, errs.String(), "polling")
	assert.Contains(t, errs.String(), "slow")
}

func TestLevelWriterTraceThreshold(t *testing.T) {
	var std, errs bytes.Buffer
	log := zerolog.New(LevelWriter{Std: &std, Err: &errs, Threshold: zerolog.TraceLevel}).Level(zerolog.DebugLevel)

	log.Debug().Msg("details")

	assert.Empty(t, std.String())
	assert.Contains(t, errs.String(), "details")
}
