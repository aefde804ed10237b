package airplus

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LevelWriter sends entries above Threshold to Err and the rest to Std. An
// unset Threshold splits at InfoLevel; use TraceLevel to send debug to Err.
type LevelWriter struct {
	Std       io.Writer
	Err       io.Writer
	Threshold zerolog.Level
}

func (lw LevelWriter) Write(p []byte) (n int, err error) {
	return lw.Std.Write(p)
}

// WriteLevel fulfills the interface for zerolog.LevelWriter
func (lw LevelWriter) WriteLevel(level zerolog.Level, bytes []byte) (n int, err error) {
	threshold := lw.Threshold
	if threshold == zerolog.DebugLevel {
		threshold = zerolog.InfoLevel
	}

	writer := lw.Std
	if level > threshold {
		writer = lw.Err
	}
	return writer.Write(bytes)
}

// NewLogger builds the console logger shared by every component.
func NewLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(
		zerolog.ConsoleWriter{
			Out: LevelWriter{
				Std:       os.Stdout,
				Err:       os.Stderr,
				Threshold: zerolog.InfoLevel,
			},
		}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
