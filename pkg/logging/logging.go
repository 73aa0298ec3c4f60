// Package logging provides the Logger used across the token pipeline and
// adapters for zerolog.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger receives progress messages and diagnostics.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nop struct{}

func (nop) Infof(string, ...any)  {}
func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

// OrNop returns l, or a Nop logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return nop{}
	}
	return l
}

type zerologLogger struct {
	log zerolog.Logger
}

// NewZerolog adapts a zerolog.Logger.
func NewZerolog(l zerolog.Logger) Logger {
	return &zerologLogger{log: l}
}

func (z *zerologLogger) Infof(format string, args ...any) {
	z.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (z *zerologLogger) Warnf(format string, args ...any) {
	z.log.Warn().Msg(fmt.Sprintf(format, args...))
}

func (z *zerologLogger) Errorf(format string, args ...any) {
	z.log.Error().Msg(fmt.Sprintf(format, args...))
}

// Level maps a verbosity count to a zerolog level.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// NewJSON returns a Logger writing one JSON object per line to w.
func NewJSON(w io.Writer, verbosity int) Logger {
	l := zerolog.New(w).Level(Level(verbosity)).With().Timestamp().Logger()
	return NewZerolog(l)
}

// NewConsole returns a Logger writing human readable lines to w.
func NewConsole(w io.Writer, verbosity int, noColor bool) Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}
	l := zerolog.New(cw).Level(Level(verbosity)).With().Timestamp().Logger()
	return NewZerolog(l)
}
