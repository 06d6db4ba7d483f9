// Package logging configures zerolog for the prettydump command.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level maps a -v count to a log level.
func Level(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	}
	return zerolog.TraceLevel
}

// SetupLogger writes human readable logs to w at the level chosen by
// verbosity and installs the result as the global logger.
func SetupLogger(w io.Writer, verbosity int) zerolog.Logger {
	zerolog.SetGlobalLevel(Level(verbosity))

	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !terminal(w),
	}
	ctx := zerolog.New(cw).With().Timestamp()
	// Caller information for debug and trace
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
	log.Debug().Int("verbosity", verbosity).Msg("logger initialized")
	return log.Logger
}

// GetLogger returns a logger tagged with a component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
