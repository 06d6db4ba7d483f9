package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bjaus/pretty/internal/logging"
)

func TestLevel(t *testing.T) {
	t.Parallel()
	tests := map[int]zerolog.Level{
		0: zerolog.WarnLevel,
		1: zerolog.InfoLevel,
		2: zerolog.DebugLevel,
		3: zerolog.TraceLevel,
		7: zerolog.TraceLevel,
	}
	for v, want := range tests {
		assert.Equal(t, want, logging.Level(v), "verbosity %d", v)
	}
}

// Not parallel: SetupLogger replaces the global logger.
func TestSetupLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	logger := logging.SetupLogger(&buf, 1)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	render := logging.GetLogger("render")
	render.Warn().Msg("tagged")
	assert.Contains(t, buf.String(), "component=render")
}
