package logger_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"ehsaas_server/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Leveler{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for input, want := range cases {
		assert.Equal(t, want, logger.ParseLevel(input), "input %q", input)
	}
}

func TestLAlwaysReturnsLogger(t *testing.T) {
	assert.NotNil(t, logger.L())

	logger.Init("debug", "json")
	assert.NotNil(t, logger.L())
}
