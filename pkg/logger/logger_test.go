package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewJSONLogger(t *testing.T) {
	log, err := New(&Config{Level: "info", Format: "json", Output: "stdout"}, DefaultServiceName)
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNewConsoleLoggerAtDebug(t *testing.T) {
	log, err := New(&Config{Level: "debug", Format: "console", Output: "stderr"}, DefaultServiceName)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel), "debug level is enabled")
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud", Format: "json", Output: "stdout"}, DefaultServiceName)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestParseLevelAcceptsWarningAlias(t *testing.T) {
	level, err := parseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, "warn", level.String())
}
