package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewHonoursLevel(t *testing.T) {
	logger, err := New("warn", FormatJSON)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewDefaultsToInfoConsole(t *testing.T) {
	logger, err := New("", "")
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	_, err := New("loud", FormatJSON)
	assert.ErrorContains(t, err, "parse log level")

	_, err = New("info", "xml")
	assert.ErrorContains(t, err, "unsupported log format")
}
