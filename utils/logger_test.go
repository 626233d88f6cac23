package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homely/config"
)

func resetLogger(t *testing.T) {
	prevConfig := config.AppConfig
	prevLogger := Logger
	t.Cleanup(func() {
		config.AppConfig = prevConfig
		Logger = prevLogger
	})
	Logger = nil
}

func TestInitializeLoggerHonorsConfiguredLevel(t *testing.T) {
	resetLogger(t)
	config.AppConfig.LogLevel = "warn"

	logger := GetLogger()

	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
}

func TestInitializeLoggerFallsBackWhenLevelUnset(t *testing.T) {
	resetLogger(t)
	config.AppConfig.LogLevel = ""
	config.AppConfig.Env = "development"

	logger := GetLogger()

	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestInitializeLoggerIgnoresInvalidLevel(t *testing.T) {
	resetLogger(t)
	config.AppConfig.LogLevel = "loud"
	config.AppConfig.Env = "production"

	logger := GetLogger()

	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}
