package logger_test

import (
	"testing"

	"github.com/raywall/vfs-tracker-services/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigure_DefaultLevel(t *testing.T) {
	logger.Configure(logger.Options{})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestConfigure_CustomLevel(t *testing.T) {
	logger.Configure(logger.Options{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestConfigure_InvalidLevelFallsBack(t *testing.T) {
	logger.Configure(logger.Options{Level: "chatty"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
