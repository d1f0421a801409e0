package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "Warn", level: "warn", expected: zerolog.WarnLevel},
		{name: "Error", level: "error", expected: zerolog.ErrorLevel},
		{name: "Unknown falls back to info", level: "verbose", expected: zerolog.InfoLevel},
		{name: "Empty falls back to info", level: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NewLogger(LoggerConfig{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestNewLogger_Format(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Both formats must yield a usable logger; format only changes the writer.
	jsonLogger := NewLogger(LoggerConfig{Level: "info", Format: "json"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	consoleLogger := NewLogger(LoggerConfig{Level: "info", Format: "console"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	assert.NotPanics(t, func() {
		jsonLogger.Info().Msg("json logger works")
		consoleLogger.Info().Msg("console logger works")
	})
}
