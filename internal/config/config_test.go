package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "WRITE_TIMEOUT", "DB_PATH", "DB_MAX_OPEN_CONNS", "LOG_LEVEL", "LOG_STRUCTURED", "PRESETS_PATH", "GENERATION_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "./terragen.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Structured)
	assert.Equal(t, "", cfg.Generation.PresetsPath)
	assert.Equal(t, 30*time.Second, cfg.Generation.Timeout)
}

func TestLoad_Environment(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "port", key: "PORT", value: "9000",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, "9000", cfg.Server.Port) },
		},
		{
			name: "duration", key: "GENERATION_TIMEOUT", value: "5s",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 5*time.Second, cfg.Generation.Timeout) },
		},
		{
			name: "invalid duration falls back", key: "READ_TIMEOUT", value: "soon",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout) },
		},
		{
			name: "int", key: "DB_MAX_IDLE_CONNS", value: "4",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 4, cfg.Database.MaxIdleConns) },
		},
		{
			name: "invalid int falls back", key: "DB_MAX_OPEN_CONNS", value: "many",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, 1, cfg.Database.MaxOpenConns) },
		},
		{
			name: "bool", key: "LOG_STRUCTURED", value: "false",
			check: func(t *testing.T, cfg *Config) { assert.False(t, cfg.Logging.Structured) },
		},
		{
			name: "presets path", key: "PRESETS_PATH", value: "/etc/terragen/presets.yaml",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/etc/terragen/presets.yaml", cfg.Generation.PresetsPath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			tt.check(t, Load())
		})
	}
}
