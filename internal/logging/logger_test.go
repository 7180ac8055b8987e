package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{input: "debug", want: DebugLevel},
		{input: " INFO ", want: InfoLevel},
		{input: "warn", want: WarnLevel},
		{input: "warning", want: WarnLevel},
		{input: "error", want: ErrorLevel},
		{input: "", want: InfoLevel},
		{input: "verbose", want: InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestSetup(t *testing.T) {
	original := Logger
	defer func() { Logger = original }()

	Setup(Options{Level: "warn", Format: "json", Prefix: "[terragen] "})
	assert.NotNil(t, Logger)
	assert.Equal(t, log.WarnLevel, Logger.GetLevel())
	assert.Equal(t, "[terragen] ", Logger.GetPrefix())
}

func TestGetLogger_LazyInit(t *testing.T) {
	original := Logger
	defer func() { Logger = original }()

	t.Setenv("LOG_LEVEL", "error")
	Logger = nil

	logger := GetLogger()
	assert.NotNil(t, logger)
	assert.Equal(t, log.ErrorLevel, logger.GetLevel())
}

func TestWithFields(t *testing.T) {
	original := Logger
	defer func() { Logger = original }()

	var buf bytes.Buffer
	Logger = log.New(&buf)
	Logger.SetFormatter(log.LogfmtFormatter)

	WithTerrainID("abc").Info("generated")
	WithSeed(42).Info("seeded")
	WithDimensions(8, 16).Info("sized")

	out := buf.String()
	assert.Contains(t, out, "terrain_id=abc")
	assert.Contains(t, out, "seed=42")
	assert.Contains(t, out, "width=8")
	assert.Contains(t, out, "length=16")
}
