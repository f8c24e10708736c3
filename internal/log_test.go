package internal

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLoggerRespectsLevel(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LogLevelInfo, &buf)

	logger.Info("read %d rows", 3)
	logger.Debug("hidden")
	logger.Error("failed: %s", "boom")

	out := buf.String()
	assert.Contains(t, out, "[INFO] read 3 rows")
	assert.Contains(t, out, "[ERROR] failed: boom")
	assert.NotContains(t, out, "hidden")
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"ERROR": LogLevelError,
		"warn":  LogLevelWarn,
		"Debug": LogLevelDebug,
		"TRACE": LogLevelTrace,
		"":      LogLevelInfo,
		"loud":  LogLevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseLogLevel(input), "input %q", input)
	}
}
