package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/brownian/pkg/config"
)

func jsonConfig(level string) *config.Config {
	return &config.Config{Env: "test", LogLevel: level, LogFormat: "json"}
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output: %s", buf.String())
	return entry
}

func TestNew_SetsLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			require.NotNil(t, New(jsonConfig(tt.level), &buf))
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNew_NilWriterUsesStderr(t *testing.T) {
	assert.NotPanics(t, func() {
		New(jsonConfig("error"), nil).Debugf("discarded at error level")
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	log := New(jsonConfig("debug"), &buf)

	tests := []struct {
		name      string
		logFunc   func()
		wantMsg   string
		wantLevel string
	}{
		{"debug", func() { log.Debug("artifact read") }, "artifact read", "debug"},
		{"debugf", func() { log.Debugf("pass %d/%d", 1, 3) }, "pass 1/3", "debug"},
		{"infof", func() { log.Infof("Stage %d (%s) started", 2, "scan") }, "Stage 2 (scan) started", "info"},
		{"warnf", func() { log.Warnf("negative volatility %.1f", -3.0) }, "negative volatility -3.0", "warn"},
		{"errorf", func() { log.Errorf("Stage %d failed", 3) }, "Stage 3 failed", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc()

			entry := decodeEntry(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantMsg, entry["message"])
			assert.Equal(t, "test", entry["env"])
		})
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(jsonConfig("debug"), &buf)

	log.WithFields(map[string]interface{}{
		"len":     1000,
		"workers": 4,
	}).WithField("module", "scan").Infof("scan finished")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, float64(1000), entry["len"])
	assert.Equal(t, float64(4), entry["workers"])
	assert.Equal(t, "scan", entry["module"])
}

func TestWithStage(t *testing.T) {
	var buf bytes.Buffer
	New(jsonConfig("info"), &buf).WithStage("generate", "run-1").Infof("stage started")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "generate", entry["stage"])
	assert.Equal(t, "run-1", entry["run_id"])
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	New(jsonConfig("info"), &buf).WithError(errors.New("RNG.txt not found")).Errorf("stage failed")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "RNG.txt not found", entry["error"])
	assert.Equal(t, "stage failed", entry["message"])
}

func TestLogFormats(t *testing.T) {
	for _, format := range []string{"json", "console", "pretty"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			New(&config.Config{Env: "test", LogLevel: "info", LogFormat: format}, &buf).Infof("test message")
			assert.Contains(t, buf.String(), "test message")
		})
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().WithField("k", "v").Infof("discarded")
	})
}
