package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		logDebug  bool
		checkFunc func(t *testing.T, output string)
	}{
		{
			name:   "Text Logger Info Level",
			config: Config{Level: "info", Format: "text", Output: "stdout"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "level=INFO")
				assert.Contains(t, output, `msg="test message"`)
				assert.Contains(t, output, "service=ps-reviewer")
			},
		},
		{
			name:     "JSON Logger Debug Level",
			config:   Config{Level: "debug", Format: "json", Output: "stdout"},
			logDebug: true,
			checkFunc: func(t *testing.T, output string) {
				var logEntry map[string]any
				require.NoError(t, json.Unmarshal([]byte(output), &logEntry), "output: %s", output)
				assert.Equal(t, "DEBUG", logEntry["level"])
				assert.Equal(t, "test message", logEntry["msg"])
			},
		},
		{
			name:     "Debug suppressed at info level",
			config:   Config{Level: "info", Format: "text"},
			logDebug: true,
			checkFunc: func(t *testing.T, output string) {
				assert.Empty(t, output)
			},
		},
		{
			name:   "Unknown level falls back to info",
			config: Config{Level: "chatty", Format: "JSON"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, `"level":"INFO"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(tt.config, &buf)

			if tt.logDebug {
				l.Debug("test message")
			} else {
				l.Info("test message")
			}

			tt.checkFunc(t, buf.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestForComponent(t *testing.T) {
	var buf bytes.Buffer
	l := ForComponent(NewLogger(Config{Level: "info"}, &buf), "standards")
	l.Info("loaded")

	assert.Contains(t, buf.String(), "component=standards")
	assert.NotNil(t, ForComponent(nil, "x"))
}

func TestResolveOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	w := resolveOutput("file:" + path)
	f, ok := w.(*os.File)
	require.True(t, ok)
	t.Cleanup(func() { _ = f.Close() })

	l := NewLogger(Config{Level: "info"}, w)
	l.Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to file"))
}
