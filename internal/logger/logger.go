package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const defaultLogFile = "ps-reviewer.log"

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// NewLogger initializes a new slog logger based on the provided configuration.
// A non-nil output overrides cfg.Output, which tests rely on.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = resolveOutput(cfg.Output)
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler).With("service", "ps-reviewer")
}

// ParseLevel maps a level name to a slog.Level, falling back to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ForComponent tags every record with the emitting component.
func ForComponent(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", component)
}

// resolveOutput accepts stdout, stderr, file (default log file) or file:<path>.
func resolveOutput(spec string) io.Writer {
	name, path, _ := strings.Cut(spec, ":")
	switch strings.ToLower(name) {
	case "stderr":
		return os.Stderr
	case "file":
		if path == "" {
			path = defaultLogFile
		}
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", path, err)
			return os.Stdout
		}
		return file
	default:
		return os.Stdout
	}
}
