// Package logging configures the global zerolog logger and derives the
// component loggers used by the fixture packages and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Component names attached to every log line as the "component" field.
const (
	ComponentFixture    = "fixture"
	ComponentPagination = "pagination"
	ComponentPublish    = "publish"
	ComponentCLI        = "cli"
)

var levels = map[LogLevel]zerolog.Level{
	LevelDebug: zerolog.DebugLevel,
	LevelInfo:  zerolog.InfoLevel,
	LevelWarn:  zerolog.WarnLevel,
	LevelError: zerolog.ErrorLevel,
}

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level written. Unknown levels fall back to info.
	Level LogLevel

	// Pretty switches from JSON lines to zerolog's console format.
	Pretty bool

	// Output receives the log lines (default: os.Stderr).
	Output io.Writer
}

// DefaultConfig returns JSON logging at info level to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Output: os.Stderr,
	}
}

// Setup installs a timestamped logger built from cfg as the global logger
// and returns it.
func Setup(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}

	zerolog.SetGlobalLevel(cfg.Level.zerolog())
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return log.Logger
}

// ParseLevel validates a level name as given on the command line or in
// configuration. The empty string selects LevelInfo.
func ParseLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "":
		return LevelInfo, nil
	case "warning":
		return LevelWarn, nil
	}
	if _, ok := levels[LogLevel(name)]; !ok {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return LogLevel(name), nil
}

func (l LogLevel) zerolog() zerolog.Level {
	if level, err := ParseLevel(string(l)); err == nil {
		return levels[level]
	}
	return zerolog.InfoLevel
}

// NewLogger derives a logger from the global logger that tags every line
// with component.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Levels in use:
//
//   - debug: dataset built (config object, page counts, duration), walks, batch fetches
//   - info: dataset published or unpublished, files written by the CLI
//   - warn: rejected build configurations, publish retries
//   - error: verification failures, commands that fail
//
// Common fields: component, config, namespace, path, documents, duration.
