// Package logger configures the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string // trace, debug, info, warn, error, disabled
	Format     string // json, console
	TimeFormat string
	Output     string // stdout, stderr, or file path
}

// DefaultConfig logs info and above to stderr so report output on stdout stays clean.
func DefaultConfig() LogConfig {
	return LogConfig{
		Level:      "info",
		Format:     "console",
		TimeFormat: time.RFC3339,
		Output:     "stderr",
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from config without touching global state. The
// returned closer releases the log file when Output names one; for stdout
// and stderr it does nothing.
func New(config LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("parsing log level %q: %w", config.Level, err)
	}

	var output io.Writer
	var closer io.Closer = nopCloser{}
	switch config.Output {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("opening log file: %w", err)
		}
		output = file
		closer = file
	}

	return newWithWriter(config, level, output), closer, nil
}

func newWithWriter(config LogConfig, level zerolog.Level, output io.Writer) zerolog.Logger {
	if !strings.EqualFold(config.Format, "json") {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: config.TimeFormat,
		}
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

var (
	mu      sync.Mutex
	current io.Closer = nopCloser{}
)

// Setup initializes the global logger with the provided configuration. A log
// file opened by an earlier Setup is closed once the new logger is in place.
func Setup(config LogConfig) error {
	l, closer, err := New(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	log.Logger = l
	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}
	prev := current
	current = closer
	return prev.Close()
}

// Close releases the log file opened by Setup, if any, and silences the
// global logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := current.(nopCloser); ok {
		return nil
	}
	log.Logger = zerolog.Nop()
	err := current.Close()
	current = nopCloser{}
	return err
}

// WithComponent returns a logger with a component field
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
