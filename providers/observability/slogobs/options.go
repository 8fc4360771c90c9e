package slogobs

import (
	"io"
	"log/slog"
	"os"
)

// config holds the resolved configuration for an [Observer].
type config struct {
	logger *slog.Logger
	level  slog.Level
	json   bool
	output io.Writer
}

// Option configures an [Observer] created by [New].
type Option func(*config)

// WithLogger uses an existing slog.Logger instead of constructing one.
// When set, the other options are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLevel sets the minimum log level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithJSON switches output from the text handler to the JSON handler.
func WithJSON() Option {
	return func(c *config) {
		c.json = true
	}
}

// WithOutput sets the destination writer. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

func applyOptions(opts ...Option) config {
	cfg := config{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
