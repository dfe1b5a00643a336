package view

import (
	"log/slog"
)

const defaultName = "default"

type options struct {
	name    string
	logger  *slog.Logger
	metrics bool
}

// Option configures a View.
type Option func(*options)

// WithName sets the name used to label the view's metrics and log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger repairs are reported to. Without it the view logs
// to slog.Default() at the time of the repair.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics turns Prometheus metrics on or off. They are on by default.
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		o.metrics = enabled
	}
}

func newOptions(opts []Option) options {
	o := options{
		name:    defaultName,
		metrics: true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.name == "" {
		o.name = defaultName
	}

	return o
}
