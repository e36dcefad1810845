package container

import (
	"log/slog"

	"github.com/satyamsoni2211/lazy-env-configurator/pkg/source"
	"github.com/satyamsoni2211/lazy-env-configurator/pkg/telemetry/metrics"
)

// Option configures a Container at construction time.
type Option func(*options)

type options struct {
	name      string
	logger    *slog.Logger
	collector *metrics.Collector
	environ   source.LookupFunc
	setenv    source.SetFunc
}

func newOptions(opts []Option) *options {
	o := &options{name: "default"}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithName sets the container name used in logs, metrics labels, and
// error messages. The Registry sets this to the registered name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics attaches a metrics collector. Without one, nothing is
// recorded.
func WithMetrics(collector *metrics.Collector) Option {
	return func(o *options) { o.collector = collector }
}

// WithEnviron overrides the process-environment accessors used by the
// source. Tests use this to observe propagation without touching the real
// environment of other tests.
func WithEnviron(lookup source.LookupFunc, set source.SetFunc) Option {
	return func(o *options) {
		o.environ = lookup
		o.setenv = set
	}
}
