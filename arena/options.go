package arena

import "log/slog"

// Option configures an Arena during creation.
type Option func(*options)

type options struct {
	capacity int
	strict   bool
	name     string
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		name: "arena",
	}
}

// WithCapacity preallocates room for n values.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithStrict makes every misuse (use after release, double release,
// foreign handle, leak on Close) panic instead of returning an error.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithName sets the name used in logs and leak reports.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger for lifecycle diagnostics.
// Pass nil to keep the arena silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
