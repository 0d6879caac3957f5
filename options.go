package dict

import "log/slog"

// MinCapacity is the smallest number of cells a Table ever has.
const MinCapacity = 8

type options struct {
	capacity int
	logger   *slog.Logger
}

// Option configures a Table created by New.
type Option func(*options)

// WithCapacity sets the initial number of cells. Values below MinCapacity
// are raised to MinCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger that receives resize events at debug level.
// A nil logger restores the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{capacity: MinCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < MinCapacity {
		o.capacity = MinCapacity
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
