package scaffold

import "github.com/slsforge/slsforge/pkg/events"

func defaultOptions() *options {
	return &options{
		events:  events.Noop(),
		workers: 4,
	}
}

type options struct {
	events  events.Handler
	workers int
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}

	return o
}

type Option func(*options)

// WithEvents routes per-file generation events to handler.
func WithEvents(handler events.Handler) Option {
	return func(o *options) {
		if handler != nil {
			o.events = handler
		}
	}
}

// WithWorkers bounds the concurrent file writes.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}
