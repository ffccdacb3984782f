package rulekit

import (
	"io"
	"log/slog"
)

type options struct {
	cascade    CascadeMode
	concurrent bool
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		cascade: Continue,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
}

// Option configures a Schema at construction time.
type Option func(*options)

// WithCascade sets the default cascade mode for chains that do not choose
// one explicitly with Cascade or StopOnFirstFailure.
func WithCascade(mode CascadeMode) Option {
	return func(o *options) {
		o.cascade = mode
	}
}

// WithConcurrentChains makes ValidateContext evaluate property chains
// concurrently. Failure order is unaffected: per-chain results merge back in
// declaration order, so a validator produces structurally identical results
// in both modes.
func WithConcurrentChains(enabled bool) Option {
	return func(o *options) {
		o.concurrent = enabled
	}
}

// WithLogger sets the logger that reports rule faults and accessor panics.
// The default logger discards everything; validation outcomes themselves are
// never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
