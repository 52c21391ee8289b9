package ringqueue

import (
	"go.uber.org/zap"

	"github.com/timzifer/ringqueue/internal/arena"
	"github.com/timzifer/ringqueue/internal/telemetry"
)

// Arena is the allocator a queue draws its sentinel, element records and
// payload buffers from. Queues that share an arena share its limits and its
// leak ledger.
type Arena = arena.Arena

// Limits bound an arena. A zero field is unbounded.
type Limits = arena.Limits

// ArenaStats is a snapshot of an arena ledger. After every queue and every
// removed element has been released, Blocks and Bytes are zero.
type ArenaStats = arena.Stats

// Metrics holds per-operation counters. See DefaultMetrics.
type Metrics = telemetry.Metrics

// NewArena returns an arena with the given limits. Limit hits are logged to
// log when it is non-nil.
func NewArena(limits Limits, log *zap.Logger) *Arena {
	return arena.NewArena(limits, arena.WithLogger(log))
}

// Options configures a queue.
type Options struct {
	// Arena to allocate from. When nil a private arena with Limits is created.
	Arena *Arena
	// Limits applies only to the private arena.
	Limits Limits
	Logger *zap.Logger
	// Metrics receives operation counts; DefaultMetrics when nil.
	Metrics *Metrics
}

// Option configures a queue created by New.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Metrics: telemetry.Default(),
	}
}

// WithOptions replaces every setting at once. Nil fields keep their defaults.
func WithOptions(o Options) Option {
	return func(opts *Options) {
		if o.Logger == nil {
			o.Logger = opts.Logger
		}
		if o.Metrics == nil {
			o.Metrics = opts.Metrics
		}
		*opts = o
	}
}

// WithArena makes the queue allocate from a instead of a private arena.
func WithArena(a *Arena) Option {
	return func(opts *Options) { opts.Arena = a }
}

// WithLimits bounds the private arena. Ignored when WithArena is given.
func WithLimits(l Limits) Option {
	return func(opts *Options) { opts.Limits = l }
}

// WithLogger sets the logger. Nil keeps the no-op default.
func WithLogger(log *zap.Logger) Option {
	return func(opts *Options) {
		if log != nil {
			opts.Logger = log
		}
	}
}

// WithMetrics sets where operations are counted. Nil keeps DefaultMetrics.
func WithMetrics(m *Metrics) Option {
	return func(opts *Options) {
		if m != nil {
			opts.Metrics = m
		}
	}
}
