// SPDX-License-Identifier: MIT

package metric

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
)

// ErrNilGraph indicates that a nil graph was passed.
var ErrNilGraph = errors.New("metric: graph is nil")

// Options configures ClosureParallel.
type Options struct {
	// Workers bounds the number of concurrent Dijkstra runs.
	Workers int
	// Logger receives debug records about the fan-out.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses GOMAXPROCS workers and discards log output.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers sets the worker bound. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("metric: WithWorkers requires n >= 1")
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("metric: WithLogger requires a non-nil logger")
	}

	return func(o *Options) { o.Logger = l }
}
