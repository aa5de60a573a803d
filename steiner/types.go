// SPDX-License-Identifier: MIT

package steiner

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/steinerkit/bucketqueue"
	"github.com/katalvlaran/steinerkit/core"
)

// Sentinel errors.
var (
	ErrNilGraph         = errors.New("steiner: graph is nil")
	ErrSeedNotFound     = errors.New("steiner: seed node not found")
	ErrTerminalNotFound = errors.New("steiner: terminal node not found")
	ErrNegativeCost     = errors.New("steiner: negative edge cost")
	ErrUnreachable      = errors.New("steiner: terminals unreachable from tree")
)

// Options configures a tree construction.
type Options struct {
	// Logger receives one debug record per spliced path.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions discards log output.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("steiner: WithLogger requires a non-nil logger")
	}

	return func(o *Options) { o.Logger = l }
}

// entry is a search candidate: node reached from prev, or a terminal root
// (root == true, prev == node).
type entry[I comparable] struct {
	node I
	prev I
	root bool
}

// entryLess orders candidates of equal cost by node id, then roots before
// links, then links by predecessor id.
func entryLess[I comparable](compare func(a, b I) int) func(x, y entry[I]) bool {
	return func(x, y entry[I]) bool {
		if c := compare(x.node, y.node); c != 0 {
			return c < 0
		}
		if x.root != y.root {
			return x.root
		}
		return compare(x.prev, y.prev) < 0
	}
}

// frontier is the priority structure behind one search.
// *bucketqueue.Queue[entry[I]] satisfies it for int costs.
type frontier[I comparable, C core.Cost] interface {
	Push(c C, x entry[I])
	Pop() (C, entry[I], bool)
	Clear()
}

// costed is a heap item of the ordered-cost frontier.
type costed[I comparable, C core.Cost] struct {
	c C
	x entry[I]
}

// heapFrontier adapts a bucketqueue.Heap to frontier.
type heapFrontier[I comparable, C core.Cost] struct {
	h *bucketqueue.Heap[costed[I, C]]
}

func newHeapFrontier[I comparable, C core.Cost](compare func(a, b I) int) heapFrontier[I, C] {
	less := entryLess(compare)
	return heapFrontier[I, C]{h: bucketqueue.NewHeap(func(a, b costed[I, C]) bool {
		if a.c != b.c {
			return a.c < b.c
		}
		return less(a.x, b.x)
	})}
}

func (f heapFrontier[I, C]) Push(c C, x entry[I]) { f.h.Push(costed[I, C]{c: c, x: x}) }

func (f heapFrontier[I, C]) Pop() (C, entry[I], bool) {
	y, ok := f.h.Pop()
	return y.c, y.x, ok
}

func (f heapFrontier[I, C]) Clear() { f.h.Clear() }
