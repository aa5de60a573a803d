// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
	"slices"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source node is not in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found")

	// ErrNegativeCost indicates that the cost function returned a negative cost.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost")

	// ErrUnreachable indicates that Search finalized every reachable node and
	// none of them satisfied the stop predicate.
	ErrUnreachable = errors.New("dijkstra: no matching node reachable")
)

// Options configures the int-cost searches.
type Options struct {
	// MaxDistance stops exploration once the smallest queued distance exceeds it.
	// Nodes farther away are reported as unreachable.
	MaxDistance int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns an unbounded search.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt}
}

// WithMaxDistance bounds the explored radius. Panics if d < 0.
func WithMaxDistance(d int) Option {
	if d < 0 {
		panic("dijkstra: WithMaxDistance requires d >= 0")
	}

	return func(o *Options) { o.MaxDistance = d }
}

// Result describes the node found by Search.
type Result[I comparable] struct {
	// Target is the first finalized node accepted by the stop predicate.
	Target I
	// Distance is the shortest distance from the source to Target.
	Distance int
	// Hops is the number of edges on the reconstructed path.
	Hops int

	prev map[I]I
}

// Path returns the nodes from the source to Target, both inclusive.
// It walks predecessor links back from Target until it reaches the node that
// is its own predecessor (the source).
// Complexity: O(Hops).
func (r *Result[I]) Path() []I {
	path := make([]I, 0, r.Hops+1)
	for n := r.Target; ; {
		path = append(path, n)
		p := r.prev[n]
		if p == n {
			break
		}
		n = p
	}
	slices.Reverse(path)

	return path
}
