// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/steinerkit/bucketqueue"
	"github.com/katalvlaran/steinerkit/core"
)

// Distances returns the shortest distance from source to every node reachable
// from it, using int edge costs and a bucket queue.
// Unreachable nodes are absent from the map.
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrNegativeCost.
// Complexity: O(V + E + max distance) time, O(V + E) space.
func Distances[I comparable, N, E any](
	g *core.Graph[I, N, E],
	source I,
	cost func(E) int,
	opts ...Option,
) (map[I]int, error) {
	r, err := newRunner(g, source, cost, false, opts)
	if err != nil {
		return nil, err
	}
	if _, err = r.run(nil); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// Search finalizes nodes in order of distance from source and returns the first
// one for which stop returns true (source included). Neighbours are expanded in
// id order and ties are popped first-in first-out, so the reported path is
// stable across runs.
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrNegativeCost, and ErrUnreachable
// when no reachable node satisfies stop.
// Complexity: O(V·log d + E + max distance) in the worst case.
func Search[I comparable, N, E any](
	g *core.Graph[I, N, E],
	source I,
	cost func(E) int,
	stop func(I) bool,
	opts ...Option,
) (*Result[I], error) {
	r, err := newRunner(g, source, cost, true, opts)
	if err != nil {
		return nil, err
	}
	target, err := r.run(stop)
	if err != nil {
		return nil, err
	}

	return &Result[I]{
		Target:   target,
		Distance: r.dist[target],
		Hops:     r.hops[target],
		prev:     r.prev,
	}, nil
}

// step is one queued candidate: reach node through prev.
type step[I comparable] struct {
	node I
	prev I
}

// runner holds the mutable state of one int-cost search.
type runner[I comparable, N, E any] struct {
	g       *core.Graph[I, N, E]
	cost    func(E) int
	options Options
	dist    map[I]int // finalized distances
	prev    map[I]I   // predecessor links; nil unless tracking
	hops    map[I]int // edges from source; nil unless tracking
	pq      *bucketqueue.Queue[step[I]]
}

// newRunner validates the inputs and seeds the queue with (0, source).
func newRunner[I comparable, N, E any](
	g *core.Graph[I, N, E],
	source I,
	cost func(E) int,
	track bool,
	opts []Option,
) (*runner[I, N, E], error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.ContainsNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Allocate state. Path tracking needs FIFO buckets so that the first
	//    discovered predecessor wins ties.
	r := &runner[I, N, E]{
		g:       g,
		cost:    cost,
		options: cfg,
		dist:    make(map[I]int, g.NodeCount()),
	}
	if track {
		r.prev = make(map[I]I, g.NodeCount())
		r.hops = make(map[I]int, g.NodeCount())
		r.pq = bucketqueue.NewWith(bucketqueue.NewFIFO[step[I]])
	} else {
		r.pq = bucketqueue.New[step[I]]()
	}

	// 3) The source is its own predecessor.
	r.pq.Push(0, step[I]{node: source, prev: source})

	return r, nil
}

// run drains the queue. With a non-nil stop it returns the first finalized
// node accepted by stop, or ErrUnreachable.
func (r *runner[I, N, E]) run(stop func(I) bool) (I, error) {
	var zero I
	for {
		// 1) Pop the closest candidate.
		d, s, ok := r.pq.Pop()
		if !ok || d > r.options.MaxDistance {
			break
		}

		// 2) Skip stale entries.
		if _, done := r.dist[s.node]; done {
			continue
		}

		// 3) Finalize.
		r.dist[s.node] = d
		if r.prev != nil {
			r.prev[s.node] = s.prev
			if s.prev != s.node {
				r.hops[s.node] = r.hops[s.prev] + 1
			}
		}
		if stop != nil && stop(s.node) {
			return s.node, nil
		}

		// 4) Relax.
		if err := r.relax(s.node, d); err != nil {
			return zero, err
		}
	}
	if stop != nil {
		return zero, ErrUnreachable
	}

	return zero, nil
}

// relax pushes every unfinalized neighbour of n at d + cost(e).
func (r *runner[I, N, E]) relax(n I, d int) error {
	if r.prev == nil {
		var bad error
		_ = r.g.VisitNeighbours(n, func(m I, e E) {
			if bad == nil {
				bad = r.push(n, m, d, e)
			}
		})

		return bad
	}

	nbs, err := r.g.Neighbours(n)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbours of %v: %w", n, err)
	}
	for _, nb := range nbs {
		if err = r.push(n, nb.ID, d, nb.Edge); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner[I, N, E]) push(n, m I, d int, e E) error {
	if _, done := r.dist[m]; done {
		return nil
	}
	c := r.cost(e)
	if c < 0 {
		return fmt.Errorf("%w: {%v, %v} costs %d", ErrNegativeCost, n, m, c)
	}
	r.pq.Push(d+c, step[I]{node: m, prev: n})

	return nil
}
