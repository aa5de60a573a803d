// SPDX-License-Identifier: MIT

package metric

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/steinerkit/core"
	"github.com/katalvlaran/steinerkit/dijkstra"
)

// Closure returns the metric closure of g under cost: the same node set, and an
// edge {n, m} weighted by the shortest distance for every connected pair n != m.
// The result shares g's id order.
//
// Errors: ErrNilGraph, or a wrapped dijkstra.ErrNegativeCost.
// Complexity: O(V·(V + E + max distance)) time, O(V²) space.
func Closure[I comparable, N, E any](g *core.Graph[I, N, E], cost func(E) int) (*core.Graph[I, struct{}, int], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Nodes()
	out := emptyClosure(g, nodes)
	for _, n := range nodes {
		dist, err := dijkstra.Distances(g, n, cost)
		if err != nil {
			return nil, fmt.Errorf("metric: from %v: %w", n, err)
		}
		insert(out, n, dist)
	}

	return out, nil
}

// ClosureParallel is Closure with the per-source searches spread over at most
// Options.Workers goroutines. g must not be mutated until it returns.
//
// When ctx is cancelled no further sources start and ctx.Err() is returned.
// The first search error cancels the rest and is returned.
func ClosureParallel[I comparable, N, E any](
	ctx context.Context,
	g *core.Graph[I, N, E],
	cost func(E) int,
	opts ...Option,
) (*core.Graph[I, struct{}, int], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger

	nodes := g.Nodes()
	out := emptyClosure(g, nodes)
	var mu sync.Mutex

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.Workers)
	logger.Debug("Starting closure workers.", "nodes", len(nodes), "workers", cfg.Workers)
	for _, n := range nodes {
		if gctx.Err() != nil {
			break
		}
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dist, err := dijkstra.Distances(g, n, cost)
			if err != nil {
				return fmt.Errorf("metric: from %v: %w", n, err)
			}
			mu.Lock()
			defer mu.Unlock()
			insert(out, n, dist)

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		logger.Debug("Closure aborted.", "error", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Debug("Closure complete.", "nodes", out.NodeCount(), "edges", out.EdgeCount())

	return out, nil
}

// Distance looks up the closure distance between a and b. A node is at
// distance 0 from itself; ok is false for unreachable pairs and unknown nodes.
func Distance[I comparable, N any](closure *core.Graph[I, N, int], a, b I) (int, bool) {
	if a == b {
		return 0, closure.ContainsNode(a)
	}

	return closure.Edge(a, b)
}

func emptyClosure[I comparable, N, E any](g *core.Graph[I, N, E], nodes []I) *core.Graph[I, struct{}, int] {
	out := core.New[I, struct{}, int](g.Comparator(), core.WithCapacity(len(nodes), len(nodes)*(len(nodes)-1)/2))
	for _, n := range nodes {
		out.TryAddNode(n, struct{}{})
	}

	return out
}

// insert adds {n, m} for every reached m. Distances are symmetric, so the
// second run that sees a pair finds the edge already there.
func insert[I comparable](out *core.Graph[I, struct{}, int], n I, dist map[I]int) {
	for m, d := range dist {
		if m != n {
			_, _ = out.TryAddEdge(n, m, d)
		}
	}
}
