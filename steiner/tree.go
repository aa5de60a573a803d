// SPDX-License-Identifier: MIT

package steiner

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/steinerkit/bucketqueue"
	"github.com/katalvlaran/steinerkit/core"
)

// Tree connects seed and every terminal in g and returns the total cost and
// the tree. The tree shares g's id order; its edges carry g's edge payloads.
// Terminals may repeat and may include seed.
//
// Complexity: O(T·(V + E)·log E) for T terminals in the worst case.
func Tree[I comparable, N, E any, C core.Cost](
	g *core.Graph[I, N, E],
	seed I,
	terminals []I,
	cost func(E) C,
	opts ...Option,
) (C, *core.Graph[I, struct{}, E], error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	b := newBuilder(g, seed, cost, opts)

	return b.grow(terminals, newHeapFrontier[I, C](g.Comparator()))
}

// TreeInt is Tree for int costs on a bucket queue whose buckets are heaps
// under the same tie order. It returns the same tree as Tree.
//
// Complexity: O(T·(V + E + max distance)) amortized, plus the per-bucket
// heap cost for ties.
func TreeInt[I comparable, N, E any](
	g *core.Graph[I, N, E],
	seed I,
	terminals []I,
	cost func(E) int,
	opts ...Option,
) (int, *core.Graph[I, struct{}, E], error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	b := newBuilder(g, seed, cost, opts)
	q := bucketqueue.NewWith(bucketqueue.HeapOf(entryLess(g.Comparator())))

	return b.grow(terminals, q)
}

// builder holds the state shared by the successive searches of one tree.
type builder[I comparable, N, E any, C core.Cost] struct {
	g        *core.Graph[I, N, E]
	seed     I
	cost     func(E) C
	options  Options
	tree     *core.Graph[I, struct{}, E]
	incoming map[I]entry[I] // how each finalized node was reached
}

func newBuilder[I comparable, N, E any, C core.Cost](
	g *core.Graph[I, N, E],
	seed I,
	cost func(E) C,
	opts []Option,
) *builder[I, N, E, C] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &builder[I, N, E, C]{
		g:        g,
		seed:     seed,
		cost:     cost,
		options:  cfg,
		tree:     core.New[I, struct{}, E](g.Comparator()),
		incoming: make(map[I]entry[I]),
	}
}

// grow runs the greedy loop over q.
func (b *builder[I, N, E, C]) grow(terminals []I, q frontier[I, C]) (C, *core.Graph[I, struct{}, E], error) {
	// 1) Validate and seed the tree.
	if !b.g.ContainsNode(b.seed) {
		return 0, nil, fmt.Errorf("%w: %v", ErrSeedNotFound, b.seed)
	}
	b.tree.TryAddNode(b.seed, struct{}{})
	unreached := make(map[I]struct{}, len(terminals))
	for _, t := range terminals {
		if !b.g.ContainsNode(t) {
			return 0, nil, fmt.Errorf("%w: %v", ErrTerminalNotFound, t)
		}
		if t != b.seed {
			unreached[t] = struct{}{}
		}
	}

	var total C
	for len(unreached) > 0 {
		// 2) Search from every unreached terminal at once.
		clear(b.incoming)
		q.Clear()
		for t := range unreached {
			q.Push(0, entry[I]{node: t, prev: t, root: true})
		}
		attach, pathCost, found, err := b.search(q)
		if err != nil {
			return 0, nil, err
		}
		if !found {
			rest := slices.SortedFunc(maps.Keys(unreached), b.g.Comparator())
			return 0, nil, fmt.Errorf("%w: %v", ErrUnreachable, rest)
		}

		// 3) Splice the path from attach back to its terminal.
		total += pathCost
		n, hops := attach, 0
		for x := b.incoming[n]; !x.root; x = b.incoming[n] {
			e, _ := b.g.Edge(x.prev, n)
			b.tree.TryAddNode(x.prev, struct{}{})
			if err = b.tree.AddEdge(x.prev, n, e); err != nil {
				return 0, nil, fmt.Errorf("steiner: splice %v-%v: %w", x.prev, n, err)
			}
			delete(unreached, x.prev)
			n = x.prev
			hops++
		}
		delete(unreached, n)
		b.options.Logger.Debug("Spliced path into tree.",
			"terminal", n, "attach", attach, "cost", pathCost, "hops", hops, "remaining", len(unreached))
	}

	return total, b.tree, nil
}

// search pops candidates until a tree node is finalized and returns it with
// its distance. found is false when the reachable set is exhausted first.
func (b *builder[I, N, E, C]) search(q frontier[I, C]) (attach I, dist C, found bool, err error) {
	for {
		c, x, ok := q.Pop()
		if !ok {
			return attach, 0, false, nil
		}
		if _, seen := b.incoming[x.node]; seen {
			continue
		}
		b.incoming[x.node] = x
		if b.tree.ContainsNode(x.node) {
			return x.node, c, true, nil
		}

		_ = b.g.VisitNeighbours(x.node, func(m I, e E) {
			if _, seen := b.incoming[m]; seen || err != nil {
				return
			}
			w := b.cost(e)
			if w < 0 {
				err = fmt.Errorf("%w: {%v, %v} costs %v", ErrNegativeCost, x.node, m, w)
				return
			}
			q.Push(c+w, entry[I]{node: m, prev: x.node})
		})
		if err != nil {
			return attach, 0, false, err
		}
	}
}
