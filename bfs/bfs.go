// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/steinerkit/bucketqueue"
	"github.com/katalvlaran/steinerkit/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[I comparable] struct {
	id    I
	depth int
}

// walker encapsulates mutable BFS state.
type walker[I comparable, N, E any] struct {
	graph *core.Graph[I, N, E]
	opts  BFSOptions
	ctx   context.Context
	queue bucketqueue.Bag[queueItem[I]]
	res   *BFSResult[I]
}

// BFS runs breadth-first search on g from start, ignoring edge payloads.
// Neighbours are expanded in id order, so Order and Parent are reproducible.
// To exclude nodes, search a core.Without / core.InducedSubgraph copy.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or the
// context error on cancellation (with the partial result).
// Complexity: O(V + E·log d) time, O(V) memory.
func BFS[I comparable, N, E any](g *core.Graph[I, N, E], start I, opts ...Option) (*BFSResult[I], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.ContainsNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[I, N, E]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: bucketqueue.NewFIFO[queueItem[I]](),
		res: &BFSResult[I]{
			Order:  make([]I, 0, n),
			Depth:  make(map[I]int, n),
			Parent: make(map[I]I, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue.Push(queueItem[I]{id: start})

	return w.res, w.loop()
}

// loop processes the queue until empty or cancellation.
func (w *walker[I, N, E]) loop() error {
	for {
		item, ok := w.queue.Pop()
		if !ok {
			return nil
		}
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		w.res.Order = append(w.res.Order, item.id)
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		nbs, err := w.graph.Neighbours(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbours of %v: %w", item.id, err)
		}
		for _, nb := range nbs {
			if _, seen := w.res.Depth[nb.ID]; seen {
				continue
			}
			w.res.Depth[nb.ID] = item.depth + 1
			w.res.Parent[nb.ID] = item.id
			w.queue.Push(queueItem[I]{id: nb.ID, depth: item.depth + 1})
		}
	}
}

// Components partitions the nodes of g into connected components. Each
// component is sorted by id and components are ordered by their smallest id.
// Complexity: O(V·log V + E·log d).
func Components[I comparable, N, E any](g *core.Graph[I, N, E]) ([][]I, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out [][]I
	seen := make(map[I]struct{}, g.NodeCount())
	for _, id := range g.Nodes() {
		if _, ok := seen[id]; ok {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := make([]I, 0, len(res.Order))
		for _, m := range res.Order {
			seen[m] = struct{}{}
			comp = append(comp, m)
		}
		slices.SortFunc(comp, g.Comparator())
		out = append(out, comp)
	}

	return out, nil
}
