// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighbourhood queries.
// Determinism:
//   - Neighbours() is sorted by neighbour id.
//   - VisitNeighbours() follows map order; use it on hot paths where order is irrelevant.

package core

import (
	"fmt"
	"slices"
)

// Neighbours returns the (neighbour id, edge payload) pairs of id, sorted by
// neighbour id. Returns ErrNodeNotFound if id is absent.
// Complexity: O(d·log d).
func (g *Graph[I, N, E]) Neighbours(id I) ([]Neighbour[I, E], error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	out := make([]Neighbour[I, E], 0, len(adj))
	for j := range adj {
		out = append(out, Neighbour[I, E]{ID: j, Edge: g.edges[g.key(id, j)]})
	}
	slices.SortFunc(out, func(x, y Neighbour[I, E]) int { return g.compare(x.ID, y.ID) })

	return out, nil
}

// VisitNeighbours calls fn once per neighbour of id with the connecting edge's
// payload, in unspecified order, without allocating.
// fn must not mutate g. Returns ErrNodeNotFound if id is absent.
// Complexity: O(d).
func (g *Graph[I, N, E]) VisitNeighbours(id I, fn func(m I, e E)) error {
	adj, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	for j := range adj {
		fn(j, g.edges[g.key(id, j)])
	}

	return nil
}
