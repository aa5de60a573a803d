// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle and edge queries.
// Determinism:
//   - Edges() returns entries sorted by (A, B) under the graph's order.

package core

import (
	"fmt"
	"slices"
)

// AddEdge connects a and b with payload e.
//
// Errors:
//   - ErrSelfLoop if a == b;
//   - ErrNodeNotFound if either endpoint is missing;
//   - ErrEdgeExists if {a, b} already has an edge.
//
// Complexity: O(1) amortized.
func (g *Graph[I, N, E]) AddEdge(a, b I, e E) error {
	added, err := g.TryAddEdge(a, b, e)
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("%w: {%v, %v}", ErrEdgeExists, a, b)
	}

	return nil
}

// TryAddEdge connects a and b unless they are already connected, and reports
// whether the edge was added. An existing edge keeps its payload.
// Self-loops and missing endpoints are still errors.
//
// Steps:
//  1. Validate a != b and both endpoints exist.
//  2. Canonicalise the pair; bail out if the edge exists.
//  3. Store the payload and add each endpoint to the other's adjacency set.
func (g *Graph[I, N, E]) TryAddEdge(a, b I, e E) (bool, error) {
	if a == b {
		return false, fmt.Errorf("%w: %v", ErrSelfLoop, a)
	}
	if !g.ContainsNode(a) {
		return false, fmt.Errorf("%w: %v", ErrNodeNotFound, a)
	}
	if !g.ContainsNode(b) {
		return false, fmt.Errorf("%w: %v", ErrNodeNotFound, b)
	}
	k := g.key(a, b)
	if _, exists := g.edges[k]; exists {
		return false, nil
	}
	g.edges[k] = e
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}

	return true, nil
}

// SetEdge replaces the payload of the existing edge {a, b}.
func (g *Graph[I, N, E]) SetEdge(a, b I, e E) error {
	k := g.key(a, b)
	if _, exists := g.edges[k]; !exists {
		return fmt.Errorf("%w: {%v, %v}", ErrEdgeNotFound, a, b)
	}
	g.edges[k] = e

	return nil
}

// Edge returns the payload of {a, b} and whether the edge exists.
func (g *Graph[I, N, E]) Edge(a, b I) (E, bool) {
	e, ok := g.edges[g.key(a, b)]
	return e, ok
}

// ContainsEdge reports whether {a, b} is an edge of g.
func (g *Graph[I, N, E]) ContainsEdge(a, b I) bool {
	_, ok := g.edges[g.key(a, b)]
	return ok
}

// RemoveEdge deletes {a, b} and returns its payload.
// Returns ErrEdgeNotFound if there is no such edge.
// Complexity: O(1).
func (g *Graph[I, N, E]) RemoveEdge(a, b I) (E, error) {
	k := g.key(a, b)
	e, ok := g.edges[k]
	if !ok {
		return e, fmt.Errorf("%w: {%v, %v}", ErrEdgeNotFound, a, b)
	}
	delete(g.edges, k)
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)

	return e, nil
}

// Edges returns every edge with canonical endpoints, sorted by (A, B).
// Complexity: O(E·log E).
func (g *Graph[I, N, E]) Edges() []EdgeEntry[I, E] {
	out := make([]EdgeEntry[I, E], 0, len(g.edges))
	for k, e := range g.edges {
		out = append(out, EdgeEntry[I, E]{A: k.A, B: k.B, Edge: e})
	}
	slices.SortFunc(out, func(x, y EdgeEntry[I, E]) int {
		if c := g.compare(x.A, y.A); c != 0 {
			return c
		}
		return g.compare(x.B, y.B)
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph[I, N, E]) EdgeCount() int { return len(g.edges) }
