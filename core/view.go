// SPDX-License-Identifier: MIT

// File: view.go
// Role: Non-mutating derived graphs (restricted or re-typed copies).
// Concurrency:
//   - The source is only read; every result is a fresh graph.

package core

// InducedSubgraph returns a new graph with the nodes of g for which keep
// returns true, and every edge whose endpoints are both kept.
// g is not mutated.
// Complexity: O(V + E).
func InducedSubgraph[I comparable, N, E any](g *Graph[I, N, E], keep func(id I) bool) *Graph[I, N, E] {
	out := New[I, N, E](g.compare, WithCapacity(len(g.nodes), len(g.edges)))
	for id, n := range g.nodes {
		if keep(id) {
			out.nodes[id] = n
			out.adjacency[id] = make(map[I]struct{})
		}
	}
	for k, e := range g.edges {
		if !out.ContainsNode(k.A) || !out.ContainsNode(k.B) {
			continue
		}
		out.edges[k] = e
		out.adjacency[k.A][k.B] = struct{}{}
		out.adjacency[k.B][k.A] = struct{}{}
	}

	return out
}

// Without returns a copy of g with the given nodes (and their edges) removed,
// e.g. to make some positions impassable for one query. Ids that are not in g
// are ignored.
// Complexity: O(V + E).
func Without[I comparable, N, E any](g *Graph[I, N, E], ids ...I) *Graph[I, N, E] {
	drop := make(map[I]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	return InducedSubgraph(g, func(id I) bool {
		_, skip := drop[id]
		return !skip
	})
}

// MapEdges returns a graph with the topology and node payloads of g and every
// edge payload replaced by fn(payload).
// Complexity: O(V + E).
func MapEdges[I comparable, N, E, F any](g *Graph[I, N, E], fn func(E) F) *Graph[I, N, F] {
	out := New[I, N, F](g.compare, WithCapacity(len(g.nodes), len(g.edges)))
	for id, n := range g.nodes {
		out.nodes[id] = n
		out.adjacency[id] = make(map[I]struct{}, len(g.adjacency[id]))
	}
	for k, e := range g.edges {
		out.edges[k] = fn(e)
		out.adjacency[k.A][k.B] = struct{}{}
		out.adjacency[k.B][k.A] = struct{}{}
	}

	return out
}
