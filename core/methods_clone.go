// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Copying and clearing graph instances.
// Concurrency:
//   - Clone only reads the source; the copy shares no maps with it.

package core

import "maps"

// Clone returns a deep copy of g: same order function, fresh node, edge and
// adjacency maps. Payloads are copied by value, so payloads holding pointers
// or maps share what they point to.
// Complexity: O(V + E).
func (g *Graph[I, N, E]) Clone() *Graph[I, N, E] {
	adjacency := make(map[I]map[I]struct{}, len(g.adjacency))
	for id, adj := range g.adjacency {
		adjacency[id] = maps.Clone(adj)
	}

	return &Graph[I, N, E]{
		compare:   g.compare,
		nodes:     maps.Clone(g.nodes),
		edges:     maps.Clone(g.edges),
		adjacency: adjacency,
	}
}

// CloneEmpty returns a graph with the same order and nodes but no edges.
// Complexity: O(V).
func (g *Graph[I, N, E]) CloneEmpty() *Graph[I, N, E] {
	out := New[I, N, E](g.compare, WithCapacity(len(g.nodes), 0))
	for id, n := range g.nodes {
		out.nodes[id] = n
		out.adjacency[id] = make(map[I]struct{})
	}

	return out
}

// Clear removes every node and edge, keeping the order function.
func (g *Graph[I, N, E]) Clear() {
	g.nodes = make(map[I]N)
	g.edges = make(map[Pair[I]]E)
	g.adjacency = make(map[I]map[I]struct{})
}
