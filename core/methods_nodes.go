// SPDX-License-Identifier: MIT

// File: methods_nodes.go
// Role: Node lifecycle and node queries.
// Determinism:
//   - Nodes() returns ids sorted by the graph's order.

package core

import (
	"fmt"
	"slices"
)

// AddNode inserts node id with payload n.
// Returns ErrNodeExists if id is already present; the graph is unchanged then.
// Complexity: O(1) amortized.
func (g *Graph[I, N, E]) AddNode(id I, n N) error {
	if !g.TryAddNode(id, n) {
		return fmt.Errorf("%w: %v", ErrNodeExists, id)
	}

	return nil
}

// TryAddNode inserts node id with payload n and reports whether it was added.
// An existing node keeps its payload.
func (g *Graph[I, N, E]) TryAddNode(id I, n N) bool {
	if _, exists := g.nodes[id]; exists {
		return false
	}
	g.nodes[id] = n
	g.adjacency[id] = make(map[I]struct{})

	return true
}

// SetNode replaces the payload of an existing node.
func (g *Graph[I, N, E]) SetNode(id I, n N) error {
	if _, exists := g.nodes[id]; !exists {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	g.nodes[id] = n

	return nil
}

// Node returns the payload of id and whether the node exists.
func (g *Graph[I, N, E]) Node(id I) (N, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// ContainsNode reports whether id is a node of g.
// Complexity: O(1).
func (g *Graph[I, N, E]) ContainsNode(id I) bool {
	_, ok := g.nodes[id]
	return ok
}

// RemoveNode deletes id and every incident edge, returning its payload.
// Returns ErrNodeNotFound if id is absent.
//
// Steps:
//  1. Look up and delete the node payload.
//  2. For each neighbour j: delete edge {id, j} and id from adj[j].
//  3. Delete adj[id].
//
// Complexity: O(deg(id)).
func (g *Graph[I, N, E]) RemoveNode(id I) (N, error) {
	n, ok := g.TryRemoveNode(id)
	if !ok {
		return n, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}

	return n, nil
}

// TryRemoveNode is RemoveNode reporting absence as ok == false.
func (g *Graph[I, N, E]) TryRemoveNode(id I) (N, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return n, false
	}
	delete(g.nodes, id)
	for j := range g.adjacency[id] {
		delete(g.edges, g.key(id, j))
		delete(g.adjacency[j], id)
	}
	delete(g.adjacency, id)

	return n, true
}

// FilterNodes removes every node for which keep returns false, together with
// its incident edges, and returns the number of nodes removed.
// Complexity: O(V) plus O(deg) per removed node.
func (g *Graph[I, N, E]) FilterNodes(keep func(id I, n N) bool) int {
	var drop []I
	for id, n := range g.nodes {
		if !keep(id, n) {
			drop = append(drop, id)
		}
	}
	for _, id := range drop {
		g.TryRemoveNode(id)
	}

	return len(drop)
}

// Nodes returns all node ids sorted by the graph's order.
// Complexity: O(V·log V).
func (g *Graph[I, N, E]) Nodes() []I {
	ids := make([]I, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, g.compare)

	return ids
}

// NodeCount returns |V|.
func (g *Graph[I, N, E]) NodeCount() int { return len(g.nodes) }

// Degree returns the number of neighbours of id.
func (g *Graph[I, N, E]) Degree(id I) (int, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}

	return len(adj), nil
}
