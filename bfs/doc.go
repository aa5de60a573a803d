// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node to hop count from start
//   - Parent: map from node to its predecessor in the BFS tree
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Components partitions a graph into connected components.
//
// Edge payloads are ignored. To restrict the search to part of a graph,
// run it on a core.InducedSubgraph or core.Without copy.
//
// Determinism
//
//	core.Graph.Neighbours returns neighbours sorted by id and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|, d = max degree)
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start", bfs.WithContext(ctx), bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or ctx.Err()
//	}
//	path, err := res.PathTo("goal")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached           from PathTo for nodes outside the search.
package bfs
