// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees over a core.Graph:
// Kruskal's algorithm on the unionfind forest, Prim's algorithm on a
// bucketqueue.Heap, and SpanningLength, the MST weight of a node set inside a
// metric closure.
//
// What & Why
//
//   - An MST of a connected undirected graph is a spanning edge set of minimum
//     total cost.
//   - The MST of the terminals in the metric closure bounds a Steiner tree from
//     both sides: the optimal Steiner cost is at least half of it, and the
//     greedy steiner.Tree never costs more than it. SpanningLength answers
//     exactly that query without materialising the tree.
//
// Algorithms Provided
//
//   - Kruskal(g, cost) ([]core.EdgeEntry[I, E], C, error)
//     Stable sort of g.Edges() by cost, then union-find over indexed node ids.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, root, cost) ([]core.EdgeEntry[I, E], C, error)
//     Grows one tree from root over a binary heap of frontier edges.
//     Time O(E log E), space O(V + E).
//
//   - SpanningLength(closure, nodes) (int, error)
//     Kruskal over the complete graph on nodes weighted by closure edges.
//     Time O(k² log k) for k nodes.
//
//   - Compute(g, cost, WithMethod(m)) dispatches to either algorithm.
//
// Error Conditions
//
//	ErrInvalidGraph  - graph is nil
//	ErrRootNotFound  - Prim root is not a node
//	ErrDisconnected  - graph is empty or has more than one component
//
// Determinism: g.Edges() is sorted by endpoints and Kruskal sorts stably, so
// equal-cost edges are taken in endpoint order. Prim breaks ties by node id.
// Both methods return the same total; the edge sets may differ when costs tie.
package prim_kruskal
