// SPDX-License-Identifier: MIT

// Package metric builds the metric closure of a core.Graph: a graph on the same
// nodes whose edge {a, b} carries the shortest-path distance between a and b.
//
// The closure costs one dijkstra.Distances run per node, O(V·(V + E)) in total,
// and turns every later pairwise distance query into a single map lookup. It is
// the input for spanning-tree bounds over terminal sets
// (prim_kruskal.SpanningLength).
//
// Closure runs sequentially. ClosureParallel fans the sources out over a
// bounded errgroup; workers only read the input graph and serialise their
// inserts into the output behind one mutex, so both produce the same graph.
//
// Unreachable pairs get no edge; Distance reports them with ok == false.
package metric
