// SPDX-License-Identifier: MIT

// Package steinerkit is an in-memory engine for weighted undirected graphs,
// built around greedy Steiner-tree approximation.
//
// What is in the box?
//
//	• core/         generic Graph[I, N, E] with canonical undirected edges
//	• bucketqueue/  integer bucketed priority queue over pluggable bags
//	• unionfind/    disjoint-set forest (path halving, union by size)
//	• dijkstra/     single-source shortest paths, stop-early search
//	• metric/       all-pairs metric closure, sequential or bounded-parallel
//	• steiner/      greedy Steiner tree over ordered or integer costs
//	• prim_kruskal/ minimum spanning trees and closure spanning length
//	• bfs/          hop-count traversal and connected components
//	• lattice/      hexagonal board positions and board-graph construction
//
// Quick ASCII example:
//
//	    A─1─B─1─C
//	        │
//	        1
//	        │
//	        D
//
// connecting A, C and D costs 3, and every path passes through B.
//
// Graphs are not internally synchronised: concurrent read-only algorithms on
// one graph are safe, mutation must be serialised by the caller.
//
//	go get github.com/katalvlaran/steinerkit
package steinerkit
