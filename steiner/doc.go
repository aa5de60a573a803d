// SPDX-License-Identifier: MIT

// Package steiner connects a seed node and a set of terminals with a greedy
// nearest-terminal Steiner tree.
//
// Finding a minimum Steiner tree is NP-hard. This package implements the
// classic shortest-path heuristic instead:
//
//  1. The tree starts as {seed}; every terminal not yet in it is unreached.
//  2. Run one multi-source Dijkstra from all unreached terminals at distance
//     0 until the first node already in the tree is finalized. The terminal
//     that search started from is the cheapest one to connect.
//  3. Splice that path into the tree, add its cost, and drop every unreached
//     terminal the path passes through.
//  4. Repeat until nothing is unreached.
//
// The result is a valid connecting tree whose cost never exceeds the MST of
// the terminals in the metric closure (see prim_kruskal.SpanningLength), but
// it is not guaranteed to be minimal.
//
// Two variants share the loop:
//
//	Tree    - any core.Cost, binary heap frontier
//	TreeInt - int costs, bucket-queue frontier (faster for small costs)
//
// Candidates are totally ordered by (cost, node id, origin): a terminal's own
// root entry precedes entries reaching it over an edge, and those are ordered
// by predecessor id. Both frontiers pop in exactly that order, so for the same
// input the two variants build the same tree.
//
// Tree edges carry the payload of the source edge, so callers can re-cost the
// tree under another model.
//
// Errors:
//
//	ErrNilGraph         - g is nil
//	ErrSeedNotFound     - seed is not a node of g
//	ErrTerminalNotFound - a terminal is not a node of g
//	ErrNegativeCost     - the cost function returned a negative value
//	ErrUnreachable      - some terminals cannot reach the tree (wraps them)
package steiner
