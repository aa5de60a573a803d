// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative edge costs.
//
// Overview:
//
//   - Distances runs over int costs on a bucketqueue.Queue. Costs on boards are
//     tiny ({0,1,2}), so every push lands a couple of buckets past Front and each
//     queue operation is amortized O(1).
//   - DistancesOrdered runs over any core.Cost on a binary heap.
//   - Search is the stop-early variant: it finalizes nodes in distance order and
//     returns the first one accepted by a predicate, with its hop count and a
//     predecessor chain for path reconstruction.
//
// Costs are supplied as a function of the edge payload, so one graph can be
// searched under several cost models. There is no infinite cost: impassable
// edges are left out of the graph when it is built.
//
// Algorithm (lazy decrease-key):
//
//  1. Seed the queue with (0, source).
//  2. Pop the smallest (d, n). If n is already finalized, skip it.
//  3. Finalize dist[n] = d and push (d + cost(e), m) for every neighbour m
//     that is not finalized yet.
//  4. Stop when the queue is empty (or, in Search, when stop(n) holds).
//
// Complexity:
//
//	Distances        - Time O(V + E + maxDist), Space O(V + E)
//	DistancesOrdered - Time O((V + E) log E),   Space O(V + E)
//	Search           - bounded by Distances; usually far less
//
// Errors:
//
//	ErrNilGraph       - g is nil
//	ErrSourceNotFound - source is not a node of g
//	ErrNegativeCost   - the cost function returned a negative value
//	ErrUnreachable    - Search exhausted the reachable set without a match
//
// Concurrency: all functions only read g. Any number of searches may share one
// graph as long as nobody mutates it meanwhile.
package dijkstra
