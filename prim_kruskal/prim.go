// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/steinerkit/bucketqueue"
	"github.com/katalvlaran/steinerkit/core"
)

// frontier is a candidate edge from the tree (from) to an outside node (to).
type frontier[I comparable, E any, C core.Cost] struct {
	c    C
	from I
	to   I
	e    E
}

// Prim computes a minimum spanning tree of g under cost by growing it from
// root. Edges come back in the order they were added, oriented as
// (tree node, new node) in A and B.
//
// Ties between equal-cost candidates are broken by the new node's id and then
// by the tree endpoint's id, so the result is reproducible.
//
// Errors:
//   - ErrInvalidGraph : g is nil.
//   - ErrRootNotFound : root is not a node of g.
//   - ErrDisconnected : some node is not reachable from root.
//
// Steps:
//  1. Mark root visited and push its incident edges.
//  2. Pop the cheapest candidate; skip it if its far end is already visited.
//  3. Otherwise add it, mark the far end and push its edges to unvisited nodes.
//  4. After the heap drains, every node must be visited.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[I comparable, N, E any, C core.Cost](
	g *core.Graph[I, N, E],
	root I,
	cost func(E) C,
) ([]core.EdgeEntry[I, E], C, error) {
	// 1. Validate.
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	if !g.ContainsNode(root) {
		return nil, 0, fmt.Errorf("%w: %v", ErrRootNotFound, root)
	}

	compare := g.Comparator()
	pq := bucketqueue.NewHeap(func(x, y frontier[I, E, C]) bool {
		if x.c != y.c {
			return x.c < y.c
		}
		if c := compare(x.to, y.to); c != 0 {
			return c < 0
		}
		return compare(x.from, y.from) < 0
	})
	visited := make(map[I]struct{}, g.NodeCount())
	expand := func(u I) {
		visited[u] = struct{}{}
		_ = g.VisitNeighbours(u, func(v I, e E) {
			if _, done := visited[v]; !done {
				pq.Push(frontier[I, E, C]{c: cost(e), from: u, to: v, e: e})
			}
		})
	}
	expand(root)

	// 2-3. Grow.
	mst := make([]core.EdgeEntry[I, E], 0, g.NodeCount()-1)
	var total C
	for pq.Len() > 0 && len(visited) < g.NodeCount() {
		f, _ := pq.Pop()
		if _, done := visited[f.to]; done {
			continue
		}
		mst = append(mst, core.EdgeEntry[I, E]{A: f.from, B: f.to, Edge: f.e})
		total += f.c
		expand(f.to)
	}

	// 4. Coverage.
	if len(visited) != g.NodeCount() {
		return nil, 0, fmt.Errorf("%w: reached %d of %d nodes", ErrDisconnected, len(visited), g.NodeCount())
	}

	return mst, total, nil
}
