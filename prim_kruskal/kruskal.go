// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/steinerkit/core"
	"github.com/katalvlaran/steinerkit/unionfind"
)

// Kruskal computes a minimum spanning tree of g under cost.
// Edges come back in the order they were accepted (ascending cost, ties by
// canonical endpoints), together with the total cost.
//
// Errors:
//   - ErrInvalidGraph : g is nil.
//   - ErrDisconnected : g is empty or not connected.
//
// Steps:
//  1. Index the sorted node ids 0..V-1 for the disjoint-set forest.
//  2. Take g.Edges() (sorted by endpoints) and stable-sort by cost.
//  3. Accept every edge whose endpoints are in different sets; stop at V-1.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal[I comparable, N, E any, C core.Cost](
	g *core.Graph[I, N, E],
	cost func(E) C,
) ([]core.EdgeEntry[I, E], C, error) {
	// 1. Validate.
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, 0, ErrDisconnected
	}
	index := make(map[I]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	// 2. Order candidate edges.
	edges := g.Edges()
	slices.SortStableFunc(edges, func(x, y core.EdgeEntry[I, E]) int {
		return cmp.Compare(cost(x.Edge), cost(y.Edge))
	})

	// 3. Grow the forest.
	ds := unionfind.New(len(nodes))
	mst := make([]core.EdgeEntry[I, E], 0, len(nodes)-1)
	var total C
	for _, e := range edges {
		if !ds.Union(index[e.A], index[e.B]) {
			continue
		}
		mst = append(mst, e)
		total += cost(e.Edge)
		if ds.SetCount() == 1 {
			break
		}
	}

	if ds.SetCount() != 1 {
		return nil, 0, fmt.Errorf("%w: %d components", ErrDisconnected, ds.SetCount())
	}

	return mst, total, nil
}

// SpanningLength returns the weight of a minimum spanning tree of the complete
// graph on nodes, where the weight of {a, b} is the closure edge between them
// (a metric closure as built by package metric). Missing closure edges mean
// "unreachable" and are never used. Duplicate ids count once.
//
// Over a seed and its terminals the result is at most twice the optimal
// Steiner tree cost, and a greedy Steiner tree never exceeds it.
//
// Errors:
//   - ErrInvalidGraph      : closure is nil.
//   - core.ErrNodeNotFound : an id in nodes is not in closure.
//   - ErrDisconnected      : some pair of nodes is in different components.
//
// Complexity: O(k² log k) for k distinct nodes.
func SpanningLength[I comparable, N any](closure *core.Graph[I, N, int], nodes []I) (int, error) {
	if closure == nil {
		return 0, ErrInvalidGraph
	}

	// 1. Deduplicate and validate.
	uniq := make([]I, 0, len(nodes))
	seen := make(map[I]struct{}, len(nodes))
	for _, id := range nodes {
		if _, dup := seen[id]; dup {
			continue
		}
		if !closure.ContainsNode(id) {
			return 0, fmt.Errorf("%w: %v", core.ErrNodeNotFound, id)
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	if len(uniq) < 2 {
		return 0, nil
	}
	slices.SortFunc(uniq, closure.Comparator())

	// 2. Every reachable pair is a candidate edge.
	type pair struct{ a, b, w int }
	cands := make([]pair, 0, len(uniq)*(len(uniq)-1)/2)
	for i := range uniq {
		for j := i + 1; j < len(uniq); j++ {
			if w, ok := closure.Edge(uniq[i], uniq[j]); ok {
				cands = append(cands, pair{a: i, b: j, w: w})
			}
		}
	}
	slices.SortStableFunc(cands, func(x, y pair) int { return cmp.Compare(x.w, y.w) })

	// 3. Kruskal over indices.
	ds := unionfind.New(len(uniq))
	total := 0
	for _, c := range cands {
		if ds.Union(c.a, c.b) {
			total += c.w
			if ds.SetCount() == 1 {
				break
			}
		}
	}
	if ds.SetCount() != 1 {
		return 0, fmt.Errorf("%w: %d components", ErrDisconnected, ds.SetCount())
	}

	return total, nil
}
