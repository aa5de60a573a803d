// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/steinerkit/bucketqueue"
	"github.com/katalvlaran/steinerkit/core"
)

// candidate is a heap entry: tentative distance d for node id.
type candidate[I comparable, C core.Cost] struct {
	d  C
	id I
}

// DistancesOrdered is Distances for any ordered, additive cost type, backed by
// a binary min-heap instead of the bucket queue. Use it for float or wide
// integer costs where the bucket ring would be sparse.
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrNegativeCost.
// Complexity: O((V + E) log E) time, O(V + E) space.
func DistancesOrdered[I comparable, N, E any, C core.Cost](
	g *core.Graph[I, N, E],
	source I,
	cost func(E) C,
) (map[I]C, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.ContainsNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	// 2) Seed the heap with (0, source).
	dist := make(map[I]C, g.NodeCount())
	pq := bucketqueue.NewHeap(func(a, b candidate[I, C]) bool { return a.d < b.d })
	pq.Push(candidate[I, C]{id: source})

	// 3) Pop, finalize, relax.
	var bad error
	for bad == nil {
		c, ok := pq.Pop()
		if !ok {
			break
		}
		if _, done := dist[c.id]; done {
			continue
		}
		dist[c.id] = c.d
		_ = g.VisitNeighbours(c.id, func(m I, e E) {
			if _, done := dist[m]; done || bad != nil {
				return
			}
			w := cost(e)
			if w < 0 {
				bad = fmt.Errorf("%w: {%v, %v} costs %v", ErrNegativeCost, c.id, m, w)
				return
			}
			pq.Push(candidate[I, C]{d: c.d + w, id: m})
		})
	}
	if bad != nil {
		return nil, bad
	}

	return dist, nil
}
