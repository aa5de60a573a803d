// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/steinerkit/core"
)

// forward lists the directions a Row describes, in Row index order.
var forward = [3]Direction{Right, UpRight, UpLeft}

// Build converts columns[x][y] rows into a board graph. Each finite level adds
// the link from (x, y) in the matching forward direction, creating both end
// positions on demand. Inf levels add nothing.
//
// Steps:
//  1. Pre-count finite links to size the graph.
//  2. For each cell and forward direction: validate the level, skip Inf,
//     insert both endpoints and the edge.
//
// Complexity: O(cells) time, O(V + E) memory.
func Build(columns [][]Row, opts ...core.GraphOption) (*core.Graph[Position, struct{}, Edge], error) {
	// 1. Size hint.
	links := 0
	for _, col := range columns {
		for _, row := range col {
			for _, l := range row {
				if l.Finite() {
					links++
				}
			}
		}
	}
	opts = append([]core.GraphOption{core.WithCapacity(links, links)}, opts...)
	g := core.New[Position, struct{}, Edge](Position.Compare, opts...)

	// 2. Links.
	for x, col := range columns {
		for y, row := range col {
			n := Position{X: x, Y: y}
			for k, l := range row {
				if l > Inf {
					return nil, fmt.Errorf("%w: %d at %v %v", ErrInvalidLevel, l, n, forward[k])
				}
				if l == Inf {
					continue
				}
				m := n.Step(forward[k])
				g.TryAddNode(n, struct{}{})
				g.TryAddNode(m, struct{}{})
				if err := g.AddEdge(n, m, Edge{Cost: l}); err != nil {
					return nil, fmt.Errorf("lattice: link %v-%v: %w", n, m, err)
				}
			}
		}
	}

	return g, nil
}
