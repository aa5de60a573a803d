// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/steinerkit/core"
)

func buildGrid(n int) *core.Graph[[2]int, struct{}, int] {
	cmpXY := func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	}
	g := core.New[[2]int, struct{}, int](cmpXY, core.WithCapacity(n*n, 2*n*n))
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			g.TryAddNode([2]int{x, y}, struct{}{})
		}
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x+1 < n {
				_ = g.AddEdge([2]int{x, y}, [2]int{x + 1, y}, 1)
			}
			if y+1 < n {
				_ = g.AddEdge([2]int{x, y}, [2]int{x, y + 1}, 1)
			}
		}
	}

	return g
}

func BenchmarkVisitNeighbours(b *testing.B) {
	g := buildGrid(30)
	nodes := g.Nodes()
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		_ = g.VisitNeighbours(nodes[i%len(nodes)], func(_ [2]int, w int) { sum += w })
	}
	_ = sum
}

func BenchmarkClone(b *testing.B) {
	g := buildGrid(30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

func BenchmarkWithout(b *testing.B) {
	g := buildGrid(30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Without(g, [2]int{i % 30, 0}, [2]int{0, i % 30})
	}
}
