// SPDX-License-Identifier: MIT

package bucketqueue_test

import (
	"testing"

	"github.com/katalvlaran/steinerkit/bucketqueue"
)

// BenchmarkQueue_SmallIncrements simulates a shortest-path frontier with edge
// costs in {0,1,2}.
func BenchmarkQueue_SmallIncrements(b *testing.B) {
	q := bucketqueue.New[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.Clear()
		q.Push(0, 0)
		n := 0
		for q.Len() > 0 && n < 1000 {
			p, x, _ := q.Pop()
			q.Push(p+x%3, x+1)
			q.Push(p+(x+1)%3, x+2)
			n++
		}
	}
}

// BenchmarkHeap_SmallIncrements runs the same workload on a plain binary heap.
func BenchmarkHeap_SmallIncrements(b *testing.B) {
	type item struct{ p, x int }
	h := bucketqueue.NewHeap(func(a, b item) bool { return a.p < b.p })
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h.Clear()
		h.Push(item{0, 0})
		n := 0
		for h.Len() > 0 && n < 1000 {
			it, _ := h.Pop()
			h.Push(item{it.p + it.x%3, it.x + 1})
			h.Push(item{it.p + (it.x+1)%3, it.x + 2})
			n++
		}
	}
}
