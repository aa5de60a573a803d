// SPDX-License-Identifier: MIT

// Package bucketqueue provides a monotone integer priority queue specialised for
// small additive priority increments, plus the small "bag" containers it stores
// its buckets in.
//
// A Queue keeps a ring of bags, one per priority offset from the current minimum
// (Front). Pushing at priority p drops the item into bag p-Front; popping drains
// the front bag and, once it is empty, rotates it to the back of the ring and
// advances Front by one. Buckets are reused rather than reallocated, so when
// priorities grow by a bounded amount per step (shortest paths over edge costs
// in {0,1,2}) every operation is amortized O(1).
//
// Bags:
//
//	Stack[T] - LIFO, the default and the cheapest
//	FIFO[T]  - first in, first out
//	Heap[T]  - binary min-heap ordered by a caller-supplied less function
//
// The bag only decides the order of items sharing one priority; the order of
// distinct priorities is always ascending. Use a Heap bag when ties have to be
// broken deterministically.
//
// Contract violations panic:
//
//	Push(p, x) with p < Front()  - priorities never go backwards
//	Push(p, x) with p < 0
//
// Complexity:
//
//	Push - O(1) amortized (+ ring growth up to p-Front+1 slots)
//	Pop  - O(1) amortized for bounded increments
//	Clear - O(number of bags)
package bucketqueue
