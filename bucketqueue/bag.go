// SPDX-License-Identifier: MIT

package bucketqueue

import "container/heap"

// Bag is an order-agnostic container of items sharing one priority.
// Implementations decide only the tie-break order among their items.
type Bag[T any] interface {
	// Push adds x to the bag.
	Push(x T)
	// Pop removes and returns one item; ok is false if the bag is empty.
	Pop() (x T, ok bool)
	// Len reports the number of items held.
	Len() int
	// Clear empties the bag, keeping its storage for reuse.
	Clear()
}

// Stack is a LIFO bag.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack as a Bag.
func NewStack[T any]() Bag[T] { return &Stack[T]{} }

// Push appends x on top of the stack.
func (s *Stack[T]) Push(x T) { s.items = append(s.items, x) }

// Pop removes the most recently pushed item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	x := s.items[n-1]
	s.items[n-1] = zero // drop the reference for the GC
	s.items = s.items[:n-1]

	return x, true
}

// Len returns the number of stacked items.
func (s *Stack[T]) Len() int { return len(s.items) }

// Clear empties the stack.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// FIFO is a first-in, first-out bag backed by a slice with a moving head.
type FIFO[T any] struct {
	items []T
	head  int
}

// NewFIFO returns an empty FIFO as a Bag.
func NewFIFO[T any]() Bag[T] { return &FIFO[T]{} }

// Push enqueues x at the tail.
func (f *FIFO[T]) Push(x T) { f.items = append(f.items, x) }

// Pop dequeues the oldest item.
func (f *FIFO[T]) Pop() (T, bool) {
	var zero T
	if f.head == len(f.items) {
		return zero, false
	}
	x := f.items[f.head]
	f.items[f.head] = zero
	f.head++
	// Once drained, rewind so the backing array is reused from the start.
	if f.head == len(f.items) {
		f.items = f.items[:0]
		f.head = 0
	}

	return x, true
}

// Len returns the number of queued items.
func (f *FIFO[T]) Len() int { return len(f.items) - f.head }

// Clear empties the queue.
func (f *FIFO[T]) Clear() {
	clear(f.items)
	f.items = f.items[:0]
	f.head = 0
}

// Heap is a binary min-heap bag: Pop returns the smallest item under less.
// It is also usable on its own as a general priority queue (see Peek).
type Heap[T any] struct {
	h heapSlice[T]
}

// NewHeap returns an empty Heap ordered by less.
// Complexity: Push/Pop O(log n).
func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{h: heapSlice[T]{less: less}}
}

// HeapOf returns a constructor of Heap bags ordered by less, suitable for NewWith.
func HeapOf[T any](less func(a, b T) bool) func() Bag[T] {
	return func() Bag[T] { return NewHeap(less) }
}

// Push inserts x.
func (h *Heap[T]) Push(x T) { heap.Push(&h.h, x) }

// Pop removes and returns the minimum item.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.h.items) == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(&h.h).(T), true
}

// Peek returns the minimum item without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.h.items[0], true
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return len(h.h.items) }

// Clear empties the heap.
func (h *Heap[T]) Clear() {
	clear(h.h.items)
	h.h.items = h.h.items[:0]
}

// heapSlice adapts a slice and a less function to container/heap.Interface.
type heapSlice[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (s heapSlice[T]) Len() int           { return len(s.items) }
func (s heapSlice[T]) Less(i, j int) bool { return s.less(s.items[i], s.items[j]) }
func (s heapSlice[T]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *heapSlice[T]) Push(x any) { s.items = append(s.items, x.(T)) }

func (s *heapSlice[T]) Pop() any {
	old := s.items
	n := len(old)
	x := old[n-1]
	var zero T
	old[n-1] = zero
	s.items = old[:n-1]

	return x
}
