// SPDX-License-Identifier: MIT

package bucketqueue

import "fmt"

// Entry pairs an item with its absolute priority, for Extend.
type Entry[T any] struct {
	Priority int
	Item     T
}

// Queue is a monotone bucket queue. The zero value is not usable; build one with
// New or NewWith.
//
// Invariants:
//   - every item in the bag at ring offset k has priority Front()+k;
//   - Front() never decreases between Clear calls;
//   - size equals the total number of items across all bags.
type Queue[T any] struct {
	bags   []Bag[T]      // ring of bags; bags[head] holds priority front
	head   int           // ring index of offset 0
	front  int           // priority of offset 0
	size   int           // items across all bags
	newBag func() Bag[T] // bag constructor used when the ring grows
}

// New returns an empty Queue whose buckets are LIFO stacks.
func New[T any]() *Queue[T] {
	return NewWith(NewStack[T])
}

// NewWith returns an empty Queue whose buckets are produced by newBag.
// Panics if newBag is nil.
func NewWith[T any](newBag func() Bag[T]) *Queue[T] {
	if newBag == nil {
		panic("bucketqueue: nil bag constructor")
	}

	return &Queue[T]{newBag: newBag}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.size }

// Front returns the priority of the front bucket. All queued items have
// priority >= Front().
func (q *Queue[T]) Front() int { return q.front }

// Push inserts item at absolute priority p.
// Panics if p < 0 or p < Front(): the queue is monotone.
// Complexity: O(1) amortized, plus O(p-Front) the first time the ring reaches that depth.
func (q *Queue[T]) Push(p int, item T) {
	if p < 0 {
		panic(fmt.Sprintf("bucketqueue: negative priority %d", p))
	}
	if p < q.front {
		panic(fmt.Sprintf("bucketqueue: priority %d below front %d", p, q.front))
	}
	delta := p - q.front
	for len(q.bags) <= delta {
		q.grow()
	}
	q.bags[(q.head+delta)%len(q.bags)].Push(item)
	q.size++
}

// Extend pushes every entry in order.
func (q *Queue[T]) Extend(entries ...Entry[T]) {
	for _, e := range entries {
		q.Push(e.Priority, e.Item)
	}
}

// Pop removes and returns an item with the smallest queued priority.
// ok is false if the queue is empty; Front() is left unchanged in that case.
func (q *Queue[T]) Pop() (priority int, item T, ok bool) {
	if q.size == 0 {
		return 0, item, false
	}
	for {
		if x, found := q.bags[q.head].Pop(); found {
			q.size--
			return q.front, x, true
		}
		// The front bag is empty: it becomes the last slot of the ring.
		q.head = (q.head + 1) % len(q.bags)
		q.front++
	}
}

// Clear empties every bucket and resets Front to 0. Bag storage is kept.
func (q *Queue[T]) Clear() {
	for _, b := range q.bags {
		b.Clear()
	}
	q.head = 0
	q.front = 0
	q.size = 0
}

// grow appends one empty bag at the logical end of the ring.
func (q *Queue[T]) grow() {
	if q.head != 0 {
		// Linearise so that the new slot lands after the current last offset.
		ring := make([]Bag[T], 0, 2*len(q.bags)+1)
		ring = append(ring, q.bags[q.head:]...)
		ring = append(ring, q.bags[:q.head]...)
		q.bags = ring
		q.head = 0
	}
	q.bags = append(q.bags, q.newBag())
}
