// SPDX-License-Identifier: MIT

// Package unionfind implements a disjoint-set forest over a fixed universe of
// integer ids 0..n-1, with path halving and union by size.
//
// All state lives in one slice of entries addressed by index; unions rewrite
// two slots of that slice and never hold references into it.
//
// Ids outside [0, n) are caller bugs and panic.
//
// Complexity: Find and Union are O(α(n)) amortized; Reset is O(n).
package unionfind

import "fmt"

// entry is one slot of the forest. size is meaningful only on roots.
type entry struct {
	parent int
	size   int
}

// DisjointSet partitions 0..n-1 into equivalence classes.
type DisjointSet struct {
	entries []entry
	sets    int
}

// New returns n singleton classes.
// Panics if n < 0.
func New(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Sprintf("unionfind: negative size %d", n))
	}
	ds := &DisjointSet{entries: make([]entry, n)}
	ds.Reset()

	return ds
}

// NodeCount returns the size of the universe.
func (ds *DisjointSet) NodeCount() int { return len(ds.entries) }

// SetCount returns the current number of classes.
func (ds *DisjointSet) SetCount() int { return ds.sets }

// Reset puts every element back into its own class.
func (ds *DisjointSet) Reset() {
	for i := range ds.entries {
		ds.entries[i] = entry{parent: i, size: 1}
	}
	ds.sets = len(ds.entries)
}

// Find returns the representative of x's class. Every node on the walk is
// re-pointed at its grandparent (path halving).
func (ds *DisjointSet) Find(x int) int {
	ds.check(x)
	for {
		p := ds.entries[x].parent
		if p == x {
			return x
		}
		gp := ds.entries[p].parent
		ds.entries[x].parent = gp
		x = gp
	}
}

// Union merges the classes of x and y and reports whether they were distinct.
// The smaller class is attached under the root of the larger one.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return false
	}
	if ds.entries[rx].size < ds.entries[ry].size {
		rx, ry = ry, rx
	}
	ds.entries[ry].parent = rx
	ds.entries[rx].size += ds.entries[ry].size
	ds.sets--

	return true
}

// Connected reports whether x and y are in the same class.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Size returns the number of elements in x's class.
func (ds *DisjointSet) Size(x int) int {
	return ds.entries[ds.Find(x)].size
}

func (ds *DisjointSet) check(x int) {
	if x < 0 || x >= len(ds.entries) {
		panic(fmt.Sprintf("unionfind: id %d out of range [0,%d)", x, len(ds.entries)))
	}
}
