// SPDX-License-Identifier: MIT

// This file declares Graph, Pair, Neighbour, EdgeEntry, the Cost constraint,
// graph options, sentinel errors, and the constructors.

package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph operations. They all signal a caller bug
// (a broken precondition), never a runtime condition of the data.
var (
	// ErrNodeExists indicates AddNode on an id that is already present.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeExists indicates AddEdge on a pair that already has an edge.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Cost is the set of numeric types usable as path costs by the ordered-cost
// algorithm variants: anything ordered and closed under addition with zero as
// the identity.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Pair is the canonical key of an undirected edge: A never compares greater
// than B under the graph's order.
type Pair[I comparable] struct {
	A, B I
}

// Canonical orders (a, b) so that the smaller id comes first.
// It is applied before every edge-map lookup and insert.
func Canonical[I comparable](compare func(a, b I) int, a, b I) Pair[I] {
	if compare(a, b) <= 0 {
		return Pair[I]{A: a, B: b}
	}

	return Pair[I]{A: b, B: a}
}

// Neighbour is one entry of a node's adjacency: the neighbour id and the
// payload of the connecting edge.
type Neighbour[I comparable, E any] struct {
	ID   I
	Edge E
}

// EdgeEntry is one edge as returned by Edges: canonical endpoints and payload.
type EdgeEntry[I comparable, E any] struct {
	A, B I
	Edge E
}

// Graph is an undirected graph with node payloads N and edge payloads E over
// identifiers I. Build it with New or NewOrdered.
type Graph[I comparable, N, E any] struct {
	compare   func(a, b I) int
	nodes     map[I]N
	edges     map[Pair[I]]E
	adjacency map[I]map[I]struct{}
}

// Options tunes Graph construction.
type Options struct {
	// NodeCapacity pre-sizes the node and adjacency maps.
	NodeCapacity int
	// EdgeCapacity pre-sizes the edge map.
	EdgeCapacity int
}

// GraphOption configures a Graph before creation.
type GraphOption func(*Options)

// WithCapacity pre-sizes the internal maps for the expected node and edge counts.
// Negative values are treated as zero.
func WithCapacity(nodes, edges int) GraphOption {
	return func(o *Options) {
		o.NodeCapacity = max(nodes, 0)
		o.EdgeCapacity = max(edges, 0)
	}
}

// DefaultOptions returns zero capacities (maps grow on demand).
func DefaultOptions() Options {
	return Options{}
}

// New creates an empty Graph whose ids are ordered by compare.
// compare must be a strict total order consistent with ==, as cmp.Compare is.
// Panics if compare is nil.
// Complexity: O(1) plus the requested capacity.
func New[I comparable, N, E any](compare func(a, b I) int, opts ...GraphOption) *Graph[I, N, E] {
	if compare == nil {
		panic("core: nil compare function")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[I, N, E]{
		compare:   compare,
		nodes:     make(map[I]N, cfg.NodeCapacity),
		edges:     make(map[Pair[I]]E, cfg.EdgeCapacity),
		adjacency: make(map[I]map[I]struct{}, cfg.NodeCapacity),
	}
}

// NewOrdered creates an empty Graph over an ordered built-in id type.
func NewOrdered[I cmp.Ordered, N, E any](opts ...GraphOption) *Graph[I, N, E] {
	return New[I, N, E](cmp.Compare[I], opts...)
}

// Comparator returns the id order the graph was built with, so derived graphs
// (closures, trees, views) can share it.
func (g *Graph[I, N, E]) Comparator() func(a, b I) int {
	return g.compare
}

// key canonicalises an endpoint pair for the edge map.
func (g *Graph[I, N, E]) key(a, b I) Pair[I] {
	return Canonical(g.compare, a, b)
}
