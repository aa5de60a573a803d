// SPDX-License-Identifier: MIT

// Package prim_kruskal defines sentinel errors and method selection for MST
// computation.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/steinerkit/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound indicates that the Prim root is not a node of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root node not found")

// ErrDisconnected indicates that no spanning tree covers every node: the graph
// is empty or has more than one connected component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions selects the MST algorithm. Use DefaultOptions() for Kruskal.
type MSTOptions struct {
	// Method is MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm. Panics on an unknown method name.
func WithMethod(m string) Option {
	if m != MethodPrim && m != MethodKruskal {
		panic("prim_kruskal: unknown method " + m)
	}

	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions with Method = MethodKruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the selected MST algorithm. Prim is rooted at the smallest node
// id, so both methods need nothing but the graph.
func Compute[I comparable, N, E any, C core.Cost](
	g *core.Graph[I, N, E],
	cost func(E) C,
	opts ...Option,
) ([]core.EdgeEntry[I, E], C, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Method == MethodKruskal {
		return Kruskal(g, cost)
	}
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, 0, ErrDisconnected
	}

	return Prim(g, nodes[0], cost)
}
