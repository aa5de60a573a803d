// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a node the search never reached.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a background context and no depth limit.
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes in visit sequence.
//   - Depth: hop count from the start for every reached node.
//   - Parent: predecessor in the BFS tree (absent for the start).
type BFSResult[I comparable] struct {
	Order  []I
	Depth  map[I]int
	Parent map[I]I
}

// PathTo reconstructs the hop-shortest path from the start node to dest.
// Returns ErrNotReached if dest was not reached.
func (r *BFSResult[I]) PathTo(dest I) ([]I, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := make([]I, 0, d+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
