// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinerkit/bfs"
	"github.com/katalvlaran/steinerkit/core"
)

type graph = core.Graph[string, struct{}, int]

// build creates a graph from "a-b" style pairs; ids listed alone become isolated nodes.
func build(t *testing.T, ids []string, pairs ...[2]string) *graph {
	t.Helper()
	g := core.NewOrdered[string, struct{}, int]()
	for _, id := range ids {
		g.TryAddNode(id, struct{}{})
	}
	for _, p := range pairs {
		g.TryAddNode(p[0], struct{}{})
		g.TryAddNode(p[1], struct{}{})
		require.NoError(t, g.AddEdge(p[0], p[1], 0))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string, struct{}, int](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, []string{"A"})
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Components[string, struct{}, int](nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestBFS_SingleNode covers the trivial one-node graph.
func TestBFS_SingleNode(t *testing.T) {
	res, err := bfs.BFS(build(t, []string{"A"}), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0}, res.Depth)
	assert.Empty(t, res.Parent)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

// TestBFS_CycleAndDepths covers A-B-C-D-A and checks depths and order.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := build(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"], "the smaller neighbour claims C first")
}

// TestBFS_MaxDepth stops expansion past the limit.
func TestBFS_MaxDepth(t *testing.T) {
	g := build(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})
	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	_, err = res.PathTo("D")
	assert.ErrorIs(t, err, bfs.ErrNotReached)

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
}

// TestBFS_Cancelled returns the context error when cancelled up front.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(build(t, nil, [2]string{"A", "B"}), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Order)
}

// TestBFS_Disconnected leaves other components unreached.
func TestBFS_Disconnected(t *testing.T) {
	g := build(t, []string{"Z"}, [2]string{"A", "B"}, [2]string{"C", "D"})
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.NotContains(t, res.Depth, "C")
}

// TestBFS_PathIsHopShortest compares PathTo lengths with depths on a grid.
func TestBFS_PathIsHopShortest(t *testing.T) {
	const n = 6
	g := core.NewOrdered[string, struct{}, int]()
	id := func(i, j int) string { return fmt.Sprintf("%d_%d", i, j) }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.TryAddNode(id(i, j), struct{}{})
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j+1 < n {
				require.NoError(t, g.AddEdge(id(i, j), id(i, j+1), 0))
			}
			if i+1 < n {
				require.NoError(t, g.AddEdge(id(i, j), id(i+1, j), 0))
			}
		}
	}
	res, err := bfs.BFS(g, id(0, 0))
	require.NoError(t, err)
	require.Len(t, res.Order, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, i+j, res.Depth[id(i, j)])
			path, err := res.PathTo(id(i, j))
			require.NoError(t, err)
			assert.Len(t, path, i+j+1)
			for k := 1; k < len(path); k++ {
				assert.True(t, g.ContainsEdge(path[k-1], path[k]))
			}
		}
	}
}

// TestComponents checks partitioning and ordering.
func TestComponents(t *testing.T) {
	g := build(t, []string{"M"}, [2]string{"D", "B"}, [2]string{"B", "C"}, [2]string{"Z", "A"})
	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "Z"}, {"B", "C", "D"}, {"M"}}, comps)

	comps, err = bfs.Components(core.NewOrdered[string, struct{}, int]())
	require.NoError(t, err)
	assert.Empty(t, comps)
}
