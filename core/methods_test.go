// SPDX-License-Identifier: MIT

// Package core_test verifies core.Graph method-level contracts: node and edge
// lifecycle, adjacency symmetry, and transactional node removal.
package core_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/steinerkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddNode(t *testing.T) {
	g := core.NewOrdered[string, int, cost]()
	require.NoError(t, g.AddNode("A", 1))
	assert.True(t, g.ContainsNode("A"))
	assert.False(t, g.ContainsNode("B"))

	// Duplicate insertion fails and leaves the payload alone.
	err := g.AddNode("A", 2)
	assert.ErrorIs(t, err, core.ErrNodeExists)
	n, ok := g.Node("A")
	require.True(t, ok)
	assert.Equal(t, 1, n)

	assert.False(t, g.TryAddNode("A", 3))
	assert.True(t, g.TryAddNode("B", 4))
	assert.Equal(t, 2, g.NodeCount())

	require.NoError(t, g.SetNode("B", 5))
	n, _ = g.Node("B")
	assert.Equal(t, 5, n)
	assert.ErrorIs(t, g.SetNode("Z", 0), core.ErrNodeNotFound)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewOrdered[string, struct{}, cost]()
	require.NoError(t, g.AddNode("A", struct{}{}))
	require.NoError(t, g.AddNode("B", struct{}{}))

	cases := []struct {
		name string
		a, b string
		err  error
	}{
		{"SelfLoop", "A", "A", core.ErrSelfLoop},
		{"MissingFrom", "X", "A", core.ErrNodeNotFound},
		{"MissingTo", "A", "X", core.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.a, tc.b, cost{1}), tc.err)
			assert.Equal(t, 0, g.EdgeCount())
		})
	}

	require.NoError(t, g.AddEdge("B", "A", cost{7}))
	// Either orientation names the same edge.
	assert.ErrorIs(t, g.AddEdge("A", "B", cost{1}), core.ErrEdgeExists)
	added, err := g.TryAddEdge("A", "B", cost{1})
	require.NoError(t, err)
	assert.False(t, added)

	e, ok := g.Edge("A", "B")
	require.True(t, ok)
	assert.Equal(t, cost{7}, e, "existing payload must survive duplicate insert")
	assert.Equal(t, 1, g.EdgeCount())
	requireConsistent(t, g)
}

func TestGraph_NeighboursSymmetry(t *testing.T) {
	g := newPath(t, "A", "B", "C")
	require.NoError(t, g.AddEdge("C", "A", cost{4}))

	nbs, err := g.Neighbours("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, neighbourIDs(nbs))
	assert.Equal(t, cost{4}, nbs[1].Edge)

	nbs, err = g.Neighbours("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, neighbourIDs(nbs))

	_, err = g.Neighbours("Q")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	seen := map[string]cost{}
	require.NoError(t, g.VisitNeighbours("B", func(m string, e cost) { seen[m] = e }))
	assert.Equal(t, map[string]cost{"A": {1}, "C": {1}}, seen)
	assert.ErrorIs(t, g.VisitNeighbours("Q", func(string, cost) {}), core.ErrNodeNotFound)

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	_, err = g.Degree("Q")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_RemoveNodeIsTransactional(t *testing.T) {
	g := newPath(t, "A", "B", "C", "D")
	require.NoError(t, g.AddEdge("A", "C", cost{2}))

	n, err := g.RemoveNode("C")
	require.NoError(t, err)
	assert.Equal(t, struct{}{}, n)
	assert.False(t, g.ContainsNode("C"))
	assert.False(t, g.ContainsEdge("B", "C"))
	assert.False(t, g.ContainsEdge("A", "C"))
	assert.False(t, g.ContainsEdge("C", "D"))
	assert.Equal(t, 1, g.EdgeCount())

	for _, id := range g.Nodes() {
		nbs, err := g.Neighbours(id)
		require.NoError(t, err)
		assert.NotContains(t, neighbourIDs(nbs), "C")
	}
	requireConsistent(t, g)

	_, err = g.RemoveNode("C")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, ok := g.TryRemoveNode("C")
	assert.False(t, ok)
}

func TestGraph_RemoveAndSetEdge(t *testing.T) {
	g := newPath(t, "A", "B", "C")
	require.NoError(t, g.SetEdge("C", "B", cost{9}))
	e, _ := g.Edge("B", "C")
	assert.Equal(t, cost{9}, e)
	assert.ErrorIs(t, g.SetEdge("A", "C", cost{1}), core.ErrEdgeNotFound)

	e, err := g.RemoveEdge("B", "A")
	require.NoError(t, err)
	assert.Equal(t, cost{1}, e)
	assert.False(t, g.ContainsEdge("A", "B"))
	d, _ := g.Degree("A")
	assert.Equal(t, 0, d)
	_, err = g.RemoveEdge("A", "B")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	requireConsistent(t, g)
}

func TestGraph_NodesAndEdgesSorted(t *testing.T) {
	g := core.NewOrdered[int, struct{}, int]()
	for _, id := range []int{5, 3, 9, 1} {
		require.NoError(t, g.AddNode(id, struct{}{}))
	}
	require.NoError(t, g.AddEdge(9, 1, 10))
	require.NoError(t, g.AddEdge(5, 3, 20))
	require.NoError(t, g.AddEdge(3, 1, 30))

	assert.Equal(t, []int{1, 3, 5, 9}, g.Nodes())
	assert.Equal(t, []core.EdgeEntry[int, int]{
		{A: 1, B: 3, Edge: 30},
		{A: 1, B: 9, Edge: 10},
		{A: 3, B: 5, Edge: 20},
	}, g.Edges())
}

func TestGraph_FilterNodes(t *testing.T) {
	g := core.NewOrdered[int, bool, int]()
	for i := 0; i < 6; i++ {
		require.NoError(t, g.AddNode(i, i%2 == 0))
	}
	for i := 1; i < 6; i++ {
		require.NoError(t, g.AddEdge(i-1, i, i))
	}
	removed := g.FilterNodes(func(_ int, even bool) bool { return even })
	assert.Equal(t, 3, removed)
	assert.Equal(t, []int{0, 2, 4}, g.Nodes())
	assert.Equal(t, 0, g.EdgeCount())
	requireConsistent(t, g)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := newPath(t, "A", "B", "C")
	c := g.Clone()

	_, err := c.RemoveNode("B")
	require.NoError(t, err)
	require.NoError(t, c.SetNode("A", struct{}{}))

	assert.True(t, g.ContainsNode("B"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 0, c.EdgeCount())
	requireConsistent(t, g)
	requireConsistent(t, c)

	empty := g.CloneEmpty()
	assert.Equal(t, g.Nodes(), empty.Nodes())
	assert.Equal(t, 0, empty.EdgeCount())

	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 3, empty.NodeCount())
}

func TestCanonical(t *testing.T) {
	cmpInt := func(a, b int) int { return a - b }
	assert.Equal(t, core.Pair[int]{A: 1, B: 2}, core.Canonical(cmpInt, 2, 1))
	assert.Equal(t, core.Pair[int]{A: 1, B: 2}, core.Canonical(cmpInt, 1, 2))
	assert.Panics(t, func() { core.New[int, struct{}, int](nil) })
}

// TestGraph_RandomMutations interleaves random inserts and removals and checks
// the adjacency invariant after every step.
func TestGraph_RandomMutations(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := core.NewOrdered[string, struct{}, int](core.WithCapacity(32, 64))
	id := func(i int) string { return "v" + strconv.Itoa(i) }

	for step := 0; step < 400; step++ {
		a, b := id(r.Intn(20)), id(r.Intn(20))
		switch r.Intn(4) {
		case 0:
			g.TryAddNode(a, struct{}{})
		case 1, 2:
			if a != b && g.ContainsNode(a) && g.ContainsNode(b) {
				_, err := g.TryAddEdge(a, b, step)
				require.NoError(t, err)
				nbs, _ := g.Neighbours(a)
				require.Contains(t, neighbourIDs(nbs), b)
				nbs, _ = g.Neighbours(b)
				require.Contains(t, neighbourIDs(nbs), a)
			}
		case 3:
			g.TryRemoveNode(a)
		}
		requireConsistent(t, g)
	}
}
