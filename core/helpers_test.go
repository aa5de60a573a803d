// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/steinerkit/core"
	"github.com/stretchr/testify/require"
)

// cost is the edge payload used throughout the core tests.
type cost struct{ w int }

// newPath builds the path graph ids[0]-ids[1]-…-ids[n-1] with unit costs.
func newPath(t *testing.T, ids ...string) *core.Graph[string, struct{}, cost] {
	t.Helper()
	g := core.NewOrdered[string, struct{}, cost]()
	for _, id := range ids {
		require.NoError(t, g.AddNode(id, struct{}{}))
	}
	for i := 1; i < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i-1], ids[i], cost{1}))
	}

	return g
}

// requireConsistent checks that edges and adjacency mirror each other exactly.
func requireConsistent[I comparable, N, E any](t *testing.T, g *core.Graph[I, N, E]) {
	t.Helper()
	degreeSum := 0
	for _, id := range g.Nodes() {
		nbs, err := g.Neighbours(id)
		require.NoError(t, err)
		degreeSum += len(nbs)
		for _, nb := range nbs {
			require.NotEqual(t, id, nb.ID, "self-loop in adjacency")
			require.True(t, g.ContainsNode(nb.ID), "adjacency references missing node %v", nb.ID)
			require.True(t, g.ContainsEdge(id, nb.ID), "adjacency %v-%v without edge", id, nb.ID)
		}
	}
	for _, e := range g.Edges() {
		require.True(t, g.ContainsNode(e.A))
		require.True(t, g.ContainsNode(e.B))
		require.LessOrEqual(t, g.Comparator()(e.A, e.B), 0, "edge key not canonical")
	}
	require.Equal(t, 2*g.EdgeCount(), degreeSum)
}

func neighbourIDs[I comparable, E any](nbs []core.Neighbour[I, E]) []I {
	out := make([]I, len(nbs))
	for i, nb := range nbs {
		out[i] = nb.ID
	}

	return out
}
