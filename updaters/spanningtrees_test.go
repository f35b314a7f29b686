package updaters_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/tree"
	"github.com/mggg/gerrychain-go/updaters"
)

func TestSpanningTreesUpdaterCoversEveryPart(t *testing.T) {
	// A 2x2 grid, split into two parts of two adjacent nodes each.
	names := []string{"0", "1", "2", "3"}
	edges := []graph.EdgeSpec{
		{From: "0", To: "1"}, {From: "0", To: "2"}, {From: "1", To: "3"}, {From: "2", To: "3"},
	}
	g, err := graph.FromAdjacency(names, edges, nil, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	reg, err := partition.NewRegistry(updaters.SpanningTreesUpdater{RNG: rng})
	require.NoError(t, err)

	a, err := assignment.OfMapping(4, map[int]assignment.PartID{0: 1, 1: 1, 2: 2, 3: 2})
	require.NoError(t, err)
	p := partition.New(g, a, reg)

	v, err := p.Value("spanning_trees")
	require.NoError(t, err)
	trees := v.(map[assignment.PartID]*tree.SpanningTree)
	require.Len(t, trees, 2)
	for part, st := range trees {
		nodes := st.Nodes()
		require.Len(t, nodes, 2, "part %v's induced subgraph has exactly 2 members", part)
		require.Len(t, st.Neighbors(nodes[0]), 1, "a 2-node tree is a single edge")
	}
}
