package tree_test

import (
	"github.com/stretchr/testify/suite"

	"github.com/mggg/gerrychain-go/graph"
)

// twelveNodePath builds a 12-node path with population 10 per node.
func twelveNodePath(s *suite.Suite) *graph.Graph {
	n := 12
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	var edges []graph.EdgeSpec
	for i := 0; i < n-1; i++ {
		edges = append(edges, graph.EdgeSpec{From: names[i], To: names[i+1]})
	}
	pops := make([]graph.AttrValue, n)
	for i := range pops {
		pops[i] = graph.IntAttr(10)
	}
	g, err := graph.FromAdjacency(names, edges, map[string][]graph.AttrValue{"population": pops}, nil)
	s.Require().NoError(err)
	return g
}
