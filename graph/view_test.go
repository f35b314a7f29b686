package graph_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mggg/gerrychain-go/graph"
)

type ViewSuite struct {
	suite.Suite
	g *graph.Graph
}

// path builds A-B-C-D-E, with F isolated (no edges), so subgraphs can
// exercise both connected and disconnected views.
func (s *ViewSuite) SetupTest() {
	g, err := graph.FromAdjacency(
		[]string{"A", "B", "C", "D", "E", "F"},
		[]graph.EdgeSpec{
			{From: "A", To: "B"},
			{From: "B", To: "C"},
			{From: "C", To: "D"},
			{From: "D", To: "E"},
		},
		nil, nil,
	)
	s.Require().NoError(err)
	s.g = g
}

func (s *ViewSuite) idx(name string) int {
	v, ok := s.g.NodeIndex(name)
	s.Require().True(ok)
	return v
}

func (s *ViewSuite) TestSubgraphIsConnected() {
	members := map[int]bool{s.idx("A"): true, s.idx("B"): true, s.idx("C"): true}
	view := s.g.Subgraph(members)
	s.Equal(3, view.Len())
	s.True(graph.IsConnected(view))
}

func (s *ViewSuite) TestSubgraphDisconnected() {
	members := map[int]bool{s.idx("A"): true, s.idx("C"): true}
	view := s.g.Subgraph(members)
	s.False(graph.IsConnected(view), "A and C are not adjacent once B is excluded")

	comps := graph.ConnectedComponents(view)
	s.Len(comps, 2)
}

func (s *ViewSuite) TestIsolatedNodeIsTriviallyConnected() {
	view := s.g.Subgraph(map[int]bool{s.idx("F"): true})
	s.True(graph.IsConnected(view))
}

func (s *ViewSuite) TestEmptyViewIsConnected() {
	view := s.g.Subgraph(nil)
	s.True(graph.IsConnected(view))
	s.Equal(0, view.Len())
}

func (s *ViewSuite) TestInducedEdgesExcludesOutsideEdges() {
	members := map[int]bool{s.idx("A"): true, s.idx("B"): true, s.idx("D"): true, s.idx("E"): true}
	view := s.g.Subgraph(members)
	edges := view.InducedEdges()
	// A-B and D-E are induced; B-C and C-D are not since C is excluded.
	s.Len(edges, 2)
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(ViewSuite))
}
