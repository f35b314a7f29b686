package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mggg/gerrychain-go/graph"
)

type GraphSuite struct {
	suite.Suite
}

func (s *GraphSuite) square() *graph.Graph {
	g, err := graph.FromAdjacency(
		[]string{"A", "B", "C", "D"},
		[]graph.EdgeSpec{
			{From: "A", To: "B"},
			{From: "B", To: "C"},
			{From: "C", To: "D"},
			{From: "D", To: "A"},
		},
		map[string][]graph.AttrValue{
			"population": {graph.IntAttr(10), graph.IntAttr(20), graph.IntAttr(30), graph.IntAttr(40)},
		},
		nil,
	)
	s.Require().NoError(err)
	return g
}

func (s *GraphSuite) TestFromAdjacencyBasics() {
	g := s.square()
	s.Equal(4, g.NumNodes())
	s.Equal(4, g.NumEdges())

	a, ok := g.NodeIndex("A")
	s.True(ok)
	name, err := g.NodeName(a)
	s.Require().NoError(err)
	s.Equal("A", name)

	deg, err := g.Degree(a)
	s.Require().NoError(err)
	s.Equal(2, deg)
}

func (s *GraphSuite) TestNeighborsSortedAndCopied() {
	g := s.square()
	a, _ := g.NodeIndex("A")
	nb, err := g.Neighbors(a)
	s.Require().NoError(err)
	s.Len(nb, 2)
	s.True(nb[0] < nb[1], "neighbors should be sorted ascending")

	nb[0] = -1
	nb2, _ := g.Neighbors(a)
	s.NotEqual(-1, nb2[0], "returned slice must be a fresh copy")
}

func (s *GraphSuite) TestEdgeBetween() {
	g := s.square()
	a, _ := g.NodeIndex("A")
	b, _ := g.NodeIndex("B")
	c, _ := g.NodeIndex("C")

	_, ok := g.EdgeBetween(a, b)
	s.True(ok)
	_, ok = g.EdgeBetween(a, c)
	s.False(ok, "A and C are not adjacent in a 4-cycle")
}

func (s *GraphSuite) TestDuplicateEdgeRejected() {
	_, err := graph.FromAdjacency(
		[]string{"A", "B"},
		[]graph.EdgeSpec{{From: "A", To: "B"}, {From: "B", To: "A"}},
		nil, nil,
	)
	s.Require().Error(err)
	s.ErrorIs(err, graph.ErrInvalidGraph)
}

func (s *GraphSuite) TestSelfLoopRejected() {
	_, err := graph.FromAdjacency(
		[]string{"A"},
		[]graph.EdgeSpec{{From: "A", To: "A"}},
		nil, nil,
	)
	s.Require().Error(err)
	s.ErrorIs(err, graph.ErrInvalidGraph)
}

func (s *GraphSuite) TestUnknownEdgeEndpointRejected() {
	_, err := graph.FromAdjacency(
		[]string{"A"},
		[]graph.EdgeSpec{{From: "A", To: "Z"}},
		nil, nil,
	)
	s.Require().Error(err)
	s.ErrorIs(err, graph.ErrInvalidGraph)
}

func (s *GraphSuite) TestNodeAttrTyped() {
	g := s.square()
	a, _ := g.NodeIndex("A")
	v, err := g.NodeAttr(a, "population")
	s.Require().NoError(err)
	f, err := v.AsFloat64()
	s.Require().NoError(err)
	s.Equal(10.0, f)

	_, err = g.NodeAttr(a, "missing")
	s.ErrorIs(err, graph.ErrMissingAttribute)
}

func (s *GraphSuite) TestUnknownNode() {
	g := s.square()
	_, err := g.NodeName(999)
	s.ErrorIs(err, graph.ErrUnknownNode)
	_, err = g.Degree(-1)
	s.ErrorIs(err, graph.ErrUnknownNode)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestAttrValueAsFloat64Mismatch(t *testing.T) {
	v := graph.StringAttr("x")
	_, err := v.AsFloat64()
	require.ErrorIs(t, err, graph.ErrAttrTypeMismatch)
}
