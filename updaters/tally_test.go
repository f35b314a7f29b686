package updaters_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/updaters"
)

// TallySuite exercises a 3-node path A-B-C with populations 10/20/30,
// starting as {A,B} | {C} and flipping B into C's part.
type TallySuite struct {
	suite.Suite
	g   *graph.Graph
	reg *partition.Registry
}

func (s *TallySuite) SetupTest() {
	g, err := graph.FromAdjacency(
		[]string{"A", "B", "C"},
		[]graph.EdgeSpec{{From: "A", To: "B"}, {From: "B", To: "C"}},
		map[string][]graph.AttrValue{
			"population": {graph.IntAttr(10), graph.IntAttr(20), graph.IntAttr(30)},
		},
		nil,
	)
	s.Require().NoError(err)
	s.g = g

	reg, err := partition.NewRegistry(
		updaters.Tally{Alias: "population", Attr: "population"},
		updaters.CutEdgesUpdater{},
		updaters.FlowsUpdater{},
	)
	s.Require().NoError(err)
	s.reg = reg
}

func (s *TallySuite) root() *partition.Partition {
	a, err := assignment.OfMapping(3, map[int]assignment.PartID{0: 1, 1: 1, 2: 2})
	s.Require().NoError(err)
	return partition.New(s.g, a, s.reg)
}

func (s *TallySuite) TestRecomputeFromScratch() {
	p := s.root()
	v, err := p.Value("population")
	s.Require().NoError(err)
	tallies := v.(map[assignment.PartID]float64)
	s.Equal(30.0, tallies[1]) // A + B
	s.Equal(30.0, tallies[2]) // C
}

func (s *TallySuite) TestDiffPathMatchesFromScratch() {
	root := s.root()
	// Force root's tally to be cached so the child can use the diff path.
	_, err := root.Value("population")
	s.Require().NoError(err)

	child, err := root.Flip(assignment.Flip{1: 2}) // move B into part 2
	s.Require().NoError(err)

	v, err := child.Value("population")
	s.Require().NoError(err)
	diffTallies := v.(map[assignment.PartID]float64)

	// Ground truth: independently recompute from scratch on an equivalent
	// assignment built directly, to confirm the incremental path agrees.
	direct, err := assignment.OfMapping(3, map[int]assignment.PartID{0: 1, 1: 2, 2: 2})
	s.Require().NoError(err)
	freshReg, err := partition.NewRegistry(updaters.Tally{Alias: "population", Attr: "population"})
	s.Require().NoError(err)
	freshPart := partition.New(s.g, direct, freshReg)
	fv, err := freshPart.Value("population")
	s.Require().NoError(err)
	freshTallies := fv.(map[assignment.PartID]float64)

	s.Equal(freshTallies[1], diffTallies[1])
	s.Equal(freshTallies[2], diffTallies[2])
	s.Equal(10.0, diffTallies[1]) // A alone
	s.Equal(50.0, diffTallies[2]) // B + C
}

func (s *TallySuite) TestCutEdgesDiffMatchesFromScratch() {
	root := s.root()
	_, err := root.Value("cut_edges")
	s.Require().NoError(err)

	child, err := root.Flip(assignment.Flip{1: 2})
	s.Require().NoError(err)

	v, err := child.Value("cut_edges")
	s.Require().NoError(err)
	edges := v.(map[updaters.Edge]struct{})
	// After the flip: A alone in part 1, B and C together in part 2.
	// A-B now crosses, B-C no longer does.
	s.Len(edges, 1)
	_, hasAB := edges[updaters.Edge{U: 0, V: 1}]
	s.True(hasAB)
}

func (s *TallySuite) TestFlowsReportsNetMovement() {
	root := s.root()
	child, err := root.Flip(assignment.Flip{1: 2})
	s.Require().NoError(err)

	v, err := child.Value("flows")
	s.Require().NoError(err)
	flows := v.(map[assignment.PartID]int)
	s.Equal(-1, flows[1])
	s.Equal(1, flows[2])
}

func TestTallySuite(t *testing.T) {
	suite.Run(t, new(TallySuite))
}
