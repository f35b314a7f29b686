package proposals_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/proposals"
	"github.com/mggg/gerrychain-go/updaters"
)

type RandomFlipSuite struct {
	suite.Suite
	g   *graph.Graph
	reg *partition.Registry
}

func (s *RandomFlipSuite) SetupTest() {
	g, err := graph.FromAdjacency(
		[]string{"A", "B", "C", "D"},
		[]graph.EdgeSpec{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "D"}},
		nil, nil,
	)
	s.Require().NoError(err)
	s.g = g
	reg, err := partition.NewRegistry(updaters.CutEdgesUpdater{})
	s.Require().NoError(err)
	s.reg = reg
}

func (s *RandomFlipSuite) TestRandomFlipProducesAdjacentPartition() {
	a, err := assignment.OfMapping(4, map[int]assignment.PartID{0: 1, 1: 1, 2: 2, 3: 2})
	s.Require().NoError(err)
	p := partition.New(s.g, a, s.reg)

	rng := rand.New(rand.NewSource(2))
	child, err := proposals.RandomFlip(p, rng)
	s.Require().NoError(err)
	s.Same(p, child.Parent())
	s.Len(child.LastFlip(), 1)
}

func (s *RandomFlipSuite) TestRandomFlipRejectsFlipThatWouldEmptyAPart() {
	// A two-node graph where each node is its own single-member part: any
	// flip would leave the losing part empty, so every attempt is
	// discarded until MaxFlipAttempts is exhausted.
	g, err := graph.FromAdjacency([]string{"A", "B"}, []graph.EdgeSpec{{From: "A", To: "B"}}, nil, nil)
	s.Require().NoError(err)
	a, err := assignment.OfMapping(2, map[int]assignment.PartID{0: 1, 1: 2})
	s.Require().NoError(err)
	p := partition.New(g, a, s.reg)

	rng := rand.New(rand.NewSource(2))
	_, err = proposals.RandomFlip(p, rng)
	s.Require().Error(err)
	s.ErrorIs(err, proposals.ErrExhausted)
}

func (s *RandomFlipSuite) TestNoBoundaryWhenSinglePart() {
	a, err := assignment.OfMapping(4, map[int]assignment.PartID{0: 1, 1: 1, 2: 1, 3: 1})
	s.Require().NoError(err)
	p := partition.New(s.g, a, s.reg)

	rng := rand.New(rand.NewSource(1))
	_, err = proposals.RandomFlip(p, rng)
	s.ErrorIs(err, proposals.ErrNoBoundary)
}

func TestRandomFlipSuite(t *testing.T) {
	suite.Run(t, new(RandomFlipSuite))
}
