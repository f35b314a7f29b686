package partition_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
)

// countingUpdater counts how many times Recompute ran, to verify the
// lazy-and-cached-per-partition evaluation contract.
type countingUpdater struct {
	name  string
	calls *int
}

func (c countingUpdater) Name() string { return c.name }
func (c countingUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	*c.calls++
	return p.Assignment().NumParts(), nil
}

type PartitionSuite struct {
	suite.Suite
	g *graph.Graph
}

func (s *PartitionSuite) SetupTest() {
	g, err := graph.FromAdjacency(
		[]string{"A", "B", "C"},
		[]graph.EdgeSpec{{From: "A", To: "B"}, {From: "B", To: "C"}},
		nil, nil,
	)
	s.Require().NoError(err)
	s.g = g
}

func (s *PartitionSuite) TestValueIsCachedPerPartition() {
	calls := 0
	reg, err := partition.NewRegistry(countingUpdater{name: "n", calls: &calls})
	s.Require().NoError(err)

	a, err := assignment.OfMapping(3, map[int]assignment.PartID{0: 1, 1: 1, 2: 2})
	s.Require().NoError(err)
	p := partition.New(s.g, a, reg)

	v1, err := p.Value("n")
	s.Require().NoError(err)
	v2, err := p.Value("n")
	s.Require().NoError(err)
	s.Equal(v1, v2)
	s.Equal(1, calls, "Recompute should run once per partition, not per Value call")
}

func (s *PartitionSuite) TestUnknownUpdaterErrors() {
	reg, err := partition.NewRegistry()
	s.Require().NoError(err)
	a, err := assignment.OfMapping(3, map[int]assignment.PartID{0: 1, 1: 1, 2: 1})
	s.Require().NoError(err)
	p := partition.New(s.g, a, reg)

	_, err = p.Value("missing")
	s.ErrorIs(err, partition.ErrUnknownUpdater)
}

func (s *PartitionSuite) TestFlipLinksParentAndGeneration() {
	reg, err := partition.NewRegistry()
	s.Require().NoError(err)
	a, err := assignment.OfMapping(3, map[int]assignment.PartID{0: 1, 1: 1, 2: 2})
	s.Require().NoError(err)
	root := partition.New(s.g, a, reg)
	s.Equal(0, root.Generation())
	s.Nil(root.Parent())

	child, err := root.Flip(assignment.Flip{1: 2})
	s.Require().NoError(err)
	s.Equal(1, child.Generation())
	s.Same(root, child.Parent())
	s.Equal(assignment.Flip{1: 2}, child.LastFlip())
	// Root must be untouched.
	s.Equal(assignment.PartID(1), root.Assignment().PartOf(1))
}

func (s *PartitionSuite) TestRegistryRejectsDuplicateNames() {
	calls1, calls2 := 0, 0
	_, err := partition.NewRegistry(
		countingUpdater{name: "dup", calls: &calls1},
		countingUpdater{name: "dup", calls: &calls2},
	)
	s.ErrorIs(err, partition.ErrDuplicateUpdater)
}

func TestPartitionSuite(t *testing.T) {
	suite.Run(t, new(PartitionSuite))
}
