package assignment_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mggg/gerrychain-go/assignment"
)

type AssignmentSuite struct {
	suite.Suite
}

func (s *AssignmentSuite) TestOfMappingBasics() {
	a, err := assignment.OfMapping(4, map[int]assignment.PartID{0: 1, 1: 1, 2: 2, 3: 2})
	s.Require().NoError(err)
	s.Equal(4, a.NumNodes())
	s.Equal(2, a.NumParts())
	s.Equal(assignment.PartID(1), a.PartOf(0))
	s.ElementsMatch([]int{0, 1}, a.Members(1))
	s.ElementsMatch([]int{2, 3}, a.Members(2))
	s.Equal([]assignment.PartID{1, 2}, a.Parts())
}

func (s *AssignmentSuite) TestOfMappingRejectsSparseMapping() {
	_, err := assignment.OfMapping(3, map[int]assignment.PartID{0: 1, 1: 1})
	s.Require().Error(err)
	s.ErrorIs(err, assignment.ErrEmptyPart)
}

func (s *AssignmentSuite) TestApplyFlipInPlace() {
	a, err := assignment.OfMapping(3, map[int]assignment.PartID{0: 1, 1: 1, 2: 2})
	s.Require().NoError(err)

	err = a.ApplyFlipInPlace(assignment.Flip{1: 2})
	s.Require().NoError(err)
	s.Equal(assignment.PartID(2), a.PartOf(1))
	s.ElementsMatch([]int{0}, a.Members(1))
	s.ElementsMatch([]int{1, 2}, a.Members(2))
}

func (s *AssignmentSuite) TestApplyFlipInPlaceRejectsDegenerateFlip() {
	a, err := assignment.OfMapping(2, map[int]assignment.PartID{0: 1, 1: 2})
	s.Require().NoError(err)

	err = a.ApplyFlipInPlace(assignment.Flip{0: 2})
	s.Require().Error(err)
	s.ErrorIs(err, assignment.ErrDegenerateFlip)

	// Assignment must be untouched after a rejected flip.
	s.Equal(assignment.PartID(1), a.PartOf(0))
}

func (s *AssignmentSuite) TestApplyFlipInPlaceNoOpForSamePart() {
	a, err := assignment.OfMapping(2, map[int]assignment.PartID{0: 1, 1: 2})
	s.Require().NoError(err)
	err = a.ApplyFlipInPlace(assignment.Flip{0: 1})
	s.Require().NoError(err)
	s.Equal(assignment.PartID(1), a.PartOf(0))
}

func (s *AssignmentSuite) TestCloneWithFlipDoesNotMutateOriginal() {
	orig, err := assignment.OfMapping(3, map[int]assignment.PartID{0: 1, 1: 1, 2: 2})
	s.Require().NoError(err)

	clone, err := orig.CloneWithFlip(assignment.Flip{1: 2})
	s.Require().NoError(err)

	s.Equal(assignment.PartID(1), orig.PartOf(1), "original must be unaffected")
	s.Equal(assignment.PartID(2), clone.PartOf(1))
	s.ElementsMatch([]int{0, 1}, orig.Members(1))
	s.ElementsMatch([]int{0}, clone.Members(1))
}

func (s *AssignmentSuite) TestCloneWithFlipSharesUntouchedParts() {
	orig, err := assignment.OfMapping(4, map[int]assignment.PartID{0: 1, 1: 1, 2: 2, 3: 3})
	s.Require().NoError(err)
	clone, err := orig.CloneWithFlip(assignment.Flip{0: 2})
	s.Require().NoError(err)
	// Part 3 was never touched; membership should be equal by value.
	s.ElementsMatch(orig.Members(3), clone.Members(3))
}

func TestAssignmentSuite(t *testing.T) {
	suite.Run(t, new(AssignmentSuite))
}
