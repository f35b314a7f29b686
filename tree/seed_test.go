package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mggg/gerrychain-go/tree"
)

type SeedSuite struct {
	suite.Suite
}

// A 12-node path, population 10 each, split into 3 parts of ~4 nodes/40
// population apiece.
func (s *SeedSuite) TestRecursiveSeedPartCoversEveryNodeInBalancedParts() {
	g := twelveNodePath(&s.Suite)
	rng := rand.New(rand.NewSource(3))

	result, err := tree.RecursiveSeedPart(g, tree.SeedOptions{
		NumParts: 3,
		PopCol:   "population",
		Epsilon:  0.1,
	}, rng)
	s.Require().NoError(err)
	s.Len(result, 12)

	counts := map[int]int{}
	for _, part := range result {
		counts[part]++
	}
	s.Len(counts, 3, "every part must be non-empty and used")
	for part, n := range counts {
		pop := n * 10
		s.InDelta(40, pop, 4, "part %d population %d should be within epsilon of 40", part, pop)
	}
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedSuite))
}
