package election_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/election"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
)

type ElectionSuite struct {
	suite.Suite
}

func (s *ElectionSuite) TestRecomputeTalliesPercentagesAndWinner() {
	g, err := graph.FromAdjacency(
		[]string{"A", "B", "C"},
		nil,
		map[string][]graph.AttrValue{
			"votes_r": {graph.IntAttr(60), graph.IntAttr(10), graph.IntAttr(5)},
			"votes_d": {graph.IntAttr(40), graph.IntAttr(30), graph.IntAttr(45)},
		},
		nil,
	)
	s.Require().NoError(err)

	a, err := assignment.OfMapping(3, map[int]assignment.PartID{0: 1, 1: 1, 2: 2})
	s.Require().NoError(err)

	e := election.Election{
		Alias:   "senate",
		Parties: map[string]string{"R": "votes_r", "D": "votes_d"},
		Seats:   1,
	}
	reg, err := partition.NewRegistry(e)
	s.Require().NoError(err)
	p := partition.New(g, a, reg)

	v, err := p.Value("senate")
	s.Require().NoError(err)
	results := v.(map[assignment.PartID]election.Result)

	part1 := results[1]
	s.Equal(70.0, part1.Party["R"]) // 60 + 10
	s.Equal(70.0, part1.Party["D"]) // 40 + 30
	s.InDelta(0.5, part1.Percent["R"], 1e-9)

	part2 := results[2]
	s.Equal("D", part2.Winner)
	s.Equal(5.0, part2.Party["R"])
	s.Equal(45.0, part2.Party["D"])
	s.InDelta(1.0, part2.SeatsWon, 1e-9)
}

func TestElectionSuite(t *testing.T) {
	suite.Run(t, new(ElectionSuite))
}
