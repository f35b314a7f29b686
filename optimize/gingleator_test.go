package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/optimize"
	"github.com/mggg/gerrychain-go/partition"
)

func sharesOf(vals map[assignment.PartID]float64) optimize.MinorityShareFunc {
	return func(p *partition.Partition) (map[assignment.PartID]float64, error) {
		return vals, nil
	}
}

func TestNumOpportunityDistsCountsAtOrAboveThreshold(t *testing.T) {
	shares := sharesOf(map[assignment.PartID]float64{1: 0.6, 2: 0.4, 3: 0.55})
	score := optimize.NumOpportunityDists(shares, 0.5)
	v, err := score(nil)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

func TestRewardPartialDistAddsNextHighestSubThreshold(t *testing.T) {
	shares := sharesOf(map[assignment.PartID]float64{1: 0.6, 2: 0.45})
	score := optimize.RewardPartialDist(shares, 0.5)
	v, err := score(nil)
	require.NoError(t, err)
	require.Equal(t, 1.45, v) // 1 opportunity district + 0.45 partial credit
}

func TestPenalizeMaximumOverPenalizesAPackedDistrict(t *testing.T) {
	packed := sharesOf(map[assignment.PartID]float64{1: 0.99, 2: 0.2})
	spread := sharesOf(map[assignment.PartID]float64{1: 0.55, 2: 0.2})

	packedScore, err := optimize.PenalizeMaximumOver(packed, 0.5)(nil)
	require.NoError(t, err)
	spreadScore, err := optimize.PenalizeMaximumOver(spread, 0.5)(nil)
	require.NoError(t, err)

	require.Greater(t, spreadScore, packedScore, "a district just past threshold should score higher than one packed near 1.0")
}

func TestPenalizeAvgOverZeroWhenNoOpportunityDistricts(t *testing.T) {
	shares := sharesOf(map[assignment.PartID]float64{1: 0.1, 2: 0.2})
	v, err := optimize.PenalizeAvgOver(shares, 0.5)(nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestNewGingleatorDefaultsToNumOpportunityDistsAndMaximizes(t *testing.T) {
	shares := sharesOf(map[assignment.PartID]float64{1: 0.6, 2: 0.4})
	opt := optimize.NewGingleator(nil, nil, nil, shares, 0.5, nil)
	require.True(t, opt.Maximize)
	v, err := opt.Score(nil)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestNewGingleatorHonorsExplicitScoreVariant(t *testing.T) {
	shares := sharesOf(map[assignment.PartID]float64{1: 0.6, 2: 0.45})
	opt := optimize.NewGingleator(nil, nil, nil, shares, 0.5, optimize.RewardPartialDist)
	v, err := opt.Score(nil)
	require.NoError(t, err)
	require.Equal(t, 1.45, v)
}
