// File: gingleator.go
// Role: Gingleator — a SingleMetricOptimizer preset for searching plans
// with more opportunity districts (majority-minority districts, named for
// Thornburg v. Gingles), with the five closed-form scoring variants.

package optimize

import (
	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// MinorityShareFunc maps a partition to each part's minority population
// share, in [0, 1].
type MinorityShareFunc func(p *partition.Partition) (map[assignment.PartID]float64, error)

// GingleScore is one of the five closed-form scoring variants below.
type GingleScore func(shares MinorityShareFunc, threshold float64) ScoreFunc

// NumOpportunityDists counts parts whose minority share is at least
// threshold.
func NumOpportunityDists(shares MinorityShareFunc, threshold float64) ScoreFunc {
	return func(p *partition.Partition) (float64, error) {
		m, err := shares(p)
		if err != nil {
			return 0, err
		}
		return float64(countAtLeast(m, threshold)), nil
	}
}

// RewardPartialDist adds the percentage of the next-highest sub-threshold
// district to the opportunity-district count, rewarding progress toward
// flipping one more district even before it crosses the threshold.
func RewardPartialDist(shares MinorityShareFunc, threshold float64) ScoreFunc {
	return func(p *partition.Partition) (float64, error) {
		m, err := shares(p)
		if err != nil {
			return 0, err
		}
		n := countAtLeast(m, threshold)
		next, ok := maxBelow(m, threshold)
		if !ok {
			return float64(n), nil
		}
		return float64(n) + next, nil
	}
}

// RewardNextHighestClose behaves like NumOpportunityDists unless some
// sub-threshold district is within 0.1 of the threshold, in which case its
// distance from threshold-0.1 (scaled to [0,1]) is added to the count.
func RewardNextHighestClose(shares MinorityShareFunc, threshold float64) ScoreFunc {
	return func(p *partition.Partition) (float64, error) {
		m, err := shares(p)
		if err != nil {
			return 0, err
		}
		n := countAtLeast(m, threshold)
		next, ok := maxBelow(m, threshold)
		if !ok || next < threshold-0.1 {
			return float64(n), nil
		}
		return float64(n) + (next-threshold+0.1)*10, nil
	}
}

// PenalizeMaximumOver rewards opportunity districts, plus a bonus in [0,1]
// that shrinks as the single highest-share district's excess over
// threshold grows, penalizing plans that pack minority population into one
// overwhelming district instead of spreading it across more districts.
func PenalizeMaximumOver(shares MinorityShareFunc, threshold float64) ScoreFunc {
	return func(p *partition.Partition) (float64, error) {
		m, err := shares(p)
		if err != nil {
			return 0, err
		}
		n := countAtLeast(m, threshold)
		if n == 0 {
			return 0, nil
		}
		max := 0.0
		for _, v := range m {
			if v > max {
				max = v
			}
		}
		return float64(n) + (1-max)/(1-threshold), nil
	}
}

// PenalizeAvgOver is PenalizeMaximumOver's average-excess counterpart: it
// penalizes the average share among opportunity districts rather than only
// the maximum.
func PenalizeAvgOver(shares MinorityShareFunc, threshold float64) ScoreFunc {
	return func(p *partition.Partition) (float64, error) {
		m, err := shares(p)
		if err != nil {
			return 0, err
		}
		var opportunity []float64
		for _, v := range m {
			if v >= threshold {
				opportunity = append(opportunity, v)
			}
		}
		if len(opportunity) == 0 {
			return 0, nil
		}
		sum := 0.0
		for _, v := range opportunity {
			sum += v
		}
		avg := sum / float64(len(opportunity))
		return float64(len(opportunity)) + (1-avg)/(1-threshold), nil
	}
}

func countAtLeast(m map[assignment.PartID]float64, threshold float64) int {
	n := 0
	for _, v := range m {
		if v >= threshold {
			n++
		}
	}
	return n
}

func maxBelow(m map[assignment.PartID]float64, threshold float64) (float64, bool) {
	best, found := 0.0, false
	for _, v := range m {
		if v < threshold && (!found || v > best) {
			best, found = v, true
		}
	}
	return best, found
}
