// File: gingleator_optimizer.go
// Role: NewGingleator — assembles a SingleMetricOptimizer preconfigured
// with one of the opportunity-district score variants, always maximizing.

package optimize

import (
	"github.com/mggg/gerrychain-go/chain"
	"github.com/mggg/gerrychain-go/constraints"
	"github.com/mggg/gerrychain-go/partition"
)

// NewGingleator builds a SingleMetricOptimizer whose score is one of the
// GingleScore variants (NumOpportunityDists by default) evaluated against
// shares at the given threshold.
func NewGingleator(proposal chain.Proposal, validator *constraints.Validator, initial *partition.Partition, shares MinorityShareFunc, threshold float64, score GingleScore) *SingleMetricOptimizer {
	if score == nil {
		score = NumOpportunityDists
	}
	return &SingleMetricOptimizer{
		Proposal:  proposal,
		Validator: validator,
		Initial:   initial,
		Score:     score(shares, threshold),
		Maximize:  true,
	}
}
