// File: accept.go
// Role: acceptance functions the MarkovChain driver consults after a
// proposal passes the Validator — always-accept, Metropolis-Hastings with a
// pluggable score and (possibly time-varying) beta, and a beta schedule
// alternating hot/cold phases.

package accept

import (
	"math"
	"math/rand"

	"github.com/mggg/gerrychain-go/partition"
)

// Func decides whether to move from current to candidate. step is the
// chain's current step index, needed by time-varying beta schedules.
type Func func(current, candidate *partition.Partition, step int, rng *rand.Rand) (bool, error)

// AlwaysAccept accepts every candidate that survived the Validator.
func AlwaysAccept(current, candidate *partition.Partition, step int, rng *rand.Rand) (bool, error) {
	return true, nil
}

// ScoreFunc reduces a partition to the scalar Metropolis-Hastings scores.
type ScoreFunc func(p *partition.Partition) (float64, error)

// BetaFunc returns the inverse-temperature to use at a given step.
type BetaFunc func(step int) float64

// ConstantBeta returns a BetaFunc that ignores step and always returns b.
func ConstantBeta(b float64) BetaFunc {
	return func(step int) float64 { return b }
}

// JumpcycleBetaFunction alternates beta between near-0 (hot, for
// hotSteps steps) and near-1 (cold, for coldSteps steps), producing the
// warming/cooling trace used to escape local optima periodically.
func JumpcycleBetaFunction(hotSteps, coldSteps int) BetaFunc {
	period := hotSteps + coldSteps
	return func(step int) float64 {
		if period <= 0 {
			return 1
		}
		if step%period < hotSteps {
			return 1e-3
		}
		return 1
	}
}

// MetropolisHastings builds an acceptance Func that accepts a candidate
// with probability min(1, exp(-beta(step) * (score(candidate) -
// score(current)))).
func MetropolisHastings(score ScoreFunc, beta BetaFunc) Func {
	return func(current, candidate *partition.Partition, step int, rng *rand.Rand) (bool, error) {
		curScore, err := score(current)
		if err != nil {
			return false, err
		}
		candScore, err := score(candidate)
		if err != nil {
			return false, err
		}
		delta := candScore - curScore
		b := beta(step)
		p := math.Min(1, math.Exp(-b*delta))
		return rng.Float64() < p, nil
	}
}

// CutEdgeAccept accepts unconditionally whenever the candidate's cut-edge
// count is no greater than the current partition's, and otherwise falls
// back to a Metropolis test on the ratio of cut-edge counts — a second real
// acceptance rule beyond plain Metropolis-Hastings, useful when a chain
// wants to bias toward compact (low cut-edge) plans without a hard
// constraint.
func CutEdgeAccept(cutEdgeCount ScoreFunc, beta BetaFunc) Func {
	return func(current, candidate *partition.Partition, step int, rng *rand.Rand) (bool, error) {
		curCount, err := cutEdgeCount(current)
		if err != nil {
			return false, err
		}
		candCount, err := cutEdgeCount(candidate)
		if err != nil {
			return false, err
		}
		if candCount <= curCount {
			return true, nil
		}
		ratio := candCount / curCount
		b := beta(step)
		p := math.Min(1, math.Exp(-b*(ratio-1)))
		return rng.Float64() < p, nil
	}
}
