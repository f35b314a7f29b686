// File: optimizer.go
// Role: SingleMetricOptimizer — wraps a MarkovChain and tracks the best
// score/partition seen across a run, with ShortBursts, SimulatedAnnealing,
// TiltedRun, and the two variants supplementing the standard three.

package optimize

import (
	"context"
	"errors"
	"math/rand"

	"github.com/mggg/gerrychain-go/accept"
	"github.com/mggg/gerrychain-go/chain"
	"github.com/mggg/gerrychain-go/constraints"
	"github.com/mggg/gerrychain-go/partition"
)

// ScoreFunc reduces a partition to a comparable float64 score.
type ScoreFunc func(p *partition.Partition) (float64, error)

// SingleMetricOptimizer drives repeated bursts of a MarkovChain, always
// tracking the best-scoring partition observed so far.
type SingleMetricOptimizer struct {
	Proposal   chain.Proposal
	Validator  *constraints.Validator
	Initial    *partition.Partition
	Score      ScoreFunc
	Maximize   bool
	MaxRejects int

	BestPart  *partition.Partition
	BestScore float64
}

func (o *SingleMetricOptimizer) isImprovement(score float64) bool {
	if o.Maximize {
		return score >= o.BestScore
	}
	return score <= o.BestScore
}

func (o *SingleMetricOptimizer) maxRejections() int {
	if o.MaxRejects > 0 {
		return o.MaxRejects
	}
	return chain.DefaultMaxRejections
}

// ShortBursts runs numBursts chains of burstLength steps each, seeding
// every burst from the best partition observed so far (ties keep the more
// recently observed partition). visit is called for every emitted
// partition across every burst; returning an error from visit aborts the
// whole run.
func (o *SingleMetricOptimizer) ShortBursts(ctx context.Context, burstLength, numBursts int, acceptFn accept.Func, rng *rand.Rand, visit func(p *partition.Partition) error) error {
	if acceptFn == nil {
		acceptFn = accept.AlwaysAccept
	}
	o.BestPart = o.Initial
	score, err := o.Score(o.BestPart)
	if err != nil {
		return err
	}
	o.BestScore = score

	for b := 0; b < numBursts; b++ {
		c, err := chain.New(o.Proposal, o.Validator, acceptFn, o.BestPart, burstLength, rng)
		if err != nil {
			return err
		}
		c.WithMaxRejections(o.maxRejections())
		err = c.Run(ctx, func(step int, p *partition.Partition) error {
			if err := visit(p); err != nil {
				return err
			}
			s, err := o.Score(p)
			if err != nil {
				return err
			}
			if o.isImprovement(s) {
				o.BestPart, o.BestScore = p, s
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// tiltedAcceptance accepts every improving or tying candidate and accepts a
// worsening candidate with probability p.
func (o *SingleMetricOptimizer) tiltedAcceptance(p float64) accept.Func {
	return func(current, candidate *partition.Partition, step int, rng *rand.Rand) (bool, error) {
		curScore, err := o.Score(current)
		if err != nil {
			return false, err
		}
		candScore, err := o.Score(candidate)
		if err != nil {
			return false, err
		}
		if o.isBetterOrEqual(candScore, curScore) {
			return true, nil
		}
		return rng.Float64() < p, nil
	}
}

func (o *SingleMetricOptimizer) isBetterOrEqual(a, b float64) bool {
	if o.Maximize {
		return a >= b
	}
	return a <= b
}

// TiltedShortBursts runs ShortBursts using a tilted acceptance function:
// improving candidates always accepted, worsening candidates accepted with
// probability p.
func (o *SingleMetricOptimizer) TiltedShortBursts(ctx context.Context, burstLength, numBursts int, p float64, rng *rand.Rand, visit func(*partition.Partition) error) error {
	return o.ShortBursts(ctx, burstLength, numBursts, o.tiltedAcceptance(p), rng, visit)
}

// TiltedRun runs a single numSteps chain with the tilted acceptance
// function.
func (o *SingleMetricOptimizer) TiltedRun(ctx context.Context, numSteps int, p float64, rng *rand.Rand, visit func(*partition.Partition) error) error {
	o.BestPart = o.Initial
	score, err := o.Score(o.BestPart)
	if err != nil {
		return err
	}
	o.BestScore = score

	c, err := chain.New(o.Proposal, o.Validator, o.tiltedAcceptance(p), o.Initial, numSteps, rng)
	if err != nil {
		return err
	}
	c.WithMaxRejections(o.maxRejections())
	return c.Run(ctx, func(step int, part *partition.Partition) error {
		if err := visit(part); err != nil {
			return err
		}
		s, err := o.Score(part)
		if err != nil {
			return err
		}
		if o.isImprovement(s) {
			o.BestPart, o.BestScore = part, s
		}
		return nil
	})
}

// BetaSchedule returns the unscaled inverse temperature for a step;
// SimulatedAnnealing multiplies it by betaMagnitude.
type BetaSchedule func(step int) float64

// SimulatedAnnealing runs a single numSteps chain using Metropolis-Hastings
// acceptance with beta(t) = betaSchedule(t) * betaMagnitude.
func (o *SingleMetricOptimizer) SimulatedAnnealing(ctx context.Context, numSteps int, betaSchedule BetaSchedule, betaMagnitude float64, rng *rand.Rand, visit func(*partition.Partition) error) error {
	o.BestPart = o.Initial
	score, err := o.Score(o.BestPart)
	if err != nil {
		return err
	}
	o.BestScore = score

	scoreForMH := func(p *partition.Partition) (float64, error) {
		s, err := o.Score(p)
		if !o.Maximize {
			return s, err
		}
		return -s, err // Metropolis-Hastings minimizes; negate to maximize.
	}
	beta := func(step int) float64 { return betaSchedule(step) * betaMagnitude }
	acceptFn := accept.MetropolisHastings(scoreForMH, beta)

	c, err := chain.New(o.Proposal, o.Validator, acceptFn, o.Initial, numSteps, rng)
	if err != nil {
		return err
	}
	c.WithMaxRejections(o.maxRejections())
	return c.Run(ctx, func(step int, part *partition.Partition) error {
		if err := visit(part); err != nil {
			return err
		}
		s, err := o.Score(part)
		if err != nil {
			return err
		}
		if o.isImprovement(s) {
			o.BestPart, o.BestScore = part, s
		}
		return nil
	})
}

// VariableLengthShortBursts runs bursts of doubling length: starting at
// length 2, the burst length doubles whenever stuckBuffer*burstLength
// consecutive steps pass without an improvement. Runs until numSteps total
// steps have been emitted.
func (o *SingleMetricOptimizer) VariableLengthShortBursts(ctx context.Context, numSteps, stuckBuffer int, acceptFn accept.Func, rng *rand.Rand, visit func(*partition.Partition) error) error {
	if acceptFn == nil {
		acceptFn = accept.AlwaysAccept
	}
	o.BestPart = o.Initial
	score, err := o.Score(o.BestPart)
	if err != nil {
		return err
	}
	o.BestScore = score

	timeStuck := 0
	burstLength := 2
	emitted := 0

	for emitted < numSteps {
		c, err := chain.New(o.Proposal, o.Validator, acceptFn, o.BestPart, burstLength, rng)
		if err != nil {
			return err
		}
		c.WithMaxRejections(o.maxRejections())
		err = c.Run(ctx, func(step int, p *partition.Partition) error {
			if err := visit(p); err != nil {
				return err
			}
			s, err := o.Score(p)
			if err != nil {
				return err
			}
			if o.isImprovement(s) {
				o.BestPart, o.BestScore = p, s
				timeStuck = 0
			} else {
				timeStuck++
			}
			emitted++
			if emitted >= numSteps {
				return errBurstQuotaReached
			}
			return nil
		})
		if err != nil && err != errBurstQuotaReached {
			return err
		}
		if timeStuck >= stuckBuffer*burstLength {
			burstLength *= 2
		}
	}
	return nil
}

// errBurstQuotaReached signals VariableLengthShortBursts' inner chain.Run
// to stop early once the overall step budget is spent partway through a
// burst; it never escapes this file.
var errBurstQuotaReached = errors.New("optimize: burst quota reached")
