// File: bounds.go
// Role: numeric scalar constraints — fixed bounds, self-configuring bounds
// seeded from the initial partition, percent-range bounds, and
// population-ideal bounds.

package constraints

import (
	"fmt"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// ScalarFunc reduces a partition to a single float64 for bound checking.
type ScalarFunc func(p *partition.Partition) (float64, error)

// PartsFunc reduces a partition to one float64 per part, e.g. an updater's
// tally map. Bound checks over PartsFunc apply to every part independently.
type PartsFunc func(p *partition.Partition) (map[assignment.PartID]float64, error)

// UpperBound rejects any partition whose fn value exceeds bound.
func UpperBound(fn ScalarFunc, bound float64) Constraint {
	return func(p *partition.Partition) Result {
		v, err := fn(p)
		if err != nil {
			return Result{Verdict: Fail, Reason: err.Error()}
		}
		if v > bound {
			return Result{Verdict: Fail, Reason: fmt.Sprintf("value %v exceeds upper bound %v", v, bound)}
		}
		return Result{Verdict: Pass}
	}
}

// LowerBound rejects any partition whose fn value falls below bound.
func LowerBound(fn ScalarFunc, bound float64) Constraint {
	return func(p *partition.Partition) Result {
		v, err := fn(p)
		if err != nil {
			return Result{Verdict: Fail, Reason: err.Error()}
		}
		if v < bound {
			return Result{Verdict: Fail, Reason: fmt.Sprintf("value %v falls below lower bound %v", v, bound)}
		}
		return Result{Verdict: Pass}
	}
}

// SelfConfiguringUpperBound evaluates fn on initial and returns an
// UpperBound constraint using that value as the bound — for "never get
// worse than where we started" style constraints.
func SelfConfiguringUpperBound(fn ScalarFunc, initial *partition.Partition) (Constraint, error) {
	v, err := fn(initial)
	if err != nil {
		return nil, err
	}
	return UpperBound(fn, v), nil
}

// SelfConfiguringLowerBound evaluates fn on initial and returns a
// LowerBound constraint using that value as the bound.
func SelfConfiguringLowerBound(fn ScalarFunc, initial *partition.Partition) (Constraint, error) {
	v, err := fn(initial)
	if err != nil {
		return nil, err
	}
	return LowerBound(fn, v), nil
}

// WithinPercentRangeOfBounds evaluates fn on initial and returns a
// constraint requiring every later value to fall within percent of that
// initial value, symmetric in both directions.
func WithinPercentRangeOfBounds(fn ScalarFunc, percent float64, initial *partition.Partition) (Constraint, error) {
	base, err := fn(initial)
	if err != nil {
		return nil, err
	}
	low := base * (1 - percent)
	high := base * (1 + percent)
	return func(p *partition.Partition) Result {
		v, err := fn(p)
		if err != nil {
			return Result{Verdict: Fail, Reason: err.Error()}
		}
		if v < low || v > high {
			return Result{Verdict: Fail, Reason: fmt.Sprintf("value %v outside [%v, %v]", v, low, high)}
		}
		return Result{Verdict: Pass}
	}, nil
}

// WithinPercentOfIdealPopulation builds a Bounds-style constraint on a
// per-part population PartsFunc: every part's population must fall in
// [ideal*(1-epsilon), ideal*(1+epsilon)], where ideal is the total
// population (as of initial) divided by the number of parts.
func WithinPercentOfIdealPopulation(populationFn PartsFunc, epsilon float64, initial *partition.Partition) (Constraint, error) {
	pops, err := populationFn(initial)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, v := range pops {
		total += v
	}
	ideal := total / float64(len(pops))
	low := ideal * (1 - epsilon)
	high := ideal * (1 + epsilon)

	return func(p *partition.Partition) Result {
		vals, err := populationFn(p)
		if err != nil {
			return Result{Verdict: Fail, Reason: err.Error()}
		}
		for part, v := range vals {
			if v < low || v > high {
				return Result{Verdict: Fail, Reason: fmt.Sprintf("part %v population %v outside [%v, %v]", part, v, low, high)}
			}
		}
		return Result{Verdict: Pass}
	}, nil
}

// NoMoreDiscontiguous rejects any candidate with strictly more disconnected
// parts than initial had — a never-degrade constraint for chains that start
// from a plan already known to have some acceptable discontiguity.
func NoMoreDiscontiguous(countDisconnectedParts ScalarFunc, initial *partition.Partition) (Constraint, error) {
	baseline, err := countDisconnectedParts(initial)
	if err != nil {
		return nil, err
	}
	return func(p *partition.Partition) Result {
		n, err := countDisconnectedParts(p)
		if err != nil {
			return Result{Verdict: Fail, Reason: err.Error()}
		}
		if n > baseline {
			return Result{Verdict: Fail, Reason: fmt.Sprintf("%v disconnected parts exceeds baseline %v", n, baseline)}
		}
		return Result{Verdict: Pass}
	}, nil
}
