// File: validator.go
// Role: Validator — a short-circuiting conjunction of constraint
// predicates, and the Verdict type each predicate returns.

package constraints

import "github.com/mggg/gerrychain-go/partition"

// Verdict is the outcome of one constraint evaluated against a candidate
// Partition.
type Verdict int

const (
	// Pass indicates the constraint is satisfied.
	Pass Verdict = iota
	// Fail indicates the constraint is violated; Reason explains why.
	Fail
	// Indeterminate forces the caller to fall back to a full, non-cached
	// check rather than trusting an incremental shortcut.
	Indeterminate
)

// Result pairs a Verdict with a human-readable reason, populated on Fail.
type Result struct {
	Verdict Verdict
	Reason  string
}

// Constraint evaluates one predicate against a candidate partition.
type Constraint func(p *partition.Partition) Result

// Validator is the conjunction of a list of Constraints, evaluated
// left-to-right with short-circuit on the first Fail.
type Validator struct {
	constraints []Constraint
}

// AllOf builds a Validator from constraints, in the order they will be
// evaluated. List cheap, commonly-failing constraints first — e.g.
// single-flip contiguity before a population bound — so a bad candidate is
// rejected without paying for the more expensive checks.
func AllOf(constraints ...Constraint) *Validator {
	return &Validator{constraints: constraints}
}

// Check evaluates every constraint in order, stopping at the first Fail
// (or Indeterminate, which the caller must resolve). It returns the
// terminating Result, or Pass if every constraint passed.
func (v *Validator) Check(p *partition.Partition) Result {
	for _, c := range v.constraints {
		r := c(p)
		if r.Verdict != Pass {
			return r
		}
	}
	return Result{Verdict: Pass}
}
