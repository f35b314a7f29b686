// File: chain.go
// Role: MarkovChain — the step-by-step driver applying a proposal,
// validating it, and deciding acceptance, exposed as a state machine whose
// Run method pushes every emitted step to a visit callback.

package chain

import (
	"context"
	"errors"

	"math/rand"

	"github.com/mggg/gerrychain-go/accept"
	"github.com/mggg/gerrychain-go/constraints"
	"github.com/mggg/gerrychain-go/partition"
)

// State is the MarkovChain's lifecycle state. Transitions are monotone:
// Ready -> Running -> (Done | Failed). Once Done or Failed, the chain never
// transitions again.
type State int

const (
	// Ready indicates the chain has been constructed but Run has never
	// been called.
	Ready State = iota
	// Running indicates at least one step has been emitted and more may
	// follow.
	Running
	// Done indicates every requested step (including the initial state)
	// has been emitted.
	Done
	// Failed indicates the chain aborted, e.g. via RejectionExhausted.
	Failed
)

// Proposal draws a candidate successor from current.
type Proposal func(current *partition.Partition, rng *rand.Rand) (*partition.Partition, error)

// Sentinel errors.
var (
	// ErrInvalidInitialState indicates the initial partition itself fails
	// the chain's constraints.
	ErrInvalidInitialState = errors.New("chain: initial state fails constraints")

	// ErrRejectionExhausted indicates a single step exceeded its bounded
	// number of constraint-rejected proposal attempts.
	ErrRejectionExhausted = errors.New("chain: exhausted rejection attempts for this step")
)

// DefaultMaxRejections bounds how many constraint-failing candidates a
// single step will draw before giving up with ErrRejectionExhausted.
const DefaultMaxRejections = 1_000_000

// MarkovChain drives a sequence of partitions: propose, validate, accept.
type MarkovChain struct {
	proposal      Proposal
	validator     *constraints.Validator
	accept        accept.Func
	current       *partition.Partition
	initial       *partition.Partition
	step          int
	totalSteps    int
	maxRejections int
	state         State
	rng           *rand.Rand
	onProgress    func(step int, p *partition.Partition)
	err           error
}

// New constructs a MarkovChain. initialState must satisfy validator, or
// construction fails with ErrInvalidInitialState. totalSteps counts the
// initial state as step 0, so a chain with totalSteps=1 emits only the
// initial state.
func New(proposal Proposal, validator *constraints.Validator, acceptFn accept.Func, initialState *partition.Partition, totalSteps int, rng *rand.Rand) (*MarkovChain, error) {
	if r := validator.Check(initialState); r.Verdict == constraints.Fail {
		return nil, ErrInvalidInitialState
	}
	return &MarkovChain{
		proposal:      proposal,
		validator:     validator,
		accept:        acceptFn,
		current:       initialState,
		initial:       initialState,
		totalSteps:    totalSteps,
		maxRejections: DefaultMaxRejections,
		state:         Ready,
		rng:           rng,
	}, nil
}

// WithMaxRejections overrides DefaultMaxRejections.
func (c *MarkovChain) WithMaxRejections(n int) *MarkovChain {
	c.maxRejections = n
	return c
}

// OnProgress registers a callback invoked after every emitted step,
// including step 0. External callers may use this to drive a progress bar;
// the bar itself is not this package's concern.
func (c *MarkovChain) OnProgress(fn func(step int, p *partition.Partition)) *MarkovChain {
	c.onProgress = fn
	return c
}

// State returns the chain's current lifecycle state.
func (c *MarkovChain) State() State { return c.state }

// Current returns the most recently emitted partition.
func (c *MarkovChain) Current() *partition.Partition { return c.current }

// Err returns the error that caused a Failed transition, if any.
func (c *MarkovChain) Err() error { return c.err }

// Run drains the chain to completion, calling visit for every emitted step
// (including step 0), and honoring ctx for cooperative cancellation between
// steps. On cancellation the chain transitions to Done without emitting a
// partial state.
func (c *MarkovChain) Run(ctx context.Context, visit func(step int, p *partition.Partition) error) error {
	if c.state == Ready {
		c.state = Running
		if c.onProgress != nil {
			c.onProgress(0, c.current)
		}
		if err := visit(0, c.current); err != nil {
			return err
		}
		c.step = 1
	}

	for c.step < c.totalSteps {
		select {
		case <-ctx.Done():
			c.state = Done
			return nil
		default:
		}

		next, err := c.advance()
		if err != nil {
			c.state = Failed
			c.err = err
			return err
		}
		c.current = next
		if c.onProgress != nil {
			c.onProgress(c.step, c.current)
		}
		if err := visit(c.step, c.current); err != nil {
			return err
		}
		c.step++
	}

	c.state = Done
	return nil
}

// advance performs one step's propose/validate/accept cycle, retrying
// rejected candidates up to maxRejections times.
func (c *MarkovChain) advance() (*partition.Partition, error) {
	for attempt := 0; attempt < c.maxRejections; attempt++ {
		candidate, err := c.proposal(c.current, c.rng)
		if err != nil {
			continue
		}
		if r := c.validator.Check(candidate); r.Verdict != constraints.Pass {
			continue
		}
		ok, err := c.accept(c.current, candidate, c.step, c.rng)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
		return c.current, nil
	}
	return nil, ErrRejectionExhausted
}
