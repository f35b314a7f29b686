package proposals

import "errors"

// Sentinel errors for flip and ReCom proposals.
var (
	// ErrNoBoundary indicates a partition has no cut edges (the trivial
	// one-part case), so no flip can be proposed.
	ErrNoBoundary = errors.New("proposals: partition has no cut edges")

	// ErrExhausted indicates a proposal function could not find a valid
	// candidate within its bounded number of attempts.
	ErrExhausted = errors.New("proposals: exhausted retry attempts")

	// ErrBipartitionFailure propagates a ReCom bipartition failure that
	// could not be resolved by pair reselection.
	ErrBipartitionFailure = errors.New("proposals: bipartition failed for every candidate pair")
)
