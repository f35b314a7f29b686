package tree

import "errors"

// Sentinel errors for spanning-tree and bipartition operations.
var (
	// ErrBipartitionFailure indicates bipartition_tree exhausted max_attempts
	// without finding a balanced cut, and pair reselection was not allowed.
	ErrBipartitionFailure = errors.New("tree: could not find a balanced cut")

	// ErrReselectPair indicates bipartition_tree exhausted max_attempts and
	// allow_pair_reselection was set; the caller should draw a different
	// district pair and retry.
	ErrReselectPair = errors.New("tree: exhausted attempts, reselect district pair")

	// ErrEmptySubgraph indicates an empty node set was passed to a
	// spanning-tree or bipartition routine.
	ErrEmptySubgraph = errors.New("tree: subgraph has no nodes")

	// ErrDisconnectedSubgraph indicates the input view is not connected, so
	// no spanning tree touching every member exists.
	ErrDisconnectedSubgraph = errors.New("tree: subgraph is not connected")

	// ErrMissingPopulation indicates a node in the view lacks the
	// configured population column.
	ErrMissingPopulation = errors.New("tree: node missing population attribute")

	// ErrSeedFailure indicates recursive seeding exhausted its retry budget.
	ErrSeedFailure = errors.New("tree: could not seed a balanced assignment")
)
