// File: seed.go
// Role: RecursiveSeedPart — build an initial balanced partition from
// scratch by repeatedly bipartitioning off one part at a time.

package tree

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/graph"
)

// SeedOptions configures RecursiveSeedPart.
type SeedOptions struct {
	// NumParts is the number of parts to produce.
	NumParts int
	// PopCol is the node attribute carrying population.
	PopCol string
	// Epsilon bounds how far each part's population may stray from its
	// share of the total (symmetric, same semantics as BipartitionTree).
	Epsilon float64
	// Bipartition is forwarded to every BipartitionTree call, so its
	// MaxAttempts bounds the tree draws of each step. RecursiveSeedPart
	// clears its RegionSurcharge and sets its ComplementTarget per step.
	Bipartition Options
}

// RecursiveSeedPart partitions every node of g into opts.NumParts parts,
// each within opts.Epsilon of total_population/opts.NumParts, by drawing a
// spanning tree of the remaining unassigned nodes and bipartitioning off one
// part at a time. It returns a raw node-id -> part-index mapping (parts
// numbered 0..NumParts-1) rather than an Assignment, so that this package
// never needs to import the assignment package.
//
// Errors: ErrSeedFailure if any step's retry budget is exhausted.
func RecursiveSeedPart(g *graph.Graph, opts SeedOptions, rng *rand.Rand) (map[int]int, error) {
	if opts.NumParts <= 0 {
		return nil, ErrSeedFailure
	}

	allNodes := make(map[int]bool, g.NumNodes())
	totalPop := 0.0
	for i := 0; i < g.NumNodes(); i++ {
		allNodes[i] = true
		attr, err := g.NodeAttr(i, opts.PopCol)
		if err != nil {
			return nil, ErrMissingPopulation
		}
		f, ferr := attr.AsFloat64()
		if ferr != nil {
			return nil, ErrMissingPopulation
		}
		totalPop += f
	}

	result := make(map[int]int, g.NumNodes())
	remaining := allNodes
	target := totalPop / float64(opts.NumParts)

	bipartOpts := opts.Bipartition
	bipartOpts.RegionSurcharge = nil // seeding has no notion of prior-district identity to surcharge against

	for part := 0; part < opts.NumParts-1; part++ {
		view := g.Subgraph(remaining)
		if !graph.IsConnected(view) {
			return nil, ErrDisconnectedSubgraph
		}

		// Each step peels one target-size part off the remaining pool; the
		// pool left behind must still hold partsLeftAfter more parts, so its
		// balance target is that many multiples of target, not target
		// itself (which would only be reachable when exactly two parts
		// remain, i.e. the final split).
		partsLeftAfter := opts.NumParts - part - 1
		iterOpts := bipartOpts
		iterOpts.ComplementTarget = float64(partsLeftAfter) * target

		res, err := BipartitionTree(view, opts.PopCol, target, opts.Epsilon, iterOpts, rng)
		if err != nil {
			return nil, ErrSeedFailure
		}

		// res.Subset is the side BipartitionTree balanced against target
		// (the part being peeled off); res.Complement is the pool balanced
		// against iterOpts.ComplementTarget and carries on to the next
		// iteration.
		for v := range res.Subset {
			result[v] = part
			delete(remaining, v)
		}
	}

	for v := range remaining {
		result[v] = opts.NumParts - 1
	}

	return result, nil
}
