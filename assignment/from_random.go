// File: from_random.go
// Role: FromRandom seeds a balanced initial Assignment by delegating the
// actual spanning-tree partitioning search to the tree package. Kept in a
// separate file so package assignment's dependency on package tree is
// visible at a glance; tree itself never imports assignment.

package assignment

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/tree"
)

// FromRandom builds a balanced initial Assignment over g's nodes by
// recursively bipartitioning off one part at a time until numParts parts
// exist, each within epsilon of an equal share of the population carried by
// popCol.
//
// Errors: ErrSeedFailure if the underlying search exhausts its retry
// budget; ErrEmptyPart should not occur since every produced part is
// non-empty by construction.
func FromRandom(g *graph.Graph, numParts int, popCol string, epsilon float64, opts tree.Options, rng *rand.Rand) (*Assignment, error) {
	raw, err := tree.RecursiveSeedPart(g, tree.SeedOptions{
		NumParts:    numParts,
		PopCol:      popCol,
		Epsilon:     epsilon,
		Bipartition: opts,
	}, rng)
	if err != nil {
		return nil, ErrSeedFailure
	}

	m := make(map[int]PartID, len(raw))
	for node, part := range raw {
		m[node] = PartID(part)
	}
	return OfMapping(g.NumNodes(), m)
}
