// File: randomflip.go
// Role: RandomFlip — the simplest proposal: pick a cut edge, flip one of
// its endpoints across the boundary it sits on.

package proposals

import (
	"math/rand"
	"sort"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/updaters"
)

// MaxFlipAttempts bounds how many times RandomFlip redraws after a
// discarded flip (one that would empty the losing part) before giving up.
const MaxFlipAttempts = 1000

// RandomFlip picks a cut edge (u, v) uniformly at random and a side
// uniformly at random, then flips the chosen endpoint into the other
// side's part. A flip that would leave the losing part empty is discarded
// and redrawn, up to MaxFlipAttempts times.
//
// Errors: ErrNoBoundary if the partition has no cut edges; ErrExhausted if
// every draw within the attempt budget would empty a part.
func RandomFlip(p *partition.Partition, rng *rand.Rand) (*partition.Partition, error) {
	raw, err := p.Value("cut_edges")
	if err != nil {
		return nil, err
	}
	cutEdges, ok := raw.(map[updaters.Edge]struct{})
	if !ok || len(cutEdges) == 0 {
		return nil, ErrNoBoundary
	}

	edges := make([]updaters.Edge, 0, len(cutEdges))
	for e := range cutEdges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})

	a := p.Assignment()
	for attempt := 0; attempt < MaxFlipAttempts; attempt++ {
		e := edges[rng.Intn(len(edges))]
		u, v := e.U, e.V
		if rng.Intn(2) == 1 {
			u, v = v, u
		}
		// Flip u into v's part.
		losingPart := a.PartOf(u)
		newPart := a.PartOf(v)
		if len(a.MembersSet(losingPart)) <= 1 {
			continue
		}
		child, err := p.Flip(assignment.Flip{u: newPart})
		if err != nil {
			continue
		}
		return child, nil
	}
	return nil, ErrExhausted
}
