// File: cutchoice.go
// Role: default CutChoice selecting among balanced Cut candidates, biased
// toward cuts that bridge more/heavier region surcharges before falling
// back to uniform choice.

package tree

import (
	"math/rand"
	"sort"

	"github.com/mggg/gerrychain-go/graph"
)

// crossedRegions returns the sorted list of region names (keys of
// regionSurcharge) whose endpoint values differ across the cut edge, using
// the same crossing rule as edgeWeight: a missing attribute on either
// endpoint counts as crossing.
func crossedRegions(g *graph.Graph, u, v int, regionSurcharge map[string]float64) []string {
	var crossed []string
	for region := range regionSurcharge {
		uv, uerr := g.NodeAttr(u, region)
		vv, verr := g.NodeAttr(v, region)
		if uerr != nil || verr != nil || uv != vv {
			crossed = append(crossed, region)
		}
	}
	sort.Strings(crossed)
	return crossed
}

func regionKey(regions []string) string {
	out := ""
	for i, r := range regions {
		if i > 0 {
			out += "\x00"
		}
		out += r
	}
	return out
}

// DefaultCutChoice classifies candidates by the exact set of regions their
// edge crosses, orders those classes by (cardinality desc, summed surcharge
// desc, lexicographic region list asc), and picks uniformly at random
// within the winning class. With an empty regionSurcharge every cut falls
// into the same (empty) class, so this degrades to a uniform random choice
// among all candidates.
func DefaultCutChoice(g *graph.Graph, cuts []Cut, regionSurcharge map[string]float64, rng *rand.Rand) Cut {
	if len(regionSurcharge) == 0 || len(cuts) == 1 {
		return cuts[rng.Intn(len(cuts))]
	}

	type class struct {
		regions []string
		sum     float64
		members []int // indices into cuts
	}
	classes := map[string]*class{}
	for i, cut := range cuts {
		regions := crossedRegions(g, cut.Node, cut.Parent, regionSurcharge)
		key := regionKey(regions)
		c, ok := classes[key]
		if !ok {
			sum := 0.0
			for _, r := range regions {
				sum += regionSurcharge[r]
			}
			c = &class{regions: regions, sum: sum}
			classes[key] = c
		}
		c.members = append(c.members, i)
	}

	var ordered []*class
	for _, c := range classes {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if len(a.regions) != len(b.regions) {
			return len(a.regions) > len(b.regions)
		}
		if a.sum != b.sum {
			return a.sum > b.sum
		}
		return regionKey(a.regions) < regionKey(b.regions)
	})

	winner := ordered[0]
	pick := winner.members[rng.Intn(len(winner.members))]
	return cuts[pick]
}
