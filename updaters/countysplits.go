// File: countysplits.go
// Role: CountySplits — for each county-attribute value, the set of parts
// whose members carry it, so a chain can score or bound how many counties a
// plan cuts across multiple districts.

package updaters

import (
	"fmt"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// CountySplitsUpdater groups nodes by a county-identifying node attribute
// and reports which parts each county intersects.
type CountySplitsUpdater struct {
	Attr string
}

// Name returns "county_splits".
func (CountySplitsUpdater) Name() string { return "county_splits" }

// Recompute groups every node by its county value and part from scratch.
func (c CountySplitsUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	a := p.Assignment()
	out := make(map[string]map[assignment.PartID]struct{})
	for v := 0; v < a.NumNodes(); v++ {
		val, err := g.NodeAttr(v, c.Attr)
		if err != nil {
			return nil, fmt.Errorf("county_splits: node %d: %w", v, err)
		}
		county := val.S
		if out[county] == nil {
			out[county] = make(map[assignment.PartID]struct{})
		}
		out[county][a.PartOf(v)] = struct{}{}
	}
	return out, nil
}

// UpdateFromParent recomputes only the county entries touched by the flip:
// a flipped node's old county set loses its old part membership (if no
// other flipped-or-unflipped node in that county still holds it) and gains
// its new part.
func (c CountySplitsUpdater) UpdateFromParent(parentValue interface{}, p *partition.Partition, flip assignment.Flip) (interface{}, bool, error) {
	parent, ok := parentValue.(map[string]map[assignment.PartID]struct{})
	if !ok {
		return nil, false, nil
	}
	g := p.Graph()
	a := p.Assignment()

	touchedCounties := make(map[string]bool)
	for v := range flip {
		val, err := g.NodeAttr(v, c.Attr)
		if err != nil {
			return nil, false, err
		}
		touchedCounties[val.S] = true
	}

	out := make(map[string]map[assignment.PartID]struct{}, len(parent))
	for county, parts := range parent {
		if !touchedCounties[county] {
			out[county] = parts
		}
	}

	for county := range touchedCounties {
		fresh := make(map[assignment.PartID]struct{})
		for v := 0; v < a.NumNodes(); v++ {
			val, err := g.NodeAttr(v, c.Attr)
			if err != nil {
				return nil, false, err
			}
			if val.S == county {
				fresh[a.PartOf(v)] = struct{}{}
			}
		}
		out[county] = fresh
	}

	return out, true, nil
}
