// File: tally.go
// Role: Tally — sum of a numeric node attribute per part, with an O(|flip|)
// diff path.

package updaters

import (
	"fmt"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// Tally sums NodeAttr(v, Attr) over every node v in each part.
type Tally struct {
	Alias string
	Attr  string
}

// Name returns the updater's registry name (Alias).
func (t Tally) Name() string { return t.Alias }

// Recompute sums Attr over every part from scratch.
func (t Tally) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	a := p.Assignment()
	out := make(map[assignment.PartID]float64, a.NumParts())
	for _, part := range a.Parts() {
		out[part] = 0
	}
	for v := 0; v < a.NumNodes(); v++ {
		val, err := g.NodeAttr(v, t.Attr)
		if err != nil {
			return nil, fmt.Errorf("tally %q: node %d: %w", t.Alias, v, err)
		}
		f, err := val.AsFloat64()
		if err != nil {
			return nil, fmt.Errorf("tally %q: node %d: %w", t.Alias, v, err)
		}
		out[a.PartOf(v)] += f
	}
	return out, nil
}

// UpdateFromParent applies the flip's per-node deltas to the parent's
// tallies: a flipped node subtracts its attribute value from its old part's
// tally and adds it to the new part's tally.
func (t Tally) UpdateFromParent(parentValue interface{}, p *partition.Partition, flip assignment.Flip) (interface{}, bool, error) {
	parent, ok := parentValue.(map[assignment.PartID]float64)
	if !ok {
		return nil, false, nil
	}
	g := p.Graph()
	out := make(map[assignment.PartID]float64, len(parent))
	for k, v := range parent {
		out[k] = v
	}
	old := p.Parent().Assignment()
	for v, newPart := range flip {
		oldPart := old.PartOf(v)
		if oldPart == newPart {
			continue
		}
		val, err := g.NodeAttr(v, t.Attr)
		if err != nil {
			return nil, false, err
		}
		f, err := val.AsFloat64()
		if err != nil {
			return nil, false, err
		}
		out[oldPart] -= f
		out[newPart] += f
	}
	return out, true, nil
}
