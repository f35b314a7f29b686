// File: flows.go
// Role: Flows — per-part net node-count change versus the parent partition,
// derived directly from the flip (there is no meaningful "from scratch"
// value against no parent, so the root partition reports all-zero flows).

package updaters

import (
	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// FlowsUpdater reports, per part, how many nodes moved in minus how many
// moved out since the parent partition.
type FlowsUpdater struct{}

// Name returns "flows".
func (FlowsUpdater) Name() string { return "flows" }

// Recompute returns an all-zero flow map: with no parent there is nothing
// to have flowed from.
func (FlowsUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	a := p.Assignment()
	out := make(map[assignment.PartID]int, a.NumParts())
	for _, part := range a.Parts() {
		out[part] = 0
	}
	return out, nil
}

// UpdateFromParent tallies +1 for each flipped node's new part and -1 for
// its old part; parts untouched by the flip report zero regardless of the
// parent's own flow value, since flows describe a single generation's
// change, not a running total.
func (FlowsUpdater) UpdateFromParent(parentValue interface{}, p *partition.Partition, flip assignment.Flip) (interface{}, bool, error) {
	a := p.Assignment()
	old := p.Parent().Assignment()

	out := make(map[assignment.PartID]int, a.NumParts())
	for _, part := range a.Parts() {
		out[part] = 0
	}
	for v, newPart := range flip {
		oldPart := old.PartOf(v)
		if oldPart == newPart {
			continue
		}
		out[oldPart]--
		out[newPart]++
	}
	return out, true, nil
}
