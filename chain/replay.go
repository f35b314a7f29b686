// File: replay.go
// Role: Replay — re-expand a recorded sequence of flips against a fixed
// initial Partition and Graph to reproduce a chain's states bit-for-bit,
// without re-running any proposal, constraint, or acceptance logic.

package chain

import (
	"context"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// Recording is the in-memory record of one chain run: every step's last
// flip, in order (step 0's flip is always nil).
type Recording struct {
	Flips []assignment.Flip
}

// Record drains a MarkovChain, capturing each emitted step's LastFlip.
func Record(ctx context.Context, c *MarkovChain) (*Recording, error) {
	rec := &Recording{}
	err := c.Run(ctx, func(step int, p *partition.Partition) error {
		rec.Flips = append(rec.Flips, p.LastFlip())
		return nil
	})
	return rec, err
}

// Replay re-expands a Recording against initial, returning the full
// sequence of partitions it produces. Because every flip was already
// validated when it was first recorded, Replay applies each flip directly
// via Partition.Flip rather than re-running any proposal or constraint.
func Replay(initial *partition.Partition, rec *Recording) ([]*partition.Partition, error) {
	out := make([]*partition.Partition, 0, len(rec.Flips))
	current := initial
	out = append(out, current)
	for _, flip := range rec.Flips[1:] {
		if len(flip) == 0 {
			// An empty flip is the root re-emitted after a rejected
			// candidate: the chain stayed where it was. A later state that
			// is re-emitted records its own last flip again, and reapplying
			// that flip below leaves the assignment unchanged.
			out = append(out, current)
			continue
		}
		next, err := current.Flip(flip)
		if err != nil {
			return nil, err
		}
		current = next
		out = append(out, current)
	}
	return out, nil
}
