// File: spanningtrees.go
// Role: SpanningTrees — a per-part uniform spanning tree, cached on the
// partition it was computed for. Rarely queried on the hot path (it exists
// for constraints/diagnostics that want a tree witness of connectivity), so
// it always recomputes from scratch rather than carrying a diff path.

package updaters

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/tree"
)

// SpanningTreesUpdater draws one uniform spanning tree per part, using RNG
// for the Wilson's-algorithm draw. Reusing the same RNG a chain already
// carries keeps the whole run's randomness attributable to one seed.
type SpanningTreesUpdater struct {
	RNG *rand.Rand
}

// Name returns "spanning_trees".
func (SpanningTreesUpdater) Name() string { return "spanning_trees" }

// Recompute draws a fresh uniform spanning tree over each part's induced
// subgraph.
func (u SpanningTreesUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	a := p.Assignment()
	out := make(map[assignment.PartID]*tree.SpanningTree, a.NumParts())
	for _, part := range a.Parts() {
		members := make(map[int]bool)
		for _, v := range a.Members(part) {
			members[v] = true
		}
		view := g.Subgraph(members)
		t, err := tree.UniformSpanningTree(view, u.RNG)
		if err != nil {
			return nil, err
		}
		out[part] = t
	}
	return out, nil
}
