// File: cutedges.go
// Role: CutEdges — the set of graph edges whose endpoints sit in different
// parts, with an O(deg(flipped nodes)) diff path.

package updaters

import (
	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// Edge is an undirected node-id pair, always stored with U < V.
type Edge struct{ U, V int }

func makeEdge(a, b int) Edge {
	if a < b {
		return Edge{a, b}
	}
	return Edge{b, a}
}

// CutEdgesUpdater computes the set of edges crossing part boundaries under
// the name "cut_edges".
type CutEdgesUpdater struct{}

// Name returns "cut_edges".
func (CutEdgesUpdater) Name() string { return "cut_edges" }

// Recompute scans every edge of the graph from scratch.
func (CutEdgesUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	a := p.Assignment()
	out := make(map[Edge]struct{})
	for _, e := range g.Edges() {
		if a.PartOf(e[0]) != a.PartOf(e[1]) {
			out[makeEdge(e[0], e[1])] = struct{}{}
		}
	}
	return out, nil
}

// UpdateFromParent re-evaluates only the edges touching a flipped node:
// edges that used to cross and no longer do are dropped, edges that newly
// cross are added.
func (u CutEdgesUpdater) UpdateFromParent(parentValue interface{}, p *partition.Partition, flip assignment.Flip) (interface{}, bool, error) {
	parent, ok := parentValue.(map[Edge]struct{})
	if !ok {
		return nil, false, nil
	}
	g := p.Graph()
	a := p.Assignment()

	out := make(map[Edge]struct{}, len(parent))
	for e := range parent {
		out[e] = struct{}{}
	}
	for v := range flip {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return nil, false, err
		}
		for _, n := range neighbors {
			e := makeEdge(v, n)
			if a.PartOf(v) != a.PartOf(n) {
				out[e] = struct{}{}
			} else {
				delete(out, e)
			}
		}
	}
	return out, true, nil
}
