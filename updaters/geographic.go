// File: geographic.go
// Role: the geographic updater family that reads reserved node/edge
// attributes ("boundary_node", "boundary_perim", "area") to compute
// per-part perimeter, area, and boundary node sets.

package updaters

import (
	"fmt"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// BoundaryNodesUpdater computes, per part, the set of nodes marked
// boundary_node that belong to that part.
type BoundaryNodesUpdater struct{}

// Name returns "boundary_nodes".
func (BoundaryNodesUpdater) Name() string { return "boundary_nodes" }

// Recompute scans every node for its boundary flag and part.
func (BoundaryNodesUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	a := p.Assignment()
	out := make(map[assignment.PartID]map[int]struct{}, a.NumParts())
	for v := 0; v < a.NumNodes(); v++ {
		boundary, err := g.IsBoundary(v)
		if err != nil {
			return nil, err
		}
		if !boundary {
			continue
		}
		part := a.PartOf(v)
		if out[part] == nil {
			out[part] = make(map[int]struct{})
		}
		out[part][v] = struct{}{}
	}
	return out, nil
}

// ExteriorBoundariesUpdater sums boundary_perim (the length of a boundary
// node's exterior, geography-facing edge) per part, over that part's
// boundary nodes.
type ExteriorBoundariesUpdater struct{}

// Name returns "exterior_boundaries".
func (ExteriorBoundariesUpdater) Name() string { return "exterior_boundaries" }

// Recompute sums boundary_perim over each part's boundary nodes.
func (ExteriorBoundariesUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	a := p.Assignment()
	out := make(map[assignment.PartID]float64, a.NumParts())
	for _, part := range a.Parts() {
		out[part] = 0
	}
	for v := 0; v < a.NumNodes(); v++ {
		boundary, err := g.IsBoundary(v)
		if err != nil {
			return nil, err
		}
		if !boundary {
			continue
		}
		perim, err := g.NodeAttr(v, "boundary_perim")
		if err != nil {
			return nil, fmt.Errorf("exterior_boundaries: node %d: %w", v, err)
		}
		f, err := perim.AsFloat64()
		if err != nil {
			return nil, err
		}
		out[a.PartOf(v)] += f
	}
	return out, nil
}

// InteriorBoundariesUpdater sums the shared-edge perimeter of every cut
// edge, adding each edge's full "shared_perim" value to both parts it
// separates.
type InteriorBoundariesUpdater struct{}

// Name returns "interior_boundaries".
func (InteriorBoundariesUpdater) Name() string { return "interior_boundaries" }

// Recompute sums shared_perim over each part's cut edges.
func (InteriorBoundariesUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	a := p.Assignment()
	out := make(map[assignment.PartID]float64, a.NumParts())
	for _, part := range a.Parts() {
		out[part] = 0
	}
	for _, e := range g.Edges() {
		pu, pv := a.PartOf(e[0]), a.PartOf(e[1])
		if pu == pv {
			continue
		}
		perim, err := g.EdgeAttr(e[0], e[1], "shared_perim")
		if err != nil {
			return nil, fmt.Errorf("interior_boundaries: edge (%d,%d): %w", e[0], e[1], err)
		}
		f, err := perim.AsFloat64()
		if err != nil {
			return nil, err
		}
		out[pu] += f
		out[pv] += f
	}
	return out, nil
}

// PerimeterUpdater is the per-part total perimeter: each part's exterior
// boundary length plus its interior (shared) boundary length.
type PerimeterUpdater struct{}

// Name returns "perimeter".
func (PerimeterUpdater) Name() string { return "perimeter" }

// Recompute sums exterior_boundaries and interior_boundaries per part.
func (PerimeterUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	ext, err := (ExteriorBoundariesUpdater{}).Recompute(p)
	if err != nil {
		return nil, err
	}
	interior, err := (InteriorBoundariesUpdater{}).Recompute(p)
	if err != nil {
		return nil, err
	}
	extMap := ext.(map[assignment.PartID]float64)
	interiorMap := interior.(map[assignment.PartID]float64)
	out := make(map[assignment.PartID]float64, len(extMap))
	for part, e := range extMap {
		out[part] = e + interiorMap[part]
	}
	return out, nil
}

// AreaUpdater sums a node "area" attribute per part.
type AreaUpdater struct{}

// Name returns "area".
func (AreaUpdater) Name() string { return "area" }

// Recompute delegates to a plain Tally over the area attribute.
func (AreaUpdater) Recompute(p *partition.Partition) (interface{}, error) {
	return (Tally{Alias: "area", Attr: "area"}).Recompute(p)
}
