// File: geo.go
// Role: NewGeographicPartition — a convenience constructor that builds a
// Partition whose registry already carries the standard geographic updater
// family, so callers working with shapefile-derived attributes don't have
// to hand-assemble area/perimeter/boundary updaters every time.

package geo

import (
	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/updaters"
)

// NewGeographicPartition builds a root Partition over g and assign whose
// registry pre-registers area, perimeter, exterior_boundaries,
// interior_boundaries, and boundary_nodes, plus any caller-supplied extra
// updaters (typically a population Tally and cut_edges).
func NewGeographicPartition(g *graph.Graph, assign *assignment.Assignment, extra ...partition.Updater) (*partition.Partition, error) {
	base := []partition.Updater{
		updaters.AreaUpdater{},
		updaters.PerimeterUpdater{},
		updaters.ExteriorBoundariesUpdater{},
		updaters.InteriorBoundariesUpdater{},
		updaters.BoundaryNodesUpdater{},
	}
	registry, err := partition.NewRegistry(append(base, extra...)...)
	if err != nil {
		return nil, err
	}
	return partition.New(g, assign, registry), nil
}
