// File: registry.go
// Role: Registry — a frozen set of Updaters shared by every Partition in
// one chain, assigning each updater a small integer slot id so partitions
// can cache updater values in a slice instead of a string-keyed map on the
// hot path (every accepted flip touches this cache).

package partition

import (
	"errors"

	"github.com/mggg/gerrychain-go/assignment"
)

// ErrDuplicateUpdater indicates two updaters were registered under the same
// name.
var ErrDuplicateUpdater = errors.New("partition: duplicate updater name")

// ErrUnknownUpdater indicates a lookup by name found no registered updater.
var ErrUnknownUpdater = errors.New("partition: unknown updater")

// Updater computes one named value over a Partition. Recompute is the
// from-scratch path, always correct and always available. UpdateFromParent
// is an optional incremental path: given the parent partition's cached
// value for this updater and the flip that produced the child, it may
// return (newValue, true, nil) to avoid a full recompute, or (nil, false,
// nil) to fall back to Recompute.
type Updater interface {
	Name() string
	Recompute(p *Partition) (interface{}, error)
}

// IncrementalUpdater is implemented by updaters that can derive their child
// value from the parent's cached value and the flip instead of a full
// Recompute.
type IncrementalUpdater interface {
	Updater
	UpdateFromParent(parentValue interface{}, p *Partition, flip assignment.Flip) (interface{}, bool, error)
}

// Registry is a frozen, ordered set of Updaters. Every Partition built from
// the same Registry shares its slot layout, so updater values can be
// carried forward by integer index across generations.
type Registry struct {
	updaters []Updater
	slotOf   map[string]int
}

// NewRegistry builds a Registry from updaters. Registering two updaters
// under the same Name is an error.
func NewRegistry(updaters ...Updater) (*Registry, error) {
	slotOf := make(map[string]int, len(updaters))
	for i, u := range updaters {
		if _, dup := slotOf[u.Name()]; dup {
			return nil, ErrDuplicateUpdater
		}
		slotOf[u.Name()] = i
	}
	cp := make([]Updater, len(updaters))
	copy(cp, updaters)
	return &Registry{updaters: cp, slotOf: slotOf}, nil
}

// NumSlots returns the number of registered updaters.
func (r *Registry) NumSlots() int { return len(r.updaters) }

// SlotOf returns the integer slot assigned to an updater name.
func (r *Registry) SlotOf(name string) (int, bool) {
	i, ok := r.slotOf[name]
	return i, ok
}

// At returns the updater registered at slot i.
func (r *Registry) At(i int) Updater { return r.updaters[i] }

// Names returns every registered updater name, in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.updaters))
	for i, u := range r.updaters {
		out[i] = u.Name()
	}
	return out
}
