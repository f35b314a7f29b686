// File: partition.go
// Role: Partition — an Assignment over a fixed Graph plus a lazily-computed,
// parent-linked cache of updater values (the core entity every proposal,
// constraint, and acceptance function reads from).

package partition

import (
	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
)

// updaterSlot memoizes one updater's value once computed.
type updaterSlot struct {
	computed bool
	value    interface{}
	err      error
}

// Partition pairs an Assignment with a Graph and a Registry of updaters,
// caching each updater's value against a parent link so that only the
// updaters actually queried on a given generation are ever computed, and
// incremental updaters can reuse their parent's value.
type Partition struct {
	g          *graph.Graph
	assign     *assignment.Assignment
	registry   *Registry
	parent     *Partition
	flip       assignment.Flip
	generation int
	slots      []updaterSlot
}

// New builds the root Partition of a chain: no parent, no flip, every slot
// unevaluated.
func New(g *graph.Graph, assign *assignment.Assignment, registry *Registry) *Partition {
	return &Partition{
		g:        g,
		assign:   assign,
		registry: registry,
		slots:    make([]updaterSlot, registry.NumSlots()),
	}
}

// Graph returns the fixed graph this partition assigns.
func (p *Partition) Graph() *graph.Graph { return p.g }

// Assignment returns the current node<->part assignment.
func (p *Partition) Assignment() *assignment.Assignment { return p.assign }

// Registry returns the shared updater registry.
func (p *Partition) Registry() *Registry { return p.registry }

// Parent returns the partition this one was flipped from, or nil for a
// chain's root.
func (p *Partition) Parent() *Partition { return p.parent }

// LastFlip returns the flip that produced this partition from its parent,
// or nil for a chain's root.
func (p *Partition) LastFlip() assignment.Flip { return p.flip }

// Generation returns how many flips separate this partition from the
// chain's root.
func (p *Partition) Generation() int { return p.generation }

// Flip returns a new Partition reflecting f applied to the receiver's
// assignment, linked back to the receiver as its parent. The receiver is
// never mutated.
func (p *Partition) Flip(f assignment.Flip) (*Partition, error) {
	next, err := p.assign.CloneWithFlip(f)
	if err != nil {
		return nil, err
	}
	return &Partition{
		g:          p.g,
		assign:     next,
		registry:   p.registry,
		parent:     p,
		flip:       f,
		generation: p.generation + 1,
		slots:      make([]updaterSlot, p.registry.NumSlots()),
	}, nil
}

// Value returns the current value of the named updater, computing and
// caching it if this is the first request for it on this partition. It
// prefers an IncrementalUpdater's UpdateFromParent path when a parent link
// and a cached parent value are available, falling back to Recompute
// otherwise.
func (p *Partition) Value(name string) (interface{}, error) {
	slot, ok := p.registry.SlotOf(name)
	if !ok {
		return nil, ErrUnknownUpdater
	}
	return p.valueAt(slot)
}

func (p *Partition) valueAt(slot int) (interface{}, error) {
	s := &p.slots[slot]
	if s.computed {
		return s.value, s.err
	}

	u := p.registry.At(slot)
	if inc, ok := u.(IncrementalUpdater); ok && p.parent != nil {
		if parentVal, err := p.parent.valueAt(slot); err == nil {
			if v, handled, err := inc.UpdateFromParent(parentVal, p, p.flip); handled {
				s.computed, s.value, s.err = true, v, err
				return v, err
			}
		}
	}

	v, err := u.Recompute(p)
	s.computed, s.value, s.err = true, v, err
	return v, err
}
