// Package assignment implements the bidirectional node<->part mapping: a
// Flip applies in O(|flip|), and every part stays non-empty by construction.
package assignment

import (
	"errors"
	"sort"
)

// PartID is an opaque, non-contiguous integer part label. Part ids are
// preserved verbatim across flips.
type PartID int

// Flip is a finite mapping from internal node id to the part it should be
// reassigned to.
type Flip map[int]PartID

// Sentinel errors for assignment construction and mutation.
var (
	// ErrEmptyPart indicates OfMapping was given a mapping that omits a
	// node. A Flip that would empty a part fails with ErrDegenerateFlip
	// instead.
	ErrEmptyPart = errors.New("assignment: part would be left empty")

	// ErrDegenerateFlip indicates ApplyFlipInPlace/CloneWithFlip received a
	// Flip that empties a part; the producing proposal should have already
	// rejected this flip.
	ErrDegenerateFlip = errors.New("assignment: degenerate flip empties a part")

	// ErrSeedFailure indicates FromRandom exhausted its retry budget without
	// producing a balanced initial assignment.
	ErrSeedFailure = errors.New("assignment: could not seed a balanced assignment")
)

// Assignment is the bidirectional node<->part map.
type Assignment struct {
	partOf  []PartID
	members map[PartID]map[int]struct{}
	sorted  []PartID
}

// OfMapping builds an Assignment from an explicit node->part map covering
// every node 0..n-1.
//
// Errors: ErrEmptyPart if m omits a node, or if any part ends up empty
// (impossible unless m is malformed, since every listed node lands
// somewhere — this guards against a caller passing a sparse map).
func OfMapping(n int, m map[int]PartID) (*Assignment, error) {
	partOf := make([]PartID, n)
	members := make(map[PartID]map[int]struct{})
	for v := 0; v < n; v++ {
		p, ok := m[v]
		if !ok {
			return nil, ErrEmptyPart
		}
		partOf[v] = p
		if members[p] == nil {
			members[p] = make(map[int]struct{})
		}
		members[p][v] = struct{}{}
	}
	return &Assignment{partOf: partOf, members: members, sorted: sortedParts(members)}, nil
}

func sortedParts(members map[PartID]map[int]struct{}) []PartID {
	out := make([]PartID, 0, len(members))
	for p := range members {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NumNodes returns |V|.
func (a *Assignment) NumNodes() int { return len(a.partOf) }

// PartOf returns the part currently holding node v.
func (a *Assignment) PartOf(v int) PartID { return a.partOf[v] }

// Members returns the set of nodes in part p, as a sorted slice.
func (a *Assignment) Members(p PartID) []int {
	set := a.members[p]
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// MembersSet returns the live membership set for part p. Callers must treat
// it as read-only; it is shared with the Assignment's internal state.
func (a *Assignment) MembersSet(p PartID) map[int]struct{} { return a.members[p] }

// Parts returns every part id in ascending order.
func (a *Assignment) Parts() []PartID {
	out := make([]PartID, len(a.sorted))
	copy(out, a.sorted)
	return out
}

// NumParts returns the number of distinct parts.
func (a *Assignment) NumParts() int { return len(a.sorted) }

// ApplyFlipInPlace mutates the assignment in place: a node mapped to its
// current part is a no-op; a flip that would leave any part empty fails
// with ErrDegenerateFlip and the Assignment is left unmodified.
//
// Complexity: O(|flip|).
func (a *Assignment) ApplyFlipInPlace(f Flip) error {
	// Pre-check: simulate part-size deltas before mutating anything, so a
	// rejected flip never leaves the Assignment partially applied.
	delta := map[PartID]int{}
	for v, newPart := range f {
		old := a.partOf[v]
		if old == newPart {
			continue
		}
		delta[old]--
		delta[newPart]++
	}
	for p, d := range delta {
		if d < 0 && len(a.members[p])+d <= 0 {
			return ErrDegenerateFlip
		}
	}

	newPartsCreated := false
	for v, newPart := range f {
		old := a.partOf[v]
		if old == newPart {
			continue
		}
		delete(a.members[old], v)
		if len(a.members[old]) == 0 {
			delete(a.members, old)
		}
		if a.members[newPart] == nil {
			a.members[newPart] = make(map[int]struct{})
			newPartsCreated = true
		}
		a.members[newPart][v] = struct{}{}
		a.partOf[v] = newPart
	}
	if newPartsCreated || len(delta) > 0 {
		a.sorted = sortedParts(a.members)
	}
	return nil
}

// CloneWithFlip returns a new Assignment reflecting f, without mutating the
// receiver. Only the parts touched by f are copied (copy-on-write); every
// other part's membership set is shared with the original.
//
// Complexity: O(|flip| + sum of sizes of touched parts).
func (a *Assignment) CloneWithFlip(f Flip) (*Assignment, error) {
	touched := map[PartID]bool{}
	for v, newPart := range f {
		touched[a.partOf[v]] = true
		touched[newPart] = true
	}

	newMembers := make(map[PartID]map[int]struct{}, len(a.members))
	for p, set := range a.members {
		if touched[p] {
			cp := make(map[int]struct{}, len(set))
			for v := range set {
				cp[v] = struct{}{}
			}
			newMembers[p] = cp
		} else {
			newMembers[p] = set
		}
	}

	newPartOf := make([]PartID, len(a.partOf))
	copy(newPartOf, a.partOf)

	clone := &Assignment{partOf: newPartOf, members: newMembers}
	if err := clone.ApplyFlipInPlace(f); err != nil {
		return nil, err
	}
	clone.sorted = sortedParts(clone.members)
	return clone, nil
}
