// File: recom.go
// Role: ReCom — the recombination proposal: merge two adjacent parts,
// redraw a population-balanced bipartition of their union, and reassign.

package proposals

import (
	"math/rand"
	"sort"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/tree"
	"github.com/mggg/gerrychain-go/updaters"
)

// ReComConfig configures a ReCom proposal function.
type ReComConfig struct {
	PopCol               string
	PopTarget            float64
	Epsilon              float64
	NodeRepeats          int // bounds spanning-tree draws per attempted pair
	RegionSurcharge      map[string]float64
	AllowPairReselection bool
	Uniform              bool
	// CutChoice overrides how a tied set of balanced cuts on one spanning
	// tree is resolved. Defaults to tree.DefaultCutChoice.
	CutChoice func(g *graph.Graph, cuts []tree.Cut, regionSurcharge map[string]float64, rng *rand.Rand) tree.Cut
	// OnWarning, if non-nil, receives a message whenever a bipartition
	// attempt is taking unusually long (forwarded from tree.Options.OnSlowProgress).
	OnWarning func(msg string)
}

// pairKey canonically orders an unordered pair of parts for deduplication.
func pairKey(a, b assignment.PartID) (assignment.PartID, assignment.PartID) {
	if a < b {
		return a, b
	}
	return b, a
}

// adjacentPairs builds the deduplicated list of part pairs connected by at
// least one cut edge, from the partition's cut_edges updater value.
func adjacentPairs(p *partition.Partition) ([][2]assignment.PartID, error) {
	raw, err := p.Value("cut_edges")
	if err != nil {
		return nil, err
	}
	cutEdges, ok := raw.(map[updaters.Edge]struct{})
	if !ok {
		return nil, ErrNoBoundary
	}
	a := p.Assignment()
	seen := map[[2]assignment.PartID]bool{}
	var pairs [][2]assignment.PartID
	for e := range cutEdges {
		x, y := pairKey(a.PartOf(e.U), a.PartOf(e.V))
		key := [2]assignment.PartID{x, y}
		if !seen[key] {
			seen[key] = true
			pairs = append(pairs, key)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs, nil
}

// ReCom returns a proposal function implementing recombination: choose an
// adjacent part pair, redraw a balanced bipartition of their union with
// tree.BipartitionTree, and reassign nodes to minimize the number of
// changed assignments.
func ReCom(cfg ReComConfig) func(p *partition.Partition, rng *rand.Rand) (*partition.Partition, error) {
	return func(p *partition.Partition, rng *rand.Rand) (*partition.Partition, error) {
		pairs, err := adjacentPairs(p)
		if err != nil {
			return nil, err
		}
		if len(pairs) == 0 {
			return nil, ErrNoBoundary
		}

		tried := map[[2]assignment.PartID]bool{}
		for len(tried) < len(pairs) {
			idx := rng.Intn(len(pairs))
			pair := pairs[idx]
			if tried[pair] {
				continue
			}
			tried[pair] = true

			child, err := attemptRecom(p, pair[0], pair[1], cfg, rng)
			if err == nil {
				return child, nil
			}
			if err != tree.ErrBipartitionFailure && err != tree.ErrReselectPair {
				return nil, err
			}
			if !cfg.AllowPairReselection {
				return nil, ErrBipartitionFailure
			}
		}
		return nil, ErrBipartitionFailure
	}
}

func attemptRecom(p *partition.Partition, p1, p2 assignment.PartID, cfg ReComConfig, rng *rand.Rand) (*partition.Partition, error) {
	a := p.Assignment()
	g := p.Graph()

	members := make(map[int]bool)
	for _, v := range a.Members(p1) {
		members[v] = true
	}
	for _, v := range a.Members(p2) {
		members[v] = true
	}
	view := g.Subgraph(members)

	maxAttempts := cfg.NodeRepeats
	if maxAttempts <= 0 {
		maxAttempts = 10000
	}
	opts := tree.Options{
		MaxAttempts:          maxAttempts,
		AllowPairReselection: cfg.AllowPairReselection,
		Uniform:              cfg.Uniform,
		RegionSurcharge:      cfg.RegionSurcharge,
		CutChoice:            cfg.CutChoice,
	}
	if cfg.OnWarning != nil {
		opts.WarnAttempts = maxAttempts / 2
		opts.OnSlowProgress = func(attempt int) { cfg.OnWarning("bipartition attempt taking long") }
	}

	res, err := tree.BipartitionTree(view, cfg.PopCol, cfg.PopTarget, cfg.Epsilon, opts, rng)
	if err != nil {
		return nil, err
	}

	origP1 := a.MembersSet(p1)
	changesIfP1Gets := func(side map[int]bool, other map[int]bool) int {
		n := 0
		for v := range side {
			if _, ok := origP1[v]; !ok {
				n++
			}
		}
		for v := range other {
			if _, ok := origP1[v]; ok {
				n++
			}
		}
		return n
	}
	changesA := changesIfP1Gets(res.Subset, res.Complement)
	changesB := changesIfP1Gets(res.Complement, res.Subset)

	toP1, toP2 := res.Subset, res.Complement
	if changesB < changesA {
		toP1, toP2 = res.Complement, res.Subset
	}

	flip := assignment.Flip{}
	for v := range toP1 {
		if a.PartOf(v) != p1 {
			flip[v] = p1
		}
	}
	for v := range toP2 {
		if a.PartOf(v) != p2 {
			flip[v] = p2
		}
	}

	return p.Flip(flip)
}
