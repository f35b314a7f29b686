// File: bipartition.go
// Role: BipartitionTree — the orchestrator ReCom calls once per proposed
// flip: draw a spanning tree over a pair of merged districts, search it for
// a population-balanced cut, retry on failure, and signal the caller when
// attempts run out.

package tree

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/graph"
)

// Options configures a single BipartitionTree call.
type Options struct {
	// MaxAttempts bounds how many spanning trees are drawn before giving up.
	MaxAttempts int
	// WarnAttempts is the attempt count at which OnSlowProgress fires, if set.
	// Zero disables the warning.
	WarnAttempts int
	// AllowPairReselection, when true, makes BipartitionTree return
	// ErrReselectPair instead of ErrBipartitionFailure once MaxAttempts is
	// exhausted, signaling the caller to draw a different district pair
	// rather than retry the same one.
	AllowPairReselection bool
	// Uniform selects UniformSpanningTree (Wilson's algorithm) over the
	// default randomized weighted Kruskal draw.
	Uniform bool
	// RegionSurcharge biases both the spanning-tree draw and the cut choice
	// toward edges crossing these region boundaries.
	RegionSurcharge map[string]float64
	// ComplementTarget overrides the population target the side not cut off
	// is balanced against, for an asymmetric split (e.g. RecursiveSeedPart
	// peeling one target-size part off a pool that still holds several more
	// parts). Zero means "same as target" — the ordinary symmetric split.
	ComplementTarget float64
	// CutChoice picks among multiple balanced candidates on a single tree.
	// Defaults to DefaultCutChoice.
	CutChoice func(g *graph.Graph, cuts []Cut, regionSurcharge map[string]float64, rng *rand.Rand) Cut
	// OnSlowProgress, if non-nil, is called once attempts reach WarnAttempts
	// and again on every attempt after that.
	OnSlowProgress func(attempt int)
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 10000
	}
	if o.CutChoice == nil {
		o.CutChoice = DefaultCutChoice
	}
	return o
}

// Result is the outcome of a successful BipartitionTree call: the two node
// subsets, the number of spanning trees drawn, and the cut that separated
// them.
type Result struct {
	Subset         map[int]bool
	Complement     map[int]bool
	Attempts       int
	Cut            Cut
}

// BipartitionTree draws spanning trees of view until one yields a balanced
// edge cut, or opts.MaxAttempts is exhausted.
//
// Errors: ErrEmptySubgraph / ErrDisconnectedSubgraph propagate from the
// spanning-tree draw. ErrBipartitionFailure (or ErrReselectPair when
// opts.AllowPairReselection is set) is returned once attempts run out
// without a balanced cut ever appearing.
func BipartitionTree(view *graph.View, popCol string, target, epsilon float64, opts Options, rng *rand.Rand) (Result, error) {
	opts = opts.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if opts.WarnAttempts > 0 && attempt >= opts.WarnAttempts && opts.OnSlowProgress != nil {
			opts.OnSlowProgress(attempt)
		}

		var t *SpanningTree
		var err error
		if opts.Uniform {
			t, err = UniformSpanningTree(view, rng)
		} else {
			t, err = RandomSpanningTree(view, opts.RegionSurcharge, rng)
		}
		if err != nil {
			return Result{}, err
		}

		complementTarget := opts.ComplementTarget
		if complementTarget == 0 {
			complementTarget = target
		}

		nodes := t.Nodes()
		root := nodes[rng.Intn(len(nodes))]
		h, err := NewPopulatedGraph(view.Graph(), t, root, popCol, target, complementTarget, epsilon)
		if err != nil {
			return Result{}, err
		}

		var weightOf func(node, parent int) (float64, bool)
		if !opts.Uniform {
			weightOf = func(node, parent int) (float64, bool) {
				return edgeWeight(view.Graph(), node, parent, opts.RegionSurcharge, rng), true
			}
		}

		cuts := BalancedEdgeCuts(h, weightOf, rng)
		if len(cuts) == 0 {
			lastErr = ErrBipartitionFailure
			continue
		}

		chosen := cuts[0]
		if len(cuts) > 1 {
			chosen = opts.CutChoice(view.Graph(), cuts, opts.RegionSurcharge, rng)
		}

		complement := make(map[int]bool, len(nodes)-len(chosen.Subset))
		for _, v := range nodes {
			if !chosen.Subset[v] {
				complement[v] = true
			}
		}

		return Result{
			Subset:     chosen.Subset,
			Complement: complement,
			Attempts:   attempt,
			Cut:        chosen,
		}, nil
	}

	if opts.AllowPairReselection {
		return Result{}, ErrReselectPair
	}
	if lastErr == nil {
		lastErr = ErrBipartitionFailure
	}
	return Result{}, lastErr
}
