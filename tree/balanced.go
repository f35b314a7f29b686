// File: balanced.go
// Role: PopulatedGraph — a rooted spanning tree annotated with subtree
// populations — and the search for balanced edge cuts over it, using
// integer-arithmetic numeric semantics (floor/ceil bounds rather than
// float abs-tolerance).

package tree

import (
	"math"
	"sort"

	"github.com/mggg/gerrychain-go/graph"
)

// PopulatedGraph roots a SpanningTree and annotates every node with its
// subtree population, computed by a single post-order traversal.
type PopulatedGraph struct {
	tree     *SpanningTree
	root     int
	parent   map[int]int
	children map[int][]int
	subPop   map[int]float64
	totalPop float64
	target   float64
	epsilon  float64

	// complementTarget is the population target the non-cut side is checked
	// against. Equal to target for a symmetric two-way split (ReCom); set
	// to a multiple of target for an asymmetric split, e.g. peeling one
	// target-size part off a pool that must still hold several more parts.
	complementTarget float64
}

// NewPopulatedGraph roots t at root and computes every node's subtree
// population from the popCol node attribute on g. complementTarget is the
// population target the side not cut off is balanced against; pass target
// itself for a symmetric split.
//
// Errors: ErrMissingPopulation if any tree node lacks popCol.
func NewPopulatedGraph(g *graph.Graph, t *SpanningTree, root int, popCol string, target, complementTarget, epsilon float64) (*PopulatedGraph, error) {
	parent := map[int]int{root: -1}
	order := []int{root}
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range t.Neighbors(u) {
			if _, seen := parent[v]; !seen {
				parent[v] = u
				order = append(order, v)
				queue = append(queue, v)
			}
		}
	}

	pop := make(map[int]float64, len(order))
	for _, v := range order {
		attr, err := g.NodeAttr(v, popCol)
		if err != nil {
			return nil, ErrMissingPopulation
		}
		f, ferr := attr.AsFloat64()
		if ferr != nil {
			return nil, ErrMissingPopulation
		}
		pop[v] = f
	}

	children := make(map[int][]int, len(order))
	for _, v := range order {
		if p := parent[v]; p != -1 {
			children[p] = append(children[p], v)
		}
	}

	// Post-order accumulation: process nodes in reverse BFS order so every
	// child is folded into its parent before the parent itself is used.
	subPop := make(map[int]float64, len(order))
	for _, v := range order {
		subPop[v] = pop[v]
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if p := parent[v]; p != -1 {
			subPop[p] += subPop[v]
		}
	}

	total := 0.0
	for _, v := range order {
		total += pop[v]
	}

	return &PopulatedGraph{
		tree: t, root: root, parent: parent, children: children,
		subPop: subPop, totalPop: total, target: target, epsilon: epsilon,
		complementTarget: complementTarget,
	}, nil
}

// SubtreePopulation returns the population of the subtree rooted at v
// (inclusive of v).
func (h *PopulatedGraph) SubtreePopulation(v int) float64 { return h.subPop[v] }

// TotalPopulation returns the total population of every node in the tree.
func (h *PopulatedGraph) TotalPopulation() float64 { return h.totalPop }

// lowHigh returns the integer-arithmetic balance bounds:
// [ceil(target*(1-epsilon)), floor(target*(1+epsilon))].
func lowHigh(target, epsilon float64) (float64, float64) {
	return math.Ceil(target * (1 - epsilon)), math.Floor(target * (1 + epsilon))
}

func (h *PopulatedGraph) isBalanced(subtreePop float64) bool {
	low, high := lowHigh(h.target, h.epsilon)
	if subtreePop < low || subtreePop > high {
		return false
	}
	complement := h.totalPop - subtreePop
	cLow, cHigh := lowHigh(h.complementTarget, h.epsilon)
	return complement >= cLow && complement <= cHigh
}

// Cut is a candidate balanced edge to remove from the tree: the edge
// (node, parent(node)), the weight assigned to that edge (used for
// tie-breaking by CutChoice), and the node-id subset on node's side.
type Cut struct {
	Node   int
	Parent int
	Weight float64
	Subset map[int]bool
}

// BalancedEdgeCuts returns every Cut edge whose removal leaves both sides
// within epsilon of target. weightOf supplies each candidate cut edge's
// tie-break weight (typically the same random+surcharge weight used to draw
// the tree); pass nil to assign a fresh rng.Float64() to each cut when no
// weight was recorded on the edge.
//
// Complexity: O(|tree| log |tree|) to order the candidates, plus the size of
// each balanced cut's subtree to materialize its subset — the post-order
// pass already computed every subtree population.
func BalancedEdgeCuts(h *PopulatedGraph, weightOf func(node, parent int) (float64, bool), rng interface{ Float64() float64 }) []Cut {
	nodes := make([]int, 0, len(h.subPop))
	for node := range h.subPop {
		nodes = append(nodes, node)
	}
	sort.Ints(nodes)

	var cuts []Cut
	for _, node := range nodes {
		if node == h.root {
			continue
		}
		pop := h.subPop[node]
		if !h.isBalanced(pop) {
			continue
		}
		w := rng.Float64()
		if weightOf != nil {
			if got, ok := weightOf(node, h.parent[node]); ok {
				w = got
			}
		}
		cuts = append(cuts, Cut{
			Node:   node,
			Parent: h.parent[node],
			Weight: w,
			Subset: h.subtreeNodes(node),
		})
	}
	return cuts
}

func (h *PopulatedGraph) subtreeNodes(root int) map[int]bool {
	out := map[int]bool{root: true}
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, c := range h.children[u] {
			out[c] = true
			queue = append(queue, c)
		}
	}
	return out
}
