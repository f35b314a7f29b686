// File: spanningtree.go
// Role: draw a spanning tree over a graph.View.
//
// SpanningTree is represented as an adjacency list over the view's member
// node ids (not a separate node-renumbering), matching how balanced.go
// (NewPopulatedGraph) consumes it: root, then walk parent/children via BFS.

package tree

import (
	"math/rand"
	"sort"

	"github.com/mggg/gerrychain-go/graph"
)

// SpanningTree is an undirected tree over a subset of a Graph's nodes,
// represented as an adjacency list keyed by node id.
type SpanningTree struct {
	adj map[int][]int
}

// Nodes returns the tree's node ids.
func (t *SpanningTree) Nodes() []int {
	out := make([]int, 0, len(t.adj))
	for v := range t.adj {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Neighbors returns the tree-neighbors of v.
func (t *SpanningTree) Neighbors(v int) []int { return t.adj[v] }

func newSpanningTree(nodes []int) *SpanningTree {
	adj := make(map[int][]int, len(nodes))
	for _, v := range nodes {
		adj[v] = nil
	}
	return &SpanningTree{adj: adj}
}

func (t *SpanningTree) addEdge(u, v int) {
	t.adj[u] = append(t.adj[u], v)
	t.adj[v] = append(t.adj[v], u)
}

// weightedEdge pairs an induced edge with the random+surcharge weight
// assigned to it by RandomSpanningTree.
type weightedEdge struct {
	u, v   int
	weight float64
}

// edgeWeight computes wₑ = rng.Float64() plus the surcharge of every region
// attribute on which the endpoints differ (or either endpoint lacks the
// attribute).
func edgeWeight(g *graph.Graph, u, v int, regionSurcharge map[string]float64, rng *rand.Rand) float64 {
	w := rng.Float64()
	for region, surcharge := range regionSurcharge {
		uv, uerr := g.NodeAttr(u, region)
		vv, verr := g.NodeAttr(v, region)
		if uerr != nil || verr != nil || uv != vv {
			w += surcharge
		}
	}
	return w
}

// RandomSpanningTree draws a spanning tree of view using randomized weighted
// Kruskal, biased by regionSurcharge. When regionSurcharge is empty this is
// a uniform-enough random spanning tree; pass nil for no surcharge.
//
// Union-find with path compression and union by rank, generalized to
// randomized instead of fixed edge weights.
//
// Errors: ErrEmptySubgraph if view has no nodes; ErrDisconnectedSubgraph if
// the resulting forest does not span every node (view is disconnected).
func RandomSpanningTree(view *graph.View, regionSurcharge map[string]float64, rng *rand.Rand) (*SpanningTree, error) {
	nodes := view.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptySubgraph
	}
	if len(nodes) == 1 {
		return newSpanningTree(nodes), nil
	}

	induced := view.InducedEdges()
	edges := make([]weightedEdge, len(induced))
	for i, e := range induced {
		edges[i] = weightedEdge{u: e[0], v: e[1], weight: edgeWeight(view.Graph(), e[0], e[1], regionSurcharge, rng)}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })

	parent := make(map[int]int, len(nodes))
	rank := make(map[int]int, len(nodes))
	for _, v := range nodes {
		parent[v] = v
	}
	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	t := newSpanningTree(nodes)
	count := 0
	for _, e := range edges {
		if find(e.u) != find(e.v) {
			union(e.u, e.v)
			t.addEdge(e.u, e.v)
			count++
			if count == len(nodes)-1 {
				break
			}
		}
	}
	if count != len(nodes)-1 {
		return nil, ErrDisconnectedSubgraph
	}
	return t, nil
}

// UniformSpanningTree draws a spanning tree using Wilson's loop-erased
// random-walk algorithm, which samples uniformly from the space of all
// spanning trees of view — a strictly-uniform, opt-in alternative to
// RandomSpanningTree's randomized Kruskal draw.
//
// Errors: ErrEmptySubgraph, ErrDisconnectedSubgraph (the view is checked
// for connectivity before the walk starts).
func UniformSpanningTree(view *graph.View, rng *rand.Rand) (*SpanningTree, error) {
	nodes := view.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptySubgraph
	}
	if len(nodes) == 1 {
		return newSpanningTree(nodes), nil
	}
	if !graph.IsConnected(view) {
		return nil, ErrDisconnectedSubgraph
	}

	root := nodes[rng.Intn(len(nodes))]
	inTree := map[int]bool{root: true}
	next := map[int]int{}

	for _, start := range nodes {
		u := start
		for !inTree[u] {
			neighbors := view.InducedNeighbors(u)
			if len(neighbors) == 0 {
				return nil, ErrDisconnectedSubgraph
			}
			next[u] = neighbors[rng.Intn(len(neighbors))]
			u = next[u]
		}
		u = start
		for !inTree[u] {
			inTree[u] = true
			u = next[u]
		}
	}

	t := newSpanningTree(nodes)
	for _, v := range nodes {
		if v != root {
			t.addEdge(v, next[v])
		}
	}
	return t, nil
}
