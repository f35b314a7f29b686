// File: view.go
// Role: lightweight, non-copying node-subset views over a Graph, and
// connected-component enumeration over such views.
//
// A View never copies attribute tables; it stores only which nodes are
// included and computes the induced edge set on demand from the parent
// Graph's adjacency.

package graph

import "sort"

// View is a node-induced subgraph of a Graph: node subset plus induced edges.
type View struct {
	g       *Graph
	members map[int]bool
	// sorted caches the ascending-order member list; built lazily.
	sorted []int
}

// Subgraph returns a View induced by members. The Graph is not copied or
// mutated; the View holds only a reference plus the membership set.
func (g *Graph) Subgraph(members map[int]bool) *View {
	cp := make(map[int]bool, len(members))
	for v, in := range members {
		if in {
			cp[v] = true
		}
	}
	return &View{g: g, members: cp}
}

// Graph returns the parent Graph this View was cut from.
func (v *View) Graph() *Graph { return v.g }

// Contains reports whether node id is a member of the view.
func (v *View) Contains(id int) bool { return v.members[id] }

// Len returns the number of member nodes.
func (v *View) Len() int { return len(v.members) }

// Nodes returns the member node ids in ascending order.
func (v *View) Nodes() []int {
	if v.sorted == nil {
		v.sorted = make([]int, 0, len(v.members))
		for id := range v.members {
			v.sorted = append(v.sorted, id)
		}
		sort.Ints(v.sorted)
	}
	out := make([]int, len(v.sorted))
	copy(out, v.sorted)
	return out
}

// InducedNeighbors returns v's neighbors restricted to the view's member set,
// in ascending order.
func (vw *View) InducedNeighbors(v int) []int {
	all := vw.g.neighbors[v]
	out := make([]int, 0, len(all))
	for _, r := range all {
		if vw.members[r.node] {
			out = append(out, r.node)
		}
	}
	return out
}

// InducedEdges returns every edge of the parent Graph whose both endpoints
// lie in the view, as (u, v) pairs with u < v, in ascending order.
func (vw *View) InducedEdges() [][2]int {
	var out [][2]int
	for _, e := range vw.g.edges {
		if vw.members[e.u] && vw.members[e.v] {
			out = append(out, [2]int{e.u, e.v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// ConnectedComponents returns the connected components of a View, each as a
// sorted slice of node ids, with components ordered by ascending smallest
// member id, for deterministic iteration.
//
// Complexity: O(|view| + |induced edges|) via breadth-first search.
func ConnectedComponents(v *View) [][]int {
	visited := make(map[int]bool, v.Len())
	var components [][]int

	nodes := v.Nodes()
	for _, start := range nodes {
		if visited[start] {
			continue
		}
		var comp []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nb := range v.InducedNeighbors(cur) {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		sort.Ints(comp)
		components = append(components, comp)
	}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}

// IsConnected reports whether the view induces a single connected component.
// An empty view is trivially connected.
func IsConnected(v *View) bool {
	if v.Len() == 0 {
		return true
	}
	return len(ConnectedComponents(v)) == 1
}
