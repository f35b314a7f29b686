// File: api.go
// Role: public constructor for Graph — validate topology, freeze it.
// Policy mirrors builder.BuildGraph: one entry point, fail fast, wrap once.

package graph

import (
	"fmt"
	"sort"
)

// FromAdjacency builds a frozen Graph from an explicit node list, edge list,
// and attribute tables. nodeIDs assigns internal ids 0..len(nodeIDs)-1 in
// the given order; nodeAttrs[name][i] is the attribute for nodeIDs[i];
// edgeAttrs[name][j] is the attribute for edges[j].
//
// Errors:
//   - ErrInvalidGraph: an edge references an id absent from nodeIDs, an edge
//     is a self-loop, or an edge duplicates an already-added pair.
//
// Complexity: O(V + E log E) — edges are sorted per-endpoint to produce
// deterministic sorted neighbor lists.
func FromAdjacency(nodeIDs []string, edges []EdgeSpec, nodeAttrs map[string][]AttrValue, edgeAttrs map[string][]AttrValue) (*Graph, error) {
	index := make(map[string]int, len(nodeIDs))
	for i, id := range nodeIDs {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("graph: duplicate node id %q: %w", id, ErrInvalidGraph)
		}
		index[id] = i
	}

	for name, col := range nodeAttrs {
		if len(col) != len(nodeIDs) {
			return nil, fmt.Errorf("graph: node attribute %q has %d values, want %d: %w", name, len(col), len(nodeIDs), ErrInvalidGraph)
		}
	}
	for name, col := range edgeAttrs {
		if len(col) != len(edges) {
			return nil, fmt.Errorf("graph: edge attribute %q has %d values, want %d: %w", name, len(col), len(edges), ErrInvalidGraph)
		}
	}

	n := len(nodeIDs)
	g := &Graph{
		names:     append([]string(nil), nodeIDs...),
		index:     index,
		neighbors: make([][]edgeRef, n),
		edges:     make([]edgePair, 0, len(edges)),
		degree:    make([]int, n),
		boundary:  make([]bool, n),
		nodeAttrs: make(map[string][]AttrValue, len(nodeAttrs)),
		edgeAttrs: make(map[string][]AttrValue, len(edgeAttrs)),
	}
	for name, col := range nodeAttrs {
		g.nodeAttrs[name] = append([]AttrValue(nil), col...)
	}

	seen := make(map[[2]int]struct{}, len(edges))
	edgeAttrCols := make(map[string][]AttrValue, len(edgeAttrs))
	for name := range edgeAttrs {
		edgeAttrCols[name] = make([]AttrValue, 0, len(edges))
	}

	for _, spec := range edges {
		u, ok := index[spec.From]
		if !ok {
			return nil, fmt.Errorf("graph: edge references unknown node %q: %w", spec.From, ErrInvalidGraph)
		}
		v, ok := index[spec.To]
		if !ok {
			return nil, fmt.Errorf("graph: edge references unknown node %q: %w", spec.To, ErrInvalidGraph)
		}
		if u == v {
			return nil, fmt.Errorf("graph: self-loop on %q not permitted: %w", spec.From, ErrInvalidGraph)
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("graph: duplicate edge (%q, %q): %w", spec.From, spec.To, ErrInvalidGraph)
		}
		seen[key] = struct{}{}

		eIdx := len(g.edges)
		g.edges = append(g.edges, edgePair{u: u, v: v})
		g.neighbors[u] = append(g.neighbors[u], edgeRef{node: v, edge: eIdx})
		g.neighbors[v] = append(g.neighbors[v], edgeRef{node: u, edge: eIdx})

		for name := range edgeAttrCols {
			edgeAttrCols[name] = append(edgeAttrCols[name], edgeAttrs[name][eIdx])
		}
	}
	g.edgeAttrs = edgeAttrCols

	for v := range g.neighbors {
		sort.Slice(g.neighbors[v], func(i, j int) bool { return g.neighbors[v][i].node < g.neighbors[v][j].node })
		g.degree[v] = len(g.neighbors[v])
	}

	if col, ok := g.nodeAttrs["boundary_node"]; ok {
		for v, val := range col {
			g.boundary[v] = val.Type == AttrBool && val.B
		}
	}

	return g, nil
}
