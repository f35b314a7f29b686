// Package graph implements the frozen adjacency graph that every partition,
// updater, and proposal in this module operates on: a finite, undirected,
// simple graph G = (V, E) with typed per-node and per-edge attribute tables.
//
// Once built via FromAdjacency, a Graph never mutates: topology and
// attributes are fixed for the lifetime of the value. That lets every
// accessor run without locking (unlike a mutable graph, where readers and
// writers must be serialized) and lets a Graph be shared, unsynchronized,
// across many concurrently running chains — each chain owns its own
// Partition tree and RNG, but they all read the same Graph.
//
// Node identity is a contiguous integer 0..|V|-1 internally; the original
// string identifiers (from FromAdjacency's nodeIDs, or a JSON node's "id")
// are kept in an external lookup table for serialization and error messages.
package graph

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrInvalidGraph indicates a structurally invalid graph definition:
	// an edge referencing an unknown node, or a duplicate edge.
	ErrInvalidGraph = errors.New("graph: invalid graph definition")

	// ErrUnknownNode indicates an out-of-range or unrecognized node id.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrMissingAttribute indicates a typed lookup for an attribute that
	// was never registered on the node or edge attribute table.
	ErrMissingAttribute = errors.New("graph: missing attribute")

	// ErrAttrTypeMismatch indicates the stored attribute's type differs
	// from the type requested by a typed accessor.
	ErrAttrTypeMismatch = errors.New("graph: attribute type mismatch")
)

// AttrType tags the dynamic type carried by an AttrValue.
type AttrType uint8

const (
	// AttrInt marks an AttrValue carrying an int64.
	AttrInt AttrType = iota
	// AttrFloat marks an AttrValue carrying a float64.
	AttrFloat
	// AttrString marks an AttrValue carrying a string.
	AttrString
	// AttrBool marks an AttrValue carrying a bool.
	AttrBool
)

// AttrValue is a small tagged union so node/edge attribute tables can hold a
// mix of integer, floating-point, string, and boolean columns without
// resorting to interface{} on every read (the hot updater path reads
// millions of these per chain run).
type AttrValue struct {
	Type AttrType
	I    int64
	F    float64
	S    string
	B    bool
}

// IntAttr builds an integer-typed AttrValue.
func IntAttr(v int64) AttrValue { return AttrValue{Type: AttrInt, I: v} }

// FloatAttr builds a float-typed AttrValue.
func FloatAttr(v float64) AttrValue { return AttrValue{Type: AttrFloat, F: v} }

// StringAttr builds a string-typed AttrValue.
func StringAttr(v string) AttrValue { return AttrValue{Type: AttrString, S: v} }

// BoolAttr builds a bool-typed AttrValue.
func BoolAttr(v bool) AttrValue { return AttrValue{Type: AttrBool, B: v} }

// AsFloat64 returns v as a float64 regardless of whether it was stored as
// AttrInt or AttrFloat; this is the common case for population and
// perimeter/area columns which callers may supply as either. It returns
// ErrAttrTypeMismatch for String/Bool values.
func (v AttrValue) AsFloat64() (float64, error) {
	switch v.Type {
	case AttrInt:
		return float64(v.I), nil
	case AttrFloat:
		return v.F, nil
	default:
		return 0, ErrAttrTypeMismatch
	}
}

// EdgeSpec is the input form of an edge passed to FromAdjacency: two
// external node identifiers plus an optional attribute row. FromAdjacency
// does not read Attrs; edge attributes reach the Graph only through its
// edgeAttrs tables.
type EdgeSpec struct {
	From, To string
	Attrs    map[string]AttrValue
}

// edgeRef is one adjacency entry: the neighboring internal node id and the
// index of the shared edge in Graph.edges.
type edgeRef struct {
	node int
	edge int
}

// Graph is the frozen adjacency graph described in the package doc.
type Graph struct {
	// names[v] is the external string id of internal node v.
	names []string
	// index maps an external string id back to its internal node id.
	index map[string]int

	// neighbors[v] lists, in ascending internal-id order, every node
	// adjacent to v, alongside the edge that connects them.
	neighbors [][]edgeRef

	// edges[i] is the i-th edge as an (u, v) pair of internal ids with u < v.
	edges []edgePair

	// degree[v] caches len(neighbors[v]) (multi-edges are not permitted, so
	// this is also the count of distinct neighbors).
	degree []int

	// boundary[v] marks v as a geographic boundary node. Populated either
	// from an explicit "boundary_node" attribute or left all-false.
	boundary []bool

	nodeAttrs map[string][]AttrValue
	edgeAttrs map[string][]AttrValue
}

type edgePair struct {
	u, v int
}

// NumNodes returns |V|.
func (g *Graph) NumNodes() int { return len(g.names) }

// NumEdges returns |E|.
func (g *Graph) NumEdges() int { return len(g.edges) }

// NodeName returns the external string identifier of internal node v.
func (g *Graph) NodeName(v int) (string, error) {
	if v < 0 || v >= len(g.names) {
		return "", ErrUnknownNode
	}
	return g.names[v], nil
}

// NodeIndex resolves an external string identifier to its internal node id.
func (g *Graph) NodeIndex(name string) (int, bool) {
	v, ok := g.index[name]
	return v, ok
}

// Degree returns the number of distinct neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= len(g.degree) {
		return 0, ErrUnknownNode
	}
	return g.degree[v], nil
}

// IsBoundary reports whether v was marked a geographic boundary node.
func (g *Graph) IsBoundary(v int) (bool, error) {
	if v < 0 || v >= len(g.boundary) {
		return false, ErrUnknownNode
	}
	return g.boundary[v], nil
}

// Neighbors returns the sorted (ascending internal id) list of nodes
// adjacent to v. The returned slice is a fresh copy safe for the caller to
// keep or mutate.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= len(g.neighbors) {
		return nil, ErrUnknownNode
	}
	out := make([]int, len(g.neighbors[v]))
	for i, r := range g.neighbors[v] {
		out[i] = r.node
	}
	return out, nil
}

// EdgeEndpoints returns the two internal node ids of edge index e.
func (g *Graph) EdgeEndpoints(e int) (int, int, error) {
	if e < 0 || e >= len(g.edges) {
		return 0, 0, ErrUnknownNode
	}
	return g.edges[e].u, g.edges[e].v, nil
}

// Edges returns every edge as a (u, v) pair of internal ids, u < v, in
// ascending edge-index order.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, len(g.edges))
	for i, e := range g.edges {
		out[i] = [2]int{e.u, e.v}
	}
	return out
}

// EdgeBetween returns the edge index connecting u and v, if one exists.
//
// Complexity: O(deg(u)) via a linear scan of the sorted neighbor list.
func (g *Graph) EdgeBetween(u, v int) (int, bool) {
	if u < 0 || u >= len(g.neighbors) {
		return 0, false
	}
	for _, r := range g.neighbors[u] {
		if r.node == v {
			return r.edge, true
		}
	}
	return 0, false
}

// NodeAttr looks up a typed node attribute by name.
func (g *Graph) NodeAttr(v int, name string) (AttrValue, error) {
	if v < 0 || v >= len(g.names) {
		return AttrValue{}, ErrUnknownNode
	}
	col, ok := g.nodeAttrs[name]
	if !ok {
		return AttrValue{}, ErrMissingAttribute
	}
	return col[v], nil
}

// HasNodeAttr reports whether the named node attribute column exists.
func (g *Graph) HasNodeAttr(name string) bool {
	_, ok := g.nodeAttrs[name]
	return ok
}

// EdgeAttr looks up a typed edge attribute by endpoints and name.
func (g *Graph) EdgeAttr(u, v int, name string) (AttrValue, error) {
	e, ok := g.EdgeBetween(u, v)
	if !ok {
		return AttrValue{}, ErrUnknownNode
	}
	col, ok := g.edgeAttrs[name]
	if !ok {
		return AttrValue{}, ErrMissingAttribute
	}
	return col[e], nil
}

// EdgeAttrByIndex looks up a typed edge attribute by edge index and name.
func (g *Graph) EdgeAttrByIndex(e int, name string) (AttrValue, error) {
	if e < 0 || e >= len(g.edges) {
		return AttrValue{}, ErrUnknownNode
	}
	col, ok := g.edgeAttrs[name]
	if !ok {
		return AttrValue{}, ErrMissingAttribute
	}
	return col[e], nil
}
