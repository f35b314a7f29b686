// Package jsongraph decodes and encodes a NetworkX-adjacency-style JSON
// document with reserved geographic fields ("boundary_node",
// "boundary_perim", "area", "geometry").
//
// No third-party JSON library appears anywhere in the retrieved reference
// pack, so this package uses the standard library's encoding/json — the one
// ambient concern in this module built on stdlib rather than an ecosystem
// dependency (see DESIGN.md).
package jsongraph

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mggg/gerrychain-go/graph"
)

// ErrMalformed indicates the input JSON does not match the documented shape
// (missing "id" on a node, malformed adjacency entry, etc).
var ErrMalformed = errors.New("jsongraph: malformed document")

// rawGraph mirrors the top-level document shape described above.
type rawGraph struct {
	Directed   bool                          `json:"directed"`
	Multigraph bool                          `json:"multigraph"`
	Graph      map[string]json.RawMessage    `json:"graph"`
	Nodes      []map[string]json.RawMessage  `json:"nodes"`
	Adjacency  [][]map[string]json.RawMessage `json:"adjacency"`
}

// Decode parses a NetworkX-adjacency-style JSON document into a *graph.Graph.
//
// Node "id" fields may be JSON strings or numbers; numbers are formatted
// with Go's default text representation to produce a stable external
// string id. Any other field on a node or adjacency entry becomes a typed
// node/edge attribute: JSON strings/booleans map to AttrString/AttrBool,
// JSON numbers map to AttrFloat (JSON does not distinguish int from float).
func Decode(data []byte) (*graph.Graph, error) {
	var raw rawGraph
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(raw.Nodes) != len(raw.Adjacency) {
		return nil, fmt.Errorf("jsongraph: %d nodes but %d adjacency rows: %w", len(raw.Nodes), len(raw.Adjacency), ErrMalformed)
	}

	n := len(raw.Nodes)
	nodeIDs := make([]string, n)
	nodeRows := make([]map[string]graph.AttrValue, n)
	nodeAttrNames := map[string]bool{}

	for i, node := range raw.Nodes {
		idRaw, ok := node["id"]
		if !ok {
			return nil, fmt.Errorf("jsongraph: node %d missing \"id\": %w", i, ErrMalformed)
		}
		id, err := decodeID(idRaw)
		if err != nil {
			return nil, err
		}
		nodeIDs[i] = id

		row := make(map[string]graph.AttrValue, len(node)-1)
		for k, r := range node {
			if k == "id" {
				continue
			}
			val, err := decodeAttr(r)
			if err != nil {
				return nil, fmt.Errorf("jsongraph: node %q attr %q: %w", id, k, err)
			}
			row[k] = val
			nodeAttrNames[k] = true
		}
		nodeRows[i] = row
	}

	nodeIndex := make(map[string]int, n)
	for i, id := range nodeIDs {
		nodeIndex[id] = i
	}

	var specs []graph.EdgeSpec
	edgeAttrNames := map[string]bool{}
	for i, row := range raw.Adjacency {
		from := nodeIDs[i]
		for _, entry := range row {
			idRaw, ok := entry["id"]
			if !ok {
				return nil, fmt.Errorf("jsongraph: adjacency row %d entry missing \"id\": %w", i, ErrMalformed)
			}
			to, err := decodeID(idRaw)
			if err != nil {
				return nil, err
			}
			toIdx, ok := nodeIndex[to]
			if !ok {
				return nil, fmt.Errorf("jsongraph: adjacency references unknown node %q: %w", to, ErrMalformed)
			}
			// Undirected input lists both directions; keep each pair once.
			if !raw.Directed && toIdx < i {
				continue
			}

			attrs := make(map[string]graph.AttrValue, len(entry)-1)
			for k, r := range entry {
				if k == "id" {
					continue
				}
				val, err := decodeAttr(r)
				if err != nil {
					return nil, fmt.Errorf("jsongraph: edge (%q,%q) attr %q: %w", from, to, k, err)
				}
				attrs[k] = val
				edgeAttrNames[k] = true
			}
			specs = append(specs, graph.EdgeSpec{From: from, To: to, Attrs: attrs})
		}
	}

	nodeAttrCols := make(map[string][]graph.AttrValue, len(nodeAttrNames))
	for name := range nodeAttrNames {
		col := make([]graph.AttrValue, n)
		for i, row := range nodeRows {
			col[i] = row[name]
		}
		nodeAttrCols[name] = col
	}

	edgeAttrCols := make(map[string][]graph.AttrValue, len(edgeAttrNames))
	for name := range edgeAttrNames {
		col := make([]graph.AttrValue, len(specs))
		for i, spec := range specs {
			col[i] = spec.Attrs[name]
		}
		edgeAttrCols[name] = col
	}

	return graph.FromAdjacency(nodeIDs, specs, nodeAttrCols, edgeAttrCols)
}

func decodeID(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return fmt.Sprintf("%v", f), nil
	}
	return "", fmt.Errorf("jsongraph: unsupported id type: %w", ErrMalformed)
}

func decodeAttr(raw json.RawMessage) (graph.AttrValue, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return graph.StringAttr(s), nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return graph.BoolAttr(b), nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return graph.FloatAttr(f), nil
	}
	return graph.AttrValue{}, fmt.Errorf("unsupported attribute value: %w", ErrMalformed)
}
