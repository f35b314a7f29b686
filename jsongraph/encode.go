// File: encode.go
// Role: emit the NetworkX-adjacency-style wire format back out from a
// *graph.Graph, so a host can round-trip a chain's output graph. Attribute
// typing is best-effort: an AttrValue's Go type maps back to the
// corresponding JSON scalar type.
package jsongraph

import (
	"encoding/json"

	"github.com/mggg/gerrychain-go/graph"
)

// Encode serializes g into the NetworkX-adjacency-style wire format.
// multigraph is always emitted false (this module's Graph forbids parallel
// edges); directed is always false (Graph is undirected).
func Encode(g *graph.Graph, nodeAttrNames []string, edgeAttrNames []string) ([]byte, error) {
	nodes := make([]map[string]interface{}, g.NumNodes())
	for v := 0; v < g.NumNodes(); v++ {
		name, _ := g.NodeName(v)
		row := map[string]interface{}{"id": name}
		for _, attr := range nodeAttrNames {
			val, err := g.NodeAttr(v, attr)
			if err != nil {
				continue
			}
			row[attr] = attrToJSON(val)
		}
		nodes[v] = row
	}

	adjacency := make([][]map[string]interface{}, g.NumNodes())
	for v := 0; v < g.NumNodes(); v++ {
		neighbors, _ := g.Neighbors(v)
		row := make([]map[string]interface{}, 0, len(neighbors))
		for _, u := range neighbors {
			name, _ := g.NodeName(u)
			entry := map[string]interface{}{"id": name}
			for _, attr := range edgeAttrNames {
				val, err := g.EdgeAttr(v, u, attr)
				if err != nil {
					continue
				}
				entry[attr] = attrToJSON(val)
			}
			row = append(row, entry)
		}
		adjacency[v] = row
	}

	doc := map[string]interface{}{
		"directed":   false,
		"multigraph": false,
		"graph":      map[string]interface{}{},
		"nodes":      nodes,
		"adjacency":  adjacency,
	}
	return json.Marshal(doc)
}

func attrToJSON(v graph.AttrValue) interface{} {
	switch v.Type {
	case graph.AttrInt:
		return v.I
	case graph.AttrFloat:
		return v.F
	case graph.AttrBool:
		return v.B
	default:
		return v.S
	}
}
