// File: contiguous.go
// Role: Contiguous (full BFS/DFS check per part, with island handling) and
// SingleFlipContiguous (a specialization for the common single-node flip
// proposal that checks only the part the flipped node left).

package constraints

import (
	"fmt"

	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
)

// Contiguous requires every part's induced subgraph to be connected. A
// degree-0 node (an island) can only belong to a part by itself; any part
// containing an island alongside other nodes fails automatically, since no
// spanning path can reach the island.
func Contiguous(p *partition.Partition) Result {
	g := p.Graph()
	a := p.Assignment()
	for _, part := range a.Parts() {
		members := a.MembersSet(part)
		if len(members) > 1 {
			for v := range members {
				deg, err := g.Degree(v)
				if err != nil {
					return Result{Verdict: Fail, Reason: err.Error()}
				}
				if deg == 0 {
					return Result{Verdict: Fail, Reason: fmt.Sprintf("part %v contains isolated node %d alongside other members", part, v)}
				}
			}
		}
		memberMap := make(map[int]bool, len(members))
		for v := range members {
			memberMap[v] = true
		}
		view := g.Subgraph(memberMap)
		if !graph.IsConnected(view) {
			return Result{Verdict: Fail, Reason: fmt.Sprintf("part %v is not connected", part)}
		}
	}
	return Result{Verdict: Pass}
}

// SingleFlipContiguous specializes Contiguous for the common case where the
// candidate's last flip moved exactly one node v from p_old to p_new. It
// assumes (per the flip proposal's own invariant) that v had a neighbor
// already in p_new, so p_new's connectivity never needs checking; it only
// verifies that removing v from p_old left p_old's remaining members
// connected: a BFS over p_old \ {v}, started at one of v's p_old-neighbors,
// must reach every other p_old-neighbor of v. The BFS may visit all of
// p_old \ {v}.
//
// Returns Indeterminate if the last flip does not move exactly one node,
// signaling the caller to fall back to Contiguous.
func SingleFlipContiguous(p *partition.Partition) Result {
	flip := p.LastFlip()
	if len(flip) != 1 {
		return Result{Verdict: Indeterminate, Reason: "last flip did not move exactly one node"}
	}
	parentAssign := p.Parent().Assignment()

	var v int
	for node := range flip {
		v = node
	}
	pOld := parentAssign.PartOf(v)

	g := p.Graph()
	oldMembers := parentAssign.MembersSet(pOld)
	remaining := make(map[int]bool, len(oldMembers))
	for u := range oldMembers {
		if u != v {
			remaining[u] = true
		}
	}
	if len(remaining) <= 1 {
		return Result{Verdict: Pass}
	}

	neighbors, err := g.Neighbors(v)
	if err != nil {
		return Result{Verdict: Fail, Reason: err.Error()}
	}
	var seeds []int
	for _, n := range neighbors {
		if remaining[n] {
			seeds = append(seeds, n)
		}
	}
	if len(seeds) == 0 {
		// v had no neighbor left in p_old: v was p_old's only link to
		// whatever remains connected to seeds, which is vacuous here since
		// there are no seeds — every remaining node must be reachable from
		// itself alone, i.e. p_old \ {v} has more than one node but v had
		// no p_old-neighbors, which cannot happen for a connected p_old
		// unless v was the sole connector; fall back to the full check.
		return Result{Verdict: Indeterminate, Reason: "no p_old-neighbors of v to seed a local BFS"}
	}

	view := g.Subgraph(remaining)
	visited := map[int]bool{seeds[0]: true}
	queue := []int{seeds[0]}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, n := range view.InducedNeighbors(u) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	for _, s := range seeds {
		if !visited[s] {
			return Result{Verdict: Fail, Reason: fmt.Sprintf("part %v disconnected by removing node %d", pOld, v)}
		}
	}
	return Result{Verdict: Pass}
}
