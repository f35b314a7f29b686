// File: election.go
// Role: Election — a named view over two or more party vote-count columns,
// producing per-part totals, vote percentages, the winning party, and
// (for multi-member districts) a proportional seat share.

package election

import (
	"fmt"
	"math"
	"sort"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/updaters"
)

// Result holds one part's tallies across every configured party.
type Result struct {
	Party    map[string]float64 // absolute votes per party
	Percent  map[string]float64 // party vote share, in [0,1]
	Winner   string             // party with the most votes; ties break alphabetically
	SeatsWon float64            // Percent[Winner] * Seats, rounded to the nearest whole seat
}

// Election reads a set of party->attribute-column mappings and produces one
// Result per part. Seats configures how many seats a part elects, for
// proportional seat-share reporting; pass 1 for single-member districts.
type Election struct {
	Alias   string
	Parties map[string]string // party name -> node attribute column
	Seats   int
}

// Name returns the updater's registry name (Alias).
func (e Election) Name() string { return e.Alias }

// Recompute tallies every configured party's column per part, then derives
// percentages, the winner, and seat share from those totals.
func (e Election) Recompute(p *partition.Partition) (interface{}, error) {
	seats := e.Seats
	if seats <= 0 {
		seats = 1
	}

	partyNames := make([]string, 0, len(e.Parties))
	for name := range e.Parties {
		partyNames = append(partyNames, name)
	}
	sort.Strings(partyNames)

	totals := make(map[string]map[assignment.PartID]float64, len(partyNames))
	for _, name := range partyNames {
		col := e.Parties[name]
		raw, err := (updaters.Tally{Alias: name, Attr: col}).Recompute(p)
		if err != nil {
			return nil, fmt.Errorf("election %q: party %q: %w", e.Alias, name, err)
		}
		totals[name] = raw.(map[assignment.PartID]float64)
	}

	a := p.Assignment()
	out := make(map[assignment.PartID]Result, a.NumParts())
	for _, part := range a.Parts() {
		party := make(map[string]float64, len(partyNames))
		sum := 0.0
		for _, name := range partyNames {
			v := totals[name][part]
			party[name] = v
			sum += v
		}
		percent := make(map[string]float64, len(partyNames))
		winner := ""
		best := -1.0
		for _, name := range partyNames {
			pct := 0.0
			if sum > 0 {
				pct = party[name] / sum
			}
			percent[name] = pct
			if pct > best {
				best, winner = pct, name
			}
		}
		out[part] = Result{
			Party:    party,
			Percent:  percent,
			Winner:   winner,
			SeatsWon: math.Round(percent[winner] * float64(seats)),
		}
	}
	return out, nil
}
