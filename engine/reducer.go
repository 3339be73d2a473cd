package engine

import "github.com/trustnet/flowengine/types"

func countArcs(used usedEdges) int {
	n := 0
	for _, row := range used {
		n += len(row)
	}
	return n
}

// globalSmallestEdge returns the minimum-capacity arc across all of used,
// ties broken by arc identity (endpoint order).
func globalSmallestEdge(used usedEdges) (pair, types.Amount, bool) {
	var (
		best    pair
		bestAmt types.Amount
		found   bool
	)
	for a, row := range used {
		for b, amt := range row {
			p := pair{a: a, b: b}
			if !found || amt.Cmp(bestAmt) < 0 || (amt.Cmp(bestAmt) == 0 && lessPair(p, best)) {
				best, bestAmt, found = p, amt, true
			}
		}
	}
	return best, bestAmt, found
}

// reduceTransfers removes the smallest used arcs, via the same prune-path
// procedure as the target-amount pruner, until no more than maxArcs
// layered arcs remain (3 per transfer). It returns the flow value lost to
// this reduction.
func reduceTransfers(maxArcs int, used usedEdges) types.Amount {
	lost := types.Amount{}
	for countArcs(used) > maxArcs {
		p, amt, found := globalSmallestEdge(used)
		if !found {
			break
		}
		lost = lost.Add(amt)
		pruneEdge(used, p.a, p.b, amt)
	}
	return lost
}
