package engine

import (
	"sort"

	"github.com/trustnet/flowengine/types"
)

// findPairToSimplify returns indices i, j of the first pair of distinct
// transfers such that transfers[i] feeds directly into transfers[j] with
// matching token and capacity, in (i,j) scan order; ok is false once no
// such pair remains.
func findPairToSimplify(transfers []types.Edge) (i, j int, ok bool) {
	for x := range transfers {
		for y := range transfers {
			if x == y {
				continue
			}
			a, b := transfers[x], transfers[y]
			if a.To == b.From && a.Token == b.Token && a.Capacity.Cmp(b.Capacity) == 0 {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// simplifyTransfers repeatedly collapses a transfer (A,B,k,c) followed by
// (B,C,k,c) into (A,C,k,c), to a fixed point, discarding any
// resulting A->A self-loop (a deliberate departure from the reference
// algorithm: the simplifier can
// produce one when the used subgraph contains a cycle of equal-capacity
// hops).
func simplifyTransfers(transfers []types.Edge) []types.Edge {
	edges := append([]types.Edge(nil), transfers...)

	for {
		i, j, found := findPairToSimplify(edges)
		if !found {
			break
		}
		merged := types.Edge{From: edges[i].From, To: edges[j].To, Token: edges[i].Token, Capacity: edges[i].Capacity}
		edges = removePair(edges, i, j)
		if merged.From != merged.To {
			edges = append(edges, merged)
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if c := a.From.Compare(b.From); c != 0 {
			return c < 0
		}
		if c := a.To.Compare(b.To); c != 0 {
			return c < 0
		}
		return a.Token.Compare(b.Token) < 0
	})
	return edges
}

// removePair returns edges with the two elements at i and j (i != j)
// removed, preserving the relative order of everything else.
func removePair(edges []types.Edge, i, j int) []types.Edge {
	if i > j {
		i, j = j, i
	}
	out := make([]types.Edge, 0, len(edges)-2)
	for idx, e := range edges {
		if idx == i || idx == j {
			continue
		}
		out = append(out, e)
	}
	return out
}
