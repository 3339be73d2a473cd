package layered

import (
	"github.com/trustnet/flowengine/node"
	"github.com/trustnet/flowengine/types"
)

type balanceKey struct {
	owner types.Address
	token types.Token
}

type trustKey struct {
	recipient types.Address
	token     types.Token
}

// Build translates edges into the three-layer capacity graph
// and returns the residual Adjacency view ready for augmenting search.
//
// For every edge (f, t, k, c):
//
//	Participant(f) -> Balance(f,k)  capacity = max(c) over edges sharing (f,k)
//	Balance(f,k)   -> Trust(t,k)    capacity = c
//	Trust(t,k)     -> Participant(t) capacity = max(c) over edges sharing (t,k)
//
// If the same (f,t,k) triple appears more than once, the later edge's
// capacity wins for the Balance->Trust arc; EdgeDB is expected to dedupe
// by (from,to,token) upstream.
func Build(edges []types.Edge) *Adjacency {
	maxBalance := make(map[balanceKey]types.Amount)
	maxTrust := make(map[trustKey]types.Amount)
	for _, e := range edges {
		bk := balanceKey{owner: e.From, token: e.Token}
		if cur, ok := maxBalance[bk]; !ok || e.Capacity.Cmp(cur) > 0 {
			maxBalance[bk] = e.Capacity
		}
		tk := trustKey{recipient: e.To, token: e.Token}
		if cur, ok := maxTrust[tk]; !ok || e.Capacity.Cmp(cur) > 0 {
			maxTrust[tk] = e.Capacity
		}
	}

	adj := newAdjacency()
	for _, e := range edges {
		from := node.Participant(e.From)
		bal := node.Balance(e.From, e.Token)
		trust := node.Trust(e.To, e.Token)
		to := node.Participant(e.To)

		adj.addOriginal(from, bal, maxBalance[balanceKey{owner: e.From, token: e.Token}])
		adj.addOriginal(bal, trust, e.Capacity)
		adj.addOriginal(trust, to, maxTrust[trustKey{recipient: e.To, token: e.Token}])
	}
	return adj
}
