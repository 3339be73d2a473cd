package engine

import (
	"sort"

	"github.com/trustnet/flowengine/node"
	"github.com/trustnet/flowengine/types"
)

// lessEdgeCandidate orders candidate transfers sharing the same From:
// by To, then Token, then Capacity — the tie-break extraction relies on
// to stay deterministic regardless of map iteration order.
func lessEdgeCandidate(x, y types.Edge) bool {
	if c := x.To.Compare(y.To); c != 0 {
		return c < 0
	}
	if c := x.Token.Compare(y.Token); c != 0 {
		return c < 0
	}
	return x.Capacity.Cmp(y.Capacity) < 0
}

// nextFullCapacityEdge finds the next transfer to emit: among
// participants holding a positive balance, in address order, the first
// one with any eligible Participant->Balance->Trust->Participant path
// whose Balance->Trust arc capacity does not exceed its balance, picking
// the minimal such candidate. That arc's capacity is the transfer amount.
func nextFullCapacityEdge(used usedEdges, balances map[types.Address]types.Amount) (types.Edge, bool) {
	addrs := make([]types.Address, 0, len(balances))
	for a, bal := range balances {
		if !bal.IsZero() {
			addrs = append(addrs, a)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })

	for _, addr := range addrs {
		balance := balances[addr]
		row, ok := used[node.Participant(addr)]
		if !ok {
			continue
		}
		var (
			best  types.Edge
			found bool
		)
		for intermediate := range row {
			for trustNode, capacity := range used[intermediate] {
				if capacity.Cmp(balance) > 0 {
					continue
				}
				recipient, token := trustNode.AsTrust()
				candidate := types.Edge{From: addr, To: recipient, Token: token, Capacity: capacity}
				if !found || lessEdgeCandidate(candidate, best) {
					best, found = candidate, true
				}
			}
		}
		if found {
			return best, true
		}
	}
	return types.Edge{}, false
}

// extractTransfers walks used, draining balances edge by edge starting
// from source with flow units, to produce the concrete transfer list
// It destructively consumes used.
func extractTransfers(source, sink types.Address, flow types.Amount, used usedEdges) ([]types.Edge, error) {
	balances := map[types.Address]types.Amount{source: flow}
	var transfers []types.Edge

	for len(balances) > 0 {
		if len(balances) == 1 {
			if _, onlySink := balances[sink]; onlySink {
				break
			}
		}

		edge, ok := nextFullCapacityEdge(used, balances)
		if !ok {
			return nil, invariantf("extractor: no eligible edge",
				"used subgraph exhausted with %d account(s) still holding balance", len(balances))
		}
		if balances[edge.From].Cmp(edge.Capacity) < 0 {
			return nil, invariantf("extractor: balance underflow",
				"%s holds less than the %s it is about to send", edge.From, edge.Capacity)
		}

		balances[edge.From] = balances[edge.From].Sub(edge.Capacity)
		if balances[edge.From].IsZero() {
			delete(balances, edge.From)
		}
		balances[edge.To] = balances[edge.To].Add(edge.Capacity)

		bal := node.Balance(edge.From, edge.Token)
		trust := node.Trust(edge.To, edge.Token)
		row, ok := used[bal]
		if !ok {
			return nil, invariantf("extractor: missing balance row", "%v", bal)
		}
		if _, ok := row[trust]; !ok {
			return nil, invariantf("extractor: missing trust arc", "%v -> %v", bal, trust)
		}
		delete(row, trust)
		if len(row) == 0 {
			delete(used, bal)
		}

		transfers = append(transfers, edge)
	}

	return transfers, nil
}
