package engine

import (
	"github.com/trustnet/flowengine/edgedb"
	"github.com/trustnet/flowengine/layered"
	"github.com/trustnet/flowengine/node"
	"github.com/trustnet/flowengine/types"
)

// ComputeFlow computes the maximum feasible transfer of value from source
// to sink over the trust network described by edges, honoring the
// optional requestedFlow cap, maxDistance hop limit, and maxTransfers
// count cap. It returns the achieved flow value and a concrete, scheduled
// sequence of token transfers that realizes it.
//
// source == sink, an empty network, or an unreachable sink all yield
// (0, nil, nil): these are degenerate inputs, not errors. The returned
// error is non-nil only for an invariant violation in the used-edge
// subgraph, which should not occur for a correctly built EdgeDB.
func ComputeFlow(
	source, sink types.Address,
	edges edgedb.EdgeDB,
	requestedFlow types.Amount,
	maxDistance *uint64,
	maxTransfers *uint64,
) (types.Amount, []types.Transfer, error) {
	if source == sink {
		return types.Amount{}, nil, nil
	}

	adj := layered.Build(edges.All())

	flow, used := runMaxFlow(source, sink, adj, maxDistance)
	if flow.IsZero() {
		return types.Amount{}, nil, nil
	}

	if requestedFlow.Cmp(types.AmountMax()) != 0 && flow.Cmp(requestedFlow) > 0 {
		excess := flow.Sub(requestedFlow)
		residual := pruneFlow(node.Participant(source), node.Participant(sink), excess, used)
		flow = requestedFlow.Add(residual)
	}

	if maxTransfers != nil {
		lost := reduceTransfers(int(*maxTransfers)*3, used)
		flow = flow.Sub(lost)
	}

	if flow.IsZero() {
		return types.Amount{}, nil, nil
	}

	transfers, err := extractTransfers(source, sink, flow, used)
	if err != nil {
		return types.Amount{}, nil, err
	}

	transfers = simplifyTransfers(transfers)

	scheduled, err := scheduleTransfers(transfers)
	if err != nil {
		return types.Amount{}, nil, err
	}

	return flow, scheduled, nil
}
