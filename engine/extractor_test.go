package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustnet/flowengine/layered"
	"github.com/trustnet/flowengine/types"
)

func TestExtractTransfersDirect(t *testing.T) {
	a, b, tok := fillAddr(1), fillAddr(2), fillAddr(9)
	adj := layered.Build([]types.Edge{{From: a, To: b, Token: tok, Capacity: types.NewAmount(10)}})

	flow, used := runMaxFlow(a, b, adj, nil)
	require.Equal(t, "10", flow.String())

	transfers, err := extractTransfers(a, b, flow, used)
	require.NoError(t, err)
	require.Equal(t, []types.Edge{{From: a, To: b, Token: tok, Capacity: types.NewAmount(10)}}, transfers)
}

func TestExtractTransfersNoEligibleEdgeIsInvariant(t *testing.T) {
	a, b := fillAddr(1), fillAddr(2)
	used := make(usedEdges)
	// A well-formed used graph always lets every held balance drain;
	// an empty one with a nonzero starting balance cannot.
	_, err := extractTransfers(a, b, types.NewAmount(5), used)
	require.Error(t, err)
	var invErr *InvariantError
	require.ErrorAs(t, err, &invErr)
	require.Equal(t, "extractor: no eligible edge", invErr.Invariant)
}
