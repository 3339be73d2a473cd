package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustnet/flowengine/types"
)

func TestScheduleTransfersOrdersByReceipt(t *testing.T) {
	a, b, c, tok := fillAddr(1), fillAddr(2), fillAddr(3), fillAddr(9)
	// Listed out of dependency order: c can't send until it has received from b.
	in := []types.Edge{
		{From: b, To: c, Token: tok, Capacity: types.NewAmount(5)},
		{From: a, To: b, Token: tok, Capacity: types.NewAmount(5)},
	}

	out, err := scheduleTransfers(in)
	require.NoError(t, err)
	require.Equal(t, []types.Edge{
		{From: a, To: b, Token: tok, Capacity: types.NewAmount(5)},
		{From: b, To: c, Token: tok, Capacity: types.NewAmount(5)},
	}, out)
}

func TestScheduleTransfersDetectsFundingCycle(t *testing.T) {
	a, b, tok := fillAddr(1), fillAddr(2), fillAddr(9)
	in := []types.Edge{
		{From: a, To: b, Token: tok, Capacity: types.NewAmount(5)},
		{From: b, To: a, Token: tok, Capacity: types.NewAmount(5)},
	}

	_, err := scheduleTransfers(in)
	require.Error(t, err)
	var invErr *InvariantError
	require.ErrorAs(t, err, &invErr)
	require.Equal(t, "scheduler: no progress", invErr.Invariant)
}
