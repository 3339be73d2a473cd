package dotviz_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustnet/flowengine/dotviz"
	"github.com/trustnet/flowengine/layered"
	"github.com/trustnet/flowengine/node"
	"github.com/trustnet/flowengine/types"
)

func fillAddr(b byte) types.Address {
	var a types.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func TestTransfersLabelsTrustToken(t *testing.T) {
	alice, bob := fillAddr(1), fillAddr(2)
	out := dotviz.Transfers([]types.Transfer{
		{From: alice, To: bob, Token: alice, Capacity: types.NewAmount(5)},
	})
	require.Contains(t, out, "digraph transfers {")
	require.Contains(t, out, "label=\"5 (trust)\"")
}

func TestTransfersOmitsSuffixWhenTokenIsRecipient(t *testing.T) {
	alice, bob := fillAddr(1), fillAddr(2)
	out := dotviz.Transfers([]types.Transfer{
		{From: alice, To: bob, Token: bob, Capacity: types.NewAmount(7)},
	})
	require.Contains(t, out, "label=\"7\"")
	require.NotContains(t, out, "trust")
}

func TestTransfersAnnotatesThirdPartyToken(t *testing.T) {
	alice, bob, carol := fillAddr(1), fillAddr(2), fillAddr(3)
	out := dotviz.Transfers([]types.Transfer{
		{From: alice, To: bob, Token: carol, Capacity: types.NewAmount(3)},
	})
	require.Contains(t, out, carol.Short())
}

func TestUsedEdgesRendersEveryOriginalArc(t *testing.T) {
	a, b := node.Participant(fillAddr(1)), node.Participant(fillAddr(2))
	arcs := []layered.Arc{
		{From: a, To: b, Residual: types.NewAmount(10)},
	}
	out, err := dotviz.UsedEdges(arcs)
	require.NoError(t, err)
	require.True(t, strings.Contains(out, a.String()))
	require.True(t, strings.Contains(out, b.String()))
}

func TestUsedEdgesEmptyIsStillValidDot(t *testing.T) {
	out, err := dotviz.UsedEdges(nil)
	require.NoError(t, err)
	require.Contains(t, out, "digraph")
}
