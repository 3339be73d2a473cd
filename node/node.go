// Package node defines the three-variant vertex type of the layered
// capacity graph: Participant, BalanceNode and TrustNode.
//
// Node is a small value type (comparable, usable as a map key) rather than
// an interface, so the layered graph and the engine can keep using plain
// Go maps without any dynamic dispatch or boxing.
package node

import (
	"fmt"

	"github.com/trustnet/flowengine/types"
)

// Kind distinguishes the three node variants. The numeric order is part of
// the total order this package requires ("participant < balance < trust,
// then lexicographic"): search and every tie-break in this module must be
// deterministic regardless of map iteration order.
type Kind uint8

const (
	// KindParticipant represents the participant account itself.
	KindParticipant Kind = iota
	// KindBalance represents the balance a participant holds in a token.
	KindBalance
	// KindTrust represents a participant's willingness to receive a token.
	KindTrust
)

// Node is a vertex of the layered capacity graph.
//
//   - KindParticipant: Addr is the participant, Tok is the zero value.
//   - KindBalance:     Addr is the balance owner, Tok is the token.
//   - KindTrust:       Addr is the recipient, Tok is the token.
type Node struct {
	Kind Kind
	Addr types.Address
	Tok  types.Token
}

// Participant builds a KindParticipant node.
func Participant(addr types.Address) Node {
	return Node{Kind: KindParticipant, Addr: addr}
}

// Balance builds a KindBalance node for owner's holdings of token.
func Balance(owner types.Address, token types.Token) Node {
	return Node{Kind: KindBalance, Addr: owner, Tok: token}
}

// Trust builds a KindTrust node for recipient's willingness to accept token.
func Trust(recipient types.Address, token types.Token) Node {
	return Node{Kind: KindTrust, Addr: recipient, Tok: token}
}

// AsTrust extracts the (recipient, token) pair from a KindTrust node. It
// panics if n is not a KindTrust node: its caller only passes targets of
// Balance-node rows, which are always Trust nodes, so this is a
// programmer-error guard, not a runtime condition.
func (n Node) AsTrust() (recipient types.Address, token types.Token) {
	if n.Kind != KindTrust {
		panic("node: AsTrust called on a non-trust node")
	}
	return n.Addr, n.Tok
}

// Less implements the total order this package requires: Kind first, then
// Addr, then Tok, so every enumeration and tie-break in this module is
// reproducible across different map iteration orders.
func (n Node) Less(o Node) bool {
	if n.Kind != o.Kind {
		return n.Kind < o.Kind
	}
	if c := n.Addr.Compare(o.Addr); c != 0 {
		return c < 0
	}
	return n.Tok.Compare(o.Tok) < 0
}

// String renders a human-readable label, used for logs and DOT export.
func (n Node) String() string {
	switch n.Kind {
	case KindParticipant:
		return fmt.Sprintf("P(%s)", n.Addr.Short())
	case KindBalance:
		return fmt.Sprintf("B(%s,%s)", n.Addr.Short(), n.Tok.Short())
	case KindTrust:
		return fmt.Sprintf("T(%s,%s)", n.Addr.Short(), n.Tok.Short())
	default:
		return "?"
	}
}
