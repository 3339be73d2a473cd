package dotviz

import (
	"fmt"
	"strings"

	"github.com/trustnet/flowengine/types"
)

// Transfers renders transfers as a Graphviz digraph. Each edge is labeled
// with the decimal amount; the token is appended in parentheses unless it
// equals the sender (the common "trust line" case, labeled "(trust)"
// instead) or the receiver.
func Transfers(transfers []types.Transfer) string {
	var b strings.Builder
	b.WriteString("digraph transfers {\n")
	for _, t := range transfers {
		label := t.Capacity.String() + tokenSuffix(t.From, t.To, t.Token)
		fmt.Fprintf(&b, "    %q -> %q [label=%q];\n", t.From.Short(), t.To.Short(), label)
	}
	b.WriteString("}\n")
	return b.String()
}

func tokenSuffix(from, to, token types.Address) string {
	switch {
	case token == from:
		return " (trust)"
	case token == to:
		return ""
	default:
		return " (" + token.Short() + ")"
	}
}
