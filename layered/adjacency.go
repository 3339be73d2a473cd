package layered

import (
	"sort"

	"github.com/trustnet/flowengine/node"
	"github.com/trustnet/flowengine/types"
)

// arcState is one directed residual arc of the layered graph.
type arcState struct {
	residual types.Amount
	original bool // true iff this direction existed in the pre-residual layered graph
}

// Adjacency is the residual view of a built layered graph. It
// doubles as the "original" graph record: Original on an arcState is the
// is_adjacent check: the way this implementation
// expresses Ford-Fulkerson's reverse-edge bookkeeping without a second
// parallel structure.
type Adjacency struct {
	arcs map[node.Node]map[node.Node]*arcState
}

func newAdjacency() *Adjacency {
	return &Adjacency{arcs: make(map[node.Node]map[node.Node]*arcState)}
}

// addOriginal installs (or idempotently re-confirms) a forward arc with
// the given nominal capacity. Called only while building the graph.
func (a *Adjacency) addOriginal(from, to node.Node, capacity types.Amount) {
	row, ok := a.arcs[from]
	if !ok {
		row = make(map[node.Node]*arcState)
		a.arcs[from] = row
	}
	if st, ok := row[to]; ok {
		st.residual = capacity
		st.original = true
		return
	}
	row[to] = &arcState{residual: capacity, original: true}
}

// Out is one entry of Outgoing: a reachable target with positive residual.
type Out struct {
	Target   node.Node
	Residual types.Amount
}

// Outgoing returns the arcs leaving n with strictly positive residual
// capacity, sorted by residual capacity descending, ties broken by target
// node order.
func (a *Adjacency) Outgoing(n node.Node) []Out {
	row := a.arcs[n]
	if len(row) == 0 {
		return nil
	}
	out := make([]Out, 0, len(row))
	for target, st := range row {
		if !st.residual.IsZero() {
			out = append(out, Out{Target: target, Residual: st.residual})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Residual.Cmp(out[j].Residual); c != 0 {
			return c > 0 // descending capacity
		}
		return out[i].Target.Less(out[j].Target)
	})
	return out
}

// IsAdjacent reports whether a forward arc a->b exists in the original
// (pre-residual) layered graph, as opposed to (a,b) existing only because
// augmentation created a reverse-residual arc.
func (adj *Adjacency) IsAdjacent(a, b node.Node) bool {
	row, ok := adj.arcs[a]
	if !ok {
		return false
	}
	st, ok := row[b]
	return ok && st.original
}

// Arc is one forward arc of the layered graph, exposed only for diagnostics
// (dotviz.UsedEdges). Residual is whatever capacity remains at the moment
// of the call: taken right after Build it is the nominal trust network,
// taken after a computation it is what augmentation left behind.
type Arc struct {
	From, To node.Node
	Residual types.Amount
}

// ForwardArcs returns every arc that belongs to the original (pre-residual)
// layered graph, in deterministic order, for diagnostic rendering.
func (a *Adjacency) ForwardArcs() []Arc {
	var out []Arc
	for from, row := range a.arcs {
		for to, st := range row {
			if st.original {
				out = append(out, Arc{From: from, To: to, Residual: st.residual})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From.Less(out[j].From)
		}
		return out[i].To.Less(out[j].To)
	})
	return out
}

// Augment applies one step of augmentation along the arc from->to: the
// forward residual is decreased by amount and the reverse residual (to->from)
// is increased by the same amount, creating the reverse entry on first use.
func (a *Adjacency) Augment(from, to node.Node, amount types.Amount) {
	fwd := a.arcs[from][to]
	fwd.residual = fwd.residual.Sub(amount)

	row, ok := a.arcs[to]
	if !ok {
		row = make(map[node.Node]*arcState)
		a.arcs[to] = row
	}
	rev, ok := row[from]
	if !ok {
		rev = &arcState{}
		row[from] = rev
	}
	rev.residual = rev.residual.Add(amount)
}
