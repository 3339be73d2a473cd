package engine

import (
	"github.com/trustnet/flowengine/layered"
	"github.com/trustnet/flowengine/node"
	"github.com/trustnet/flowengine/types"
)

// usedEdges maps Node -> Node -> net committed flow on that layered arc
// No entry ever holds a zero value and no inner map is ever
// left empty; both invariants are restored by purge after the max-flow
// loop and maintained by every mutation afterward (pruner, reducer,
// extractor).
type usedEdges map[node.Node]map[node.Node]types.Amount

func (u usedEdges) add(from, to node.Node, amount types.Amount) {
	row, ok := u[from]
	if !ok {
		row = make(map[node.Node]types.Amount)
		u[from] = row
	}
	row[to] = row[to].Add(amount)
}

func (u usedEdges) subtract(from, to node.Node, amount types.Amount) {
	row := u[from]
	cur := row[to]
	row[to] = cur.Sub(amount)
}

// purge drops zero-valued entries and empty inner maps, restoring the
// invariant every other function in this package relies on.
func (u usedEdges) purge() {
	for from, row := range u {
		for to, amt := range row {
			if amt.IsZero() {
				delete(row, to)
			}
		}
		if len(row) == 0 {
			delete(u, from)
		}
	}
}

// runMaxFlow repeats augmentingPath until exhausted, accumulating flow
// and building the used-edge subgraph.
func runMaxFlow(source, sink types.Address, adj *layered.Adjacency, maxDistance *uint64) (types.Amount, usedEdges) {
	used := make(usedEdges)
	flow := types.Amount{}

	for {
		bottleneck, path := augmentingPath(source, sink, adj, maxDistance)
		if bottleneck.IsZero() {
			break
		}
		flow = flow.Add(bottleneck)

		for i := 0; i+1 < len(path); i++ {
			n, prev := path[i], path[i+1]
			adj.Augment(prev, n, bottleneck)
			if adj.IsAdjacent(n, prev) {
				// The traversed arc prev->n was itself the reverse of an
				// original arc n->prev: this augmentation cancels
				// previously committed flow rather than adding new flow.
				used.subtract(n, prev, bottleneck)
			} else {
				used.add(prev, n, bottleneck)
			}
		}
	}

	used.purge()
	return flow, used
}
