package engine

import (
	"sort"

	"github.com/trustnet/flowengine/node"
	"github.com/trustnet/flowengine/types"
)

// pair is a directed used-edge endpoint pair.
type pair struct {
	a, b node.Node
}

func lessPair(x, y pair) bool {
	if x.a != y.a {
		return x.a.Less(y.a)
	}
	return x.b.Less(y.b)
}

// pathLengthGroup groups used edges sharing the same source+sink distance,
// ordered so the longest paths come first.
type pathLengthGroup struct {
	length int64 // negative path length; most negative (longest path) sorts first
	edges  []pair
}

// distancesFrom runs an unweighted BFS over used starting at start,
// returning hop distance to every node reachable from it.
func distancesFrom(start node.Node, used usedEdges) map[node.Node]int64 {
	dist := map[node.Node]int64{start: 0}
	queue := []node.Node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for to, amt := range used[n] {
			if amt.IsZero() {
				continue
			}
			if _, seen := dist[to]; seen {
				continue
			}
			dist[to] = dist[n] + 1
			queue = append(queue, to)
		}
	}
	return dist
}

func reverseUsed(used usedEdges) usedEdges {
	rev := make(usedEdges)
	for from, row := range used {
		for to, amt := range row {
			if rev[to] == nil {
				rev[to] = make(map[node.Node]types.Amount)
			}
			rev[to][from] = amt
		}
	}
	return rev
}

// edgesByPathLength computes, for every used edge, its path length
// (distance from source to a, plus one, plus distance from b to sink) and
// groups edges by the negative of that length so the longest paths sort
// first.
func edgesByPathLength(source, sink node.Node, used usedEdges) []pathLengthGroup {
	fromSource := distancesFrom(source, used)
	toSink := distancesFrom(sink, reverseUsed(used))

	byLength := make(map[int64][]pair)
	for a, row := range used {
		for b := range row {
			length := fromSource[a] + 1 + toSink[b]
			byLength[-length] = append(byLength[-length], pair{a: a, b: b})
		}
	}

	keys := make([]int64, 0, len(byLength))
	for k := range byLength {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	groups := make([]pathLengthGroup, 0, len(keys))
	for _, k := range keys {
		edges := byLength[k]
		sort.Slice(edges, func(i, j int) bool { return lessPair(edges[i], edges[j]) })
		groups = append(groups, pathLengthGroup{length: k, edges: edges})
	}
	return groups
}

// smallestEdgeInSet returns the still-present edge in edges with the
// smallest capacity, ties broken by endpoint order.
func smallestEdgeInSet(used usedEdges, edges []pair) (pair, types.Amount, bool) {
	var (
		best    pair
		bestAmt types.Amount
		found   bool
	)
	for _, p := range edges {
		amt, ok := used[p.a][p.b]
		if !ok {
			continue
		}
		if !found || amt.Cmp(bestAmt) < 0 || (amt.Cmp(bestAmt) == 0 && lessPair(p, best)) {
			best, bestAmt, found = p, amt, true
		}
	}
	return best, bestAmt, found
}

func smallestEdgeFrom(used usedEdges, n node.Node) (node.Node, types.Amount, bool) {
	row, ok := used[n]
	if !ok {
		return node.Node{}, types.Amount{}, false
	}
	var (
		best    node.Node
		bestAmt types.Amount
		found   bool
	)
	for to, amt := range row {
		if !found || amt.Cmp(bestAmt) < 0 || (amt.Cmp(bestAmt) == 0 && to.Less(best)) {
			best, bestAmt, found = to, amt, true
		}
	}
	return best, bestAmt, found
}

func smallestEdgeTo(used usedEdges, n node.Node) (node.Node, types.Amount, bool) {
	var (
		best    node.Node
		bestAmt types.Amount
		found   bool
	)
	for from, row := range used {
		amt, ok := row[n]
		if !ok {
			continue
		}
		if !found || amt.Cmp(bestAmt) < 0 || (amt.Cmp(bestAmt) == 0 && from.Less(best)) {
			best, bestAmt, found = from, amt, true
		}
	}
	return best, bestAmt, found
}

// reduceCapacity reduces used[a][b] by reduction, removing the entry (and
// its row, if left empty) when it hits zero.
func reduceCapacity(used usedEdges, a, b node.Node, reduction types.Amount) {
	row := used[a]
	row[b] = row[b].Sub(reduction)
	if row[b].IsZero() {
		delete(row, b)
		if len(row) == 0 {
			delete(used, a)
		}
	}
}

type pruneDirection int

const (
	pruneForwards pruneDirection = iota
	pruneBackwards
)

// prunePath removes an entire consistent flow sub-chain reachable from n
// in direction, up to flowToPrune total, preserving conservation at every
// internal node it touches.
func prunePath(used usedEdges, n node.Node, flowToPrune types.Amount, direction pruneDirection) {
	for !flowToPrune.IsZero() {
		var (
			next     node.Node
			capacity types.Amount
			found    bool
		)
		switch direction {
		case pruneForwards:
			next, capacity, found = smallestEdgeFrom(used, n)
		case pruneBackwards:
			next, capacity, found = smallestEdgeTo(used, n)
		}
		if !found {
			return
		}
		amount := flowToPrune.Min(capacity)
		switch direction {
		case pruneForwards:
			reduceCapacity(used, n, next, amount)
		case pruneBackwards:
			reduceCapacity(used, next, n, amount)
		}
		prunePath(used, next, amount, direction)
		flowToPrune = flowToPrune.Sub(amount)
	}
}

// pruneEdge prunes (a,b) by up to flowToPrune, propagating the removal
// forward from b and backward from a, and returns the remaining amount
// still to prune.
func pruneEdge(used usedEdges, a, b node.Node, flowToPrune types.Amount) types.Amount {
	edgeSize := flowToPrune.Min(used[a][b])
	reduceCapacity(used, a, b, edgeSize)
	prunePath(used, b, edgeSize, pruneForwards)
	prunePath(used, a, edgeSize, pruneBackwards)
	return flowToPrune.Sub(edgeSize)
}

// pruneFlow removes excess units of committed flow while keeping used a
// valid source-to-sink flow assignment, favoring long paths first since
// they produce more transfers for the same value removed.
func pruneFlow(source, sink node.Node, excess types.Amount, used usedEdges) types.Amount {
	groups := edgesByPathLength(source, sink, used)

	for _, g := range groups {
		for !excess.IsZero() {
			p, amt, found := smallestEdgeInSet(used, g.edges)
			if !found {
				break
			}
			if amt.Cmp(excess) > 0 {
				break
			}
			excess = pruneEdge(used, p.a, p.b, excess)
		}
	}

	if excess.IsZero() {
		return excess
	}

	for _, g := range groups {
		for _, p := range g.edges {
			row, ok := used[p.a]
			if !ok {
				continue
			}
			if _, ok := row[p.b]; !ok {
				continue
			}
			excess = pruneEdge(used, p.a, p.b, excess)
			if excess.IsZero() {
				return excess
			}
		}
	}
	return excess
}
