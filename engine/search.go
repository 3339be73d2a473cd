package engine

import (
	"github.com/trustnet/flowengine/layered"
	"github.com/trustnet/flowengine/node"
	"github.com/trustnet/flowengine/types"
)

// searchItem is one BFS queue entry: the node reached, its hop depth, and
// the bottleneck capacity of the path from the source up to it.
type searchItem struct {
	n     node.Node
	depth uint64
	flow  types.Amount
}

// augmentingPath runs BFS from Participant(source) to Participant(sink)
// over adj's residual graph. It returns the bottleneck
// capacity and the path in sink-to-source order. If source == sink, or no
// augmenting path exists, it returns (0, nil).
//
// maxDistance, if non-nil, bounds each path to maxDistance participant
// hops; internally that is 3*maxDistance layered arcs, since every trust
// hop is three layered arcs (Participant->Balance->Trust->Participant).
func augmentingPath(source, sink types.Address, adj *layered.Adjacency, maxDistance *uint64) (types.Amount, []node.Node) {
	if source == sink {
		return types.Amount{}, nil
	}

	parent := make(map[node.Node]node.Node)
	srcNode := node.Participant(source)
	sinkNode := node.Participant(sink)

	queue := []searchItem{{n: srcNode, depth: 0, flow: types.AmountMax()}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if maxDistance != nil && item.depth >= (*maxDistance)*3 {
			continue
		}

		for _, out := range adj.Outgoing(item.n) {
			if _, seen := parent[out.Target]; seen {
				continue
			}
			parent[out.Target] = item.n
			newFlow := item.flow.Min(out.Residual)
			if out.Target == sinkNode {
				return newFlow, tracePath(parent, srcNode, sinkNode)
			}
			queue = append(queue, searchItem{n: out.Target, depth: item.depth + 1, flow: newFlow})
		}
	}
	return types.Amount{}, nil
}

// tracePath reconstructs the path from source to sink, sink-first, by
// walking parent links backward from sink.
func tracePath(parent map[node.Node]node.Node, source, sink node.Node) []node.Node {
	path := []node.Node{sink}
	cur := sink
	for cur != source {
		p, ok := parent[cur]
		if !ok {
			// Unreachable given augmentingPath only calls this after
			// finding sink via a recorded parent chain back to source.
			panic("engine: broken parent chain while tracing augmenting path")
		}
		path = append(path, p)
		cur = p
	}
	return path
}
