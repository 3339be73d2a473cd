package dotviz

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/trustnet/flowengine/layered"
	"github.com/trustnet/flowengine/node"
)

// UsedEdges renders a layered.Adjacency snapshot (layered.Adjacency.ForwardArcs)
// as a Graphviz digraph, for inspecting the built trust network or what
// augmentation left behind.
func UsedEdges(arcs []layered.Arc) (string, error) {
	g := newArcGraph(arcs)
	out, err := dot.Marshal(g, "used_edges", "", "    ", false)
	if err != nil {
		return "", fmt.Errorf("dotviz: marshal used edges: %w", err)
	}
	return string(out), nil
}

// dotNode wraps a node.Node as a gonum graph.Node with a stable int64 ID and
// a DOT-friendly label.
type dotNode struct {
	id    int64
	label string
}

func (n dotNode) ID() int64     { return n.id }
func (n dotNode) DOTID() string { return n.label }

// dotEdge wraps one layered.Arc as a gonum graph.Edge carrying a DOT label
// attribute for its residual capacity.
type dotEdge struct {
	from, to dotNode
	residual string
}

func (e dotEdge) From() graph.Node         { return e.from }
func (e dotEdge) To() graph.Node           { return e.to }
func (e dotEdge) ReversedEdge() graph.Edge { return dotEdge{from: e.to, to: e.from, residual: e.residual} }
func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: e.residual}}
}

// arcGraph adapts a fixed set of layered.Arc values to graph.Directed.
type arcGraph struct {
	nodes map[int64]graph.Node
	out   map[int64]map[int64]graph.Edge
	in    map[int64]map[int64]graph.Edge
}

func newArcGraph(arcs []layered.Arc) *arcGraph {
	ids := make(map[node.Node]int64)
	g := &arcGraph{
		nodes: make(map[int64]graph.Node),
		out:   make(map[int64]map[int64]graph.Edge),
		in:    make(map[int64]map[int64]graph.Edge),
	}

	nodeID := func(n node.Node) int64 {
		if id, ok := ids[n]; ok {
			return id
		}
		id := int64(len(ids))
		ids[n] = id
		g.nodes[id] = dotNode{id: id, label: n.String()}
		return id
	}

	for _, a := range arcs {
		fid, tid := nodeID(a.From), nodeID(a.To)
		e := dotEdge{
			from:     dotNode{id: fid, label: a.From.String()},
			to:       dotNode{id: tid, label: a.To.String()},
			residual: a.Residual.String(),
		}
		if g.out[fid] == nil {
			g.out[fid] = make(map[int64]graph.Edge)
		}
		g.out[fid][tid] = e
		if g.in[tid] == nil {
			g.in[tid] = make(map[int64]graph.Edge)
		}
		g.in[tid][fid] = e
	}
	return g
}

func (g *arcGraph) Node(id int64) graph.Node {
	return g.nodes[id]
}

func (g *arcGraph) Nodes() graph.Nodes {
	nodes := make([]graph.Node, 0, len(g.nodes))
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		nodes = append(nodes, g.nodes[id])
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *arcGraph) From(id int64) graph.Nodes {
	row := g.out[id]
	if len(row) == 0 {
		return graph.Empty
	}
	return iterator.NewNodesByEdge(g.nodes, row)
}

func (g *arcGraph) HasEdgeBetween(xid, yid int64) bool {
	if _, ok := g.out[xid][yid]; ok {
		return true
	}
	_, ok := g.out[yid][xid]
	return ok
}

func (g *arcGraph) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := g.out[uid][vid]
	return ok
}

func (g *arcGraph) To(id int64) graph.Nodes {
	row := g.in[id]
	if len(row) == 0 {
		return graph.Empty
	}
	return iterator.NewNodesByEdge(g.nodes, row)
}

func (g *arcGraph) Edge(uid, vid int64) graph.Edge {
	if e, ok := g.out[uid][vid]; ok {
		return e
	}
	return nil
}
