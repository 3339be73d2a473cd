// Package dotviz renders transfer lists and layered-graph snapshots as
// Graphviz DOT source, for diagnostics and the flowctl --dot flag.
//
// Transfers mirrors original_source's transfers_to_dot directly: one edge
// per transfer, labeled with the decimal amount and the token whenever it
// differs from both endpoints. UsedEdges renders the same shape for a raw
// layered.Adjacency snapshot, via a small graph.Directed adapter and
// gonum.org/v1/gonum/graph/encoding/dot.
package dotviz
