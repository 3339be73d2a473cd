// Package engine is the core of the flow specification: it turns a
// source, a sink, an EdgeDB and optional constraints into a flow value
// and a dependency-ordered list of concrete transfers.
//
// The pipeline is: build the layered graph (package layered), repeat
// BFS augmenting-path search until exhausted (augmentingPath, runMaxFlow),
// optionally prune down to a requested amount (pruneFlow), optionally
// reduce the transfer count (reduceTransfers), extract concrete transfers
// by draining the used-edge subgraph (extractTransfers), simplify
// chainable equal-capacity hops (simplifyTransfers) and finally schedule
// them into an issuable order (scheduleTransfers).
//
// Every operation here is synchronous and single-threaded within one
// call to ComputeFlow; ComputeFlow may be called concurrently
// for independent (source, sink) pairs, each with its own EdgeDB
// snapshot.
package engine
