// Package edgedb provides the EdgeDB contract the flow engine consumes:
// an immutable, per-computation index of Edge values grouped by their
// From participant.
//
// Memory is the canonical in-process implementation; BoltStore adds
// durability across process restarts by persisting the same grouping to
// an embedded go.etcd.io/bbolt database and materializing a Memory
// snapshot for each computation, so the engine itself never depends on
// bbolt.
package edgedb
