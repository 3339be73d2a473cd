package edgedb

import "github.com/trustnet/flowengine/types"

// EdgeDB is the read-only edge index the flow engine consumes. Callers
// must not mutate the underlying network while a computation is in
// flight; implementations need no internal locking to honor
// that contract as long as callers respect it.
type EdgeDB interface {
	// EdgesFrom returns all edges whose From participant is from, in no
	// particular order. Returns nil if from has no outgoing edges.
	EdgesFrom(from types.Address) []types.Edge

	// All returns every edge in the database, in no particular order.
	All() []types.Edge
}
