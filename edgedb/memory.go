package edgedb

import "github.com/trustnet/flowengine/types"

// Memory is an in-memory EdgeDB, grouping edges by their From address.
// It is immutable after construction: every mutating helper returns a new
// value rather than touching an existing Memory, so a computation holding
// one is safe even if the caller goes on to build another from fresher
// data.
type Memory struct {
	byFrom map[types.Address][]types.Edge
}

// NewMemory groups edges by From and returns a ready-to-use Memory.
func NewMemory(edges []types.Edge) *Memory {
	m := &Memory{byFrom: make(map[types.Address][]types.Edge, len(edges))}
	for _, e := range edges {
		m.byFrom[e.From] = append(m.byFrom[e.From], e)
	}
	return m
}

// EdgesFrom implements EdgeDB.
func (m *Memory) EdgesFrom(from types.Address) []types.Edge {
	return m.byFrom[from]
}

// All implements EdgeDB.
func (m *Memory) All() []types.Edge {
	all := make([]types.Edge, 0, len(m.byFrom))
	for _, es := range m.byFrom {
		all = append(all, es...)
	}
	return all
}
