package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/trustnet/flowengine/edgedb"
	"github.com/trustnet/flowengine/types"
)

// loadEdgesFile parses a flat JSON array of edges.
func loadEdgesFile(path string) ([]types.Edge, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var edges []types.Edge
	if err := json.Unmarshal(raw, &edges); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return edges, nil
}

// openEdgeDB builds a read-only edgedb.EdgeDB for a computation: a flat
// file takes precedence when both --edges and --db are given, since a
// one-off override of a persisted network is the common debugging case.
// It returns a cleanup func that closes any bbolt handle opened along the
// way; callers should always defer it, even on the flat-file path where
// it is a no-op.
func openEdgeDB(edgesPath, dbPath string) (edgedb.EdgeDB, func() error, error) {
	noop := func() error { return nil }

	if edgesPath != "" {
		edges, err := loadEdgesFile(edgesPath)
		if err != nil {
			return nil, noop, err
		}
		return edgedb.NewMemory(edges), noop, nil
	}

	if dbPath == "" {
		return nil, noop, fmt.Errorf("one of --edges or --db is required")
	}

	store, err := edgedb.OpenBoltStore(dbPath)
	if err != nil {
		return nil, noop, err
	}
	snapshot, err := store.Snapshot()
	if err != nil {
		store.Close()
		return nil, noop, err
	}
	return snapshot, store.Close, nil
}
