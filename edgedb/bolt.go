package edgedb

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/trustnet/flowengine/types"
)

// edgesBucket holds one key per From address; the value is the JSON
// encoding of that address's outgoing edges.
var edgesBucket = []byte("edges_by_from")

// ErrStoreClosed is returned by BoltStore operations after Close.
var ErrStoreClosed = errors.New("edgedb: store is closed")

// BoltStore persists a trust network on disk so a long-lived process (the
// HTTP surface, or repeated CLI invocations) doesn't need to reparse a
// flat edge file on every run. It never participates directly in a
// computation: Snapshot materializes an immutable Memory that the engine
// actually reads from, keeping the "EdgeDB is read-only for the duration
// of a computation" contract trivially true regardless of what
// writes happen to the store afterward.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens (creating if absent) a bbolt database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("edgedb: open %q: %w", path, err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(edgesBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("edgedb: init bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close releases the underlying file handle.
func (s *BoltStore) Close() error {
	if s.db == nil {
		return ErrStoreClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Put replaces the full edge set for a single From address.
func (s *BoltStore) Put(from types.Address, edges []types.Edge) error {
	if s.db == nil {
		return ErrStoreClosed
	}
	payload, err := json.Marshal(edges)
	if err != nil {
		return fmt.Errorf("edgedb: encode edges for %s: %w", from, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(edgesBucket).Put(from[:], payload)
	})
}

// Import replaces the store's contents with edges, grouped by From.
func (s *BoltStore) Import(edges []types.Edge) error {
	if s.db == nil {
		return ErrStoreClosed
	}
	byFrom := make(map[types.Address][]types.Edge)
	for _, e := range edges {
		byFrom[e.From] = append(byFrom[e.From], e)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(edgesBucket); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket(edgesBucket)
		if err != nil {
			return err
		}
		for from, es := range byFrom {
			payload, err := json.Marshal(es)
			if err != nil {
				return fmt.Errorf("edgedb: encode edges for %s: %w", from, err)
			}
			if err := b.Put(from[:], payload); err != nil {
				return err
			}
		}
		return nil
	})
}

// Snapshot reads the entire store under a single read transaction and
// returns an in-memory EdgeDB a computation can safely hold for its
// whole duration.
func (s *BoltStore) Snapshot() (*Memory, error) {
	if s.db == nil {
		return nil, ErrStoreClosed
	}
	var all []types.Edge
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(edgesBucket).ForEach(func(_, v []byte) error {
			var es []types.Edge
			if err := json.Unmarshal(v, &es); err != nil {
				return err
			}
			all = append(all, es...)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("edgedb: snapshot: %w", err)
	}
	return NewMemory(all), nil
}
