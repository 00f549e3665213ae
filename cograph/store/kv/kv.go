/*
	kv package implements an embedded, persistent co-occurrence graph on top
	of a badger key-value store.

	Key layout:

		v<vertex id>                      -> label | updated at | key
		k<key>                            -> vertex id
		e<src id><edge id>                -> dest id | weight | updated at | label
		x<src id><dest id><label>         -> edge id
*/

package kv

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uPartition/cograph/graph"
)

const (
	vertexPrefix    = 'v'
	keyIndexPrefix  = 'k'
	edgePrefix      = 'e'
	edgeIndexPrefix = 'x'

	maxConflictRetries = 10
)

// Static and compile-time check to ensure BadgerGraph implements
// Graph interface.
var _ graph.Graph = (*BadgerGraph)(nil)

// BadgerGraph implements a persistent co-occurrence graph using an
// embedded badger database.
type BadgerGraph struct {
	db *badger.DB
}

// NewBadgerGraph opens (or creates) the badger database at path. An empty
// path keeps the database in memory. Database diagnostics are written to
// logger; a nil logger discards them.
func NewBadgerGraph(path string, logger *logrus.Entry) (*BadgerGraph, error) {
	if logger == nil {
		logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	opts := badger.DefaultOptions(path).WithLogger(logger)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return &BadgerGraph{db: db}, nil
}

// Close flushes pending writes and releases the database.
func (s *BadgerGraph) Close() error {
	return s.db.Close()
}

// UpsertVertex creates a new vertex or updates the label of an existing
// vertex with the same key.
func (s *BadgerGraph) UpsertVertex(vertex *graph.Vertex) error {
	now := time.Now()

	err := s.update(func(txn *badger.Txn) error {
		id, err := s.lookupKey(txn, vertex.Key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			if id, err = newID(txn, vertexPrefix); err != nil {
				return err
			}

			if err = txn.Set(keyIndexKey(vertex.Key), id[:]); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		v := *vertex
		v.ID, v.UpdatedAt = id, now
		if err = txn.Set(vertexKey(id), encodeVertex(&v)); err != nil {
			return err
		}

		vertex.ID, vertex.UpdatedAt = id, now

		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert vertex: %w", err)
	}

	return nil
}

// FindVertex performs a vertex lookup by id.
func (s *BadgerGraph) FindVertex(id uuid.UUID) (*graph.Vertex, error) {
	var v *graph.Vertex

	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		v, err = getVertex(txn, id)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find vertex: %w", err)
	}

	return v, nil
}

// Vertices returns an iterator for the set of vertices whose id's belong
// to the [fromID, toID) range.
func (s *BadgerGraph) Vertices(fromID, toID uuid.UUID) (graph.VertexIterator, error) {
	var list []*graph.Vertex

	err := s.db.View(func(txn *badger.Txn) error {
		return scan(txn, vertexPrefix, fromID, toID, func(key, val []byte) error {
			v, err := decodeVertex(key[1:], val)
			if err != nil {
				return err
			}

			list = append(list, v)

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("vertices: %w", err)
	}

	return &vertexIterator{vertices: list}, nil
}

// UpsertEdge creates a new edge or adds the provided weight to an existing
// edge with the same source, destination and label.
func (s *BadgerGraph) UpsertEdge(edge *graph.Edge) error {
	now := time.Now()

	err := s.update(func(txn *badger.Txn) error {
		for _, id := range []uuid.UUID{edge.Src, edge.Dest} {
			if _, err := txn.Get(vertexKey(id)); errors.Is(err, badger.ErrKeyNotFound) {
				return graph.ErrUnknownEdgeVertices
			} else if err != nil {
				return err
			}
		}

		e := *edge
		e.UpdatedAt = now

		item, err := txn.Get(edgeIndexKey(edge.Src, edge.Dest, edge.Label))
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			if e.ID, err = newEdgeID(txn, edge.Src); err != nil {
				return err
			}

			if err = txn.Set(edgeIndexKey(e.Src, e.Dest, e.Label), e.ID[:]); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err = item.Value(func(val []byte) error {
				e.ID, err = uuid.FromBytes(val)

				return err
			}); err != nil {
				return err
			}

			existing, err := getEdge(txn, e.Src, e.ID)
			if err != nil {
				return err
			}

			e.Weight += existing.Weight
		}

		if err = txn.Set(edgeKey(e.Src, e.ID), encodeEdge(&e)); err != nil {
			return err
		}

		*edge = e

		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert edge: %w", err)
	}

	return nil
}

// Edges returns an iterator for the set of edges whose source vertex id's
// belong to the [fromID, toID) range.
func (s *BadgerGraph) Edges(fromID, toID uuid.UUID) (graph.EdgeIterator, error) {
	var list []*graph.Edge

	err := s.db.View(func(txn *badger.Txn) error {
		return scan(txn, edgePrefix, fromID, toID, func(key, val []byte) error {
			e, err := decodeEdge(key[1:], val)
			if err != nil {
				return err
			}

			list = append(list, e)

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}

	return &edgeIterator{edges: list}, nil
}

// UpdateLabel assigns a new partition label to an existing vertex.
func (s *BadgerGraph) UpdateLabel(id uuid.UUID, label int64) error {
	err := s.update(func(txn *badger.Txn) error {
		v, err := getVertex(txn, id)
		if err != nil {
			return err
		}

		v.Label, v.UpdatedAt = label, time.Now()

		return txn.Set(vertexKey(id), encodeVertex(v))
	})
	if err != nil {
		return fmt.Errorf("update label: %w", err)
	}

	return nil
}

// update runs fn in a read-write transaction, retrying it when it
// conflicts with a concurrent transaction.
func (s *BadgerGraph) update(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err = s.db.Update(fn); !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}

	return err
}

func (s *BadgerGraph) lookupKey(txn *badger.Txn, key string) (uuid.UUID, error) {
	item, err := txn.Get(keyIndexKey(key))
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = item.Value(func(val []byte) error {
		id, err = uuid.FromBytes(val)

		return err
	})

	return id, err
}

// scan visits every record of prefix whose leading id is in [fromID, toID).
func scan(txn *badger.Txn, prefix byte, fromID, toID uuid.UUID, visit func(key, val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte{prefix}

	it := txn.NewIterator(opts)
	defer it.Close()

	end := append([]byte{prefix}, toID[:]...)
	for it.Seek(append([]byte{prefix}, fromID[:]...)); it.Valid(); it.Next() {
		item := it.Item()
		key := item.KeyCopy(nil)
		if bytes.Compare(key[:len(end)], end) >= 0 {
			break
		}

		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}

		if err = visit(key, val); err != nil {
			return err
		}
	}

	return nil
}

func getVertex(txn *badger.Txn, id uuid.UUID) (*graph.Vertex, error) {
	item, err := txn.Get(vertexKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, graph.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	return decodeVertex(id[:], val)
}

func getEdge(txn *badger.Txn, src, id uuid.UUID) (*graph.Edge, error) {
	item, err := txn.Get(edgeKey(src, id))
	if err != nil {
		return nil, err
	}

	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	return decodeEdge(edgeKey(src, id)[1:], val)
}

func newID(txn *badger.Txn, prefix byte) (uuid.UUID, error) {
	for {
		id := uuid.New()
		_, err := txn.Get(append([]byte{prefix}, id[:]...))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return id, nil
		} else if err != nil {
			return uuid.Nil, err
		}
	}
}

func newEdgeID(txn *badger.Txn, src uuid.UUID) (uuid.UUID, error) {
	for {
		id := uuid.New()
		_, err := txn.Get(edgeKey(src, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return id, nil
		} else if err != nil {
			return uuid.Nil, err
		}
	}
}

func vertexKey(id uuid.UUID) []byte {
	return append([]byte{vertexPrefix}, id[:]...)
}

func keyIndexKey(key string) []byte {
	return append([]byte{keyIndexPrefix}, key...)
}

func edgeKey(src, id uuid.UUID) []byte {
	k := make([]byte, 0, 33)
	k = append(k, edgePrefix)
	k = append(k, src[:]...)

	return append(k, id[:]...)
}

func edgeIndexKey(src, dest uuid.UUID, label string) []byte {
	k := make([]byte, 0, 33+len(label))
	k = append(k, edgeIndexPrefix)
	k = append(k, src[:]...)
	k = append(k, dest[:]...)

	return append(k, label...)
}

func encodeVertex(v *graph.Vertex) []byte {
	buf := make([]byte, 16, 16+len(v.Key))
	binary.BigEndian.PutUint64(buf[0:], uint64(v.Label))
	binary.BigEndian.PutUint64(buf[8:], uint64(v.UpdatedAt.UnixNano()))

	return append(buf, v.Key...)
}

func decodeVertex(id, val []byte) (*graph.Vertex, error) {
	if len(val) < 16 {
		return nil, errors.New("malformed vertex record")
	}

	vertexID, err := uuid.FromBytes(id)
	if err != nil {
		return nil, err
	}

	return &graph.Vertex{
		ID:        vertexID,
		Label:     int64(binary.BigEndian.Uint64(val[0:])),
		UpdatedAt: time.Unix(0, int64(binary.BigEndian.Uint64(val[8:]))),
		Key:       string(val[16:]),
	}, nil
}

func encodeEdge(e *graph.Edge) []byte {
	buf := make([]byte, 32, 32+len(e.Label))
	copy(buf, e.Dest[:])
	binary.BigEndian.PutUint64(buf[16:], uint64(e.Weight))
	binary.BigEndian.PutUint64(buf[24:], uint64(e.UpdatedAt.UnixNano()))

	return append(buf, e.Label...)
}

// decodeEdge decodes an edge record. ids holds the source and edge id.
func decodeEdge(ids, val []byte) (*graph.Edge, error) {
	if len(ids) != 32 || len(val) < 32 {
		return nil, errors.New("malformed edge record")
	}

	e := &graph.Edge{
		Weight:    int64(binary.BigEndian.Uint64(val[16:])),
		UpdatedAt: time.Unix(0, int64(binary.BigEndian.Uint64(val[24:]))),
		Label:     string(val[32:]),
	}

	copy(e.Src[:], ids[:16])
	copy(e.ID[:], ids[16:])
	copy(e.Dest[:], val[:16])

	return e, nil
}
