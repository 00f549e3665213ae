package cdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mycok/uPartition/cograph/graph"
)

var (
	upsertVertexQuery = `
					INSERT INTO vertices (key, label, updated_at)
					VALUES ($1, $2, NOW())
					ON CONFLICT (key)
					DO UPDATE SET label=$2, updated_at=NOW()
					RETURNING id, updated_at
					`
	findVertexQuery = "SELECT id, key, label, updated_at FROM vertices WHERE id=$1"

	partitionedVerticesQuery = `
							SELECT id, key, label, updated_at FROM vertices
							WHERE id >= $1 AND id < $2
							`

	updateLabelQuery = "UPDATE vertices SET label=$2, updated_at=NOW() WHERE id=$1"

	upsertEdgeQuery = `
					INSERT INTO edges (src, dest, label, weight, updated_at)
					VALUES ($1, $2, $3, $4, NOW())
					ON CONFLICT (src, dest, label)
					DO UPDATE SET weight=edges.weight + $4, updated_at=NOW()
					RETURNING id, weight, updated_at
					`
	partitionedEdgesQuery = `
							SELECT id, src, dest, label, weight, updated_at FROM edges
							WHERE src >= $1 AND src < $2
							`
)

// Static and compile-time check to ensure CockroachDBGraph implements
// Graph interface.
var _ graph.Graph = (*CockroachDBGraph)(nil)

// CockroachDBGraph implements a persistent co-occurrence graph using a
// CockroachDB instance.
type CockroachDBGraph struct {
	db *sql.DB
}

// NewCockroachDBGraph returns a CockroachDBGraph instance.
func NewCockroachDBGraph(dsn string) (*CockroachDBGraph, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &CockroachDBGraph{db}, nil
}

// Close terminates the connection to the cockroachDB instance.
func (s *CockroachDBGraph) Close() error {
	return s.db.Close()
}

// UpsertVertex creates a new vertex or updates the label of an existing
// vertex with the same key.
func (s *CockroachDBGraph) UpsertVertex(vertex *graph.Vertex) error {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := s.db.QueryRowContext(
		ctx, upsertVertexQuery, vertex.Key, vertex.Label,
	).Scan(&vertex.ID, &vertex.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert vertex: %w", err)
	}

	vertex.UpdatedAt = vertex.UpdatedAt.UTC()

	return nil
}

// FindVertex performs a vertex lookup by id.
func (s *CockroachDBGraph) FindVertex(id uuid.UUID) (*graph.Vertex, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	v := new(graph.Vertex)

	err := s.db.QueryRowContext(ctx, findVertexQuery, id).Scan(
		&v.ID, &v.Key, &v.Label, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find vertex: %w", graph.ErrNotFound)
		}

		return nil, fmt.Errorf("find vertex: %w", err)
	}

	v.UpdatedAt = v.UpdatedAt.UTC()

	return v, nil
}

// Vertices returns an iterator for the set of vertices whose id's belong
// to the [fromID, toID) range.
func (s *CockroachDBGraph) Vertices(fromID, toID uuid.UUID) (graph.VertexIterator, error) {
	rows, err := s.db.Query(partitionedVerticesQuery, fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("vertices: %w", err)
	}

	return &vertexIterator{rows: rows}, nil
}

// UpdateLabel assigns a new partition label to an existing vertex.
func (s *CockroachDBGraph) UpdateLabel(id uuid.UUID, label int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	res, err := s.db.ExecContext(ctx, updateLabelQuery, id, label)
	if err != nil {
		return fmt.Errorf("update label: %w", err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("update label: %w", err)
	} else if n == 0 {
		return fmt.Errorf("update label: %w", graph.ErrNotFound)
	}

	return nil
}

// UpsertEdge creates a new edge or adds the provided weight to an existing
// edge with the same source, destination and label.
func (s *CockroachDBGraph) UpsertEdge(edge *graph.Edge) error {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := s.db.QueryRowContext(
		ctx, upsertEdgeQuery, edge.Src, edge.Dest, edge.Label, edge.Weight,
	).Scan(&edge.ID, &edge.Weight, &edge.UpdatedAt)
	if err != nil {
		if isForeignKeyViolationError(err) {
			err = graph.ErrUnknownEdgeVertices
		}

		return fmt.Errorf("upsert edge: %w", err)
	}

	edge.UpdatedAt = edge.UpdatedAt.UTC()

	return nil
}

// Edges returns an iterator for the set of edges whose source vertex id's
// belong to the [fromID, toID) range.
func (s *CockroachDBGraph) Edges(fromID, toID uuid.UUID) (graph.EdgeIterator, error) {
	rows, err := s.db.Query(partitionedEdgesQuery, fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}

	return &edgeIterator{rows: rows}, nil
}

// isForeignKeyViolationError returns true if error is a foreign key
// constraint violation error.
func isForeignKeyViolationError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code.Name() == "foreign_key_violation"
}
