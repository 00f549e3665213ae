package cdb

import (
	"database/sql"
	"fmt"

	"github.com/mycok/uPartition/cograph/graph"
)

// Static and compile-time check to ensure both iterators implement their
// graph interfaces.
var (
	_ graph.VertexIterator = (*vertexIterator)(nil)
	_ graph.EdgeIterator   = (*edgeIterator)(nil)
)

// vertexIterator is a graph.VertexIterator implementation that wraps the
// rows returned by a vertex range query.
type vertexIterator struct {
	rows    *sql.Rows
	lastErr error
	vertex  *graph.Vertex
}

// Next loads the next item, returns false when no more vertices are
// available or when an error occurs.
func (i *vertexIterator) Next() bool {
	if i.lastErr != nil || !i.rows.Next() {
		return false
	}

	v := new(graph.Vertex)
	if i.lastErr = i.rows.Scan(&v.ID, &v.Key, &v.Label, &v.UpdatedAt); i.lastErr != nil {
		return false
	}

	v.UpdatedAt = v.UpdatedAt.UTC()
	i.vertex = v

	return true
}

// Error returns the last error encountered by the iterator.
func (i *vertexIterator) Error() error {
	if i.lastErr != nil {
		return i.lastErr
	}

	return i.rows.Err()
}

// Close releases any resources allocated to the iterator.
func (i *vertexIterator) Close() error {
	if err := i.rows.Close(); err != nil {
		return fmt.Errorf("vertex iterator: %w", err)
	}

	return nil
}

// Vertex returns the currently fetched vertex object.
func (i *vertexIterator) Vertex() *graph.Vertex {
	return i.vertex
}

// edgeIterator is a graph.EdgeIterator implementation that wraps the rows
// returned by an edge range query.
type edgeIterator struct {
	rows    *sql.Rows
	lastErr error
	edge    *graph.Edge
}

// Next advances the iterator.
func (i *edgeIterator) Next() bool {
	if i.lastErr != nil || !i.rows.Next() {
		return false
	}

	e := new(graph.Edge)
	if i.lastErr = i.rows.Scan(
		&e.ID, &e.Src, &e.Dest, &e.Label, &e.Weight, &e.UpdatedAt,
	); i.lastErr != nil {

		return false
	}

	e.UpdatedAt = e.UpdatedAt.UTC()
	i.edge = e

	return true
}

// Error returns the last error recorded by the iterator.
func (i *edgeIterator) Error() error {
	if i.lastErr != nil {
		return i.lastErr
	}

	return i.rows.Err()
}

// Close releases any resources linked to the iterator.
func (i *edgeIterator) Close() error {
	if err := i.rows.Close(); err != nil {
		return fmt.Errorf("edge iterator: %w", err)
	}

	return nil
}

// Edge returns the currently fetched edge object.
func (i *edgeIterator) Edge() *graph.Edge {
	return i.edge
}
