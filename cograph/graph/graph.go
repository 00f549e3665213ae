/*
	graph package defines types that outline the behavior of co-occurrence
	graph data stores. Vertices carry the partition label assigned to them
	and edges count how many times two vertices were accessed together.
*/

package graph

import (
	"time"

	"github.com/google/uuid"
)

// Graph should be implemented by co-occurrence graph data stores / types.
type Graph interface {
	// UpsertVertex creates a new vertex or updates the label of an
	// existing vertex with the same key.
	UpsertVertex(vertex *Vertex) error

	// FindVertex performs a vertex lookup by id.
	FindVertex(id uuid.UUID) (*Vertex, error)

	// Vertices returns an iterator for the set of vertices whose id's
	// belong to the [fromID, toID) range.
	Vertices(fromID, toID uuid.UUID) (VertexIterator, error)

	// UpsertEdge creates a new edge or, if an edge with the same source,
	// destination and label exists, adds the provided weight to it.
	UpsertEdge(edge *Edge) error

	// Edges returns an iterator for the set of edges whose source vertex
	// id's belong to the [fromID, toID) range.
	Edges(fromID, toID uuid.UUID) (EdgeIterator, error)

	// UpdateLabel assigns a new partition label to an existing vertex.
	UpdateLabel(id uuid.UUID, label int64) error
}

// VertexIterator is implemented by types that iterate graph vertices.
type VertexIterator interface {
	Iterator

	// Vertex returns the currently fetched vertex object.
	Vertex() *Vertex
}

// EdgeIterator is implemented by types that iterate graph edges.
type EdgeIterator interface {
	Iterator

	// Edge returns the currently fetched Edge object.
	Edge() *Edge
}

// Iterator should be embedded / implemented by types that require
// iteration functionality.
type Iterator interface {
	// Next loads the next item, returns false when no more items
	// are available or when an error occurs.
	Next() bool

	// Error returns the last error encountered by the iterator.
	Error() error

	// Close releases any resources allocated to the iterator.
	Close() error
}

// Vertex represents an item whose accesses are tracked by the graph.
type Vertex struct {
	ID        uuid.UUID // Vertex unique identifier
	Key       string    // External identity of the tracked item
	Label     int64     // Partition the vertex is currently assigned to
	UpdatedAt time.Time // Last label update timestamp
}

// Edge represents a co-occurrence relation that originates from Src and
// terminates at Dest.
type Edge struct {
	ID        uuid.UUID // Edge unique identifier
	Src       uuid.UUID // Source vertex ID
	Dest      uuid.UUID // Destination vertex ID
	Label     string    // Relation type, e.g. queriedTogether
	Weight    int64     // Number of recorded co-occurrences
	UpdatedAt time.Time // Last updated timestamp
}
