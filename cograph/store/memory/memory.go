package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mycok/uPartition/cograph/graph"
)

// Static and compile-time check to ensure InMemoryGraph implements
// Graph interface.
var _ graph.Graph = (*InMemoryGraph)(nil)

// edgeList contains the slice of edge UUIDs that originate from a vertex in
// the graph.
type edgeList []uuid.UUID

// InMemoryGraph implements an in-memory co-occurrence graph that can be
// concurrently accessed by multiple clients.
type InMemoryGraph struct {
	mu              sync.RWMutex
	vertices        map[uuid.UUID]*graph.Vertex
	edges           map[uuid.UUID]*graph.Edge
	vertexKeyIndex  map[string]*graph.Vertex
	vertexToEdgeMap map[uuid.UUID]edgeList // Maps vertices to edges originating from them.
}

// NewInMemoryGraph creates a new in-memory co-occurrence graph.
func NewInMemoryGraph() *InMemoryGraph {
	return &InMemoryGraph{
		vertices:        make(map[uuid.UUID]*graph.Vertex),
		edges:           make(map[uuid.UUID]*graph.Edge),
		vertexKeyIndex:  make(map[string]*graph.Vertex),
		vertexToEdgeMap: make(map[uuid.UUID]edgeList),
	}
}

// UpsertVertex creates a new vertex or updates the label of an existing
// vertex with the same key.
func (s *InMemoryGraph) UpsertVertex(vertex *graph.Vertex) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vertex.UpdatedAt = time.Now()

	// A vertex with the same key turns the operation into an update that
	// keeps the existing ID.
	if v, exists := s.vertexKeyIndex[vertex.Key]; exists {
		vertex.ID = v.ID
		*v = *vertex

		return nil
	}

	for {
		vertex.ID = uuid.New()
		if _, exists := s.vertices[vertex.ID]; !exists {
			break
		}
	}

	// Keep a private copy so that callers can't mutate the stored vertex.
	vCopy := new(graph.Vertex)
	*vCopy = *vertex

	s.vertices[vCopy.ID] = vCopy
	s.vertexKeyIndex[vCopy.Key] = vCopy

	return nil
}

// FindVertex performs a vertex lookup by id.
func (s *InMemoryGraph) FindVertex(id uuid.UUID) (*graph.Vertex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.vertices[id]
	if !exists {
		return nil, fmt.Errorf("find vertex: %w", graph.ErrNotFound)
	}

	vCopy := new(graph.Vertex)
	*vCopy = *v

	return vCopy, nil
}

// Vertices returns an iterator for the set of vertices whose id's belong
// to the [fromID, toID) range.
func (s *InMemoryGraph) Vertices(fromID, toID uuid.UUID) (graph.VertexIterator, error) {
	from := fromID.String()
	to := toID.String()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []*graph.Vertex
	for id, vertex := range s.vertices {
		if idString := id.String(); idString >= from && idString < to {
			list = append(list, vertex)
		}
	}

	return &vertexIterator{store: s, vertices: list}, nil
}

// UpsertEdge creates a new edge or adds the provided weight to an existing
// edge with the same source, destination and label.
func (s *InMemoryGraph) UpsertEdge(edge *graph.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, isSrcExists := s.vertices[edge.Src]
	_, isDestExists := s.vertices[edge.Dest]
	if !isSrcExists || !isDestExists {
		return fmt.Errorf("upsert edge: %w", graph.ErrUnknownEdgeVertices)
	}

	for _, edgeID := range s.vertexToEdgeMap[edge.Src] {
		existingEdge := s.edges[edgeID]
		if existingEdge.Dest == edge.Dest && existingEdge.Label == edge.Label {
			existingEdge.Weight += edge.Weight
			existingEdge.UpdatedAt = time.Now()

			// The caller observes the accumulated weight and the ID of the
			// existing edge.
			*edge = *existingEdge

			return nil
		}
	}

	for {
		edge.ID = uuid.New()
		if _, exists := s.edges[edge.ID]; !exists {
			break
		}
	}

	edge.UpdatedAt = time.Now()
	eCopy := new(graph.Edge)
	*eCopy = *edge

	s.edges[eCopy.ID] = eCopy
	s.vertexToEdgeMap[eCopy.Src] = append(s.vertexToEdgeMap[eCopy.Src], eCopy.ID)

	return nil
}

// Edges returns an iterator for the set of edges whose source vertex id's
// belong to the [fromID, toID) range.
func (s *InMemoryGraph) Edges(fromID, toID uuid.UUID) (graph.EdgeIterator, error) {
	from := fromID.String()
	to := toID.String()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []*graph.Edge
	for id := range s.vertices {
		if vertexID := id.String(); vertexID < from || vertexID >= to {
			continue
		}

		for _, edgeID := range s.vertexToEdgeMap[id] {
			list = append(list, s.edges[edgeID])
		}
	}

	return &edgeIterator{store: s, edges: list}, nil
}

// UpdateLabel assigns a new partition label to an existing vertex.
func (s *InMemoryGraph) UpdateLabel(id uuid.UUID, label int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.vertices[id]
	if !exists {
		return fmt.Errorf("update label: %w", graph.ErrNotFound)
	}

	v.Label = label
	v.UpdatedAt = time.Now()

	return nil
}
