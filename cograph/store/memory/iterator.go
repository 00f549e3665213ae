package memory

import "github.com/mycok/uPartition/cograph/graph"

// Static and compile-time check to ensure both iterators implement their
// graph interfaces.
var (
	_ graph.VertexIterator = (*vertexIterator)(nil)
	_ graph.EdgeIterator   = (*edgeIterator)(nil)
)

// vertexIterator is a graph.VertexIterator implementation for the in-memory
// graph.
type vertexIterator struct {
	store        *InMemoryGraph // Provides access to the store mutex object.
	vertices     []*graph.Vertex
	currentIndex int
}

// Next loads the next item, returns false when no more vertices are
// available.
func (i *vertexIterator) Next() bool {
	if i.currentIndex >= len(i.vertices) {
		return false
	}

	i.currentIndex++

	return true
}

func (i *vertexIterator) Error() error { return nil }

func (i *vertexIterator) Close() error { return nil }

// Vertex returns a copy of the currently fetched vertex.
func (i *vertexIterator) Vertex() *graph.Vertex {
	// Labels may be updated while the iterator is in use.
	i.store.mu.RLock()
	defer i.store.mu.RUnlock()

	v := new(graph.Vertex)
	*v = *i.vertices[i.currentIndex-1]

	return v
}

// edgeIterator is a graph.EdgeIterator implementation for the in-memory
// graph.
type edgeIterator struct {
	store        *InMemoryGraph
	edges        []*graph.Edge
	currentIndex int
}

// Next advances the iterator.
func (i *edgeIterator) Next() bool {
	if i.currentIndex >= len(i.edges) {
		return false
	}

	i.currentIndex++

	return true
}

func (i *edgeIterator) Error() error { return nil }

func (i *edgeIterator) Close() error { return nil }

// Edge returns a copy of the currently fetched edge.
func (i *edgeIterator) Edge() *graph.Edge {
	i.store.mu.RLock()
	defer i.store.mu.RUnlock()

	e := new(graph.Edge)
	*e = *i.edges[i.currentIndex-1]

	return e
}
