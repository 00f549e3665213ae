package kv

import "github.com/mycok/uPartition/cograph/graph"

var (
	_ graph.VertexIterator = (*vertexIterator)(nil)
	_ graph.EdgeIterator   = (*edgeIterator)(nil)
)

// vertexIterator iterates a snapshot of the vertices of a range.
type vertexIterator struct {
	vertices     []*graph.Vertex
	currentIndex int
}

func (i *vertexIterator) Next() bool {
	if i.currentIndex >= len(i.vertices) {
		return false
	}

	i.currentIndex++

	return true
}

func (i *vertexIterator) Error() error { return nil }

func (i *vertexIterator) Close() error { return nil }

func (i *vertexIterator) Vertex() *graph.Vertex {
	return i.vertices[i.currentIndex-1]
}

// edgeIterator iterates a snapshot of the edges of a range.
type edgeIterator struct {
	edges        []*graph.Edge
	currentIndex int
}

func (i *edgeIterator) Next() bool {
	if i.currentIndex >= len(i.edges) {
		return false
	}

	i.currentIndex++

	return true
}

func (i *edgeIterator) Error() error { return nil }

func (i *edgeIterator) Close() error { return nil }

func (i *edgeIterator) Edge() *graph.Edge {
	return i.edges[i.currentIndex-1]
}
