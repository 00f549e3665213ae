package rpc

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/mycok/uPartition/cograph/graph"
	"github.com/mycok/uPartition/cograph/store/api/rpc/cographproto"
)

// Static and compile-time check to ensure GraphClient implements the
// graph.Graph interface.
var _ graph.Graph = (*GraphClient)(nil)

// GraphClient provides an API that wraps the graph.Graph interface for
// accessing graph data store instances exposed by a remote gRPC server.
type GraphClient struct {
	ctx       context.Context
	rpcClient cographproto.CoGraphClient
}

// NewGraphClient configures and returns a GraphClient instance.
func NewGraphClient(
	ctx context.Context, rpcClient cographproto.CoGraphClient,
) *GraphClient {

	return &GraphClient{
		ctx:       ctx,
		rpcClient: rpcClient,
	}
}

// UpsertVertex creates a new vertex or updates the label of an existing
// vertex with the same key.
func (c *GraphClient) UpsertVertex(vertex *graph.Vertex) error {
	result, err := c.rpcClient.UpsertVertex(c.ctx, vertexToProto(vertex))
	if err != nil {
		return fromStatus(err)
	}

	v, err := vertexFromProto(result)
	if err != nil {
		return err
	}

	*vertex = *v

	return nil
}

// FindVertex performs a vertex lookup by id.
func (c *GraphClient) FindVertex(id uuid.UUID) (*graph.Vertex, error) {
	result, err := c.rpcClient.FindVertex(c.ctx, &cographproto.VertexID{Uuid: id[:]})
	if err != nil {
		return nil, fromStatus(err)
	}

	return vertexFromProto(result)
}

// Vertices returns an iterator for the set of vertices whose id's belong
// to the [fromID, toID) range.
func (c *GraphClient) Vertices(fromID, toID uuid.UUID) (graph.VertexIterator, error) {
	req := &cographproto.Range{
		FromUuid: fromID[:],
		ToUuid:   toID[:],
	}

	ctx, cancel := context.WithCancel(c.ctx)
	stream, err := c.rpcClient.Vertices(ctx, req)
	if err != nil {
		cancel()

		return nil, err
	}

	return &vertexIterator{stream: stream, cancelFn: cancel}, nil
}

// UpsertEdge creates a new edge or adds the provided weight to an existing
// edge with the same source, destination and label.
func (c *GraphClient) UpsertEdge(edge *graph.Edge) error {
	result, err := c.rpcClient.UpsertEdge(c.ctx, edgeToProto(edge))
	if err != nil {
		return fromStatus(err)
	}

	e, err := edgeFromProto(result)
	if err != nil {
		return err
	}

	*edge = *e

	return nil
}

// Edges returns an iterator for the set of edges whose source vertex id's
// belong to the [fromID, toID) range.
func (c *GraphClient) Edges(fromID, toID uuid.UUID) (graph.EdgeIterator, error) {
	req := &cographproto.Range{
		FromUuid: fromID[:],
		ToUuid:   toID[:],
	}

	ctx, cancel := context.WithCancel(c.ctx)
	stream, err := c.rpcClient.Edges(ctx, req)
	if err != nil {
		cancel()

		return nil, err
	}

	return &edgeIterator{stream: stream, cancelFn: cancel}, nil
}

// UpdateLabel assigns a new partition label to an existing vertex.
func (c *GraphClient) UpdateLabel(id uuid.UUID, label int64) error {
	req := &cographproto.UpdateLabelRequest{
		Uuid:  id[:],
		Label: label,
	}

	if _, err := c.rpcClient.UpdateLabel(c.ctx, req); err != nil {
		return fromStatus(err)
	}

	return nil
}

// streamDone records the outcome of a failed Recv call. io.EOF marks a
// drained stream and is not reported as an error.
func streamDone(err error, cancelFn func()) error {
	cancelFn()

	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

type vertexIterator struct {
	stream   cographproto.CoGraph_VerticesClient
	vertex   *graph.Vertex
	done     bool
	lastErr  error
	cancelFn func()
}

// Next loads the next vertex, returns false when no more vertices are
// available or when an error occurs.
func (i *vertexIterator) Next() bool {
	if i.done {
		return false
	}

	result, err := i.stream.Recv()
	if err != nil {
		i.done = true
		i.lastErr = streamDone(err, i.cancelFn)

		return false
	}

	if i.vertex, i.lastErr = vertexFromProto(result); i.lastErr != nil {
		i.done = true
		i.cancelFn()

		return false
	}

	return true
}

// Error returns the last error encountered by the iterator.
func (i *vertexIterator) Error() error {
	return i.lastErr
}

// Close releases any resources allocated to the iterator.
func (i *vertexIterator) Close() error {
	i.cancelFn()

	return nil
}

// Vertex returns the currently fetched vertex object.
func (i *vertexIterator) Vertex() *graph.Vertex {
	return i.vertex
}

type edgeIterator struct {
	stream   cographproto.CoGraph_EdgesClient
	edge     *graph.Edge
	done     bool
	lastErr  error
	cancelFn func()
}

// Next loads the next edge, returns false when no more edges are available
// or when an error occurs.
func (i *edgeIterator) Next() bool {
	if i.done {
		return false
	}

	result, err := i.stream.Recv()
	if err != nil {
		i.done = true
		i.lastErr = streamDone(err, i.cancelFn)

		return false
	}

	if i.edge, i.lastErr = edgeFromProto(result); i.lastErr != nil {
		i.done = true
		i.cancelFn()

		return false
	}

	return true
}

// Error returns the last error recorded by the iterator.
func (i *edgeIterator) Error() error {
	return i.lastErr
}

// Close releases any resources allocated to the iterator.
func (i *edgeIterator) Close() error {
	i.cancelFn()

	return nil
}

// Edge returns the currently fetched edge object.
func (i *edgeIterator) Edge() *graph.Edge {
	return i.edge
}
