package rpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mycok/uPartition/cograph/graph"
	"github.com/mycok/uPartition/cograph/store/api/rpc/cographproto"
)

var _ cographproto.CoGraphServer = (*GraphServer)(nil)

// GraphServer exposes a co-occurrence graph through the CoGraph gRPC
// service.
type GraphServer struct {
	// Any concrete type that satisfies the graph.Graph interface.
	g graph.Graph
	cographproto.UnimplementedCoGraphServer
}

// NewGraphServer returns a new server instance that uses the provided
// graph as its backing store.
func NewGraphServer(g graph.Graph) *GraphServer {
	return &GraphServer{g: g}
}

// UpsertVertex creates a new vertex or updates the label of an existing one.
func (s *GraphServer) UpsertVertex(
	_ context.Context, req *cographproto.Vertex,
) (*cographproto.Vertex, error) {

	v, err := vertexFromProto(req)
	if err != nil {
		return nil, err
	}

	if err = s.g.UpsertVertex(v); err != nil {
		return nil, toStatus(err)
	}

	return vertexToProto(v), nil
}

// FindVertex performs a vertex lookup by id.
func (s *GraphServer) FindVertex(
	_ context.Context, req *cographproto.VertexID,
) (*cographproto.Vertex, error) {

	id, err := uuidFromBytes("uuid", req.Uuid)
	if err != nil {
		return nil, err
	}

	v, err := s.g.FindVertex(id)
	if err != nil {
		return nil, toStatus(err)
	}

	return vertexToProto(v), nil
}

// UpsertEdge creates a new edge or accumulates the weight of an existing
// one.
func (s *GraphServer) UpsertEdge(
	_ context.Context, req *cographproto.Edge,
) (*cographproto.Edge, error) {

	e, err := edgeFromProto(req)
	if err != nil {
		return nil, err
	}

	if err = s.g.UpsertEdge(e); err != nil {
		return nil, toStatus(err)
	}

	return edgeToProto(e), nil
}

// UpdateLabel assigns a new partition label to an existing vertex.
func (s *GraphServer) UpdateLabel(
	_ context.Context, req *cographproto.UpdateLabelRequest,
) (*emptypb.Empty, error) {

	id, err := uuidFromBytes("uuid", req.Uuid)
	if err != nil {
		return nil, err
	}

	if err = s.g.UpdateLabel(id, req.Label); err != nil {
		return nil, toStatus(err)
	}

	return new(emptypb.Empty), nil
}

// Vertices streams the set of vertices in the specified ID range.
func (s *GraphServer) Vertices(
	idRange *cographproto.Range, stream cographproto.CoGraph_VerticesServer,
) error {

	fromID, toID, err := rangeFromProto(idRange)
	if err != nil {
		return err
	}

	it, err := s.g.Vertices(fromID, toID)
	if err != nil {
		return err
	}
	defer func() { _ = it.Close() }()

	for it.Next() {
		if err := stream.Send(vertexToProto(it.Vertex())); err != nil {
			return err
		}
	}

	if err = it.Error(); err != nil {
		return err
	}

	return it.Close()
}

// Edges streams the set of edges whose source vertex is in the specified ID
// range.
func (s *GraphServer) Edges(
	idRange *cographproto.Range, stream cographproto.CoGraph_EdgesServer,
) error {

	fromID, toID, err := rangeFromProto(idRange)
	if err != nil {
		return err
	}

	it, err := s.g.Edges(fromID, toID)
	if err != nil {
		return err
	}
	defer func() { _ = it.Close() }()

	for it.Next() {
		if err := stream.Send(edgeToProto(it.Edge())); err != nil {
			return err
		}
	}

	if err = it.Error(); err != nil {
		return err
	}

	return it.Close()
}

func vertexToProto(v *graph.Vertex) *cographproto.Vertex {
	return &cographproto.Vertex{
		Uuid:      v.ID[:],
		Key:       v.Key,
		Label:     v.Label,
		UpdatedAt: timeToProto(v.UpdatedAt),
	}
}

func vertexFromProto(msg *cographproto.Vertex) (*graph.Vertex, error) {
	var (
		v   = &graph.Vertex{Key: msg.Key, Label: msg.Label}
		err error
	)

	if v.ID, err = uuidFromBytes("uuid", msg.Uuid); err != nil {
		return nil, err
	}

	if v.UpdatedAt, err = timeFromProto("updated_at", msg.UpdatedAt); err != nil {
		return nil, err
	}

	return v, nil
}

func edgeToProto(e *graph.Edge) *cographproto.Edge {
	return &cographproto.Edge{
		Uuid:      e.ID[:],
		SrcUuid:   e.Src[:],
		DestUuid:  e.Dest[:],
		Label:     e.Label,
		Weight:    e.Weight,
		UpdatedAt: timeToProto(e.UpdatedAt),
	}
}

func edgeFromProto(msg *cographproto.Edge) (*graph.Edge, error) {
	var (
		e   = &graph.Edge{Label: msg.Label, Weight: msg.Weight}
		err error
	)

	if e.ID, err = uuidFromBytes("uuid", msg.Uuid); err != nil {
		return nil, err
	}

	if e.Src, err = uuidFromBytes("src_uuid", msg.SrcUuid); err != nil {
		return nil, err
	}

	if e.Dest, err = uuidFromBytes("dest_uuid", msg.DestUuid); err != nil {
		return nil, err
	}

	if e.UpdatedAt, err = timeFromProto("updated_at", msg.UpdatedAt); err != nil {
		return nil, err
	}

	return e, nil
}

func rangeFromProto(idRange *cographproto.Range) (fromID, toID uuid.UUID, err error) {
	if fromID, err = uuidFromBytes("from_uuid", idRange.FromUuid); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	if toID, err = uuidFromBytes("to_uuid", idRange.ToUuid); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return fromID, toID, nil
}

// uuidFromBytes treats an empty field as uuid.Nil.
func uuidFromBytes(field string, b []byte) (uuid.UUID, error) {
	if len(b) == 0 {
		return uuid.Nil, nil
	}

	id, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "field %q: %v", field, err)
	}

	return id, nil
}

// timeToProto leaves zero times unset.
func timeToProto(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}

	return timestamppb.New(t)
}

func timeFromProto(field string, ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, nil
	}

	if err := ts.CheckValid(); err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "field %q: %v", field, err)
	}

	return ts.AsTime(), nil
}
