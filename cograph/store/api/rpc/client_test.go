package rpc_test

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/cograph/graph"
	"github.com/mycok/uPartition/cograph/store/api/rpc"
	"github.com/mycok/uPartition/cograph/store/api/rpc/cographproto"
	"github.com/mycok/uPartition/cograph/store/api/rpc/mocks"
)

var _ = check.Suite(new(ClientTestSuite))

var (
	minUUID = uuid.Nil
	maxUUID = uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
)

type ClientTestSuite struct{}

func (s *ClientTestSuite) TestUpsertVertex(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockCoGraphClient(ctrl)
	assignedID := uuid.New()
	now := time.Now().Truncate(time.Second).UTC()

	rpcClient.EXPECT().UpsertVertex(
		gomock.AssignableToTypeOf(context.TODO()),
		&cographproto.Vertex{
			Uuid:  uuid.Nil[:],
			Key:   "item-1",
			Label: 9,
		},
	).Return(&cographproto.Vertex{
		Uuid:      assignedID[:],
		Key:       "item-1",
		Label:     9,
		UpdatedAt: timestamppb.New(now),
	}, nil)

	v := &graph.Vertex{Key: "item-1", Label: 9}
	client := rpc.NewGraphClient(context.TODO(), rpcClient)
	c.Assert(client.UpsertVertex(v), check.IsNil)
	c.Assert(v.ID, check.Equals, assignedID)
	c.Assert(v.Label, check.Equals, int64(9))
	c.Assert(v.UpdatedAt, check.Equals, now)
}

func (s *ClientTestSuite) TestUpsertEdge(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockCoGraphClient(ctrl)

	edge := &graph.Edge{
		Src:    uuid.New(),
		Dest:   uuid.New(),
		Label:  "queriedTogether",
		Weight: 2,
	}
	assignedID := uuid.New()

	rpcClient.EXPECT().UpsertEdge(
		gomock.AssignableToTypeOf(context.TODO()),
		&cographproto.Edge{
			Uuid:     uuid.Nil[:],
			SrcUuid:  edge.Src[:],
			DestUuid: edge.Dest[:],
			Label:    "queriedTogether",
			Weight:   2,
		},
	).Return(&cographproto.Edge{
		Uuid:     assignedID[:],
		SrcUuid:  edge.Src[:],
		DestUuid: edge.Dest[:],
		Label:    "queriedTogether",
		Weight:   5,
	}, nil)

	client := rpc.NewGraphClient(context.TODO(), rpcClient)
	c.Assert(client.UpsertEdge(edge), check.IsNil)
	c.Assert(edge.ID, check.Equals, assignedID)
	c.Assert(edge.Weight, check.Equals, int64(5))
}

func (s *ClientTestSuite) TestUpdateLabel(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockCoGraphClient(ctrl)
	id := uuid.New()

	rpcClient.EXPECT().UpdateLabel(
		gomock.AssignableToTypeOf(context.TODO()),
		&cographproto.UpdateLabelRequest{Uuid: id[:], Label: 4},
	).Return(new(emptypb.Empty), nil)

	client := rpc.NewGraphClient(context.TODO(), rpcClient)
	c.Assert(client.UpdateLabel(id, 4), check.IsNil)
}

func (s *ClientTestSuite) TestStatusCodesMapToStoreErrors(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockCoGraphClient(ctrl)
	rpcClient.EXPECT().FindVertex(gomock.Any(), gomock.Any()).Return(
		nil, status.Error(codes.NotFound, "find vertex: not found"),
	)
	rpcClient.EXPECT().UpsertEdge(gomock.Any(), gomock.Any()).Return(
		nil, status.Error(codes.FailedPrecondition, "upsert edge"),
	)
	rpcClient.EXPECT().UpdateLabel(gomock.Any(), gomock.Any()).Return(
		nil, status.Error(codes.Unavailable, "down"),
	)

	client := rpc.NewGraphClient(context.TODO(), rpcClient)

	_, err := client.FindVertex(uuid.New())
	c.Assert(errors.Is(err, graph.ErrNotFound), check.Equals, true)

	err = client.UpsertEdge(&graph.Edge{Src: uuid.New(), Dest: uuid.New()})
	c.Assert(errors.Is(err, graph.ErrUnknownEdgeVertices), check.Equals, true)

	err = client.UpdateLabel(uuid.New(), 1)
	c.Assert(status.Code(err), check.Equals, codes.Unavailable)
}

func (s *ClientTestSuite) TestVertices(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockCoGraphClient(ctrl)
	stream := mocks.NewMockCoGraph_VerticesClient(ctrl)

	rpcClient.EXPECT().Vertices(
		gomock.AssignableToTypeOf(context.TODO()),
		&cographproto.Range{FromUuid: minUUID[:], ToUuid: maxUUID[:]},
	).Return(stream, nil)

	id1, id2 := uuid.New(), uuid.New()
	gomock.InOrder(
		stream.EXPECT().Recv().Return(&cographproto.Vertex{Uuid: id1[:], Key: "a", Label: 1}, nil),
		stream.EXPECT().Recv().Return(&cographproto.Vertex{Uuid: id2[:], Key: "b", Label: 2}, nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
	)

	client := rpc.NewGraphClient(context.TODO(), rpcClient)
	it, err := client.Vertices(minUUID, maxUUID)
	c.Assert(err, check.IsNil)

	var got []*graph.Vertex
	for it.Next() {
		got = append(got, it.Vertex())
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Next(), check.Equals, false)
	c.Assert(it.Close(), check.IsNil)

	c.Assert(got, check.HasLen, 2)
	c.Assert(got[0].ID, check.Equals, id1)
	c.Assert(got[1].Label, check.Equals, int64(2))
}

func (s *ClientTestSuite) TestEdgesStreamError(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockCoGraphClient(ctrl)
	stream := mocks.NewMockCoGraph_EdgesClient(ctrl)

	rpcClient.EXPECT().Edges(gomock.Any(), gomock.Any()).Return(stream, nil)

	id, src, dest := uuid.New(), uuid.New(), uuid.New()
	gomock.InOrder(
		stream.EXPECT().Recv().Return(&cographproto.Edge{
			Uuid:     id[:],
			SrcUuid:  src[:],
			DestUuid: dest[:],
			Label:    "queriedTogether",
			Weight:   12,
		}, nil),
		stream.EXPECT().Recv().Return(nil, status.Error(codes.Internal, "boom")),
	)

	client := rpc.NewGraphClient(context.TODO(), rpcClient)
	it, err := client.Edges(minUUID, maxUUID)
	c.Assert(err, check.IsNil)

	c.Assert(it.Next(), check.Equals, true)
	c.Assert(it.Edge().Src, check.Equals, src)
	c.Assert(it.Edge().Dest, check.Equals, dest)
	c.Assert(it.Edge().Weight, check.Equals, int64(12))

	c.Assert(it.Next(), check.Equals, false)
	c.Assert(status.Code(it.Error()), check.Equals, codes.Internal)

	// The iterator stays exhausted.
	c.Assert(it.Next(), check.Equals, false)
	c.Assert(it.Close(), check.IsNil)
}

func (s *ClientTestSuite) TestMalformedStreamedVertexStopsIteration(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockCoGraphClient(ctrl)
	stream := mocks.NewMockCoGraph_VerticesClient(ctrl)

	rpcClient.EXPECT().Vertices(gomock.Any(), gomock.Any()).Return(stream, nil)
	stream.EXPECT().Recv().Return(&cographproto.Vertex{Uuid: []byte{0xff}}, nil)

	client := rpc.NewGraphClient(context.TODO(), rpcClient)
	it, err := client.Vertices(minUUID, maxUUID)
	c.Assert(err, check.IsNil)

	c.Assert(it.Next(), check.Equals, false)
	c.Assert(status.Code(it.Error()), check.Equals, codes.InvalidArgument)
	c.Assert(it.Next(), check.Equals, false)
}
