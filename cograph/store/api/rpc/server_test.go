package rpc_test

import (
	"context"
	"net"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/cograph/graph/graphtest"
	"github.com/mycok/uPartition/cograph/store/api/rpc"
	"github.com/mycok/uPartition/cograph/store/api/rpc/cographproto"
	"github.com/mycok/uPartition/cograph/store/memory"
)

var _ = check.Suite(new(ServerTestSuite))

// ServerTestSuite runs the store conformance tests against a GraphClient
// talking to a GraphServer over an in-memory connection.
type ServerTestSuite struct {
	graphtest.BaseSuite

	netListener *bufconn.Listener
	grpcSrv     *grpc.Server
	clientConn  *grpc.ClientConn
	client      cographproto.CoGraphClient
}

func (s *ServerTestSuite) SetUpTest(c *check.C) {
	s.netListener = bufconn.Listen(1024 * 1024)
	s.grpcSrv = grpc.NewServer()
	cographproto.RegisterCoGraphServer(s.grpcSrv, rpc.NewGraphServer(memory.NewInMemoryGraph()))

	go func() {
		_ = s.grpcSrv.Serve(s.netListener)
	}()

	var err error
	s.clientConn, err = grpc.Dial(
		"bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return s.netListener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	c.Assert(err, check.IsNil)

	s.client = cographproto.NewCoGraphClient(s.clientConn)
	s.SetGraph(rpc.NewGraphClient(context.TODO(), s.client))
}

func (s *ServerTestSuite) TearDownTest(c *check.C) {
	_ = s.clientConn.Close()
	s.grpcSrv.Stop()
	_ = s.netListener.Close()
}

func (s *ServerTestSuite) TestTypedVertexRoundTrip(c *check.C) {
	created, err := s.client.UpsertVertex(context.TODO(), &cographproto.Vertex{
		Key:   "item-42",
		Label: 3,
	})
	c.Assert(err, check.IsNil)
	c.Assert(created.Uuid, check.HasLen, 16)
	c.Assert(created.Key, check.Equals, "item-42")
	c.Assert(created.Label, check.Equals, int64(3))
	c.Assert(created.UpdatedAt.CheckValid(), check.IsNil)

	_, err = s.client.UpdateLabel(context.TODO(), &cographproto.UpdateLabelRequest{
		Uuid:  created.Uuid,
		Label: 7,
	})
	c.Assert(err, check.IsNil)

	found, err := s.client.FindVertex(context.TODO(), &cographproto.VertexID{Uuid: created.Uuid})
	c.Assert(err, check.IsNil)
	c.Assert(found.Uuid, check.DeepEquals, created.Uuid)
	c.Assert(found.Label, check.Equals, int64(7))
}

func (s *ServerTestSuite) TestTypedEdgeRoundTrip(c *check.C) {
	src, err := s.client.UpsertVertex(context.TODO(), &cographproto.Vertex{Key: "a"})
	c.Assert(err, check.IsNil)
	dest, err := s.client.UpsertVertex(context.TODO(), &cographproto.Vertex{Key: "b"})
	c.Assert(err, check.IsNil)

	for i := 0; i < 2; i++ {
		_, err = s.client.UpsertEdge(context.TODO(), &cographproto.Edge{
			SrcUuid:  src.Uuid,
			DestUuid: dest.Uuid,
			Label:    "queriedTogether",
			Weight:   4,
		})
		c.Assert(err, check.IsNil)
	}

	stream, err := s.client.Edges(context.TODO(), &cographproto.Range{
		FromUuid: uuid.Nil[:],
		ToUuid:   maxUUID[:],
	})
	c.Assert(err, check.IsNil)

	edge, err := stream.Recv()
	c.Assert(err, check.IsNil)
	c.Assert(edge.SrcUuid, check.DeepEquals, src.Uuid)
	c.Assert(edge.DestUuid, check.DeepEquals, dest.Uuid)
	c.Assert(edge.Label, check.Equals, "queriedTogether")
	c.Assert(edge.Weight, check.Equals, int64(8))
}

func (s *ServerTestSuite) TestMalformedIDIsRejected(c *check.C) {
	_, err := s.client.FindVertex(context.TODO(), &cographproto.VertexID{Uuid: []byte{0x1, 0x2, 0x3}})
	c.Assert(status.Code(err), check.Equals, codes.InvalidArgument)
}

func (s *ServerTestSuite) TestMalformedRangeIsRejected(c *check.C) {
	stream, err := s.client.Vertices(context.TODO(), &cographproto.Range{
		FromUuid: uuid.Nil[:],
		ToUuid:   []byte("zzz"),
	})
	c.Assert(err, check.IsNil)

	_, err = stream.Recv()
	c.Assert(status.Code(err), check.Equals, codes.InvalidArgument)
}

func (s *ServerTestSuite) TestInvalidTimestampIsRejected(c *check.C) {
	_, err := s.client.UpsertVertex(context.TODO(), &cographproto.Vertex{
		Key:       "item-1",
		UpdatedAt: &timestamppb.Timestamp{Seconds: time.Now().Unix(), Nanos: -1},
	})
	c.Assert(status.Code(err), check.Equals, codes.InvalidArgument)
}
