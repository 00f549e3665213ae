package main

import (
	"context"
	"net"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/cograph/graph"
	"github.com/mycok/uPartition/cograph/store/api/rpc"
	"github.com/mycok/uPartition/cograph/store/api/rpc/cographproto"
	"github.com/mycok/uPartition/cograph/store/memory"
)

var _ = check.Suite(new(CographTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type CographTestSuite struct{}

func (s *CographTestSuite) SetUpSuite(c *check.C) {
	nullLogger, _ := logtest.NewNullLogger()
	logger = nullLogger.WithField("app", appName)
}

func (s *CographTestSuite) TestGRPCServiceStopsOnCancel(c *check.C) {
	store := memory.NewInMemoryGraph()
	svc := newGRPCService("", store, logger)
	listener := bufconn.Listen(1024 * 1024)

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	doneChan := make(chan error, 1)
	go func() { doneChan <- svc.serve(ctx, listener) }()

	conn, err := grpc.Dial(
		"bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	c.Assert(err, check.IsNil)
	defer func() { _ = conn.Close() }()

	client := rpc.NewGraphClient(context.TODO(), cographproto.NewCoGraphClient(conn))
	v := &graph.Vertex{Key: "orders", Label: 1}
	c.Assert(client.UpsertVertex(v), check.IsNil)

	stored, err := store.FindVertex(v.ID)
	c.Assert(err, check.IsNil)
	c.Assert(stored.Label, check.Equals, int64(1))

	cancelFn()

	select {
	case err := <-doneChan:
		c.Assert(err, check.IsNil)
	case <-time.After(10 * time.Second):
		c.Fatal("timed out waiting for the gRPC service to stop")
	}
}

func (s *CographTestSuite) TestOpenGraph(c *check.C) {
	g, closeFn, err := openGraph("in-memory://")
	c.Assert(err, check.IsNil)
	c.Assert(g, check.FitsTypeOf, new(memory.InMemoryGraph))
	closeFn()

	g, closeFn, err = openGraph("badger://" + c.MkDir())
	c.Assert(err, check.IsNil)
	c.Assert(g.UpsertVertex(&graph.Vertex{Key: "orders"}), check.IsNil)
	closeFn()

	_, _, err = openGraph("")
	c.Assert(err, check.ErrorMatches, ".*--graph-uri.*")

	_, _, err = openGraph("redis://localhost")
	c.Assert(err, check.ErrorMatches, `unsupported graph URI scheme: "redis"`)
}

func (s *CographTestSuite) TestPprofServiceStopsOnCancel(c *check.C) {
	svc := newPprofService("127.0.0.1:0", logger)

	ctx, cancelFn := context.WithCancel(context.Background())
	doneChan := make(chan error, 1)
	go func() { doneChan <- svc.Run(ctx) }()

	cancelFn()

	select {
	case err := <-doneChan:
		c.Assert(err, check.IsNil)
	case <-time.After(10 * time.Second):
		c.Fatal("timed out waiting for the pprof service to stop")
	}
}
