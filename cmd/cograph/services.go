package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	_ "net/http/pprof"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/mycok/uPartition/cograph/graph"
	"github.com/mycok/uPartition/cograph/store/api/rpc"
	"github.com/mycok/uPartition/cograph/store/api/rpc/cographproto"
)

// grpcService serves the CoGraph API until its context is cancelled.
type grpcService struct {
	addr   string
	srv    *grpc.Server
	logger *logrus.Entry
}

func newGRPCService(addr string, g graph.Graph, logger *logrus.Entry) *grpcService {
	srv := grpc.NewServer()
	cographproto.RegisterCoGraphServer(srv, rpc.NewGraphServer(g))

	return &grpcService{addr: addr, srv: srv, logger: logger}
}

func (s *grpcService) Name() string { return "grpc" }

func (s *grpcService) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	return s.serve(ctx, l)
}

// serve blocks until ctx is cancelled, then drains in-flight calls.
func (s *grpcService) serve(ctx context.Context, l net.Listener) error {
	s.logger.WithField("addr", l.Addr().String()).Info("listening for gRPC connections")

	errChan := make(chan error, 1)
	go func() { errChan <- s.srv.Serve(l) }()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("stopping gRPC server")
		s.srv.GracefulStop()

		return <-errChan
	}
}

// pprofService exposes the net/http/pprof handlers.
type pprofService struct {
	srv    *http.Server
	logger *logrus.Entry
}

func newPprofService(addr string, logger *logrus.Entry) *pprofService {
	return &pprofService{
		srv:    &http.Server{Addr: addr, Handler: http.DefaultServeMux},
		logger: logger,
	}
}

func (s *pprofService) Name() string { return "pprof" }

func (s *pprofService) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.srv.Addr).Info("listening for pprof requests")
		errChan <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		_ = s.srv.Close()

		if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
