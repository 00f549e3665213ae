package rpc

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mycok/uPartition/cograph/graph"
)

// toStatus maps store errors to gRPC status codes so that clients can
// reconstruct them.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, graph.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, graph.ErrUnknownEdgeVertices):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return err
	}
}

// fromStatus is the inverse of toStatus.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", st.Message(), graph.ErrNotFound)
	case codes.FailedPrecondition:
		return fmt.Errorf("%s: %w", st.Message(), graph.ErrUnknownEdgeVertices)
	default:
		return err
	}
}
