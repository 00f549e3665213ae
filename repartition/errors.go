package repartition

import (
	"errors"
	"fmt"

	"github.com/mycok/uPartition/bsp"
)

var (
	// ErrInvalidConfig is returned when the partitioner is misconfigured.
	// Configuration errors are fatal to the whole run.
	ErrInvalidConfig = errors.New("invalid partitioner configuration")

	// ErrUnknownCluster is returned when a label has no cluster descriptor.
	ErrUnknownCluster = errors.New("no cluster descriptor for label")

	// ErrNegativeWeight is returned when adding an edge with a negative
	// co-occurrence count.
	ErrNegativeWeight = errors.New("edge weight must not be negative")
)

// GraphInconsistencyError is returned when a vertex receives a label from a
// neighbor that is no longer connected to it through a qualifying edge. It
// only discards the vertex's contribution to the current super step.
type GraphInconsistencyError struct {
	VertexID   string
	NeighborID string
	EdgeLabel  string
}

// Error implements the error interface.
func (e *GraphInconsistencyError) Error() string {
	return fmt.Sprintf(
		"vertex %q received a label from %q but no %q edge connects them",
		e.VertexID, e.NeighborID, e.EdgeLabel,
	)
}

// Unwrap marks the error as local to a single vertex.
func (e *GraphInconsistencyError) Unwrap() error {
	return bsp.ErrAbortVertex
}
