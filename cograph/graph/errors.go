package graph

import "errors"

var (
	// ErrNotFound is returned when a vertex lookup fails.
	ErrNotFound = errors.New("not found")

	// ErrUnknownEdgeVertices is returned when attempting to create an edge
	// with an invalid source and / or destination ID.
	ErrUnknownEdgeVertices = errors.New("unknown source and / or destination for edge")
)
