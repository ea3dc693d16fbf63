package matching

import "errors"

var (
	// ErrVertexNotFound is returned for an operation referencing a vertex ID
	// absent from the graph.
	ErrVertexNotFound = errors.New("matching: vertex not found")
	// ErrEdgeNotFound is returned for an operation referencing an edge ID
	// absent from the graph.
	ErrEdgeNotFound = errors.New("matching: edge not found")
)
