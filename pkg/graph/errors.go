package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound   = errors.New("node not found")
	ErrDuplicateNode  = errors.New("duplicate node id")
	ErrInvalidWeight  = errors.New("edge weight must be positive")
	ErrEmptyGraph     = errors.New("graph has no nodes")
	ErrInvalidNode    = errors.New("invalid node")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op      string // Operation that failed (e.g., "LoadNodes", "AddEdge")
	Entity  string // Entity type (e.g., "node", "edge", "graph")
	ID      string // Entity ID (if applicable)
	Cause   error  // Underlying error
	Context string // Additional context
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// Convenience constructors for common error patterns

// NodeNotFoundError creates a node not found error.
func NodeNotFoundError(op, nodeID string) error {
	return &GraphError{Op: op, Entity: "node", ID: nodeID, Cause: ErrNodeNotFound}
}

// DuplicateNodeError creates a duplicate node id error.
func DuplicateNodeError(nodeID string) error {
	return &GraphError{Op: "LoadNodes", Entity: "node", ID: nodeID, Cause: ErrDuplicateNode}
}

// InvalidWeightError creates an invalid edge weight error.
func InvalidWeightError(source, target string, weight float64) error {
	return &GraphError{
		Op:      "AddEdge",
		Entity:  "edge",
		Context: fmt.Sprintf("%s-%s weight %g", source, target, weight),
		Cause:   ErrInvalidWeight,
	}
}

// InvalidNodeError wraps a validation failure for a node in a batch.
func InvalidNodeError(nodeID string, cause error) error {
	return &GraphError{Op: "LoadNodes", Entity: "node", ID: nodeID, Cause: fmt.Errorf("%w: %v", ErrInvalidNode, cause)}
}

// IsNotFound returns true if the error is a node not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound)
}

// IsInvalidGraph returns true if the error indicates bad graph input
// (duplicate ids or nodes that failed validation).
func IsInvalidGraph(err error) bool {
	return errors.Is(err, ErrDuplicateNode) || errors.Is(err, ErrInvalidNode)
}
