package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation is returned when a child-management request reaches a node
// that cannot own children.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ErrInvalidOperation is returned when a child-management request would break the
// single-owner tree shape (shared ownership or a cycle).
var ErrInvalidOperation = errors.New("invalid operation")

// Operation names reported in OperationError.
const (
	OpAddChild    = "add_child"
	OpRemoveChild = "remove_child"
)

// OperationError describes a rejected child-management request.
// It unwraps to ErrUnsupportedOperation or ErrInvalidOperation.
type OperationError struct {
	Op     string // OpAddChild or OpRemoveChild
	NodeID ID     // Node that received the request
	Reason string // Human-readable detail
	Err    error  // Sentinel category
}

func (e *OperationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s on node %d: %v", e.Op, e.NodeID, e.Err)
	}
	return fmt.Sprintf("%s on node %d: %v: %s", e.Op, e.NodeID, e.Err, e.Reason)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func unsupported(op string, id ID) error {
	return &OperationError{
		Op:     op,
		NodeID: id,
		Reason: "leaf cannot own children",
		Err:    ErrUnsupportedOperation,
	}
}

func invalid(op string, id ID, reason string) error {
	return &OperationError{
		Op:     op,
		NodeID: id,
		Reason: reason,
		Err:    ErrInvalidOperation,
	}
}
