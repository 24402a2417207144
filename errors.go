package linked_list

import (
	"errors"
	"fmt"
)

var (
	ErrEndIterator      = errors.New("iterator is at the end position")
	ErrBeginIterator    = errors.New("iterator is at the first element")
	ErrStaleIterator    = errors.New("iterator references a removed element")
	ErrForeignIterator  = errors.New("iterator belongs to another list")
	ErrDetachedIterator = errors.New("iterator is not attached to a list")
	ErrInvalidRange     = errors.New("range end is not reachable from range start")
	ErrNegativeCount    = errors.New("count cannot be negative")
)

var (
	ErrCapacityExhausted = errors.New("allocator capacity exhausted")
	ErrInvalidCapacity   = errors.New("capacity must be greater than zero")
)

type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	return fmt.Sprintf("%s: list is empty", e.Op)
}

type InvalidIteratorError struct {
	Op  string
	Err error
}

func (e *InvalidIteratorError) Error() string {
	return fmt.Sprintf("%s: invalid iterator: %v", e.Op, e.Err)
}

func (e *InvalidIteratorError) Unwrap() error {
	return e.Err
}

// AllocationFailureError is returned when an allocator cannot provide a node.
// The list operation that asked for the node has not changed anything.
type AllocationFailureError struct {
	Allocator string
	Capacity  int
	Err       error
}

func (e *AllocationFailureError) Error() string {
	return fmt.Sprintf("%s allocator (capacity %d): %v", e.Allocator, e.Capacity, e.Err)
}

func (e *AllocationFailureError) Unwrap() error {
	return e.Err
}

type UnknownAllocatorError struct {
	Kind AllocatorKind
}

func (e *UnknownAllocatorError) Error() string {
	return fmt.Sprintf("unknown allocator kind '%s'", e.Kind)
}
