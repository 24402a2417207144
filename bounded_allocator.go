package linked_list

import (
	"log/slog"

	"github.com/dmgrit/linked-list/internal/synchronization"
)

// BoundedAllocator hands out at most a fixed number of nodes at a time and
// keeps released nodes on a free list for reuse. One BoundedAllocator may
// back several lists, including lists used from different goroutines, and
// then caps their combined size.
type BoundedAllocator[T any] struct {
	lock     *synchronization.Lock
	capacity int
	inUse    int
	free     *Node[T]
	logger   *slog.Logger
}

// NewBoundedAllocator returns an allocator for up to capacity live nodes.
// A nil logger means slog.Default().
func NewBoundedAllocator[T any](capacity int, logger *slog.Logger) (*BoundedAllocator[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BoundedAllocator[T]{
		lock:     synchronization.NewLock(),
		capacity: capacity,
		logger:   logger,
	}, nil
}

// Allocate hands out a node, preferring one from the free list. It returns an
// *AllocationFailureError wrapping ErrCapacityExhausted once capacity nodes
// are in use.
func (a *BoundedAllocator[T]) Allocate() (*Node[T], error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.inUse == a.capacity {
		a.logger.Warn("node allocation rejected", "allocator", "bounded", "capacity", a.capacity)
		return nil, &AllocationFailureError{
			Allocator: "bounded",
			Capacity:  a.capacity,
			Err:       ErrCapacityExhausted,
		}
	}
	a.inUse++
	if a.free == nil {
		return new(Node[T]), nil
	}
	n := a.free
	a.free = n.next
	n.next = nil
	return n, nil
}

// Deallocate returns node to the free list.
func (a *BoundedAllocator[T]) Deallocate(node *Node[T]) {
	if node == nil {
		return
	}
	a.lock.Lock()
	defer a.lock.Unlock()

	node.next = a.free
	a.free = node
	a.inUse--
}

// Capacity returns the maximum number of nodes in use at once.
func (a *BoundedAllocator[T]) Capacity() int {
	return a.capacity
}

// InUse returns the number of nodes currently handed out.
func (a *BoundedAllocator[T]) InUse() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.inUse
}

// Available returns how many more nodes can be allocated right now.
func (a *BoundedAllocator[T]) Available() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.capacity - a.inUse
}
