package linked_list

import "sync"

//go:generate mockgen -source=allocator.go -destination=mocks/mock_allocator.go -package=mocks

// Allocator provides and takes back list nodes. A node passed to Deallocate
// has already been unlinked and cleared by the list and is never touched by
// it again, so the allocator may hand it out from a later Allocate call.
type Allocator[T any] interface {
	Allocate() (*Node[T], error)
	Deallocate(node *Node[T])
}

// HeapAllocator allocates every node on the heap and leaves released nodes to
// the garbage collector.
type HeapAllocator[T any] struct{}

// Allocate returns a fresh node. It never fails.
func (HeapAllocator[T]) Allocate() (*Node[T], error) {
	return new(Node[T]), nil
}

// Deallocate does nothing; the node is left to the garbage collector.
func (HeapAllocator[T]) Deallocate(*Node[T]) {}

// PoolAllocator recycles released nodes through a sync.Pool.
// It may be shared by lists living on different goroutines.
type PoolAllocator[T any] struct {
	pool sync.Pool
}

// NewPoolAllocator returns an empty PoolAllocator. The zero value is usable
// as well.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return &PoolAllocator[T]{
		pool: sync.Pool{
			New: func() any { return new(Node[T]) },
		},
	}
}

// Allocate takes a node from the pool, or creates one when the pool is empty.
func (p *PoolAllocator[T]) Allocate() (*Node[T], error) {
	if n, ok := p.pool.Get().(*Node[T]); ok {
		return n, nil
	}
	return new(Node[T]), nil
}

// Deallocate puts node back into the pool. A nil node is ignored.
func (p *PoolAllocator[T]) Deallocate(node *Node[T]) {
	if node == nil {
		return
	}
	p.pool.Put(node)
}
