package linked_list

import "iter"

// Node is a single storage unit of a List. Allocators hand out nodes
// and take them back once the list has unlinked them; only the list reads or
// writes the fields.
type Node[T any] struct {
	value T
	prev  *Node[T]
	next  *Node[T]
	owner *chain[T]
	// gen is bumped every time the node is released, so an iterator that still
	// points at a recycled node can tell it is no longer the element it saw.
	gen uint64
}

// chain is the head/tail/count header shared by a list and its nodes.
// Swapping two lists exchanges their chains, so nodes never need relinking
// and the allocator and cloner stay with the elements they serve.
type chain[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	size  int
	alloc Allocator[T]
	clone func(T) T
}

func newChain[T any](alloc Allocator[T], clone func(T) T) *chain[T] {
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	return &chain[T]{alloc: alloc, clone: clone}
}

func (c *chain[T]) iterator(n *Node[T]) Iterator[T] {
	it := Iterator[T]{owner: c, node: n}
	if n != nil {
		it.gen = n.gen
	}
	return it
}

// newNode allocates a node holding value. Nothing in the chain changes when
// the allocator fails.
func (c *chain[T]) newNode(value T) (*Node[T], error) {
	n, err := c.alloc.Allocate()
	if err != nil {
		return nil, err
	}
	n.value = value
	n.prev = nil
	n.next = nil
	n.owner = c
	return n, nil
}

// linkBefore splices n in front of mark, or after the tail when mark is nil.
func (c *chain[T]) linkBefore(n, mark *Node[T]) {
	c.size++
	if mark == nil {
		n.prev = c.tail
		if c.tail == nil {
			c.head = n
		} else {
			c.tail.next = n
		}
		c.tail = n
		return
	}
	n.next = mark
	n.prev = mark.prev
	if mark.prev == nil {
		c.head = n
	} else {
		mark.prev.next = n
	}
	mark.prev = n
}

// unlink removes n from the chain without releasing it.
func (c *chain[T]) unlink(n *Node[T]) {
	c.size--
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}

// release invalidates n and hands it back to the allocator.
func (c *chain[T]) release(n *Node[T]) {
	n.value = getZero[T]()
	n.prev = nil
	n.next = nil
	n.owner = nil
	n.gen++
	c.alloc.Deallocate(n)
}

func (c *chain[T]) releaseAll() {
	var next *Node[T]
	for n := c.head; n != nil; n = next {
		next = n.next
		c.release(n)
	}
	c.head = nil
	c.tail = nil
	c.size = 0
}

// segment is a detached run of nodes owned by a chain but not yet linked
// into it. Bulk operations build a segment first so that an allocation
// failure half way leaves the list untouched.
type segment[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

func (s *segment[T]) append(n *Node[T]) {
	n.prev = s.tail
	if s.tail == nil {
		s.head = n
	} else {
		s.tail.next = n
	}
	s.tail = n
	s.size++
}

// build allocates one node per value produced by values, copying each one
// through the chain's cloner.
func (c *chain[T]) build(values iter.Seq[T]) (segment[T], error) {
	var seg segment[T]
	var err error
	values(func(v T) bool {
		v = c.copyValue(v)
		var n *Node[T]
		n, err = c.newNode(v)
		if err != nil {
			return false
		}
		seg.append(n)
		return true
	})
	if err != nil {
		c.discard(seg)
		return segment[T]{}, err
	}
	return seg, nil
}

func (c *chain[T]) copyValue(v T) T {
	if c.clone == nil {
		return v
	}
	return c.clone(v)
}

// discard releases every node of a segment that was never linked.
func (c *chain[T]) discard(seg segment[T]) {
	var next *Node[T]
	for n := seg.head; n != nil; n = next {
		next = n.next
		c.release(n)
	}
}

// appendSegment links seg after the current tail.
func (c *chain[T]) appendSegment(seg segment[T]) {
	if seg.head == nil {
		return
	}
	if c.tail == nil {
		c.head = seg.head
	} else {
		c.tail.next = seg.head
		seg.head.prev = c.tail
	}
	c.tail = seg.tail
	c.size += seg.size
}
