// Package linked_list implements a generic doubly linked list with
// bidirectional iterators and pluggable node allocation.
//
// A List is not safe for concurrent use. Callers that share a list between
// goroutines must guard every call, iterators included, with their own lock.
package linked_list

import (
	"iter"
)

// List is a doubly linked list of values of type T.
// The zero value is an empty list backed by a HeapAllocator.
type List[T any] struct {
	c *chain[T]
}

// New returns an empty list.
func New[T any](options ...func(*ListOptions[T])) *List[T] {
	opts := buildListOptions(ListOptions[T]{}, options)
	return &List[T]{c: newChain(opts.allocator, opts.cloner)}
}

// NewWithSize returns a list holding count zero values.
func NewWithSize[T any](count int, options ...func(*ListOptions[T])) (*List[T], error) {
	return NewFilled(count, getZero[T](), options...)
}

// NewFilled returns a list holding count copies of value.
func NewFilled[T any](count int, value T, options ...func(*ListOptions[T])) (*List[T], error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	return NewFromSeq(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}, options...)
}

// NewFromSlice returns a list holding the given values in order.
func NewFromSlice[T any](values []T, options ...func(*ListOptions[T])) (*List[T], error) {
	return NewFromSeq(func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}, options...)
}

// NewFromSeq returns a list holding every value produced by seq, in order.
func NewFromSeq[T any](seq iter.Seq[T], options ...func(*ListOptions[T])) (*List[T], error) {
	l := New(options...)
	seg, err := l.c.build(seq)
	if err != nil {
		return nil, err
	}
	l.c.appendSegment(seg)
	return l, nil
}

// NewFromRange returns a list holding the values in [first, last) of another
// list. Both iterators must come from the same list and last must be
// reachable from first.
func NewFromRange[T any](first, last Iterator[T], options ...func(*ListOptions[T])) (*List[T], error) {
	seq, err := rangeSeq(first, last)
	if err != nil {
		return nil, err
	}
	return NewFromSeq(seq, options...)
}

// NewCopy returns an independent list holding copies of other's values.
// The copy uses other's allocator and cloner unless options override them.
// A nil other is copied as an empty list.
func NewCopy[T any](other *List[T], options ...func(*ListOptions[T])) (*List[T], error) {
	base := ListOptions[T]{allocator: other.allocator(), cloner: other.cloner()}
	opts := buildListOptions(base, options)
	return NewFromSeq(other.All(), func(o *ListOptions[T]) { *o = opts })
}

// NewMoved returns a list that took over other's elements in constant time.
// other is left empty and usable. A nil other yields an empty list.
func NewMoved[T any](other *List[T]) *List[T] {
	if other == nil {
		return New[T]()
	}
	other.lazyInit()
	l := &List[T]{c: other.c}
	other.c = newChain(l.c.alloc, l.c.clone)
	return l
}

func (l *List[T]) lazyInit() {
	if l.c == nil {
		l.c = newChain[T](nil, nil)
	}
}

func (l *List[T]) allocator() Allocator[T] {
	if l == nil || l.c == nil {
		return HeapAllocator[T]{}
	}
	return l.c.alloc
}

func (l *List[T]) cloner() func(T) T {
	if l == nil || l.c == nil {
		return nil
	}
	return l.c.clone
}

// CopyFrom replaces the list's contents with copies of other's values.
// On allocation failure the list keeps its previous contents. Copying from a
// nil list clears l.
func (l *List[T]) CopyFrom(other *List[T]) error {
	if l == other {
		return nil
	}
	l.lazyInit()
	if other != nil && l.c == other.c {
		return nil
	}
	seg, err := l.c.build(other.All())
	if err != nil {
		return err
	}
	l.c.releaseAll()
	l.c.appendSegment(seg)
	return nil
}

// MoveFrom discards the list's contents and takes over other's elements in
// constant time, leaving other empty. The allocator and cloner move along
// with the elements. Moving a list into itself does nothing and moving from a
// nil list clears l.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	if other == nil {
		l.Clear()
		return
	}
	if l.c != nil && l.c == other.c {
		return
	}
	l.Clear()
	l.Swap(other)
}

// Assign replaces the list's contents with values, overwriting existing
// elements in place. Surplus elements are released; missing ones are
// allocated before anything is overwritten.
func (l *List[T]) Assign(values ...T) error {
	l.lazyInit()
	var extra segment[T]
	if len(values) > l.c.size {
		var err error
		extra, err = l.c.build(func(yield func(T) bool) {
			for _, v := range values[l.c.size:] {
				if !yield(v) {
					return
				}
			}
		})
		if err != nil {
			return err
		}
	}

	n := l.c.head
	i := 0
	for ; n != nil && i < len(values); i++ {
		n.value = l.c.copyValue(values[i])
		n = n.next
	}
	for n != nil {
		next := n.next
		l.c.unlink(n)
		l.c.release(n)
		n = next
	}
	l.c.appendSegment(extra)
	return nil
}

// Swap exchanges the contents of l and other in constant time, together with
// their allocators and cloners. Iterators keep pointing at the same elements,
// which now belong to the other list. Both lists must be non-nil.
func (l *List[T]) Swap(other *List[T]) {
	l.lazyInit()
	other.lazyInit()
	l.c, other.c = other.c, l.c
}

// Swap exchanges the contents of a and b in constant time.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Clear releases every element. Clearing an empty list does nothing.
func (l *List[T]) Clear() {
	if l.c == nil {
		return
	}
	l.c.releaseAll()
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l.c == nil {
		return 0
	}
	return l.c.size
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.Len() == 0
}

// Front returns a pointer to the first value.
func (l *List[T]) Front() (*T, error) {
	if l.Empty() {
		return nil, &EmptyContainerError{Op: "front"}
	}
	return &l.c.head.value, nil
}

// Back returns a pointer to the last value.
func (l *List[T]) Back() (*T, error) {
	if l.Empty() {
		return nil, &EmptyContainerError{Op: "back"}
	}
	return &l.c.tail.value, nil
}

// PushFront adds value before the first element.
func (l *List[T]) PushFront(value T) error {
	l.lazyInit()
	n, err := l.c.newNode(value)
	if err != nil {
		return err
	}
	l.c.linkBefore(n, l.c.head)
	return nil
}

// PushBack adds value after the last element.
func (l *List[T]) PushBack(value T) error {
	l.lazyInit()
	n, err := l.c.newNode(value)
	if err != nil {
		return err
	}
	l.c.linkBefore(n, nil)
	return nil
}

// PopFront removes the first element and returns its value.
func (l *List[T]) PopFront() (T, error) {
	if l.Empty() {
		return getZero[T](), &EmptyContainerError{Op: "pop front"}
	}
	return l.remove(l.c.head), nil
}

// PopBack removes the last element and returns its value.
func (l *List[T]) PopBack() (T, error) {
	if l.Empty() {
		return getZero[T](), &EmptyContainerError{Op: "pop back"}
	}
	return l.remove(l.c.tail), nil
}

func (l *List[T]) remove(n *Node[T]) T {
	value := n.value
	l.c.unlink(n)
	l.c.release(n)
	return value
}

// Insert adds value right before pos, or at the back when pos is End(), and
// returns an iterator to the new element. Other iterators stay valid.
func (l *List[T]) Insert(pos Iterator[T], value T) (Iterator[T], error) {
	l.lazyInit()
	if err := l.checkPosition("insert", pos, true); err != nil {
		return l.End(), err
	}
	n, err := l.c.newNode(value)
	if err != nil {
		return l.End(), err
	}
	l.c.linkBefore(n, pos.node)
	return l.c.iterator(n), nil
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it. pos must reference an element of this list.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	l.lazyInit()
	if err := l.checkPosition("erase", pos, false); err != nil {
		return l.End(), err
	}
	next := pos.node.next
	l.remove(pos.node)
	return l.c.iterator(next), nil
}

func (l *List[T]) checkPosition(op string, pos Iterator[T], allowEnd bool) error {
	if pos.owner == nil {
		return &InvalidIteratorError{Op: op, Err: ErrDetachedIterator}
	}
	if err := pos.live(); err != nil {
		return &InvalidIteratorError{Op: op, Err: err}
	}
	if pos.owner != l.c {
		return &InvalidIteratorError{Op: op, Err: ErrForeignIterator}
	}
	if pos.node == nil && !allowEnd {
		return &InvalidIteratorError{Op: op, Err: ErrEndIterator}
	}
	return nil
}

// Begin returns an iterator to the first element, or End() when empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return l.c.iterator(l.c.head)
}

// Last returns an iterator to the last element, or End() when empty.
func (l *List[T]) Last() Iterator[T] {
	l.lazyInit()
	return l.c.iterator(l.c.tail)
}

// End returns the position one past the last element.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return l.c.iterator(nil)
}

// All yields the values from front to back. A nil list yields nothing.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil || l.c == nil {
			return
		}
		var next *Node[T]
		for n := l.c.head; n != nil; n = next {
			next = n.next
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the values from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.c == nil {
			return
		}
		var prev *Node[T]
		for n := l.c.tail; n != nil; n = prev {
			prev = n.prev
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the values from front to back in a new slice.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.Len())
	for v := range l.All() {
		res = append(res, v)
	}
	return res
}

func rangeSeq[T any](first, last Iterator[T]) (iter.Seq[T], error) {
	for _, it := range []Iterator[T]{first, last} {
		if it.owner == nil {
			return nil, &InvalidIteratorError{Op: "range", Err: ErrDetachedIterator}
		}
		if err := it.live(); err != nil {
			return nil, &InvalidIteratorError{Op: "range", Err: err}
		}
	}
	if first.owner != last.owner {
		return nil, &InvalidIteratorError{Op: "range", Err: ErrForeignIterator}
	}
	for n := first.node; n != last.node; n = n.next {
		if n == nil {
			return nil, &InvalidIteratorError{Op: "range", Err: ErrInvalidRange}
		}
	}
	return func(yield func(T) bool) {
		for n := first.node; n != last.node; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}, nil
}
