package linked_list

// Iterator is a position in a List: either an element or the end position
// one past the last element. Iterators are small values and are copied
// freely; Next and Prev return a moved copy while Increment and Decrement
// move the receiver itself.
//
// An iterator stays valid until its element is erased, popped or cleared.
// Using an invalid iterator, dereferencing End() or moving past either end
// returns an *InvalidIteratorError.
type Iterator[T any] struct {
	owner *chain[T]
	node  *Node[T]
	gen   uint64
}

// IsEnd reports whether it is the end position.
func (it Iterator[T]) IsEnd() bool {
	return it.node == nil
}

// Equal reports whether both iterators reference the same position.
// End positions are equal when they come from the same list.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.node == nil || other.node == nil {
		return it.node == other.node && it.owner == other.owner
	}
	return it.node == other.node && it.gen == other.gen
}

// Value returns a pointer to the referenced value.
func (it Iterator[T]) Value() (*T, error) {
	if err := it.checkElement("value"); err != nil {
		return nil, err
	}
	return &it.node.value, nil
}

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() (Iterator[T], error) {
	err := it.Increment()
	return it, err
}

// Prev returns an iterator to the preceding position.
func (it Iterator[T]) Prev() (Iterator[T], error) {
	err := it.Decrement()
	return it, err
}

// Increment moves it to the following position. Incrementing End() fails.
func (it *Iterator[T]) Increment() error {
	if err := it.checkElement("increment"); err != nil {
		return err
	}
	it.moveTo(it.node.next)
	return nil
}

// Decrement moves it to the preceding position. Decrementing End() moves to
// the last element; decrementing the first element fails.
func (it *Iterator[T]) Decrement() error {
	if it.owner == nil {
		return &InvalidIteratorError{Op: "decrement", Err: ErrDetachedIterator}
	}
	if it.node == nil {
		if it.owner.tail == nil {
			return &InvalidIteratorError{Op: "decrement", Err: ErrBeginIterator}
		}
		it.moveTo(it.owner.tail)
		return nil
	}
	if err := it.live(); err != nil {
		return &InvalidIteratorError{Op: "decrement", Err: err}
	}
	if it.node.prev == nil {
		return &InvalidIteratorError{Op: "decrement", Err: ErrBeginIterator}
	}
	it.moveTo(it.node.prev)
	return nil
}

func (it *Iterator[T]) moveTo(n *Node[T]) {
	it.node = n
	it.gen = 0
	if n != nil {
		it.gen = n.gen
	}
}

// live reports ErrStaleIterator when the referenced element was removed.
func (it Iterator[T]) live() error {
	if it.node == nil {
		return nil
	}
	if it.node.owner != it.owner || it.node.gen != it.gen {
		return ErrStaleIterator
	}
	return nil
}

func (it Iterator[T]) checkElement(op string) error {
	if it.node == nil {
		if it.owner == nil {
			return &InvalidIteratorError{Op: op, Err: ErrDetachedIterator}
		}
		return &InvalidIteratorError{Op: op, Err: ErrEndIterator}
	}
	if err := it.live(); err != nil {
		return &InvalidIteratorError{Op: op, Err: err}
	}
	return nil
}
