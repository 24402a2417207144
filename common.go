package linked_list

// ListOptions holds the settings applied when a list is constructed.
type ListOptions[T any] struct {
	allocator Allocator[T]
	cloner    func(T) T
}

// WithAllocator makes the list take its nodes from allocator.
func WithAllocator[T any](allocator Allocator[T]) func(opt *ListOptions[T]) {
	return func(opt *ListOptions[T]) {
		opt.allocator = allocator
	}
}

// WithCloner sets the function used to copy a value whenever the list copies
// elements from another list or from a sequence, for element types whose
// plain assignment would share state.
func WithCloner[T any](fn func(T) T) func(opt *ListOptions[T]) {
	return func(opt *ListOptions[T]) {
		opt.cloner = fn
	}
}

func buildListOptions[T any](base ListOptions[T], options []func(*ListOptions[T])) ListOptions[T] {
	opts := base
	for _, option := range options {
		option(&opts)
	}
	return opts
}

func getZero[T any]() T {
	var result T
	return result
}
