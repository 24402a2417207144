package linked_list

import (
	"log/slog"
)

type Configuration struct {
	Allocator *AllocatorConfig `json:"allocator,omitempty"`
}

type AllocatorKind string

const (
	HeapAllocatorKind    AllocatorKind = "heap"
	PoolAllocatorKind    AllocatorKind = "pool"
	BoundedAllocatorKind AllocatorKind = "bounded"
)

type AllocatorConfig struct {
	Kind     AllocatorKind `json:"kind"`
	Capacity int           `json:"capacity,omitempty"`
}

// NewFromConfiguration returns an empty list whose allocator is described by
// config. An allocator passed through options takes precedence. logger
// receives the configured allocator's messages; nil means slog.Default().
func NewFromConfiguration[T any](config Configuration, logger *slog.Logger, options ...func(*ListOptions[T])) (*List[T], error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := buildListOptions(ListOptions[T]{}, options)
	if opts.allocator == nil && config.Allocator != nil {
		allocator, err := NewAllocatorFromConfiguration[T](*config.Allocator, logger)
		if err != nil {
			return nil, err
		}
		opts.allocator = allocator
		logger.Debug("list allocator configured", "kind", config.Allocator.Kind, "capacity", config.Allocator.Capacity)
	}
	return New(func(o *ListOptions[T]) { *o = opts }), nil
}

func NewAllocatorFromConfiguration[T any](config AllocatorConfig, logger *slog.Logger) (Allocator[T], error) {
	switch config.Kind {
	case HeapAllocatorKind, "":
		return HeapAllocator[T]{}, nil
	case PoolAllocatorKind:
		return NewPoolAllocator[T](), nil
	case BoundedAllocatorKind:
		allocator, err := NewBoundedAllocator[T](config.Capacity, logger)
		if err != nil {
			return nil, err
		}
		return allocator, nil
	default:
		return nil, &UnknownAllocatorError{Kind: config.Kind}
	}
}
