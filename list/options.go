package list

import (
	"github.com/go-kit/log"

	"github.com/pavanmanishd/arena/v2/alloc"
)

type options[T any] struct {
	alloc     alloc.Allocator[T]
	construct func() (T, error)
	copy      func(T) (T, error)
	destroy   func(*T)
	logger    log.Logger
}

// Option configures a List.
type Option[T any] func(*options[T])

// WithAllocator makes the list allocate its nodes through a rebound copy of a.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(o *options[T]) {
		o.alloc = a
	}
}

// WithResource is WithAllocator(alloc.New[T](r)).
func WithResource[T any](r alloc.Resource) Option[T] {
	return WithAllocator(alloc.New[T](r))
}

// WithConstructor sets how default elements are built by NewN. If fn fails,
// construction is rolled back and its error returned.
func WithConstructor[T any](fn func() (T, error)) Option[T] {
	return func(o *options[T]) {
		o.construct = fn
	}
}

// WithCopier sets how a value is copied into a new element, for Insert,
// NewFilled, Clone and Assign. The default is plain assignment. Element types
// that own resources use it for deep copies, and may fail.
func WithCopier[T any](fn func(T) (T, error)) Option[T] {
	return func(o *options[T]) {
		o.copy = fn
	}
}

// WithDestructor sets a hook run exactly once for every element that leaves
// the list through Erase, Clear, or a rolled back construction.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) {
		o.destroy = fn
	}
}

// WithLogger sets the logger used for debug output. Defaults to a no-op logger.
func WithLogger[T any](l log.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = l
	}
}

func buildOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	if o.construct == nil {
		o.construct = func() (T, error) {
			var zero T
			return zero, nil
		}
	}
	if o.copy == nil {
		o.copy = func(v T) (T, error) {
			return v, nil
		}
	}
	if o.logger == nil {
		o.logger = log.NewNopLogger()
	}
	return o
}
