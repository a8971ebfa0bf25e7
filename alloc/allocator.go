package alloc

import "unsafe"

// Allocator is a typed, copyable handle to a Resource. The zero value
// allocates from the Go heap.
type Allocator[T any] struct {
	r      Resource
	layout Layout
}

// New returns an Allocator for T backed by r. A nil r means Heap.
func New[T any](r Resource) Allocator[T] {
	if r == nil {
		r = Heap{}
	}
	return Allocator[T]{r: r, layout: LayoutOf[T]()}
}

// Rebind returns an Allocator for U that uses the same Resource as a.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return New[U](a.Resource())
}

// Equal reports whether a and b share a resource, regardless of element type.
func Equal[T, U any](a Allocator[T], b Allocator[U]) bool {
	return a.Resource().Equal(b.Resource())
}

// Resource returns the resource backing a.
func (a Allocator[T]) Resource() Resource {
	if a.r == nil {
		return Heap{}
	}
	return a.r
}

// Equal reports whether memory from a may be released through b.
func (a Allocator[T]) Equal(b Allocator[T]) bool {
	return Equal(a, b)
}

// Allocate returns zeroed storage for n values of T. Returns nil if n <= 0.
func (a Allocator[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if _, ok := a.Resource().(Heap); ok {
		return make([]T, n), nil
	}
	p, err := a.r.Allocate(a.layout, n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(p), n), nil
}

// Deallocate returns s, which must come from Allocate on an equal allocator.
func (a Allocator[T]) Deallocate(s []T) {
	if len(s) == 0 {
		return
	}
	if _, ok := a.Resource().(Heap); ok {
		clear(s)
		return
	}
	a.r.Deallocate(unsafe.Pointer(unsafe.SliceData(s)), a.layout, len(s))
}

// New allocates a single zeroed T.
func (a Allocator[T]) New() (*T, error) {
	s, err := a.Allocate(1)
	if err != nil {
		return nil, err
	}
	return &s[0], nil
}

// Free releases a value obtained from New.
func (a Allocator[T]) Free(p *T) {
	if p == nil {
		return
	}
	a.Deallocate(unsafe.Slice(p, 1))
}
