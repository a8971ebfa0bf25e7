package alloc

import (
	"reflect"
	"unsafe"
)

// Heap allocates from the Go heap. All Heap values are interchangeable.
type Heap struct{}

// Allocate returns typed, garbage-collected memory for n values.
func (Heap) Allocate(l Layout, n int) (unsafe.Pointer, error) {
	if n <= 0 {
		return nil, nil
	}
	return reflect.MakeSlice(reflect.SliceOf(l.Type), n, n).UnsafePointer(), nil
}

// Deallocate zeroes the values so they stop retaining anything; the garbage
// collector reclaims the memory itself.
func (Heap) Deallocate(p unsafe.Pointer, l Layout, n int) {
	if p == nil || n <= 0 {
		return
	}
	reflect.NewAt(reflect.ArrayOf(n, l.Type), p).Elem().SetZero()
}

// Equal reports whether other is also a Heap.
func (Heap) Equal(other Resource) bool {
	_, ok := other.(Heap)
	return ok
}
