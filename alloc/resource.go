// Package alloc defines the allocator capability set used by the containers in
// this module, together with the typed Allocator handle that containers hold.
//
// A Resource hands out raw memory for n values of a given Layout. Containers
// never talk to a Resource directly; they hold an Allocator[T] and rebind it to
// whatever internal type they need (list nodes, for example):
//
//	values := alloc.New[int](alloc.Heap{})
//	nodes := alloc.Rebind[node](values)
//	alloc.Equal(values, nodes) // true: same Resource
//
// Two policies control how containers treat allocators on copy. A Resource may
// opt into them by implementing CopyAssignPropagator or CopyConstructionSelector;
// without them assignment keeps the destination's allocator and copy
// construction reuses the source's.
package alloc

import (
	"reflect"
	"unsafe"
)

// Resource is a source of raw memory.
//
// Allocate returns memory for n values laid out as l. The memory is zeroed.
// Deallocate returns memory obtained from Allocate with the same layout and
// count. Equal reports whether memory allocated by one resource may be
// deallocated by the other.
type Resource interface {
	Allocate(l Layout, n int) (unsafe.Pointer, error)
	Deallocate(p unsafe.Pointer, l Layout, n int)
	Equal(other Resource) bool
}

// CopyAssignPropagator is implemented by resources that want a container's
// copy assignment to adopt the source container's allocator.
type CopyAssignPropagator interface {
	PropagateOnCopyAssignment() bool
}

// CopyConstructionSelector is implemented by resources that choose which
// resource a freshly copied container uses.
type CopyConstructionSelector interface {
	SelectOnCopyConstruction() Resource
}

// PropagateOnCopyAssignment reports the propagate-on-copy-assignment policy of r.
func PropagateOnCopyAssignment(r Resource) bool {
	if p, ok := r.(CopyAssignPropagator); ok {
		return p.PropagateOnCopyAssignment()
	}
	return false
}

// SelectOnCopyConstruction returns the resource a copy of a container using r
// should allocate from.
func SelectOnCopyConstruction(r Resource) Resource {
	if s, ok := r.(CopyConstructionSelector); ok {
		if sel := s.SelectOnCopyConstruction(); sel != nil {
			return sel
		}
	}
	return r
}

// Layout describes the memory shape of one value.
type Layout struct {
	Type     reflect.Type
	Size     uintptr
	Align    uintptr
	Pointers bool // the type holds references the garbage collector must see
}

// LayoutOf returns the layout of T.
func LayoutOf[T any]() Layout {
	t := reflect.TypeFor[T]()
	return Layout{
		Type:     t,
		Size:     t.Size(),
		Align:    uintptr(t.Align()),
		Pointers: hasPointers(t),
	}
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
