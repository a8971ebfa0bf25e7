package arena

import (
	"unsafe"

	"github.com/pkg/errors"

	"github.com/pavanmanishd/arena/v2/alloc"
)

// Adapter lets containers allocate from an Arena through alloc.Resource.
// It is a non-owning handle: copying it is cheap and every copy refers to the
// same Arena, which must outlive all of them.
type Adapter struct {
	a *Arena
}

var _ alloc.Resource = Adapter{}

// NewAdapter returns an Adapter over a.
func NewAdapter(a *Arena) Adapter {
	return Adapter{a: a}
}

// Arena returns the arena the adapter allocates from.
func (ad Adapter) Arena() *Arena {
	return ad.a
}

// Allocate carves zeroed room for n values of layout l from the arena.
// Types holding Go pointers are refused with ErrPointerType.
func (ad Adapter) Allocate(l alloc.Layout, n int) (unsafe.Pointer, error) {
	if n <= 0 {
		return nil, nil
	}
	if l.Pointers {
		return nil, errors.Wrapf(ErrPointerType, "%v", l.Type)
	}
	if l.Align > MaxAlign {
		return nil, errors.Errorf("arena: alignment %d of %v exceeds %d", l.Align, l.Type, MaxAlign)
	}
	size := l.Size * uintptr(n)
	if size == 0 {
		return unsafe.Pointer(&zeroSized), nil
	}
	if size/uintptr(n) != l.Size {
		return nil, errors.Wrapf(ErrOutOfMemory, "%d values of %v", n, l.Type)
	}
	p, err := ad.a.Allocate(size)
	if err != nil {
		return nil, err
	}
	clear(unsafe.Slice((*byte)(p), size))
	return p, nil
}

// Deallocate delegates to the arena, which ignores it.
func (ad Adapter) Deallocate(p unsafe.Pointer, l alloc.Layout, n int) {
	ad.a.Deallocate(p, l.Size*uintptr(n))
}

// Equal reports whether other is an Adapter over the same Arena.
func (ad Adapter) Equal(other alloc.Resource) bool {
	o, ok := other.(Adapter)
	return ok && o.a == ad.a
}

var zeroSized [0]uint64
