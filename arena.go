package arena

import (
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// DefaultCapacity is the capacity of arenas created with a non-positive size (64 KiB).
const DefaultCapacity = 1 << 16

type maxAlign struct {
	_ uint64
	_ float64
	_ complex128
	_ uintptr
}

// MaxAlign is the alignment of every region handed out by an Arena: the
// largest alignment of any scalar type on this platform.
const MaxAlign = unsafe.Alignof(maxAlign{})

// Arena is a fixed-capacity bump allocator over a single buffer. Memory is
// never reclaimed individually; it lives until the arena is released.
//
// An Arena must not be copied, and it must outlive every Adapter, Allocator
// and container that allocates from it. Not goroutine-safe.
type Arena struct {
	buf         []byte
	offset      uintptr
	allocations int
	failed      int
	released    bool
	unmap       func() error
}

// NewArena creates an Arena that owns a zeroed buffer of capacity bytes.
// If capacity <= 0, DefaultCapacity is used.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	// Word-backed so the base address is aligned.
	words := make([]uint64, (capacity+7)/8)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), capacity)
	return &Arena{buf: buf}
}

// NewArenaFromBuffer creates an Arena over a caller-owned buffer. Leading
// bytes are skipped until the base is MaxAlign aligned, so the usable
// capacity may be slightly smaller than len(buf).
func NewArenaFromBuffer(buf []byte) *Arena {
	if len(buf) == 0 {
		return &Arena{buf: buf[:0:0]}
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	pad := int(alignUp(base) - base)
	if pad > len(buf) {
		pad = len(buf)
	}
	return &Arena{buf: buf[pad:]}
}

// AllocBytes returns n bytes carved from the arena. The cursor advances by n
// rounded up to MaxAlign. Returns nil if n <= 0.
//
// If the request does not fit, the cursor is left untouched and the error
// wraps ErrOutOfMemory.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	off, err := a.bump(uintptr(n))
	if err != nil {
		return nil, err
	}
	return a.buf[off : off+uintptr(n) : a.offset], nil
}

// Allocate is the pointer form of AllocBytes.
func (a *Arena) Allocate(size uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, nil
	}
	off, err := a.bump(size)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(&a.buf[off]), nil
}

// Deallocate does nothing. Arena memory is reclaimed only when the arena
// itself goes away.
func (a *Arena) Deallocate(unsafe.Pointer, uintptr) {}

// EnsureCapacity reports ErrOutOfMemory if n more bytes would not fit.
func (a *Arena) EnsureCapacity(n int) error {
	if a.released {
		return ErrReleased
	}
	if n <= 0 {
		return nil
	}
	if !a.fits(uintptr(n)) {
		return a.outOfMemory(uintptr(n))
	}
	return nil
}

// Release makes the arena unusable. Later allocations fail with ErrReleased.
// Memory handed out earlier must no longer be touched once a mapped arena is
// released.
func (a *Arena) Release() error {
	if a.released {
		return nil
	}
	a.released = true
	var err error
	if a.unmap != nil {
		err = a.unmap()
		a.unmap = nil
	}
	a.buf = nil
	return err
}

// Offset returns the current cursor position.
func (a *Arena) Offset() int {
	return int(a.offset)
}

func (a *Arena) bump(n uintptr) (uintptr, error) {
	if a.released {
		return 0, ErrReleased
	}
	if !a.fits(n) {
		a.failed++
		return 0, a.outOfMemory(n)
	}
	off := a.offset
	a.offset += alignUp(n)
	a.allocations++
	return off, nil
}

func (a *Arena) fits(n uintptr) bool {
	size := alignUp(n)
	// size < n catches wraparound of huge requests.
	return size >= n && size <= uintptr(len(a.buf))-a.offset
}

func (a *Arena) outOfMemory(n uintptr) error {
	return errors.Wrapf(ErrOutOfMemory, "requested %s, %s of %s free",
		humanize.IBytes(uint64(n)),
		humanize.IBytes(uint64(uintptr(len(a.buf))-a.offset)),
		humanize.IBytes(uint64(len(a.buf))))
}

// alignUp rounds off up to MaxAlign.
func alignUp(off uintptr) uintptr {
	const mask = MaxAlign - 1
	return (off + mask) &^ mask
}
