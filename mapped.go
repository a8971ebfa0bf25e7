package arena

import (
	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// NewMappedArena creates an Arena backed by an anonymous memory mapping
// rather than the Go heap. The mapping is returned to the operating system by
// Release; every list or allocator using the arena must be done with it by then.
// If capacity <= 0, DefaultCapacity is used.
func NewMappedArena(capacity int) (*Arena, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	m, err := mmap.MapRegion(nil, capacity, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "arena: map %d bytes", capacity)
	}
	a := &Arena{buf: []byte(m)}
	a.unmap = func() error {
		return errors.Wrap(m.Unmap(), "arena: unmap")
	}
	return a, nil
}
