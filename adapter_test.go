package arena

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/arena/v2/alloc"
)

type pair struct {
	k, v uint32
}

func TestAdapterEquality(t *testing.T) {
	a1 := NewArena(256)
	a2 := NewArena(256)

	assert.True(t, NewAdapter(a1).Equal(NewAdapter(a1)))
	assert.False(t, NewAdapter(a1).Equal(NewAdapter(a2)))
	assert.False(t, NewAdapter(a1).Equal(alloc.Heap{}))

	ints := NewAllocator[int](a1)
	pairs := alloc.Rebind[pair](ints)
	assert.True(t, alloc.Equal(ints, pairs), "rebinding keeps the arena")
	assert.False(t, alloc.Equal(ints, NewAllocator[pair](a2)))

	copied := ints
	assert.True(t, copied.Equal(ints))
	assert.Same(t, a1, copied.Resource().(Adapter).Arena())
}

func TestAdapterAllocate(t *testing.T) {
	a := NewArena(256)
	pairs := NewAllocator[pair](a)

	s, err := pairs.Allocate(4)
	require.NoError(t, err)
	require.Len(t, s, 4)
	assert.Equal(t, 32, a.Offset())

	s[3] = pair{1, 2}
	pairs.Deallocate(s)
	assert.Equal(t, 32, a.Offset(), "deallocation is a no-op")
	assert.Equal(t, pair{1, 2}, s[3], "arena memory is not reclaimed")

	p, err := pairs.New()
	require.NoError(t, err)
	pairs.Free(p)
	assert.Equal(t, 40, a.Offset())
}

func TestAdapterErrors(t *testing.T) {
	a := NewArena(16)
	ad := NewAdapter(a)

	_, err := ad.Allocate(alloc.LayoutOf[*int](), 1)
	assert.True(t, errors.Is(err, ErrPointerType))

	_, err = ad.Allocate(alloc.LayoutOf[uint64](), 3)
	assert.True(t, errors.Is(err, ErrOutOfMemory))

	p, err := ad.Allocate(alloc.LayoutOf[struct{}](), 5)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, 0, a.Offset())

	require.NoError(t, a.Release())
	_, err = ad.Allocate(alloc.LayoutOf[uint64](), 1)
	assert.True(t, errors.Is(err, ErrReleased))
}

func TestAdapterThroughTracking(t *testing.T) {
	a := NewArena(1024)
	tr := alloc.NewTracking(NewAdapter(a), alloc.WithLimit(2))
	ints := alloc.New[int64](tr)

	_, err := ints.Allocate(2)
	require.NoError(t, err)
	_, err = ints.Allocate(2)
	require.NoError(t, err)
	_, err = ints.Allocate(2)
	assert.True(t, errors.Is(err, alloc.ErrLimitExceeded))

	assert.Equal(t, 32, a.Offset())
	assert.Equal(t, 4, tr.Live())
}
