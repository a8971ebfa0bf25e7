package list

import (
	"bytes"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/arena/v2/alloc"
)

func TestNewN(t *testing.T) {
	l, err := NewN[int](3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, values(l))
	require.NoError(t, l.Validate())

	empty, err := NewN[int](0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestNewNWithConstructor(t *testing.T) {
	next := 0
	l, err := NewN(3, WithConstructor(func() (int, error) {
		next++
		return next, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values(l))
}

func TestNewFilled(t *testing.T) {
	l, err := NewFilled(3, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, values(l))

	empty, err := NewFilled(0, "x")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestNewNRollsBackOnConstructionFailure(t *testing.T) {
	tr := alloc.NewTracking(nil)
	d := destroyLog{}
	next := 0
	ctor := func() (int, error) {
		next++
		if next == 4 {
			return 0, errBoom
		}
		return next, nil
	}

	l, err := NewN(5, WithResource[int](tr), WithConstructor(ctor), WithDestructor(d.destroy))
	require.Nil(t, l)
	assert.Equal(t, errBoom, err, "the constructor's error is returned unchanged")

	assert.Equal(t, destroyLog{1: 1, 2: 1, 3: 1}, d, "each built element destroyed exactly once")
	assert.Equal(t, 0, tr.Live(), "no node leaked")
	assert.Equal(t, 4, tr.Stats().Allocations)
	assert.Equal(t, 4, tr.Stats().Deallocations)
}

func TestNewNRollsBackOnAllocationFailure(t *testing.T) {
	tr := alloc.NewTracking(nil, alloc.WithLimit(2))
	destroyed := 0

	l, err := NewN(5, WithResource[int](tr), WithDestructor(func(*int) { destroyed++ }))
	require.Nil(t, l)
	assert.True(t, errors.Is(err, alloc.ErrLimitExceeded))
	assert.Equal(t, 2, destroyed)
	assert.Equal(t, 0, tr.Live())
}

func TestNewFilledRollsBackOnCopyFailure(t *testing.T) {
	tr := alloc.NewTracking(nil)
	cc := &copyCounter{failAt: 3}
	d := destroyLog{}

	l, err := NewFilled(5, 8, WithResource[int](tr), WithCopier(cc.copy), WithDestructor(d.destroy))
	require.Nil(t, l)
	assert.Equal(t, errBoom, err)
	assert.Equal(t, destroyLog{8: 2}, d)
	assert.Equal(t, 0, tr.Live())
}

func TestInsertFailureLeavesListUnchanged(t *testing.T) {
	tr := alloc.NewTracking(nil)
	cc := &copyCounter{}
	d := destroyLog{}
	l := fromSlice(t, []int{1, 2, 3}, WithResource[int](tr), WithCopier(cc.copy), WithDestructor(d.destroy))
	mid := l.Begin().Next()

	cc.failIn(1)
	it, err := l.Insert(mid, 99)
	assert.Equal(t, errBoom, err)
	assert.False(t, it.Valid())

	assert.Equal(t, []int{1, 2, 3}, values(l))
	assert.Equal(t, 3, l.Len())
	assert.Empty(t, d, "a value that was never built is never destroyed")
	assert.Equal(t, 3, tr.Live(), "the unconstructed node was released")
	assert.True(t, mid.Valid())
	require.NoError(t, l.Validate())

	cc.failIn(1)
	assert.Equal(t, errBoom, l.PushFront(0))
	cc.failIn(1)
	assert.Equal(t, errBoom, l.PushBack(4))
	assert.Equal(t, []int{1, 2, 3}, values(l))
}

func TestInsertAllocationFailure(t *testing.T) {
	tr := alloc.NewTracking(nil, alloc.WithLimit(2))
	l := fromSlice(t, []int{1, 2}, WithResource[int](tr))

	err := l.PushBack(3)
	assert.True(t, errors.Is(err, alloc.ErrLimitExceeded))
	assert.Equal(t, []int{1, 2}, values(l))
	require.NoError(t, l.Validate())
}

func TestRollbackIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := level.NewFilter(log.NewLogfmtLogger(&buf), level.AllowDebug())
	cc := &copyCounter{failAt: 3}

	_, err := NewFilled(4, 1, WithCopier(cc.copy), WithLogger[int](logger))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="element construction failed"`)
	assert.Contains(t, out, `msg="rolling back partial construction"`)
	assert.Contains(t, out, "built=2")
	assert.Contains(t, out, "err=boom")
}
