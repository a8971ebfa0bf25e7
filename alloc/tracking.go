package alloc

import (
	"unsafe"

	"github.com/pkg/errors"
)

// ErrLimitExceeded is returned by a Tracking resource whose allocation limit
// has been reached.
var ErrLimitExceeded = errors.New("alloc: allocation limit exceeded")

// TrackingStats is a snapshot of a Tracking resource's counters.
type TrackingStats struct {
	Allocations   int // successful Allocate calls
	Deallocations int // Deallocate calls
	Live          int // values allocated and not yet deallocated
	LiveBytes     uintptr
	Refused       int // Allocate calls rejected by the limit or the inner resource
}

// Tracking wraps another resource and counts what flows through it. It is
// the usual way to check that a container releases every node it allocates.
// Each *Tracking is its own identity: two trackers over the same inner
// resource are not equal.
type Tracking struct {
	inner     Resource
	limit     int
	propagate bool
	selectFn  func(*Tracking) Resource
	stats     TrackingStats
}

// TrackingOption configures a Tracking resource.
type TrackingOption func(*Tracking)

// WithLimit makes Allocate fail with ErrLimitExceeded once n successful
// allocations have been made. Zero or negative means no limit.
func WithLimit(n int) TrackingOption {
	return func(t *Tracking) {
		t.limit = n
	}
}

// WithPropagateOnCopyAssignment sets the propagate-on-copy-assignment policy.
func WithPropagateOnCopyAssignment(v bool) TrackingOption {
	return func(t *Tracking) {
		t.propagate = v
	}
}

// WithSelectOnCopyConstruction sets the resource copies of a container should use.
func WithSelectOnCopyConstruction(fn func(*Tracking) Resource) TrackingOption {
	return func(t *Tracking) {
		t.selectFn = fn
	}
}

// NewTracking returns a Tracking resource over inner. A nil inner means Heap.
func NewTracking(inner Resource, opts ...TrackingOption) *Tracking {
	if inner == nil {
		inner = Heap{}
	}
	t := &Tracking{inner: inner}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Allocate forwards to the inner resource unless the limit is reached.
func (t *Tracking) Allocate(l Layout, n int) (unsafe.Pointer, error) {
	if t.limit > 0 && t.stats.Allocations >= t.limit {
		t.stats.Refused++
		return nil, errors.Wrapf(ErrLimitExceeded, "%d allocations made", t.stats.Allocations)
	}
	p, err := t.inner.Allocate(l, n)
	if err != nil {
		t.stats.Refused++
		return nil, err
	}
	t.stats.Allocations++
	t.stats.Live += n
	t.stats.LiveBytes += l.Size * uintptr(n)
	return p, nil
}

// Deallocate forwards to the inner resource.
func (t *Tracking) Deallocate(p unsafe.Pointer, l Layout, n int) {
	t.stats.Deallocations++
	t.stats.Live -= n
	t.stats.LiveBytes -= l.Size * uintptr(n)
	t.inner.Deallocate(p, l, n)
}

// Equal reports whether other is this very tracker.
func (t *Tracking) Equal(other Resource) bool {
	o, ok := other.(*Tracking)
	return ok && o == t
}

// PropagateOnCopyAssignment implements CopyAssignPropagator.
func (t *Tracking) PropagateOnCopyAssignment() bool {
	return t.propagate
}

// SelectOnCopyConstruction implements CopyConstructionSelector.
func (t *Tracking) SelectOnCopyConstruction() Resource {
	if t.selectFn != nil {
		return t.selectFn(t)
	}
	return t
}

// Stats returns a snapshot of the counters.
func (t *Tracking) Stats() TrackingStats {
	return t.stats
}

// Live returns the number of values currently allocated.
func (t *Tracking) Live() int {
	return t.stats.Live
}

// Inner returns the wrapped resource.
func (t *Tracking) Inner() Resource {
	return t.inner
}
