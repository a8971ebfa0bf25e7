package list

import (
	"iter"

	"github.com/go-kit/log/level"

	"github.com/pavanmanishd/arena/v2/alloc"
)

// List is a doubly-linked list whose nodes come from an allocator.
//
// The zero value is not usable; create lists with New, NewN or NewFilled.
// A List must not be copied by value: use Clone, Assign or Swap.
type List[T any] struct {
	r     *ring[T]
	size  int
	alloc alloc.Allocator[Node[T]]
	opts  options[T]
}

// New returns an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	o := buildOptions(opts)
	return newList(o, alloc.Rebind[Node[T]](o.alloc))
}

// NewN returns a list of n default elements: zero values, or whatever the
// WithConstructor function builds.
func NewN[T any](n int, opts ...Option[T]) (*List[T], error) {
	l := New(opts...)
	if err := l.fill(n, l.opts.construct); err != nil {
		return nil, err
	}
	return l, nil
}

// NewFilled returns a list of n copies of v.
func NewFilled[T any](n int, v T, opts ...Option[T]) (*List[T], error) {
	l := New(opts...)
	err := l.fill(n, func() (T, error) {
		return l.opts.copy(v)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func newList[T any](o options[T], a alloc.Allocator[Node[T]]) *List[T] {
	return &List[T]{r: newRing[T](), alloc: a, opts: o}
}

// fill appends n elements built by mk to an empty list. If any element
// fails, the ones already built are destroyed and released.
func (l *List[T]) fill(n int, mk func() (T, error)) error {
	for i := 0; i < n; i++ {
		if _, err := l.emplace(rootSlot, mk); err != nil {
			l.rollback(i, err)
			return err
		}
	}
	return nil
}

// copyFrom appends copies of the elements of src to an empty list.
func (l *List[T]) copyFrom(src *List[T]) error {
	built := 0
	for idx := src.r.root.next; idx != rootSlot; idx = src.r.node(idx).next {
		v := src.r.node(idx).Value
		_, err := l.emplace(rootSlot, func() (T, error) {
			return l.opts.copy(v)
		})
		if err != nil {
			l.rollback(built, err)
			return err
		}
		built++
	}
	return nil
}

func (l *List[T]) rollback(built int, err error) {
	level.Debug(l.opts.logger).Log("msg", "rolling back partial construction", "built", built, "err", err)
	l.Clear()
}

// emplace allocates a node, builds its value with mk and links it before
// the slot at. Nothing is linked unless both steps succeed.
func (l *List[T]) emplace(at uint32, mk func() (T, error)) (uint32, error) {
	n, err := l.alloc.New()
	if err != nil {
		level.Debug(l.opts.logger).Log("msg", "node allocation failed", "size", l.size, "err", err)
		return 0, err
	}
	v, err := mk()
	if err != nil {
		l.alloc.Free(n)
		level.Debug(l.opts.logger).Log("msg", "element construction failed", "size", l.size, "err", err)
		return 0, err
	}
	n.Value = v
	idx := l.r.attach(n)
	l.r.linkBefore(at, idx)
	l.size++
	return idx, nil
}

// release destroys the value of an unlinked node and returns its memory.
func (l *List[T]) release(n *Node[T]) {
	if l.opts.destroy != nil {
		l.opts.destroy(&n.Value)
	}
	l.alloc.Free(n)
}

// check returns the cursor behind pos after making sure it is a live
// position in l.
func (l *List[T]) check(pos Position[T]) cursor[T] {
	c := pos.position()
	if c.r != l.r {
		if c.r == nil {
			panic("list: use of zero iterator")
		}
		panic("list: iterator belongs to another list")
	}
	c.node()
	return c
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Allocator returns the list's allocator, bound to the element type.
func (l *List[T]) Allocator() alloc.Allocator[T] {
	return alloc.Rebind[T](l.alloc)
}

// Begin returns an iterator to the first element, or End if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l.r.cursor(l.r.root.next)}
}

// End returns the iterator one past the last element.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{l.r.cursor(rootSlot)}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// RBegin returns a reverse iterator to the last element.
func (l *List[T]) RBegin() Reverse[T, Iterator[T]] {
	return MakeReverse[T](l.End())
}

// REnd returns the reverse iterator one before the first element.
func (l *List[T]) REnd() Reverse[T, Iterator[T]] {
	return MakeReverse[T](l.Begin())
}

func (l *List[T]) CRBegin() Reverse[T, ConstIterator[T]] {
	return MakeReverse[T](l.CEnd())
}

func (l *List[T]) CREnd() Reverse[T, ConstIterator[T]] {
	return MakeReverse[T](l.CBegin())
}

// Front returns the first element.
func (l *List[T]) Front() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	return l.Begin().Value(), true
}

// Back returns the last element.
func (l *List[T]) Back() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	return l.End().Prev().Value(), true
}

// Insert copies v into a new element placed before pos and returns an
// iterator to it. On error the list is unchanged.
func (l *List[T]) Insert(pos Position[T], v T) (Iterator[T], error) {
	c := l.check(pos)
	idx, err := l.emplace(c.idx, func() (T, error) {
		return l.opts.copy(v)
	})
	if err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{l.r.cursor(idx)}, nil
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it. Only iterators to the erased element are invalidated.
// Erasing End panics.
func (l *List[T]) Erase(pos Position[T]) Iterator[T] {
	c := l.check(pos)
	if c.idx == rootSlot {
		panic("list: erase of end iterator")
	}
	n := l.r.node(c.idx)
	next := l.r.unlink(c.idx)
	l.r.detach(c.idx)
	l.size--
	l.release(n)
	return Iterator[T]{l.r.cursor(next)}
}

// PushBack appends a copy of v.
func (l *List[T]) PushBack(v T) error {
	_, err := l.Insert(l.End(), v)
	return err
}

// PushFront prepends a copy of v.
func (l *List[T]) PushFront(v T) error {
	_, err := l.Insert(l.Begin(), v)
	return err
}

// PopBack removes the last element. It panics on an empty list.
func (l *List[T]) PopBack() {
	l.Erase(l.End().Prev())
}

// PopFront removes the first element. It panics on an empty list.
func (l *List[T]) PopFront() {
	l.Erase(l.Begin())
}

// Clear destroys every element and releases its node. The list stays usable.
func (l *List[T]) Clear() {
	idx := l.r.root.next
	for idx != rootSlot {
		n := l.r.node(idx)
		next := n.next
		l.r.detach(idx)
		l.release(n)
		idx = next
	}
	l.r.root.prev, l.r.root.next = rootSlot, rootSlot
	l.size = 0
}

// Clone returns a deep copy of l. The copy allocates from the resource chosen
// by alloc.SelectOnCopyConstruction. If copying any element fails, nothing
// is leaked and the error is returned.
func (l *List[T]) Clone() (*List[T], error) {
	a := alloc.New[Node[T]](alloc.SelectOnCopyConstruction(l.alloc.Resource()))
	c := newList(l.opts, a)
	if err := c.copyFrom(l); err != nil {
		return nil, err
	}
	return c, nil
}

// Assign replaces the contents of l with copies of the elements of src.
//
// l keeps its own allocator unless src's resource asks for propagation on
// copy assignment. The copy is built in full before l is touched, so if it
// fails l is left exactly as it was.
func (l *List[T]) Assign(src *List[T]) error {
	if src == l {
		return nil
	}
	a := l.alloc
	if alloc.PropagateOnCopyAssignment(src.alloc.Resource()) {
		a = src.alloc
	}
	tmp := newList(l.opts, a)
	if err := tmp.copyFrom(src); err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()
	return nil
}

// Swap exchanges the contents and allocators of l and o in O(1). Iterators
// keep referring to the same elements, which now belong to the other list.
func (l *List[T]) Swap(o *List[T]) {
	*l, *o = *o, *l
}

// All yields the elements front to back. The element being visited may be
// erased during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := l.End()
		for it := l.Begin(); !it.Equal(end); {
			next := it.Next()
			if !yield(it.Value()) {
				return
			}
			it = next
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := l.End()
		for it := end.Prev(); !it.Equal(end); {
			prev := it.Prev()
			if !yield(it.Value()) {
				return
			}
			it = prev
		}
	}
}
