package list

// cursor is the position shared by Iterator and ConstIterator: a slot in a
// ring plus the generation the slot had when the cursor was made.
type cursor[T any] struct {
	r   *ring[T]
	idx uint32
	gen uint32
}

// node returns the node under c, panicking if c no longer refers to a live
// position.
func (c cursor[T]) node() *Node[T] {
	if c.r == nil {
		panic("list: use of zero iterator")
	}
	s := c.r.slots[c.idx]
	if s.gen != c.gen || s.n == nil {
		panic("list: iterator used after its element was erased")
	}
	return s.n
}

func (c cursor[T]) value() *Node[T] {
	n := c.node()
	if c.idx == rootSlot {
		panic("list: dereference of end iterator")
	}
	return n
}

func (c cursor[T]) next() cursor[T] {
	return c.r.cursor(c.node().next)
}

func (c cursor[T]) prev() cursor[T] {
	return c.r.cursor(c.node().prev)
}

func (c cursor[T]) valid() bool {
	if c.r == nil || int(c.idx) >= len(c.r.slots) {
		return false
	}
	s := c.r.slots[c.idx]
	return s.gen == c.gen && s.n != nil
}

// Position is a place in a list: an Iterator or a ConstIterator. Operations
// that only need a location, like Insert and Erase, accept either.
type Position[T any] interface {
	position() cursor[T]
}

// Bidirectional is the cursor protocol Reverse is built on.
type Bidirectional[T, I any] interface {
	Next() I
	Prev() I
	Value() T
	Equal(I) bool
}

// Iterator is a read-write position in a List. It stays valid across every
// insertion and across erasure of any other element.
type Iterator[T any] struct {
	c cursor[T]
}

func (it Iterator[T]) position() cursor[T] { return it.c }

// Next returns the iterator to the following element. Next of the last
// element is End; Next of End wraps to the first element.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.c.next()} }

// Prev returns the iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.c.prev()} }

// Value returns a copy of the element.
func (it Iterator[T]) Value() T { return it.c.value().Value }

// Ptr returns a pointer to the element for in-place modification.
func (it Iterator[T]) Ptr() *T { return &it.c.value().Value }

// Set replaces the element.
func (it Iterator[T]) Set(v T) { it.c.value().Value = v }

// Equal reports whether both iterators refer to the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.c == o.c }

// Valid reports whether the iterator still refers to an element or to End.
func (it Iterator[T]) Valid() bool { return it.c.valid() }

// Const returns the read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.c} }

// Node exposes the node under the iterator.
func (it Iterator[T]) Node() *Node[T] { return it.c.value() }

// ConstIterator is a read-only position in a List. Iterator converts to it
// through Const; there is no conversion back.
type ConstIterator[T any] struct {
	pos cursor[T]
}

func (it ConstIterator[T]) position() cursor[T] { return it.pos }

func (it ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{it.pos.next()} }

func (it ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{it.pos.prev()} }

func (it ConstIterator[T]) Value() T { return it.pos.value().Value }

func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool { return it.pos == o.pos }

func (it ConstIterator[T]) Valid() bool { return it.pos.valid() }

// Reverse walks a bidirectional cursor backwards. It holds the position one
// past the element it yields, so the Reverse of End reads the last element
// and the Reverse of Begin is the reverse end.
type Reverse[T any, I Bidirectional[T, I]] struct {
	base I
}

// MakeReverse returns the reverse cursor whose base is base.
func MakeReverse[T any, I Bidirectional[T, I]](base I) Reverse[T, I] {
	return Reverse[T, I]{base: base}
}

// Base returns the underlying forward cursor.
func (r Reverse[T, I]) Base() I { return r.base }

// Next moves toward the front of the list.
func (r Reverse[T, I]) Next() Reverse[T, I] { return Reverse[T, I]{r.base.Prev()} }

// Prev moves toward the back of the list.
func (r Reverse[T, I]) Prev() Reverse[T, I] { return Reverse[T, I]{r.base.Next()} }

// Value returns the element before the base position.
func (r Reverse[T, I]) Value() T { return r.base.Prev().Value() }

func (r Reverse[T, I]) Equal(o Reverse[T, I]) bool { return r.base.Equal(o.base) }
