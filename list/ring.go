package list

// rootSlot is the slot of the sentinel. It is never freed, so its generation
// never changes and End iterators stay valid for the life of the ring.
const rootSlot uint32 = 0

// Node is one element of a list. Nodes live in memory obtained from the
// list's allocator and link to their neighbours by slot index, so a Node
// holds no Go pointers of its own.
type Node[T any] struct {
	prev, next uint32
	Value      T
}

type slot[T any] struct {
	n   *Node[T]
	gen uint32
}

// ring is the circular node graph of a list: a slot map from stable indices
// to nodes, anchored at the sentinel in slot 0. A list refers to its ring by
// pointer, so swapping lists never moves the sentinel.
type ring[T any] struct {
	slots []slot[T]
	free  []uint32
	root  Node[T]
}

func newRing[T any]() *ring[T] {
	r := &ring[T]{}
	r.slots = []slot[T]{{n: &r.root}}
	return r
}

func (r *ring[T]) node(idx uint32) *Node[T] {
	return r.slots[idx].n
}

// attach gives n a slot, reusing a freed one when available.
func (r *ring[T]) attach(n *Node[T]) uint32 {
	if k := len(r.free); k > 0 {
		idx := r.free[k-1]
		r.free = r.free[:k-1]
		r.slots[idx].n = n
		return idx
	}
	r.slots = append(r.slots, slot[T]{n: n})
	return uint32(len(r.slots) - 1)
}

// detach frees the slot of an unlinked node. Bumping the generation is what
// makes iterators to the old node detectably stale.
func (r *ring[T]) detach(idx uint32) {
	r.slots[idx].n = nil
	r.slots[idx].gen++
	r.free = append(r.free, idx)
}

// linkBefore splices the node in slot idx in front of the node in slot at.
func (r *ring[T]) linkBefore(at, idx uint32) {
	next := r.node(at)
	prev := r.node(next.prev)
	n := r.node(idx)
	n.prev = next.prev
	n.next = at
	prev.next = idx
	next.prev = idx
}

// unlink removes the node in slot idx from the ring and returns the slot
// that followed it.
func (r *ring[T]) unlink(idx uint32) uint32 {
	n := r.node(idx)
	r.node(n.prev).next = n.next
	r.node(n.next).prev = n.prev
	next := n.next
	n.prev, n.next = 0, 0
	return next
}

func (r *ring[T]) cursor(idx uint32) cursor[T] {
	return cursor[T]{r: r, idx: idx, gen: r.slots[idx].gen}
}
