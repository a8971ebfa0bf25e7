package list

import "github.com/pavanmanishd/arena/v2/alloc"

// The functions in this file are for containers built on top of List, such
// as a hash map chaining its buckets through list nodes. They move nodes in
// and out of the ring without allocating, constructing or destroying.

// NodeAllocator returns the allocator l takes its nodes from.
func (l *List[T]) NodeAllocator() alloc.Allocator[Node[T]] {
	return l.alloc
}

// InsertNode links n before pos and hands it over to l. n must come from an
// allocator equal to l.NodeAllocator() and must not be linked anywhere else.
// No node already in the list moves.
func (l *List[T]) InsertNode(pos Position[T], n *Node[T]) Iterator[T] {
	c := l.check(pos)
	if n == nil {
		panic("list: InsertNode of nil node")
	}
	idx := l.r.attach(n)
	l.r.linkBefore(c.idx, idx)
	l.size++
	return Iterator[T]{l.r.cursor(idx)}
}

// UnlinkNode removes the element at pos from l without destroying it or
// releasing its memory, and returns the node. The caller owns it afterwards.
func (l *List[T]) UnlinkNode(pos Position[T]) *Node[T] {
	c := l.check(pos)
	if c.idx == rootSlot {
		panic("list: unlink of end iterator")
	}
	n := l.r.node(c.idx)
	l.r.unlink(c.idx)
	l.r.detach(c.idx)
	l.size--
	return n
}
