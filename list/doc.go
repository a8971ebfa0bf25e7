// Package list implements a generic doubly-linked list whose nodes are
// obtained from an allocator.
//
// The list runs unchanged over the Go heap (the default) or over a
// fixed-capacity arena:
//
//	a := arena.NewArena(1 << 16)
//	l := list.New(list.WithAllocator(arena.NewAllocator[int](a)))
//	if err := l.PushBack(1); err != nil {
//		// arena.ErrOutOfMemory once the arena is full
//	}
//
// # Structure
//
// Elements form a circular ring anchored at a sentinel, which is the End
// position. Nodes refer to each other by slot index instead of by pointer,
// so node memory holds no Go pointers and can live in an arena.
//
// # Iterators
//
// Iterator and ConstIterator are positions in the ring. Both are accepted
// wherever a Position is expected; an Iterator becomes a ConstIterator
// through Const, never the reverse. Reverse adapts either one for backward
// traversal. An iterator stays valid until its own element is erased; using
// it afterwards panics.
//
// # Errors
//
// Allocation and element construction (WithConstructor, WithCopier) may fail.
// Every operation that builds elements undoes its partial work before
// returning the error: no node is leaked and no element is destroyed twice.
// Assign has the strong guarantee: on failure the destination is unchanged.
// Misuse, such as erasing End or using a stale iterator, panics.
//
// A List is not goroutine-safe, and it must not outlive the arena, if any,
// its nodes live in.
package list
