package arena

import "github.com/pavanmanishd/arena/v2/alloc"

// NewAllocator returns a typed allocator for T drawing from a.
func NewAllocator[T any](a *Arena) alloc.Allocator[T] {
	return alloc.New[T](NewAdapter(a))
}

// Alloc returns a pointer to a zeroed T stored inside the arena.
// The pointer is valid as long as the arena is.
func Alloc[T any](a *Arena) (*T, error) {
	return NewAllocator[T](a).New()
}

// AllocSlice allocates a zeroed slice of n elements of type T inside the arena.
// Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	return NewAllocator[T](a).Allocate(n)
}
