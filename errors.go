package arena

import "github.com/pkg/errors"

var (
	// ErrOutOfMemory is returned when a request does not fit in the arena's
	// remaining capacity.
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrReleased is returned by allocations on a released arena.
	ErrReleased = errors.New("arena: use after Release()")

	// ErrPointerType is returned when asked to hold a type containing Go
	// pointers. Arena memory is not scanned by the garbage collector, so such
	// values could reference memory that has already been collected.
	ErrPointerType = errors.New("arena: type contains pointers")
)
