// Package arena implements a fixed-capacity bump allocator (memory arena) for Go,
// and an adapter that lets containers allocate from it.
//
// # Overview
//
// An Arena hands out regions of a single buffer by advancing a cursor. There is
// no individual deallocation: memory stays in use until the arena itself is
// released. This makes allocation a bounds check and an addition, and it keeps
// related objects packed together. The arena never grows; a request that does
// not fit is reported with ErrOutOfMemory and leaves the arena unchanged.
//
// # Basic Usage
//
//	a := arena.NewArena(4096)
//	defer a.Release()
//
//	buf, err := a.AllocBytes(128)
//	p, err := arena.Alloc[Point](a)
//	s, err := arena.AllocSlice[uint32](a, 16)
//
// # Containers
//
// Adapter implements alloc.Resource, so any container written against the alloc
// package can be pointed at an arena:
//
//	a := arena.NewArena(1 << 20)
//	l := list.New(list.WithAllocator(arena.NewAllocator[int](a)))
//
// Two adapters are equal when they refer to the same Arena.
//
// # Memory Layout
//
// Every region starts at a multiple of MaxAlign, the largest scalar alignment of
// the platform, and every request is rounded up to a multiple of it. Arena
// memory is not scanned by the garbage collector, so typed allocations refuse
// element types holding Go pointers (strings, slices, maps, interfaces, ...)
// with ErrPointerType.
//
// # Lifetimes
//
//   - The arena must outlive every Adapter, allocator and container using it.
//   - Nothing checks this at runtime beyond refusing allocation after Release.
//   - Memory from a mapped arena (NewMappedArena) must not be touched after Release.
//   - Arenas are not goroutine-safe.
//
// # Metrics and Monitoring
//
//	fmt.Println(a.Metrics()) // 1.0 KiB / 4.0 KiB (25.0%), 3 allocations, 0 failed
//
// Collector exports the same numbers to Prometheus.
package arena
