package arena_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/arena/v2"
	alist "github.com/pavanmanishd/arena/v2/list"
)

// BenchmarkWorstCaseScenarios tests scenarios where arena might perform poorly
// These benchmarks help identify when NOT to use arena allocation
func BenchmarkWorstCaseScenarios(b *testing.B) {

	// Every allocation is rounded up to MaxAlign, so tiny requests waste most
	// of what they take.
	b.Run("TinyAllocations", func(b *testing.B) {
		b.Run("Arena_1B", func(b *testing.B) {
			a := arena.NewArena(64 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				allocOrRenew(&a, 1)
			}
			b.ReportMetric(a.Utilization()*100, "%used")
		})

		b.Run("Builtin_1B", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = make([]byte, 1)
			}
		})
	})

	// A full arena keeps refusing; the error path builds a message each time.
	b.Run("OutOfMemory", func(b *testing.B) {
		a := arena.NewArena(64)
		_, _ = a.AllocBytes(64)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			if _, err := a.AllocBytes(8); err == nil {
				b.Fatal("expected out of memory")
			}
		}
	})

	// Erased list nodes are never returned to the arena, so churn exhausts it.
	b.Run("ListChurn", func(b *testing.B) {
		for _, capacity := range []int{4 * 1024, 64 * 1024} {
			b.Run(fmt.Sprintf("Arena_%dKB", capacity/1024), func(b *testing.B) {
				a := arena.NewArena(capacity)
				l := alist.New(alist.WithAllocator(arena.NewAllocator[int64](a)))
				renewals := 0
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if err := l.PushBack(int64(i)); err != nil {
						a = arena.NewArena(capacity)
						l = alist.New(alist.WithAllocator(arena.NewAllocator[int64](a)))
						renewals++
						continue
					}
					l.PopFront()
				}
				b.ReportMetric(float64(renewals), "renewals")
			})
		}

		b.Run("Heap", func(b *testing.B) {
			l := alist.New[int64]()
			for i := 0; i < b.N; i++ {
				_ = l.PushBack(int64(i))
				l.PopFront()
			}
		})
	})

	// Arena creation cost dominates when it backs a single allocation.
	b.Run("SingleLargeAllocations", func(b *testing.B) {
		sizes := []int{64 * 1024, 256 * 1024, 1024 * 1024}

		for _, size := range sizes {
			b.Run(fmt.Sprintf("Arena_%dKB", size/1024), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					a := arena.NewArena(size)
					_, _ = a.AllocBytes(size)
				}
			})

			b.Run(fmt.Sprintf("Builtin_%dKB", size/1024), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_ = make([]byte, size)
				}
			})
		}
	})
}
