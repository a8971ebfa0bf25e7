package arena

import (
	"testing"

	"github.com/pavanmanishd/arena/v2/alloc"
)

// BenchmarkRealisticUsage compares arena-backed and heap-backed typed
// allocation through the same allocator handle.
func BenchmarkRealisticUsage(b *testing.B) {
	type record struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("StructAllocs/Arena", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a := NewArena(64 * 64)
			records := NewAllocator[record](a)
			for j := 0; j < 50; j++ {
				r, err := records.New()
				if err != nil {
					b.Fatal(err)
				}
				r.ID = int64(j)
			}
		}
	})

	b.Run("StructAllocs/Heap", func(b *testing.B) {
		b.ReportAllocs()
		records := alloc.New[record](alloc.Heap{})
		for i := 0; i < b.N; i++ {
			for j := 0; j < 50; j++ {
				r, err := records.New()
				if err != nil {
					b.Fatal(err)
				}
				r.ID = int64(j)
			}
		}
	})

	b.Run("SliceAllocs/Arena", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a := NewArena(16 * 1024)
			for j := 0; j < 10; j++ {
				s, err := AllocSlice[int64](a, 128)
				if err != nil {
					b.Fatal(err)
				}
				s[0] = int64(j)
			}
		}
	})

	b.Run("SliceAllocs/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 10; j++ {
				s := make([]int64, 128)
				s[0] = int64(j)
			}
		}
	})
}
