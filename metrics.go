package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// SizeInUse returns the number of bytes handed out, including alignment padding.
func (a *Arena) SizeInUse() int {
	if a.released {
		return 0
	}
	return int(a.offset)
}

// Capacity returns the usable size of the arena's buffer in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the number of bytes still available.
func (a *Arena) Remaining() int {
	return a.Capacity() - a.SizeInUse()
}

// Allocations returns the number of successful allocations.
func (a *Arena) Allocations() int {
	return a.allocations
}

// Failed returns the number of allocations refused for lack of space.
func (a *Arena) Failed() int {
	return a.failed
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Allocations: a.Allocations(),
		Failed:      a.Failed(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	Allocations int     // Successful allocations
	Failed      int     // Allocations refused for lack of space
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

func (m ArenaMetrics) String() string {
	return fmt.Sprintf("%s / %s (%.1f%%), %d allocations, %d failed",
		humanize.IBytes(uint64(m.SizeInUse)),
		humanize.IBytes(uint64(m.Capacity)),
		m.Utilization*100,
		m.Allocations,
		m.Failed)
}
