package metrics

import (
	"fmt"
	"runtime"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc  uint64 // bytes in use
	Sys        uint64 // bytes obtained from the OS
	TotalAlloc uint64 // cumulative bytes allocated
	Mallocs    uint64 // cumulative heap objects allocated
	NumGC      uint32
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:  m.HeapAlloc,
		Sys:        m.Sys,
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		NumGC:      m.NumGC,
	}
}

// MemoryDelta is the allocation activity between two snapshots.
type MemoryDelta struct {
	Allocated uint64
	Objects   uint64
	GCs       uint32
}

// Since returns the activity from before to s.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		Allocated: s.TotalAlloc - before.TotalAlloc,
		Objects:   s.Mallocs - before.Mallocs,
		GCs:       s.NumGC - before.NumGC,
	}
}

func (d MemoryDelta) String() string {
	return fmt.Sprintf("%s in %d objects, %d GC", FormatBytes(d.Allocated), d.Objects, d.GCs)
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
