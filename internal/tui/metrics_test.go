package tui

import (
	"strings"
	"testing"
	"time"
)

func TestMetricsModel_UpdateMemStats(t *testing.T) {
	m := NewMetricsModel(100)

	msg := MemStatsMsg{
		HeapAlloc:    50 << 20,
		Sys:          80 << 20,
		NumGC:        10,
		NumGoroutine: 8,
	}
	m.UpdateMemStats(msg)

	if m.heapAlloc != msg.HeapAlloc || m.sys != msg.Sys {
		t.Errorf("memory = (%d, %d), want (%d, %d)", m.heapAlloc, m.sys, msg.HeapAlloc, msg.Sys)
	}
	if m.numGC != msg.NumGC {
		t.Errorf("numGC = %d, want %d", m.numGC, msg.NumGC)
	}
	if m.numGoroutine != msg.NumGoroutine {
		t.Errorf("numGoroutine = %d, want %d", m.numGoroutine, msg.NumGoroutine)
	}
}

func TestMetricsModel_UpdateProgress(t *testing.T) {
	m := NewMetricsModel(1000)
	m.lastUpdate = time.Now().Add(-time.Second)

	m.UpdateProgress(0.5)
	// 500 vectors in about a second.
	if r := m.Rate(); r < 250 || r > 550 {
		t.Errorf("Rate() = %f, want about 500", r)
	}
	if m.lastProgress != 0.5 {
		t.Errorf("lastProgress = %f, want 0.5", m.lastProgress)
	}
}

func TestMetricsModel_UpdateProgress_Smoothing(t *testing.T) {
	m := NewMetricsModel(1000)
	m.lastUpdate = time.Now().Add(-time.Second)
	m.UpdateProgress(0.3)
	first := m.Rate()
	if first <= 0 {
		t.Fatal("precondition: first rate should be positive")
	}

	m.lastUpdate = time.Now().Add(-500 * time.Millisecond)
	m.UpdateProgress(0.8)
	// Instant rate is about 1000; the smoothed value lies in between.
	if r := m.Rate(); r <= first || r >= 1000 {
		t.Errorf("smoothed rate %f not between %f and 1000", r, first)
	}
}

func TestMetricsModel_UpdateProgress_TooSoon(t *testing.T) {
	m := NewMetricsModel(1000)
	m.lastUpdate = time.Now()
	m.UpdateProgress(0.9)
	if m.Rate() != 0 || m.lastProgress != 0 {
		t.Error("updates within 50ms should be merged")
	}
}

func TestMetricsModel_View(t *testing.T) {
	m := NewMetricsModel(100)
	m.SetSize(60, 5)
	m.UpdateMemStats(MemStatsMsg{HeapAlloc: 2048, Sys: 4096, NumGC: 3, NumGoroutine: 12})
	m.SetCounts(1234, 2)

	view := m.View()
	for _, want := range []string{"Heap:", "GC:", "Throughput:", "Goroutines:", "Passed:", "1,234", "Failed:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
