package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mulcheck/internal/format"
	"github.com/agbru/mulcheck/internal/metrics"
)

// MetricsModel displays runtime memory and verification throughput.
type MetricsModel struct {
	heapAlloc    uint64
	sys          uint64
	numGC        uint32
	numGoroutine int

	totalVectors int
	// rate is the smoothed throughput in vectors per second.
	rate         float64
	lastProgress float64
	lastUpdate   time.Time

	passed, failed int
	width, height  int
}

// NewMetricsModel creates a new metrics panel for a run of totalVectors.
func NewMetricsModel(totalVectors int) MetricsModel {
	return MetricsModel{
		totalVectors: totalVectors,
		lastUpdate:   time.Now(),
	}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.heapAlloc = msg.HeapAlloc
	m.sys = msg.Sys
	m.numGC = msg.NumGC
	m.numGoroutine = msg.NumGoroutine
}

// UpdateProgress folds the run-wide progress into the throughput estimate.
// Updates closer than 50ms are merged with the next one.
func (m *MetricsModel) UpdateProgress(progress float64) {
	now := time.Now()
	dt := now.Sub(m.lastUpdate).Seconds()
	if dt <= 0.05 {
		return
	}
	if dp := progress - m.lastProgress; dp > 0 {
		instant := dp * float64(m.totalVectors) / dt
		if m.rate > 0 {
			m.rate = 0.7*m.rate + 0.3*instant
		} else {
			m.rate = instant
		}
	}
	m.lastProgress = progress
	m.lastUpdate = now
}

// Rate returns the smoothed throughput in vectors per second.
func (m MetricsModel) Rate() float64 { return m.rate }

// SetCounts stores the final vector counts.
func (m *MetricsModel) SetCounts(passed, failed int) {
	m.passed = passed
	m.failed = failed
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder

	heap := metricValueStyle.Render(metrics.FormatBytes(m.heapAlloc) + " / " + metrics.FormatBytes(m.sys))
	pipe := metricLabelStyle.Render(" | ")
	rows.WriteString(fmt.Sprintf("  %s %s%s%s %s",
		metricLabelStyle.Render("Heap:"), heap, pipe,
		metricLabelStyle.Render("GC:"), metricValueStyle.Render(fmt.Sprintf("%d", m.numGC))))

	colWidth := (m.width - 6) / 2
	rate := "-"
	if m.rate > 0 {
		rate = format.FormatNumberString(fmt.Sprintf("%.0f", m.rate)) + " vec/s"
	}
	left := []string{
		formatMetricCol("Throughput:", rate, colWidth),
		formatMetricCol("Passed:", format.FormatNumberString(fmt.Sprintf("%d", m.passed)), colWidth),
	}
	right := []string{
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
		formatMetricCol("Failed:", format.FormatNumberString(fmt.Sprintf("%d", m.failed)), colWidth),
	}
	for i := range left {
		rows.WriteString("\n")
		rows.WriteString(left[i])
		rows.WriteString(right[i])
	}

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
