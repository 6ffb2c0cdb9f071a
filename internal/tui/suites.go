package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mulcheck/internal/harness"
)

// SuiteStatus is the state of one row of the suite panel.
type SuiteStatus int

const (
	StatusPending SuiteStatus = iota
	StatusRunning
	StatusPassed
	StatusFailed
	StatusStopped
)

func (s SuiteStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPassed:
		return "ok"
	case StatusFailed:
		return "FAIL"
	case StatusStopped:
		return "stopped"
	}
	return "pending"
}

type suiteRow struct {
	name     string
	vectors  int
	progress float64
	status   SuiteStatus
	failed   int
}

// SuitesModel lists every suite with its progress and outcome.
type SuitesModel struct {
	rows   []suiteRow
	cursor int
	offset int
	width  int
	height int
}

// NewSuitesModel creates the panel for suites.
func NewSuitesModel(suites []harness.Suite) SuitesModel {
	rows := make([]suiteRow, len(suites))
	for i, s := range suites {
		rows[i] = suiteRow{name: s.Name, vectors: len(s.Vectors)}
	}
	return SuitesModel{rows: rows}
}

// SetSize updates dimensions.
func (m *SuitesModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.clampOffset()
}

// SetProgress records the progress of suite i. Out of range indices are
// ignored.
func (m *SuitesModel) SetProgress(i int, value float64) {
	if i < 0 || i >= len(m.rows) {
		return
	}
	r := &m.rows[i]
	r.progress = value
	if r.status == StatusPending {
		r.status = StatusRunning
	}
}

// ApplyReport sets the final status of every suite from report.
func (m *SuitesModel) ApplyReport(report harness.Report) {
	for i, res := range report.Suites {
		if i >= len(m.rows) {
			break
		}
		r := &m.rows[i]
		r.failed = res.Failed
		r.progress = 1
		switch {
		case res.Failed > 0:
			r.status = StatusFailed
		case res.Err != nil:
			r.status = StatusStopped
		default:
			r.status = StatusPassed
		}
	}
}

// Counts returns the number of passed and failed suites.
func (m SuitesModel) Counts() (passed, failed int) {
	for _, r := range m.rows {
		switch r.status {
		case StatusPassed:
			passed++
		case StatusFailed:
			failed++
		}
	}
	return passed, failed
}

// Reset returns every row to pending.
func (m *SuitesModel) Reset() {
	for i := range m.rows {
		m.rows[i] = suiteRow{name: m.rows[i].name, vectors: m.rows[i].vectors}
	}
	m.cursor, m.offset = 0, 0
}

// MoveCursor moves the selection by delta rows, scrolling as needed.
func (m *SuitesModel) MoveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
}

// NextFailure moves the cursor to the next failed suite after it, wrapping
// around the list. It reports false, leaving the cursor alone, when no suite
// has failed.
func (m *SuitesModel) NextFailure() bool {
	n := len(m.rows)
	for step := 1; step <= n; step++ {
		if i := (m.cursor + step) % n; m.rows[i].status == StatusFailed {
			m.cursor = i
			m.clampOffset()
			return true
		}
	}
	return false
}

// PageSize is the number of visible rows.
func (m SuitesModel) PageSize() int {
	// Borders and the column header.
	if n := m.height - 3; n > 1 {
		return n
	}
	return 1
}

func (m *SuitesModel) clampOffset() {
	page := m.PageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Column widths of the suite table.
const (
	colWidthName   = 34
	colWidthCount  = 7
	colWidthStatus = 10
)

// View renders the panel.
func (m SuitesModel) View() string {
	var b strings.Builder
	barWidth := m.width - 2 - colWidthName - colWidthCount - colWidthStatus - 10
	if barWidth < 4 {
		barWidth = 4
	}

	b.WriteString(metricLabelStyle.Render(fmt.Sprintf("  %-*s %*s %-*s %s",
		colWidthName, "Suite", colWidthCount, "Vectors", barWidth+7, "Progress", "Status")))

	end := min(m.offset+m.PageSize(), len(m.rows))
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		prefix := "  "
		nameStyle := suiteNameStyle
		if i == m.cursor {
			prefix = suiteCursorStyle.Render("> ")
			nameStyle = suiteCursorStyle
		}
		b.WriteString("\n")
		b.WriteString(prefix)
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", colWidthName, truncate(r.name, colWidthName))))
		b.WriteString(fmt.Sprintf(" %*d ", colWidthCount, r.vectors))
		b.WriteString(renderBar(r.progress, barWidth))
		b.WriteString(fmt.Sprintf(" %5.1f%% ", r.progress*100))
		b.WriteString(statusCell(r))
	}

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(b.String())
}

func statusCell(r suiteRow) string {
	switch r.status {
	case StatusPassed:
		return passStyle.Render(r.status.String())
	case StatusFailed:
		return failStyle.Render(fmt.Sprintf("FAIL (%d)", r.failed))
	case StatusStopped:
		return failStyle.Render(r.status.String())
	case StatusRunning:
		return statusRunningStyle.Render(r.status.String())
	}
	return pendingStyle.Render(r.status.String())
}

// renderBar draws a progress bar of width cells.
func renderBar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	progress = max(0, min(progress, 1))
	filled := int(progress * float64(width))
	return barStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return string(r[:min(n, len(r))])
	}
	return string(r[:n-1]) + "…"
}
