package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mulcheck/internal/format"
)

// HeaderModel renders the top bar: title, version, run description and
// elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	subtitle  string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, subtitle string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		subtitle:  subtitle,
	}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the running or frozen duration of the run.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "mulcheck"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := versionStyle.Render(" | ")
	row := titleStyle.Render(titleText)
	if h.subtitle != "" {
		row += pipe + versionStyle.Render(h.subtitle)
	}
	row += pipe + elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))

	gap := h.width - 2 - lipgloss.Width(row)
	return headerStyle.Width(h.width).Render(row + spaces(gap))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
