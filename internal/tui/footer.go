package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// FooterModel renders the status indicator and the key hints.
type FooterModel struct {
	keys    KeyMap
	paused  bool
	done    bool
	failed  bool
	errored bool
	width   int
}

// NewFooterModel creates a footer showing keys.
func NewFooterModel(keys KeyMap) FooterModel {
	return FooterModel{keys: keys}
}

func (f *FooterModel) SetWidth(w int)   { f.width = w }
func (f *FooterModel) SetPaused(p bool) { f.paused = p }
func (f *FooterModel) SetDone(d bool)   { f.done = d }
func (f *FooterModel) SetFailed(v bool) { f.failed = v }
func (f *FooterModel) SetError(v bool)  { f.errored = v }

// Status returns the status word shown in the footer.
func (f FooterModel) Status() string {
	switch {
	case f.errored:
		return "ERROR"
	case f.done && f.failed:
		return "MISMATCH"
	case f.done:
		return "PASSED"
	case f.paused:
		return "PAUSED"
	}
	return "RUNNING"
}

// View renders the footer.
func (f FooterModel) View() string {
	status := f.Status()
	var styled string
	switch status {
	case "ERROR", "MISMATCH":
		styled = statusErrorStyle.Render(status)
	case "PASSED":
		styled = statusDoneStyle.Render(status)
	case "PAUSED":
		styled = statusPausedStyle.Render(status)
	default:
		styled = statusRunningStyle.Render(status)
	}

	hints := make([]string, 0, 5)
	for _, b := range f.keys.ShortHelp() {
		hints = append(hints, helpHint(b))
	}
	return " " + styled + "  " + strings.Join(hints, "  ")
}

func helpHint(b key.Binding) string {
	h := b.Help()
	return footerKeyStyle.Render(h.Key) + " " + footerDescStyle.Render(h.Desc)
}
