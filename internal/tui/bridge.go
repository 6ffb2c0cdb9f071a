package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/format"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/orchestration"
	"github.com/agbru/mulcheck/internal/progress"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements orchestration.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages.
type TUIProgressReporter struct {
	ref *programRef
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numSuites int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numSuites)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	for update := range progressChan {
		ap := agg.Update(update)
		t.ref.Send(ProgressMsg{
			SuiteIndex:      ap.SuiteIndex,
			Value:           ap.Value,
			AverageProgress: ap.AverageProgress,
			ETA:             ap.ETA,
			SuitesFinished:  ap.SuitesFinished,
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter implements orchestration.ResultPresenter.
// It sends result messages to the TUI instead of writing to stdout.
type TUIResultPresenter struct {
	ref *programRef
}

var (
	_ orchestration.ResultPresenter   = (*TUIResultPresenter)(nil)
	_ orchestration.DurationFormatter = (*TUIResultPresenter)(nil)
)

// PresentSummary sends the run report to the TUI.
func (t *TUIResultPresenter) PresentSummary(report harness.Report, _ io.Writer) {
	t.ref.Send(SummaryMsg{Report: report})
}

// PresentMismatches sends the mismatches to the TUI.
func (t *TUIResultPresenter) PresentMismatches(mismatches []*apperrors.VerificationMismatch, _ bool, _ io.Writer) {
	t.ref.Send(MismatchesMsg{Mismatches: mismatches})
}

// FormatDuration delegates to format.FormatExecutionDuration.
func (t *TUIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError sends an error message to the TUI and returns the exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	t.ref.Send(ErrorMsg{Err: err, Duration: duration})
	return apperrors.ExitCodeFor(err)
}
