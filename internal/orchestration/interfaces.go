package orchestration

import (
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/progress"
)

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// Verbose prints the operands of every mismatch instead of a summary.
	Verbose bool
	// Quiet suppresses everything but the global status.
	Quiet bool
}

// ProgressReporter defines the interface for displaying suite progress.
// Implementations handle the visual representation (spinners, dashboards)
// while the orchestration layer coordinates the suites.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done. It runs in its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numSuites int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numSuites int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numSuites int, out io.Writer) {
	f(wg, progressChan, numSuites, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting the results of a run.
type ResultPresenter interface {
	// PresentSummary displays one row per suite.
	PresentSummary(report harness.Report, out io.Writer)

	// PresentMismatches displays the recorded mismatches.
	PresentMismatches(mismatches []*apperrors.VerificationMismatch, verbose bool, out io.Writer)

	// HandleError reports an error that stopped the run and returns the
	// exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}
