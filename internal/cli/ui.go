//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/mulcheck/internal/format"
	"github.com/agbru/mulcheck/internal/orchestration"
	"github.com/agbru/mulcheck/internal/progress"
	"github.com/agbru/mulcheck/internal/ui"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts the terminal spinner so that DisplayProgress can be
// tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with the aggregated progress bar, the
// number of finished suites and an ETA until progressChan is closed. It then
// prints a final completed bar.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numSuites int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numSuites)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(FormatProgressLine(0, 0, 0, numSuites))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case u, ok := <-progressChan:
			if !ok {
				s.Stop()
				fmt.Fprintf(out, "%s\n", FormatFinalProgressLine(agg.CalculateAverage(), agg.SuitesFinished(), numSuites))
				return
			}
			agg.Update(u)
		case <-ticker.C:
			s.UpdateSuffix(FormatProgressLine(agg.CalculateAverage(), agg.GetETA(), agg.SuitesFinished(), numSuites))
		}
	}
}

// FormatProgressLine renders " [bar]  42.0% ETA: 3s  (5/12 suites)".
func FormatProgressLine(avg float64, eta time.Duration, finished, total int) string {
	return fmt.Sprintf(" %s  %s",
		format.FormatProgressBarWithETA(avg, eta, ProgressBarWidth),
		ui.Paint(ui.Muted(), fmt.Sprintf("(%d/%d suites)", finished, total)))
}

// FormatFinalProgressLine renders the line left once the run is over.
func FormatFinalProgressLine(avg float64, finished, total int) string {
	return fmt.Sprintf(" [%s] %5.1f%%  (%d/%d suites)",
		format.ProgressBar(avg, ProgressBarWidth), avg*100, finished, total)
}
