package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/markkurossi/tabulate"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/format"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/orchestration"
	"github.com/agbru/mulcheck/internal/progress"
	"github.com/agbru/mulcheck/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and a progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numSuites int, out io.Writer) {
	DisplayProgress(wg, progressChan, numSuites, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
)

// MaxBriefMismatches bounds the mismatches printed without --verbose.
const MaxBriefMismatches = 10

// PresentSummary prints one table row per suite followed by a total row.
func (CLIResultPresenter) PresentSummary(report harness.Report, out io.Writer) {
	fmt.Fprintf(out, "\n--- Verification Summary ---\n")

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Suite").SetAlign(tabulate.ML)
	tab.Header("Vectors").SetAlign(tabulate.MR)
	tab.Header("Passed").SetAlign(tabulate.MR)
	tab.Header("Failed").SetAlign(tabulate.MR)
	tab.Header("Duration").SetAlign(tabulate.MR)
	tab.Header("Status").SetAlign(tabulate.ML)

	for _, s := range report.Suites {
		row := tab.Row()
		row.Column(s.Suite)
		row.Column(strconv.Itoa(s.Total))
		row.Column(strconv.Itoa(s.Passed))
		row.Column(strconv.Itoa(s.Failed))
		row.Column(durationCell(s.Duration))
		row.Column(SuiteStatus(s))
	}

	t := report.Totals()
	row := tab.Row()
	cells := []string{
		"Total",
		strconv.Itoa(t.Total),
		strconv.Itoa(t.Passed),
		strconv.Itoa(t.Failed),
		durationCell(report.Duration),
		fmt.Sprintf("%.1f%%", report.SuccessRate()),
	}
	for _, c := range cells {
		col := row.Column(c)
		if ui.Enabled() {
			col.SetFormat(tabulate.FmtBold)
		}
	}

	tab.Print(out)
}

func durationCell(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// SuiteStatus is the status column of a suite row.
func SuiteStatus(s harness.SuiteResult) string {
	switch {
	case s.Failed > 0:
		return fmt.Sprintf("FAIL (%d)", s.Failed)
	case s.Err != nil && apperrors.IsContextError(s.Err):
		return "canceled"
	case s.Err != nil:
		return "error"
	}
	return "ok"
}

// PresentMismatches prints both products of every mismatch in hex. With
// verbose the operands are printed too and nothing is elided.
func (CLIResultPresenter) PresentMismatches(mismatches []*apperrors.VerificationMismatch, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Paint(ui.Fail(), fmt.Sprintf("--- Mismatches (%d) ---", len(mismatches))))
	for i, m := range mismatches {
		if !verbose && i == MaxBriefMismatches {
			fmt.Fprintf(out, "... and %d more (use --verbose or --report to see all)\n", len(mismatches)-i)
			return
		}
		fmt.Fprintln(out, ui.Paint(ui.Warn(), m.Suite+"/"+m.Vector))
		if verbose {
			m.Detail(out)
			continue
		}
		fmt.Fprintf(out, "  Expected = %s\n", apperrors.FormatLimbs(m.Want))
		fmt.Fprintf(out, "  Actual   = %s\n", apperrors.FormatLimbs(m.Got))
	}
}

// FormatDuration formats a duration with format.FormatExecutionDuration.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError prints err in red and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	fmt.Fprint(out, ui.Fail())
	code := apperrors.HandleRunError(err, out)
	fmt.Fprint(out, ui.Reset())
	if duration > 0 {
		fmt.Fprintf(out, "Stopped after %s.\n", format.FormatExecutionDuration(duration))
	}
	return code
}
