package harness

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/mulcheck/internal/errors"
)

// Report merges the results of a run.
type Report struct {
	Suites   []SuiteResult
	Duration time.Duration
}

// Totals sums the tallies of every suite.
func (r Report) Totals() Tally {
	var t Tally
	for _, s := range r.Suites {
		t.Add(s.Tally)
	}
	return t
}

// SuccessRate is the percentage of checked vectors that passed, or 0 when
// nothing was checked.
func (r Report) SuccessRate() float64 {
	t := r.Totals()
	if t.Total == 0 {
		return 0
	}
	return float64(t.Passed) / float64(t.Total) * 100
}

// Mismatches returns every recorded mismatch in suite order.
func (r Report) Mismatches() []*apperrors.VerificationMismatch {
	var out []*apperrors.VerificationMismatch
	for _, s := range r.Suites {
		out = append(out, s.Mismatches...)
	}
	return out
}

// Err joins the errors that stopped suites early.
func (r Report) Err() error {
	var errs []error
	for _, s := range r.Suites {
		if s.Err != nil {
			errs = append(errs, s.Err)
		}
	}
	return errors.Join(errs...)
}

// ExitCode maps the report to a process status. Any failed vector yields
// ExitErrorMismatch; otherwise a suite error decides.
func (r Report) ExitCode() int {
	if r.Totals().Failed > 0 {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitCodeFor(r.Err())
}

// WriteText writes a plain report: one line per suite, then every mismatch
// with its operands, then the totals.
func (r Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range r.Suites {
		status := ""
		if s.Err != nil {
			status = fmt.Sprintf(" (stopped: %v)", s.Err)
		}
		fmt.Fprintf(bw, "%s: %d/%d passed%s\n", s.Suite, s.Passed, s.Total, status)
	}

	if mm := r.Mismatches(); len(mm) > 0 {
		fmt.Fprintf(bw, "\nMismatches:\n")
		for _, m := range mm {
			fmt.Fprintf(bw, "%s/%s\n", m.Suite, m.Vector)
			m.Detail(bw)
		}
	}

	t := r.Totals()
	fmt.Fprintf(bw, "\nTotal: %d, Passed: %d, Failed: %d, Success rate: %.1f%%\n",
		t.Total, t.Passed, t.Failed, r.SuccessRate())
	return bw.Flush()
}
