package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/logging"
	"github.com/agbru/mulcheck/internal/metrics"
	"github.com/agbru/mulcheck/internal/oracle"
	"github.com/agbru/mulcheck/internal/progress"
)

var tracer = otel.Tracer("github.com/agbru/mulcheck/internal/orchestration")

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking suite
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecOptions configures ExecuteSuites.
type ExecOptions struct {
	// Workers bounds the goroutines of each suite (0 = runtime.NumCPU).
	Workers int
	// Parallel bounds the suites running at once (0 = all of them).
	Parallel int
	Logger   logging.Logger
	// Metrics may be nil.
	Metrics *metrics.Metrics
}

// ExecuteSuites orchestrates the concurrent execution of suites against o.
//
// It manages the lifecycle of the suite goroutines, collects their results in
// suite order, and coordinates the display of progress updates. A suite
// failing never cancels the others; a canceled ctx marks every suite not yet
// started with the context error.
func ExecuteSuites(ctx context.Context, suites []harness.Suite, o oracle.Oracle, opts ExecOptions, progressReporter ProgressReporter, out io.Writer) harness.Report {
	ctx, span := tracer.Start(ctx, "orchestration.ExecuteSuites", trace.WithAttributes(
		attribute.Int("suites", len(suites)),
		attribute.String("oracle", o.Name()),
	))
	defer span.End()

	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger{}
	}

	start := time.Now()
	results := make([]harness.SuiteResult, len(suites))
	progressChan := make(chan progress.Update, len(suites)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(suites), out)

	h := harness.New(o,
		harness.WithWorkers(opts.Workers),
		harness.WithLogger(logger),
		harness.WithProgress(progressChan),
	)

	var g errgroup.Group
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	for i := range suites {
		suite := suites[i]
		suite.Index = i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = skipped(suite, err)
				progressChan <- progress.Update{SuiteIndex: i, Value: 1}
				return nil
			}
			opts.Metrics.SuiteStarted()
			res := h.Run(ctx, suite)
			opts.Metrics.SuiteFinished(metrics.SuiteSample{
				Width:    res.Width,
				Strategy: res.Strategy,
				Kind:     string(res.Kind),
				Passed:   res.Passed,
				Failed:   res.Failed,
				Duration: res.Duration,
			})
			results[i] = res
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	report := harness.Report{Suites: results, Duration: time.Since(start)}
	t := report.Totals()
	span.SetAttributes(attribute.Int("passed", t.Passed), attribute.Int("failed", t.Failed))
	if err := report.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else if t.Failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d mismatches", t.Failed))
	}
	logger.Info("run finished",
		logging.Int("suites", len(suites)),
		logging.Int("vectors", t.Total),
		logging.Int("failed", t.Failed),
		logging.Duration("elapsed", report.Duration))
	return report
}

func skipped(s harness.Suite, err error) harness.SuiteResult {
	name := ""
	if s.Strategy != nil {
		name = s.Strategy.Name()
	}
	return harness.SuiteResult{
		Suite:    s.Name,
		Width:    s.Width,
		Kind:     s.Kind,
		Strategy: name,
		Err:      apperrors.WrapError(err, "%s", s.Name),
	}
}

// AnalyzeResults presents report and derives the process exit code.
//
// Any mismatch is critical and yields ExitErrorMismatch, even when other
// suites were stopped early. Otherwise a suite error is handed to the
// presenter, which decides the code.
func AnalyzeResults(report harness.Report, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	t := report.Totals()
	if !opts.Quiet {
		presenter.PresentSummary(report, out)
		if mm := report.Mismatches(); len(mm) > 0 {
			presenter.PresentMismatches(mm, opts.Verbose, out)
		}
	}

	err := report.Err()
	switch {
	case t.Failed > 0:
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %d of %d vectors disagree with the reference.\n", t.Failed, t.Total)
		return apperrors.ExitErrorMismatch
	case err != nil && t.Total == 0:
		fmt.Fprintf(out, "\nGlobal Status: Failure. No suite could complete.\n")
		return presenter.HandleError(err, report.Duration, out)
	case err != nil:
		fmt.Fprintf(out, "\nGlobal Status: Incomplete. %d vectors passed before the run stopped.\n", t.Passed)
		return presenter.HandleError(err, report.Duration, out)
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. All %d vectors match the reference.\n", t.Total)
	return apperrors.ExitSuccess
}
