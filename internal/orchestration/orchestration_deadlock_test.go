package orchestration

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/mpmul"
	"github.com/agbru/mulcheck/internal/oracle"
	"github.com/agbru/mulcheck/internal/progress"
)

// slowReporter consumes updates with a delay to exercise back-pressure on
// the progress channel.
type slowReporter struct{ delay time.Duration }

func (r slowReporter) DisplayProgress(wg *sync.WaitGroup, ch <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range ch {
		time.Sleep(r.delay)
	}
}

func runWithDeadline(t *testing.T, ctx context.Context, suites []harness.Suite, opts ExecOptions, reporter ProgressReporter) harness.Report {
	t.Helper()
	done := make(chan harness.Report, 1)
	go func() {
		done <- ExecuteSuites(ctx, suites, oracle.Big{}, opts, reporter, io.Discard)
	}()
	select {
	case r := <-done:
		return r
	case <-time.After(10 * time.Second):
		t.Fatal("DEADLOCK: ExecuteSuites did not complete within timeout")
		return harness.Report{}
	}
}

// TestOrchestrationNoDeadlock_MixedBehaviors verifies that ExecuteSuites
// completes under various suite and reporter combinations.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	many := harness.RandomVectors(2, 2000, 3)
	testCases := []struct {
		name     string
		suites   []harness.Suite
		opts     ExecOptions
		reporter ProgressReporter
	}{
		{
			name: "many small suites, one at a time",
			suites: []harness.Suite{
				harness.NewSuite(1, harness.KindEdge, mpmul.Schoolbook{}, harness.EdgeVectors(1)),
				harness.NewSuite(2, harness.KindEdge, mpmul.FixedFour{}, harness.EdgeVectors(2)),
				harness.NewSuite(3, harness.KindEdge, mpmul.Schoolbook{}, harness.EdgeVectors(3)),
			},
			opts:     ExecOptions{Parallel: 1},
			reporter: NullProgressReporter{},
		},
		{
			name: "progress flood with slow consumer",
			suites: []harness.Suite{
				harness.NewSuite(2, harness.KindRandom, mpmul.Schoolbook{}, many),
				harness.NewSuite(2, harness.KindRandom, mpmul.FixedFour{}, many),
			},
			opts:     ExecOptions{Workers: 4},
			reporter: slowReporter{delay: 100 * time.Microsecond},
		},
		{
			name: "empty suite",
			suites: []harness.Suite{
				harness.NewSuite(2, harness.KindRandom, mpmul.Schoolbook{}, nil),
			},
			reporter: NullProgressReporter{},
		},
		{
			name:     "no suites",
			reporter: NullProgressReporter{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := runWithDeadline(t, context.Background(), tc.suites, tc.opts, tc.reporter)
			if len(report.Suites) != len(tc.suites) {
				t.Errorf("got %d results, want %d", len(report.Suites), len(tc.suites))
			}
		})
	}
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that canceling
// the context during execution stops the run and marks unfinished suites.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	vs := harness.RandomVectors(2, 500, 9)
	suites := []harness.Suite{
		harness.NewSuite(2, harness.KindRandom, slow{delay: time.Millisecond}, vs),
		harness.NewSuite(2, harness.KindRandom, slow{delay: time.Millisecond}, vs),
		harness.NewSuite(2, harness.KindRandom, slow{delay: time.Millisecond}, vs),
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()
	report := runWithDeadline(t, ctx, suites, ExecOptions{Workers: 1, Parallel: 1}, NullProgressReporter{})

	if report.Err() == nil {
		t.Fatal("expected the canceled run to report an error")
	}
	if report.Totals().Total >= 3*len(vs) {
		t.Errorf("cancellation should stop the run early, checked %d vectors", report.Totals().Total)
	}
	for _, res := range report.Suites[1:] {
		if res.Err == nil {
			t.Errorf("%s: expected a context error", res.Suite)
		}
	}
}
