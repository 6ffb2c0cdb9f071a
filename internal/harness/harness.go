package harness

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/limb"
	"github.com/agbru/mulcheck/internal/logging"
	"github.com/agbru/mulcheck/internal/mpmul"
	"github.com/agbru/mulcheck/internal/oracle"
	"github.com/agbru/mulcheck/internal/progress"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("github.com/agbru/mulcheck/internal/harness")

// Tally counts checked vectors.
type Tally struct {
	Total  int
	Passed int
	Failed int
}

// Add accumulates o into t.
func (t *Tally) Add(o Tally) {
	t.Total += o.Total
	t.Passed += o.Passed
	t.Failed += o.Failed
}

// SuiteResult is the outcome of one suite.
type SuiteResult struct {
	Suite    string
	Width    int
	Kind     Kind
	Strategy string
	Tally
	// Mismatches are in vector order.
	Mismatches []*apperrors.VerificationMismatch
	// Err is set when the suite stopped early: a contract violation or a
	// canceled context. Vectors not reached are not counted.
	Err      error
	Duration time.Duration
}

// Option configures a Harness.
type Option func(*Harness)

// WithWorkers bounds the number of goroutines checking vectors of a suite.
// Values below 1 select runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(h *Harness) { h.workers = n }
}

// WithLogger sets the logger used for mismatches and suite completion.
func WithLogger(l logging.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// WithProgress publishes suite progress on ch.
func WithProgress(ch chan<- progress.Update) Option {
	return func(h *Harness) { h.progress = ch }
}

// Harness runs suites against an oracle.
type Harness struct {
	oracle   oracle.Oracle
	workers  int
	logger   logging.Logger
	progress chan<- progress.Update
}

// New returns a harness checking against o.
func New(o oracle.Oracle, opts ...Option) *Harness {
	h := &Harness{oracle: o, logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(h)
	}
	if h.workers < 1 {
		h.workers = runtime.NumCPU()
	}
	return h
}

type found struct {
	index int
	m     *apperrors.VerificationMismatch
}

// Run checks every vector of suite. Vectors are split across a bounded pool
// of workers; each worker keeps its own Tally and the tallies are summed once
// the pool has finished.
func (h *Harness) Run(ctx context.Context, suite Suite) SuiteResult {
	ctx, span := tracer.Start(ctx, "harness.Run", trace.WithAttributes(
		attribute.String("suite", suite.Name),
		attribute.Int("width", suite.Width),
		attribute.Int("vectors", len(suite.Vectors)),
	))
	defer span.End()

	start := time.Now()
	rep := progress.NewReporter(h.progress, suite.Index, len(suite.Vectors))

	workers := h.workers
	if workers > len(suite.Vectors) {
		workers = len(suite.Vectors)
	}
	tallies := make([]Tally, workers)
	founds := make([][]found, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			out := make([]limb.Word, 2*suite.Width)
			ref := make([]limb.Word, 2*suite.Width)
			for i := w; i < len(suite.Vectors); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				m, err := h.check(suite, suite.Vectors[i], out, ref)
				if err != nil {
					return err
				}
				tallies[w].Total++
				if m != nil {
					tallies[w].Failed++
					founds[w] = append(founds[w], found{i, m})
				} else {
					tallies[w].Passed++
				}
				rep.Advance(1)
			}
			return nil
		})
	}
	err := g.Wait()

	res := SuiteResult{
		Suite:    suite.Name,
		Width:    suite.Width,
		Kind:     suite.Kind,
		Strategy: suite.Strategy.Name(),
		Err:      err,
	}
	var all []found
	for w := range tallies {
		res.Tally.Add(tallies[w])
		all = append(all, founds[w]...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].index < all[j].index })
	for _, f := range all {
		res.Mismatches = append(res.Mismatches, f.m)
		h.logger.Error("vector mismatch", f.m,
			logging.String("suite", suite.Name),
			logging.String("vector", f.m.Vector))
	}
	res.Duration = time.Since(start)
	rep.Finish()

	span.SetAttributes(attribute.Int("passed", res.Passed), attribute.Int("failed", res.Failed))
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case res.Failed > 0:
		span.SetStatus(codes.Error, fmt.Sprintf("%d mismatches", res.Failed))
	}
	h.logger.Debug("suite finished",
		logging.String("suite", suite.Name),
		logging.Int("passed", res.Passed),
		logging.Int("failed", res.Failed),
		logging.Duration("elapsed", res.Duration))
	return res
}

// check multiplies one vector and compares it with the expected product.
// A contract violation is returned as an error; a wrong product is returned
// as a mismatch.
func (h *Harness) check(s Suite, v Vector, out, ref []limb.Word) (*apperrors.VerificationMismatch, error) {
	if err := mpmul.Multiply(s.Strategy, v.A, v.B, out); err != nil {
		return nil, apperrors.WrapError(err, "%s/%s", s.Name, v.Name)
	}

	want := ref
	if s.Against != nil {
		if err := mpmul.Multiply(s.Against, v.A, v.B, ref); err != nil {
			return nil, apperrors.WrapError(err, "%s/%s", s.Name, v.Name)
		}
	} else {
		expected, err := oracle.FromBig(h.oracle.Mul(oracle.ToBig(v.A), oracle.ToBig(v.B)), 2*s.Width)
		if err != nil {
			return nil, apperrors.WrapError(err, "%s/%s: oracle %s", s.Name, v.Name, h.oracle.Name())
		}
		want = expected
	}

	for i := range want {
		if out[i] != want[i] {
			return &apperrors.VerificationMismatch{
				Suite:  s.Name,
				Vector: v.Name,
				A:      clone(v.A),
				B:      clone(v.B),
				Want:   clone(want),
				Got:    clone(out),
			}, nil
		}
	}
	return nil, nil
}

func clone(v []limb.Word) []limb.Word {
	return append([]limb.Word(nil), v...)
}
