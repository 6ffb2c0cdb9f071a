// Package progress defines the progress messages suites publish while they
// run, and a reporter that throttles them.
package progress

import "sync/atomic"

// Update is the completion fraction of one suite.
type Update struct {
	// SuiteIndex identifies the suite within the current run.
	SuiteIndex int
	// Value is the completed fraction, from 0 to 1.
	Value float64
}

// reportSteps is the number of intermediate updates a Reporter publishes.
const reportSteps = 100

// Reporter publishes the progress of one suite on a channel. It is safe for
// concurrent use by the workers of that suite. A nil channel disables
// reporting.
type Reporter struct {
	ch    chan<- Update
	index int
	total int64
	step  int64
	done  atomic.Int64
}

// NewReporter returns a reporter for suite index with total vectors.
func NewReporter(ch chan<- Update, index, total int) *Reporter {
	step := int64(total) / reportSteps
	if step < 1 {
		step = 1
	}
	return &Reporter{ch: ch, index: index, total: int64(total), step: step}
}

// Advance records n more completed vectors. Intermediate updates are dropped
// when the consumer is not keeping up.
func (r *Reporter) Advance(n int) {
	if r == nil {
		return
	}
	after := r.done.Add(int64(n))
	before := after - int64(n)
	if r.ch == nil || before/r.step == after/r.step {
		return
	}
	select {
	case r.ch <- Update{SuiteIndex: r.index, Value: float64(after) / float64(r.total)}:
	default:
	}
}

// Finish publishes the final update for the suite. Unlike Advance it blocks
// until the update is received.
func (r *Reporter) Finish() {
	if r == nil || r.ch == nil {
		return
	}
	r.ch <- Update{SuiteIndex: r.index, Value: 1}
}

// Done returns the number of vectors recorded so far.
func (r *Reporter) Done() int {
	if r == nil {
		return 0
	}
	return int(r.done.Load())
}
