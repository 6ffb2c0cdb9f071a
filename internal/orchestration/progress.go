package orchestration

import (
	"time"

	"github.com/agbru/mulcheck/internal/format"
	"github.com/agbru/mulcheck/internal/progress"
)

// ProgressAggregator folds per-suite updates into a run-wide fraction and
// ETA. Both CLI and TUI consume progress through it.
type ProgressAggregator struct {
	state     *format.ProgressWithETA
	numSuites int
	finished  []bool
	nFinished int
}

// NewProgressAggregator creates an aggregator for numSuites suites. Returns
// nil if numSuites <= 0.
func NewProgressAggregator(numSuites int) *ProgressAggregator {
	if numSuites <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:     format.NewProgressWithETA(numSuites),
		numSuites: numSuites,
		finished:  make([]bool, numSuites),
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// SuiteIndex is the index of the suite that sent the update.
	SuiteIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all suites.
	AverageProgress float64
	// ETA is the estimated time remaining based on smoothed progress rate.
	ETA time.Duration
	// SuitesFinished counts suites that reported completion.
	SuitesFinished int
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update progress.Update) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.SuiteIndex, update.Value)
	if i := update.SuiteIndex; update.Value >= 1 && i >= 0 && i < a.numSuites && !a.finished[i] {
		a.finished[i] = true
		a.nFinished++
	}
	return AggregatedProgress{
		SuiteIndex:      update.SuiteIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
		SuitesFinished:  a.nFinished,
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumSuites returns the number of suites being tracked.
func (a *ProgressAggregator) NumSuites() int {
	return a.numSuites
}

// SuitesFinished returns the number of suites that reported completion.
func (a *ProgressAggregator) SuitesFinished() int {
	return a.nFinished
}

// IsMultiSuite returns true if tracking more than one suite.
func (a *ProgressAggregator) IsMultiSuite() bool {
	return a.numSuites > 1
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan progress.Update) {
	for range progressChan {
	}
}
