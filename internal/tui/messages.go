package tui

import (
	"time"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/harness"
)

// ProgressMsg carries one aggregated progress update.
type ProgressMsg struct {
	SuiteIndex      int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
	SuitesFinished  int
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// SummaryMsg carries the report of a finished run.
type SummaryMsg struct {
	Report harness.Report
}

// MismatchesMsg carries the mismatches of a finished run.
type MismatchesMsg struct {
	Mismatches []*apperrors.VerificationMismatch
}

// ErrorMsg reports an error that stopped the run.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	HeapAlloc    uint64
	Sys          uint64
	NumGC        uint32
	NumGoroutine int
}

// SysStatsMsg carries a host CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// RunCompleteMsg is sent when a run generation finished.
type RunCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the context of a generation is done.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
