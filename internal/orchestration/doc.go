// Package orchestration runs the suites of a verification run concurrently
// and turns their results into a global status. It decouples the run from
// presentation via the ProgressReporter and ResultPresenter interfaces.
package orchestration
