package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/mulcheck/internal/cli"
	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/logging"
	"github.com/agbru/mulcheck/internal/oracle"
	"github.com/agbru/mulcheck/internal/orchestration"
	"github.com/agbru/mulcheck/internal/server"
	"github.com/agbru/mulcheck/internal/sysmon"
)

// prepare plans the suites and resolves the oracle. A non-zero code means
// the error was already reported.
func (a *Application) prepare() ([]harness.Suite, oracle.Oracle, int) {
	suites, err := orchestration.PlanSuites(a.Config)
	if err != nil {
		return nil, nil, apperrors.HandleRunError(err, a.ErrWriter)
	}
	o, err := orchestration.SelectOracle(a.Config)
	if err != nil {
		return nil, nil, apperrors.HandleRunError(err, a.ErrWriter)
	}
	return suites, o, apperrors.ExitSuccess
}

// runCheck runs every planned suite with the CLI presentation.
func (a *Application) runCheck(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	suites, o, code := a.prepare()
	if code != apperrors.ExitSuccess {
		return code
	}

	srv, err := a.startServer(o)
	if err != nil {
		return apperrors.HandleRunError(err, a.ErrWriter)
	}
	defer a.stopServer(srv)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, suites, sysmon.DetectHost(), out)
		if srv != nil {
			fmt.Fprintf(out, "Serving metrics and status on http://%s\n", srv.Addr())
		}
	}
	if srv != nil {
		srv.Running(suites)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	a.Logger.Debug("run planned",
		logging.Int("suites", len(suites)),
		logging.Int("vectors", orchestration.CountVectors(suites)),
		logging.String("oracle", o.Name()))

	opts := orchestration.ExecOptions{
		Workers:  a.Config.Workers,
		Parallel: a.Config.Parallel,
		Logger:   a.Logger,
		Metrics:  a.Metrics,
	}
	report := orchestration.ExecuteSuites(ctx, suites, o, opts, progressReporter, progressOut)
	if srv != nil {
		srv.Finished(report)
	}

	analysisOut := out
	if a.Config.Quiet {
		analysisOut = io.Discard
	}
	presOpts := orchestration.PresentationOptions{Verbose: a.Config.Verbose, Quiet: a.Config.Quiet}
	exitCode := orchestration.AnalyzeResults(report, presOpts, cli.CLIResultPresenter{}, analysisOut)
	if a.Config.Quiet {
		fmt.Fprintln(out, cli.FormatQuietStatus(report))
	}

	if err := a.writeReport(report, out); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
		return max(exitCode, apperrors.ExitErrorGeneric)
	}
	if err := a.writeMetrics(out); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving metrics: %v\n", err)
		return max(exitCode, apperrors.ExitErrorGeneric)
	}
	return exitCode
}

// writeReport saves the text report when --report is set.
func (a *Application) writeReport(report harness.Report, out io.Writer) error {
	if a.Config.ReportFile == "" {
		return nil
	}
	if err := cli.WriteReportToFile(report, a.Config, a.Config.ReportFile); err != nil {
		return err
	}
	if !a.Config.Quiet {
		cli.DisplaySavedFile(out, "Report", a.Config.ReportFile)
	}
	return nil
}

// writeMetrics saves the Prometheus text file when --metrics-file is set.
// out may be nil to skip the confirmation.
func (a *Application) writeMetrics(out io.Writer) error {
	if a.Config.MetricsFile == "" || a.Metrics == nil {
		return nil
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		return err
	}
	if out != nil && !a.Config.Quiet {
		cli.DisplaySavedFile(out, "Metrics", a.Config.MetricsFile)
	}
	return nil
}

// startServer starts the HTTP server when --listen is set. It returns nil
// otherwise.
func (a *Application) startServer(o oracle.Oracle) (*server.Server, error) {
	if a.Config.Listen == "" {
		return nil, nil
	}
	srv := server.New(a.Config.Listen, a.Metrics, o, server.WithLogger(a.Logger))
	if err := srv.Start(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (a *Application) stopServer(srv *server.Server) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		a.Logger.Error("http server shutdown", err)
	}
}
