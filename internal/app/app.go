// Package app wires configuration, the verification harness and the
// presentation layers into the mulcheck command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/mulcheck/internal/config"
	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/logging"
	"github.com/agbru/mulcheck/internal/metrics"
	"github.com/agbru/mulcheck/internal/mpmul"
	"github.com/agbru/mulcheck/internal/oracle"
	"github.com/agbru/mulcheck/internal/tui"
	"github.com/agbru/mulcheck/internal/ui"
)

// Application represents the mulcheck application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	// Metrics is created when a metrics file or the HTTP server is requested.
	Metrics *metrics.Metrics
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the default console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "mulcheck"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, mpmul.Strategies(), oracle.Names())
	if err != nil {
		return nil, err
	}
	app.Config = config.ApplyAdaptiveDefaults(cfg)
	if err := ui.Select(app.Config.Theme, app.Config.NoColor); err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}

	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger(!ui.Enabled())
	}
	if app.Config.MetricsFile != "" || app.Config.Listen != "" {
		app.Metrics = metrics.NewMetrics()
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if a.Config.Emit > 0 {
		return a.runEmit(out)
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runCheck(ctx, out)
}

// runEmit prints the instruction listing of every selected strategy at the
// --emit width.
func (a *Application) runEmit(out io.Writer) int {
	n := a.Config.Emit
	var strategies []mpmul.Strategy
	switch a.Config.Strategy {
	case "auto":
		strategies = []mpmul.Strategy{mpmul.Auto(n)}
	case "all":
		for _, name := range mpmul.Strategies() {
			s, _ := mpmul.Lookup(name)
			if s.Supports(n) {
				strategies = append(strategies, s)
			}
		}
	default:
		s, err := mpmul.Lookup(a.Config.Strategy)
		if err != nil {
			return apperrors.HandleRunError(apperrors.NewConfigError("%v", err), a.ErrWriter)
		}
		strategies = []mpmul.Strategy{s}
	}

	for i, s := range strategies {
		prog, err := mpmul.Compile(s, n)
		if err != nil {
			return apperrors.HandleRunError(err, a.ErrWriter)
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := prog.WriteListing(out); err != nil {
			return apperrors.HandleRunError(err, a.ErrWriter)
		}
		a.Logger.Debug("listing emitted",
			logging.String("strategy", s.Name()),
			logging.Int("width", n))
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
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
	if srv != nil {
		srv.Running(suites)
	}
	code = tui.Run(ctx, suites, o, a.Config, Version, a.Metrics)
	if err := a.writeMetrics(nil); err != nil {
		return apperrors.HandleRunError(err, a.ErrWriter)
	}
	return code
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
