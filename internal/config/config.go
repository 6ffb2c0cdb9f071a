// Package config handles command-line and environment configuration of a
// verification run.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/logging"
	"github.com/agbru/mulcheck/internal/ui"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "MULCHECK_"

const (
	// DefaultWidths is the operand width list used when none is given.
	DefaultWidths = "2,4,8"
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 5 * time.Minute
	// MaxWidth caps --widths and --emit.
	MaxWidth = 64
)

// AppConfig aggregates the configuration of a run.
type AppConfig struct {
	// Widths are the operand sizes to verify, in limbs.
	Widths []int
	// Strategy is "auto", "all" or a registered strategy name.
	Strategy string
	// Oracle names the reference implementation ("big" or "gmp").
	Oracle string
	// RandomCount is the number of random vectors per width.
	RandomCount int
	// Seed keys the random vector stream.
	Seed uint64
	// Workers bounds the goroutines checking one suite; 0 means adaptive.
	Workers int
	// Parallel bounds the suites running at once; 0 means adaptive.
	Parallel int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Emit, when positive, prints the program listing for that width and
	// exits without verifying.
	Emit int
	// MetricsFile receives Prometheus text metrics after the run.
	MetricsFile string
	// ReportFile receives a plain text report after the run.
	ReportFile string
	// LogLevel is a zerolog level name.
	LogLevel string
	// Listen, when set, serves /metrics, /status and /multiply on this
	// address for the duration of the run.
	Listen string
	// Theme names the color theme of the CLI and the dashboard.
	Theme string

	Quiet   bool
	Verbose bool
	TUI     bool
	NoColor bool
	Version bool
}

// ToPlanConfig returns the suite selection of the configuration.
func (c AppConfig) ToPlanConfig() harness.PlanConfig {
	return harness.PlanConfig{
		Widths:      c.Widths,
		Strategy:    c.Strategy,
		RandomCount: c.RandomCount,
		Seed:        c.Seed,
	}
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate(strategies, oracles []string) error {
	if len(c.Widths) == 0 && c.Emit == 0 {
		return apperrors.NewConfigError("at least one operand width is required")
	}
	for _, w := range c.Widths {
		if w < 1 || w > MaxWidth {
			return apperrors.NewConfigError("operand width %d out of range [1, %d]", w, MaxWidth)
		}
	}
	if c.Emit < 0 || c.Emit > MaxWidth {
		return apperrors.NewConfigError("--emit width %d out of range [1, %d]", c.Emit, MaxWidth)
	}
	if c.RandomCount < 0 {
		return apperrors.NewConfigError("--random must be >= 0, got %d", c.RandomCount)
	}
	if c.Workers < 0 || c.Parallel < 0 {
		return apperrors.NewConfigError("--workers and --parallel must be >= 0")
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.Strategy != "auto" && c.Strategy != "all" && !contains(strategies, c.Strategy) {
		return apperrors.NewConfigError("unknown strategy %q (available: auto, all, %s)",
			c.Strategy, strings.Join(strategies, ", "))
	}
	if !contains(oracles, c.Oracle) {
		return apperrors.NewConfigError("unknown oracle %q (available: %s)", c.Oracle, strings.Join(oracles, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid --log-level %q", c.LogLevel)
	}
	if _, err := ui.Lookup(c.Theme); err != nil {
		return apperrors.NewConfigError("invalid --theme: %v", err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ParseWidths parses a comma separated list of limb counts such as "2,4,8".
// Duplicates are dropped and the order is kept.
func ParseWidths(s string) ([]int, error) {
	var out []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid width %q in --widths", part)
		}
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out, nil
}

// ParseConfig parses args into an AppConfig, then applies MULCHECK_
// environment overrides for every flag left unset on the command line.
// flag.ErrHelp is returned unchanged when -h or --help is given.
func ParseConfig(programName string, args []string, errorWriter io.Writer, strategies, oracles []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	var widths string
	config := AppConfig{}
	fs.StringVar(&widths, "widths", DefaultWidths, "Comma separated operand widths in 64-bit limbs.")
	fs.StringVar(&config.Strategy, "strategy", "auto",
		fmt.Sprintf("Strategy to verify: auto, all, or one of %s.", strings.Join(strategies, ", ")))
	fs.StringVar(&config.Oracle, "oracle", "big",
		fmt.Sprintf("Reference oracle (%s).", strings.Join(oracles, ", ")))
	fs.IntVar(&config.RandomCount, "random", harness.DefaultRandomCount, "Random vectors per width.")
	fs.Uint64Var(&config.Seed, "seed", harness.DefaultSeed, "Seed of the random vector stream.")
	fs.IntVar(&config.Workers, "workers", 0, "Goroutines per suite (0 = adaptive).")
	fs.IntVar(&config.Parallel, "parallel", 0, "Suites run concurrently (0 = adaptive).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.IntVar(&config.Emit, "emit", 0, "Print the instruction listing for this width and exit.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus text metrics to this file.")
	fs.StringVar(&config.ReportFile, "report", "", "Write a plain text report to this file.")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	fs.StringVar(&config.Listen, "listen", "", "Serve metrics and status over HTTP on this address (e.g. :9090).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Only print the final status line.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print every mismatch in full.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.TUI, "tui", false, "Run with the interactive dashboard.")
	fs.StringVar(&config.Theme, "theme", ui.DefaultTheme,
		fmt.Sprintf("Color theme (%s).", strings.Join(ui.Themes(), ", ")))
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Version, "version", false, "Print the version and exit.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	if !isFlagSet(fs, "widths") {
		widths = getEnvString("WIDTHS", widths)
	}
	parsed, err := ParseWidths(widths)
	if err != nil {
		return AppConfig{}, err
	}
	config.Widths = parsed

	applyEnvOverrides(&config, fs)

	if config.Version {
		return config, nil
	}
	if err := config.Validate(strategies, oracles); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}
