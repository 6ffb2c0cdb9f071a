package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// Aliased flags list both the short and the long form.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps an env key (without the MULCHECK_ prefix) to the flag
// name(s) it shadows and a function applying the value. Unparsable values
// are ignored.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

var envOverrides = []envOverride{
	{"STRATEGY", []string{"strategy"}, func(c *AppConfig, v string) { c.Strategy = v }},
	{"ORACLE", []string{"oracle"}, func(c *AppConfig, v string) { c.Oracle = v }},
	{"RANDOM", []string{"random"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.RandomCount = parsed
		}
	}},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 0, 64); err == nil {
			c.Seed = parsed
		}
	}},
	{"WORKERS", []string{"workers"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"PARALLEL", []string{"parallel"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Parallel = parsed
		}
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) { c.MetricsFile = v }},
	{"REPORT", []string{"report"}, func(c *AppConfig, v string) { c.ReportFile = v }},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) { c.LogLevel = v }},
	{"LISTEN", []string{"listen"}, func(c *AppConfig, v string) { c.Listen = v }},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) { c.Theme = v }},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) { c.Quiet = parseBoolEnv(v, c.Quiet) }},
	{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, v string) { c.Verbose = parseBoolEnv(v, c.Verbose) }},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) { c.TUI = parseBoolEnv(v, c.TUI) }},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) { c.NoColor = parseBoolEnv(v, c.NoColor) }},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values for every flag that
// was not explicitly set, giving CLI flags > environment > defaults.
//
// Supported variables (all prefixed with MULCHECK_): WIDTHS, STRATEGY,
// ORACLE, RANDOM, SEED, WORKERS, PARALLEL, TIMEOUT, METRICS_FILE, REPORT,
// LOG_LEVEL, LISTEN, THEME, QUIET, VERBOSE, TUI, NO_COLOR.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
