package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// NoColor is the name of the theme that emits no escape sequences.
const NoColor = "none"

// DefaultTheme is selected when no --theme is given.
const DefaultTheme = "dark"

// Palette holds the ANSI escape sequence of every role the CLI prints with.
type Palette struct {
	// Pass marks matching products and saved artifacts.
	Pass string
	// Fail marks mismatches and run errors.
	Fail string
	// Warn marks mismatch headings and the timeout.
	Warn string
	// Value highlights counts, names and paths.
	Value string
	// Label highlights the operand widths.
	Label string
	// Muted is used for secondary text such as suite counters.
	Muted string
	Reset string
}

// Dashboard holds the lipgloss colors of the TUI for one theme.
type Dashboard struct {
	Text   lipgloss.TerminalColor
	Border lipgloss.TerminalColor
	Accent lipgloss.TerminalColor
	Pass   lipgloss.TerminalColor
	Fail   lipgloss.TerminalColor
	Warn   lipgloss.TerminalColor
	Muted  lipgloss.TerminalColor
	Label  lipgloss.TerminalColor
}

// Theme pairs the CLI palette and the dashboard colors under one name.
type Theme struct {
	Name      string
	Palette   Palette
	Dashboard Dashboard
}

var themes = map[string]Theme{
	"dark": {
		Name: "dark",
		Palette: Palette{
			Pass:  "\033[38;5;82m",
			Fail:  "\033[38;5;196m",
			Warn:  "\033[38;5;220m",
			Value: "\033[38;5;39m",
			Label: "\033[38;5;141m",
			Muted: "\033[38;5;245m",
			Reset: "\033[0m",
		},
		Dashboard: Dashboard{
			Text:   lipgloss.Color("#E0E0E0"),
			Border: lipgloss.Color("#5F87AF"),
			Accent: lipgloss.Color("#FFAF00"),
			Pass:   lipgloss.Color("#9ece6a"),
			Fail:   lipgloss.Color("#FF4444"),
			Warn:   lipgloss.Color("#FFB347"),
			Muted:  lipgloss.Color("#666666"),
			Label:  lipgloss.Color("#4488FF"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Pass:  "\033[38;5;28m",
			Fail:  "\033[38;5;124m",
			Warn:  "\033[38;5;130m",
			Value: "\033[38;5;27m",
			Label: "\033[38;5;54m",
			Muted: "\033[38;5;240m",
			Reset: "\033[0m",
		},
		Dashboard: Dashboard{
			Text:   lipgloss.Color("#1F1F1F"),
			Border: lipgloss.Color("#3A5F8A"),
			Accent: lipgloss.Color("#AF5F00"),
			Pass:   lipgloss.Color("#2E7D32"),
			Fail:   lipgloss.Color("#C62828"),
			Warn:   lipgloss.Color("#B26A00"),
			Muted:  lipgloss.Color("#8A8A8A"),
			Label:  lipgloss.Color("#1E4FBF"),
		},
	},
	NoColor: {
		Name: NoColor,
		Dashboard: Dashboard{
			Text:   lipgloss.NoColor{},
			Border: lipgloss.NoColor{},
			Accent: lipgloss.NoColor{},
			Pass:   lipgloss.NoColor{},
			Fail:   lipgloss.NoColor{},
			Warn:   lipgloss.NoColor{},
			Muted:  lipgloss.NoColor{},
			Label:  lipgloss.NoColor{},
		},
	},
}

var (
	mu      sync.RWMutex
	current = themes[DefaultTheme]
)

// Themes returns the selectable theme names in sorted order.
func Themes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the theme registered under name.
func Lookup(name string) (Theme, error) {
	if t, ok := themes[name]; ok {
		return t, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Themes(), ", "))
}

// Select activates the named theme for the rest of the process. noColor, or
// a NO_COLOR environment variable with any value (https://no-color.org/),
// forces the "none" theme whatever name says.
func Select(name string, noColor bool) error {
	t, err := Lookup(name)
	if err != nil {
		return err
	}
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		t = themes[NoColor]
	}
	mu.Lock()
	current = t
	mu.Unlock()
	return nil
}

// Current returns the active theme.
func Current() Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Enabled reports whether the active theme emits escape sequences.
func Enabled() bool {
	return Current().Name != NoColor
}
