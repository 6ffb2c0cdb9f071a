package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mulcheck/internal/ui"
)

// Style variables for the dashboard. Initialized from the ui theme by
// initTUIStyles.
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	elapsedStyle       lipgloss.Style
	suiteNameStyle     lipgloss.Style
	suiteCursorStyle   lipgloss.Style
	passStyle          lipgloss.Style
	failStyle          lipgloss.Style
	pendingStyle       lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	barStyle           lipgloss.Style
	barEmptyStyle      lipgloss.Style
	footerKeyStyle     lipgloss.Style
	footerDescStyle    lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
	rateSparklineStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls it
// again after the app has selected the theme.
func initTUIStyles() {
	t := ui.Current().Dashboard

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	versionStyle = lipgloss.NewStyle().Foreground(t.Muted)
	elapsedStyle = lipgloss.NewStyle().Foreground(t.Accent)

	suiteNameStyle = lipgloss.NewStyle().Foreground(t.Label)
	suiteCursorStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	passStyle = lipgloss.NewStyle().Foreground(t.Pass)
	failStyle = lipgloss.NewStyle().Foreground(t.Fail).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(t.Muted)

	metricLabelStyle = lipgloss.NewStyle().Foreground(t.Muted)
	metricValueStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	barStyle = lipgloss.NewStyle().Foreground(t.Pass)
	barEmptyStyle = lipgloss.NewStyle().Foreground(t.Muted)

	footerKeyStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	footerDescStyle = lipgloss.NewStyle().Foreground(t.Muted)

	statusRunningStyle = lipgloss.NewStyle().Foreground(t.Pass).Bold(true)
	statusPausedStyle = lipgloss.NewStyle().Foreground(t.Warn).Bold(true)
	statusDoneStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	statusErrorStyle = lipgloss.NewStyle().Foreground(t.Fail).Bold(true)

	cpuSparklineStyle = lipgloss.NewStyle().Foreground(t.Accent)
	memSparklineStyle = lipgloss.NewStyle().Foreground(t.Warn)
	rateSparklineStyle = lipgloss.NewStyle().Foreground(t.Pass)
}
