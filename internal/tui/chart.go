package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/mulcheck/internal/format"
)

// defaultHistory is the sample limit before the first resize.
const defaultHistory = 60

// ChartModel shows the run-wide progress bar with ETA and sparklines of
// host CPU, host memory and throughput.
type ChartModel struct {
	averageProgress float64
	eta             time.Duration
	finished        int
	total           int
	done            bool
	elapsed         time.Duration

	cpuHistory  *series
	memHistory  *series
	rateHistory *series

	width, height int
}

// NewChartModel creates a chart for total suites.
func NewChartModel(total int) ChartModel {
	return ChartModel{
		total:       total,
		cpuHistory:  newSeries(defaultHistory),
		memHistory:  newSeries(defaultHistory),
		rateHistory: newSeries(defaultHistory),
	}
}

// SetSize updates dimensions and limits the sample histories to the
// sparkline width.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	if n := c.sparklineWidth(); n > 0 {
		c.cpuHistory.setLimit(n)
		c.memHistory.setLimit(n)
		c.rateHistory.setLimit(n)
	}
}

func (c ChartModel) sparklineWidth() int {
	return c.width - 2 - 14
}

// AddDataPoint records an aggregated progress update.
func (c *ChartModel) AddDataPoint(avg float64, eta time.Duration, finished int) {
	c.averageProgress = avg
	c.eta = eta
	c.finished = finished
}

// UpdateSysStats records a host sample.
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpuHistory.add(cpuPercent)
	c.memHistory.add(memPercent)
}

// AddRate records a throughput sample.
func (c *ChartModel) AddRate(rate float64) {
	c.rateHistory.add(rate)
}

// SetDone freezes the chart at 100%.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
	c.averageProgress = 1
	c.finished = c.total
}

// Reset clears progress and samples.
func (c *ChartModel) Reset() {
	c.averageProgress = 0
	c.eta = 0
	c.finished = 0
	c.done = false
	c.elapsed = 0
	c.cpuHistory.clear()
	c.memHistory.clear()
	c.rateHistory.clear()
}

// renderProgressBar renders "[bar] 42.0%" fitted to the panel width.
func (c ChartModel) renderProgressBar() string {
	barWidth := c.width - 2 - 12
	if barWidth < 4 {
		return fmt.Sprintf("%5.1f%%", c.averageProgress*100)
	}
	return fmt.Sprintf("  %s %5.1f%%", renderBar(c.averageProgress, barWidth), c.averageProgress*100)
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  Run Progress"))
	b.WriteString("\n")
	b.WriteString(c.renderProgressBar())
	b.WriteString("\n")

	status := fmt.Sprintf("  Suites: %d/%d", c.finished, c.total)
	if c.done {
		status += "   Done in " + format.FormatExecutionDuration(c.elapsed)
	} else {
		status += "   ETA: " + format.FormatETA(c.eta)
	}
	b.WriteString(metricLabelStyle.Render(status))

	// Sparklines need three extra rows inside the borders.
	if c.height-2 >= 6 {
		b.WriteString("\n")
		b.WriteString(sparklineRow("CPU", cpuSparklineStyle.Render(sparkline(c.cpuHistory.values(), 100)),
			fmt.Sprintf("%3.0f%%", c.cpuHistory.latest())))
		b.WriteString("\n")
		b.WriteString(sparklineRow("MEM", memSparklineStyle.Render(sparkline(c.memHistory.values(), 100)),
			fmt.Sprintf("%3.0f%%", c.memHistory.latest())))
		b.WriteString("\n")
		b.WriteString(sparklineRow("VEC/S", rateSparklineStyle.Render(sparkline(c.rateHistory.values(), 0)),
			format.FormatNumberString(fmt.Sprintf("%.0f", c.rateHistory.latest()))))
	}

	return panelStyle.
		Width(max(c.width-2, 0)).
		Height(max(c.height-2, 0)).
		Render(b.String())
}

func sparklineRow(label, line, last string) string {
	return fmt.Sprintf("  %s %s %s", metricLabelStyle.Render(fmt.Sprintf("%-5s", label)), line, metricValueStyle.Render(last))
}
