package format

import (
	"fmt"
	"strings"
	"time"
)

// ProgressState tracks the completion fraction of several concurrently
// running suites.
type ProgressState struct {
	progresses []float64
	numSuites  int
}

// NewProgressState returns a state for numSuites suites, all at zero.
func NewProgressState(numSuites int) *ProgressState {
	if numSuites < 0 {
		numSuites = 0
	}
	return &ProgressState{progresses: make([]float64, numSuites), numSuites: numSuites}
}

// Update records value for suite index. Values are clamped to [0, 1] and
// out-of-range indices are ignored.
func (s *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(s.progresses) {
		return
	}
	s.progresses[index] = clamp01(value)
}

// CalculateAverage returns the mean completion across all suites.
func (s *ProgressState) CalculateAverage() float64 {
	if s.numSuites == 0 {
		return 0
	}
	var total float64
	for _, p := range s.progresses {
		total += p
	}
	return total / float64(s.numSuites)
}

// ProgressWithETA extends ProgressState with a smoothed completion rate used
// to estimate the remaining time.
type ProgressWithETA struct {
	*ProgressState
	numSuites    int
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // fraction per second, exponentially smoothed
}

const (
	etaSmoothing = 0.3
	maxETA       = 24 * time.Hour
)

// NewProgressWithETA returns a tracker for numSuites suites.
func NewProgressWithETA(numSuites int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numSuites),
		numSuites:     numSuites,
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records value for suite index and returns the new average and
// remaining time estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	now := time.Now()
	if dt := now.Sub(p.lastUpdate).Seconds(); dt > 0 && avg > p.lastProgress {
		rate := (avg - p.lastProgress) / dt
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = etaSmoothing*rate + (1-etaSmoothing)*p.progressRate
		}
		p.lastUpdate = now
		p.lastProgress = avg
	}
	return avg, p.GetETA()
}

// GetETA returns the remaining time at the current rate, or 0 while no rate
// is known yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA || eta < 0 {
		return maxETA
	}
	return eta
}

// FormatETA renders an ETA compactly, e.g. "45s", "2m30s" or "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		if s := int(eta.Seconds()) % 60; s != 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	default:
		h := int(eta.Hours())
		if m := int(eta.Minutes()) % 60; m != 0 {
			return fmt.Sprintf("%dh%dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
}

// ProgressBar renders progress as a bar of length cells.
func ProgressBar(progress float64, length int) string {
	filled := int(clamp01(progress) * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar] 42.0% ETA: 3s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), clamp01(progress)*100, FormatETA(eta))
}

// FormatNumberString inserts thousands separators into a decimal string.
func FormatNumberString(s string) string {
	if s == "" {
		return s
	}
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var sb strings.Builder
	sb.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if sb.Len() > len(sign) {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// FormatRate renders a throughput such as "12,345 vec/s".
func FormatRate(count int, d time.Duration) string {
	if d <= 0 {
		return "- vec/s"
	}
	return FormatNumberString(fmt.Sprintf("%d", int64(float64(count)/d.Seconds()))) + " vec/s"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
