package tui

import "math"

// blocks are the eight sparkline levels, lowest first.
var blocks = []rune("▁▂▃▄▅▆▇█")

// series keeps the latest samples of one dashboard gauge. The limit follows
// the width of the sparkline that draws it.
type series struct {
	samples []float64
	limit   int
}

func newSeries(limit int) *series {
	return &series{limit: max(limit, 1)}
}

// add appends v and drops the oldest samples beyond the limit.
func (s *series) add(v float64) {
	s.samples = append(s.samples, v)
	s.trim()
}

// setLimit changes the limit, keeping the newest samples that still fit.
func (s *series) setLimit(n int) {
	s.limit = max(n, 1)
	s.trim()
}

func (s *series) trim() {
	if extra := len(s.samples) - s.limit; extra > 0 {
		s.samples = append(s.samples[:0], s.samples[extra:]...)
	}
}

// latest returns the newest sample, or 0 before the first one.
func (s *series) latest() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return s.samples[len(s.samples)-1]
}

func (s *series) values() []float64 { return s.samples }

func (s *series) clear() { s.samples = s.samples[:0] }

// sparkline draws one block per value, scaled so that ceiling fills a block.
// Values are clamped to [0, ceiling] and NaN draws as zero. A ceiling <= 0
// scales to the largest value, and an all-zero series draws flat.
func sparkline(values []float64, ceiling float64) string {
	if ceiling <= 0 {
		for _, v := range values {
			if !math.IsNaN(v) && !math.IsInf(v, 1) {
				ceiling = max(ceiling, v)
			}
		}
	}
	top := float64(len(blocks) - 1)
	out := make([]rune, len(values))
	for i, v := range values {
		level := 0.0
		if ceiling > 0 && !math.IsInf(ceiling, 1) && !math.IsNaN(v) {
			level = math.Round(min(max(v, 0), ceiling) / ceiling * top)
		}
		out[i] = blocks[int(level)]
	}
	return string(out)
}
