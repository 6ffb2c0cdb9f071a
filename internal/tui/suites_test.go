package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/mpmul"
)

func testSuites(t *testing.T) []harness.Suite {
	t.Helper()
	return []harness.Suite{
		harness.NewSuite(2, harness.KindCurated, mpmul.Schoolbook{}, harness.CuratedVectors(2)),
		harness.NewSuite(2, harness.KindEdge, mpmul.FixedFour{}, harness.EdgeVectors(2)),
		harness.NewSuite(4, harness.KindEdge, mpmul.Schoolbook{}, harness.EdgeVectors(4)),
	}
}

func TestSuitesModel_Progress(t *testing.T) {
	m := NewSuitesModel(testSuites(t))
	m.SetProgress(1, 0.5)
	m.SetProgress(7, 0.5)
	m.SetProgress(-1, 0.5)

	if m.rows[1].status != StatusRunning || m.rows[1].progress != 0.5 {
		t.Errorf("row 1 = %+v, want running at 0.5", m.rows[1])
	}
	if m.rows[0].status != StatusPending {
		t.Errorf("row 0 status = %v, want pending", m.rows[0].status)
	}
}

func TestSuitesModel_ApplyReport(t *testing.T) {
	m := NewSuitesModel(testSuites(t))
	report := harness.Report{Suites: []harness.SuiteResult{
		{Suite: "a", Tally: harness.Tally{Total: 3, Passed: 3}},
		{Suite: "b", Tally: harness.Tally{Total: 3, Passed: 1, Failed: 2}},
		{Suite: "c", Err: context.Canceled},
	}}
	m.ApplyReport(report)

	want := []SuiteStatus{StatusPassed, StatusFailed, StatusStopped}
	for i, s := range want {
		if m.rows[i].status != s {
			t.Errorf("row %d status = %v, want %v", i, m.rows[i].status, s)
		}
	}
	if passed, failed := m.Counts(); passed != 1 || failed != 1 {
		t.Errorf("Counts() = (%d, %d), want (1, 1)", passed, failed)
	}

	m.Reset()
	if passed, failed := m.Counts(); passed != 0 || failed != 0 {
		t.Errorf("Counts() after Reset = (%d, %d), want (0, 0)", passed, failed)
	}
}

func TestSuitesModel_Scrolling(t *testing.T) {
	suites := make([]harness.Suite, 20)
	for i := range suites {
		suites[i] = harness.NewSuite(i+1, harness.KindEdge, mpmul.Schoolbook{}, nil)
	}
	m := NewSuitesModel(suites)
	m.SetSize(80, 8)

	page := m.PageSize()
	m.MoveCursor(page + 2)
	if m.cursor != page+2 {
		t.Fatalf("cursor = %d, want %d", m.cursor, page+2)
	}
	if m.offset != m.cursor-page+1 {
		t.Errorf("offset = %d, want %d", m.offset, m.cursor-page+1)
	}

	m.MoveCursor(100)
	if m.cursor != len(suites)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(suites)-1)
	}
	m.MoveCursor(-100)
	if m.cursor != 0 || m.offset != 0 {
		t.Errorf("cursor/offset = %d/%d, want 0/0", m.cursor, m.offset)
	}
}

func TestSuitesModel_View(t *testing.T) {
	m := NewSuitesModel(testSuites(t))
	m.SetSize(120, 10)
	m.SetProgress(0, 1)

	view := m.View()
	for _, want := range []string{"Suite", "w2/schoolbook/curated", "w2/fixed4/edge", "running", "pending"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestRenderBar(t *testing.T) {
	if got := renderBar(0.5, 0); got != "" {
		t.Errorf("zero width bar = %q, want empty", got)
	}
	if got := renderBar(2, 4); strings.Count(got, "█") != 4 {
		t.Errorf("progress above 1 should fill the bar, got %q", got)
	}
	if got := renderBar(-1, 4); strings.Count(got, "░") != 4 {
		t.Errorf("negative progress should leave the bar empty, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"w16/schoolbook/random", 8, "w16/sch…"},
		{"abc", 1, "a"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSuitesModel_NextFailure(t *testing.T) {
	m := NewSuitesModel(testSuites(t))
	if m.NextFailure() || m.cursor != 0 {
		t.Fatalf("NextFailure with no failures moved the cursor to %d", m.cursor)
	}

	m.ApplyReport(harness.Report{Suites: []harness.SuiteResult{
		{Suite: "a", Tally: harness.Tally{Total: 3, Failed: 1}},
		{Suite: "b", Tally: harness.Tally{Total: 3, Passed: 3}},
		{Suite: "c", Tally: harness.Tally{Total: 3, Failed: 3}},
	}})

	for _, want := range []int{2, 0, 2} {
		if !m.NextFailure() {
			t.Fatal("NextFailure reported no failed suite")
		}
		if m.cursor != want {
			t.Errorf("cursor = %d, want %d", m.cursor, want)
		}
	}
}
