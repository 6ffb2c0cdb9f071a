package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/mulcheck/internal/progress"
	"github.com/agbru/mulcheck/internal/ui"
)

// MockSpinner records the calls DisplayProgress makes.
type MockSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffixes = append(m.suffixes, suffix)
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(&bytes.Buffer{}))
	rs := &realSpinner{s}

	// Just verify these methods don't panic
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

// Tests below replace newSpinner or the global theme and do not run in
// parallel.

func TestDisplayProgress(t *testing.T) {
	saved := ui.Current().Name
	t.Cleanup(func() { _ = ui.Select(saved, false) })
	_ = ui.Select(ui.NoColor, false)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.Update)
	var out bytes.Buffer

	go func() {
		progressChan <- progress.Update{SuiteIndex: 0, Value: 0.5}
		progressChan <- progress.Update{SuiteIndex: 1, Value: 1}
		time.Sleep(10 * time.Millisecond)
		close(progressChan)
	}()

	DisplayProgress(&wg, progressChan, 2, &out)
	wg.Wait()

	if !mockS.started {
		t.Error("Spinner should have started")
	}
	if !mockS.stopped {
		t.Error("Spinner should have stopped")
	}
	if !strings.Contains(out.String(), "(1/2 suites)") {
		t.Errorf("final line should count finished suites, got %q", out.String())
	}
	if !strings.Contains(out.String(), "75.0%") {
		t.Errorf("final line should show the average, got %q", out.String())
	}
}

func TestDisplayProgress_ZeroSuites(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.Update)
	close(progressChan)

	var out bytes.Buffer
	DisplayProgress(&wg, progressChan, 0, &out)
	wg.Wait()
	if out.Len() != 0 {
		t.Errorf("no output expected without suites, got %q", out.String())
	}
}

func TestFormatProgressLine(t *testing.T) {
	saved := ui.Current().Name
	t.Cleanup(func() { _ = ui.Select(saved, false) })
	_ = ui.Select(ui.NoColor, false)

	line := FormatProgressLine(0.5, 3*time.Second, 2, 4)
	for _, want := range []string{"50.0%", "ETA:", "(2/4 suites)"} {
		if !strings.Contains(line, want) {
			t.Errorf("FormatProgressLine = %q, should contain %q", line, want)
		}
	}
}
