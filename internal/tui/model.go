package tui

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mulcheck/internal/config"
	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/format"
	"github.com/agbru/mulcheck/internal/harness"
	"github.com/agbru/mulcheck/internal/logging"
	"github.com/agbru/mulcheck/internal/metrics"
	"github.com/agbru/mulcheck/internal/oracle"
	"github.com/agbru/mulcheck/internal/orchestration"
	"github.com/agbru/mulcheck/internal/sysmon"
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	plan       []harness.Suite
	oracle     oracle.Oracle
	metrics    *metrics.Metrics
	vectors    int
	generation uint64
	done       bool
	exitCode   int
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// Layout constants for the dashboard.
const (
	headerHeight            = 1
	footerHeight            = 1
	noticeHeight            = 1
	minBodyHeight           = 6
	SuitesPanelWidthPercent = 60
	MetricsPanelHeight      = 5
)

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight-noticeHeight, minBodyHeight)
}

func (l LayoutManager) suitesWidth() int {
	return l.width * SuitesPanelWidthPercent / 100
}

func (l LayoutManager) rightWidth() int {
	return l.width - l.suitesWidth()
}

func (l LayoutManager) metricsHeight() int {
	return min(MetricsPanelHeight, l.bodyHeight()/2)
}

func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header   HeaderModel
	suites   SuitesModel
	counters MetricsModel
	chart    ChartModel
	footer   FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.AppConfig
	ref       *programRef
	paused    bool
	// notice is the single status line above the footer.
	notice string
}

// NewModel creates the dashboard for suites checked against o.
func NewModel(parentCtx context.Context, suites []harness.Suite, o oracle.Oracle, cfg config.AppConfig, version string, m *metrics.Metrics) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	keys := DefaultKeyMap()
	vectors := orchestration.CountVectors(suites)

	subtitle := fmt.Sprintf("%d suites, %d vectors, oracle %s", len(suites), vectors, o.Name())
	return Model{
		header:   NewHeaderModel(version, subtitle),
		suites:   NewSuitesModel(suites),
		counters: NewMetricsModel(vectors),
		chart:    NewChartModel(len(suites)),
		footer:   NewFooterModel(keys),
		keymap:   keys,
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			plan:     suites,
			oracle:   o,
			metrics:  m,
			vectors:  vectors,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return m.startCmds()
}

func (m Model) startCmds() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunCmd(m.ref, m.ctx, m.plan, m.oracle, m.config, m.metrics, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		m.suites.SetProgress(msg.SuiteIndex, msg.Value)
		if !m.paused {
			m.chart.AddDataPoint(msg.AverageProgress, msg.ETA, msg.SuitesFinished)
			m.counters.UpdateProgress(msg.AverageProgress)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case SummaryMsg:
		m.suites.ApplyReport(msg.Report)
		t := msg.Report.Totals()
		m.counters.SetCounts(t.Passed, t.Failed)
		m.footer.SetFailed(t.Failed > 0)
		return m, nil

	case MismatchesMsg:
		if len(msg.Mismatches) > 0 {
			first := msg.Mismatches[0]
			m.notice = fmt.Sprintf("%d mismatches, first in %s/%s", len(msg.Mismatches), first.Suite, first.Vector)
		}
		return m, nil

	case ErrorMsg:
		m.notice = fmt.Sprintf("Stopped after %s: %v", format.FormatExecutionDuration(msg.Duration), msg.Err)
		m.footer.SetError(true)
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			m.chart.AddRate(m.counters.Rate())
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.counters.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case RunCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		m.chart.SetDone(m.header.Elapsed())
		m.footer.SetDone(true)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		if m.exitCode == apperrors.ExitSuccess {
			m.exitCode = apperrors.ExitCodeFor(msg.Err)
		}
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Rerun):
		if m.cancel != nil {
			m.cancel()
		}

		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.header.Reset()
		m.suites.Reset()
		m.chart.Reset()
		m.counters = NewMetricsModel(m.vectors)
		m.counters.SetSize(m.rightWidth(), m.metricsHeight())
		m.footer.SetDone(false)
		m.footer.SetError(false)
		m.footer.SetFailed(false)
		m.footer.SetPaused(false)
		m.done = false
		m.paused = false
		m.notice = ""
		m.exitCode = apperrors.ExitSuccess

		return m, m.startCmds()

	case key.Matches(msg, m.keymap.Up):
		m.suites.MoveCursor(-1)
	case key.Matches(msg, m.keymap.Down):
		m.suites.MoveCursor(1)
	case key.Matches(msg, m.keymap.PageUp):
		m.suites.MoveCursor(-m.suites.PageSize())
	case key.Matches(msg, m.keymap.PageDown):
		m.suites.MoveCursor(m.suites.PageSize())
	case key.Matches(msg, m.keymap.First):
		m.suites.MoveCursor(-len(m.plan))
	case key.Matches(msg, m.keymap.Last):
		m.suites.MoveCursor(len(m.plan))
	case key.Matches(msg, m.keymap.NextFailure):
		if !m.suites.NextFailure() {
			m.notice = "no failed suite"
		}
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	rightCol := lipgloss.JoinVertical(lipgloss.Left, m.counters.View(), m.chart.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.suites.View(), rightCol)

	notice := m.notice
	if m.footer.errored || m.footer.failed {
		notice = failStyle.Render(notice)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, " "+notice, m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.suites.SetSize(m.suitesWidth(), m.bodyHeight())
	m.counters.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
}

// Run is the entry point of the dashboard mode. It runs the program until
// the user quits or ctx is done and returns the exit code.
func Run(ctx context.Context, suites []harness.Suite, o oracle.Oracle, cfg config.AppConfig, version string, m *metrics.Metrics) int {
	initTUIStyles()

	model := NewModel(ctx, suites, o, cfg, version, m)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if fm, ok := finalModel.(Model); ok {
		fm.cancel()
		return fm.exitCode
	}
	return apperrors.ExitSuccess
}

// startRunCmd returns a tea.Cmd that runs every suite through the
// orchestration layer and reports back with RunCompleteMsg.
func startRunCmd(ref *programRef, ctx context.Context, suites []harness.Suite, o oracle.Oracle, cfg config.AppConfig, m *metrics.Metrics, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		// Log output would tear the alternate screen.
		opts := orchestration.ExecOptions{
			Workers:  cfg.Workers,
			Parallel: cfg.Parallel,
			Logger:   logging.NopLogger{},
			Metrics:  m,
		}
		report := orchestration.ExecuteSuites(ctx, suites, o, opts, reporter, io.Discard)
		exitCode := orchestration.AnalyzeResults(report, orchestration.PresentationOptions{Verbose: cfg.Verbose}, presenter, io.Discard)
		return RunCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var memCollector = metrics.NewMemoryCollector()

// sampleMemStatsCmd reads runtime memory stats.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := memCollector.Snapshot()
		return MemStatsMsg{
			HeapAlloc:    s.HeapAlloc,
			Sys:          s.Sys,
			NumGC:        s.NumGC,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads host-wide CPU and memory usage.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for ctx to be done.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
