package monitor

import (
	"context"
	stderrors "errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/sysinfo"
)

// Model is the Bubble Tea rendition of the dashboard. It samples on a
// tea.Tick instead of a poll timeout and leaves screen management to the
// Bubble Tea renderer.
type Model struct {
	ctx      context.Context
	source   sysinfo.Source
	interval time.Duration
	keys     KeyMap
	log      logger.Logger

	snapshot *Snapshot
	width    int
	height   int
	ticks    int
	err      error
	quitting bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// snapshotMsg carries the result of one sample.
type snapshotMsg struct {
	snapshot Snapshot
	err      error
}

// NewModel creates a dashboard model that samples source every interval.
func NewModel(ctx context.Context, source sysinfo.Source, interval time.Duration, log logger.Logger) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if interval <= 0 {
		interval = DefaultCadence
	}
	if log == nil {
		log = logger.Noop()
	}
	return Model{
		ctx:      ctx,
		source:   source,
		interval: interval,
		keys:     DefaultKeyMap(),
		log:      log,
	}
}

// Init takes the first sample immediately and starts the tick timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sampleCmd(), m.tickCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.IsQuit(msg) {
			m.log.Debug("quit key %q", msg.String())
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(m.sampleCmd(), m.tickCmd())

	case snapshotMsg:
		if msg.err != nil && m.ctx.Err() != nil {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.err != nil {
			m.log.Error("sample failed: %v", msg.err)
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		snap := msg.snapshot
		m.snapshot = &snap
		m.ticks++
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting || m.snapshot == nil {
		return ""
	}
	return Render(*m.snapshot, m.width, m.height).String()
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) sampleCmd() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		p, err := source.Open(ctx)
		if err != nil {
			return snapshotMsg{err: fatal(err, errors.ErrProvider, "Couldn't read system metrics", "")}
		}
		return snapshotMsg{snapshot: Build(p)}
	}
}

// RunProgram runs the Bubble Tea dashboard until a quit key, a sampling
// error, or ctx cancellation. Cancellation is a clean stop.
func RunProgram(ctx context.Context, source sysinfo.Source, interval time.Duration, log logger.Logger, opts ...tea.ProgramOption) error {
	model := NewModel(ctx, source, interval, log)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctx.Err() != nil && stderrors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Dashboard exited unexpectedly",
			"Run sysmon from an interactive terminal.")
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
