package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/fire"
)

const maxFrameRate = 60

// Generator produces a fresh trace for a seed. It backs the "new run" key.
// It must return promptly with ctx.Err() once ctx is cancelled.
type Generator func(ctx context.Context, seed uint64) (*fire.Trace, error)

// traceMsg carries the result of a background Generator call.
type traceMsg struct {
	trace *fire.Trace
	seed  uint64
	err   error
}

// Model is the Bubble Tea model for trace playback.
type Model struct {
	trace    *fire.Trace
	gen      Generator
	ctx      context.Context
	cancel   context.CancelFunc
	frame    int
	paused   bool
	busy     bool
	err      error
	config   core.RuntimeConfig
	screen   *core.Screen
	keys     ViewerKeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a viewer for tr. gen may be nil, which disables new runs.
// A nil trace with a generator simulates cfg.Seed on start.
// Background runs stop when ctx is done or the viewer quits.
func NewModel(ctx context.Context, tr *fire.Trace, gen Generator, cfg core.RuntimeConfig) Model {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		trace:  tr,
		gen:    gen,
		ctx:    ctx,
		cancel: cancel,
		busy:   tr == nil && gen != nil,
		config: cfg,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:   DefaultViewerKeyMap(),
		help:   help.New(),
	}
}

// Init starts the playback clock.
func (m Model) Init() tea.Cmd {
	if m.busy {
		return tea.Batch(tickCmd(m.config.FrameRate), newRunCmd(m.ctx, m.gen, m.config.Seed))
	}
	return tickCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.MapKey(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused && !m.busy {
			if m.frame < m.last() {
				m.frame++
			} else {
				m.paused = true
			}
		}
		return m, tickCmd(m.config.FrameRate)

	case traceMsg:
		m.busy = false
		m.err = msg.err
		if msg.err == nil {
			m.trace = msg.trace
			m.config.Seed = msg.seed
			m.frame = 0
			m.paused = false
		}
		return m, nil
	}

	return m, nil
}

// apply performs a viewer action.
func (m Model) apply(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case core.ActionPause:
		if m.paused && m.frame == m.last() {
			m.frame = 0
		}
		m.paused = !m.paused
	case core.ActionStepForward:
		m.paused = true
		m.frame = min(m.frame+1, m.last())
	case core.ActionStepBack:
		m.paused = true
		m.frame = max(m.frame-1, 0)
	case core.ActionRestart:
		m.frame = 0
		m.paused = false
	case core.ActionFaster:
		m.config.FrameRate = min(m.config.FrameRate*2, maxFrameRate)
	case core.ActionSlower:
		m.config.FrameRate = max(m.config.FrameRate/2, 1)
	case core.ActionNewRun:
		if m.gen != nil && !m.busy {
			m.busy = true
			return m, newRunCmd(m.ctx, m.gen, m.config.Seed+1)
		}
	}
	return m, nil
}

func newRunCmd(ctx context.Context, gen Generator, seed uint64) tea.Cmd {
	return func() tea.Msg {
		tr, err := gen(ctx, seed)
		return traceMsg{trace: tr, seed: seed, err: err}
	}
}

func (m Model) last() int {
	return max(m.trace.Len()-1, 0)
}

// Frame returns the index of the snapshot on screen.
func (m Model) Frame() int {
	return m.frame
}

// Paused reports whether playback is stopped.
func (m Model) Paused() bool {
	return m.paused
}

// FrameRate returns the current playback rate.
func (m Model) FrameRate() int {
	return m.config.FrameRate
}

// View renders the current snapshot to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.trace.Len() == 0 {
		m.screen.DrawTextCentered(m.screen.Height()/2, "no snapshots", core.ColorDim)
	} else {
		g := m.trace.At(m.frame)
		DrawHUD(m.screen, 0, m.frame, m.trace.Len(), g.Census(), m.config, m.paused)
		DrawGrid(m.screen, g, core.NewRect(0, 1, m.screen.Width(), m.screen.Height()-1))
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	switch {
	case m.busy:
		b.WriteString(helpStyle.Render("simulating..."))
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
	default:
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Run starts the Bubble Tea program for the given trace.
// Cancelling ctx stops the program and any run in progress.
func Run(ctx context.Context, tr *fire.Trace, gen Generator, cfg core.RuntimeConfig) error {
	m := NewModel(ctx, tr, gen, cfg)
	defer m.cancel()
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
