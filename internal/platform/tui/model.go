package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Model is the Bubble Tea model for running a snake session.
type Model struct {
	session   *game.Session
	screen    *core.Screen
	config    core.RuntimeConfig
	cellWidth int
	logger    *log.Logger

	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	lastTick   time.Time
	tooSmall   bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig, cellWidth int, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		session:    session,
		config:     cfg,
		cellWidth:  cellWidth,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.session.State().Score, "ticks", m.session.Ticks())
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick feeds input and elapsed time to the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	// The game waits while the board does not fit.
	if !m.tooSmall {
		m.session.Apply(m.inputFrame)
		m.session.Advance(elapsed)
	}
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// resize updates the screen to the terminal size, keeping room for the help footer.
func (m *Model) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width

	footer := 1
	if m.help.ShowAll {
		footer = len(m.keys.FullHelp()[0])
	}
	if m.screen == nil {
		m.screen = core.NewScreen(width, height-footer)
	} else {
		m.screen.Resize(width, height-footer)
	}

	board := m.session.Board()
	wasTooSmall := m.tooSmall
	m.tooSmall = !NewScreenCanvas(m.screen, board.Columns(), board.Rows(), m.cellWidth).Fits()
	if m.tooSmall && !wasTooSmall {
		needW, needH := RequiredSize(board.Columns(), board.Rows(), m.cellWidth)
		m.logger.Warn("terminal too small", "width", width, "height", height, "need_width", needW, "need_height", needH+footer)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	board := m.session.Board()
	canvas := NewScreenCanvas(m.screen, board.Columns(), board.Rows(), m.cellWidth)
	if m.tooSmall {
		canvas.DrawTooSmall()
	} else {
		m.session.Draw(canvas)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the session.
func Run(session *game.Session, cfg core.RuntimeConfig, cellWidth int, logger *log.Logger) error {
	model := NewModel(session, cfg, cellWidth, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
