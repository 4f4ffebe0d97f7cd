package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	held     *heldKeys
	pending  core.InputFrame // One-shot actions for the next tick
	bell     io.Writer
	logger   *log.Logger
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithBell rings the terminal bell on w for jump and hurt cues.
func WithBell(w io.Writer) ModelOption {
	return func(m *Model) {
		m.bell = w
	}
}

// WithModelLogger sets the logger used for audio and session events.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithHoldDuration sets how long a movement key counts as held after a press.
func WithHoldDuration(d time.Duration) ModelOption {
	return func(m *Model) {
		m.held = newHeldKeys(d, m.config.TickRate)
	}
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		held:    newHeldKeys(DefaultHoldDuration, cfg.TickRate),
		pending: core.NewInputFrame(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.Translate(m.session.State(), msg)

	if in.Held != core.ActionNone {
		m.held.Press(in.Held)
	}

	switch in.Command {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionContinue:
		m.pending.Set(core.ActionContinue)
		return m, nil
	}

	res := m.session.HandleAction(in.Command)
	return m.afterStep(res)
}

// handleMouse forwards left clicks to the session in world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	x, y := ScreenToWorld(m.session.Config().Level, m.screen, msg.X, msg.Y)
	res := m.session.Click(x, y)
	return m.afterStep(res)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Frame()
	for a := range m.pending.Actions {
		frame.Set(a)
	}
	m.pending.Clear()

	res := m.session.Step(frame)
	next, cmd := m.afterStep(res)
	if next.quitting {
		return next, cmd
	}
	return next, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// afterStep reacts to the events and state produced by a session call.
func (m Model) afterStep(res game.StepResult) (Model, tea.Cmd) {
	if res.State != game.StatePlaying {
		m.held.Reset()
	}

	var cmds []tea.Cmd
	for _, e := range res.Events {
		switch e {
		case game.EventJump, game.EventHurt:
			m.logger.Debug("sound", "cue", e)
			if m.bell != nil {
				cmds = append(cmds, bellCmd(m.bell))
			}
		case game.EventMusicStarted, game.EventMusicStopped:
			m.logger.Info("music", "event", e)
		}
	}

	if m.session.Quit() {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// bellCmd writes the terminal bell.
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // Best-effort cue
		w.Write([]byte("\a"))
		return nil
	}
}

// ScreenToWorld converts a terminal cell into level coordinates.
func ScreenToWorld(level config.Level, screen *core.Screen, cx, cy int) (int, int) {
	return game.NewProjection(level, screen.Width(), screen.Height()).ToWorld(cx, cy)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Session returns the underlying game session.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program for a local terminal.
func Run(session *game.Session, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(session, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on menu buttons and the close control
	)

	_, err := p.Run()
	return err
}
