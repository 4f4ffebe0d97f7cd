package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Session owns one player's game: the current state, the player, the enemy
// roster and the music/sound toggles. It is not safe for concurrent use;
// each terminal (local or SSH) gets its own Session.
type Session struct {
	cfg     config.PlatformerConfig
	state   State
	player  *Player
	enemies []*Enemy
	tick    uint64 // Ticks simulated in the current playing session

	musicOn    bool
	soundOn    bool
	menuCursor int
	quit       bool

	playerName string
	bestScore  int
	recorder   ResultRecorder
	logger     *log.Logger
	pending    []Event
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder stores finished sessions under the given player name.
func WithRecorder(r ResultRecorder, player string) Option {
	return func(s *Session) {
		s.recorder = r
		s.playerName = player
	}
}

// WithBestScore seeds the high score shown on the menu and win screens,
// usually from storage.
func WithBestScore(score int) Option {
	return func(s *Session) {
		s.bestScore = score
	}
}

// WithToggles sets the initial music and sound flags.
func WithToggles(musicOn, soundOn bool) Option {
	return func(s *Session) {
		s.musicOn = musicOn
		s.soundOn = soundOn
	}
}

// NewSession creates a session on the main menu. A world is prepared right
// away so snapshots are always complete; starting a game rebuilds it.
func NewSession(cfg config.PlatformerConfig, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		state:   StateMenu,
		musicOn: true,
		soundOn: true,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Player returns the current player.
func (s *Session) Player() *Player {
	return s.player
}

// Enemies returns the current enemy roster in update order.
func (s *Session) Enemies() []*Enemy {
	return s.enemies
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.PlatformerConfig {
	return s.cfg
}

// MusicOn reports whether background music is enabled.
func (s *Session) MusicOn() bool {
	return s.musicOn
}

// SoundOn reports whether sound cues are enabled.
func (s *Session) SoundOn() bool {
	return s.soundOn
}

// Quit reports whether Exit was chosen from the menu.
func (s *Session) Quit() bool {
	return s.quit
}

// Step advances the session by one fixed tick with the held input.
// Only the playing state simulates; the win and game over screens wait for
// ActionContinue; the menu ignores ticks.
func (s *Session) Step(in core.InputFrame) StepResult {
	switch s.state {
	case StatePlaying:
		s.simulate(in)
	case StateWin, StateGameOver:
		if in.Has(core.ActionContinue) {
			s.fire(TriggerContinue)
		}
	}
	return s.flush()
}

// simulate runs one playing tick: player, then each enemy followed by its
// collision check, then the win check.
func (s *Session) simulate(in core.InputFrame) {
	s.tick++

	if s.player.Alive {
		if s.player.Update(in) {
			s.cue(EventJump)
		}
	}

	for _, e := range s.enemies {
		e.Update()

		switch ResolveCollision(s.player, e, s.cfg.Collision) {
		case ContactStomp:
			s.cue(EventJump)
		case ContactDamage:
			s.cue(EventHurt)
		case ContactFatal:
			s.cue(EventHurt)
			s.fire(TriggerLivesExhausted)
			s.cue(EventHurt)
		}
	}

	if s.state == StatePlaying && s.player.Progress >= s.cfg.Scoring.WinProgress {
		s.fire(TriggerWin)
	}
}

// Click handles a pointer press at world coordinates.
func (s *Session) Click(x, y int) StepResult {
	switch s.state {
	case StateMenu:
		for _, b := range MenuButtons(s.cfg.Level.Width, s.cfg.Level.Height) {
			if b.Rect.Contains(x, y) {
				s.Select(b.Item)
				break
			}
		}
	case StatePlaying, StateWin:
		if CloseButton(s.cfg.Level.Width).Contains(x, y) {
			s.fire(TriggerClose)
		}
	}
	return s.flush()
}

// HandleAction applies a discrete (edge-triggered) command such as menu
// navigation, closing the session or toggling audio.
func (s *Session) HandleAction(a core.Action) StepResult {
	switch a {
	case core.ActionToggleMusic:
		s.ToggleMusic()
	case core.ActionToggleSound:
		s.ToggleSound()
	case core.ActionClose:
		s.fire(TriggerClose)
	}

	if s.state == StateMenu {
		switch a {
		case core.ActionUp:
			s.menuCursor = core.Clamp(s.menuCursor-1, 0, len(MenuItems)-1)
		case core.ActionDown:
			s.menuCursor = core.Clamp(s.menuCursor+1, 0, len(MenuItems)-1)
		case core.ActionConfirm:
			s.Select(MenuItems[s.menuCursor])
		}
	}
	return s.flush()
}

// Select activates a menu item. It has no effect outside the menu.
func (s *Session) Select(item MenuItem) {
	if s.state != StateMenu {
		return
	}
	switch item {
	case MenuStart:
		s.fire(TriggerStart)
	case MenuMusic:
		s.ToggleMusic()
	case MenuSound:
		s.ToggleSound()
	case MenuExit:
		s.quit = true
	}
}

// ToggleMusic flips background music. The flag survives new games.
func (s *Session) ToggleMusic() {
	s.musicOn = !s.musicOn
	if s.musicOn {
		s.pending = append(s.pending, EventMusicStarted)
	} else {
		s.pending = append(s.pending, EventMusicStopped)
	}
}

// ToggleSound flips sound cues. The flag survives new games.
func (s *Session) ToggleSound() {
	s.soundOn = !s.soundOn
}

// fire is the single place the state changes. Entering the playing state
// from elsewhere rebuilds the world; leaving it records the result.
func (s *Session) fire(t Trigger) bool {
	next, ok := Transition(s.state, t)
	if !ok {
		return false
	}

	prev := s.state
	s.logger.Debug("state transition", "from", prev, "to", next, "trigger", t, "tick", s.tick)

	if prev == StatePlaying {
		s.bestScore = core.Max(s.bestScore, s.player.Score)
		s.record(next)
	}

	s.state = next
	if next == StatePlaying {
		s.reset()
	}
	return true
}

// reset builds a fresh player and enemy roster.
func (s *Session) reset() {
	s.player = NewPlayer(s.cfg)
	s.enemies = NewEnemies(s.cfg)
	s.tick = 0
}

// record saves the finished playing session, if a recorder is attached.
func (s *Session) record(next State) {
	if s.recorder == nil {
		return
	}

	ending := EndingAborted
	switch next {
	case StateWin:
		ending = EndingWin
	case StateGameOver:
		ending = EndingGameOver
	}

	r := Result{
		Player:    s.playerName,
		Ending:    ending,
		Score:     s.player.Score,
		Progress:  s.player.Progress,
		LivesLeft: s.player.Lives,
		Ticks:     s.tick,
	}
	if err := s.recorder.RecordResult(r); err != nil {
		s.logger.Warn("could not save result", "error", err, "ending", ending)
	}
}

// cue queues a sound event if sound is enabled.
func (s *Session) cue(e Event) {
	if s.soundOn {
		s.pending = append(s.pending, e)
	}
}

// flush returns the events queued since the last call.
func (s *Session) flush() StepResult {
	events := s.pending
	s.pending = nil
	return StepResult{State: s.state, Events: events}
}
