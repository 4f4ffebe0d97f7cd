package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// KeyMap defines the key bindings for the game screen.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Jump     key.Binding
	Up       key.Binding
	Down     key.Binding
	Confirm  key.Binding
	Continue key.Binding
	Close    key.Binding
	Music    key.Binding
	Sound    key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Close, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Up, k.Down, k.Confirm, k.Continue},
		{k.Music, k.Sound, k.Close, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "menu up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "menu down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Continue: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "play again"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "back to menu"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle music"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sound"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyInput is what a single key press means in the current state.
type KeyInput struct {
	Held    core.Action // Movement to hold for a few ticks (ActionNone if none)
	Command core.Action // Discrete command (ActionNone if none)
}

// Translate maps a key press to actions. The same key can mean different
// things depending on the state: space jumps while playing, selects in the
// menu and restarts on the end screens.
func (k KeyMap) Translate(state game.State, msg tea.KeyMsg) KeyInput {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyInput{Command: core.ActionQuit}
	case key.Matches(msg, k.Music):
		return KeyInput{Command: core.ActionToggleMusic}
	case key.Matches(msg, k.Sound):
		return KeyInput{Command: core.ActionToggleSound}
	case key.Matches(msg, k.Close):
		return KeyInput{Command: core.ActionClose}
	}

	switch state {
	case game.StateMenu:
		switch {
		case key.Matches(msg, k.Up):
			return KeyInput{Command: core.ActionUp}
		case key.Matches(msg, k.Down):
			return KeyInput{Command: core.ActionDown}
		case key.Matches(msg, k.Confirm):
			return KeyInput{Command: core.ActionConfirm}
		}

	case game.StatePlaying:
		switch {
		case key.Matches(msg, k.Left):
			return KeyInput{Held: core.ActionLeft}
		case key.Matches(msg, k.Right):
			return KeyInput{Held: core.ActionRight}
		case key.Matches(msg, k.Jump):
			return KeyInput{Held: core.ActionJump}
		}

	case game.StateWin, game.StateGameOver:
		if key.Matches(msg, k.Continue) {
			return KeyInput{Command: core.ActionContinue}
		}
	}

	return KeyInput{}
}
