package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapTranslate(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		state    game.State
		msg      tea.KeyMsg
		expected KeyInput
	}{
		{"menu up", game.StateMenu, tea.KeyMsg{Type: tea.KeyUp}, KeyInput{Command: core.ActionUp}},
		{"menu down", game.StateMenu, tea.KeyMsg{Type: tea.KeyDown}, KeyInput{Command: core.ActionDown}},
		{"menu enter", game.StateMenu, tea.KeyMsg{Type: tea.KeyEnter}, KeyInput{Command: core.ActionConfirm}},
		{"menu space", game.StateMenu, tea.KeyMsg{Type: tea.KeySpace}, KeyInput{Command: core.ActionConfirm}},
		{"menu ignores left", game.StateMenu, tea.KeyMsg{Type: tea.KeyLeft}, KeyInput{}},
		{"playing left", game.StatePlaying, tea.KeyMsg{Type: tea.KeyLeft}, KeyInput{Held: core.ActionLeft}},
		{"playing d", game.StatePlaying, runeKey('d'), KeyInput{Held: core.ActionRight}},
		{"playing space", game.StatePlaying, tea.KeyMsg{Type: tea.KeySpace}, KeyInput{Held: core.ActionJump}},
		{"playing up jumps", game.StatePlaying, tea.KeyMsg{Type: tea.KeyUp}, KeyInput{Held: core.ActionJump}},
		{"playing esc", game.StatePlaying, tea.KeyMsg{Type: tea.KeyEsc}, KeyInput{Command: core.ActionClose}},
		{"win space", game.StateWin, tea.KeyMsg{Type: tea.KeySpace}, KeyInput{Command: core.ActionContinue}},
		{"game over enter", game.StateGameOver, tea.KeyMsg{Type: tea.KeyEnter}, KeyInput{Command: core.ActionContinue}},
		{"game over ignores movement", game.StateGameOver, tea.KeyMsg{Type: tea.KeyRight}, KeyInput{}},
		{"music anywhere", game.StatePlaying, runeKey('m'), KeyInput{Command: core.ActionToggleMusic}},
		{"sound anywhere", game.StateMenu, runeKey('s'), KeyInput{Command: core.ActionToggleSound}},
		{"quit", game.StatePlaying, runeKey('q'), KeyInput{Command: core.ActionQuit}},
		{"ctrl+c", game.StateMenu, tea.KeyMsg{Type: tea.KeyCtrlC}, KeyInput{Command: core.ActionQuit}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := km.Translate(tc.state, tc.msg)
			if got != tc.expected {
				t.Errorf("Translate(%q) = %+v, expected %+v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	h := newHeldKeys(DefaultHoldDuration, 60)
	if h.holdTicks != 18 {
		t.Fatalf("holdTicks = %d, expected 18", h.holdTicks)
	}

	h.Press(core.ActionRight)
	for i := 0; i < 18; i++ {
		if !h.Frame().Has(core.ActionRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}
	if h.Frame().Has(core.ActionRight) {
		t.Error("right should be released after the hold window")
	}

	// A repeat press extends the hold.
	h.Press(core.ActionLeft)
	h.Frame()
	h.Press(core.ActionLeft)
	for i := 0; i < 18; i++ {
		h.Frame()
	}
	if h.Frame().Has(core.ActionLeft) {
		t.Error("left should be released 18 ticks after the last press")
	}
}

func TestHeldKeysOpposites(t *testing.T) {
	h := newHeldKeys(DefaultHoldDuration, 60)

	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)
	f := h.Frame()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("pressing right should release left, got %v", f.Actions)
	}
}

func TestHeldKeysJump(t *testing.T) {
	h := newHeldKeys(DefaultHoldDuration, 60)

	h.Press(core.ActionJump)
	if !h.Frame().Has(core.ActionJump) || !h.Frame().Has(core.ActionJump) {
		t.Fatal("jump should be held for two ticks")
	}
	if h.Frame().Has(core.ActionJump) {
		t.Error("jump should be released after two ticks")
	}
}

func TestHeldKeysMinimum(t *testing.T) {
	h := newHeldKeys(0, 60)
	h.Press(core.ActionLeft)
	if !h.Frame().Has(core.ActionLeft) {
		t.Error("a press must last at least one tick")
	}
}
