package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// movement key counts as held until its hold window runs out without another
// press. The window must cover the terminal's initial repeat delay.
const (
	DefaultHoldDuration = 300 * time.Millisecond
	jumpHoldTicks       = 2
)

// heldKeys emulates key-down state from press events.
type heldKeys struct {
	remaining map[core.Action]int
	holdTicks int
}

// newHeldKeys creates a tracker that holds movement for the given duration
// at the given tick rate.
func newHeldKeys(hold time.Duration, tickRate int) *heldKeys {
	ticks := int(hold * time.Duration(tickRate) / time.Second)
	return &heldKeys{
		remaining: make(map[core.Action]int),
		holdTicks: max(ticks, 1),
	}
}

// Press marks an action as held. Pressing a direction releases the opposite one.
func (h *heldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}

	ticks := h.holdTicks
	if a == core.ActionJump {
		ticks = jumpHoldTicks
	}
	h.remaining[a] = ticks
}

// Frame returns the actions held this tick and ages every hold by one tick.
func (h *heldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// Reset releases everything.
func (h *heldKeys) Reset() {
	clear(h.remaining)
}
