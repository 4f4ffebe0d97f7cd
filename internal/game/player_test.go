package game

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultPlatformerConfig())
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	if p.X != 185 || p.Y != 340 {
		t.Errorf("start position = (%f, %f), expected (185, 340)", p.X, p.Y)
	}
	if p.Lives != 3 || p.Score != 0 || p.Progress != 0 || p.Invulnerable != 0 {
		t.Errorf("unexpected starting stats: %+v", p)
	}
	if !p.Alive || p.Facing != 1 {
		t.Errorf("player should start alive facing right")
	}
}

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name           string
		startX         float64
		dx             float64
		expectedX      float64
		expectedFacing int
	}{
		{"right", 100, 1, 105, 1},
		{"left", 100, -1, 95, -1},
		{"clamped at left edge", 2, -1, 0, -1},
		{"clamped at right edge", 738, 1, 740, 1},
		{"zero keeps facing", 100, 0, 100, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			p.X = tc.startX
			p.Move(tc.dx)

			if !approx(p.X, tc.expectedX) {
				t.Errorf("X = %f, expected %f", p.X, tc.expectedX)
			}
			if p.Facing != tc.expectedFacing {
				t.Errorf("Facing = %d, expected %d", p.Facing, tc.expectedFacing)
			}
		})
	}
}

func TestPlayerMoveNegativeWidth(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Level.Width = -10
	p := NewPlayer(cfg)

	p.Move(1)
	if p.X != 0 {
		t.Errorf("X = %f, expected 0 for a degenerate level", p.X)
	}
}

func TestPlayerJump(t *testing.T) {
	p := newTestPlayer()

	if !p.Jump() {
		t.Fatal("jump from the ground should succeed")
	}
	if p.VelocityY != -10 {
		t.Errorf("VelocityY = %f, expected -10", p.VelocityY)
	}

	p.Y = 300
	p.VelocityY = 2
	if p.Jump() {
		t.Error("jump while airborne should fail")
	}
	if p.VelocityY != 2 {
		t.Errorf("failed jump changed VelocityY to %f", p.VelocityY)
	}
}

func TestPlayerUpdate(t *testing.T) {
	p := newTestPlayer()

	jumped := p.Update(core.FrameOf(core.ActionRight, core.ActionJump))
	if !jumped {
		t.Error("Update should report the jump")
	}
	if !approx(p.X, 190) {
		t.Errorf("X = %f, expected 190", p.X)
	}
	if !approx(p.VelocityY, -9.5) || !approx(p.Y, 330.5) {
		t.Errorf("after one tick: Y=%f vel=%f, expected 330.5 / -9.5", p.Y, p.VelocityY)
	}

	// Holding jump in the air does nothing.
	if p.Update(core.FrameOf(core.ActionJump)) {
		t.Error("jump should not start while airborne")
	}

	// The jump lands eventually.
	for i := 0; i < 100; i++ {
		p.Update(core.NewInputFrame())
	}
	if !p.Grounded(340) {
		t.Errorf("player should have landed, Y = %f", p.Y)
	}
}

func TestPlayerTakeDamage(t *testing.T) {
	p := newTestPlayer()

	if got := p.TakeDamage(); got != DamageTaken {
		t.Fatalf("first hit = %v, expected DamageTaken", got)
	}
	if p.Lives != 2 || p.Invulnerable != 60 {
		t.Errorf("lives=%d invulnerable=%d, expected 2 / 60", p.Lives, p.Invulnerable)
	}

	if got := p.TakeDamage(); got != DamageIgnored {
		t.Errorf("hit while invulnerable = %v, expected DamageIgnored", got)
	}
	if p.Lives != 2 {
		t.Errorf("lives changed while invulnerable: %d", p.Lives)
	}

	for i := 0; i < 60; i++ {
		p.Update(core.NewInputFrame())
	}
	if p.Invulnerable != 0 {
		t.Fatalf("invulnerability should expire after 60 ticks, %d left", p.Invulnerable)
	}

	p.TakeDamage()
	p.Invulnerable = 0
	if got := p.TakeDamage(); got != DamageFatal {
		t.Errorf("last hit = %v, expected DamageFatal", got)
	}
	if p.Lives != 0 || p.Alive {
		t.Errorf("player should be dead with 0 lives, got lives=%d alive=%v", p.Lives, p.Alive)
	}
}

func TestPlayerAwardStomp(t *testing.T) {
	p := newTestPlayer()

	p.AwardStomp(0.7)
	if p.Score != 50 || p.Progress != 10 {
		t.Errorf("score=%d progress=%d, expected 50 / 10", p.Score, p.Progress)
	}
	if !approx(p.VelocityY, -7) {
		t.Errorf("bounce VelocityY = %f, expected -7", p.VelocityY)
	}

	p.Progress = 95
	p.AwardStomp(0.7)
	if p.Progress != 100 {
		t.Errorf("progress should saturate at 100, got %d", p.Progress)
	}
}
