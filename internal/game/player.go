package game

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DamageResult describes what TakeDamage did.
type DamageResult int

const (
	DamageIgnored DamageResult = iota // Invulnerable, nothing changed
	DamageTaken                       // Lost a life, still alive
	DamageFatal                       // Lost the last life
)

// Player is the character controlled by the user.
type Player struct {
	Body
	Score        int
	Progress     int
	Lives        int
	Invulnerable int // Remaining ticks of the invulnerability window

	physics config.Physics
	level   config.Level
	rules   config.Player
	scoring config.Scoring
}

// NewPlayer creates a player standing on the ground a quarter into the level.
func NewPlayer(cfg config.PlatformerConfig) *Player {
	return &Player{
		Body: Body{
			X:      cfg.Level.Width / 4,
			Y:      cfg.Level.GroundY(),
			Facing: 1,
			Alive:  true,
		},
		Lives:   cfg.Player.StartingLives,
		physics: cfg.Physics,
		level:   cfg.Level,
		rules:   cfg.Player,
		scoring: cfg.Scoring,
	}
}

// Move shifts the player horizontally by dx steps and keeps it on screen.
// A zero dx keeps the previous facing.
func (p *Player) Move(dx float64) {
	p.X += dx * p.physics.MoveSpeed
	if s := core.Sign(dx); s != 0 {
		p.Facing = s
	}
	p.X = core.ClampF(p.X, 0, max(p.level.Width, 0))
}

// Jump starts a jump if the player is on the ground.
// Returns false (and changes nothing) while airborne.
func (p *Player) Jump() bool {
	if !p.Grounded(p.level.GroundY()) {
		return false
	}
	p.VelocityY = p.physics.JumpSpeed
	return true
}

// Update advances the player by one tick using the held input.
// Returns true if a jump started this tick.
func (p *Player) Update(in core.InputFrame) bool {
	if in.Has(core.ActionLeft) {
		p.Move(-1)
	}
	if in.Has(core.ActionRight) {
		p.Move(1)
	}
	jumped := false
	if in.Has(core.ActionJump) {
		jumped = p.Jump()
	}

	p.ApplyGravity(p.physics.Gravity, p.level.GroundY())
	p.AdvanceAnimation(p.physics.AnimationSpeed)

	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
	return jumped
}

// TakeDamage removes a life unless the invulnerability window is active.
func (p *Player) TakeDamage() DamageResult {
	if p.Invulnerable > 0 {
		return DamageIgnored
	}

	p.Lives--
	p.Invulnerable = p.rules.InvulnerableFrames

	if p.Lives <= 0 {
		p.Alive = false
		return DamageFatal
	}
	return DamageTaken
}

// AwardStomp credits a defeated enemy and bounces the player upward.
// Progress saturates at the win threshold.
func (p *Player) AwardStomp(bounceFactor float64) {
	p.Score += p.scoring.StompScore
	p.Progress = min(p.Progress+p.scoring.StompProgress, p.scoring.WinProgress)
	p.VelocityY = p.physics.JumpSpeed * bounceFactor
}
