package game

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Contact is the result of resolving the player against one enemy.
type Contact int

const (
	ContactNone   Contact = iota
	ContactStomp          // Enemy defeated from above
	ContactDamage         // Player hurt, lives remain
	ContactFatal          // Player hurt, no lives left
)

// String returns a human-readable name for the contact.
func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactStomp:
		return "stomp"
	case ContactDamage:
		return "damage"
	case ContactFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ResolveCollision applies the stomp-or-damage rule between the player and
// one enemy. Dead enemies and invulnerable players never interact.
//
// These are distance thresholds, not a box overlap. A stomp needs the player
// falling and horizontally close, with its feet above a line
// StompHeight-StompTolerance over the enemy's base.
func ResolveCollision(p *Player, e *Enemy, cfg config.Collision) Contact {
	if !e.Alive || p.Invulnerable > 0 {
		return ContactNone
	}

	near := core.AbsF(p.X-e.X) < cfg.HorizontalRange

	if near && p.VelocityY > 0 && p.Y < e.Y-cfg.StompHeight+cfg.StompTolerance {
		e.Defeat()
		p.AwardStomp(cfg.BounceFactor)
		return ContactStomp
	}

	if near && core.AbsF(p.Y-e.Y) < cfg.VerticalRange {
		switch p.TakeDamage() {
		case DamageTaken:
			return ContactDamage
		case DamageFatal:
			return ContactFatal
		}
	}

	return ContactNone
}
