package game

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

func TestResolveCollision(t *testing.T) {
	tests := []struct {
		name          string
		px, py, vel   float64
		invulnerable  int
		lives         int
		enemyDead     bool
		expected      Contact
		expectedLives int
		expectedAlive bool // Enemy alive afterwards
	}{
		{"stomp while falling", 310, 320, 2, 0, 3, false, ContactStomp, 3, false},
		{"no stomp while standing", 310, 320, 0, 0, 3, false, ContactDamage, 2, true},
		{"no stomp while rising", 310, 320, -3, 0, 3, false, ContactDamage, 2, true},
		{"side hit", 320, 340, 0, 0, 3, false, ContactDamage, 2, true},
		{"feet on the stomp line is a side hit", 300, 330, 1, 0, 3, false, ContactDamage, 2, true},
		{"horizontal edge is exclusive", 330, 340, 0, 0, 3, false, ContactNone, 3, true},
		{"too far", 400, 340, 0, 0, 3, false, ContactNone, 3, true},
		{"too high for a side hit", 300, 300, 0, 0, 3, false, ContactNone, 3, true},
		{"invulnerable ignores hits", 320, 340, 0, 5, 3, false, ContactNone, 3, true},
		{"invulnerable cannot stomp", 310, 320, 2, 5, 3, false, ContactNone, 3, true},
		{"dead enemy is ignored", 320, 340, 0, 0, 3, true, ContactNone, 3, false},
		{"last life", 320, 340, 0, 0, 1, false, ContactFatal, 0, true},
	}

	cfg := config.DefaultPlatformerConfig()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(cfg)
			p.X, p.Y, p.VelocityY = tc.px, tc.py, tc.vel
			p.Invulnerable = tc.invulnerable
			p.Lives = tc.lives

			e := NewEnemy(KindSnake, config.Zone{Left: 0.3, Right: 0.5}, cfg)
			e.X = 300
			if tc.enemyDead {
				e.Defeat()
			}

			got := ResolveCollision(p, e, cfg.Collision)
			if got != tc.expected {
				t.Errorf("contact = %v, expected %v", got, tc.expected)
			}
			if p.Lives != tc.expectedLives {
				t.Errorf("lives = %d, expected %d", p.Lives, tc.expectedLives)
			}
			if e.Alive != tc.expectedAlive {
				t.Errorf("enemy alive = %v, expected %v", e.Alive, tc.expectedAlive)
			}
		})
	}
}

func TestStompRewards(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	p := NewPlayer(cfg)
	p.X, p.Y, p.VelocityY = 300, 320, 2

	e := NewEnemy(KindMushroom, config.Zone{Left: 0.3, Right: 0.5}, cfg)
	e.X = 300

	if got := ResolveCollision(p, e, cfg.Collision); got != ContactStomp {
		t.Fatalf("contact = %v, expected stomp", got)
	}
	if p.Score != 50 || p.Progress != 10 {
		t.Errorf("score=%d progress=%d, expected 50 / 10", p.Score, p.Progress)
	}
	if !approx(p.VelocityY, -7) {
		t.Errorf("bounce VelocityY = %f, expected -7", p.VelocityY)
	}
	if e.RespawnTimer != 0 {
		t.Errorf("RespawnTimer = %d, expected 0", e.RespawnTimer)
	}

	// A second resolution against the dead enemy does nothing.
	p.VelocityY = 2
	if got := ResolveCollision(p, e, cfg.Collision); got != ContactNone {
		t.Errorf("second contact = %v, expected none", got)
	}
	if p.Score != 50 {
		t.Errorf("score changed to %d", p.Score)
	}
}
