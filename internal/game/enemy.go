package game

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// EnemyKind selects an enemy's appearance. Both kinds behave identically.
type EnemyKind int

const (
	KindSnake EnemyKind = iota
	KindMushroom
)

// String returns the config name of the kind.
func (k EnemyKind) String() string {
	switch k {
	case KindSnake:
		return "snake"
	case KindMushroom:
		return "mushroom"
	default:
		return "unknown"
	}
}

// ParseEnemyKind converts a config name into an EnemyKind.
func ParseEnemyKind(name string) (EnemyKind, error) {
	switch name {
	case "snake":
		return KindSnake, nil
	case "mushroom":
		return KindMushroom, nil
	}
	return KindSnake, fmt.Errorf("game: unknown enemy kind %q", name)
}

// Enemy patrols its zone and respawns some time after being stomped.
type Enemy struct {
	Body
	Kind         EnemyKind
	Zone         config.Zone
	RespawnTimer int // Ticks spent dead

	physics     config.Physics
	level       config.Level
	respawnTime int
}

// NewEnemy creates an enemy standing at the midpoint of its zone.
func NewEnemy(kind EnemyKind, zone config.Zone, cfg config.PlatformerConfig) *Enemy {
	e := &Enemy{
		Body: Body{
			Y:      cfg.Level.GroundY(),
			Facing: 1,
			Alive:  true,
		},
		Kind:        kind,
		Zone:        zone,
		physics:     cfg.Physics,
		level:       cfg.Level,
		respawnTime: cfg.Enemies.RespawnTime,
	}
	e.X = e.midpoint()
	return e
}

// NewEnemies builds one enemy per configured zone, assigning kinds round-robin.
// Unknown kind names fall back to snakes; config validation reports them.
func NewEnemies(cfg config.PlatformerConfig) []*Enemy {
	enemies := make([]*Enemy, 0, len(cfg.Enemies.Zones))
	for i, zone := range cfg.Enemies.Zones {
		kind := KindSnake
		if n := len(cfg.Enemies.Kinds); n > 0 {
			kind, _ = ParseEnemyKind(cfg.Enemies.Kinds[i%n])
		}
		enemies = append(enemies, NewEnemy(kind, zone, cfg))
	}
	return enemies
}

// Bounds returns the patrol range in world units.
func (e *Enemy) Bounds() (left, right float64) {
	return e.level.Width * e.Zone.Left, e.level.Width * e.Zone.Right
}

func (e *Enemy) midpoint() float64 {
	return e.level.Width * e.Zone.Midpoint()
}

// Update advances the patrol or the respawn countdown by one tick.
func (e *Enemy) Update() {
	if !e.Alive {
		e.RespawnTimer++
		if e.RespawnTimer >= e.respawnTime {
			e.Respawn()
		}
		return
	}

	e.X += e.physics.MoveSpeed * float64(e.Facing)

	// Turn around at the zone edges, never leaving the zone.
	left, right := e.Bounds()
	if e.X <= left {
		e.X = left
		e.Facing = 1
	} else if e.X >= right {
		e.X = right
		e.Facing = -1
	}

	e.ApplyGravity(e.physics.Gravity, e.level.GroundY())
	e.AdvanceAnimation(e.physics.AnimationSpeed)
}

// Defeat kills the enemy and starts its respawn countdown.
// Defeating a dead enemy is a no-op and returns false.
func (e *Enemy) Defeat() bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	e.RespawnTimer = 0
	return true
}

// Respawn brings the enemy back at its zone midpoint.
func (e *Enemy) Respawn() {
	e.Alive = true
	e.RespawnTimer = 0
	e.X = e.midpoint()
}
