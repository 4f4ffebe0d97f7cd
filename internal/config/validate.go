package config

import (
	"errors"
	"fmt"
)

// validKinds lists the enemy kind names the game knows how to build.
var validKinds = map[string]bool{
	"snake":    true,
	"mushroom": true,
}

// Validate reports every misconfigured value at once.
// The simulation clamps rather than traps on bad geometry, so a config that
// fails validation is still safe to run; loaders reject it to surface typos.
func (c PlatformerConfig) Validate() error {
	var errs []error

	if c.Level.Width <= 0 || c.Level.Height <= 0 {
		errs = append(errs, fmt.Errorf("level size must be positive, got %gx%g", c.Level.Width, c.Level.Height))
	}
	if c.Level.GroundOffset < 0 || c.Level.GroundOffset > c.Level.Height {
		errs = append(errs, fmt.Errorf("ground_offset %g outside [0, %g]", c.Level.GroundOffset, c.Level.Height))
	}
	if c.Physics.AnimationSpeed <= 0 {
		errs = append(errs, fmt.Errorf("animation_speed must be positive, got %d", c.Physics.AnimationSpeed))
	}
	if c.Player.StartingLives <= 0 {
		errs = append(errs, fmt.Errorf("starting_lives must be positive, got %d", c.Player.StartingLives))
	}
	if c.Player.InvulnerableFrames < 0 {
		errs = append(errs, fmt.Errorf("invulnerable_frames must not be negative, got %d", c.Player.InvulnerableFrames))
	}
	if c.Enemies.RespawnTime <= 0 {
		errs = append(errs, fmt.Errorf("respawn_time must be positive, got %d", c.Enemies.RespawnTime))
	}
	if len(c.Enemies.Kinds) == 0 {
		errs = append(errs, errors.New("at least one enemy kind is required"))
	}
	for i, k := range c.Enemies.Kinds {
		if !validKinds[k] {
			errs = append(errs, fmt.Errorf("enemy kind %d %q is unknown (want snake or mushroom)", i, k))
		}
	}
	for i, z := range c.Enemies.Zones {
		if z.Left < 0 || z.Right > 1 || z.Left >= z.Right {
			errs = append(errs, fmt.Errorf("zone %d [%g, %g] must satisfy 0 <= left < right <= 1", i, z.Left, z.Right))
		}
	}
	if c.Scoring.WinProgress <= 0 {
		errs = append(errs, fmt.Errorf("win_progress must be positive, got %d", c.Scoring.WinProgress))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
