// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// PlatformerConfig contains all tunable values of the simulation.
type PlatformerConfig struct {
	Level     Level     `yaml:"level"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Enemies   Enemies   `yaml:"enemies"`
	Collision Collision `yaml:"collision"`
	Scoring   Scoring   `yaml:"scoring"`
}

// Level defines the fixed level geometry in world units.
type Level struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance of the ground line from the bottom edge
}

// GroundY returns the y coordinate of the ground line. Larger y is lower.
func (l Level) GroundY() float64 {
	return l.Height - l.GroundOffset
}

// Physics defines the per-tick movement parameters.
type Physics struct {
	Gravity        float64 `yaml:"gravity"`         // Added to vertical velocity every tick
	JumpSpeed      float64 `yaml:"jump_speed"`      // Vertical velocity set by a jump (negative = up)
	MoveSpeed      float64 `yaml:"move_speed"`      // Horizontal units per tick
	AnimationSpeed int     `yaml:"animation_speed"` // Ticks per animation frame
}

// Player defines player bookkeeping parameters.
type Player struct {
	StartingLives      int `yaml:"starting_lives"`
	InvulnerableFrames int `yaml:"invulnerable_frames"`
}

// Zone is a horizontal patrol range expressed as fractions of the level width.
type Zone struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

// Midpoint returns the zone center as a fraction of the level width.
func (z Zone) Midpoint() float64 {
	return (z.Left + z.Right) / 2
}

// Enemies defines the enemy roster and respawn timing.
type Enemies struct {
	RespawnTime int      `yaml:"respawn_time"` // Ticks an enemy stays dead
	Zones       []Zone   `yaml:"zones"`        // One enemy per zone, left to right
	Kinds       []string `yaml:"kinds"`        // Kinds assigned round-robin to zones
}

// Collision defines the generous player-vs-enemy thresholds.
type Collision struct {
	HorizontalRange float64 `yaml:"horizontal_range"`
	VerticalRange   float64 `yaml:"vertical_range"`
	StompHeight     float64 `yaml:"stomp_height"`
	StompTolerance  float64 `yaml:"stomp_tolerance"`
	BounceFactor    float64 `yaml:"bounce_factor"` // Fraction of jump speed applied after a stomp
}

// Scoring defines rewards and the win threshold.
type Scoring struct {
	StompScore    int `yaml:"stomp_score"`
	StompProgress int `yaml:"stomp_progress"`
	WinProgress   int `yaml:"win_progress"`
}
