package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Level: Level{
			Width:        740,
			Height:       460,
			GroundOffset: 120,
		},
		Physics: Physics{
			Gravity:        0.5,
			JumpSpeed:      -10,
			MoveSpeed:      5,
			AnimationSpeed: 8,
		},
		Player: Player{
			StartingLives:      3,
			InvulnerableFrames: 60,
		},
		Enemies: Enemies{
			RespawnTime: 180, // 3 seconds at 60fps
			Zones: []Zone{
				{Left: 0.3, Right: 0.5},
				{Left: 0.5, Right: 0.7},
				{Left: 0.7, Right: 0.9},
			},
			Kinds: []string{"snake", "mushroom"},
		},
		Collision: Collision{
			HorizontalRange: 30,
			VerticalRange:   30,
			StompHeight:     30,
			StompTolerance:  20,
			BounceFactor:    0.7,
		},
		Scoring: Scoring{
			StompScore:    50,
			StompProgress: 10,
			WinProgress:   100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
