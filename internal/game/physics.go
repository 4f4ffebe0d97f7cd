// Package game implements the platformer simulation: character physics,
// enemy patrols, stomp/damage resolution and the menu/playing/win/game over
// state machine. It is advanced one fixed tick at a time by the platform
// layer and never blocks.
package game

// Body is the physical state shared by the player and enemies.
// Position is anchored at the character's bottom-center; larger Y is lower.
type Body struct {
	X, Y      float64
	VelocityY float64
	Facing    int // +1 right, -1 left
	Frame     int // Animation counter
	Alive     bool
}

// ApplyGravity integrates one tick of gravity and clamps to the ground line.
func (b *Body) ApplyGravity(gravity, groundY float64) {
	b.VelocityY += gravity
	b.Y += b.VelocityY

	if b.Y > groundY {
		b.Y = groundY
		b.VelocityY = 0
	}
}

// AdvanceAnimation steps the animation counter, cycling every 2*speed ticks.
func (b *Body) AdvanceAnimation(speed int) {
	if speed <= 0 {
		speed = 1
	}
	b.Frame = (b.Frame + 1) % (2 * speed)
}

// Grounded reports whether the body stands exactly on the ground line.
func (b *Body) Grounded(groundY float64) bool {
	return b.Y == groundY
}
