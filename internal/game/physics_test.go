package game

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApplyGravity(t *testing.T) {
	tests := []struct {
		name        string
		y, vel      float64
		expectedY   float64
		expectedVel float64
	}{
		{"falls from rest", 100, 0, 100.5, 0.5},
		{"rising slows down", 300, -10, 290.5, -9.5},
		{"clamped to ground", 339.8, 1, 340, 0},
		{"resting on ground stays", 340, 0, 340, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{Y: tc.y, VelocityY: tc.vel}
			b.ApplyGravity(0.5, 340)

			if !approx(b.Y, tc.expectedY) {
				t.Errorf("Y = %f, expected %f", b.Y, tc.expectedY)
			}
			if !approx(b.VelocityY, tc.expectedVel) {
				t.Errorf("VelocityY = %f, expected %f", b.VelocityY, tc.expectedVel)
			}
		})
	}
}

func TestGravityNeverBelowGround(t *testing.T) {
	b := Body{Y: 0}
	for i := 0; i < 500; i++ {
		b.ApplyGravity(0.5, 340)
		if b.Y > 340 {
			t.Fatalf("tick %d: Y = %f is below the ground", i, b.Y)
		}
	}
	if b.Y != 340 || b.VelocityY != 0 {
		t.Errorf("body should come to rest on the ground, got Y=%f vel=%f", b.Y, b.VelocityY)
	}
}

func TestAdvanceAnimation(t *testing.T) {
	b := Body{}
	for i := 0; i < 16; i++ {
		b.AdvanceAnimation(8)
	}
	if b.Frame != 0 {
		t.Errorf("frame should wrap after 16 ticks, got %d", b.Frame)
	}

	b.AdvanceAnimation(8)
	if b.Frame != 1 {
		t.Errorf("frame = %d, expected 1", b.Frame)
	}

	// Non-positive speed must not divide by zero.
	b.Frame = 0
	b.AdvanceAnimation(0)
	b.AdvanceAnimation(0)
	if b.Frame != 0 {
		t.Errorf("speed 0 should cycle every 2 ticks, got frame %d", b.Frame)
	}
}
