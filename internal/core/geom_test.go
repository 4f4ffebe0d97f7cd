package core

import "testing"

func TestRectContainsIsHalfOpen(t *testing.T) {
	// A 200x40 menu button centred in a 740-wide level.
	btn := NewRect(270, 180, 200, 40)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"centre", 370, 200, true},
		{"top left", 270, 180, true},
		{"last column", 469, 200, true},
		{"right edge", 470, 200, false},
		{"last row", 370, 219, true},
		{"bottom edge", 370, 220, false},
		{"above", 370, 179, false},
		{"left of", 269, 200, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := btn.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}

	if btn.Right() != 470 || btn.Bottom() != 220 {
		t.Errorf("edges = (%d, %d), expected (470, 220)", btn.Right(), btn.Bottom())
	}
	if cx, cy := btn.Center(); cx != 370 || cy != 200 {
		t.Errorf("Center() = (%d, %d), expected (370, 200)", cx, cy)
	}
}

func TestClampMenuCursor(t *testing.T) {
	tests := []struct {
		cursor, want int
	}{
		{-1, 0},
		{0, 0},
		{2, 2},
		{3, 3},
		{4, 3},
	}

	for _, tc := range tests {
		if got := Clamp(tc.cursor, 0, 3); got != tc.want {
			t.Errorf("Clamp(%d, 0, 3) = %d, expected %d", tc.cursor, got, tc.want)
		}
	}
}

func TestFloatHelpers(t *testing.T) {
	tests := []struct {
		x       float64
		abs     float64
		sign    int
		clamped float64
	}{
		{-9.5, 9.5, -1, 0},
		{0, 0, 0, 0},
		{185, 185, 1, 185},
		{740, 740, 1, 700},
	}

	for _, tc := range tests {
		if got := AbsF(tc.x); got != tc.abs {
			t.Errorf("AbsF(%g) = %g, expected %g", tc.x, got, tc.abs)
		}
		if got := Sign(tc.x); got != tc.sign {
			t.Errorf("Sign(%g) = %d, expected %d", tc.x, got, tc.sign)
		}
		if got := ClampF(tc.x, 0, 700); got != tc.clamped {
			t.Errorf("ClampF(%g, 0, 700) = %g, expected %g", tc.x, got, tc.clamped)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, -1) != -1 || Min(-1, 3) != -1 {
		t.Error("Min should return the smaller value")
	}
	if Max(3, -1) != 3 || Max(-1, 3) != 3 {
		t.Error("Max should return the larger value")
	}
}
