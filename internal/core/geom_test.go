package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"right edge exclusive", 6, 3, false},
		{"bottom edge exclusive", 2, 8, false},
		{"left of rect", 1, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	if r.Right() != 11 {
		t.Errorf("Right() = %d, expected 11", r.Right())
	}
	if r.Bottom() != 22 {
		t.Errorf("Bottom() = %d, expected 22", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 6 || cy != 12 {
		t.Errorf("Center() = (%d, %d), expected (6, 12)", cx, cy)
	}
}

func TestCenteredIn(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)
	inner := CenteredIn(outer, 6, 4)

	if inner != NewRect(7, 3, 6, 4) {
		t.Errorf("CenteredIn() = %+v, expected {7 3 6 4}", inner)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
