package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"inside", 5, 10, true},
		{"last cell", 19, 19, true},
		{"right edge (exclusive)", 20, 5, false},
		{"bottom edge (exclusive)", 5, 20, false},
		{"negative x", -1, 5, false},
		{"negative y", 5, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectArea(t *testing.T) {
	tests := []struct {
		r        Rect
		expected int
	}{
		{NewRect(0, 0, 20, 20), 400},
		{NewRect(3, 3, 1, 1), 1},
		{NewRect(0, 0, 0, 5), 0},
		{NewRect(0, 0, -2, 5), 0},
	}

	for _, tc := range tests {
		if got := tc.r.Area(); got != tc.expected {
			t.Errorf("Area(%+v) = %d, expected %d", tc.r, got, tc.expected)
		}
	}
}

