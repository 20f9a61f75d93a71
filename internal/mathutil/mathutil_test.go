package mathutil

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi float64
		expected  float64
	}{
		{"Below floor", 0.01, 0.08, 0.92, 0.08},
		{"Above ceiling", 1.47, 0.08, 0.92, 0.92},
		{"Inside range", 0.55, 0.08, 0.92, 0.55},
		{"Exactly at floor", 0.08, 0.08, 0.92, 0.08},
		{"Exactly at ceiling", 0.92, 0.08, 0.92, 0.92},
		{"Negative input", -3.2, 0.20, 0.80, 0.20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Clamp(tt.x, tt.lo, tt.hi)
			if result != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v",
					tt.x, tt.lo, tt.hi, result, tt.expected)
			}
		})
	}
}

func TestRoundHalfAway(t *testing.T) {
	cases := []struct {
		x        float64
		expected float64
	}{
		{2.4, 2},
		{2.5, 3},
		{2.6, 3},
		{-2.5, -3},
		{-2.4, -2},
		{0, 0},
		{111.635, 112},
		{37.6, 38},
	}

	for _, tc := range cases {
		if got := RoundHalfAway(tc.x); got != tc.expected {
			t.Errorf("RoundHalfAway(%v) = %v, want %v", tc.x, got, tc.expected)
		}
	}
}

func TestRoundToNearestHalf(t *testing.T) {
	cases := []struct {
		x        float64
		expected float64
	}{
		{1.2, 1.0},
		{1.25, 1.5},
		{1.3, 1.5},
		{-1.25, -1.5},
		{-1.2, -1.0},
		{7.74, 7.5},
		{7.76, 8.0},
		{0, 0},
	}

	for _, tc := range cases {
		if got := RoundToNearestHalf(tc.x); got != tc.expected {
			t.Errorf("RoundToNearestHalf(%v) = %v, want %v", tc.x, got, tc.expected)
		}
	}
}
