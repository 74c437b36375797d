package geometry

import (
	"math"
	"testing"
)

func TestPolarQuadrants(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		radius float64
		angle  float64
	}{
		{"east", 1, 0, 1, 0},
		{"south", 0, 1, 1, math.Pi / 2}, // y grows downward
		{"west", -1, 0, 1, math.Pi},
		{"north", 0, -1, 1, 3 * math.Pi / 2},
		{"diagonal", 3, 4, 5, math.Atan2(4, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, a := Polar(tt.dx, tt.dy)
			if math.Abs(r-tt.radius) > 1e-12 {
				t.Errorf("radius = %f, want %f", r, tt.radius)
			}
			if math.Abs(a-tt.angle) > 1e-12 {
				t.Errorf("angle = %f, want %f", a, tt.angle)
			}
		})
	}
}

func TestPolarAngleRange(t *testing.T) {
	for i := 0; i < 360; i++ {
		theta := float64(i) * math.Pi / 180
		_, a := Polar(math.Cos(theta), math.Sin(theta))
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("angle %f out of [0, 2pi) for input angle %d deg", a, i)
		}
	}
}

func TestRayPointTruncatesSum(t *testing.T) {
	// The fractional sum is truncated toward zero, not the offset alone:
	// 5 + (-1.5) = 3.5 truncates to 3, not 5 + trunc(-1.5) = 4.
	p := RayPoint(5, 5, math.Pi, 1.5)
	if p.X != 3 {
		t.Errorf("X = %d, want 3", p.X)
	}
	if p.Y != 5 {
		t.Errorf("Y = %d, want 5", p.Y)
	}
}

func TestNormalizeAngle(t *testing.T) {
	if a := NormalizeAngle(-math.Pi / 2); math.Abs(a-3*math.Pi/2) > 1e-12 {
		t.Errorf("NormalizeAngle(-pi/2) = %f, want %f", a, 3*math.Pi/2)
	}
	if a := NormalizeAngle(2 * math.Pi); math.Abs(a) > 1e-12 {
		t.Errorf("NormalizeAngle(2pi) = %f, want 0", a)
	}
}
