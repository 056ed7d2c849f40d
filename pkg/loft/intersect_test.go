package loft

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/archloft/pkg/math"
)

func TestIntersectCircle(t *testing.T) {
	c := math.Vec2{X: 1, Y: 2}

	y, a, clamped := intersectCircle(c, 5, 4)
	if clamped {
		t.Error("line x=4 crosses the circle")
	}
	if gomath.Abs(y-6) > 1e-12 {
		t.Errorf("y = %v, want 6", y)
	}
	if !near(c.Polar(5, a), math.Vec2{X: 4, Y: 6}) {
		t.Errorf("angle %v does not map back to the intersection", a)
	}

	tests := []struct {
		name    string
		x       float64
		angle   float64
		clamped bool
	}{
		{"right miss", 10, 0, true},
		{"left miss", -10, gomath.Pi, true},
		{"right tangent", 6, 0, false},
		{"left tangent", -4, gomath.Pi, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, a, clamped := intersectCircle(c, 5, tt.x)
			if y != c.Y || a != tt.angle || clamped != tt.clamped {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", y, a, clamped, c.Y, tt.angle, tt.clamped)
			}
		})
	}
}

func TestIntersectEllipse(t *testing.T) {
	c := math.Vec2{X: 0, Y: 1}
	r := math.Vec2{X: 4, Y: 2}

	y, a, clamped := intersectEllipse(c, r, 2)
	if clamped {
		t.Fatal("line x=2 crosses the ellipse")
	}
	want := 1 + 2*gomath.Sqrt(1-0.25)
	if gomath.Abs(y-want) > 1e-12 {
		t.Errorf("y = %v, want %v", y, want)
	}
	if !near(ellipsePoint(c, r, a), math.Vec2{X: 2, Y: want}) {
		t.Errorf("parametric angle %v does not map back to the intersection", a)
	}

	y, a, clamped = intersectEllipse(c, r, -5)
	if !clamped || y != 1 || a != gomath.Pi {
		t.Errorf("expected clamp to (1, pi), got (%v, %v, %v)", y, a, clamped)
	}
}

func TestRamp(t *testing.T) {
	const w, h = 2.0, 2.0
	tests := []struct {
		name       string
		mid, angle float64
	}{
		{"rising", 0, gomath.Atan(0.5)},
		{"falling", 0, -gomath.Atan(0.5)},
		{"rising off center", 1.5, gomath.Atan(0.25)},
		{"flat", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRamp(tt.mid, h, tt.angle)
			tan := gomath.Tan(tt.angle)

			// Points beyond the nominal width stay on the same line.
			for _, dx := range []float64{-w/2 - 0.3, -w / 2, 0, w / 2, w/2 + 0.3} {
				y, slope := r.at(tt.mid + dx)
				if want := h + tan*dx; gomath.Abs(y-want) > 1e-9 {
					t.Errorf("at(mid%+v) = %v, want %v", dx, y, want)
				}
				if gomath.Abs(slope-gomath.Abs(tan)) > 1e-9 {
					t.Errorf("at(mid%+v) slope = %v, want %v", dx, slope, gomath.Abs(tan))
				}
			}
		})
	}
}

func TestEnvelopeFlanks(t *testing.T) {
	// Symmetric roof: apex (0, 1) over a base of 4.
	env := envelope{apex: math.Vec2{X: 0, Y: 1}, basis: 4}
	for _, tt := range []struct{ x, y float64 }{{-2, 0}, {-1, 0.5}, {0, 1}, {1, 0.5}, {2, 0}} {
		if y, _ := env.at(tt.x); gomath.Abs(y-tt.y) > 1e-12 {
			t.Errorf("at(%v) = %v, want %v", tt.x, y, tt.y)
		}
	}
}
