package loft

import (
	gomath "math"

	"github.com/Faultbox/archloft/pkg/math"
)

// intersectCircle intersects the vertical line at x with the upper half of a circle.
// It returns the height and polar angle of the intersection. When the line misses
// the circle the result clamps to the horizontal extreme on the side of x and
// clamped is set.
func intersectCircle(center math.Vec2, radius, x float64) (y, angle float64, clamped bool) {
	dx := x - center.X
	d := radius*radius - dx*dx
	if d <= 0 {
		if x > center.X {
			return center.Y, 0, d < 0
		}
		return center.Y, gomath.Pi, d < 0
	}
	dy := gomath.Sqrt(d)
	return center.Y + dy, gomath.Atan2(dy, dx), false
}

// intersectEllipse is intersectCircle for an axis aligned ellipse.
// The returned angle is the parametric angle t with point (rx cos t, ry sin t).
func intersectEllipse(center math.Vec2, radius math.Vec2, x float64) (y, angle float64, clamped bool) {
	dx := x - center.X
	// A*y^2 + C = 0
	a := 1 / (radius.Y * radius.Y)
	c := dx*dx/(radius.X*radius.X) - 1
	d := -4 * a * c
	if d <= 0 || gomath.IsNaN(d) || gomath.IsInf(d, 0) {
		if x > center.X {
			return center.Y, 0, d < 0 || gomath.IsNaN(d)
		}
		return center.Y, gomath.Pi, d < 0 || gomath.IsNaN(d)
	}
	dy := gomath.Sqrt(d) / (2 * a)
	return center.Y + dy, gomath.Atan2(dy/radius.Y, dx/radius.X), false
}

// ellipsePoint returns the point at parametric angle t.
func ellipsePoint(center math.Vec2, radius math.Vec2, t float64) math.Vec2 {
	s, c := gomath.Sincos(t)
	return math.Vec2{X: center.X + radius.X*c, Y: center.Y + radius.Y*s}
}

// topEdge yields the height and slope magnitude of an oblique top at x.
type topEdge interface {
	at(x float64) (y, slope float64)
}

// envelope is a virtual triangle over a base centered on x=0 at y=0.
// Its two flanks are the straight ramps used for oblique tops.
type envelope struct {
	apex  math.Vec2
	basis float64
}

// at returns the flank height and slope magnitude at x.
func (e envelope) at(x float64) (y, slope float64) {
	dx := x - e.apex.X
	half := e.basis / 2
	if dx < 0 {
		slope = e.apex.Y / (half + e.apex.X)
		return e.apex.Y + dx*slope, slope
	}
	slope = e.apex.Y / (half - e.apex.X)
	return e.apex.Y - dx*slope, slope
}

// ramp is a single straight top edge through (mid, height), tilted by an angle.
// Unlike an envelope it has no apex, so legs outside the nominal width stay on it.
type ramp struct {
	mid, height float64
	tan         float64
}

func newRamp(mid, height, angle float64) ramp {
	return ramp{mid: mid, height: height, tan: gomath.Tan(angle)}
}

func (r ramp) at(x float64) (y, slope float64) {
	return r.height + r.tan*(x-r.mid), gomath.Abs(r.tan)
}
