package math

// Line is an infinite 2D line through P with direction D.
type Line struct {
	P, D Vec2
}

// LineThrough returns the line from a towards b.
func LineThrough(a, b Vec2) Line {
	return Line{P: a, D: b.Sub(a)}
}

// Offset moves the line by dist along its left-hand normal.
func (l Line) Offset(dist float64) Line {
	n := l.D.Normalize().Perp()
	return Line{P: l.P.Add(n.Scale(dist)), D: l.D}
}

// Intersect returns the intersection point of two lines.
// ok is false when the lines are parallel.
func (l Line) Intersect(other Line) (p Vec2, ok bool) {
	den := l.D.Cross(other.D)
	if den > -1e-12 && den < 1e-12 {
		return Vec2{}, false
	}
	t := other.P.Sub(l.P).Cross(other.D) / den
	return l.P.Add(l.D.Scale(t)), true
}

// IntersectY returns the point where the line crosses the horizontal y.
// ok is false for horizontal lines.
func (l Line) IntersectY(y float64) (p Vec2, ok bool) {
	return l.Intersect(Line{P: Vec2{0, y}, D: Vec2{1, 0}})
}
