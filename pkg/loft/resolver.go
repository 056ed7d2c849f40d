package loft

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/archloft/pkg/math"
)

// Path is the station list of one lateral offset.
type Path struct {
	Points []math.Vec2
	// Lengths holds the V length of each path segment, including the closing
	// segment of a closed path.
	Lengths []float64
}

// Length returns the total V length.
func (p Path) Length() float64 {
	var sum float64
	for _, l := range p.Lengths {
		sum += l
	}
	return sum
}

// V returns the cumulative V table, len(Lengths)+1 entries starting at 0.
func (p Path) V() []float64 {
	v := make([]float64, len(p.Lengths)+1)
	for i, l := range p.Lengths {
		v[i+1] = v[i] + l
	}
	return v
}

// stationFunc resolves the path of one Xs bucket. p.LateralInset holds Xs[bucket].
type stationFunc func(prof *Profile, p *Params, bucket int) (Path, error)

// resolverFor maps a shape to its station function.
func resolverFor(kind ShapeKind) (stationFunc, error) {
	switch kind {
	case ShapeRectangle:
		return rectangleStations, nil
	case ShapeRound:
		return roundStations, nil
	case ShapeEllipsis:
		return ellipsisStations, nil
	case ShapeQuadri:
		return quadriStations, nil
	case ShapeCircle:
		return circleStations, nil
	case ShapeHorizontal:
		return horizontalStations, nil
	case ShapeVertical:
		return verticalStations, nil
	case ShapeTriangle:
		return triangleStations, nil
	case ShapeUserDefined:
		return userStations, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, kind)
}

// StationCount returns the number of stations every offset of the profile gets.
func StationCount(kind ShapeKind, prof *Profile, p Params) (int, error) {
	if kind.Curved() && p.Steps < 1 {
		return 0, fmt.Errorf("%w: %s needs steps >= 1, got %d", ErrInvalidSteps, kind, p.Steps)
	}
	sx, sy := prof.SubdivX, prof.SubdivY
	switch kind {
	case ShapeRectangle, ShapeQuadri:
		if prof.ClosedPath {
			return 4 + 2*sx + 2*sy, nil
		}
		return 4 + sx + 2*sy, nil
	case ShapeRound, ShapeEllipsis:
		return p.Steps + 3, nil
	case ShapeCircle:
		return p.Steps, nil
	case ShapeHorizontal, ShapeVertical:
		return 2, nil
	case ShapeTriangle:
		return 3, nil
	case ShapeUserDefined:
		if prof.UserPathVertexCount < 2 {
			return 0, fmt.Errorf("%w: user path needs 2 vertices, got %d", ErrInvalidProfile, prof.UserPathVertexCount)
		}
		return prof.UserPathVertexCount, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedShape, kind)
}

// Stations resolves the path of every unique lateral offset of the profile.
// All returned paths have StationCount points.
func Stations(kind ShapeKind, prof *Profile, p Params) ([]Path, error) {
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	if err := p.validate(prof); err != nil {
		return nil, err
	}
	resolve, err := resolverFor(kind)
	if err != nil {
		return nil, err
	}
	count, err := StationCount(kind, prof, p)
	if err != nil {
		return nil, err
	}

	paths := make([]Path, len(prof.Xs))
	for b, x := range prof.Xs {
		q := p
		q.LateralInset = x
		path, err := resolve(prof, &q, b)
		if err != nil {
			return nil, fmt.Errorf("%s path at offset %g: %w", kind, x, err)
		}
		if len(path.Points) != count {
			return nil, fmt.Errorf("%w: offset %g has %d stations, want %d", ErrStationCountMismatch, x, len(path.Points), count)
		}
		paths[b] = path
	}
	return paths, nil
}

// polylineLengths returns the segment lengths of pts.
func polylineLengths(pts []math.Vec2, closed bool) []float64 {
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	if n < 0 {
		n = 0
	}
	lengths := make([]float64, n)
	for i := range lengths {
		lengths[i] = pts[i].Distance(pts[(i+1)%len(pts)])
	}
	return lengths
}

// subdivide emits each corner followed by the interior points of the edge to
// the next corner. Open outlines stop at the last corner.
func subdivide(corners []math.Vec2, subdivs []int, closed bool) []math.Vec2 {
	var pts []math.Vec2
	n := len(corners)
	for i, c := range corners {
		pts = append(pts, c)
		if !closed && i == n-1 {
			break
		}
		next := corners[(i+1)%n]
		for k := 1; k <= subdivs[i]; k++ {
			pts = append(pts, c.Lerp(next, float64(k)/float64(subdivs[i]+1)))
		}
	}
	return pts
}

// legs returns the inset leg abscissas and the foot height of the bucket.
func legs(prof *Profile, p *Params, bucket int) (x0, x1, y0 float64) {
	x := p.LateralInset
	left, right := p.edges()
	y0 = p.bottom(bucket)
	if prof.ClosedPath {
		y0 += x
	}
	return left + x, right - x, y0
}

func rectangleStations(prof *Profile, p *Params, bucket int) (Path, error) {
	x0, x1, y0 := legs(prof, p, bucket)
	y1 := p.Offset.Y + p.Size.Y - p.LateralInset

	corners := []math.Vec2{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
	subdivs := []int{prof.SubdivY, prof.SubdivX, prof.SubdivY, prof.SubdivX}
	pts := subdivide(corners, subdivs, prof.ClosedPath)
	return Path{Points: pts, Lengths: polylineLengths(pts, prof.ClosedPath)}, nil
}

func quadriStations(prof *Profile, p *Params, bucket int) (Path, error) {
	x0, x1, y0 := legs(prof, p, bucket)
	left, right := p.edges()

	var env topEdge = envelope{apex: p.Center.XY(), basis: p.Radius.X}
	if p.Radius.X == 0 {
		env = newRamp((left+right)/2-p.Offset.X, p.Size.Y, p.Angle)
	}
	top := func(x float64) math.Vec2 {
		y, slope := env.at(x - p.Offset.X)
		// Moving a line of this slope by d along its normal drops it by d*sqrt(1+slope^2).
		return math.Vec2{X: x, Y: p.Offset.Y + y - p.LateralInset*gomath.Sqrt(1+slope*slope)}
	}

	corners := []math.Vec2{{X: x0, Y: y0}, top(x0), top(x1), {X: x1, Y: y0}}
	subdivs := []int{prof.SubdivY, prof.SubdivX, prof.SubdivY, prof.SubdivX}
	pts := subdivide(corners, subdivs, prof.ClosedPath)
	return Path{Points: pts, Lengths: polylineLengths(pts, prof.ClosedPath)}, nil
}

// arcStations builds leg foot, steps+1 arc samples and the other leg foot.
// hit intersects a leg with the arc, sample maps an angle to its arc point and
// step returns the V length between two angles.
func arcStations(prof *Profile, p *Params, bucket int, hit func(x float64) (float64, float64, bool),
	sample func(a float64) math.Vec2, step func(a0, a1 float64) float64) (Path, error) {
	x0, x1, y0 := legs(prof, p, bucket)

	_, a0, c0 := hit(x0)
	_, a1, c1 := hit(x1)
	if (c0 || c1) && p.Strict {
		return Path{}, fmt.Errorf("%w: leg at inset %g misses the arc", ErrDegenerateIntersection, p.LateralInset)
	}
	da := math.NormalizeAngle(a1 - a0)

	pts := make([]math.Vec2, 0, p.Steps+3)
	pts = append(pts, math.Vec2{X: x0, Y: y0})
	for i := 0; i <= p.Steps; i++ {
		pts = append(pts, sample(a0+da*float64(i)/float64(p.Steps)))
	}
	pts = append(pts, math.Vec2{X: x1, Y: y0})

	lengths := make([]float64, 0, len(pts))
	lengths = append(lengths, pts[0].Distance(pts[1]))
	for i := 0; i < p.Steps; i++ {
		ai := a0 + da*float64(i)/float64(p.Steps)
		lengths = append(lengths, step(ai, ai+da/float64(p.Steps)))
	}
	lengths = append(lengths, pts[len(pts)-2].Distance(pts[len(pts)-1]))
	if prof.ClosedPath {
		lengths = append(lengths, pts[len(pts)-1].Distance(pts[0]))
	}
	return Path{Points: pts, Lengths: lengths}, nil
}

func roundStations(prof *Profile, p *Params, bucket int) (Path, error) {
	c := p.center()
	r := p.Radius.X - p.LateralInset
	if r <= 0 && p.Strict {
		return Path{}, fmt.Errorf("%w: radius %g at inset %g", ErrDegenerateIntersection, p.Radius.X, p.LateralInset)
	}
	r = gomath.Max(r, 0)
	return arcStations(prof, p, bucket,
		func(x float64) (float64, float64, bool) { return intersectCircle(c, r, x) },
		func(a float64) math.Vec2 { return c.Polar(r, a) },
		func(a0, a1 float64) float64 { return gomath.Abs(r * (a1 - a0)) },
	)
}

func ellipsisStations(prof *Profile, p *Params, bucket int) (Path, error) {
	c := p.center()
	radius := math.Vec2{X: p.Radius.X - p.LateralInset, Y: p.Radius.Y - p.LateralInset}
	if (radius.X <= 0 || radius.Y <= 0) && p.Strict {
		return Path{}, fmt.Errorf("%w: semi-axes %v at inset %g", ErrDegenerateIntersection, p.Radius, p.LateralInset)
	}
	radius = math.Vec2{X: gomath.Max(radius.X, 0), Y: gomath.Max(radius.Y, 0)}
	return arcStations(prof, p, bucket,
		func(x float64) (float64, float64, bool) { return intersectEllipse(c, radius, x) },
		func(t float64) math.Vec2 { return ellipsePoint(c, radius, t) },
		func(t0, t1 float64) float64 {
			return ellipsePoint(c, radius, t0).Distance(ellipsePoint(c, radius, t1))
		},
	)
}

func circleStations(prof *Profile, p *Params, _ int) (Path, error) {
	c := p.center()
	r := p.Radius.X - p.LateralInset
	if r <= 0 && p.Strict {
		return Path{}, fmt.Errorf("%w: radius %g at inset %g", ErrDegenerateIntersection, p.Radius.X, p.LateralInset)
	}
	r = gomath.Max(r, 0)
	da := -2 * gomath.Pi / float64(p.Steps)
	pts := make([]math.Vec2, p.Steps)
	for i := range pts {
		pts[i] = c.Polar(r, da*float64(i))
	}
	n := p.Steps - 1
	if prof.ClosedPath {
		n = p.Steps
	}
	lengths := make([]float64, n)
	for i := range lengths {
		lengths[i] = 2 * gomath.Pi * gomath.Abs(r) / float64(p.Steps)
	}
	return Path{Points: pts, Lengths: lengths}, nil
}

func horizontalStations(prof *Profile, p *Params, _ int) (Path, error) {
	left, right := p.edges()
	y := p.Offset.Y + p.LateralInset
	pts := []math.Vec2{{X: left, Y: y}, {X: right, Y: y}}
	return Path{Points: pts, Lengths: polylineLengths(pts, prof.ClosedPath)}, nil
}

func verticalStations(prof *Profile, p *Params, bucket int) (Path, error) {
	x := p.Offset.X + p.LateralInset
	pts := []math.Vec2{{X: x, Y: p.bottom(bucket)}, {X: x, Y: p.Offset.Y + p.Size.Y}}
	return Path{Points: pts, Lengths: polylineLengths(pts, prof.ClosedPath)}, nil
}

func triangleStations(prof *Profile, p *Params, bucket int) (Path, error) {
	left, right := p.edges()
	base := p.bottom(bucket)
	a := math.Vec2{X: left, Y: base}
	apex := p.center()
	b := math.Vec2{X: right, Y: base}

	// Inset towards the interior, which is on the right of a clockwise outline.
	d := -p.LateralInset
	if apex.Sub(a).Cross(b.Sub(a)) > 0 {
		d = p.LateralInset
	}
	la := math.LineThrough(a, apex).Offset(d)
	lb := math.LineThrough(apex, b).Offset(d)

	var pts [3]math.Vec2
	var ok [3]bool
	pts[1], ok[1] = la.Intersect(lb)
	if prof.ClosedPath {
		lc := math.LineThrough(b, a).Offset(d)
		pts[0], ok[0] = lc.Intersect(la)
		pts[2], ok[2] = lb.Intersect(lc)
	} else {
		pts[0], ok[0] = la.IntersectY(base)
		pts[2], ok[2] = lb.IntersectY(base)
	}
	for i, corner := range [3]math.Vec2{a, apex, b} {
		if ok[i] {
			continue
		}
		if p.Strict {
			return Path{}, fmt.Errorf("%w: triangle corner %d is degenerate", ErrDegenerateIntersection, i)
		}
		pts[i] = corner
	}
	return Path{Points: pts[:], Lengths: polylineLengths(pts[:], prof.ClosedPath)}, nil
}

func userStations(prof *Profile, p *Params, _ int) (Path, error) {
	if p.UserPath == nil {
		return Path{}, ErrMissingUserPath
	}
	pts, err := p.UserPath(p.LateralInset)
	if err != nil {
		return Path{}, err
	}
	if len(pts) != prof.UserPathVertexCount {
		return Path{}, fmt.Errorf("%w: user path returned %d stations, want %d",
			ErrStationCountMismatch, len(pts), prof.UserPathVertexCount)
	}

	lengths := polylineLengths(pts, prof.ClosedPath)
	if uvv := prof.UserPathUVV; len(uvv) > 0 {
		for i := range lengths {
			if i+1 < len(uvv) {
				lengths[i] = uvv[i+1] - uvv[i]
			}
		}
	}
	return Path{Points: pts, Lengths: lengths}, nil
}
