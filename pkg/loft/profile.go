package loft

import (
	"fmt"

	"github.com/Faultbox/archloft/pkg/math"
)

// MaterialID is a per-face material slot index.
type MaterialID int

// ProfilePoint is one vertex of the cross-section outline.
type ProfilePoint struct {
	XBucket  int        // Index into Profile.Xs.
	Y        float64    // Depth coordinate, swept unchanged along the path.
	Material MaterialID // Material of the segment starting at this point.
}

// SideCap selects a profile point whose path is closed by a flat n-gon.
type SideCap struct {
	Index    int
	Material MaterialID
}

// Profile is the cross-section swept along a path shape.
//
// Points sharing an XBucket follow the same path, so the path is resolved once
// per unique lateral offset rather than once per point.
type Profile struct {
	ClosedShape bool
	ClosedPath  bool
	Xs          []float64
	Points      []ProfilePoint

	SideCapFront *SideCap
	SideCapBack  *SideCap

	SubdivX int
	SubdivY int

	// UserDefined paths only.
	UserPathVertexCount int
	UserPathUVV         []float64
}

// NewProfile builds a profile from parallel y, bucket and material lists.
// mats may be shorter than ys; missing entries default to 0.
func NewProfile(closedShape, closedPath bool, xs, ys []float64, index []int, mats []MaterialID) (*Profile, error) {
	if len(index) != len(ys) {
		return nil, fmt.Errorf("%w: %d bucket indices for %d points", ErrInvalidProfile, len(index), len(ys))
	}
	if len(mats) > len(ys) {
		return nil, fmt.Errorf("%w: %d materials for %d points", ErrInvalidProfile, len(mats), len(ys))
	}

	points := make([]ProfilePoint, len(ys))
	for i, y := range ys {
		points[i] = ProfilePoint{XBucket: index[i], Y: y}
		if i < len(mats) {
			points[i].Material = mats[i]
		}
	}

	p := &Profile{
		ClosedShape: closedShape,
		ClosedPath:  closedPath,
		Xs:          append([]float64(nil), xs...),
		Points:      points,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the topology preconditions.
func (p *Profile) Validate() error {
	if len(p.Points) < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidProfile, len(p.Points))
	}
	if p.SubdivX < 0 || p.SubdivY < 0 {
		return fmt.Errorf("%w: negative subdivision (%d, %d)", ErrInvalidProfile, p.SubdivX, p.SubdivY)
	}
	for i, pt := range p.Points {
		if pt.XBucket < 0 || pt.XBucket >= len(p.Xs) {
			return fmt.Errorf("%w: point %d uses bucket %d of %d", ErrBucketOutOfRange, i, pt.XBucket, len(p.Xs))
		}
	}
	for _, c := range []struct {
		name string
		sc   *SideCap
	}{{"front", p.SideCapFront}, {"back", p.SideCapBack}} {
		if c.sc != nil && (c.sc.Index < 0 || c.sc.Index >= len(p.Points)) {
			return fmt.Errorf("%w: %s cap index %d of %d points", ErrSideCapOutOfRange, c.name, c.sc.Index, len(p.Points))
		}
	}
	if n := len(p.UserPathUVV); n > 0 && n != p.UserPathVertexCount && n != p.UserPathVertexCount+1 {
		return fmt.Errorf("%w: %d user path v values for %d vertices", ErrInvalidProfile, n, p.UserPathVertexCount)
	}
	return nil
}

// PointCount returns the number of outline points.
func (p *Profile) PointCount() int {
	return len(p.Points)
}

// FaceCount returns the number of outline segments, one band face per path segment each.
func (p *Profile) FaceCount() int {
	if p.ClosedShape {
		return len(p.Points)
	}
	return len(p.Points) - 1
}

// X returns the lateral offset of point j.
func (p *Profile) X(j int) float64 {
	return p.Xs[p.Points[j].XBucket]
}

// Outline returns the 2D outline as (x, y) pairs.
func (p *Profile) Outline() []math.Vec2 {
	out := make([]math.Vec2, len(p.Points))
	for j, pt := range p.Points {
		out[j] = math.Vec2{X: p.Xs[pt.XBucket], Y: pt.Y}
	}
	return out
}

// UVU returns the cumulative outline arc length, FaceCount()+1 entries starting at 0.
func (p *Profile) UVU() []float64 {
	outline := p.Outline()
	n := p.FaceCount()
	uv := make([]float64, n+1)
	for j := 0; j < n; j++ {
		uv[j+1] = uv[j] + outline[j].Distance(outline[(j+1)%len(outline)])
	}
	return uv
}
