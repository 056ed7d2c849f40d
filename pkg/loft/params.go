package loft

import (
	"fmt"

	"github.com/Faultbox/archloft/pkg/math"
)

// Axis selects how path coordinates and profile depth map to 3D.
type Axis int

const (
	// AxisVertical lays the path in XZ; the profile depth runs along Y.
	AxisVertical Axis = iota
	// AxisHorizontal lays the path in XY; the profile depth runs along Z.
	AxisHorizontal
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// ParseAxis maps "vertical" / "horizontal" to an Axis. Empty means vertical.
func ParseAxis(name string) (Axis, error) {
	switch name {
	case "", "vertical", "xz":
		return AxisVertical, nil
	case "horizontal", "xy":
		return AxisHorizontal, nil
	}
	return 0, fmt.Errorf("unknown axis %q", name)
}

// UserPathFunc yields the stations of a user defined path for one lateral inset.
type UserPathFunc func(inset float64) ([]math.Vec2, error)

// Params describes the path shape for one Generate call.
type Params struct {
	Steps  int
	Offset math.Vec3 // X/Y shift the path, Z shifts the profile depth.
	Center math.Vec3 // Relative to Offset.
	Origin math.Vec3 // Added to every output vertex.
	Size   math.Vec3
	Radius math.Vec2
	Angle  float64
	Pivot  float64

	// LateralInset is the profile x the path is resolved for.
	// Generate and Stations overwrite it for every entry of Profile.Xs.
	LateralInset float64

	BottomY []float64 // Optional, one per Profile.Xs entry.
	ShapeZ  []float64 // Optional, one per Profile.Xs entry.

	Axis   Axis
	Strict bool

	UserPath UserPathFunc
}

func (p *Params) validate(prof *Profile) error {
	if p.BottomY != nil && len(p.BottomY) != len(prof.Xs) {
		return fmt.Errorf("%w: bottom_y has %d values for %d offsets", ErrParamLength, len(p.BottomY), len(prof.Xs))
	}
	if p.ShapeZ != nil && len(p.ShapeZ) != len(prof.Xs) {
		return fmt.Errorf("%w: shape_z has %d values for %d offsets", ErrParamLength, len(p.ShapeZ), len(prof.Xs))
	}
	return nil
}

// left and right edges of the nominal width after pivot alignment.
func (p *Params) edges() (float64, float64) {
	half := p.Size.X / 2
	return p.Offset.X + half*(p.Pivot-1), p.Offset.X + half*(p.Pivot+1)
}

func (p *Params) bottom(bucket int) float64 {
	if p.BottomY == nil {
		return p.Offset.Y
	}
	return p.Offset.Y + p.BottomY[bucket]
}

func (p *Params) depth(bucket int) float64 {
	if p.ShapeZ == nil {
		return p.Offset.Z
	}
	return p.Offset.Z + p.ShapeZ[bucket]
}

func (p *Params) center() math.Vec2 {
	return p.Offset.XY().Add(p.Center.XY())
}

// PolylinePath returns a UserPathFunc that insets a fixed polyline.
// Positive insets move to the right of the travel direction, which is the
// inside of a clockwise outline. Corners are mitred.
func PolylinePath(points []math.Vec2, closed bool) UserPathFunc {
	pts := append([]math.Vec2(nil), points...)
	return func(inset float64) ([]math.Vec2, error) {
		n := len(pts)
		if n < 2 {
			return nil, fmt.Errorf("%w: polyline needs 2 points, got %d", ErrInvalidProfile, n)
		}
		out := make([]math.Vec2, n)
		for i := range pts {
			var prev, next *math.Line
			if i > 0 || closed {
				l := math.LineThrough(pts[(i-1+n)%n], pts[i]).Offset(-inset)
				prev = &l
			}
			if i < n-1 || closed {
				l := math.LineThrough(pts[i], pts[(i+1)%n]).Offset(-inset)
				next = &l
			}
			switch {
			case prev != nil && next != nil:
				if p, ok := prev.Intersect(*next); ok {
					out[i] = p
				} else {
					// Collinear neighbours: shift along the shared normal.
					out[i] = next.P
				}
			case prev != nil:
				out[i] = pts[i].Add(prev.P.Sub(pts[(i-1+n)%n]))
			default:
				out[i] = next.P
			}
		}
		return out, nil
	}
}
