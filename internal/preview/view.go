package preview

import (
	"fmt"
	stdmath "math"

	"github.com/Faultbox/archloft/pkg/math"
)

// View selects the orthographic projection of a preview.
type View int

const (
	// ViewFront looks along +Y: X right, Z up.
	ViewFront View = iota
	// ViewTop looks down -Z: X right, Y up.
	ViewTop
	// ViewSide looks along -X: Y right, Z up.
	ViewSide
)

// String returns the view name.
func (v View) String() string {
	switch v {
	case ViewFront:
		return "front"
	case ViewTop:
		return "top"
	case ViewSide:
		return "side"
	default:
		return fmt.Sprintf("Unknown(%d)", int(v))
	}
}

// ParseView maps a view name to a View. Empty means front.
func ParseView(name string) (View, error) {
	switch name {
	case "", "front":
		return ViewFront, nil
	case "top":
		return ViewTop, nil
	case "side":
		return ViewSide, nil
	}
	return 0, fmt.Errorf("unknown view %q", name)
}

// Matrix returns the rotation taking world space to view space.
// View space has X to the right, Y up and Z towards the viewer.
func (v View) Matrix() math.Mat4 {
	switch v {
	case ViewTop:
		return math.Identity()
	case ViewSide:
		return math.RotateX(-stdmath.Pi / 2).Mul(math.RotateZ(-stdmath.Pi / 2))
	default:
		return math.RotateX(-stdmath.Pi / 2)
	}
}
