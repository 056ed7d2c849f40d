package loft

import "fmt"

// ShapeKind selects the path the profile is swept along.
type ShapeKind int

// Path shapes.
const (
	ShapeRectangle ShapeKind = iota
	ShapeRound
	ShapeEllipsis
	ShapeQuadri
	ShapeCircle
	ShapeHorizontal
	ShapeVertical
	ShapeTriangle
	ShapePentagon  // not implemented
	ShapeTrapezoid // general horizontal trapezoid, not implemented
	ShapeUserDefined
)

var shapeNames = [...]string{
	ShapeRectangle:   "rectangle",
	ShapeRound:       "round",
	ShapeEllipsis:    "ellipsis",
	ShapeQuadri:      "quadri",
	ShapeCircle:      "circle",
	ShapeHorizontal:  "horizontal",
	ShapeVertical:    "vertical",
	ShapeTriangle:    "triangle",
	ShapePentagon:    "pentagon",
	ShapeTrapezoid:   "trapezoid",
	ShapeUserDefined: "user_defined",
}

// Shapes lists every known shape kind in declaration order.
func Shapes() []ShapeKind {
	kinds := make([]ShapeKind, len(shapeNames))
	for i := range shapeNames {
		kinds[i] = ShapeKind(i)
	}
	return kinds
}

// String returns the lowercase shape name.
func (k ShapeKind) String() string {
	if k >= 0 && int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return fmt.Sprintf("Unknown(%d)", int(k))
}

// Supported reports whether the kernel can resolve this shape.
func (k ShapeKind) Supported() bool {
	switch k {
	case ShapePentagon, ShapeTrapezoid:
		return false
	}
	return k >= 0 && int(k) < len(shapeNames)
}

// Curved reports whether the shape is tessellated by Params.Steps.
func (k ShapeKind) Curved() bool {
	return k == ShapeRound || k == ShapeEllipsis || k == ShapeCircle
}

// ParseShapeKind maps a shape name back to its kind.
func ParseShapeKind(name string) (ShapeKind, error) {
	for i, n := range shapeNames {
		if n == name {
			return ShapeKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedShape, name)
}
