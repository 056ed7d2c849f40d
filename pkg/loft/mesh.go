package loft

import (
	"fmt"

	"github.com/Faultbox/archloft/pkg/math"
)

// Mesh holds the arrays produced by one Generate call.
// Faces, MaterialIDs and UVs are aligned one to one.
type Mesh struct {
	Vertices    []math.Vec3
	Faces       [][]int
	MaterialIDs []MaterialID
	UVs         [][]math.Vec2
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the box extent.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Bounds returns the bounding box of all vertices. An empty mesh yields a zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}

// TriangleCount returns the number of triangles a fan triangulation produces.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.Faces {
		if len(f) >= 3 {
			n += len(f) - 2
		}
	}
	return n
}

// Triangles fan-triangulates every face. Each triangle carries its face index.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, m.TriangleCount())
	for fi, f := range m.Faces {
		for k := 1; k+1 < len(f); k++ {
			tris = append(tris, Triangle{Face: fi, Index: [3]int{f[0], f[k], f[k+1]}})
		}
	}
	return tris
}

// Triangle is one fan triangle of a face.
type Triangle struct {
	Face  int
	Index [3]int
}

// Validate checks array alignment and vertex references.
func (m *Mesh) Validate() error {
	if len(m.MaterialIDs) != len(m.Faces) || len(m.UVs) != len(m.Faces) {
		return fmt.Errorf("%w: %d faces, %d materials, %d uv loops",
			ErrMeshMisaligned, len(m.Faces), len(m.MaterialIDs), len(m.UVs))
	}
	for i, f := range m.Faces {
		if len(m.UVs[i]) != len(f) {
			return fmt.Errorf("%w: face %d has %d vertices and %d uvs", ErrMeshMisaligned, i, len(f), len(m.UVs[i]))
		}
		for _, vi := range f {
			if vi < 0 || vi >= len(m.Vertices) {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrMeshMisaligned, i, vi, len(m.Vertices))
			}
		}
	}
	return nil
}

func (m *Mesh) addFace(face []int, mat MaterialID, uv []math.Vec2) {
	m.Faces = append(m.Faces, face)
	m.MaterialIDs = append(m.MaterialIDs, mat)
	m.UVs = append(m.UVs, uv)
}
