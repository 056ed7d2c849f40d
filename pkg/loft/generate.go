package loft

import (
	"github.com/Faultbox/archloft/pkg/math"
)

// Generate sweeps the profile along the path shape and returns the mesh.
//
// Vertices are laid out station-major: vertex s*N+j is profile point j at
// station s, N being the profile point count. Faces are emitted as band quads,
// then end caps, then the front and back side caps.
func Generate(prof *Profile, kind ShapeKind, p Params) (*Mesh, error) {
	paths, err := Stations(kind, prof, p)
	if err != nil {
		return nil, err
	}

	n := prof.PointCount()
	stations := len(paths[0].Points)
	segments := stations - 1
	if prof.ClosedPath {
		segments = stations
	}
	faces := segments * prof.FaceCount()

	m := &Mesh{
		Vertices:    make([]math.Vec3, 0, stations*n),
		Faces:       make([][]int, 0, faces+4),
		MaterialIDs: make([]MaterialID, 0, faces+4),
		UVs:         make([][]math.Vec2, 0, faces+4),
	}

	for s := 0; s < stations; s++ {
		for _, pt := range prof.Points {
			c := paths[pt.XBucket].Points[s]
			m.Vertices = append(m.Vertices, place(&p, c, pt.Y+p.depth(pt.XBucket)))
		}
	}

	addBands(m, prof, paths, segments)
	if prof.ClosedShape && !prof.ClosedPath {
		addEndCaps(m, prof, stations)
	}
	if sc := prof.SideCapFront; sc != nil {
		addSideCap(m, prof, paths, sc, stations, false)
	}
	if sc := prof.SideCapBack; sc != nil {
		addSideCap(m, prof, paths, sc, stations, true)
	}
	return m, nil
}

// place maps a path coordinate and profile depth to 3D.
func place(p *Params, c math.Vec2, depth float64) math.Vec3 {
	var v math.Vec3
	if p.Axis == AxisHorizontal {
		v = math.Vec3{X: c.X, Y: c.Y, Z: depth}
	} else {
		v = math.Vec3{X: c.X, Y: depth, Z: c.Y}
	}
	return v.Add(p.Origin)
}

// addBands emits one quad per path segment and profile segment. V comes from
// the path of the segment's first profile point.
func addBands(m *Mesh, prof *Profile, paths []Path, segments int) {
	n := prof.PointCount()
	stations := len(paths[0].Points)
	u := prof.UVU()
	vs := make([][]float64, len(paths))
	for b := range paths {
		vs[b] = paths[b].V()
	}

	for i := 0; i < segments; i++ {
		k0 := i * n
		k1 := ((i + 1) % stations) * n
		for j := 0; j < prof.FaceCount(); j++ {
			j1 := (j + 1) % n
			v := vs[prof.Points[j].XBucket]
			u0, u1 := u[j], u[j+1]
			v0, v1 := v[i], v[i+1]
			m.addFace(
				[]int{k1 + j1, k1 + j, k0 + j, k0 + j1},
				prof.Points[j].Material,
				[]math.Vec2{{X: u1, Y: v1}, {X: u0, Y: v1}, {X: u0, Y: v0}, {X: u1, Y: v0}},
			)
		}
	}
}

// addEndCaps closes the first and last station with the profile outline.
func addEndCaps(m *Mesh, prof *Profile, stations int) {
	n := prof.PointCount()
	outline := prof.Outline()
	last := (stations - 1) * n

	start := make([]int, n)
	end := make([]int, n)
	startUV := make([]math.Vec2, n)
	endUV := make([]math.Vec2, n)
	for j := 0; j < n; j++ {
		start[j] = j
		end[j] = last + n - 1 - j
		startUV[j] = outline[j]
		endUV[j] = outline[n-1-j]
	}
	mat := prof.Points[0].Material
	m.addFace(start, mat, startUV)
	m.addFace(end, mat, endUV)
}

// addSideCap spans every station at one profile point. The UV polygon is the
// raw path of that point.
func addSideCap(m *Mesh, prof *Profile, paths []Path, sc *SideCap, stations int, back bool) {
	n := prof.PointCount()
	path := paths[prof.Points[sc.Index].XBucket].Points
	face := make([]int, stations)
	uv := make([]math.Vec2, stations)
	for i := 0; i < stations; i++ {
		s := i
		if back {
			s = stations - 1 - i
		}
		face[i] = sc.Index + n*s
		uv[i] = path[s]
	}
	m.addFace(face, sc.Material, uv)
}
