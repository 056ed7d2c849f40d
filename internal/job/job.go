// Package job loads loft jobs (a profile and a path) from YAML files.
package job

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/archloft/pkg/loft"
	"github.com/Faultbox/archloft/pkg/math"
)

// ErrInvalidJob is returned for job files that decode but cannot describe a mesh.
var ErrInvalidJob = errors.New("invalid job")

// Job is one profile/path pair as written in a job file.
type Job struct {
	Name    string      `yaml:"name"`
	Profile ProfileSpec `yaml:"profile"`
	Path    PathSpec    `yaml:"path"`
}

// ProfileSpec is the cross-section section of a job file.
type ProfileSpec struct {
	ClosedShape  bool         `yaml:"closed_shape"`
	ClosedPath   bool         `yaml:"closed_path"`
	Xs           []float64    `yaml:"xs"`
	Points       []PointSpec  `yaml:"points"`
	SideCapFront *SideCapSpec `yaml:"side_cap_front,omitempty"`
	SideCapBack  *SideCapSpec `yaml:"side_cap_back,omitempty"`
	SubdivX      int          `yaml:"subdiv_x"`
	SubdivY      int          `yaml:"subdiv_y"`
	UserPathUVV  []float64    `yaml:"user_path_uv_v,omitempty"`
}

// PointSpec is one profile point: X is the index into xs.
type PointSpec struct {
	X   int     `yaml:"x"`
	Y   float64 `yaml:"y"`
	Mat int     `yaml:"mat"`
}

// SideCapSpec selects the profile point closed by a side cap.
type SideCapSpec struct {
	Index int `yaml:"index"`
	Mat   int `yaml:"mat"`
}

// PathSpec is the path section of a job file. Vectors are YAML sequences.
type PathSpec struct {
	Shape        string      `yaml:"shape"`
	Steps        int         `yaml:"steps"`
	Offset       []float64   `yaml:"offset,flow"`
	Center       []float64   `yaml:"center,flow"`
	Origin       []float64   `yaml:"origin,flow"`
	Size         []float64   `yaml:"size,flow"`
	Radius       []float64   `yaml:"radius,flow"`
	AngleDeg     float64     `yaml:"angle_deg"`
	Pivot        float64     `yaml:"pivot"`
	BottomY      []float64   `yaml:"bottom_y,omitempty,flow"`
	ShapeZ       []float64   `yaml:"shape_z,omitempty,flow"`
	Axis         string      `yaml:"axis"`
	Strict       bool        `yaml:"strict"`
	Points       [][]float64 `yaml:"points,omitempty,flow"`
	ClosedPoints bool        `yaml:"closed_points"`
}

// Defaults fill job settings the file leaves unset.
type Defaults struct {
	Steps  int
	Strict bool
}

// Load reads and decodes a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job: %w", err)
	}
	j, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", path, err)
	}
	return j, nil
}

// Parse decodes a job from YAML.
func Parse(data []byte) (*Job, error) {
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if j.Path.Shape == "" {
		return nil, fmt.Errorf("%w: path.shape is required", ErrInvalidJob)
	}
	return &j, nil
}

// ApplyDefaults fills unset settings.
func (j *Job) ApplyDefaults(d Defaults) {
	if j.Path.Steps == 0 {
		j.Path.Steps = d.Steps
	}
	if d.Strict {
		j.Path.Strict = true
	}
}

// Inputs converts the job into the arguments of loft.Generate.
func (j *Job) Inputs() (*loft.Profile, loft.ShapeKind, loft.Params, error) {
	kind, err := loft.ParseShapeKind(j.Path.Shape)
	if err != nil {
		return nil, 0, loft.Params{}, err
	}

	var userVertices int
	if kind == loft.ShapeUserDefined {
		if len(j.Path.Points) == 0 {
			return nil, 0, loft.Params{}, fmt.Errorf("%w: user_defined path needs points", ErrInvalidJob)
		}
		userVertices = len(j.Path.Points)
	}

	prof, err := j.Profile.build(userVertices)
	if err != nil {
		return nil, 0, loft.Params{}, err
	}

	params, err := j.Path.params()
	if err != nil {
		return nil, 0, loft.Params{}, err
	}

	return prof, kind, params, nil
}

// build converts the profile; userVertices is the station count of a
// user_defined path and 0 otherwise.
func (s *ProfileSpec) build(userVertices int) (*loft.Profile, error) {
	prof := &loft.Profile{
		ClosedShape: s.ClosedShape,
		ClosedPath:  s.ClosedPath,
		Xs:          append([]float64(nil), s.Xs...),
		Points:      make([]loft.ProfilePoint, len(s.Points)),
		SubdivX:     s.SubdivX,
		SubdivY:     s.SubdivY,

		UserPathVertexCount: userVertices,
		UserPathUVV:         append([]float64(nil), s.UserPathUVV...),
	}
	for i, pt := range s.Points {
		prof.Points[i] = loft.ProfilePoint{XBucket: pt.X, Y: pt.Y, Material: loft.MaterialID(pt.Mat)}
	}
	if s.SideCapFront != nil {
		prof.SideCapFront = &loft.SideCap{Index: s.SideCapFront.Index, Material: loft.MaterialID(s.SideCapFront.Mat)}
	}
	if s.SideCapBack != nil {
		prof.SideCapBack = &loft.SideCap{Index: s.SideCapBack.Index, Material: loft.MaterialID(s.SideCapBack.Mat)}
	}
	if len(prof.UserPathUVV) == 0 {
		prof.UserPathUVV = nil
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *PathSpec) params() (loft.Params, error) {
	var p loft.Params
	var err error

	if p.Offset, err = vec3("offset", s.Offset); err != nil {
		return p, err
	}
	if p.Center, err = vec3("center", s.Center); err != nil {
		return p, err
	}
	if p.Origin, err = vec3("origin", s.Origin); err != nil {
		return p, err
	}
	if p.Size, err = vec3("size", s.Size); err != nil {
		return p, err
	}
	if p.Radius, err = vec2("radius", s.Radius); err != nil {
		return p, err
	}
	if p.Axis, err = loft.ParseAxis(s.Axis); err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}

	p.Steps = s.Steps
	p.Angle = math.Radians(s.AngleDeg)
	p.Pivot = s.Pivot
	p.BottomY = s.BottomY
	p.ShapeZ = s.ShapeZ
	p.Strict = s.Strict

	if len(s.Points) > 0 {
		pts := make([]math.Vec2, len(s.Points))
		for i, v := range s.Points {
			if pts[i], err = vec2(fmt.Sprintf("points[%d]", i), v); err != nil {
				return p, err
			}
		}
		p.UserPath = loft.PolylinePath(pts, s.ClosedPoints)
	}
	return p, nil
}

// components pads a YAML vector with zeros up to n components.
func components(name string, v []float64, n int) ([]float64, error) {
	if len(v) > n {
		return nil, fmt.Errorf("%w: %s has %d components", ErrInvalidJob, name, len(v))
	}
	c := make([]float64, n)
	copy(c, v)
	return c, nil
}

// vec3 accepts 0 to 3 components; missing ones are zero.
func vec3(name string, v []float64) (math.Vec3, error) {
	c, err := components(name, v, 3)
	if err != nil {
		return math.Vec3{}, err
	}
	return math.V3(c[0], c[1], c[2]), nil
}

func vec2(name string, v []float64) (math.Vec2, error) {
	c, err := components(name, v, 2)
	if err != nil {
		return math.Vec2{}, err
	}
	return math.V2(c[0], c[1]), nil
}
