// Package preview rasterizes generated meshes into flat-shaded PNG previews.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	stdmath "math"
	"sort"

	"golang.org/x/image/vector"

	"github.com/Faultbox/archloft/pkg/loft"
	"github.com/Faultbox/archloft/pkg/math"
)

// ErrEmptyMesh is returned when there is nothing to draw.
var ErrEmptyMesh = errors.New("mesh has no faces")

// Options configures Render.
type Options struct {
	Width      int
	Height     int
	View       View
	Margin     int // Pixels kept free around the mesh.
	Background color.NRGBA
}

// DefaultOptions returns a 512x512 front view on a light background.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		View:       ViewFront,
		Margin:     16,
		Background: color.NRGBA{R: 0xf4, G: 0xf4, B: 0xf0, A: 0xff},
	}
}

// Palette colors faces by material slot, wrapping around.
var Palette = []color.NRGBA{
	{R: 0x8c, G: 0x6a, B: 0x4f, A: 0xff}, // wood
	{R: 0x5b, G: 0x7d, B: 0x9a, A: 0xff}, // glass
	{R: 0x9a, G: 0x9a, B: 0x96, A: 0xff}, // metal
	{R: 0xc8, G: 0x5a, B: 0x3c, A: 0xff},
	{R: 0x6f, G: 0x9a, B: 0x4f, A: 0xff},
	{R: 0xd4, G: 0xb1, B: 0x45, A: 0xff},
}

// MaterialColor returns the palette color of a material slot.
func MaterialColor(id loft.MaterialID) color.NRGBA {
	i := int(id) % len(Palette)
	if i < 0 {
		i += len(Palette)
	}
	return Palette[i]
}

type projected struct {
	pts   [3]math.Vec3
	depth float64
	col   color.NRGBA
}

// Render draws m with painter's ordering. Triangles facing the viewer
// edge-on are darker than those facing it directly.
func Render(m *loft.Mesh, opts Options) (*image.RGBA, error) {
	if len(m.Faces) == 0 {
		return nil, ErrEmptyMesh
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("preview size must be positive")
	}

	view := opts.View.Matrix()
	verts := make([]math.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		verts[i] = view.TransformVec3(v)
	}

	fit := fitTransform(verts, opts)
	toViewer := math.V3(0, 0, 1)

	tris := m.Triangles()
	items := make([]projected, 0, len(tris))
	for _, tri := range tris {
		a, b, c := verts[tri.Index[0]], verts[tri.Index[1]], verts[tri.Index[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Length() == 0 {
			continue
		}
		shade := 0.35 + 0.65*stdmath.Abs(n.Normalize().Dot(toViewer))
		items = append(items, projected{
			pts:   [3]math.Vec3{fit.TransformVec3(a), fit.TransformVec3(b), fit.TransformVec3(c)},
			depth: (a.Z + b.Z + c.Z) / 3,
			col:   shadeColor(MaterialColor(m.MaterialIDs[tri.Face]), shade),
		})
	}
	// Far triangles first; stable keeps face order for coplanar ties.
	sort.SliceStable(items, func(i, j int) bool { return items[i].depth < items[j].depth })

	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	vr := vector.NewRasterizer(opts.Width, opts.Height)
	for _, it := range items {
		vr.Reset(opts.Width, opts.Height)
		vr.DrawOp = draw.Over
		vr.MoveTo(float32(it.pts[0].X), float32(it.pts[0].Y))
		vr.LineTo(float32(it.pts[1].X), float32(it.pts[1].Y))
		vr.LineTo(float32(it.pts[2].X), float32(it.pts[2].Y))
		vr.ClosePath()
		vr.Draw(dst, dst.Bounds(), image.NewUniform(it.col), image.Point{})
	}
	return dst, nil
}

// fitTransform maps view space onto the pixel grid, preserving aspect ratio
// and flipping Y so that up is up.
func fitTransform(verts []math.Vec3, opts Options) math.Mat4 {
	lo, hi := verts[0], verts[0]
	for _, v := range verts[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}

	w := float64(opts.Width - 2*opts.Margin)
	h := float64(opts.Height - 2*opts.Margin)
	if w <= 0 || h <= 0 {
		w, h = float64(opts.Width), float64(opts.Height)
	}

	ext := hi.Sub(lo)
	scale := stdmath.Inf(1)
	if ext.X > 0 {
		scale = w / ext.X
	}
	if ext.Y > 0 {
		scale = stdmath.Min(scale, h/ext.Y)
	}
	if stdmath.IsInf(scale, 1) {
		scale = 1
	}

	mid := lo.Add(hi).Scale(0.5)
	cx, cy := float64(opts.Width)/2, float64(opts.Height)/2
	return math.Translate(cx, cy, 0).
		Mul(math.Scale(scale, -scale, 1)).
		Mul(math.Translate(-mid.X, -mid.Y, 0))
}

func shadeColor(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
