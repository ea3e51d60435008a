package scene

import (
	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/ornament"
	"github.com/san-kum/corefield/internal/viewport"
)

// Frame is what a renderer sees of the scene after an update. Slices are
// shared with the scene and must not be modified.
type Frame struct {
	Elapsed  float64
	Camera   *viewport.Camera
	Viewport viewport.State
	Palette  config.Palette

	Points         []geom.Vec3
	FieldTransform geom.Transform
	Segments       []float32
	LineTransform  geom.Transform
	Shapes         []ornament.Shape
	CoreTransform  geom.Transform
}

func (s *Scene) Frame() Frame {
	return Frame{
		Elapsed:        s.elapsed,
		Camera:         s.Camera,
		Viewport:       s.ctx.Viewport,
		Palette:        s.Palette,
		Points:         s.Field.Points(),
		FieldTransform: s.Field.Transform(),
		Segments:       s.Lines.Segments,
		LineTransform:  s.Lines.Transform,
		Shapes:         s.Core.Shapes,
		CoreTransform:  s.Core.Transform,
	}
}

// Segment is a world-space line.
type Segment struct {
	A, B geom.Vec3
}

// WorldPoints returns the field points placed by the field transform.
func (f Frame) WorldPoints() []geom.Vec3 {
	m := f.FieldTransform.Matrix()
	out := make([]geom.Vec3, len(f.Points))
	for i, p := range f.Points {
		out[i] = m.MulPoint(p)
	}
	return out
}

// WorldLines returns the proximity graph edges in world space.
func (f Frame) WorldLines() []Segment {
	m := f.LineTransform.Matrix()
	out := make([]Segment, 0, len(f.Segments)/6)
	for i := 0; i+5 < len(f.Segments); i += 6 {
		s := f.Segments[i : i+6]
		a := geom.Vec3{X: float64(s[0]), Y: float64(s[1]), Z: float64(s[2])}
		b := geom.Vec3{X: float64(s[3]), Y: float64(s[4]), Z: float64(s[5])}
		out = append(out, Segment{m.MulPoint(a), m.MulPoint(b)})
	}
	return out
}

// WorldShape returns the wireframe of ornament shape i in world space.
func (f Frame) WorldShape(i int) []Segment {
	m := f.CoreTransform.Matrix()
	w := f.Shapes[i].Mesh
	verts := make([]geom.Vec3, len(w.Vertices))
	for k, v := range w.Vertices {
		verts[k] = m.MulPoint(v)
	}
	out := make([]Segment, len(w.Edges))
	for k, e := range w.Edges {
		out[k] = Segment{verts[e[0]], verts[e[1]]}
	}
	return out
}

// ShapeSwatch picks the palette entry for ornament shape i.
func (f Frame) ShapeSwatch(i int) config.Swatch {
	if i == 0 {
		return f.Palette.Core
	}
	return f.Palette.Knot
}
