package viz

import (
	"math"
	"sort"

	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/scene"
)

// maxNDC bounds how far off screen an endpoint may land before its line is
// dropped. It caps Bresenham walks for points close to the near plane.
const maxNDC = 4

// Project maps a world point through a view-projection matrix onto a canvas
// sw x sh dots in size. Points behind the camera or outside the depth range
// are not visible.
func Project(vp geom.Mat4, p geom.Vec3, sw, sh int) (int, int, float64, bool) {
	if vp.ClipW(p) <= 0 {
		return 0, 0, 0, false
	}
	ndc := vp.MulPoint(p)
	if ndc.Z < -1 || ndc.Z > 1 || math.Abs(ndc.X) > maxNDC || math.Abs(ndc.Y) > maxNDC {
		return 0, 0, 0, false
	}
	sx := int(math.Floor((ndc.X + 1) / 2 * float64(sw)))
	sy := int(math.Floor((1 - ndc.Y) / 2 * float64(sh)))
	return sx, sy, ndc.Z, true
}

type projected struct {
	x1, y1, x2, y2 int
	depth          float64
	layer          Layer
}

// DrawFrame rasterises a scene frame onto c, farthest primitives first so
// nearer ones win the cell colour.
func DrawFrame(c *Canvas, f scene.Frame) int {
	if c == nil || f.Camera == nil {
		return 0
	}
	vp := f.Camera.ViewProjection()
	sw, sh := c.SubWidth(), c.SubHeight()

	prims := make([]projected, 0, len(f.Segments)/6+len(f.Points))
	addSeg := func(s scene.Segment, layer Layer) {
		x1, y1, d1, v1 := Project(vp, s.A, sw, sh)
		x2, y2, d2, v2 := Project(vp, s.B, sw, sh)
		if v1 && v2 {
			prims = append(prims, projected{x1, y1, x2, y2, (d1 + d2) / 2, layer})
		}
	}

	for _, s := range f.WorldLines() {
		addSeg(s, LayerLines)
	}
	for _, p := range f.WorldPoints() {
		addSeg(scene.Segment{A: p, B: p}, LayerPoints)
	}
	for i := range f.Shapes {
		layer := LayerKnot
		if i == 0 {
			layer = LayerCore
		}
		for _, s := range f.WorldShape(i) {
			addSeg(s, layer)
		}
	}

	sort.SliceStable(prims, func(i, j int) bool { return prims[i].depth > prims[j].depth })
	for _, e := range prims {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1, e.layer)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2, e.layer)
		}
	}
	return len(prims)
}
