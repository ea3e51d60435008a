// Package field holds the fixed point cloud of the scene.
//
// Points are generated once and never mutated; only the field's rotation
// changes over the lifetime of a scene.
package field

import (
	"math/rand"

	"github.com/san-kum/corefield/internal/geom"
)

type Point = geom.Vec3

const (
	DefaultCount  = 80
	DefaultSpread = 15.0
)

// Generate samples count points with every coordinate drawn uniformly from
// [-spread/2, spread/2).
func Generate(rng *rand.Rand, count int, spread float64) []Point {
	if count <= 0 {
		return []Point{}
	}
	pts := make([]Point, count)
	for i := range pts {
		pts[i] = Point{
			X: (rng.Float64() - 0.5) * spread,
			Y: (rng.Float64() - 0.5) * spread,
			Z: (rng.Float64() - 0.5) * spread,
		}
	}
	return pts
}

type Field struct {
	points   []Point
	Rotation geom.Vec3
}

// New takes ownership of points. Callers must not modify the slice afterwards.
func New(points []Point) *Field {
	return &Field{points: points}
}

// Points returns the stored positions. The slice is shared and must be treated
// as read-only.
func (f *Field) Points() []Point { return f.points }

func (f *Field) Len() int { return len(f.points) }

// Advance rotates the field; stored points are left untouched.
func (f *Field) Advance(deltaY, deltaX float64) {
	f.Rotation.Y += deltaY
	f.Rotation.X += deltaX
}

// Transform returns the field's placement. Fields always sit at the origin.
func (f *Field) Transform() geom.Transform {
	return geom.Transform{Rotation: f.Rotation}
}
