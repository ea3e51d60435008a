// Package graph builds proximity graphs over a fixed point set.
//
// An edge (i, j) with i < j exists iff the Euclidean distance between the two
// points is strictly below the threshold. Distances are measured in the
// points' local coordinate space.
//
//   - [Build]: exhaustive pairwise scan, O(n²)
//   - [BuildGrid]: uniform grid bucketing with the same edge set
//   - [Builder]: strategy plus recompute policy used by the scene each tick
package graph

import (
	"github.com/san-kum/corefield/internal/geom"
)

type Edge struct {
	I, J int
}

// Build returns every pair (i, j), i < j, closer than threshold, in ascending
// (i, j) order.
func Build(points []geom.Vec3, threshold float64) []Edge {
	edges := make([]Edge, 0)
	if threshold <= 0 || len(points) < 2 {
		return edges
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if geom.Dist(points[i], points[j]) < threshold {
				edges = append(edges, Edge{i, j})
			}
		}
	}
	return edges
}

// Segments flattens edges into x1,y1,z1,x2,y2,z2 runs, the layout line
// renderers upload as a vertex buffer.
func Segments(points []geom.Vec3, edges []Edge) []float32 {
	out := make([]float32, 0, len(edges)*6)
	for _, e := range edges {
		a, b := points[e.I], points[e.J]
		out = append(out,
			float32(a.X), float32(a.Y), float32(a.Z),
			float32(b.X), float32(b.Y), float32(b.Z),
		)
	}
	return out
}
