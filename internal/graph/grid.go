package graph

import (
	"math"
	"sort"

	"github.com/san-kum/corefield/internal/geom"
)

type cell struct{ x, y, z int }

// BuildGrid produces the same edge set as Build by bucketing points into cubes
// of side threshold, so only the 27 surrounding cells are compared. Output is
// sorted in ascending (i, j) order.
func BuildGrid(points []geom.Vec3, threshold float64) []Edge {
	edges := make([]Edge, 0)
	if threshold <= 0 || len(points) < 2 {
		return edges
	}

	cellOf := func(p geom.Vec3) cell {
		return cell{
			int(math.Floor(p.X / threshold)),
			int(math.Floor(p.Y / threshold)),
			int(math.Floor(p.Z / threshold)),
		}
	}

	buckets := make(map[cell][]int, len(points))
	for i, p := range points {
		c := cellOf(p)
		buckets[c] = append(buckets[c], i)
	}

	for i, p := range points {
		c := cellOf(p)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					for _, j := range buckets[cell{c.x + dx, c.y + dy, c.z + dz}] {
						if j <= i {
							continue
						}
						if geom.Dist(p, points[j]) < threshold {
							edges = append(edges, Edge{i, j})
						}
					}
				}
			}
		}
	}

	sort.Slice(edges, func(a, b int) bool {
		if edges[a].I != edges[b].I {
			return edges[a].I < edges[b].I
		}
		return edges[a].J < edges[b].J
	})
	return edges
}
