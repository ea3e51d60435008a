// Package mesh generates wireframe solids as vertex and edge lists.
package mesh

import (
	"math"

	"github.com/san-kum/corefield/internal/geom"
)

type Wireframe struct {
	Vertices []geom.Vec3
	Edges    [][2]int
}

type edgeSet struct {
	seen  map[[2]int]bool
	edges [][2]int
}

func newEdgeSet() *edgeSet { return &edgeSet{seen: make(map[[2]int]bool)} }

func (s *edgeSet) add(a, b int) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	k := [2]int{a, b}
	if s.seen[k] {
		return
	}
	s.seen[k] = true
	s.edges = append(s.edges, k)
}

// Icosahedron returns the 12 vertex, 30 edge regular icosahedron with the
// given circumradius.
func Icosahedron(radius float64) Wireframe {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []geom.Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	verts := make([]geom.Vec3, len(raw))
	for i, v := range raw {
		verts[i] = v.Normalize().Scale(radius)
	}

	// Adjacent vertices are exactly 2 apart before normalisation.
	es := newEdgeSet()
	for i := range raw {
		for j := i + 1; j < len(raw); j++ {
			if math.Abs(geom.Dist(raw[i], raw[j])-2) < 1e-9 {
				es.add(i, j)
			}
		}
	}
	return Wireframe{Vertices: verts, Edges: es.edges}
}

// TorusKnot sweeps a tube of radius tube along a (p, q) torus knot curve.
// The vertex grid is (tubular+1) x (radial+1) with triangulated quads.
func TorusKnot(radius, tube float64, tubular, radial, p, q int) Wireframe {
	curve := func(u float64) geom.Vec3 {
		qu := float64(q) / float64(p) * u
		cs := math.Cos(qu)
		return geom.Vec3{
			X: radius * (2 + cs) * 0.5 * math.Cos(u),
			Y: radius * (2 + cs) * 0.5 * math.Sin(u),
			Z: radius * math.Sin(qu) * 0.5,
		}
	}

	verts := make([]geom.Vec3, 0, (tubular+1)*(radial+1))
	for i := 0; i <= tubular; i++ {
		u := float64(i) / float64(tubular) * float64(p) * math.Pi * 2
		p1 := curve(u)
		p2 := curve(u + 0.01)

		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n)
		n = b.Cross(t)
		b, n = b.Normalize(), n.Normalize()

		for j := 0; j <= radial; j++ {
			v := float64(j) / float64(radial) * math.Pi * 2
			cx := -tube * math.Cos(v)
			cy := tube * math.Sin(v)
			verts = append(verts, p1.Add(n.Scale(cx)).Add(b.Scale(cy)))
		}
	}

	idx := func(i, j int) int { return i*(radial+1) + j }
	es := newEdgeSet()
	for i := 0; i < tubular; i++ {
		for j := 0; j < radial; j++ {
			a, b, c, d := idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)
			es.add(a, b)
			es.add(b, d)
			es.add(d, a)
			es.add(b, c)
			es.add(c, d)
		}
	}
	return Wireframe{Vertices: verts, Edges: es.edges}
}
