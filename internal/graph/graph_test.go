package graph

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/san-kum/corefield/internal/geom"
)

func randomPoints(seed int64, n int, spread float64) []geom.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geom.Vec3, n)
	for i := range pts {
		pts[i] = geom.Vec3{
			X: (rng.Float64() - 0.5) * spread,
			Y: (rng.Float64() - 0.5) * spread,
			Z: (rng.Float64() - 0.5) * spread,
		}
	}
	return pts
}

func TestBuildScenario(t *testing.T) {
	pts := []geom.Vec3{{0, 0, 0}, {1, 0, 0}, {10, 10, 10}}
	edges := Build(pts, 3.5)
	if len(edges) != 1 || edges[0] != (Edge{0, 1}) {
		t.Errorf("expected [{0 1}], got %v", edges)
	}
}

func TestBuildEmpty(t *testing.T) {
	tests := []struct {
		name      string
		points    []geom.Vec3
		threshold float64
	}{
		{"no points", nil, 3.5},
		{"one point", []geom.Vec3{{0, 0, 0}}, 3.5},
		{"zero threshold", []geom.Vec3{{0, 0, 0}, {0, 0, 0}}, 0},
		{"negative threshold", []geom.Vec3{{0, 0, 0}, {0.1, 0, 0}}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Build(tt.points, tt.threshold); len(got) != 0 {
				t.Errorf("Build: expected empty graph, got %v", got)
			}
			if got := BuildGrid(tt.points, tt.threshold); len(got) != 0 {
				t.Errorf("BuildGrid: expected empty graph, got %v", got)
			}
		})
	}
}

func TestBuildThresholdIsStrict(t *testing.T) {
	pts := []geom.Vec3{{0, 0, 0}, {2, 0, 0}}
	if got := Build(pts, 2); len(got) != 0 {
		t.Errorf("distance equal to threshold must not connect, got %v", got)
	}
	if got := Build(pts, 2.0001); len(got) != 1 {
		t.Errorf("expected one edge just above threshold, got %v", got)
	}
}

func TestBuildMatchesDistancePredicate(t *testing.T) {
	pts := randomPoints(11, 80, 15)
	threshold := 3.5
	edges := Build(pts, threshold)

	seen := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if e.I >= e.J {
			t.Fatalf("edge %v not ordered i < j", e)
		}
		if seen[e] {
			t.Fatalf("edge %v emitted twice", e)
		}
		seen[e] = true
	}

	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			want := geom.Dist(pts[i], pts[j]) < threshold
			if seen[Edge{i, j}] != want {
				t.Errorf("pair (%d,%d): in graph=%v, within threshold=%v", i, j, seen[Edge{i, j}], want)
			}
		}
	}
}

func TestBuildOrder(t *testing.T) {
	edges := Build(randomPoints(5, 60, 10), 4)
	for k := 1; k < len(edges); k++ {
		a, b := edges[k-1], edges[k]
		if a.I > b.I || (a.I == b.I && a.J >= b.J) {
			t.Fatalf("edges out of order at %d: %v then %v", k, a, b)
		}
	}
}

func TestBuildGridMatchesPairwise(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		pts := randomPoints(seed, 150, 15)
		for _, threshold := range []float64{0.5, 2, 3.5, 20} {
			want := Build(pts, threshold)
			got := BuildGrid(pts, threshold)
			if len(got) != len(want) {
				t.Fatalf("seed %d threshold %.1f: grid %d edges, pairwise %d", seed, threshold, len(got), len(want))
			}
			for k := range want {
				if got[k] != want[k] {
					t.Fatalf("seed %d threshold %.1f: edge %d differs: %v vs %v", seed, threshold, k, got[k], want[k])
				}
			}
		}
	}
}

func TestSegments(t *testing.T) {
	pts := []geom.Vec3{{0, 0, 0}, {1, 2, 3}, {10, 10, 10}}
	seg := Segments(pts, []Edge{{0, 1}})
	want := []float32{0, 0, 0, 1, 2, 3}
	if len(seg) != len(want) {
		t.Fatalf("expected %d floats, got %d", len(want), len(seg))
	}
	for i := range want {
		if seg[i] != want[i] {
			t.Errorf("seg[%d] = %v, want %v", i, seg[i], want[i])
		}
	}
}

func TestBuilderPolicies(t *testing.T) {
	pts := randomPoints(9, 40, 10)

	every, err := NewBuilder(3.5, Pairwise, EveryFrame)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	once, err := NewBuilder(3.5, Grid, Once)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	for i := 0; i < 5; i++ {
		a, b := every.Edges(pts), once.Edges(pts)
		if len(a) != len(b) {
			t.Fatalf("policies disagree: %d vs %d edges", len(a), len(b))
		}
	}
	if every.Builds() != 5 {
		t.Errorf("every_frame: expected 5 builds, got %d", every.Builds())
	}
	if once.Builds() != 1 {
		t.Errorf("once: expected 1 build, got %d", once.Builds())
	}
}

func TestBuilderRejectsUnknown(t *testing.T) {
	if _, err := NewBuilder(1, "kdtree", EveryFrame); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
	if _, err := NewBuilder(1, Pairwise, "sometimes"); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("expected ErrUnknownPolicy, got %v", err)
	}
}
