package geom

import (
	"math"
	"testing"
)

func near(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

func TestDist(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want float64
	}{
		{Vec3{}, Vec3{1, 0, 0}, 1},
		{Vec3{}, Vec3{3, 4, 0}, 5},
		{Vec3{1, 1, 1}, Vec3{1, 1, 1}, 0},
	}
	for _, tt := range tests {
		if got := Dist(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Dist(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTransformApply(t *testing.T) {
	tr := Transform{Rotation: Vec3{Y: math.Pi / 2}}
	got := tr.Apply(Vec3{1, 0, 0})
	if !near(got, Vec3{0, 0, -1}) {
		t.Errorf("rotate y 90: got %v", got)
	}

	tr = Transform{Position: Vec3{2.5, 0, 0}, Rotation: Vec3{X: math.Pi / 2}}
	got = tr.Apply(Vec3{0, 1, 0})
	if !near(got, Vec3{2.5, 0, 1}) {
		t.Errorf("rotate x 90 + translate: got %v", got)
	}
}

func TestPerspectiveCentre(t *testing.T) {
	proj := Perspective(75, 16.0/9.0, 0.1, 1000)
	ndc := proj.MulPoint(Vec3{0, 0, -5})
	if math.Abs(ndc.X) > 1e-12 || math.Abs(ndc.Y) > 1e-12 {
		t.Errorf("point on axis should project to centre, got %v", ndc)
	}
	if ndc.Z <= -1 || ndc.Z >= 1 {
		t.Errorf("depth outside clip range: %v", ndc.Z)
	}
	if w := proj.ClipW(Vec3{0, 0, 1}); w >= 0 {
		t.Errorf("point behind the eye should have negative w, got %v", w)
	}
}
