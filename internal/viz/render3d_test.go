package viz

import (
	"testing"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/scene"
	"github.com/san-kum/corefield/internal/viewport"
)

func TestProject(t *testing.T) {
	cam := viewport.DefaultCamera()
	cam.Aspect = 2
	cam.UpdateProjection()
	vp := cam.ViewProjection()

	tests := []struct {
		name    string
		p       geom.Vec3
		x, y    int
		visible bool
	}{
		{"origin", geom.Vec3{}, 40, 20, true},
		{"behind camera", geom.Vec3{Z: 10}, 0, 0, false},
		{"beyond far plane", geom.Vec3{Z: -2000}, 0, 0, false},
		{"far off screen", geom.Vec3{X: 1000, Z: 4}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, _, ok := Project(vp, tt.p, 80, 40)
			if ok != tt.visible {
				t.Fatalf("visible = %v, want %v", ok, tt.visible)
			}
			if ok && (x != tt.x || y != tt.y) {
				t.Errorf("got (%d, %d), want (%d, %d)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestProjectUpIsUp(t *testing.T) {
	cam := viewport.DefaultCamera()
	cam.Aspect = 1
	cam.UpdateProjection()
	_, yUp, _, _ := Project(cam.ViewProjection(), geom.Vec3{Y: 1}, 100, 100)
	_, yDown, _, _ := Project(cam.ViewProjection(), geom.Vec3{Y: -1}, 100, 100)
	if yUp >= yDown {
		t.Errorf("world +Y should map higher on screen: up=%d down=%d", yUp, yDown)
	}
}

func TestDrawFrame(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Viewport.Width, cfg.Viewport.Height = 640, 320
	pts := []geom.Vec3{{X: 0}, {X: 1}, {X: 10, Y: 10, Z: 10}}
	sc, err := scene.New(cfg, scene.WithPoints(pts))
	if err != nil {
		t.Fatal(err)
	}
	sc.Update(0)

	c := NewCanvas(80, 20)
	if n := DrawFrame(c, sc.Frame()); n == 0 {
		t.Fatal("nothing drawn")
	}

	seen := map[Layer]bool{}
	for _, row := range c.Layers {
		for _, l := range row {
			seen[l] = true
		}
	}
	for _, l := range []Layer{LayerCore, LayerKnot} {
		if !seen[l] {
			t.Errorf("layer %d missing from canvas", l)
		}
	}

	if DrawFrame(nil, sc.Frame()) != 0 {
		t.Error("nil canvas should draw nothing")
	}
}
