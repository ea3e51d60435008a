package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/scene"
)

func toVector3(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func toColor(s config.Swatch) rl.Color {
	r, g, b, a := s.RGBA8()
	return rl.NewColor(r, g, b, a)
}

// cameraFor mirrors the scene camera. raylib derives the aspect ratio from the
// framebuffer itself.
func cameraFor(f scene.Frame) rl.Camera3D {
	return rl.NewCamera3D(
		toVector3(f.Camera.Position),
		toVector3(geom.Vec3{X: f.Camera.Position.X, Y: f.Camera.Position.Y}),
		rl.NewVector3(0, 1, 0),
		float32(f.Camera.FOV),
		rl.CameraPerspective,
	)
}

func (a *App) drawLines(f scene.Frame) {
	col := toColor(f.Palette.Lines)
	for _, s := range f.WorldLines() {
		rl.DrawLine3D(toVector3(s.A), toVector3(s.B), col)
	}
}

func (a *App) drawPoints(f scene.Frame) {
	col := toColor(f.Palette.Points)
	for _, p := range f.WorldPoints() {
		rl.DrawSphereEx(toVector3(p), a.pointSize, 4, 4, col)
	}
}

func (a *App) drawCore(f scene.Frame) {
	for i := range f.Shapes {
		col := toColor(f.ShapeSwatch(i))
		for _, s := range f.WorldShape(i) {
			rl.DrawLine3D(toVector3(s.A), toVector3(s.B), col)
		}
	}
}
