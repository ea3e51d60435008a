package control

import "github.com/san-kum/corefield/internal/geom"

const (
	DefaultScale     = 0.001
	DefaultSmoothing = 0.05
)

// DefaultDrift is the constant per-tick spin added regardless of pointer input.
var DefaultDrift = geom.Vec3{X: 0.002, Y: 0.005}

// Pointer is the last observed pointer offset from the viewport centre.
type Pointer struct {
	OffsetX, OffsetY float64
}

// Target is a desired rotation about the X and Y axes.
type Target struct {
	X, Y float64
}

type Controller struct {
	Scale     float64
	Smoothing float64
	Drift     geom.Vec3
}

func Default() Controller {
	return Controller{
		Scale:     DefaultScale,
		Smoothing: DefaultSmoothing,
		Drift:     DefaultDrift,
	}
}

// Target maps the pointer offset to a rotation. Horizontal travel turns the
// object about Y, vertical travel about X.
func (c Controller) Target(p Pointer) Target {
	return Target{
		X: p.OffsetY * c.Scale,
		Y: p.OffsetX * c.Scale,
	}
}

// Apply moves current a fraction smoothing of the way toward target.
func Apply(current, target, smoothing float64) float64 {
	return current + smoothing*(target-current)
}

// Step adds the drift and then eases X and Y toward t. Z only drifts.
func (c Controller) Step(rot geom.Vec3, t Target) geom.Vec3 {
	rot = rot.Add(c.Drift)
	rot.X = Apply(rot.X, t.X, c.Smoothing)
	rot.Y = Apply(rot.Y, t.Y, c.Smoothing)
	return rot
}
