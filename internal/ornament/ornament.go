// Package ornament implements the rotating wireframe core: an icosahedron and
// a torus knot that share one transform.
package ornament

import (
	"math"

	"github.com/san-kum/corefield/internal/control"
	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/mesh"
)

const DefaultBobAmplitude = 0.12

// Shape is one wireframe member of the ornament.
type Shape struct {
	Name string
	Mesh mesh.Wireframe
}

type Object struct {
	Shapes       []Shape
	Transform    geom.Transform
	Base         geom.Vec3
	BobAmplitude float64
	controller   control.Controller
}

func New(ctrl control.Controller, bobAmplitude float64) *Object {
	return &Object{
		Shapes: []Shape{
			{Name: "icosahedron", Mesh: mesh.Icosahedron(1.2)},
			{Name: "torusknot", Mesh: mesh.TorusKnot(0.8, 0.1, 100, 16, 2, 3)},
		},
		BobAmplitude: bobAmplitude,
		controller:   ctrl,
	}
}

// SetBase moves the layout anchor. The vertical bob is applied on top of it
// from the next tick on.
func (o *Object) SetBase(v geom.Vec3) {
	o.Base = v
	o.Transform.Position = v
}

// Tick spins the object by the drift, eases it toward target and places it at
// the base plus a sinusoidal vertical offset.
func (o *Object) Tick(elapsed float64, target control.Target) {
	o.Transform.Rotation = o.controller.Step(o.Transform.Rotation, target)
	o.Transform.Position = o.Base.Add(geom.Vec3{Y: math.Sin(elapsed) * o.BobAmplitude})
}
