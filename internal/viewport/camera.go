package viewport

import "github.com/san-kum/corefield/internal/geom"

// Camera is a perspective camera looking down -Z from Position.
type Camera struct {
	FOV, Aspect, Near, Far float64
	Position               geom.Vec3

	projection geom.Mat4
}

func NewCamera(fov, near, far float64, position geom.Vec3) *Camera {
	c := &Camera{FOV: fov, Aspect: 1, Near: near, Far: far, Position: position}
	c.UpdateProjection()
	return c
}

func DefaultCamera() *Camera {
	return NewCamera(75, 0.1, 1000, geom.Vec3{Z: 5})
}

// UpdateProjection must be called after changing FOV, Aspect, Near or Far.
func (c *Camera) UpdateProjection() {
	c.projection = geom.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

func (c *Camera) Projection() geom.Mat4 { return c.projection }

func (c *Camera) View() geom.Mat4 {
	return geom.Translation(c.Position.Scale(-1))
}

// ViewProjection maps world space to clip space.
func (c *Camera) ViewProjection() geom.Mat4 {
	return c.projection.Mul(c.View())
}
