package geom

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec3) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Transform is a node's local placement. Rotation holds Euler angles applied in
// X, Y, Z order.
type Transform struct {
	Position Vec3
	Rotation Vec3
}

// Matrix returns the local-to-parent matrix (translation * Rx * Ry * Rz).
func (t Transform) Matrix() Mat4 {
	r := RotationX(t.Rotation.X).Mul(RotationY(t.Rotation.Y)).Mul(RotationZ(t.Rotation.Z))
	return Translation(t.Position).Mul(r)
}

// Apply maps a local point into the parent space.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Matrix().MulPoint(p)
}
