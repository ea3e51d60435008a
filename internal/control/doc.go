// Package control turns pointer input into the ornament's rotation.
//
// The controller is a first-order low-pass filter on each rotation axis:
//
//	rot' = rot + drift
//	rot' = rot' + smoothing * (target - rot')
//
// With 0 < smoothing <= 1 and no drift the gap to a fixed target shrinks by a
// factor of (1 - smoothing) every step, so the rotation never overshoots.
//
// # Usage
//
//	c := control.Default()
//	target := c.Target(control.Pointer{OffsetX: 100})
//	rot = c.Step(rot, target)
package control
