package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRenderTarget means the expected drawing surface does not exist.
	// Callers treat it as "nothing to animate", not as a failure.
	ErrNoRenderTarget = errors.New("scene: render target not found")

	// ErrSurfaceUnavailable means the surface exists but cannot be drawn to.
	ErrSurfaceUnavailable = errors.New("scene: render surface unavailable")
)

// InitError reports which construction stage failed. No partially built scene
// is returned alongside it.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("scene: init %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
