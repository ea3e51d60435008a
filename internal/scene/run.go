package scene

import (
	"context"

	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/loop"
)

// Renderer is a host that can draw frames. Release frees host resources such
// as GPU buffers or the terminal.
type Renderer interface {
	Render(f Frame) error
	Release() error
}

// TickFunc returns the per-refresh callback: update, then draw.
func (s *Scene) TickFunc(r Renderer) loop.TickFunc {
	return func(elapsed float64) error {
		s.Update(elapsed)
		return r.Render(s.Frame())
	}
}

// Attach registers the scene's tick with sched and arranges for r to be
// released when the scheduler stops.
func Attach(s *Scene, r Renderer, sched *loop.Scheduler) error {
	sched.OnStop(func() {
		if err := r.Release(); err != nil {
			s.log.Warn("renderer release failed", zap.Error(err))
		}
	})
	return sched.Start(s.TickFunc(r))
}

// Run attaches the scene and drives it from frames until the source closes or
// ctx is cancelled.
func Run(ctx context.Context, s *Scene, r Renderer, sched *loop.Scheduler, frames loop.FrameSource) error {
	if err := Attach(s, r, sched); err != nil {
		return err
	}
	return sched.Drive(ctx, frames)
}

// Headless keeps the last frame instead of drawing it.
type Headless struct {
	Frames   int
	Last     Frame
	Released bool
}

func (h *Headless) Render(f Frame) error {
	h.Frames++
	h.Last = f
	return nil
}

func (h *Headless) Release() error {
	h.Released = true
	return nil
}
