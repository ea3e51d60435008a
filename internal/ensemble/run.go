// Package ensemble drives scenes without a display: single headless runs,
// batches of runs over consecutive seeds, and grid searches over config
// parameters.
package ensemble

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/loop"
	"github.com/san-kum/corefield/internal/metrics"
	"github.com/san-kum/corefield/internal/scene"
)

// SweepPeriod is how long the synthetic pointer takes to circle once.
const SweepPeriod = 8.0

// Run is the record of a scene driven for a fixed number of frames.
type Run struct {
	Scene   *scene.Scene
	Sched   *loop.Scheduler
	Last    *scene.Headless
	Metrics []metrics.Metric

	Times, Gaps, Bobs []float64
	RotX, RotY        []float64
}

// Values reads the run's metrics.
func (r *Run) Values() map[string]float64 {
	return metrics.Collect(r.Metrics)
}

// Params controls a headless run.
type Params struct {
	Frames int
	// Radius of the synthetic pointer circle in pixels, 0 leaves the pointer
	// centred.
	Radius float64
	Log    *zap.Logger
	Opts   []scene.Option
}

// Simulate builds a scene from cfg and fires it p.Frames times on a step clock
// of 1/fps. ctx is checked between frames.
func Simulate(ctx context.Context, cfg *config.Config, p Params) (*Run, error) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	opts := append(append([]scene.Option(nil), p.Opts...), scene.WithLogger(log))
	sc, err := scene.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	step := 1.0 / float64(cfg.Render.FPS)
	run := &Run{
		Scene:   sc,
		Sched:   loop.New(&loop.StepClock{Step: step}, loop.WithLogger(log)),
		Last:    &scene.Headless{},
		Metrics: metrics.Default(),
	}
	if err := scene.Attach(sc, run.Last, run.Sched); err != nil {
		return nil, err
	}
	defer run.Sched.Stop()

	for i := 0; i < p.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.Radius > 0 {
			cx, cy := sc.Adapter().Center()
			a := 2 * math.Pi * float64(i) * step / SweepPeriod
			sc.PointerMoved(cx+p.Radius*math.Cos(a), cy+p.Radius*math.Sin(a))
		}

		start := time.Now()
		if err := run.Sched.Fire(); err != nil {
			return nil, err
		}
		s := metrics.FromScene(sc, time.Since(start).Seconds())
		metrics.ObserveAll(run.Metrics, s)

		rot := sc.Core.Transform.Rotation
		run.Times = append(run.Times, s.Elapsed)
		run.Gaps = append(run.Gaps, s.RotationGap)
		run.Bobs = append(run.Bobs, s.BobOffset)
		run.RotX = append(run.RotX, rot.X)
		run.RotY = append(run.RotY, rot.Y)
	}
	return run, nil
}
