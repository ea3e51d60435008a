// Package loop drives the per-refresh tick.
//
// A Scheduler is a two state machine:
//
//	Stopped --Start--> Running --Stop--> Stopped
//
// While running, every display refresh calls Fire, which invokes the
// registered tick with the elapsed time since the clock started. Ticks never
// overlap: a Fire issued from inside a tick is rejected.
//
// # Thread Safety
//
// Schedulers are NOT thread-safe. Start, Fire and Stop must be called from the
// goroutine that owns the render surface.
package loop

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var (
	ErrAlreadyRunning = errors.New("loop: scheduler already running")
	ErrStopped        = errors.New("loop: scheduler stopped")
	ErrReentrant      = errors.New("loop: tick fired while another tick is in progress")
)

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// TickFunc performs one update-and-draw pass.
type TickFunc func(elapsed float64) error

type Scheduler struct {
	clock    Clock
	tick     TickFunc
	state    State
	inTick   bool
	frames   int
	releases []func()
	log      *zap.Logger
}

type Option func(*Scheduler)

func WithLogger(l *zap.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

func New(clock Clock, opts ...Option) *Scheduler {
	s := &Scheduler{clock: clock, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start registers tick and moves the scheduler to Running.
func (s *Scheduler) Start(tick TickFunc) error {
	if s.state == Running {
		return ErrAlreadyRunning
	}
	s.tick = tick
	s.state = Running
	s.log.Debug("scheduler started")
	return nil
}

// Fire runs one tick. Hosts call it once per display refresh.
func (s *Scheduler) Fire() error {
	if s.state != Running {
		return ErrStopped
	}
	if s.inTick {
		return ErrReentrant
	}
	s.inTick = true
	defer func() { s.inTick = false }()

	s.frames++
	return s.tick(s.clock.Elapsed())
}

// OnStop registers a release hook. Hooks run once, last registered first.
func (s *Scheduler) OnStop(fn func()) {
	s.releases = append(s.releases, fn)
}

// Stop unregisters the tick and runs the release hooks. Calling Stop on a
// stopped scheduler is a no-op. A tick that calls Stop completes normally.
func (s *Scheduler) Stop() {
	if s.state == Stopped && s.tick == nil {
		return
	}
	s.state = Stopped
	s.tick = nil
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
	s.log.Debug("scheduler stopped", zap.Int("frames", s.frames))
}

func (s *Scheduler) State() State { return s.state }

// Frames reports the number of ticks fired so far.
func (s *Scheduler) Frames() int { return s.frames }

// FrameSource blocks until the next display refresh. Wait returns false once
// the surface is gone.
type FrameSource interface {
	Wait(ctx context.Context) bool
}

// Drive pulls refreshes from frames and fires a tick for each until the source
// closes, ctx is cancelled, a tick fails or Stop is called. The scheduler is
// always stopped on return.
func (s *Scheduler) Drive(ctx context.Context, frames FrameSource) error {
	defer s.Stop()
	for s.state == Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !frames.Wait(ctx) {
			return ctx.Err()
		}
		if s.state != Running {
			return nil
		}
		if err := s.Fire(); err != nil {
			return err
		}
	}
	return nil
}

// TickerFrames paces headless runs with a time.Ticker.
type TickerFrames struct {
	ticker *time.Ticker
}

func NewTickerFrames(fps int) *TickerFrames {
	if fps <= 0 {
		fps = 60
	}
	return &TickerFrames{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

func (f *TickerFrames) Wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-f.ticker.C:
		return true
	}
}

func (f *TickerFrames) Close() { f.ticker.Stop() }

// CountedFrames yields n refreshes immediately, then closes.
type CountedFrames struct {
	N int
}

func (f *CountedFrames) Wait(ctx context.Context) bool {
	if ctx.Err() != nil || f.N <= 0 {
		return false
	}
	f.N--
	return true
}
