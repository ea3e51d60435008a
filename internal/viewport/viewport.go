package viewport

import (
	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/geom"
)

const DefaultBreakpoint = 768

var (
	NarrowPreset = geom.Vec3{X: 0, Y: 2, Z: -2}
	WidePreset   = geom.Vec3{X: 2.5, Y: 0, Z: 0}
)

type State struct {
	Width, Height int
	Narrow        bool
}

// Positioner receives the layout anchor chosen for the current viewport class.
type Positioner interface {
	SetBase(geom.Vec3)
}

type Adapter struct {
	Breakpoint int
	Narrow     geom.Vec3
	Wide       geom.Vec3

	camera      *Camera
	target      Positioner
	state       State
	initialized bool
	repositions int
	log         *zap.Logger
}

type Option func(*Adapter)

func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) { a.log = l }
}

// WithPresets overrides the narrow and wide anchors.
func WithPresets(narrow, wide geom.Vec3) Option {
	return func(a *Adapter) { a.Narrow, a.Wide = narrow, wide }
}

func NewAdapter(cam *Camera, target Positioner, breakpoint int, opts ...Option) *Adapter {
	a := &Adapter{
		Breakpoint: breakpoint,
		Narrow:     NarrowPreset,
		Wide:       WidePreset,
		camera:     cam,
		target:     target,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// OnResize updates the camera for the new size and switches the layout preset
// when the narrow/wide class changes or on the first call.
func (a *Adapter) OnResize(width, height int) State {
	if height > 0 && width > 0 {
		a.camera.Aspect = float64(width) / float64(height)
		a.camera.UpdateProjection()
	}

	narrow := width < a.Breakpoint
	prev := a.state.Narrow
	a.state = State{Width: width, Height: height, Narrow: narrow}

	if !a.initialized || narrow != prev {
		a.initialized = true
		a.repositions++
		preset := a.Wide
		if narrow {
			preset = a.Narrow
		}
		a.target.SetBase(preset)
		a.log.Debug("layout preset applied",
			zap.Int("width", width),
			zap.Int("height", height),
			zap.Bool("narrow", narrow),
		)
	}
	return a.state
}

func (a *Adapter) State() State { return a.state }

// Repositions counts how many times a layout preset was applied.
func (a *Adapter) Repositions() int { return a.repositions }

// Center returns the viewport centre in the same units as pointer events.
func (a *Adapter) Center() (float64, float64) {
	return float64(a.state.Width) / 2, float64(a.state.Height) / 2
}
