package scene

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/control"
	"github.com/san-kum/corefield/internal/field"
	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/graph"
	"github.com/san-kum/corefield/internal/ornament"
	"github.com/san-kum/corefield/internal/viewport"
)

// Context is the input record a tick reads. Notifications overwrite it
// between ticks.
type Context struct {
	Pointer  control.Pointer
	Viewport viewport.State
}

// LineSet is the drawable proximity graph.
type LineSet struct {
	Edges     []graph.Edge
	Segments  []float32
	Transform geom.Transform
}

type Scene struct {
	Camera  *viewport.Camera
	Field   *field.Field
	Lines   LineSet
	Core    *ornament.Object
	Palette config.Palette

	ctx          Context
	ctrl         control.Controller
	adapter      *viewport.Adapter
	builder      *graph.Builder
	rateY, rateX float64
	elapsed      float64
	target       control.Target
	seed         int64
	segBuilds    int
	log          *zap.Logger
}

type options struct {
	log    *zap.Logger
	points []geom.Vec3
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithPoints replaces random generation with a fixed point set, e.g. one
// restored from a snapshot.
func WithPoints(pts []geom.Vec3) Option {
	return func(o *options) { o.points = pts }
}

func New(cfg *config.Config, opts ...Option) (*Scene, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Stage: "config", Err: err}
	}
	palette, err := cfg.Palette.Parse()
	if err != nil {
		return nil, &InitError{Stage: "palette", Err: err}
	}
	builder, err := graph.NewBuilder(cfg.Graph.Threshold, graph.Strategy(cfg.Graph.Strategy), graph.Policy(cfg.Graph.Recompute))
	if err != nil {
		return nil, &InitError{Stage: "graph", Err: err}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	points := o.points
	if points == nil {
		points = field.Generate(rand.New(rand.NewSource(seed)), cfg.Field.Count, cfg.Field.Spread)
	}

	ctrl := control.Controller{
		Scale:     cfg.Pointer.Scale,
		Smoothing: cfg.Pointer.Smoothing,
		Drift:     geom.Vec3{X: cfg.Pointer.DriftX, Y: cfg.Pointer.DriftY},
	}

	s := &Scene{
		Camera:  viewport.NewCamera(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far, geom.Vec3{Z: cfg.Camera.Z}),
		Field:   field.New(points),
		Core:    ornament.New(ctrl, cfg.Ornament.BobAmplitude),
		Palette: palette,
		ctrl:    ctrl,
		builder: builder,
		rateY:   cfg.Field.RateY,
		rateX:   cfg.Field.RateX,
		seed:    seed,
		log:     o.log,
	}
	s.adapter = viewport.NewAdapter(s.Camera, s.Core, cfg.Viewport.Breakpoint,
		viewport.WithLogger(o.log),
		viewport.WithPresets(cfg.NarrowPreset(), cfg.WidePreset()),
	)
	s.Resized(cfg.Viewport.Width, cfg.Viewport.Height)

	s.log.Info("scene built",
		zap.Int("points", s.Field.Len()),
		zap.Float64("threshold", builder.Threshold()),
		zap.String("strategy", cfg.Graph.Strategy),
		zap.Int64("seed", seed),
	)
	return s, nil
}

// PointerMoved records an absolute pointer position as an offset from the
// current viewport centre.
func (s *Scene) PointerMoved(x, y float64) {
	cx, cy := s.adapter.Center()
	s.ctx.Pointer = control.Pointer{OffsetX: x - cx, OffsetY: y - cy}
}

// Resized forwards a viewport change to the adapter.
func (s *Scene) Resized(width, height int) {
	s.ctx.Viewport = s.adapter.OnResize(width, height)
}

// Update advances the scene to elapsed seconds.
func (s *Scene) Update(elapsed float64) {
	s.elapsed = elapsed

	s.target = s.ctrl.Target(s.ctx.Pointer)
	s.Core.Tick(elapsed, s.target)

	rot := s.Field.Rotation
	s.Field.Advance(elapsed*s.rateY-rot.Y, elapsed*s.rateX-rot.X)

	// Edges are measured in local space; the line set is rotated to match.
	edges := s.builder.Edges(s.Field.Points())
	if s.builder.Builds() != s.segBuilds {
		s.Lines.Edges = edges
		s.Lines.Segments = graph.Segments(s.Field.Points(), edges)
		s.segBuilds = s.builder.Builds()
	}
	s.Lines.Transform.Rotation = s.Field.Rotation
}

func (s *Scene) Context() Context { return s.ctx }

// Target is the rotation target computed by the last Update.
func (s *Scene) Target() control.Target { return s.target }

func (s *Scene) Seed() int64 { return s.seed }

func (s *Scene) Elapsed() float64 { return s.elapsed }

func (s *Scene) Adapter() *viewport.Adapter { return s.adapter }

func (s *Scene) Builder() *graph.Builder { return s.builder }
