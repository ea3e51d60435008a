package scene_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/graph"
	"github.com/san-kum/corefield/internal/loop"
	"github.com/san-kum/corefield/internal/scene"
)

var triple = []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 10}}

type failingRenderer struct {
	released int
}

func (f *failingRenderer) Render(scene.Frame) error { return scene.ErrSurfaceUnavailable }
func (f *failingRenderer) Release() error {
	f.released++
	return nil
}

var _ = Describe("Scene", func() {
	var (
		cfg *config.Config
		sc  *scene.Scene
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Seed = 7
		cfg.Viewport.Width, cfg.Viewport.Height = 1280, 720
	})

	JustBeforeEach(func() {
		var err error
		sc, err = scene.New(cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("generates the configured number of points inside the cube", func() {
			Expect(sc.Field.Len()).To(Equal(config.DefaultCount))
			for _, p := range sc.Field.Points() {
				Expect(p.X).To(BeNumerically(">=", -7.5))
				Expect(p.X).To(BeNumerically("<", 7.5))
				Expect(p.Y).To(BeNumerically(">=", -7.5))
				Expect(p.Z).To(BeNumerically("<", 7.5))
			}
		})

		It("places the ornament at the wide anchor for a desktop viewport", func() {
			Expect(sc.Core.Base).To(Equal(geom.Vec3{X: 2.5}))
			Expect(sc.Context().Viewport.Narrow).To(BeFalse())
		})

		It("is reproducible for a fixed seed", func() {
			again, err := scene.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Field.Points()).To(Equal(sc.Field.Points()))
			Expect(again.Seed()).To(Equal(int64(7)))
		})

		It("accepts an empty field", func() {
			empty, err := scene.New(cfg, scene.WithPoints([]geom.Vec3{}))
			Expect(err).NotTo(HaveOccurred())
			empty.Update(1)
			Expect(empty.Lines.Edges).To(BeEmpty())
			Expect(empty.Frame().WorldLines()).To(BeEmpty())
		})

		Context("with an invalid config", func() {
			It("returns an InitError and no scene", func() {
				cfg.Pointer.Smoothing = 0
				s, err := scene.New(cfg)
				Expect(s).To(BeNil())
				var ie *scene.InitError
				Expect(errors.As(err, &ie)).To(BeTrue())
				Expect(ie.Stage).To(Equal("config"))
				Expect(errors.Is(err, config.ErrInvalid)).To(BeTrue())
			})
		})
	})

	Describe("pointer input", func() {
		It("turns a horizontal offset into a y-rotation target only", func() {
			sc.PointerMoved(640+100, 360)
			Expect(sc.Context().Pointer.OffsetX).To(BeNumerically("==", 100))
			Expect(sc.Context().Pointer.OffsetY).To(BeNumerically("==", 0))

			sc.Update(0)
			Expect(sc.Target().Y).To(BeNumerically("~", 0.1, 1e-12))
			Expect(sc.Target().X).To(BeNumerically("==", 0))
		})

		It("eases the ornament y rotation steadily upward", func() {
			sc.PointerMoved(640+100, 360)
			prev := 0.0
			for i := 1; i <= 300; i++ {
				sc.Update(float64(i) / 60)
				rotY := sc.Core.Transform.Rotation.Y
				Expect(rotY).To(BeNumerically(">", prev))
				prev = rotY
			}
		})

		It("keeps turning under drift when the pointer is centred", func() {
			sc.PointerMoved(640, 360)
			sc.Update(0)
			first := sc.Core.Transform.Rotation
			sc.Update(1.0 / 60)
			Expect(sc.Core.Transform.Rotation.X).NotTo(Equal(first.X))
			Expect(sc.Core.Transform.Rotation.Y).NotTo(Equal(first.Y))
		})
	})

	Describe("update", func() {
		It("rotates the field by elapsed time and the lines with it", func() {
			sc.Update(10)
			Expect(sc.Field.Rotation.Y).To(BeNumerically("~", 0.5, 1e-9))
			Expect(sc.Field.Rotation.X).To(BeNumerically("~", 0.2, 1e-9))
			Expect(sc.Lines.Transform.Rotation).To(Equal(sc.Field.Rotation))
		})

		It("bobs the ornament about its base", func() {
			sc.Update(0)
			Expect(sc.Core.Transform.Position).To(Equal(sc.Core.Base))
			sc.Update(1.5707963267948966)
			Expect(sc.Core.Transform.Position.Y - sc.Core.Base.Y).To(BeNumerically("~", config.DefaultBobAmplitude, 1e-12))
		})

		It("builds edges from local coordinates", func() {
			s, err := scene.New(cfg, scene.WithPoints(triple))
			Expect(err).NotTo(HaveOccurred())
			s.Update(42)
			Expect(s.Lines.Edges).To(Equal([]graph.Edge{{I: 0, J: 1}}))
			Expect(s.Lines.Segments).To(Equal([]float32{0, 0, 0, 1, 0, 0}))
		})

		It("rebuilds only once under the once policy", func() {
			cfg.Graph.Recompute = "once"
			s, err := scene.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 5; i++ {
				s.Update(float64(i))
			}
			Expect(s.Builder().Builds()).To(Equal(1))
		})
	})

	Describe("resize", func() {
		It("can be called before the first frame", func() {
			sc.Resized(500, 800)
			Expect(sc.Core.Base).To(Equal(geom.Vec3{Y: 2, Z: -2}))
			Expect(sc.Camera.Aspect).To(BeNumerically("~", 0.625, 1e-12))
			sc.Update(0)
			Expect(sc.Core.Transform.Position).To(Equal(geom.Vec3{Y: 2, Z: -2}))
		})

		It("keeps the pointer centre in step with the viewport", func() {
			sc.Resized(400, 400)
			sc.PointerMoved(200, 250)
			Expect(sc.Context().Pointer.OffsetX).To(BeNumerically("==", 0))
			Expect(sc.Context().Pointer.OffsetY).To(BeNumerically("==", 50))
		})
	})

	Describe("frame", func() {
		It("places the line set in world space with the field rotation", func() {
			s, err := scene.New(cfg, scene.WithPoints(triple))
			Expect(err).NotTo(HaveOccurred())
			s.Update(0)
			lines := s.Frame().WorldLines()
			Expect(lines).To(HaveLen(1))
			Expect(lines[0].B.X).To(BeNumerically("~", 1, 1e-9))

			s.Update(31.41592653589793) // field y rotation = pi/2
			lines = s.Frame().WorldLines()
			Expect(lines[0].B.X).To(BeNumerically("~", 0, 1e-6))
			pts := s.Frame().WorldPoints()
			Expect(pts[1].X).To(BeNumerically("~", lines[0].B.X, 1e-6))
			Expect(pts[1].Z).To(BeNumerically("~", lines[0].B.Z, 1e-6))
		})

		It("exposes both ornament wireframes", func() {
			sc.Update(0)
			f := sc.Frame()
			Expect(f.Shapes).To(HaveLen(2))
			Expect(f.WorldShape(0)).To(HaveLen(30))
			Expect(f.ShapeSwatch(0)).To(Equal(f.Palette.Core))
			Expect(f.ShapeSwatch(1)).To(Equal(f.Palette.Knot))
		})
	})

	Describe("Run", func() {
		It("renders one frame per refresh and releases on stop", func() {
			h := &scene.Headless{}
			sched := loop.New(&loop.StepClock{Step: 1.0 / 60})
			err := scene.Run(context.Background(), sc, h, sched, &loop.CountedFrames{N: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(h.Frames).To(Equal(10))
			Expect(h.Released).To(BeTrue())
			Expect(sched.State()).To(Equal(loop.Stopped))
			Expect(h.Last.Elapsed).To(BeNumerically("~", 9.0/60, 1e-12))
		})

		It("stops on a render failure and still releases", func() {
			r := &failingRenderer{}
			sched := loop.New(&loop.StepClock{Step: 1.0 / 60})
			err := scene.Run(context.Background(), sc, r, sched, &loop.CountedFrames{N: 10})
			Expect(err).To(MatchError(scene.ErrSurfaceUnavailable))
			Expect(r.released).To(Equal(1))
			Expect(sched.Frames()).To(Equal(1))
		})
	})
})
