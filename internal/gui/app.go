package gui

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/loop"
	"github.com/san-kum/corefield/internal/scene"
)

// HUD colours, independent of the scene palette.
var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

// App hosts a scene in a raylib window. It is the scene's Renderer and the
// scheduler's FrameSource.
type App struct {
	Scene   *scene.Scene
	Camera  rl.Camera3D
	ShowHUD bool

	pointSize float32
	log       *zap.Logger
}

// input is everything the host reads from raylib between two frames.
type input struct {
	closing   bool
	resized   bool
	width     int
	height    int
	mouse     rl.Vector2
	toggleHUD bool
}

// initWindow opens a resizable window sized from the config. It reports
// scene.ErrNoRenderTarget when no display is available.
func initWindow(cfg *config.Config, title string) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Viewport.Width), int32(cfg.Viewport.Height), title)
	if !rl.IsWindowReady() {
		return scene.ErrNoRenderTarget
	}
	rl.SetTargetFPS(int32(cfg.Render.FPS))
	rl.SetExitKey(0)
	return nil
}

func NewApp(sc *scene.Scene, log *zap.Logger) *App {
	return &App{
		Scene:     sc,
		Camera:    cameraFor(sc.Frame()),
		pointSize: 0.025,
		log:       log,
	}
}

// Run opens the window, builds the scene and blocks until the window is
// closed or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, opts ...scene.Option) error {
	if err := initWindow(cfg, "corefield"); err != nil {
		return err
	}
	sc, err := scene.New(cfg, append(opts, scene.WithLogger(log))...)
	if err != nil {
		rl.CloseWindow()
		return err
	}
	sc.Resized(rl.GetScreenWidth(), rl.GetScreenHeight())

	app := NewApp(sc, log)
	sched := loop.New(loop.ClockFunc(rl.GetTime), loop.WithLogger(log))
	return scene.Run(ctx, sc, app, sched, app)
}

// Wait polls input for the next frame. Frame pacing comes from
// rl.SetTargetFPS inside EndDrawing.
func (a *App) Wait(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	return a.apply(a.poll())
}

func (a *App) poll() input {
	in := input{
		closing:   rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ),
		mouse:     rl.GetMousePosition(),
		toggleHUD: rl.IsKeyPressed(rl.KeyH),
	}
	if rl.IsWindowResized() {
		in.resized = true
		in.width, in.height = rl.GetScreenWidth(), rl.GetScreenHeight()
	}
	return in
}

// apply forwards host input to the scene and reports whether to keep going.
func (a *App) apply(in input) bool {
	if in.closing {
		return false
	}
	if in.resized {
		st := a.Scene.Context().Viewport
		a.Scene.Resized(in.width, in.height)
		if now := a.Scene.Context().Viewport; now.Narrow != st.Narrow {
			a.log.Info("layout changed", zap.Int("width", now.Width), zap.Bool("narrow", now.Narrow))
		}
	}
	a.Scene.PointerMoved(float64(in.mouse.X), float64(in.mouse.Y))
	if in.toggleHUD {
		a.ShowHUD = !a.ShowHUD
	}
	return true
}

func (a *App) Render(f scene.Frame) error {
	if !rl.IsWindowReady() {
		return scene.ErrSurfaceUnavailable
	}
	a.Camera = cameraFor(f)

	rl.BeginDrawing()
	rl.ClearBackground(toColor(f.Palette.Background))

	rl.BeginMode3D(a.Camera)
	a.drawLines(f)
	a.drawPoints(f)
	a.drawCore(f)
	rl.EndMode3D()

	if a.ShowHUD {
		a.drawHUD(f)
	}
	rl.EndDrawing()
	return nil
}

func (a *App) Release() error {
	rl.CloseWindow()
	a.log.Debug("window closed")
	return nil
}

func (a *App) drawHUD(f scene.Frame) {
	lines := []string{
		fmt.Sprintf("%d FPS", rl.GetFPS()),
		fmt.Sprintf("%d points  %d edges", len(f.Points), len(f.Segments)/6),
		fmt.Sprintf("%dx%d narrow=%t", f.Viewport.Width, f.Viewport.Height, f.Viewport.Narrow),
	}
	for i, s := range lines {
		col := ColText
		if i > 0 {
			col = ColTextDim
		}
		rl.DrawText(s, 20, int32(20+i*18), 14, col)
	}
}
