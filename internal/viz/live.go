package viz

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/loop"
	"github.com/san-kum/corefield/internal/scene"
)

const (
	statsWidth      = 40
	historyCapacity = 120
	defaultCols     = 80
	defaultRows     = 24
)

type TickMsg time.Time

// canvasRenderer rasterises frames into a braille canvas. The bubbletea model
// turns the canvas into text in View.
type canvasRenderer struct {
	canvas   *Canvas
	edges    []float64
	prims    int
	released bool
	log      *zap.Logger
}

func (r *canvasRenderer) Render(f scene.Frame) error {
	r.canvas.Clear()
	r.prims = DrawFrame(r.canvas, f)
	r.edges = pushHistory(r.edges, float64(len(f.Segments)/6))
	return nil
}

func (r *canvasRenderer) Release() error {
	r.released = true
	r.log.Debug("terminal canvas released")
	return nil
}

func pushHistory(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

// Model hosts a scene in the terminal. Each TickMsg fires one scheduler tick.
type Model struct {
	sc    *scene.Scene
	sched *loop.Scheduler
	r     *canvasRenderer
	log   *zap.Logger

	cellW, cellH int
	fps          int
	cols, rows   int
	gaps         []float64
	showStats    bool
	showHelp     bool
	err          error
}

// NewModel attaches sc to sched with a terminal canvas as the renderer.
func NewModel(sc *scene.Scene, sched *loop.Scheduler, cfg *config.Config, log *zap.Logger) (Model, error) {
	r := &canvasRenderer{canvas: NewCanvas(0, 0), log: log}
	if err := scene.Attach(sc, r, sched); err != nil {
		return Model{}, err
	}
	m := Model{
		sc:        sc,
		sched:     sched,
		r:         r,
		log:       log,
		cellW:     cfg.Render.CellWidth,
		cellH:     cfg.Render.CellHeight,
		fps:       cfg.Render.FPS,
		showStats: true,
	}
	m.layout(defaultCols, defaultRows)
	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// layout sizes the canvas for a cols x rows terminal and reports the canvas
// size to the scene in cell-pixel units.
func (m *Model) layout(cols, rows int) {
	m.cols, m.rows = cols, rows
	cw, ch := cols, rows-1
	if m.showStats && cols > statsWidth+20 {
		cw = cols - statsWidth
	}
	if ch < 1 {
		ch = 1
	}
	m.r.canvas.Resize(cw, ch)
	m.sc.Resized(cw*m.cellW, ch*m.cellH)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.sched.Stop()
			return m, tea.Quit
		case "t":
			NextTheme()
		case "s":
			m.showStats = !m.showStats
			m.layout(m.cols, m.rows)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
	case tea.MouseMsg:
		// Pointer at the cell centre, in the same units as the viewport.
		x := float64(msg.X*m.cellW) + float64(m.cellW)/2
		y := float64(msg.Y*m.cellH) + float64(m.cellH)/2
		m.sc.PointerMoved(x, y)
	case TickMsg:
		if err := m.sched.Fire(); err != nil {
			if errors.Is(err, loop.ErrStopped) {
				return m, nil
			}
			m.err = err
			m.sched.Stop()
			return m, tea.Quit
		}
		m.gaps = pushHistory(m.gaps, m.rotationGap())
		return m, m.tick()
	}
	return m, nil
}

// rotationGap is how far the ornament still is from its pointer target.
func (m Model) rotationGap() float64 {
	t, rot := m.sc.Target(), m.sc.Core.Transform.Rotation
	return math.Hypot(t.X-rot.X, t.Y-rot.Y)
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("render failed: %v\n", m.err)
	}
	canvasView := m.r.canvas.Render(CurrentTheme.LayerStyles())
	if !m.showStats || m.r.canvas.Width == m.cols {
		return canvasView + m.helpLine()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.statsView()) + "\n" + m.helpLine()
}

func (m Model) statsView() string {
	st := m.sc.Context().Viewport
	layout := "wide"
	if st.Narrow {
		layout = "narrow"
	}
	edges := 0.0
	if n := len(m.r.edges); n > 0 {
		edges = m.r.edges[n-1]
	}

	var s strings.Builder
	s.WriteString(GradientText("COREFIELD", CurrentTheme.Points, CurrentTheme.Core) + "\n\n")
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", m.sc.Elapsed()))
	row("Frames", fmt.Sprintf("%d", m.sched.Frames()))
	row("Points", fmt.Sprintf("%d", m.sc.Field.Len()))
	row("Edges", fmt.Sprintf("%.0f", edges))
	row("Layout", fmt.Sprintf("%s %dx%d", layout, st.Width, st.Height))
	row("Theme", CurrentTheme.Name)

	if len(m.r.edges) > 1 {
		chart := asciigraph.Plot(m.r.edges, asciigraph.Height(4), asciigraph.Width(statsWidth-12), asciigraph.Caption("edges"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.gaps) > 1 {
		chart := asciigraph.Plot(m.gaps, asciigraph.Height(3), asciigraph.Width(statsWidth-12), asciigraph.Caption("rotation gap"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	return statsStyle.Render(s.String())
}

func (m Model) helpLine() string {
	if m.showHelp {
		return helpStyle.Render("q quit  t theme  s stats  ? help  mouse steers the core")
	}
	return helpStyle.Render("? help")
}

// Run builds the scene and shows it in the terminal until the user quits or ctx
// is cancelled. Without a terminal on stdout there is nothing to draw on and
// scene.ErrNoRenderTarget is returned.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, opts ...scene.Option) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return scene.ErrNoRenderTarget
	}
	sc, err := scene.New(cfg, append(opts, scene.WithLogger(log))...)
	if err != nil {
		return err
	}
	UseScenePalette(sc.Palette)

	sched := loop.New(loop.NewMonotonicClock(), loop.WithLogger(log))
	m, err := NewModel(sc, sched, cfg, log)
	if err != nil {
		return err
	}
	return runProgram(ctx, m, sched)
}

func runProgram(ctx context.Context, m tea.Model, sched *loop.Scheduler) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	sched.Stop()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
