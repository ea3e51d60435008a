package viz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/loop"
	"github.com/san-kum/corefield/internal/scene"
)

var presetInfo = map[string]string{
	"default": "80 points, 3.5 link distance",
	"dense":   "200 points on a spatial grid",
	"sparse":  "40 points, long links",
	"calm":    "slow field, gentle core",
	"mobile":  "narrow layout, fewer points",
	"static":  "edges computed once",
}

// menu picks a preset and then hands over to the live scene model.
type menu struct {
	presets []string
	cursor  int
	log     *zap.Logger
	opts    []scene.Option

	live  *Model
	sched *loop.Scheduler
	err   error
}

func newMenu(log *zap.Logger, opts ...scene.Option) *menu {
	return &menu{presets: config.ListPresets(), log: log, opts: opts}
}

func (m *menu) Init() tea.Cmd { return nil }

func (m *menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.live != nil {
		next, cmd := m.live.Update(msg)
		live := next.(Model)
		m.live = &live
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(m.presets)
		case "up", "k":
			m.cursor = (m.cursor - 1 + len(m.presets)) % len(m.presets)
		case "enter", " ":
			return m, m.start()
		}
	}
	return m, nil
}

func (m *menu) start() tea.Cmd {
	name := m.presets[m.cursor]
	cfg := config.GetPreset(name)
	sc, err := scene.New(cfg, append(m.opts, scene.WithLogger(m.log))...)
	if err != nil {
		m.err = err
		return tea.Quit
	}
	UseScenePalette(sc.Palette)

	m.sched = loop.New(loop.NewMonotonicClock(), loop.WithLogger(m.log))
	live, err := NewModel(sc, m.sched, cfg, m.log)
	if err != nil {
		m.err = err
		return tea.Quit
	}
	m.live = &live
	m.log.Info("preset selected", zap.String("preset", name))
	// Size the canvas to the real terminal before the first tick.
	return tea.Batch(tea.WindowSize(), live.Init())
}

func (m *menu) View() string {
	if m.live != nil {
		return m.live.View()
	}
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	var s strings.Builder
	s.WriteString(GradientText("COREFIELD", CurrentTheme.Points, CurrentTheme.Core) + "\n")
	s.WriteString(Separator(40) + "\n\n")
	for i, name := range m.presets {
		line := fmt.Sprintf("%-10s %s", name, presetInfo[name])
		if i == m.cursor {
			s.WriteString(menuCursor.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + menuItem.Render(line) + "\n")
		}
	}
	s.WriteString("\n" + menuHint.Render("↑↓ select  enter start  q quit") + "\n")
	return s.String()
}

// RunInteractive shows a preset menu, then the chosen scene.
func RunInteractive(ctx context.Context, log *zap.Logger, opts ...scene.Option) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return scene.ErrNoRenderTarget
	}
	m := newMenu(log, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if m.sched != nil {
		m.sched.Stop()
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if m.err != nil {
		return m.err
	}
	if m.live != nil && m.live.err != nil {
		return m.live.err
	}
	return nil
}
