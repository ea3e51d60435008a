package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/gui"
	"github.com/san-kum/corefield/internal/loop"
	"github.com/san-kum/corefield/internal/scene"
	"github.com/san-kum/corefield/internal/tui"
	"github.com/san-kum/corefield/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	// scene overrides
	seed      int64
	count     int
	threshold float64
	strategy  string
	width     int
	height    int
	fps       int
	// replay a stored field
	fromID string
	// tui
	plain bool
	pick  bool
	// headless runs
	frames int
	sweep  float64
	runs   int
	// bench
	benchReps int
	// tune
	tuneParam  string
	tuneRange  string
	tuneMetric string
	tuneTarget float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "corefield",
		Short:         "animated point field with a pointer-steered core",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".corefield", "snapshot directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "log file (default stderr, corefield.log for tui)")
	pf.Int64Var(&seed, "seed", 0, "field seed (0 = time based)")
	pf.IntVar(&count, "count", config.DefaultCount, "number of points")
	pf.Float64Var(&threshold, "threshold", config.DefaultThreshold, "link distance")
	pf.StringVar(&strategy, "strategy", config.DefaultGraphStrategy, "edge builder (pairwise, grid)")
	pf.IntVar(&width, "width", config.DefaultWidth, "initial viewport width")
	pf.IntVar(&height, "height", config.DefaultHeight, "initial viewport height")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "show the scene in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&fromID, "from", "", "replay the field of a stored snapshot")
	rootCmd.Flags().StringVar(&fromID, "from", "", "replay the field of a stored snapshot")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "show the scene in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&fromID, "from", "", "replay the field of a stored snapshot")
	tuiCmd.Flags().BoolVar(&plain, "plain", false, "stream frames without taking over the terminal")
	tuiCmd.Flags().BoolVar(&pick, "pick", false, "choose a preset from a menu first")
	tuiCmd.Flags().IntVar(&frames, "frames", 0, "stop after n frames in --plain mode (0 = until interrupted)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run the scene headless and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&frames, "frames", 1200, "frames to simulate")
	statsCmd.Flags().Float64Var(&sweep, "sweep", 200, "radius of the synthetic pointer circle in pixels")
	statsCmd.Flags().IntVar(&runs, "runs", 1, "average over this many consecutive seeds")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "search a parameter range for a target metric value",
		Example: `  corefield tune --param threshold --range 2:5:0.25 --metric mean_edges --target 60
  corefield tune --param smoothing --range 0.02,0.05,0.1 --metric tracking_error`,
		Args: cobra.NoArgs,
		RunE: runTune,
	}
	tuneCmd.Flags().StringVar(&tuneParam, "param", "threshold", "parameter to vary")
	tuneCmd.Flags().StringVar(&tuneRange, "range", "2:5:0.5", "values as from:to:step or a comma list")
	tuneCmd.Flags().StringVar(&tuneMetric, "metric", "mean_edges", "metric to match")
	tuneCmd.Flags().Float64Var(&tuneTarget, "target", 0, "value the metric should reach")
	tuneCmd.Flags().IntVar(&frames, "frames", 300, "frames per trial")
	tuneCmd.Flags().Float64Var(&sweep, "sweep", 200, "radius of the synthetic pointer circle in pixels")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare edge builder strategies",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchReps, "reps", 50, "builds per measurement")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "save the generated field, its edges and an svg frame",
		Args:  cobra.NoArgs,
		RunE:  saveSnapshot,
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 60, "frames to advance before capturing")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		Args:  cobra.NoArgs,
		RunE:  listSnapshots,
	}

	exportCmd := &cobra.Command{
		Use:   "export [snapshot_id]",
		Short: "print a snapshot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSnapshot,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "init [path]",
			Short: "write the resolved configuration to a yaml file",
			Args:  cobra.MaximumNArgs(1),
			RunE:  initConfig,
		},
		&cobra.Command{
			Use:   "show",
			Short: "print the resolved configuration",
			Args:  cobra.NoArgs,
			RunE:  showConfig,
		},
	)

	rootCmd.AddCommand(guiCmd, tuiCmd, statsCmd, tuneCmd, benchCmd, snapshotCmd, listCmd, exportCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// frameCount reads --frames from the invoked command; several commands share
// the flag with different defaults.
func frameCount(cmd *cobra.Command) int {
	n, err := cmd.Flags().GetInt("frames")
	if err != nil {
		return frames
	}
	return n
}

// hosted runs a host and turns a missing render target into a quiet exit.
func hosted(log *zap.Logger, err error) error {
	if errors.Is(err, scene.ErrNoRenderTarget) {
		log.Debug("no render target, nothing to animate")
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, opts, err := resolveScene(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	return hosted(log, gui.Run(cmd.Context(), cfg, log, opts...))
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, opts, err := resolveScene(cmd)
	if err != nil {
		return err
	}

	if plain {
		log, err := newLogger(cfg, "")
		if err != nil {
			return err
		}
		defer log.Sync()
		return hosted(log, runPlain(cmd.Context(), cfg, log, opts, frameCount(cmd)))
	}

	log, err := newLogger(cfg, config.DefaultTUILogFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	if pick {
		return hosted(log, viz.RunInteractive(cmd.Context(), log, opts...))
	}
	return hosted(log, viz.Run(cmd.Context(), cfg, log, opts...))
}

// runPlain streams text frames to stdout at the configured rate.
func runPlain(ctx context.Context, cfg *config.Config, log *zap.Logger, opts []scene.Option, limit int) error {
	cols := cfg.Viewport.Width / cfg.Render.CellWidth
	rows := cfg.Viewport.Height / cfg.Render.CellHeight
	cfg.Viewport.Width, cfg.Viewport.Height = cols*cfg.Render.CellWidth, rows*cfg.Render.CellHeight

	sc, err := scene.New(cfg, append(opts, scene.WithLogger(log))...)
	if err != nil {
		return err
	}
	r := tui.NewLiveRenderer(os.Stdout, cols, rows, 0)
	if err := r.Start(); err != nil {
		return err
	}

	ticker := loop.NewTickerFrames(cfg.Render.FPS)
	defer ticker.Close()
	var source loop.FrameSource = ticker
	if limit > 0 {
		source = &limitedFrames{FrameSource: ticker, left: limit}
	}

	sched := loop.New(loop.NewMonotonicClock(), loop.WithLogger(log))
	return scene.Run(ctx, sc, r, sched, source)
}

// limitedFrames closes after a fixed number of refreshes from the wrapped
// source.
type limitedFrames struct {
	loop.FrameSource
	left int
}

func (l *limitedFrames) Wait(ctx context.Context) bool {
	if l.left <= 0 {
		return false
	}
	l.left--
	return l.FrameSource.Wait(ctx)
}
