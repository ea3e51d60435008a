package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/corefield/internal/analysis"
	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/ensemble"
	"github.com/san-kum/corefield/internal/field"
	"github.com/san-kum/corefield/internal/graph"
	"github.com/san-kum/corefield/internal/metrics"
)

func runStats(cmd *cobra.Command, args []string) error {
	cfg, opts, err := resolveScene(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	p := ensemble.Params{Frames: frameCount(cmd), Radius: sweep, Log: log, Opts: opts}
	if runs > 1 {
		return ensembleStats(cmd, cfg, p)
	}
	run, err := ensemble.Simulate(cmd.Context(), cfg, p)
	if err != nil {
		return err
	}

	values := run.Values()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "seed\t%d\n", run.Scene.Seed())
	fmt.Fprintf(w, "frames\t%d\n", run.Sched.Frames())
	fmt.Fprintf(w, "points\t%d\n", run.Scene.Field.Len())
	for _, name := range metrics.Names(values) {
		fmt.Fprintf(w, "%s\t%.4f\n", name, values[name])
	}
	w.Flush()

	if len(run.Gaps) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(run.Gaps,
			asciigraph.Height(10), asciigraph.Width(70),
			asciigraph.Caption("rotation gap (rad)")))
		fmt.Println()
		fmt.Println(asciigraph.Plot(run.Bobs,
			asciigraph.Height(8), asciigraph.Width(70),
			asciigraph.Caption("bob offset")))
	}

	rate := float64(cfg.Render.FPS)
	period := analysis.MeanPeriod(analysis.Crossings(run.Times, run.Bobs, 0))
	fmt.Printf("\nbob: dominant %.4f Hz, mean period %.3f s\n",
		analysis.DominantFrequency(run.Bobs, rate), period)

	portrait := &analysis.PhasePortrait2D{}
	for i := range run.RotX {
		portrait.Add(run.RotY[i], run.RotX[i])
	}
	fmt.Println("\nornament rotation (y across, x up)")
	fmt.Println(analysis.PhasePortraitToASCII(portrait, 60, 16))
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	reps := benchReps
	if reps <= 0 {
		reps = 1
	}

	builds := map[graph.Strategy]func([]field.Point, float64) []graph.Edge{
		graph.Pairwise: graph.Build,
		graph.Grid:     graph.BuildGrid,
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINTS\tSTRATEGY\tEDGES\tPER BUILD")
	for _, n := range []int{80, 200, 400, 800} {
		pts := field.Generate(rand.New(rand.NewSource(1)), n, cfg.Field.Spread)
		for _, st := range []graph.Strategy{graph.Pairwise, graph.Grid} {
			build := builds[st]
			var edges []graph.Edge
			start := time.Now()
			for r := 0; r < reps; r++ {
				edges = build(pts, cfg.Graph.Threshold)
			}
			per := time.Since(start) / time.Duration(reps)
			fmt.Fprintf(w, "%d\t%s\t%d\t%v\n", n, st, len(edges), per)
		}
	}
	return w.Flush()
}

// ensembleStats averages the metrics of --runs seeds starting at the
// configured one.
func ensembleStats(cmd *cobra.Command, cfg *config.Config, p ensemble.Params) error {
	start := cfg.Seed
	if start == 0 {
		start = time.Now().UnixNano()
	}
	results, err := ensemble.New(cfg, runs, start).Run(cmd.Context(), p)
	if err != nil {
		return err
	}

	names := metrics.Names(results[0].Values())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SEED\t%s\n", strings.ToUpper(strings.Join(names, "\t")))
	for _, r := range results {
		values := r.Values()
		fmt.Fprintf(w, "%d", r.Scene.Seed())
		for _, n := range names {
			fmt.Fprintf(w, "\t%.4f", values[n])
		}
		fmt.Fprintln(w)
	}
	mean := ensemble.Mean(results)
	fmt.Fprint(w, "mean")
	for _, n := range names {
		fmt.Fprintf(w, "\t%.4f", mean[n])
	}
	fmt.Fprintln(w)
	return w.Flush()
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	values, err := parseRange(tuneRange)
	if err != nil {
		return err
	}
	gs, err := ensemble.NewGridSearch([]string{tuneParam}, [][]float64{values})
	if err != nil {
		return err
	}

	res, err := gs.Search(cmd.Context(), cfg, ensemble.Params{Frames: frameCount(cmd), Radius: sweep, Log: log}, tuneMetric, tuneTarget)
	if err != nil {
		return err
	}
	if res.Params == nil {
		return fmt.Errorf("no valid %s in %v", tuneParam, values)
	}
	fmt.Printf("%s = %g gives %s %.4f (target %g, %d tried)\n",
		tuneParam, res.Params[tuneParam], tuneMetric, res.Value, tuneTarget, res.Tried)
	return nil
}

// parseRange reads "from:to:step" or a comma separated list.
func parseRange(s string) ([]float64, error) {
	if parts := strings.Split(s, ":"); len(parts) == 3 {
		var lo, hi, step float64
		for i, dst := range []*float64{&lo, &hi, &step} {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("range %q: %w", s, err)
			}
			*dst = v
		}
		if step <= 0 || hi < lo {
			return nil, fmt.Errorf("range %q: need from <= to and step > 0", s)
		}
		var out []float64
		for i := 0; ; i++ {
			v := lo + float64(i)*step
			if v > hi+step*1e-9 {
				break
			}
			out = append(out, v)
		}
		return out, nil
	}

	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}
