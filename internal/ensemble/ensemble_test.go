package ensemble

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/corefield/internal/config"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Seed = 3
	cfg.Field.Count = 25
	return cfg
}

func TestSimulate(t *testing.T) {
	run, err := Simulate(context.Background(), smallConfig(), Params{Frames: 90, Radius: 150})
	if err != nil {
		t.Fatal(err)
	}
	if run.Sched.Frames() != 90 || run.Last.Frames != 90 {
		t.Fatalf("frames: scheduler %d, renderer %d", run.Sched.Frames(), run.Last.Frames)
	}
	if !run.Last.Released {
		t.Error("renderer not released")
	}
	if run.Times[0] != 0 || run.Times[1] != 1.0/60 {
		t.Errorf("unexpected frame times %v, %v", run.Times[0], run.Times[1])
	}
	if run.RotY[89] <= run.RotY[0] {
		t.Error("ornament did not turn toward the pointer")
	}
	if _, ok := run.Values()["mean_edges"]; !ok {
		t.Error("mean_edges missing")
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Simulate(ctx, smallConfig(), Params{Frames: 10}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestEnsembleSeeds(t *testing.T) {
	runs, err := New(smallConfig(), 4, 10).Run(context.Background(), Params{Frames: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 4 {
		t.Fatalf("got %d runs", len(runs))
	}
	for i, r := range runs {
		if r.Scene.Seed() != 10+int64(i) {
			t.Errorf("run %d seed %d", i, r.Scene.Seed())
		}
	}

	mean := Mean(runs)
	var sum float64
	for _, r := range runs {
		sum += r.Values()["mean_edges"]
	}
	if math.Abs(mean["mean_edges"]-sum/4) > 1e-9 {
		t.Errorf("mean_edges %v, want %v", mean["mean_edges"], sum/4)
	}
}

func TestGridSearchPicksClosest(t *testing.T) {
	gs, err := NewGridSearch([]string{"threshold"}, [][]float64{{0.01, 100}})
	if err != nil {
		t.Fatal(err)
	}
	cfg := smallConfig()
	res, err := gs.Search(context.Background(), cfg, Params{Frames: 2}, "mean_edges", 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Tried != 2 {
		t.Errorf("tried %d", res.Tried)
	}
	if res.Params["threshold"] != 0.01 || res.Value != 0 {
		t.Errorf("got %v = %v, want threshold 0.01 with no edges", res.Params, res.Value)
	}

	// every pair links at threshold 100
	res, err = gs.Search(context.Background(), cfg, Params{Frames: 2}, "mean_edges", 300)
	if err != nil {
		t.Fatal(err)
	}
	if res.Params["threshold"] != 100 || res.Value != 300 {
		t.Errorf("got %v = %v, want threshold 100 with 300 edges", res.Params, res.Value)
	}
}

func TestGridSearchSkipsInvalid(t *testing.T) {
	gs, err := NewGridSearch([]string{"smoothing"}, [][]float64{{0, 2, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	res, err := gs.Search(context.Background(), smallConfig(), Params{Frames: 1}, "tracking_error", 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Tried != 1 || res.Params["smoothing"] != 0.5 {
		t.Errorf("got %+v", res)
	}
}

func TestNewGridSearchRejects(t *testing.T) {
	if _, err := NewGridSearch([]string{"gravity"}, [][]float64{{1}}); err == nil {
		t.Error("unknown parameter accepted")
	}
	if _, err := NewGridSearch([]string{"count"}, nil); err == nil {
		t.Error("mismatched ranges accepted")
	}
}
