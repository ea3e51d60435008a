package main

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/loop"
	"github.com/san-kum/corefield/internal/scene"
)

func testCmd(t *testing.T) *cobra.Command {
	t.Helper()
	preset, configFile, fromID = "", "", ""
	cmd := &cobra.Command{Use: "test"}
	f := cmd.Flags()
	f.IntVar(&count, "count", config.DefaultCount, "")
	f.Float64Var(&threshold, "threshold", config.DefaultThreshold, "")
	f.StringVar(&strategy, "strategy", config.DefaultGraphStrategy, "")
	f.Int64Var(&seed, "seed", 0, "")
	f.IntVar(&width, "width", config.DefaultWidth, "")
	f.IntVar(&height, "height", config.DefaultHeight, "")
	f.IntVar(&fps, "fps", config.DefaultFPS, "")
	f.StringVar(&logLevel, "log-level", "", "")
	f.StringVar(&logFile, "log-file", "", "")
	return cmd
}

func TestResolveConfigLayers(t *testing.T) {
	cmd := testCmd(t)
	preset = "sparse"
	if err := cmd.Flags().Set("threshold", "2"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	want := config.GetPreset("sparse")
	if cfg.Field.Count != want.Field.Count {
		t.Errorf("count: got %d, want preset value %d", cfg.Field.Count, want.Field.Count)
	}
	if cfg.Graph.Threshold != 2 {
		t.Errorf("threshold: got %v, want flag value 2", cfg.Graph.Threshold)
	}
}

func TestResolveConfigUnknownPreset(t *testing.T) {
	cmd := testCmd(t)
	preset = "nope"
	if _, err := resolveConfig(cmd); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestResolveConfigRejectsBadFlags(t *testing.T) {
	cmd := testCmd(t)
	if err := cmd.Flags().Set("strategy", "octree"); err != nil {
		t.Fatal(err)
	}
	_, err := resolveConfig(cmd)
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("got %v, want ErrInvalid", err)
	}
}

func TestParseRange(t *testing.T) {
	got, err := parseRange("2:3:0.25")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{2, 2.25, 2.5, 2.75, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] got %v, want %v", i, got[i], want[i])
		}
	}

	got, err = parseRange("0.02, 0.1")
	if err != nil || len(got) != 2 || got[1] != 0.1 {
		t.Errorf("list: got %v, %v", got, err)
	}

	for _, bad := range []string{"1:0:1", "1:2:0", "a,b", "1:x:1"} {
		if _, err := parseRange(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestLimitedFrames(t *testing.T) {
	src := &limitedFrames{FrameSource: &loop.CountedFrames{N: 10}, left: 3}
	n := 0
	for src.Wait(context.Background()) {
		n++
	}
	if n != 3 {
		t.Fatalf("got %d frames, want 3", n)
	}
}

func TestHostedQuietOnMissingTarget(t *testing.T) {
	log := zap.NewNop()
	if err := hosted(log, scene.ErrNoRenderTarget); err != nil {
		t.Errorf("missing target: got %v", err)
	}
	if err := hosted(log, context.Canceled); err != nil {
		t.Errorf("cancel: got %v", err)
	}
	if err := hosted(log, scene.ErrSurfaceUnavailable); !errors.Is(err, scene.ErrSurfaceUnavailable) {
		t.Errorf("surface: got %v", err)
	}
}
