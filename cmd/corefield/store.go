package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/ensemble"
	"github.com/san-kum/corefield/internal/export"
	"github.com/san-kum/corefield/internal/storage"
)

const (
	svgWidth  = 800
	svgHeight = 600
)

func saveSnapshot(cmd *cobra.Command, args []string) error {
	cfg, opts, err := resolveScene(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	run, err := ensemble.Simulate(cmd.Context(), cfg, ensemble.Params{Frames: frameCount(cmd), Log: log, Opts: opts})
	if err != nil {
		return err
	}
	sc := run.Scene
	frame := run.Last.Last
	if run.Last.Frames == 0 {
		frame = sc.Frame()
	}

	name := preset
	if name == "" {
		name = "custom"
	}
	st := storage.New(dataDir)
	id, err := st.Save(storage.Snapshot{
		Meta: storage.Metadata{
			Preset:  name,
			Seed:    sc.Seed(),
			Elapsed: sc.Elapsed(),
			Frames:  run.Sched.Frames(),
			Points:  sc.Field.Len(),
			Edges:   len(sc.Lines.Edges),
			Width:   frame.Viewport.Width,
			Height:  frame.Viewport.Height,
			Narrow:  frame.Viewport.Narrow,
			Metrics: run.Values(),
			Config:  cfg,
		},
		Points: sc.Field.Points(),
		Edges:  sc.Lines.Edges,
		SVG:    export.FrameToSVG(frame, svgWidth, svgHeight),
	})
	if err != nil {
		return err
	}

	fmt.Printf("saved %s (%d points, %d edges)\n", id, sc.Field.Len(), len(sc.Lines.Edges))
	fmt.Printf("frame: %s\n", st.FramePath(id))
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	snaps, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("no snapshots")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tSEED\tPOINTS\tEDGES\tVIEWPORT\tCREATED")
	for _, m := range snaps {
		class := "wide"
		if m.Narrow {
			class = "narrow"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%dx%d %s\t%s\n",
			m.ID, m.Preset, m.Seed, m.Points, m.Edges,
			m.Width, m.Height, class, m.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func exportSnapshot(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "corefield.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
