package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/logging"
	"github.com/san-kum/corefield/internal/scene"
	"github.com/san-kum/corefield/internal/storage"
)

// resolveConfig layers preset, config file and flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (have %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.Overlay(configFile, cfg); err != nil {
			return nil, err
		}
	}
	applyFlags(cmd, cfg)
	return cfg, cfg.Validate()
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("count") {
		cfg.Field.Count = count
	}
	if f.Changed("threshold") {
		cfg.Graph.Threshold = threshold
	}
	if f.Changed("strategy") {
		cfg.Graph.Strategy = strategy
	}
	if f.Changed("width") {
		cfg.Viewport.Width = width
	}
	if f.Changed("height") {
		cfg.Viewport.Height = height
	}
	if f.Changed("fps") {
		cfg.Render.FPS = fps
	}
	if f.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if f.Changed("log-file") {
		cfg.Log.File = logFile
	}
}

// resolveScene is resolveConfig plus the --from snapshot, whose stored config
// and points replace the generated field.
func resolveScene(cmd *cobra.Command) (*config.Config, []scene.Option, error) {
	if fromID == "" {
		cfg, err := resolveConfig(cmd)
		return cfg, nil, err
	}

	st := storage.New(dataDir)
	meta, err := st.Load(fromID)
	if err != nil {
		return nil, nil, err
	}
	points, err := st.LoadPoints(fromID)
	if err != nil {
		return nil, nil, err
	}

	cfg := meta.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Seed = meta.Seed
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, []scene.Option{scene.WithPoints(points)}, nil
}

// newLogger builds the command logger. fallbackFile is used when neither the
// config nor the flags name a log file.
func newLogger(cfg *config.Config, fallbackFile string) (*zap.Logger, error) {
	path := cfg.Log.File
	if path == "" {
		path = fallbackFile
	}
	return logging.New(cfg.Log.Level, path)
}
