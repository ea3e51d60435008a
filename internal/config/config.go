package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/corefield/internal/geom"
)

const (
	DefaultCount         = 80
	DefaultSpread        = 15.0
	DefaultThreshold     = 3.5
	DefaultRateY         = 0.05
	DefaultRateX         = 0.02
	DefaultScale         = 0.001
	DefaultSmoothing     = 0.05
	DefaultDriftX        = 0.002
	DefaultDriftY        = 0.005
	DefaultBobAmplitude  = 0.12
	DefaultBreakpoint    = 768
	DefaultWidth         = 1280
	DefaultHeight        = 720
	DefaultFOV           = 75.0
	DefaultNear          = 0.1
	DefaultFar           = 1000.0
	DefaultCameraZ       = 5.0
	DefaultFPS           = 60
	DefaultCellWidth     = 8
	DefaultCellHeight    = 16
	DefaultLogLevel      = "info"
	DefaultTUILogFile    = "corefield.log"
	DefaultGraphStrategy = "pairwise"
	DefaultRecompute     = "every_frame"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Seed     int64          `yaml:"seed" json:"seed"`
	Field    FieldConfig    `yaml:"field" json:"field"`
	Graph    GraphConfig    `yaml:"graph" json:"graph"`
	Pointer  PointerConfig  `yaml:"pointer" json:"pointer"`
	Ornament OrnamentConfig `yaml:"ornament" json:"ornament"`
	Viewport ViewportConfig `yaml:"viewport" json:"viewport"`
	Camera   CameraConfig   `yaml:"camera" json:"camera"`
	Render   RenderConfig   `yaml:"render" json:"render"`
	Palette  PaletteConfig  `yaml:"palette" json:"palette"`
	Log      LogConfig      `yaml:"log" json:"log"`
}

type FieldConfig struct {
	Count  int     `yaml:"count" json:"count"`
	Spread float64 `yaml:"spread" json:"spread"`
	RateY  float64 `yaml:"rate_y" json:"rate_y"`
	RateX  float64 `yaml:"rate_x" json:"rate_x"`
}

type GraphConfig struct {
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Strategy  string  `yaml:"strategy" json:"strategy"`
	Recompute string  `yaml:"recompute" json:"recompute"`
}

type PointerConfig struct {
	Scale     float64 `yaml:"scale" json:"scale"`
	Smoothing float64 `yaml:"smoothing" json:"smoothing"`
	DriftX    float64 `yaml:"drift_x" json:"drift_x"`
	DriftY    float64 `yaml:"drift_y" json:"drift_y"`
}

type OrnamentConfig struct {
	BobAmplitude float64 `yaml:"bob_amplitude" json:"bob_amplitude"`
}

type ViewportConfig struct {
	Breakpoint int        `yaml:"breakpoint" json:"breakpoint"`
	Width      int        `yaml:"width" json:"width"`
	Height     int        `yaml:"height" json:"height"`
	Narrow     [3]float64 `yaml:"narrow,flow" json:"narrow"`
	Wide       [3]float64 `yaml:"wide,flow" json:"wide"`
}

type CameraConfig struct {
	FOV  float64 `yaml:"fov" json:"fov"`
	Near float64 `yaml:"near" json:"near"`
	Far  float64 `yaml:"far" json:"far"`
	Z    float64 `yaml:"z" json:"z"`
}

type RenderConfig struct {
	FPS        int `yaml:"fps" json:"fps"`
	CellWidth  int `yaml:"cell_width" json:"cell_width"`
	CellHeight int `yaml:"cell_height" json:"cell_height"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			Count:  DefaultCount,
			Spread: DefaultSpread,
			RateY:  DefaultRateY,
			RateX:  DefaultRateX,
		},
		Graph: GraphConfig{
			Threshold: DefaultThreshold,
			Strategy:  DefaultGraphStrategy,
			Recompute: DefaultRecompute,
		},
		Pointer: PointerConfig{
			Scale:     DefaultScale,
			Smoothing: DefaultSmoothing,
			DriftX:    DefaultDriftX,
			DriftY:    DefaultDriftY,
		},
		Ornament: OrnamentConfig{BobAmplitude: DefaultBobAmplitude},
		Viewport: ViewportConfig{
			Breakpoint: DefaultBreakpoint,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Narrow:     [3]float64{0, 2, -2},
			Wide:       [3]float64{2.5, 0, 0},
		},
		Camera: CameraConfig{
			FOV:  DefaultFOV,
			Near: DefaultNear,
			Far:  DefaultFar,
			Z:    DefaultCameraZ,
		},
		Render: RenderConfig{
			FPS:        DefaultFPS,
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
		},
		Palette: DefaultPalette(),
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Overlay(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay reads path on top of cfg. Keys missing from the file keep their
// current values.
func Overlay(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field string, v any) {
		errs = append(errs, fmt.Errorf("%w: %s = %v", ErrInvalid, field, v))
	}

	if c.Field.Count < 0 {
		bad("field.count", c.Field.Count)
	}
	if c.Field.Spread < 0 {
		bad("field.spread", c.Field.Spread)
	}
	switch c.Graph.Strategy {
	case "pairwise", "grid":
	default:
		bad("graph.strategy", c.Graph.Strategy)
	}
	switch c.Graph.Recompute {
	case "every_frame", "once":
	default:
		bad("graph.recompute", c.Graph.Recompute)
	}
	if c.Pointer.Smoothing <= 0 || c.Pointer.Smoothing > 1 {
		bad("pointer.smoothing", c.Pointer.Smoothing)
	}
	if c.Viewport.Breakpoint <= 0 {
		bad("viewport.breakpoint", c.Viewport.Breakpoint)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		bad("camera.fov", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		bad("camera.near/far", fmt.Sprintf("%g/%g", c.Camera.Near, c.Camera.Far))
	}
	if c.Render.FPS <= 0 {
		bad("render.fps", c.Render.FPS)
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		bad("render.cell", fmt.Sprintf("%dx%d", c.Render.CellWidth, c.Render.CellHeight))
	}
	if _, err := c.Palette.Parse(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) NarrowPreset() geom.Vec3 {
	return geom.Vec3{X: c.Viewport.Narrow[0], Y: c.Viewport.Narrow[1], Z: c.Viewport.Narrow[2]}
}

func (c *Config) WidePreset() geom.Vec3 {
	return geom.Vec3{X: c.Viewport.Wide[0], Y: c.Viewport.Wide[1], Z: c.Viewport.Wide[2]}
}
