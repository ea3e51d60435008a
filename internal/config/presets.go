package config

import "sort"

// Presets tweak the default configuration. "default" leaves it untouched.
var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"dense": func(c *Config) {
		c.Field.Count = 200
		c.Graph.Threshold = 2.5
		c.Graph.Strategy = "grid"
	},
	"sparse": func(c *Config) {
		c.Field.Count = 40
		c.Graph.Threshold = 4.5
	},
	"calm": func(c *Config) {
		c.Pointer.Smoothing = 0.02
		c.Pointer.DriftX = 0.0005
		c.Pointer.DriftY = 0.001
		c.Ornament.BobAmplitude = 0.05
		c.Field.RateY = 0.02
		c.Field.RateX = 0.01
	},
	"mobile": func(c *Config) {
		c.Viewport.Width = 390
		c.Viewport.Height = 844
		c.Field.Count = 50
	},
	"static": func(c *Config) {
		c.Graph.Recompute = "once"
	},
}

// GetPreset returns a fresh default config with the named preset applied, or
// nil when the preset does not exist.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
