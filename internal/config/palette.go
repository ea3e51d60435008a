package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

type ColorConfig struct {
	Hex   string  `yaml:"hex" json:"hex"`
	Alpha float64 `yaml:"alpha" json:"alpha"`
}

type PaletteConfig struct {
	Background ColorConfig `yaml:"background" json:"background"`
	Points     ColorConfig `yaml:"points" json:"points"`
	Lines      ColorConfig `yaml:"lines" json:"lines"`
	Core       ColorConfig `yaml:"core" json:"core"`
	Knot       ColorConfig `yaml:"knot" json:"knot"`
}

// Swatch is a parsed colour with opacity in [0, 1].
type Swatch struct {
	Color colorful.Color
	Alpha float64
}

// RGBA8 returns 8-bit channels with straight (not premultiplied) alpha.
func (s Swatch) RGBA8() (uint8, uint8, uint8, uint8) {
	r, g, b := s.Color.RGB255()
	return r, g, b, uint8(s.Alpha*255 + 0.5)
}

// Over blends the swatch onto bg and returns an opaque colour, for targets
// without alpha such as terminals.
func (s Swatch) Over(bg colorful.Color) colorful.Color {
	return bg.BlendRgb(s.Color, s.Alpha).Clamped()
}

type Palette struct {
	Background Swatch
	Points     Swatch
	Lines      Swatch
	Core       Swatch
	Knot       Swatch
}

func DefaultPalette() PaletteConfig {
	return PaletteConfig{
		Background: ColorConfig{Hex: "#0a192f", Alpha: 1},
		Points:     ColorConfig{Hex: "#64ffda", Alpha: 0.8},
		Lines:      ColorConfig{Hex: "#64ffda", Alpha: 0.15},
		Core:       ColorConfig{Hex: "#64ffda", Alpha: 0.3},
		Knot:       ColorConfig{Hex: "#e6f1ff", Alpha: 0.1},
	}
}

func (p PaletteConfig) Parse() (Palette, error) {
	var out Palette
	entries := []struct {
		name string
		in   ColorConfig
		out  *Swatch
	}{
		{"background", p.Background, &out.Background},
		{"points", p.Points, &out.Points},
		{"lines", p.Lines, &out.Lines},
		{"core", p.Core, &out.Core},
		{"knot", p.Knot, &out.Knot},
	}
	for _, e := range entries {
		c, err := colorful.Hex(e.in.Hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: palette.%s.hex = %q", ErrInvalid, e.name, e.in.Hex)
		}
		if e.in.Alpha < 0 || e.in.Alpha > 1 {
			return Palette{}, fmt.Errorf("%w: palette.%s.alpha = %v", ErrInvalid, e.name, e.in.Alpha)
		}
		*e.out = Swatch{Color: c, Alpha: e.in.Alpha}
	}
	return out, nil
}
