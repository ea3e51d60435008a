package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/corefield/internal/config"
)

// Theme defines the terminal colours for each scene layer plus the side panel.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Points     lipgloss.Color
	Lines      lipgloss.Color
	Core       lipgloss.Color
	Knot       lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

// Available themes. "scene" is replaced by ThemeFromPalette at startup.
var (
	ThemeScene = Theme{
		Name:       "scene",
		Background: lipgloss.Color("#0a192f"),
		Points:     lipgloss.Color("#54d6bd"),
		Lines:      lipgloss.Color("#183d4a"),
		Core:       lipgloss.Color("#25596c"),
		Knot:       lipgloss.Color("#2e3b50"),
		Text:       lipgloss.Color("#e6f1ff"),
		Muted:      lipgloss.Color("#4a5d7a"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Background: lipgloss.Color("#001100"),
		Points:     lipgloss.Color("#00ff00"),
		Lines:      lipgloss.Color("#005500"),
		Core:       lipgloss.Color("#88ff88"),
		Knot:       lipgloss.Color("#00cc00"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Background: lipgloss.Color("#000000"),
		Points:     lipgloss.Color("#ffffff"),
		Lines:      lipgloss.Color("#444444"),
		Core:       lipgloss.Color("#cccccc"),
		Knot:       lipgloss.Color("#888888"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: lipgloss.Color("#2d1b2e"),
		Points:     lipgloss.Color("#feca57"),
		Lines:      lipgloss.Color("#8b6b8c"),
		Core:       lipgloss.Color("#ff6b6b"),
		Knot:       lipgloss.Color("#ff9ff3"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
	}

	CurrentTheme = ThemeScene

	Themes = []Theme{
		ThemeScene,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeSunset,
	}
)

// ThemeFromPalette flattens the scene palette onto its background. Terminals
// have no alpha, so each translucent swatch becomes the colour it would show.
func ThemeFromPalette(p config.Palette) Theme {
	bg := p.Background.Color
	hex := func(s config.Swatch) lipgloss.Color {
		return lipgloss.Color(s.Over(bg).Hex())
	}
	return Theme{
		Name:       "scene",
		Background: lipgloss.Color(bg.Hex()),
		Points:     hex(p.Points),
		Lines:      hex(p.Lines),
		Core:       hex(p.Core),
		Knot:       hex(p.Knot),
		Text:       hex(config.Swatch{Color: p.Knot.Color, Alpha: 1}),
		Muted:      lipgloss.Color(bg.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.3).Clamped().Hex()),
	}
}

// UseScenePalette installs the palette-derived theme under the "scene" name.
func UseScenePalette(p config.Palette) {
	t := ThemeFromPalette(p)
	Themes[0] = t
	if CurrentTheme.Name == t.Name {
		CurrentTheme = t
	}
}

// LayerStyles returns the canvas styles for t.
func (t Theme) LayerStyles() map[Layer]lipgloss.Style {
	return map[Layer]lipgloss.Style{
		LayerLines:  lipgloss.NewStyle().Foreground(t.Lines),
		LayerPoints: lipgloss.NewStyle().Foreground(t.Points),
		LayerCore:   lipgloss.NewStyle().Foreground(t.Core),
		LayerKnot:   lipgloss.NewStyle().Foreground(t.Knot),
	}
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
