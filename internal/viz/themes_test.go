package viz

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/corefield/internal/config"
)

func TestThemeFromPalette(t *testing.T) {
	p, err := config.DefaultPalette().Parse()
	if err != nil {
		t.Fatal(err)
	}
	th := ThemeFromPalette(p)
	if th.Background != lipgloss.Color("#0a192f") {
		t.Errorf("background = %s", th.Background)
	}
	// Low-alpha lines sit much closer to the background than opaque-ish points.
	if th.Lines == th.Points {
		t.Error("lines and points should flatten to different colours")
	}
	if th.Text != lipgloss.Color("#e6f1ff") {
		t.Errorf("text = %s", th.Text)
	}
}

func TestNextThemeCycles(t *testing.T) {
	defer SetTheme("scene")
	SetTheme(Themes[len(Themes)-1].Name)
	NextTheme()
	if CurrentTheme.Name != Themes[0].Name {
		t.Errorf("theme = %s, want wrap to %s", CurrentTheme.Name, Themes[0].Name)
	}
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("unknown theme should fall back to the first")
	}
}
