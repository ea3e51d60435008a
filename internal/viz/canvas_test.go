package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, LayerPoints)
	c.Set(3, 3, LayerLines)

	if got := c.Grid[0][0]; got != blank|0x1 {
		t.Errorf("cell 0 = %U, want %U", got, blank|0x1)
	}
	if got := c.Grid[0][1]; got != blank|0x80 {
		t.Errorf("cell 1 = %U, want %U", got, blank|0x80)
	}
	if c.Layers[0][0] != LayerPoints || c.Layers[0][1] != LayerLines {
		t.Errorf("layers = %v", c.Layers[0])
	}
	if !c.Lit(3, 3) || c.Lit(1, 0) {
		t.Error("Lit disagrees with Set")
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 8}, {100, 100}} {
		c.Set(p[0], p[1], LayerLines)
	}
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != blank && r != '\n' }) {
		t.Errorf("out of bounds writes leaked:\n%s", c.String())
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawLine(0, 0, 19, 0, LayerLines)
	for x := 0; x < 20; x++ {
		if !c.Lit(x, 0) {
			t.Fatalf("dot %d not lit", x)
		}
	}

	c.Clear()
	c.DrawLine(0, 0, 7, 7, LayerCore)
	for i := 0; i < 8; i++ {
		if !c.Lit(i, i) {
			t.Fatalf("diagonal dot %d not lit", i)
		}
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(1, 1, LayerPoints)
	c.Resize(3, 2)
	if c.SubWidth() != 6 || c.SubHeight() != 8 {
		t.Errorf("sub size = %dx%d", c.SubWidth(), c.SubHeight())
	}
	if c.Lit(1, 1) {
		t.Error("resize should clear")
	}

	c.Resize(-1, -1)
	if c.Width != 0 || c.Height != 0 || c.String() != "" {
		t.Error("negative sizes should give an empty canvas")
	}
}

func TestCanvasRenderKeepsGlyphs(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(0, 0, LayerPoints)
	c.Set(2, 0, LayerPoints)
	c.Set(4, 0, LayerCore)
	out := c.Render(ThemeMinimal.LayerStyles())
	for _, r := range c.Grid[0] {
		if !strings.ContainsRune(out, r) {
			t.Errorf("rendered output lost %U", r)
		}
	}
}
