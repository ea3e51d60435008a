package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/corefield/internal/config"
	"github.com/san-kum/corefield/internal/geom"
	"github.com/san-kum/corefield/internal/scene"
	"github.com/san-kum/corefield/internal/viz"
)

func hexOf(s config.Swatch) string { return s.Color.Hex() }

// FrameToSVG draws a scene frame as vector lines and dots. The projection uses
// the frame camera with the aspect ratio of the output image.
func FrameToSVG(f scene.Frame, width, height int) string {
	if f.Camera == nil || width <= 0 || height <= 0 {
		return ""
	}
	cam := f.Camera
	vp := geom.Perspective(cam.FOV, float64(width)/float64(height), cam.Near, cam.Far).Mul(cam.View())
	p := f.Palette

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, hexOf(p.Background))

	writeLines := func(class string, s config.Swatch, segs []scene.Segment) {
		fmt.Fprintf(&sb, `<g class="%s" stroke="%s" stroke-opacity="%.2f" stroke-width="1" fill="none">
`, class, hexOf(s), s.Alpha)
		for _, seg := range segs {
			x1, y1, _, ok1 := viz.Project(vp, seg.A, width, height)
			x2, y2, _, ok2 := viz.Project(vp, seg.B, width, height)
			if !ok1 || !ok2 {
				continue
			}
			fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d"/>
`, x1, y1, x2, y2)
		}
		sb.WriteString("</g>\n")
	}

	writeLines("edges", p.Lines, f.WorldLines())

	fmt.Fprintf(&sb, `<g class="points" fill="%s" fill-opacity="%.2f">
`, hexOf(p.Points), p.Points.Alpha)
	for _, pt := range f.WorldPoints() {
		x, y, _, ok := viz.Project(vp, pt, width, height)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, `<circle cx="%d" cy="%d" r="1.5"/>
`, x, y)
	}
	sb.WriteString("</g>\n")

	for i, sh := range f.Shapes {
		writeLines(sh.Name, f.ShapeSwatch(i), f.WorldShape(i))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG, colouring each cell's dots by
// the theme colour of the layer that drew it.
func CanvasToSVG(canvas *viz.Canvas, theme viz.Theme, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.SubWidth()) * scale
	height := float64(canvas.SubHeight()) * scale
	fills := map[viz.Layer]string{
		viz.LayerLines:  string(theme.Lines),
		viz.LayerPoints: string(theme.Points),
		viz.LayerCore:   string(theme.Core),
		viz.LayerKnot:   string(theme.Knot),
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background)

	dotRadius := scale * 0.4
	for y := 0; y < canvas.SubHeight(); y++ {
		for x := 0; x < canvas.SubWidth(); x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			fill := fills[canvas.Layers[y/4][x/2]]
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius, fill)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
