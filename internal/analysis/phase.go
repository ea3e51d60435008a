package analysis

import (
	"math"
	"strings"
)

type Point2 struct{ X, Y float64 }

// PhasePortrait2D is a trajectory in a plane, e.g. two rotation angles over
// time.
type PhasePortrait2D struct {
	Points []Point2
}

func (p *PhasePortrait2D) Add(x, y float64) {
	p.Points = append(p.Points, Point2{x, y})
}

// bounds returns the padded extent of pts.
func bounds(pts []Point2) (minX, maxX, minY, maxY float64) {
	minX, maxX = pts[0].X, pts[0].X
	minY, maxY = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	pad := func(lo, hi float64) (float64, float64) {
		r := hi - lo
		if r == 0 {
			r = 1
		}
		return lo - r*0.1, hi + r*0.1
	}
	minX, maxX = pad(minX, maxX)
	minY, maxY = pad(minY, maxY)
	return
}

// PhasePortraitToASCII plots the trajectory on a width x height grid with the
// axes drawn where they cross the visible area.
func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width < 2 || height < 2 {
		return ""
	}
	minX, maxX, minY, maxY := bounds(portrait.Points)
	toCol := func(x float64) int { return int((x - minX) / (maxX - minX) * float64(width-1)) }
	toRow := func(y float64) int { return height - 1 - int((y-minY)/(maxY-minY)*float64(height-1)) }

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	if minX <= 0 && maxX >= 0 {
		col := toCol(0)
		for row := range grid {
			grid[row][col] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := toRow(0)
		for col := range grid[row] {
			if grid[row][col] == '│' {
				grid[row][col] = '┼'
			} else {
				grid[row][col] = '─'
			}
		}
	}
	for _, p := range portrait.Points {
		grid[toRow(p.Y)][toCol(p.X)] = '•'
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Crossings returns the interpolated times at which samples rise through
// level. times and samples must have equal length.
func Crossings(times, samples []float64, level float64) []float64 {
	out := make([]float64, 0)
	for i := 1; i < len(samples) && i < len(times); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev < level && curr >= level {
			frac := (level - prev) / (curr - prev)
			if math.IsNaN(frac) || math.IsInf(frac, 0) {
				frac = 0.5
			}
			out = append(out, times[i-1]+frac*(times[i]-times[i-1]))
		}
	}
	return out
}

// MeanPeriod averages the gaps between successive crossings. It returns 0 with
// fewer than two crossings.
func MeanPeriod(crossings []float64) float64 {
	if len(crossings) < 2 {
		return 0
	}
	return (crossings[len(crossings)-1] - crossings[0]) / float64(len(crossings)-1)
}
