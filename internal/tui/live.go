// Package tui streams scene frames to a plain terminal or file with ANSI
// escapes, without taking over input.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/corefield/internal/scene"
	"github.com/san-kum/corefield/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer writes one text frame per rendered scene frame, dropping frames
// that arrive faster than frameRate.
type LiveRenderer struct {
	out       io.Writer
	frameRate int
	lastFrame time.Time
	canvas    *viz.Canvas
	written   int
	now       func() time.Time
}

func NewLiveRenderer(out io.Writer, cols, rows, frameRate int) *LiveRenderer {
	return &LiveRenderer{
		out:       out,
		frameRate: frameRate,
		canvas:    viz.NewCanvas(cols, rows),
		now:       time.Now,
	}
}

// Start hides the cursor.
func (r *LiveRenderer) Start() error {
	_, err := io.WriteString(r.out, hideCursor)
	return err
}

func (r *LiveRenderer) Render(f scene.Frame) error {
	if r.frameRate > 0 {
		now := r.now()
		if now.Sub(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return nil
		}
		r.lastFrame = now
	}

	r.canvas.Clear()
	viz.DrawFrame(r.canvas, f)

	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  corefield  t=%.2fs  points=%d  edges=%d\n", f.Elapsed, len(f.Points), len(f.Segments)/6)
	b.WriteString("  " + strings.Repeat("-", r.canvas.Width) + "\n")
	for _, row := range r.canvas.Grid {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString("  " + strings.Repeat("-", r.canvas.Width) + "\n")

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("%w: %v", scene.ErrSurfaceUnavailable, err)
	}
	r.written++
	return nil
}

// Release restores the cursor.
func (r *LiveRenderer) Release() error {
	_, err := io.WriteString(r.out, showCursor)
	return err
}

// Written reports how many frames reached the output.
func (r *LiveRenderer) Written() int { return r.written }
