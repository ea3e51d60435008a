// Package metrics summarises a run of scene frames.
package metrics

import (
	"math"
	"sort"

	"github.com/san-kum/corefield/internal/scene"
)

// Sample is what a metric sees of one frame.
type Sample struct {
	Elapsed     float64
	Points      int
	Edges       int
	RotationGap float64
	BobOffset   float64
	FrameTime   float64
}

// FromScene records sc after its latest Update. frameTime is the wall time the
// tick took, in seconds.
func FromScene(sc *scene.Scene, frameTime float64) Sample {
	t, rot := sc.Target(), sc.Core.Transform.Rotation
	return Sample{
		Elapsed:     sc.Elapsed(),
		Points:      sc.Field.Len(),
		Edges:       len(sc.Lines.Edges),
		RotationGap: math.Hypot(t.X-rot.X, t.Y-rot.Y),
		BobOffset:   sc.Core.Transform.Position.Y - sc.Core.Base.Y,
		FrameTime:   frameTime,
	}
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Default returns the metrics the stats command reports.
func Default() []Metric {
	return []Metric{
		NewMeanEdges(),
		NewEdgeDensity(),
		NewTrackingError(),
		NewSettled(0.05),
		NewFrameTime(),
	}
}

func ObserveAll(ms []Metric, s Sample) {
	for _, m := range ms {
		m.Observe(s)
	}
}

// Collect reads every metric into a map keyed by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names returns the keys of values in sorted order.
func Names(values map[string]float64) []string {
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
