package graph

import (
	"errors"
	"fmt"

	"github.com/san-kum/corefield/internal/geom"
)

type Strategy string

const (
	Pairwise Strategy = "pairwise"
	Grid     Strategy = "grid"
)

// Policy controls whether the edge set is rebuilt on every call or computed
// once. Points never move relative to each other, so both yield the same edges.
type Policy string

const (
	EveryFrame Policy = "every_frame"
	Once       Policy = "once"
)

var (
	ErrUnknownStrategy = errors.New("graph: unknown strategy")
	ErrUnknownPolicy   = errors.New("graph: unknown recompute policy")
)

type Builder struct {
	threshold float64
	build     func([]geom.Vec3, float64) []Edge
	policy    Policy
	cached    []Edge
	valid     bool
	builds    int
}

func NewBuilder(threshold float64, strategy Strategy, policy Policy) (*Builder, error) {
	b := &Builder{threshold: threshold, policy: policy}
	switch strategy {
	case Pairwise, "":
		b.build = Build
	case Grid:
		b.build = BuildGrid
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	switch policy {
	case EveryFrame, Once:
	case "":
		b.policy = EveryFrame
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
	return b, nil
}

// Edges returns the proximity graph of points. Under the Once policy the first
// result is reused for every later call.
func (b *Builder) Edges(points []geom.Vec3) []Edge {
	if b.policy == Once && b.valid {
		return b.cached
	}
	b.cached = b.build(points, b.threshold)
	b.valid = true
	b.builds++
	return b.cached
}

func (b *Builder) Threshold() float64 { return b.threshold }

// Builds reports how many times the edge set was actually computed.
func (b *Builder) Builds() int { return b.builds }
