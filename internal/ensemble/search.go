package ensemble

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/corefield/internal/config"
)

// Setters maps a searchable parameter name to the config field it writes.
var Setters = map[string]func(*config.Config, float64){
	"threshold": func(c *config.Config, v float64) { c.Graph.Threshold = v },
	"count":     func(c *config.Config, v float64) { c.Field.Count = int(v) },
	"spread":    func(c *config.Config, v float64) { c.Field.Spread = v },
	"smoothing": func(c *config.Config, v float64) { c.Pointer.Smoothing = v },
	"scale":     func(c *config.Config, v float64) { c.Pointer.Scale = v },
}

// ParamNames lists the parameters a GridSearch accepts.
func ParamNames() []string {
	names := make([]string, 0, len(Setters))
	for k := range Setters {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// GridSearch tries every combination of parameter values and keeps the one
// whose metric lands closest to a target.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) != len(ranges) {
		return nil, fmt.Errorf("ensemble: %d params but %d ranges", len(params), len(ranges))
	}
	for _, p := range params {
		if _, ok := Setters[p]; !ok {
			return nil, fmt.Errorf("ensemble: unknown parameter %q (have %v)", p, ParamNames())
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Result is the best combination found.
type Result struct {
	Params map[string]float64
	Value  float64
	Tried  int
}

// Search runs base with each combination applied and minimises
// |metric - target|. Combinations that fail validation are skipped.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, p Params, metricName string, target float64) (Result, error) {
	best := Result{Value: math.NaN()}
	bestDist := math.Inf(1)

	err := g.searchRecursive(ctx, 0, map[string]float64{}, func(current map[string]float64) error {
		cfg := *base
		for k, v := range current {
			Setters[k](&cfg, v)
		}
		if cfg.Validate() != nil {
			return nil
		}

		run, err := Simulate(ctx, &cfg, p)
		if err != nil {
			return err
		}
		best.Tried++

		val, ok := run.Values()[metricName]
		if !ok {
			return fmt.Errorf("ensemble: unknown metric %q", metricName)
		}
		if d := math.Abs(val - target); d < bestDist {
			bestDist = d
			best.Value = val
			best.Params = make(map[string]float64, len(current))
			for k, v := range current {
				best.Params[k] = v
			}
		}
		return nil
	})
	return best, err
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current map[string]float64, visit func(map[string]float64) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.paramNames) {
		return visit(current)
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, visit); err != nil {
			return err
		}
	}
	return nil
}
