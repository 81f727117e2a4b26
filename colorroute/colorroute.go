// Package colorroute implements the multi-path color-routing orchestrator
// (§4.H): it satisfies a set of source->target objectives simultaneously by
// path enumeration, edge-intersection-graph construction (package epg), and
// graph coloring (package coloring), committing the largest
// simultaneously-compatible set of paths to a layout.Layout.
package colorroute

import (
	"errors"

	"github.com/fcnkit/fcn/coloring"
	"github.com/fcnkit/fcn/epg"
	"github.com/fcnkit/fcn/fcnerr"
	"github.com/fcnkit/fcn/layout"
	"github.com/fcnkit/fcn/routing"
)

// Config controls EPG construction and the coloring engine used to
// reconcile conflicting paths.
type Config struct {
	// AllowPartial lets Route go on when some objectives are unroutable or
	// no coloring hits every objective: it commits the paths of the
	// most-frequent color and reports the rest as unsatisfied. With it
	// disabled, such a Route call returns Report.Success=false and leaves
	// the layout untouched (§8 property 8).
	AllowPartial bool
	// AllowCrossings relaxes the EPG conflict rule to "shared segment",
	// propagated to epg.Config.
	AllowCrossings bool
	Engine         coloring.Engine
	ColoringConfig coloring.Config
}

// Report summarizes a Route call: how many objectives were satisfiable
// simultaneously versus the total requested.
type Report struct {
	Success              bool
	TotalObjectives      int
	CommittedObjectives  int
	UnsatisfiedObjectives int
	UnroutableObjectives int
}

// Orchestrator runs the six-step color-routing algorithm (§4.H) over a
// layout.Layout, using generate to enumerate candidate paths per
// objective (typically pathfinding.EnumerateAllPaths or a Yen's
// K-shortest closure).
type Orchestrator struct {
	Generate epg.PathGenerator
}

// Route implements §4.H exactly:
//  1. Build the EPG.
//  2. If any objective is unroutable and partial routing is disabled,
//     return false without modifying the layout.
//  3. Color the EPG, requesting a color whose frequency equals the clique
//     count (i.e. hits every clique/objective).
//  4. If no such coloring exists and partial routing is disabled, return
//     false.
//  5. Commit every path whose vertex got the most-frequent color.
//  6. Report unsatisfied_objectives = total - committed.
func (o Orchestrator) Route(l *layout.Layout, objectives []routing.Objective, cfg Config) (Report, error) {
	builder := epg.Builder{Generate: o.Generate}
	result, err := builder.Build(objectives, epg.Config{AllowCrossings: cfg.AllowCrossings})
	if err != nil {
		return Report{}, err
	}

	total := len(objectives)
	if result.UnroutableObjectives > 0 && !cfg.AllowPartial {
		return Report{
			Success:              false,
			TotalObjectives:      total,
			UnroutableObjectives: result.UnroutableObjectives,
			UnsatisfiedObjectives: total,
		}, errors.Join(fcnerr.UnroutableObjective,
			errors.New("colorroute: one or more objectives have no candidate path"))
	}

	engine := cfg.Engine
	if engine == nil {
		engine = coloring.SATEngine{}
	}
	coloringResult, err := engine.Color(result.Graph, result.Cliques, cfg.ColoringConfig)
	if err != nil {
		return Report{}, err
	}

	_, frequency := mostFrequentColorCount(coloringResult.ColorMap, coloringResult.MostFrequentColor)
	satisfiesAll := frequency >= len(result.Cliques) && cliqueHitByColor(result.Cliques, coloringResult.ColorMap, coloringResult.MostFrequentColor)

	if !satisfiesAll && !cfg.AllowPartial {
		return Report{
			Success:              false,
			TotalObjectives:      total,
			UnroutableObjectives: result.UnroutableObjectives,
			UnsatisfiedObjectives: total,
		}, errors.Join(fcnerr.ColoringInfeasible,
			errors.New("colorroute: no coloring satisfies every objective and partial routing is disabled"))
	}

	snapshot := l.Snapshot()
	committed := 0
	for _, v := range result.Graph.Vertices() {
		if coloringResult.ColorMap[v] != coloringResult.MostFrequentColor {
			continue
		}
		if err := l.CommitPath(result.Graph.Path(v)); err != nil {
			l.Restore(snapshot)
			return Report{}, err
		}
		committed++
	}

	return Report{
		Success:              true,
		TotalObjectives:      total,
		CommittedObjectives:  committed,
		UnsatisfiedObjectives: total - committed,
		UnroutableObjectives: result.UnroutableObjectives,
	}, nil
}

// mostFrequentColorCount returns the color and the number of vertices
// carrying it.
func mostFrequentColorCount(colorMap map[epg.VertexLabel]int, color int) (int, int) {
	count := 0
	for _, c := range colorMap {
		if c == color {
			count++
		}
	}
	return color, count
}

// cliqueHitByColor reports whether every clique has at least one vertex
// colored with color — the precise "hits every clique" condition of step
// 3/4 of §4.H (a raw frequency count can coincidentally equal the clique
// count without one-per-clique coverage, so this is checked explicitly).
func cliqueHitByColor(cliques [][]epg.VertexLabel, colorMap map[epg.VertexLabel]int, color int) bool {
	for _, clique := range cliques {
		hit := false
		for _, v := range clique {
			if colorMap[v] == color {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
