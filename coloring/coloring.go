// Package coloring implements graph coloring for the edge-intersection
// graphs built by package epg (§4.G): four heuristic engines (MCS, DSATUR,
// LMXRLF, TABUCOL) and an exact SAT-backed engine that ascends k from the
// largest clique size.
package coloring

import "github.com/fcnkit/fcn/epg"

// Config controls engine behavior: heuristic engines read Seed/TargetK/
// MaxIterations as applicable, the SAT engine reads Partial/MaxK.
type Config struct {
	// Seed seeds LMXRLF's random independent-set peeling, for reproducible
	// results across runs (mirrors the teacher's builder.WithSeed).
	Seed int64
	// TargetK is the color budget for TABUCOL.
	TargetK int
	// MaxIterations bounds TABUCOL's tabu search before it falls back to
	// its best-found partial coloring.
	MaxIterations int
	// Partial makes SATEngine return a DSATUR coloring instead of failing
	// with ColoringInfeasible when no k up to MaxK is satisfiable; that
	// coloring may use more than MaxK colors. SATEngine does not search for
	// a coloring that leaves only some cliques fully distinct.
	Partial bool
	// MaxK caps how high SATEngine ascends k before giving up; zero means
	// "ascend up to NumVertices".
	MaxK int
}

// Result is the output of an Engine: the label->color map, the number of
// distinct colors used, which color occurs most often (the largest
// compatible path set, per §3's "Vertex coloring"), and whether the
// coloring was verified monochromatic-edge-free.
type Result struct {
	ColorMap          map[epg.VertexLabel]int
	ChromaticNumber   int
	MostFrequentColor int
	Verified          bool
}

// Engine colors g, given the per-objective cliques recorded by epg.Builder
// (used for SAT symmetry-breaking; heuristic engines may ignore them).
type Engine interface {
	Color(g *epg.Graph, cliques [][]epg.VertexLabel, cfg Config) (Result, error)
}

// verify reports whether colorMap assigns distinct colors across every
// edge of g (§8 property 7: "coloring soundness").
func verify(g *epg.Graph, colorMap map[epg.VertexLabel]int) bool {
	for _, v := range g.Vertices() {
		for _, n := range g.Neighbors(v) {
			if colorMap[v] == colorMap[n] {
				return false
			}
		}
	}
	return true
}

// mostFrequentColor returns the color used by the largest number of
// vertices, and its count.
func mostFrequentColor(colorMap map[epg.VertexLabel]int) (int, int) {
	counts := map[int]int{}
	for _, c := range colorMap {
		counts[c]++
	}
	best, bestCount := 0, -1
	for c := 0; c <= len(counts); c++ {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best, bestCount
}

// chromaticNumber returns one more than the highest color index used (the
// number of distinct colors, assuming colors are assigned densely from 0).
func chromaticNumber(colorMap map[epg.VertexLabel]int) int {
	max := -1
	for _, c := range colorMap {
		if c > max {
			max = c
		}
	}
	return max + 1
}

func buildResult(g *epg.Graph, colorMap map[epg.VertexLabel]int) Result {
	mf, _ := mostFrequentColor(colorMap)
	return Result{
		ColorMap:          colorMap,
		ChromaticNumber:   chromaticNumber(colorMap),
		MostFrequentColor: mf,
		Verified:          verify(g, colorMap),
	}
}
