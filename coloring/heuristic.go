package coloring

import (
	"math/rand"
	"sort"

	"github.com/fcnkit/fcn/epg"
)

// smallestAvailableColor returns the lowest color index not used by any
// neighbor of v already present in colorMap.
func smallestAvailableColor(g *epg.Graph, v epg.VertexLabel, colorMap map[epg.VertexLabel]int) int {
	used := map[int]struct{}{}
	for _, n := range g.Neighbors(v) {
		if c, ok := colorMap[n]; ok {
			used[c] = struct{}{}
		}
	}
	for c := 0; ; c++ {
		if _, taken := used[c]; !taken {
			return c
		}
	}
}

// MCSEngine implements maximum cardinality search: vertices are ordered by
// repeatedly picking the uncolored vertex with the largest number of
// already-ordered (colored-so-far) neighbors, then greedily colored in that
// order with the smallest available color (§4.G).
type MCSEngine struct{}

func (MCSEngine) Color(g *epg.Graph, _ [][]epg.VertexLabel, _ Config) (Result, error) {
	vertices := g.Vertices()
	ordered := make([]epg.VertexLabel, 0, len(vertices))
	weight := make(map[epg.VertexLabel]int, len(vertices))
	remaining := map[epg.VertexLabel]struct{}{}
	for _, v := range vertices {
		remaining[v] = struct{}{}
	}

	for len(remaining) > 0 {
		best, bestWeight := epg.VertexLabel(-1), -1
		for v := range remaining {
			if weight[v] > bestWeight || (weight[v] == bestWeight && (best == -1 || v < best)) {
				best, bestWeight = v, weight[v]
			}
		}
		ordered = append(ordered, best)
		delete(remaining, best)
		for _, n := range g.Neighbors(best) {
			if _, ok := remaining[n]; ok {
				weight[n]++
			}
		}
	}

	colorMap := make(map[epg.VertexLabel]int, len(ordered))
	for _, v := range ordered {
		colorMap[v] = smallestAvailableColor(g, v, colorMap)
	}
	return buildResult(g, colorMap), nil
}

// DSATUREngine implements saturation-degree-ordered greedy coloring: at
// each step the uncolored vertex with the highest saturation (distinct
// colors among its colored neighbors) is colored next, ties broken by
// larger degree then by label for determinism (§4.G).
type DSATUREngine struct{}

func (DSATUREngine) Color(g *epg.Graph, _ [][]epg.VertexLabel, _ Config) (Result, error) {
	colorMap := make(map[epg.VertexLabel]int)
	remaining := map[epg.VertexLabel]struct{}{}
	for _, v := range g.Vertices() {
		remaining[v] = struct{}{}
	}

	for len(remaining) > 0 {
		best, bestSat, bestDeg := epg.VertexLabel(-1), -1, -1
		for v := range remaining {
			sat := saturation(g, v, colorMap)
			deg := g.Degree(v)
			if sat > bestSat ||
				(sat == bestSat && deg > bestDeg) ||
				(sat == bestSat && deg == bestDeg && (best == -1 || v < best)) {
				best, bestSat, bestDeg = v, sat, deg
			}
		}
		colorMap[best] = smallestAvailableColor(g, best, colorMap)
		delete(remaining, best)
	}
	return buildResult(g, colorMap), nil
}

func saturation(g *epg.Graph, v epg.VertexLabel, colorMap map[epg.VertexLabel]int) int {
	seen := map[int]struct{}{}
	for _, n := range g.Neighbors(v) {
		if c, ok := colorMap[n]; ok {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}

// LMXRLFEngine implements randomized large independent set peeling: each
// round greedily builds a maximal independent set over the remaining
// vertices in a seeded random order, assigns the whole set one fresh
// color, then removes it and repeats (§4.G). Config.Seed selects the
// random order, matching the teacher's builder.WithSeed reproducibility
// convention.
type LMXRLFEngine struct{}

func (LMXRLFEngine) Color(g *epg.Graph, _ [][]epg.VertexLabel, cfg Config) (Result, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	remaining := map[epg.VertexLabel]struct{}{}
	for _, v := range g.Vertices() {
		remaining[v] = struct{}{}
	}

	colorMap := make(map[epg.VertexLabel]int)
	color := 0
	for len(remaining) > 0 {
		order := make([]epg.VertexLabel, 0, len(remaining))
		for v := range remaining {
			order = append(order, v)
		}
		sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		independentSet := map[epg.VertexLabel]struct{}{}
		for _, v := range order {
			conflicted := false
			for _, n := range g.Neighbors(v) {
				if _, ok := independentSet[n]; ok {
					conflicted = true
					break
				}
			}
			if !conflicted {
				independentSet[v] = struct{}{}
			}
		}

		for v := range independentSet {
			colorMap[v] = color
			delete(remaining, v)
		}
		color++
	}
	return buildResult(g, colorMap), nil
}

// TABUCOLEngine implements k-coloring via tabu search against
// Config.TargetK: starting from a random k-coloring, repeatedly recolors
// the endpoint of a conflicted edge to the color (other than tabu-listed
// ones) that minimizes remaining conflicts, for up to Config.MaxIterations
// steps. If no zero-conflict coloring is found within budget, the
// best-found (possibly still-conflicting) coloring is returned with
// Verified=false — the "partial fallback" described in §4.G.
type TABUCOLEngine struct{}

func (TABUCOLEngine) Color(g *epg.Graph, _ [][]epg.VertexLabel, cfg Config) (Result, error) {
	k := cfg.TargetK
	if k <= 0 {
		k = 1
	}
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 1000
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	vertices := g.Vertices()
	colorOf := make(map[epg.VertexLabel]int, len(vertices))
	for _, v := range vertices {
		colorOf[v] = rng.Intn(k)
	}

	conflictCount := func(cm map[epg.VertexLabel]int) int {
		n := 0
		for _, v := range vertices {
			for _, nb := range g.Neighbors(v) {
				if v < nb && cm[v] == cm[nb] {
					n++
				}
			}
		}
		return n
	}

	best := cloneColorMap(colorOf)
	bestConflicts := conflictCount(colorOf)
	tabu := map[[2]int]int{} // [vertexIndex,color] -> iteration until which it is tabu

	for iter := 0; iter < maxIter && bestConflicts > 0; iter++ {
		conflicted := conflictedVertices(g, colorOf)
		if len(conflicted) == 0 {
			break
		}
		v := conflicted[rng.Intn(len(conflicted))]
		curColor := colorOf[v]
		bestColor, bestDelta := curColor, 1<<30
		for c := 0; c < k; c++ {
			if c == curColor {
				continue
			}
			if until, tabbed := tabu[[2]int{int(v), c}]; tabbed && until > iter {
				continue
			}
			colorOf[v] = c
			delta := conflictCount(colorOf)
			colorOf[v] = curColor
			if delta < bestDelta {
				bestColor, bestDelta = c, delta
			}
		}
		colorOf[v] = bestColor
		tabu[[2]int{int(v), curColor}] = iter + 1 + rng.Intn(5)

		if bestDelta < bestConflicts {
			bestConflicts = bestDelta
			best = cloneColorMap(colorOf)
		}
	}

	return buildResult(g, best), nil
}

func conflictedVertices(g *epg.Graph, colorOf map[epg.VertexLabel]int) []epg.VertexLabel {
	var out []epg.VertexLabel
	seen := map[epg.VertexLabel]struct{}{}
	for _, v := range g.Vertices() {
		for _, n := range g.Neighbors(v) {
			if colorOf[v] == colorOf[n] {
				if _, ok := seen[v]; !ok {
					out = append(out, v)
					seen[v] = struct{}{}
				}
				break
			}
		}
	}
	return out
}

func cloneColorMap(m map[epg.VertexLabel]int) map[epg.VertexLabel]int {
	cp := make(map[epg.VertexLabel]int, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
