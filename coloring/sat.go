package coloring

import (
	"errors"

	"github.com/fcnkit/fcn/coloring/internal/cnf"
	"github.com/fcnkit/fcn/epg"
	"github.com/fcnkit/fcn/fcnerr"
)

// SATEngine encodes k-colorability as CNF and linearly ascends k from the
// largest clique size upward (the chromatic number is never smaller than
// the largest clique), using the from-scratch solver in
// coloring/internal/cnf. Every clique is forced to receive mutually
// distinct colors (symmetry-breaking is already implied by EPG edges
// within a clique, since clique members are pairwise adjacent); in
// addition, the lexicographically first clique's colors are pinned to
// 0..|clique|-1 to break color-permutation symmetry, per §4.G.
type SATEngine struct{}

func (SATEngine) Color(g *epg.Graph, cliques [][]epg.VertexLabel, cfg Config) (Result, error) {
	n := g.NumVertices()
	if n == 0 {
		return Result{ColorMap: map[epg.VertexLabel]int{}, ChromaticNumber: 0, MostFrequentColor: 0, Verified: true}, nil
	}

	startK := maxCliqueSize(cliques)
	if startK < 1 {
		startK = 1
	}
	maxK := cfg.MaxK
	if maxK <= 0 {
		maxK = n
	}

	for k := startK; k <= maxK; k++ {
		if colorMap, ok := trySAT(g, cliques, k); ok {
			return buildResult(g, colorMap), nil
		}
	}

	if cfg.Partial {
		fallback, err := DSATUREngine{}.Color(g, cliques, cfg)
		if err != nil {
			return Result{}, err
		}
		return fallback, nil
	}

	return Result{}, errors.Join(fcnerr.ColoringInfeasible,
		errors.New("coloring: no k-coloring found within the configured ascension range"))
}

func maxCliqueSize(cliques [][]epg.VertexLabel) int {
	max := 0
	for _, c := range cliques {
		if len(c) > max {
			max = len(c)
		}
	}
	return max
}

// varIndex maps (vertex, color) to a CNF variable index, v*k+c, a dense
// arena layout matching the rest of this module's integer-index
// convention (§9).
func varIndex(v int, c, k int) int { return v*k + c }

func trySAT(g *epg.Graph, cliques [][]epg.VertexLabel, k int) (map[epg.VertexLabel]int, bool) {
	n := g.NumVertices()
	f := &cnf.Formula{NumVars: n * k}

	for v := 0; v < n; v++ {
		vars := make([]int, k)
		for c := 0; c < k; c++ {
			vars[c] = varIndex(v, c, k)
		}
		f.AtLeastOne(vars...)
		f.AtMostOne(vars...)
	}

	for _, v := range g.Vertices() {
		for _, nb := range g.Neighbors(v) {
			if v >= nb {
				continue
			}
			for c := 0; c < k; c++ {
				f.AddClause(cnf.Neg(varIndex(int(v), c, k)), cnf.Neg(varIndex(int(nb), c, k)))
			}
		}
	}

	var assumptions []cnf.Literal
	if len(cliques) > 0 {
		first := cliques[0]
		if len(first) > k {
			return nil, false
		}
		for i, v := range first {
			assumptions = append(assumptions, cnf.Pos(varIndex(int(v), i, k)))
		}
	}

	assignment, sat := cnf.Solve(f, assumptions)
	if !sat {
		return nil, false
	}

	colorMap := make(map[epg.VertexLabel]int, n)
	for v := 0; v < n; v++ {
		for c := 0; c < k; c++ {
			if assignment[varIndex(v, c, k)] {
				colorMap[epg.VertexLabel(v)] = c
				break
			}
		}
	}
	return colorMap, true
}
