package epg

import "github.com/fcnkit/fcn/routing"

// PathGenerator produces the candidate path collection for a single
// objective. A closure that binds a grid to pathfinding.EnumerateAllPaths
// or pathfinding.YenKShortest satisfies this signature; Builder is
// deliberately decoupled from package pathfinding so that tests can supply
// a fake generator.
type PathGenerator func(objective routing.Objective) (routing.PathCollection, error)

// Config controls how Builder.Build reconciles overlapping paths.
type Config struct {
	// AllowCrossings relaxes the across-objective conflict rule from "any
	// shared coordinate" to "shared two-coordinate segment" (§4.F step 4),
	// matching the semantics of an obstruction.Overlay with crossings
	// enabled.
	AllowCrossings bool
}

// Result is the output of Builder.Build (§4.F): the constructed graph, the
// per-objective clique list (vertex labels sharing an objective), the count
// of objectives with no candidate path, and vertex/edge totals.
type Result struct {
	Graph                *Graph
	Cliques              [][]VertexLabel
	UnroutableObjectives int
	NumVertices          int
	NumEdges             int
}

// Builder constructs an edge-intersection graph from a list of routing
// objectives, given a PathGenerator to enumerate the candidate paths for
// each one.
type Builder struct {
	Generate PathGenerator
}

// Build implements the four-step algorithm of §4.F: enumerate candidate
// paths per objective, label each as a vertex, clique them within an
// objective, and add across-objective conflict edges against every
// previously inserted path.
func (b Builder) Build(objectives []routing.Objective, cfg Config) (Result, error) {
	g := newGraph()
	var cliques [][]VertexLabel
	unroutable := 0

	for _, objective := range objectives {
		paths, err := b.Generate(objective)
		if err != nil {
			return Result{}, err
		}
		if len(paths) == 0 {
			unroutable++
			continue
		}

		clique := make([]VertexLabel, 0, len(paths))
		for _, p := range paths {
			label := g.addVertex(p)
			clique = append(clique, label)
		}

		// Within: every pair in this objective's clique conflicts by
		// definition (same endpoints).
		for i := 0; i < len(clique); i++ {
			for j := i + 1; j < len(clique); j++ {
				g.addEdge(clique[i], clique[j])
			}
		}

		// Across: every newly added path against every path of an earlier
		// objective (paths of this same objective were already linked
		// above).
		newStart := len(g.paths) - len(paths)
		for i := newStart; i < len(g.paths); i++ {
			for j := 0; j < newStart; j++ {
				p, q := g.paths[i], g.paths[j]
				conflicts := p.Intersects(q)
				if cfg.AllowCrossings {
					conflicts = p.SharesSegment(q)
				}
				if conflicts {
					g.addEdge(VertexLabel(i), VertexLabel(j))
				}
			}
		}

		cliques = append(cliques, clique)
	}

	return Result{
		Graph:                g,
		Cliques:              cliques,
		UnroutableObjectives: unroutable,
		NumVertices:          g.NumVertices(),
		NumEdges:             g.NumEdges(),
	}, nil
}
