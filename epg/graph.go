// Package epg builds the edge-intersection graph of paths (§4.F): vertices
// are labeled paths, edges record pairwise routing conflicts, and cliques
// record which vertices came from the same objective (used downstream for
// symmetry-breaking in SAT coloring, package coloring).
package epg

import "github.com/fcnkit/fcn/routing"

// VertexLabel is a dense, zero-based vertex index into a Graph, following
// the arena-with-integer-indices convention used throughout this module
// (see coord.Coordinate's map-key discipline and network.Hierarchy's
// VertexID keys): a path never owns a pointer to its neighbors, only
// lookups into the Graph's adjacency map.
type VertexLabel int

// Graph is the edge-intersection graph (EPG): an undirected graph over
// VertexLabel, each vertex payload being the routing.Path it represents.
type Graph struct {
	paths     []routing.Path
	adjacency []map[VertexLabel]struct{}
}

// newGraph constructs an empty Graph.
func newGraph() *Graph {
	return &Graph{}
}

// addVertex appends p as a new vertex and returns its freshly assigned
// label.
func (g *Graph) addVertex(p routing.Path) VertexLabel {
	label := VertexLabel(len(g.paths))
	g.paths = append(g.paths, p)
	g.adjacency = append(g.adjacency, make(map[VertexLabel]struct{}))
	return label
}

// addEdge records a conflict between a and b. Self-loops are ignored.
func (g *Graph) addEdge(a, b VertexLabel) {
	if a == b {
		return
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
}

// NumVertices returns the number of vertices (labeled paths) in g.
func (g *Graph) NumVertices() int { return len(g.paths) }

// NumEdges returns the number of undirected edges in g.
func (g *Graph) NumEdges() int {
	total := 0
	for _, neighbors := range g.adjacency {
		total += len(neighbors)
	}
	return total / 2
}

// Path returns the routing.Path labeled by v.
func (g *Graph) Path(v VertexLabel) routing.Path {
	return g.paths[v]
}

// Neighbors returns the labels adjacent to v.
func (g *Graph) Neighbors(v VertexLabel) []VertexLabel {
	out := make([]VertexLabel, 0, len(g.adjacency[v]))
	for n := range g.adjacency[v] {
		out = append(out, n)
	}
	return out
}

// AdjacentTo reports whether a and b share an EPG edge.
func (g *Graph) AdjacentTo(a, b VertexLabel) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v VertexLabel) int {
	return len(g.adjacency[v])
}

// Vertices returns every vertex label in g, in ascending order.
func (g *Graph) Vertices() []VertexLabel {
	out := make([]VertexLabel, len(g.paths))
	for i := range out {
		out[i] = VertexLabel(i)
	}
	return out
}
