package exact

import (
	"context"
	"sort"

	"github.com/fcnkit/fcn/clocking"
	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/network"
)

// SearchState is the simplified backtracking placement search of §4.J.2:
// rather than literally encoding tv/te/tc/tp/vcl/tcl/tl as SAT variables
// (infeasible to hand-roll a full SMT solver for), it assigns network
// vertices to grid tiles in hierarchy-level order, trying candidate tiles
// in Coordinate.Less order for determinism and backtracking on the first
// constraint violation, mirroring the branch-and-bound idiom of
// tsp.bbEngine generalized from a tour permutation to a placement
// assignment. See DESIGN.md for the full justification.
type SearchState struct {
	net    network.Network
	hier   network.Hierarchy
	grid   *clocking.ClockedGrid
	order  []network.VertexID // vertices sorted by (level, insertion order)
	assign map[network.VertexID]coord.Coordinate
	used   map[coord.Coordinate]network.VertexID
}

// NewSearchState prepares a search over net/hier/grid, computing the
// placement order once up front.
func NewSearchState(net network.Network, hier network.Hierarchy, grid *clocking.ClockedGrid) *SearchState {
	vertices := append([]network.VertexID(nil), net.Vertices()...)
	sort.SliceStable(vertices, func(i, j int) bool {
		return hier.Level[vertices[i]] < hier.Level[vertices[j]]
	})
	return &SearchState{
		net:    net,
		hier:   hier,
		grid:   grid,
		order:  vertices,
		assign: make(map[network.VertexID]coord.Coordinate),
		used:   make(map[coord.Coordinate]network.VertexID),
	}
}

// candidateTiles returns every tile of the grid in deterministic
// (Coordinate.Less) order, restricted to the ground layer: the exact
// engine places logic vertices on Z=0 only, reserving Z=1 for wire
// crossings (§4.A).
func (s *SearchState) candidateTiles() []coord.Coordinate {
	dims := s.grid.Grid.Dims
	var out []coord.Coordinate
	for y := 0; y <= dims.Y; y++ {
		for x := 0; x <= dims.X; x++ {
			out = append(out, coord.Coordinate{X: x, Y: y, Z: 0})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// fits reports whether vertex v may be placed at tile c: c must be free,
// and c must be a clocking outgoing-neighbor of every already-placed direct
// predecessor of v (per net's in-edges), so the signal can actually flow
// in under the scheme's data-flow discipline (§4.A, §4.J.2 "Adjacency").
// Out-edges are not checked here: vertices are placed in level order, so
// a successor is placed after v and its own fits call checks the edge.
func (s *SearchState) fits(v network.VertexID, c coord.Coordinate) bool {
	if _, occupied := s.used[c]; occupied {
		return false
	}
	if !s.grid.WithinBounds(c) {
		return false
	}
	for _, e := range s.net.InEdges(v) {
		pred := s.net.Source(e)
		predCoord, placed := s.assign[pred]
		if !placed {
			continue // predecessor not placed; fits does not check this edge
		}
		if !containsCoord(s.grid.OutgoingClocked(predCoord), c) {
			return false
		}
	}
	return true
}

// place assigns v to c, recording the choice for backtracking.
func (s *SearchState) place(v network.VertexID, c coord.Coordinate) {
	s.assign[v] = c
	s.used[c] = v
}

// unplace undoes a previous place call.
func (s *SearchState) unplace(v network.VertexID, c coord.Coordinate) {
	delete(s.assign, v)
	delete(s.used, c)
}

// seedFrom copies a previously-found placement's assignments into s. Used
// when s was forked from a smaller ancestor dimension (§4.J.3 "reuse...
// retaining its learned clauses"): growing a dimension only extends its
// east/south bounds, so an ancestor's placement is still adjacency-valid
// tile-for-tile in the larger grid, and the search can resume past every
// vertex the ancestor already placed rather than re-deriving it.
func (s *SearchState) seedFrom(parent *SearchState) {
	for v, c := range parent.assign {
		s.assign[v] = c
		s.used[c] = v
	}
}

// Search attempts to place every vertex of s.order, trying candidate
// tiles via a simple chronological backtracking search, and reports
// whether a complete, constraint-satisfying placement was found. Any
// vertices already assigned (via seedFrom) are skipped. budget and ctx are
// both polled between branch attempts so an expired deadline or a
// cancelled context (e.g. a smaller, already-satisfiable dimension
// superseding this one, §5.1) aborts the search promptly rather than
// exhausting the full tree.
func (s *SearchState) Search(ctx context.Context, budget Budget) bool {
	tiles := s.candidateTiles()
	idx := 0
	for idx < len(s.order) {
		if _, ok := s.assign[s.order[idx]]; !ok {
			break
		}
		idx++
	}
	return s.searchFrom(ctx, idx, tiles, budget)
}

func (s *SearchState) searchFrom(ctx context.Context, idx int, tiles []coord.Coordinate, budget Budget) bool {
	if idx == len(s.order) {
		return true
	}
	if budget.Expired() || ctx.Err() != nil {
		return false
	}
	v := s.order[idx]
	for _, c := range tiles {
		if !s.fits(v, c) {
			continue
		}
		s.place(v, c)
		if s.searchFrom(ctx, idx+1, tiles, budget) {
			return true
		}
		s.unplace(v, c)
	}
	return false
}

// Assignment returns a defensive copy of the completed vertex->coordinate
// placement.
func (s *SearchState) Assignment() map[network.VertexID]coord.Coordinate {
	cp := make(map[network.VertexID]coord.Coordinate, len(s.assign))
	for v, c := range s.assign {
		cp[v] = c
	}
	return cp
}

func containsCoord(cs []coord.Coordinate, target coord.Coordinate) bool {
	for _, c := range cs {
		if c.Equal(target) {
			return true
		}
	}
	return false
}
