package clocking

import "github.com/fcnkit/fcn/coord"

// ClockedGrid wraps a coord.Grid with a Scheme to add the temporal
// dimension: data flows from a coordinate at phase p only to neighbors at
// phase (p+1) mod N.
type ClockedGrid struct {
	Grid   coord.Grid
	Scheme Scheme
}

// New constructs a ClockedGrid over the given spatial grid and clocking
// scheme.
func New(grid coord.Grid, scheme Scheme) *ClockedGrid {
	return &ClockedGrid{Grid: grid, Scheme: scheme}
}

// WithinBounds reports whether c lies inside the grid's bounding box.
func (g *ClockedGrid) WithinBounds(c coord.Coordinate) bool {
	return g.Grid.WithinBounds(c)
}

// Adjacent reports whether a and b are spatial neighbors, ignoring
// clocking direction.
func (g *ClockedGrid) Adjacent(a, b coord.Coordinate) bool {
	return g.Grid.Adjacent(a, b)
}

// Surrounding returns all neighbors of c on c's own layer regardless of
// clocking (§4.A).
func (g *ClockedGrid) Surrounding(c coord.Coordinate) []coord.Coordinate {
	return g.Grid.Surrounding(c)
}

// OutgoingClocked returns the neighbors b of a such that
// phi(b) = (phi(a)+1) mod N — the data-flow successors of a.
func (g *ClockedGrid) OutgoingClocked(a coord.Coordinate) []coord.Coordinate {
	n := g.Scheme.NumPhases()
	want := mod(g.Scheme.Phase(a)+1, n)
	return g.filterByPhase(a, want)
}

// IncomingClocked returns the neighbors b of a such that
// phi(a) = (phi(b)+1) mod N — the data-flow predecessors of a.
func (g *ClockedGrid) IncomingClocked(a coord.Coordinate) []coord.Coordinate {
	n := g.Scheme.NumPhases()
	want := mod(g.Scheme.Phase(a)-1, n)
	return g.filterByPhase(a, want)
}

func (g *ClockedGrid) filterByPhase(a coord.Coordinate, wantPhase int) []coord.Coordinate {
	neighbors := g.Grid.Surrounding(a)
	out := make([]coord.Coordinate, 0, len(neighbors))
	for _, b := range neighbors {
		if g.Scheme.Phase(b) == wantPhase {
			out = append(out, b)
		}
	}
	return out
}

// IsDataFlowEdge reports whether a directed edge a->b respects the
// clocking discipline: b must be spatially adjacent to a and
// phi(b) = (phi(a)+1) mod N.
func (g *ClockedGrid) IsDataFlowEdge(a, b coord.Coordinate) bool {
	if !g.Grid.Adjacent(a, b) {
		return false
	}
	n := g.Scheme.NumPhases()
	return g.Scheme.Phase(b) == mod(g.Scheme.Phase(a)+1, n)
}
