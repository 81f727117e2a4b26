// Package pathfinding implements single-source/single-target shortest-path
// search on clocked grids: A*, Jump Point Search, exhaustive enumeration,
// and Yen's K-shortest paths. Every algorithm here respects the clocking
// discipline (data only flows from phase p to phase p+1 mod N) and any
// obstruction overlay in effect.
package pathfinding

import (
	"github.com/fcnkit/fcn/clocking"
	"github.com/fcnkit/fcn/obstruction"
	"github.com/fcnkit/fcn/coord"
)

// Grid bundles a clocked grid with an optional obstruction overlay and a
// crossings policy into the single view every path-finding primitive in
// this package operates over.
type Grid struct {
	Clocked        *clocking.ClockedGrid
	Overlay        *obstruction.Overlay // nil means no obstructions
	AllowCrossings bool
}

// NewGrid constructs a Grid with no obstructions.
func NewGrid(clocked *clocking.ClockedGrid) *Grid {
	return &Grid{Clocked: clocked}
}

// WithOverlay returns a copy of g with the given obstruction overlay
// attached.
func (g *Grid) WithOverlay(o *obstruction.Overlay) *Grid {
	return &Grid{Clocked: g.Clocked, Overlay: o, AllowCrossings: g.AllowCrossings}
}

// WithCrossings returns a copy of g with the crossings policy set.
func (g *Grid) WithCrossings(allow bool) *Grid {
	return &Grid{Clocked: g.Clocked, Overlay: g.Overlay, AllowCrossings: allow}
}

// WithinBounds reports whether c lies inside the grid's bounding box.
func (g *Grid) WithinBounds(c coord.Coordinate) bool {
	return g.Clocked.WithinBounds(c)
}

// rawSuccessors returns every coordinate reachable from c by one
// data-flow step, including an optional vertical crossing-layer hop when
// crossings are enabled and permitted at c. It does not apply any
// obstruction filtering — callers apply that, since the explicit target of
// a search is exempt from coordinate obstruction (§4.C).
func (g *Grid) rawSuccessors(c coord.Coordinate) []coord.Coordinate {
	out := g.Clocked.OutgoingClocked(c)
	if !g.AllowCrossings || g.Overlay == nil {
		return out
	}
	switch c.Z {
	case 0:
		if g.Overlay.CanCross(c) {
			out = append(out, coord.NewCrossing(c.X, c.Y))
		}
	case 1:
		out = append(out, coord.New(c.X, c.Y))
	}
	return out
}

// coordObstructed reports whether c is blocked, exempting target (the
// explicit destination of the current search is never treated as
// obstructed, per §4.C).
func (g *Grid) coordObstructed(c, target coord.Coordinate) bool {
	if c.Equal(target) {
		return false
	}
	if g.Overlay == nil {
		return false
	}
	return g.Overlay.ObstructedCoordinate(c)
}

func (g *Grid) connectionObstructed(a, b coord.Coordinate) bool {
	if g.Overlay == nil {
		return false
	}
	return g.Overlay.ObstructedConnection(a, b)
}

// Successors returns the usable neighbors of c for a search whose explicit
// target is target: data-flow successors (plus crossing hop) filtered by
// bounds and obstructions.
func (g *Grid) Successors(c, target coord.Coordinate) []coord.Coordinate {
	raw := g.rawSuccessors(c)
	out := make([]coord.Coordinate, 0, len(raw))
	for _, b := range raw {
		if !g.WithinBounds(b) {
			continue
		}
		if g.connectionObstructed(c, b) {
			continue
		}
		if g.coordObstructed(b, target) {
			continue
		}
		out = append(out, b)
	}
	return out
}
