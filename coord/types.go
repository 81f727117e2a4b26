// Package coord defines the typed coordinates and bounding boxes that
// every other package in this module builds on: clocking schemes map
// coordinates to clock phases, obstruction overlays mark coordinates as
// blocked, and path finding walks between them.
//
// A Coordinate is a discrete 3-tuple (X, Y, Z) where Z distinguishes the
// ground layer (Z=0) from the optional crossing layer (Z=1). Coordinate is
// a plain comparable struct so it can be used directly as a map key,
// mirroring how the rest of this module's lineage keys adjacency by a
// comparable identifier rather than a pointer.
package coord

import "fmt"

// Coordinate is a discrete position in a clocked grid.
type Coordinate struct {
	X, Y, Z int
}

// Dead is the sentinel "absent position" coordinate. Any Coordinate whose
// X or Y component is negative is considered dead; Dead is the canonical
// representative.
var Dead = Coordinate{X: -1, Y: -1, Z: -1}

// New constructs a ground-layer Coordinate (Z=0).
func New(x, y int) Coordinate {
	return Coordinate{X: x, Y: y, Z: 0}
}

// NewCrossing constructs a Coordinate on the crossing layer (Z=1).
func NewCrossing(x, y int) Coordinate {
	return Coordinate{X: x, Y: y, Z: 1}
}

// IsDead reports whether c is the absent-position sentinel.
func (c Coordinate) IsDead() bool {
	return c.X < 0 || c.Y < 0
}

// Equal reports whether c and o name the same position.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y && c.Z == o.Z
}

// Less imposes a total order on coordinates: by Y, then X, then Z. This
// order is used for deterministic tie-breaking in path finding and
// coloring (§4.D.1: "Tie-break is lexicographic on (f, insertion order) —
// deterministic for identical inputs").
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Z < o.Z
}

// String renders "(x,y,z)" for logs and error messages.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// ManhattanDistance returns |dx|+|dy| between two ground-layer projections
// of a and b (the Z component never contributes: crossings do not add
// distance in the Manhattan metric used by the admissible A* heuristic).
func ManhattanDistance(a, b Coordinate) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dimension is the bounding box of a grid: all coordinates c with
// 0 <= c.X <= X, 0 <= c.Y <= Y, 0 <= c.Z <= Z are within bounds.
type Dimension struct {
	X, Y, Z int
}

// WithinBounds reports whether c lies within d and is not dead.
func (d Dimension) WithinBounds(c Coordinate) bool {
	if c.IsDead() {
		return false
	}
	return c.X >= 0 && c.X <= d.X && c.Y >= 0 && c.Y <= d.Y && c.Z >= 0 && c.Z <= d.Z
}

// Area returns the number of ground-layer tiles spanned by d, i.e.
// (X+1)*(Y+1). Used by the E1 end-to-end scenario ("x=0, y=0, area=1").
func (d Dimension) Area() int {
	return (d.X + 1) * (d.Y + 1)
}

// GrowEast returns a copy of d with one additional column. Grids only ever
// grow east or south, never shrink (§3 Lifecycles).
func (d Dimension) GrowEast() Dimension {
	return Dimension{X: d.X + 1, Y: d.Y, Z: d.Z}
}

// GrowSouth returns a copy of d with one additional row.
func (d Dimension) GrowSouth() Dimension {
	return Dimension{X: d.X, Y: d.Y + 1, Z: d.Z}
}
