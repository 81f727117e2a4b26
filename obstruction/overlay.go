// Package obstruction wraps a clocked grid with coordinate- and
// connection-level blocking predicates. All path-finding algorithms in
// package pathfinding consult an Overlay (via pathfinding.Grid) before
// stepping onto a coordinate or across a connection.
package obstruction

import "github.com/fcnkit/fcn/coord"

// Overlay marks coordinates and connections as blocked on top of an
// otherwise-open clocking.ClockedGrid. The zero value blocks nothing.
type Overlay struct {
	coordinates map[coord.Coordinate]struct{}
	connections map[[2]coord.Coordinate]struct{}
	isWire      map[coord.Coordinate]bool
}

// New constructs an empty Overlay.
func New() *Overlay {
	return &Overlay{
		coordinates: make(map[coord.Coordinate]struct{}),
		connections: make(map[[2]coord.Coordinate]struct{}),
		isWire:      make(map[coord.Coordinate]bool),
	}
}

// ObstructCoordinate marks c as blocked.
func (o *Overlay) ObstructCoordinate(c coord.Coordinate) {
	o.coordinates[c] = struct{}{}
}

// ClearCoordinate un-marks c.
func (o *Overlay) ClearCoordinate(c coord.Coordinate) {
	delete(o.coordinates, c)
}

// ObstructConnection marks the directed connection a->b as blocked,
// independent of whether a or b themselves are obstructed.
func (o *Overlay) ObstructConnection(a, b coord.Coordinate) {
	o.connections[[2]coord.Coordinate{a, b}] = struct{}{}
}

// MarkWire records that the ground-layer coordinate c already carries a
// committed wire. This is consulted by CanCross to enforce "crossings
// don't run along another wire" (§4.C): the ground coordinate under a
// crossing must itself be a wire, and the above coordinate must be free.
func (o *Overlay) MarkWire(c coord.Coordinate) {
	o.isWire[c] = true
}

// ObstructedCoordinate reports whether c is blocked. The explicit target of
// a path-finding call is exempt from this check by the caller (pathfinding
// package), per §4.C: "skip obstructed coordinates/connections unless the
// obstructed coordinate is the explicit target".
func (o *Overlay) ObstructedCoordinate(c coord.Coordinate) bool {
	_, blocked := o.coordinates[c]
	return blocked
}

// ObstructedConnection reports whether stepping from a to b is blocked by
// an explicit connection obstruction. It does not look at whether a or b
// themselves are obstructed; callers check that with ObstructedCoordinate.
func (o *Overlay) ObstructedConnection(a, b coord.Coordinate) bool {
	if _, blocked := o.connections[[2]coord.Coordinate{a, b}]; blocked {
		return true
	}
	return false
}

// Clone returns a deep copy of o, used by Yen's K-shortest-paths oracle
// (§4.D.3) to layer temporary spur-path obstructions on top of the
// caller's overlay without mutating it.
func (o *Overlay) Clone() *Overlay {
	cp := New()
	for c := range o.coordinates {
		cp.coordinates[c] = struct{}{}
	}
	for conn := range o.connections {
		cp.connections[conn] = struct{}{}
	}
	for c, wire := range o.isWire {
		cp.isWire[c] = wire
	}
	return cp
}

// CanCross reports whether a path may use the crossing layer to pass over
// ground coordinate c. Per §4.C: a crossing may pass over an obstructed
// ground coordinate iff the ground coordinate is itself a wire and the
// above (Z=1) coordinate is free — this guarantees crossings never run
// along another wire (orthogonal crossings only), since the only way onto
// the crossing layer is a single vertical hop at one (x, y).
func (o *Overlay) CanCross(c coord.Coordinate) bool {
	if c.Z != 0 {
		return false
	}
	above := coord.NewCrossing(c.X, c.Y)
	if !o.isWire[c] {
		return false
	}
	if o.ObstructedCoordinate(above) {
		return false
	}
	return true
}
