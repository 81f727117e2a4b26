package routing

import "github.com/fcnkit/fcn/coord"

// Path is a finite ordered sequence of coordinates [c0, c1, ..., ck] with
// c0 = Source, ck = Target, every consecutive pair adjacent under the
// scheme's data-flow, and no repeats (loop-less). It carries a fast
// membership set alongside the ordered sequence so that conflict detection
// in package epg runs in O(1) per coordinate instead of O(len(path)).
type Path struct {
	coords []coord.Coordinate
	set    map[coord.Coordinate]struct{}
}

// NewPath builds a Path from an ordered, loop-less coordinate sequence. The
// caller is responsible for the loop-less invariant; NewPath does not
// re-validate it (path-finding primitives construct Paths incrementally
// and already enforce no-repeat by construction).
func NewPath(coords []coord.Coordinate) Path {
	set := make(map[coord.Coordinate]struct{}, len(coords))
	for _, c := range coords {
		set[c] = struct{}{}
	}
	cp := make([]coord.Coordinate, len(coords))
	copy(cp, coords)
	return Path{coords: cp, set: set}
}

// Len returns the number of coordinates in the path (k+1 for a path of k
// edges).
func (p Path) Len() int {
	return len(p.coords)
}

// Empty reports whether the path carries no coordinates at all — the
// "unreachable" return value of a path-finding call (§4.D.1: "Unreachable
// returns empty (not an error)").
func (p Path) Empty() bool {
	return len(p.coords) == 0
}

// Source returns c0, or coord.Dead if the path is empty.
func (p Path) Source() coord.Coordinate {
	if p.Empty() {
		return coord.Dead
	}
	return p.coords[0]
}

// Target returns ck, or coord.Dead if the path is empty.
func (p Path) Target() coord.Coordinate {
	if p.Empty() {
		return coord.Dead
	}
	return p.coords[len(p.coords)-1]
}

// Coordinates returns a defensive copy of the ordered coordinate sequence.
func (p Path) Coordinates() []coord.Coordinate {
	out := make([]coord.Coordinate, len(p.coords))
	copy(out, p.coords)
	return out
}

// Contains reports whether c appears anywhere in the path, in O(1).
func (p Path) Contains(c coord.Coordinate) bool {
	_, ok := p.set[c]
	return ok
}

// At returns the i-th coordinate of the path.
func (p Path) At(i int) coord.Coordinate {
	return p.coords[i]
}

// Objective returns the (Source, Target) pair this path connects.
func (p Path) Objective() Objective {
	return Objective{Source: p.Source(), Target: p.Target()}
}

// Intersects reports whether p and other share at least one interior
// coordinate (any coordinate other than each path's own endpoints is
// "interior" for the purposes of §4.F's conflict rule — endpoints are
// shared deliberately by distinct objectives that meet at a pin, e.g. two
// different-source wires converging on the same fan-in gate tile). A
// coordinate counts as a conflict only when it is interior to at least one
// of the two paths; each path's own source/target are never themselves
// flagged, matching generate_edge_intersection_graph.hpp's
// has_intersection_with(), which walks only a path's own interior slice.
func (p Path) Intersects(other Path) bool {
	for _, c := range p.interior() {
		if other.Contains(c) {
			return true
		}
	}
	for _, c := range other.interior() {
		if p.Contains(c) {
			return true
		}
	}
	return false
}

// interior returns p's coordinates excluding its own source and target.
func (p Path) interior() []coord.Coordinate {
	if len(p.coords) < 3 {
		return nil
	}
	return p.coords[1 : len(p.coords)-1]
}

// SharesSegment reports whether p and other share two consecutive
// coordinates (an overlap of length >= 1 edge), the stricter conflict rule
// used when crossings are enabled (§4.F / §3 "Overlap").
func (p Path) SharesSegment(other Path) bool {
	if len(p.coords) < 2 || len(other.coords) < 2 {
		return false
	}
	segments := make(map[[2]coord.Coordinate]struct{}, len(p.coords)-1)
	for i := 0; i+1 < len(p.coords); i++ {
		segments[[2]coord.Coordinate{p.coords[i], p.coords[i+1]}] = struct{}{}
		segments[[2]coord.Coordinate{p.coords[i+1], p.coords[i]}] = struct{}{}
	}
	for i := 0; i+1 < len(other.coords); i++ {
		if _, ok := segments[[2]coord.Coordinate{other.coords[i], other.coords[i+1]}]; ok {
			return true
		}
	}
	return false
}

// PathCollection is an ordered list of paths, duplicates allowed, as
// produced by enumerate-all and Yen's K-shortest (§3 "Path").
type PathCollection []Path

// Append adds p to the collection and returns the extended collection.
func (pc PathCollection) Append(p Path) PathCollection {
	return append(pc, p)
}

// Lengths returns the length (coordinate count) of every path, in order —
// used to check Yen's monotonicity property (§8 property 5).
func (pc PathCollection) Lengths() []int {
	out := make([]int, len(pc))
	for i, p := range pc {
		out[i] = p.Len()
	}
	return out
}
