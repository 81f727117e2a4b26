// Package routing defines the routing objective and path types shared by
// path finding (package pathfinding), the edge-intersection graph builder
// (package epg), and the color-routing orchestrator (package colorroute).
package routing

import "github.com/fcnkit/fcn/coord"

// Objective is an unordered-but-directed pair (Source, Target) of
// coordinates to be connected by a path whose internal coordinates honor
// the clocking discipline.
type Objective struct {
	Source coord.Coordinate
	Target coord.Coordinate
}

// SameEndpoints reports whether o and other name the same (Source, Target)
// pair. Per §4.F, same-source/same-target path pairs always conflict in
// the edge-intersection graph, independent of interior overlap.
func (o Objective) SameEndpoints(other Objective) bool {
	return o.Source.Equal(other.Source) && o.Target.Equal(other.Target)
}
