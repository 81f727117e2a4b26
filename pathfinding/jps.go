// Jump Point Search (§4.D.2), restricted to Cartesian grids without
// crossings: JPS prunes the frontier by jumping straight through uniform
// regions until a forced neighbor is detected, then reconstructs the full
// coordinate sequence by filling the straight segments between jump
// points. Diagonal movement is disabled (per §9's design note, the source
// implementation this module is grounded on restricts JPS's jump
// recursion to clocking successors on clocked grids, which weakens its
// theoretical guarantees; this module instead restricts JPS to pure
// Cartesian adjacency and recommends A* as the default on clocked grids).
package pathfinding

import (
	"container/heap"
	"errors"

	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/fcnerr"
	"github.com/fcnkit/fcn/routing"
)

var cardinalDirections = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// JumpPointSearch finds the shortest loop-less path from
// objective.Source to objective.Target on grid. It requires grid.Clocked's
// underlying topology to be plain coord.Cartesian with crossings disabled;
// any other configuration returns fcnerr.UnsupportedGridKind, per the
// recommendation in §9 that JPS only be used as a fast path on pure
// Cartesian adjacency.
func JumpPointSearch(grid *Grid, objective routing.Objective) (routing.Path, error) {
	if !grid.Clocked.Grid.IsCartesian() || grid.AllowCrossings {
		return routing.Path{}, errors.Join(fcnerr.UnsupportedGridKind,
			errors.New("pathfinding: JPS requires a Cartesian grid with crossings disabled"))
	}
	src, dst := objective.Source, objective.Target
	if src.IsDead() || dst.IsDead() {
		return routing.Path{}, errors.Join(fcnerr.InvalidCoordinate, errors.New("pathfinding: dead endpoint"))
	}
	if !grid.WithinBounds(src) || !grid.WithinBounds(dst) {
		return routing.Path{}, errors.Join(fcnerr.OutOfBounds, errors.New("pathfinding: endpoint out of bounds"))
	}
	if src.Equal(dst) {
		return routing.NewPath([]coord.Coordinate{src}), nil
	}

	r := &jpsRunner{grid: grid, target: dst, gScore: map[coord.Coordinate]float64{src: 0},
		cameFrom: map[coord.Coordinate]coord.Coordinate{}, closed: map[coord.Coordinate]struct{}{}}
	heap.Init(&r.open)
	heap.Push(&r.open, &openItem{c: src, f: Manhattan(src, dst), seq: 0})

	jumpPoint, err := r.run()
	if err != nil || jumpPoint.IsDead() {
		return routing.Path{}, err
	}
	return r.reconstructFilled(src, jumpPoint), nil
}

type jpsRunner struct {
	grid     *Grid
	target   coord.Coordinate
	open     openHeap
	gScore   map[coord.Coordinate]float64
	cameFrom map[coord.Coordinate]coord.Coordinate
	closed   map[coord.Coordinate]struct{}
	seq      int
}

func (r *jpsRunner) run() (coord.Coordinate, error) {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		current := item.c
		if _, done := r.closed[current]; done {
			continue
		}
		if current.Equal(r.target) {
			return current, nil
		}
		r.closed[current] = struct{}{}

		for _, d := range cardinalDirections {
			jp, ok := r.jump(current, d[0], d[1])
			if !ok {
				continue
			}
			if _, done := r.closed[jp]; done {
				continue
			}
			cost := float64(manhattanSteps(current, jp))
			tentative := r.gScore[current] + cost
			if existing, seen := r.gScore[jp]; seen && tentative >= existing {
				continue
			}
			r.gScore[jp] = tentative
			r.cameFrom[jp] = current
			r.seq++
			heap.Push(&r.open, &openItem{c: jp, f: tentative + Manhattan(jp, r.target), seq: r.seq})
		}
	}
	return coord.Dead, nil
}

// jump walks from `from` in direction (dx, dy) until it reaches the
// target, is blocked, or lands on a coordinate with a forced neighbor
// (one whose availability depends on an obstructed perpendicular neighbor,
// §4.D.2).
func (r *jpsRunner) jump(from coord.Coordinate, dx, dy int) (coord.Coordinate, bool) {
	prev := from
	cur := coord.Coordinate{X: from.X + dx, Y: from.Y + dy, Z: from.Z}
	for {
		if !r.grid.WithinBounds(cur) {
			return coord.Dead, false
		}
		if r.grid.connectionObstructed(prev, cur) {
			return coord.Dead, false
		}
		if r.grid.coordObstructed(cur, r.target) {
			return coord.Dead, false
		}
		if cur.Equal(r.target) {
			return cur, true
		}
		if r.hasForcedNeighbor(prev, cur, dx, dy) {
			return cur, true
		}
		prev = cur
		cur = coord.Coordinate{X: cur.X + dx, Y: cur.Y + dy, Z: cur.Z}
	}
}

// hasForcedNeighbor reports whether cur (reached from prev while moving in
// direction (dx,dy)) has a perpendicular neighbor that was obstructed at
// prev but is free at cur — the signature of a forced neighbor: stepping
// further straight would miss a shortcut that only opens up at cur.
func (r *jpsRunner) hasForcedNeighbor(prev, cur coord.Coordinate, dx, dy int) bool {
	var px, py int
	if dx != 0 {
		px, py = 0, 1
	} else {
		px, py = 1, 0
	}
	for _, sign := range [2]int{1, -1} {
		perpCur := coord.Coordinate{X: cur.X + sign*px, Y: cur.Y + sign*py, Z: cur.Z}
		perpPrev := coord.Coordinate{X: prev.X + sign*px, Y: prev.Y + sign*py, Z: prev.Z}
		curBlocked := r.blocked(cur, perpCur)
		prevBlocked := r.blocked(prev, perpPrev)
		if prevBlocked && !curBlocked {
			return true
		}
	}
	return false
}

func (r *jpsRunner) blocked(from, c coord.Coordinate) bool {
	if !r.grid.WithinBounds(c) {
		return true
	}
	if r.grid.connectionObstructed(from, c) {
		return true
	}
	return r.grid.coordObstructed(c, r.target)
}

// reconstructFilled walks the cameFrom chain of jump points back to src
// and fills every straight segment between consecutive jump points by
// Bresenham interpolation (trivial here since every segment is
// axis-aligned: JPS never jumps diagonally in this module).
func (r *jpsRunner) reconstructFilled(src, dst coord.Coordinate) routing.Path {
	jumpPoints := []coord.Coordinate{dst}
	cur := dst
	for !cur.Equal(src) {
		cur = r.cameFrom[cur]
		jumpPoints = append(jumpPoints, cur)
	}
	for i, j := 0, len(jumpPoints)-1; i < j; i, j = i+1, j-1 {
		jumpPoints[i], jumpPoints[j] = jumpPoints[j], jumpPoints[i]
	}

	coords := []coord.Coordinate{jumpPoints[0]}
	for i := 1; i < len(jumpPoints); i++ {
		coords = append(coords, fillSegment(jumpPoints[i-1], jumpPoints[i])...)
	}
	return routing.NewPath(coords)
}

// fillSegment returns every coordinate strictly between a and b, followed
// by b itself, assuming a and b share an X or Y coordinate (axis-aligned).
func fillSegment(a, b coord.Coordinate) []coord.Coordinate {
	dx := sign(b.X - a.X)
	dy := sign(b.Y - a.Y)
	steps := manhattanSteps(a, b)
	out := make([]coord.Coordinate, 0, steps)
	cur := a
	for i := 0; i < steps; i++ {
		cur = coord.Coordinate{X: cur.X + dx, Y: cur.Y + dy, Z: cur.Z}
		out = append(out, cur)
	}
	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func manhattanSteps(a, b coord.Coordinate) int {
	return coord.ManhattanDistance(a, b)
}
