// A* shortest-path search on clocked grids (§4.D.1).
//
// Complexity:
//   - Time:  O((V + E) log V), same shape as the teacher library's
//     Dijkstra: each coordinate is popped from the open set at most once,
//     each successor relaxation may push a new heap entry.
//   - Space: O(V) for the came_from/gScore maps plus O(V) for the heap
//     under the lazy-decrease-key discipline.
//
// Contract: when the heuristic h is admissible (never overestimates the
// remaining cost — Manhattan and Euclidean both qualify on a uniform-cost
// clocked grid), the returned path has minimum total edge cost. Ties are
// broken lexicographically on (f, insertion order), which makes the result
// deterministic for identical inputs.
package pathfinding

import (
	"container/heap"
	"errors"
	"math"

	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/fcnerr"
	"github.com/fcnkit/fcn/routing"
)

// Heuristic estimates the remaining cost from c to target. Built-in
// heuristics are admissible on a uniform-cost clocked grid.
type Heuristic func(c, target coord.Coordinate) float64

// Manhattan is the admissible |dx|+|dy| heuristic, the default choice for
// Cartesian and clocked grids with unit step cost.
func Manhattan(c, target coord.Coordinate) float64 {
	return float64(coord.ManhattanDistance(c, target))
}

// Euclidean is the admissible straight-line-distance heuristic.
func Euclidean(c, target coord.Coordinate) float64 {
	dx := float64(c.X - target.X)
	dy := float64(c.Y - target.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Zero is the trivial admissible heuristic (h=0 everywhere), which reduces
// A* to Dijkstra's algorithm when passed to AStar as h. AStar defaults to
// Manhattan when h is nil, and AStarDistance always uses Manhattan.
func Zero(coord.Coordinate, coord.Coordinate) float64 { return 0 }

// CostFn returns the cost of the single step from a to b. UnitCost (the
// default) charges 1 per step, matching the uniform-cost assumption the
// admissibility contract relies on.
type CostFn func(a, b coord.Coordinate) float64

// UnitCost charges exactly 1 per step.
func UnitCost(coord.Coordinate, coord.Coordinate) float64 { return 1 }

// AStar finds the shortest loop-less path from objective.Source to
// objective.Target on grid. It returns an empty Path (not an error) when
// the target is unreachable. Dead or out-of-bounds endpoints fail with
// fcnerr.InvalidCoordinate / fcnerr.OutOfBounds respectively.
func AStar(grid *Grid, objective routing.Objective, h Heuristic, step CostFn) (routing.Path, error) {
	if h == nil {
		h = Manhattan
	}
	if step == nil {
		step = UnitCost
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

	r := &astarRunner{
		grid:     grid,
		target:   dst,
		h:        h,
		step:     step,
		gScore:   map[coord.Coordinate]float64{src: 0},
		cameFrom: map[coord.Coordinate]coord.Coordinate{},
		closed:   map[coord.Coordinate]struct{}{},
	}
	heap.Init(&r.open)
	heap.Push(&r.open, &openItem{c: src, f: h(src, dst), seq: 0})

	return r.run(src, dst)
}

// AStarDistance returns the number of edges on the shortest path from
// source to target, or math.MaxInt64 if unreachable. It equals
// path.Len()-1 of the path AStar returns when a path exists (§8
// property 3).
func AStarDistance(grid *Grid, objective routing.Objective) (int, error) {
	p, err := AStar(grid, objective, Manhattan, UnitCost)
	if err != nil {
		return 0, err
	}
	if p.Empty() {
		return math.MaxInt64, nil
	}
	return p.Len() - 1, nil
}

type astarRunner struct {
	grid     *Grid
	target   coord.Coordinate
	h        Heuristic
	step     CostFn
	open     openHeap
	gScore   map[coord.Coordinate]float64
	cameFrom map[coord.Coordinate]coord.Coordinate
	closed   map[coord.Coordinate]struct{}
	seq      int
}

func (r *astarRunner) run(src, dst coord.Coordinate) (routing.Path, error) {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		current := item.c
		if _, done := r.closed[current]; done {
			continue
		}
		if current.Equal(dst) {
			return r.reconstruct(src, dst), nil
		}
		r.closed[current] = struct{}{}

		for _, next := range r.grid.Successors(current, dst) {
			if _, done := r.closed[next]; done {
				continue
			}
			tentativeG := r.gScore[current] + r.step(current, next)
			if existing, ok := r.gScore[next]; ok && tentativeG >= existing {
				continue
			}
			r.gScore[next] = tentativeG
			r.cameFrom[next] = current
			r.seq++
			heap.Push(&r.open, &openItem{c: next, f: tentativeG + r.h(next, dst), seq: r.seq})
		}
	}
	return routing.Path{}, nil // unreachable: empty path, not an error
}

func (r *astarRunner) reconstruct(src, dst coord.Coordinate) routing.Path {
	coords := []coord.Coordinate{dst}
	cur := dst
	for !cur.Equal(src) {
		cur = r.cameFrom[cur]
		coords = append(coords, cur)
	}
	// reverse in place
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}
	return routing.NewPath(coords)
}

// openItem is an entry in A*'s open set, ordered by f = g + h with
// insertion order as the deterministic tie-break.
type openItem struct {
	c   coord.Coordinate
	f   float64
	seq int
}

// openHeap is a min-heap of *openItem, lexicographically ordered on
// (f, seq) for determinism across identical inputs.
type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) {
	*h = append(*h, x.(*openItem))
}
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
