// Enumerate-all-paths (§4.D.3, mode "All"): depth-first enumeration of
// every simple source->target path respecting clocking and obstructions.
// Finite because the grid is finite and the loop-less constraint bounds
// recursion depth.
package pathfinding

import (
	"errors"

	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/fcnerr"
	"github.com/fcnkit/fcn/routing"
)

// EnumerateAllPaths depth-first enumerates every simple (loop-less) path
// from objective.Source to objective.Target on grid. The number of
// returned paths equals the count of simple source->target paths in the
// ground clocked graph (§8 property 4).
func EnumerateAllPaths(grid *Grid, objective routing.Objective) (routing.PathCollection, error) {
	src, dst := objective.Source, objective.Target
	if src.IsDead() || dst.IsDead() {
		return nil, errors.Join(fcnerr.InvalidCoordinate, errors.New("pathfinding: dead endpoint"))
	}
	if !grid.WithinBounds(src) || !grid.WithinBounds(dst) {
		return nil, errors.Join(fcnerr.OutOfBounds, errors.New("pathfinding: endpoint out of bounds"))
	}

	var results routing.PathCollection
	visited := map[coord.Coordinate]struct{}{src: {}}
	current := []coord.Coordinate{src}
	enumerateDFS(grid, current, visited, dst, &results)
	return results, nil
}

func enumerateDFS(grid *Grid, current []coord.Coordinate, visited map[coord.Coordinate]struct{}, target coord.Coordinate, out *routing.PathCollection) {
	last := current[len(current)-1]
	if last.Equal(target) {
		*out = out.Append(routing.NewPath(current))
		return
	}
	for _, next := range grid.Successors(last, target) {
		if _, seen := visited[next]; seen {
			continue
		}
		visited[next] = struct{}{}
		current = append(current, next)

		enumerateDFS(grid, current, visited, target, out)

		current = current[:len(current)-1]
		delete(visited, next)
	}
}
