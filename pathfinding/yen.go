// Yen's K-shortest-paths algorithm (§4.D.3, mode "Yen's K-shortest"):
// enumerates up to K shortest distinct simple paths, using A* as the
// shortest-path oracle with temporary edge/node removals (spur paths). K
// must be a finite positive count; the "K = infinity" request described in
// the specification is rejected rather than silently treated as
// enumerate-all.
package pathfinding

import (
	"fmt"
	"sort"

	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/obstruction"
	"github.com/fcnkit/fcn/routing"
)

// YenKShortest returns up to k shortest distinct simple paths from
// objective.Source to objective.Target, in non-decreasing length order
// (§8 property 5). k must be a finite positive integer.
func YenKShortest(grid *Grid, objective routing.Objective, k int) (routing.PathCollection, error) {
	if k <= 0 {
		return nil, fmt.Errorf("pathfinding: YenKShortest requires a finite positive K, got %d", k)
	}

	first, err := AStar(grid, objective, Manhattan, UnitCost)
	if err != nil {
		return nil, err
	}
	if first.Empty() {
		return nil, nil
	}

	A := routing.PathCollection{first}
	var B routing.PathCollection

	baseOverlay := grid.Overlay
	if baseOverlay == nil {
		baseOverlay = obstruction.New()
	}

	for len(A) < k {
		prevCoords := A[len(A)-1].Coordinates()

		for i := 0; i < len(prevCoords)-1; i++ {
			spurNode := prevCoords[i]
			rootCoords := append([]coord.Coordinate(nil), prevCoords[:i+1]...)

			tempOverlay := baseOverlay.Clone()
			for _, p := range A {
				pc := p.Coordinates()
				if sharesPrefix(pc, rootCoords) && len(pc) > i+1 {
					tempOverlay.ObstructConnection(pc[i], pc[i+1])
				}
			}
			for _, rc := range rootCoords[:len(rootCoords)-1] {
				tempOverlay.ObstructCoordinate(rc)
			}

			spurGrid := &Grid{Clocked: grid.Clocked, Overlay: tempOverlay, AllowCrossings: grid.AllowCrossings}
			spurObjective := routing.Objective{Source: spurNode, Target: objective.Target}
			spurPath, err := AStar(spurGrid, spurObjective, Manhattan, UnitCost)
			if err != nil {
				return nil, err
			}
			if spurPath.Empty() {
				continue
			}

			total := append(append([]coord.Coordinate(nil), rootCoords[:len(rootCoords)-1]...), spurPath.Coordinates()...)
			candidate := routing.NewPath(total)
			if !containsPath(A, candidate) && !containsPath(B, candidate) {
				B = B.Append(candidate)
			}
		}

		if len(B) == 0 {
			break
		}
		sort.SliceStable(B, func(i, j int) bool { return B[i].Len() < B[j].Len() })
		A = A.Append(B[0])
		B = B[1:]
	}

	return A, nil
}

func sharesPrefix(coords, prefix []coord.Coordinate) bool {
	if len(coords) < len(prefix) {
		return false
	}
	for i, c := range prefix {
		if !coords[i].Equal(c) {
			return false
		}
	}
	return true
}

func containsPath(pc routing.PathCollection, candidate routing.Path) bool {
	candCoords := candidate.Coordinates()
	for _, p := range pc {
		pCoords := p.Coordinates()
		if len(pCoords) != len(candCoords) {
			continue
		}
		equal := true
		for i := range pCoords {
			if !pCoords[i].Equal(candCoords[i]) {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
	}
	return false
}
