package pathfinding

import (
	"math"
	"testing"

	"github.com/fcnkit/fcn/clocking"
	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/obstruction"
	"github.com/fcnkit/fcn/routing"
)

func newGrid(n int, scheme clocking.Scheme) *Grid {
	g := coord.NewGrid(coord.Dimension{X: n, Y: n, Z: 1}, coord.Cartesian)
	return NewGrid(clocking.New(g, scheme))
}

// TestAStarE3 is the E3 end-to-end scenario: A* on a 5x5 2DDWave grid from
// (0,0) to (4,4) with no obstructions has path length 9 (i.e. 8 edges).
func TestAStarE3(t *testing.T) {
	grid := newGrid(4, clocking.TwoDDWave3())
	p, err := AStar(grid, routing.Objective{Source: coord.New(0, 0), Target: coord.New(4, 4)}, Manhattan, UnitCost)
	if err != nil {
		t.Fatalf("AStar: %v", err)
	}
	if p.Len() != 9 {
		t.Errorf("path length = %d; want 9", p.Len())
	}
	assertValidPath(t, grid, p, coord.New(0, 0), coord.New(4, 4))
}

// TestAStarE4 is the E4 scenario: obstructing the column x=2 from y=0..4
// makes (0,0)->(4,4) unreachable; both A* and JPS must return empty.
func TestAStarE4(t *testing.T) {
	overlay := obstruction.New()
	for y := 0; y <= 4; y++ {
		overlay.ObstructCoordinate(coord.New(2, y))
	}
	grid := newGrid(4, clocking.TwoDDWave3()).WithOverlay(overlay)

	p, err := AStar(grid, routing.Objective{Source: coord.New(0, 0), Target: coord.New(4, 4)}, Manhattan, UnitCost)
	if err != nil {
		t.Fatalf("AStar: %v", err)
	}
	if !p.Empty() {
		t.Errorf("expected empty path when column is fully obstructed, got %v", p.Coordinates())
	}

	cartesian := NewGrid(clocking.New(coord.NewGrid(coord.Dimension{X: 4, Y: 4, Z: 1}, coord.Cartesian), clocking.TwoDDWave3())).WithOverlay(overlay)
	jpsPath, err := JumpPointSearch(cartesian, routing.Objective{Source: coord.New(0, 0), Target: coord.New(4, 4)})
	if err != nil {
		t.Fatalf("JumpPointSearch: %v", err)
	}
	if !jpsPath.Empty() {
		t.Errorf("expected empty JPS path when column is fully obstructed")
	}
}

func TestAStarDistanceUnreachable(t *testing.T) {
	overlay := obstruction.New()
	for y := 0; y <= 2; y++ {
		overlay.ObstructCoordinate(coord.New(1, y))
	}
	grid := newGrid(2, clocking.TwoDDWave3()).WithOverlay(overlay)
	dist, err := AStarDistance(grid, routing.Objective{Source: coord.New(0, 0), Target: coord.New(2, 2)})
	if err != nil {
		t.Fatalf("AStarDistance: %v", err)
	}
	if dist != math.MaxInt64 {
		t.Errorf("dist = %d; want math.MaxInt64 for an unreachable target", dist)
	}
}

func TestEnumerateAllPathsExhaustiveness(t *testing.T) {
	grid := newGrid(2, clocking.TwoDDWave3())
	collection, err := EnumerateAllPaths(grid, routing.Objective{Source: coord.New(0, 0), Target: coord.New(2, 2)})
	if err != nil {
		t.Fatalf("EnumerateAllPaths: %v", err)
	}
	if len(collection) == 0 {
		t.Fatalf("expected at least one path on an open 2DDWave grid")
	}
	// 2DDWave only steps east or south, so (0,0)->(2,2) has C(4,2) = 6
	// monotone paths and an exhaustive enumeration finds all of them.
	if len(collection) != 6 {
		t.Errorf("len(collection) = %d; want 6", len(collection))
	}
	for _, p := range collection {
		assertValidPath(t, grid, p, coord.New(0, 0), coord.New(2, 2))
	}
}

func TestYenMonotonicity(t *testing.T) {
	grid := newGrid(3, clocking.TwoDDWave3())
	collection, err := YenKShortest(grid, routing.Objective{Source: coord.New(0, 0), Target: coord.New(3, 3)}, 4)
	if err != nil {
		t.Fatalf("YenKShortest: %v", err)
	}
	lengths := collection.Lengths()
	for i := 1; i < len(lengths); i++ {
		if lengths[i] < lengths[i-1] {
			t.Errorf("Yen's lengths not monotonic: %v", lengths)
		}
	}
}

func TestYenRejectsNonPositiveK(t *testing.T) {
	grid := newGrid(2, clocking.TwoDDWave3())
	if _, err := YenKShortest(grid, routing.Objective{Source: coord.New(0, 0), Target: coord.New(2, 2)}, 0); err == nil {
		t.Errorf("expected an error for K=0")
	}
}

func assertValidPath(t *testing.T, grid *Grid, p routing.Path, src, dst coord.Coordinate) {
	t.Helper()
	if p.Empty() {
		t.Fatalf("unexpected empty path")
	}
	if p.Source() != src || p.Target() != dst {
		t.Fatalf("path endpoints = %v/%v; want %v/%v", p.Source(), p.Target(), src, dst)
	}
	seen := map[coord.Coordinate]bool{}
	coords := p.Coordinates()
	for i, c := range coords {
		if seen[c] {
			t.Fatalf("path repeats coordinate %v", c)
		}
		seen[c] = true
		if i+1 < len(coords) && !grid.Clocked.Grid.Adjacent(c, coords[i+1]) {
			t.Fatalf("coordinates %v and %v are not adjacent", c, coords[i+1])
		}
	}
}
