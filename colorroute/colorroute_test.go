package colorroute

import (
	"testing"

	"github.com/fcnkit/fcn/clocking"
	"github.com/fcnkit/fcn/coloring"
	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/layout"
	"github.com/fcnkit/fcn/obstruction"
	"github.com/fcnkit/fcn/pathfinding"
	"github.com/fcnkit/fcn/routing"
)

func newLayout(n int) *layout.Layout {
	g := coord.NewGrid(coord.Dimension{X: n, Y: n, Z: 1}, coord.Cartesian)
	return layout.New(clocking.New(g, clocking.TwoDDWave3()))
}

func astarGenerator(l *layout.Layout, overlay *obstruction.Overlay) func(routing.Objective) (routing.PathCollection, error) {
	return func(o routing.Objective) (routing.PathCollection, error) {
		grid := pathfinding.NewGrid(l.Grid).WithOverlay(overlay)
		p, err := pathfinding.AStar(grid, o, pathfinding.Manhattan, pathfinding.UnitCost)
		if err != nil {
			return nil, err
		}
		if p.Empty() {
			return nil, nil
		}
		return routing.PathCollection{p}, nil
	}
}

func TestRouteCommitsDisjointObjectives(t *testing.T) {
	l := newLayout(4)
	overlay := obstruction.New()
	orch := Orchestrator{Generate: astarGenerator(l, overlay)}

	objectives := []routing.Objective{
		{Source: coord.New(0, 0), Target: coord.New(4, 0)},
		{Source: coord.New(0, 4), Target: coord.New(4, 4)},
	}

	report, err := orch.Route(l, objectives, Config{Engine: coloring.SATEngine{}})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if !report.Success {
		t.Fatalf("expected success for two spatially disjoint objectives, got %+v", report)
	}
	if report.CommittedObjectives != 2 {
		t.Errorf("CommittedObjectives = %d; want 2", report.CommittedObjectives)
	}
	if report.UnsatisfiedObjectives != 0 {
		t.Errorf("UnsatisfiedObjectives = %d; want 0", report.UnsatisfiedObjectives)
	}
}

func TestRouteFailsAtomicallyOnUnroutableObjective(t *testing.T) {
	l := newLayout(2)
	overlay := obstruction.New()
	for y := 0; y <= 2; y++ {
		overlay.ObstructCoordinate(coord.New(1, y))
	}
	orch := Orchestrator{Generate: astarGenerator(l, overlay)}

	objectives := []routing.Objective{
		{Source: coord.New(0, 0), Target: coord.New(2, 2)},
	}

	snapshotBefore := l.Snapshot()
	report, err := orch.Route(l, objectives, Config{})
	if err == nil {
		t.Fatalf("expected an error for an unroutable objective with partial routing disabled")
	}
	if report.Success {
		t.Fatalf("expected Success=false, got %+v", report)
	}
	snapshotAfter := l.Snapshot()
	if len(snapshotAfter) != len(snapshotBefore) {
		t.Errorf("layout was mutated despite a failed atomic Route call")
	}
}
