// End-to-end scenario tests mirroring the teacher's tsp/integration_test.go
// style: each test drives several packages together through one of the
// scenarios named in this module's testable-properties list.
package fcn_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fcnkit/fcn/clocking"
	"github.com/fcnkit/fcn/colorroute"
	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/exact"
	"github.com/fcnkit/fcn/layout"
	"github.com/fcnkit/fcn/network"
	"github.com/fcnkit/fcn/routing"
)

func newTestLayout(x, y int) *layout.Layout {
	grid := coord.NewGrid(coord.Dimension{X: x, Y: y}, coord.Cartesian)
	clocked := clocking.New(grid, clocking.TwoDDWave4())
	return layout.New(clocked)
}

// E5: two diagonal objectives on a 5x5 grid both pass through the center
// tile (2,2). With crossings disabled that interior overlap is a hard
// conflict, so no single color can satisfy both objectives' cliques and
// the orchestrator must fail without mutating the layout. Allowing
// crossings turns the conflict into a shared-segment-only rule; routing
// one of the two objectives through the crossing layer at (2,2) removes
// the interior-coordinate overlap, so both commit.
//
// The two objectives are built directly as routing.Path values (rather
// than recomputed by A*) because every clocking scheme in this module is
// one-directional (data flows toward increasing phase only), so a single
// periodic scheme cannot route both a main diagonal and an anti-diagonal
// at once; this keeps the test focused on colorroute/epg's conflict
// handling rather than on clocking reachability, which is already
// covered by the pathfinding package's own tests.
func TestE5ColorRoutingCrossingDiagonals(t *testing.T) {
	diagA := []coord.Coordinate{
		coord.New(0, 0), coord.New(1, 1), coord.New(2, 2), coord.New(3, 3), coord.New(4, 4),
	}
	diagB := []coord.Coordinate{
		coord.New(4, 0), coord.New(3, 1), coord.New(2, 2), coord.New(1, 3), coord.New(0, 4),
	}
	objectives := []routing.Objective{
		{Source: diagA[0], Target: diagA[len(diagA)-1]},
		{Source: diagB[0], Target: diagB[len(diagB)-1]},
	}

	t.Run("crossings disabled: both diagonals share interior tile (2,2)", func(t *testing.T) {
		l := newTestLayout(4, 4)
		gen := func(o routing.Objective) (routing.PathCollection, error) {
			if o == objectives[0] {
				return routing.PathCollection{routing.NewPath(diagA)}, nil
			}
			return routing.PathCollection{routing.NewPath(diagB)}, nil
		}
		orch := colorroute.Orchestrator{Generate: gen}
		report, err := orch.Route(l, objectives, colorroute.Config{AllowCrossings: false})
		require.Error(t, err, "sharing an interior coordinate is a hard conflict without crossings")
		require.False(t, report.Success)
	})

	t.Run("crossings enabled: routing one diagonal through the crossing layer at the shared tile resolves the conflict", func(t *testing.T) {
		l := newTestLayout(4, 4)
		diagBCrossing := []coord.Coordinate{
			coord.New(4, 0), coord.New(3, 1), coord.NewCrossing(2, 2), coord.New(1, 3), coord.New(0, 4),
		}
		gen := func(o routing.Objective) (routing.PathCollection, error) {
			if o == objectives[0] {
				return routing.PathCollection{routing.NewPath(diagA)}, nil
			}
			return routing.PathCollection{routing.NewPath(diagBCrossing)}, nil
		}
		orch := colorroute.Orchestrator{Generate: gen}
		report, err := orch.Route(l, objectives, colorroute.Config{AllowCrossings: true})
		require.NoError(t, err)
		require.True(t, report.Success)
		require.Equal(t, 2, report.CommittedObjectives)
	})
}

// E6: a 2-input AND network placed by the exact engine on a 2DDWave 3-phase
// scheme must find a satisfiable dimension and place every vertex, with the
// AND gate reachable from both its primary inputs.
func TestE6ExactEngineTwoInputAND(t *testing.T) {
	n := network.NewSimpleNetwork()
	n.AddVertex("pi0", network.OpWIRE)
	n.AddVertex("pi1", network.OpWIRE)
	n.AddVertex("and0", network.OpAND)
	n.AddVertex("po0", network.OpWIRE)
	n.MarkPI("pi0")
	n.MarkPI("pi1")
	n.MarkPO("po0")
	n.AddEdge("e0", "pi0", "and0")
	n.AddEdge("e1", "pi1", "and0")
	n.AddEdge("e2", "and0", "po0")

	cfg := exact.New(exact.WithScheme("2DDWave3"), exact.WithUpperBound(4), exact.WithTimeout(5*time.Second))
	engine := exact.NewEngine(n, cfg)

	l, report, err := engine.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, l)
	require.LessOrEqual(t, report.Dimension.X, 4)
	require.LessOrEqual(t, report.Dimension.Y, 4)

	placed := map[string]bool{}
	for _, tile := range l.AllTiles() {
		if tile.Kind == layout.Vertex {
			placed[tile.NodeID] = true
		}
	}
	for _, v := range n.Vertices() {
		require.True(t, placed[string(v)], "vertex %s must be placed", v)
	}
}

// E7: cancelling the search context must stop the engine promptly and never
// hand back a committed layout.
func TestE7ExactEngineCancellation(t *testing.T) {
	n := network.NewSimpleNetwork()
	n.AddVertex("pi0", network.OpWIRE)
	n.AddVertex("not0", network.OpNOT)
	n.AddVertex("po0", network.OpWIRE)
	n.MarkPI("pi0")
	n.MarkPO("po0")
	n.AddEdge("e0", "pi0", "not0")
	n.AddEdge("e1", "not0", "po0")

	cfg := exact.New(exact.WithUpperBound(6), exact.WithNumThreads(4))
	engine := exact.NewEngine(n, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()

	start := time.Now()
	l, _, err := engine.Run(ctx)
	elapsed := time.Since(start)

	require.Less(t, elapsed, 2*time.Second, "cancellation must stop the search promptly")
	if err != nil {
		require.Nil(t, l, "a cancelled/failed run must never hand back a committed layout")
	}
}
