package exact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fcnkit/fcn/clocking"
	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/network"
)

func newTestClockedGrid(x, y int) *clocking.ClockedGrid {
	grid := coord.NewGrid(coord.Dimension{X: x, Y: y, Z: 0}, coord.Cartesian)
	return clocking.New(grid, clocking.TwoDDWave4())
}

func buildInverterChain() *network.SimpleNetwork {
	n := network.NewSimpleNetwork()
	n.AddVertex("in", network.OpWIRE)
	n.MarkPI("in")
	n.AddVertex("not1", network.OpNOT)
	n.AddVertex("out", network.OpWIRE)
	n.MarkPO("out")
	n.AddEdge("e0", "in", "not1")
	n.AddEdge("e1", "not1", "out")
	return n
}

func TestEngineFindsSmallSATDimension(t *testing.T) {
	n := buildInverterChain()
	cfg := New(WithUpperBound(4), WithTimeout(5*time.Second))
	engine := NewEngine(n, cfg)

	l, report, err := engine.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, l)
	require.GreaterOrEqual(t, report.Dimension.X, 0)
	require.GreaterOrEqual(t, report.Dimension.Y, 0)

	for _, v := range n.Vertices() {
		found := false
		for _, t2 := range l.AllTiles() {
			if t2.NodeID == string(v) {
				found = true
				break
			}
		}
		require.True(t, found, "vertex %s must be placed somewhere in the winning layout", v)
	}
}

func TestEngineFixedSizeUNSATReportsError(t *testing.T) {
	n := buildInverterChain()
	// A 0x0 grid has exactly one ground tile: three vertices cannot fit.
	cfg := New(WithFixedSize(0))
	engine := NewEngine(n, cfg)

	_, _, err := engine.Run(context.Background())
	require.Error(t, err)
}

func TestEngineRespectsContextCancellation(t *testing.T) {
	n := buildInverterChain()
	cfg := New(WithUpperBound(4))
	engine := NewEngine(n, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := engine.Run(ctx)
	require.Error(t, err)
}

func TestCandidateDimensionsOrderedByArea(t *testing.T) {
	dims := generateDimensions(2, false)
	for i := 1; i < len(dims); i++ {
		require.False(t, lessDimension(dims[i], dims[i-1]), "dimensions must be non-decreasing in area")
	}
}

func TestDimensionStateTransitions(t *testing.T) {
	require.True(t, StateNew.CanTransitionTo(StateConstrained))
	require.True(t, StateConstrained.CanTransitionTo(StateSAT))
	require.True(t, StateConstrained.CanTransitionTo(StateUNSAT))
	require.False(t, StateSAT.CanTransitionTo(StateConstrained))
	require.False(t, StateNew.CanTransitionTo(StateSAT))
}

func TestBudgetUnboundedNeverExpires(t *testing.T) {
	b := NewBudget(0)
	require.False(t, b.Expired())
	require.Greater(t, b.Remaining(), time.Hour)
}

func TestBudgetExpiresPastDeadline(t *testing.T) {
	b := NewBudget(1 * time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	require.True(t, b.Expired())
}

func TestSearchRespectsCancelledContext(t *testing.T) {
	n := buildInverterChain()
	hier, err := network.Levelize(n)
	require.NoError(t, err)
	grid := newTestClockedGrid(3, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSearchState(n, hier, grid)
	require.False(t, s.Search(ctx, NewBudget(0)), "a pre-cancelled context must abort the search immediately")
}

func TestSearchSeedFromReusesAncestorPlacement(t *testing.T) {
	n := buildInverterChain()
	hier, err := network.Levelize(n)
	require.NoError(t, err)
	grid := newTestClockedGrid(3, 3)

	parent := NewSearchState(n, hier, grid)
	require.True(t, parent.Search(context.Background(), NewBudget(0)))

	child := NewSearchState(n, hier, grid)
	child.seedFrom(parent)
	for _, v := range n.Vertices() {
		_, ok := child.assign[v]
		require.True(t, ok, "seedFrom must carry over every vertex the ancestor placed")
	}
	// A fully-seeded search completes without exploring any further branches.
	require.True(t, child.Search(context.Background(), NewBudget(0)))
}
