package clocking

import (
	"testing"

	"github.com/fcnkit/fcn/coord"
)

func TestTwoDDWavePhaseInvariant(t *testing.T) {
	grid := clockedGrid(5, 5, TwoDDWave3())
	for y := 0; y <= 5; y++ {
		for x := 0; x <= 5; x++ {
			c := coord.New(x, y)
			for _, out := range grid.OutgoingClocked(c) {
				n := grid.Scheme.NumPhases()
				want := mod(grid.Scheme.Phase(c)+1, n)
				if grid.Scheme.Phase(out) != want {
					t.Fatalf("phase invariant violated at %v -> %v", c, out)
				}
			}
		}
	}
}

func TestRESAllowsMAJOnly(t *testing.T) {
	if !RES().AllowsMAJ() {
		t.Errorf("RES must allow MAJ")
	}
	if USE().AllowsMAJ() || TwoDDWave3().AllowsMAJ() || BANCS().AllowsMAJ() {
		t.Errorf("only RES may allow MAJ")
	}
}

func TestOpenSchemePhaseTable(t *testing.T) {
	o := NewOpenScheme("custom", 3, false, map[coord.Coordinate]int{
		coord.New(0, 0): 0,
		coord.New(1, 0): 1,
	})
	if got := o.Phase(coord.New(0, 0)); got != 0 {
		t.Errorf("Phase(0,0) = %d; want 0", got)
	}
	if got := o.Phase(coord.New(9, 9)); got != -1 {
		t.Errorf("Phase(unassigned) = %d; want -1", got)
	}
	o.SetPhase(coord.New(9, 9), 2)
	if got := o.Phase(coord.New(9, 9)); got != 2 {
		t.Errorf("Phase(after SetPhase) = %d; want 2", got)
	}
}

func TestByNameRoundTrip(t *testing.T) {
	s, err := ByName("2DDWave4")
	if err != nil {
		t.Fatalf("ByName returned error: %v", err)
	}
	if s.Name() != "2DDWave" || s.NumPhases() != 4 {
		t.Errorf("ByName(2DDWave4) = %+v", s)
	}
	if _, err := ByName("NoSuchScheme"); err == nil {
		t.Errorf("expected error for unknown scheme name")
	}
}

func clockedGrid(x, y int, scheme Scheme) *ClockedGrid {
	g := coord.NewGrid(coord.Dimension{X: x, Y: y, Z: 1}, coord.Cartesian)
	return New(g, scheme)
}
