package coord

import "testing"

func TestWithinBounds(t *testing.T) {
	dims := Dimension{X: 4, Y: 4, Z: 1}
	cases := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"origin", New(0, 0), true},
		{"corner", New(4, 4), true},
		{"crossing", NewCrossing(2, 2), true},
		{"out-of-bounds-x", New(5, 0), false},
		{"out-of-bounds-z", Coordinate{X: 0, Y: 0, Z: 2}, false},
		{"dead", Dead, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dims.WithinBounds(tc.c); got != tc.want {
				t.Errorf("WithinBounds(%v) = %v; want %v", tc.c, got, tc.want)
			}
		})
	}
}

func TestLessTotalOrder(t *testing.T) {
	a := New(1, 0)
	b := New(0, 1)
	if !a.Less(b) {
		t.Errorf("expected (1,0) < (0,1) by y-then-x order")
	}
	if b.Less(a) {
		t.Errorf("order must not be symmetric")
	}
}

func TestManhattanDistance(t *testing.T) {
	if got := ManhattanDistance(New(0, 0), New(4, 4)); got != 8 {
		t.Errorf("ManhattanDistance = %d; want 8", got)
	}
}

func TestDimensionGrow(t *testing.T) {
	d := Dimension{X: 2, Y: 2, Z: 1}
	east := d.GrowEast()
	if east.X != 3 || east.Y != 2 {
		t.Errorf("GrowEast = %+v; want X=3,Y=2", east)
	}
	south := d.GrowSouth()
	if south.Y != 3 || south.X != 2 {
		t.Errorf("GrowSouth = %+v; want Y=3,X=2", south)
	}
}

func TestEmptyGridArea(t *testing.T) {
	d := Dimension{X: 0, Y: 0, Z: 0}
	if got := d.Area(); got != 1 {
		t.Errorf("Area() = %d; want 1 (E1 scenario)", got)
	}
}

func TestCartesianSurrounding(t *testing.T) {
	g := NewGrid(Dimension{X: 2, Y: 2, Z: 0}, Cartesian)
	neighbors := g.Surrounding(New(1, 1))
	if len(neighbors) != 4 {
		t.Errorf("Surrounding(center) = %d neighbors; want 4", len(neighbors))
	}
	corner := g.Surrounding(New(0, 0))
	if len(corner) != 2 {
		t.Errorf("Surrounding(corner) = %d neighbors; want 2", len(corner))
	}
}

func TestGridKindRoundTrip(t *testing.T) {
	kinds := []GridKind{
		Cartesian, ShiftedCartesianOddRow, ShiftedCartesianEvenRow,
		ShiftedCartesianOddColumn, ShiftedCartesianEvenColumn,
		HexagonalOddRow, HexagonalEvenRow, HexagonalOddColumn, HexagonalEvenColumn,
	}
	for _, k := range kinds {
		parsed, ok := ParseGridKind(k.String())
		if !ok || parsed != k {
			t.Errorf("ParseGridKind(%q) = %v,%v; want %v,true", k.String(), parsed, ok, k)
		}
	}
}
