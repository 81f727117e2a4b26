package routing

import (
	"testing"

	"github.com/fcnkit/fcn/coord"
)

func TestPathSourceTarget(t *testing.T) {
	p := NewPath([]coord.Coordinate{coord.New(0, 0), coord.New(1, 0), coord.New(2, 0)})
	if p.Source() != coord.New(0, 0) {
		t.Errorf("Source() = %v; want (0,0)", p.Source())
	}
	if p.Target() != coord.New(2, 0) {
		t.Errorf("Target() = %v; want (2,0)", p.Target())
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d; want 3", p.Len())
	}
}

func TestEmptyPath(t *testing.T) {
	var p Path
	if !p.Empty() {
		t.Fatalf("zero-value Path must be empty")
	}
	if p.Source() != coord.Dead || p.Target() != coord.Dead {
		t.Errorf("empty path endpoints must be coord.Dead")
	}
}

func TestIntersectsAndSharesSegment(t *testing.T) {
	a := NewPath([]coord.Coordinate{coord.New(0, 0), coord.New(1, 0), coord.New(2, 0)})
	b := NewPath([]coord.Coordinate{coord.New(1, 0), coord.New(1, 1)})
	if !a.Intersects(b) {
		t.Errorf("expected a and b to intersect at (1,0)")
	}
	if a.SharesSegment(b) {
		t.Errorf("sharing a single coordinate must not count as a segment overlap")
	}

	c := NewPath([]coord.Coordinate{coord.New(0, 0), coord.New(1, 0), coord.New(2, 0)})
	d := NewPath([]coord.Coordinate{coord.New(1, 0), coord.New(2, 0), coord.New(2, 1)})
	if !c.SharesSegment(d) {
		t.Errorf("expected c and d to share the (1,0)->(2,0) segment")
	}
}

func TestIntersectsExcludesSharedEndpoint(t *testing.T) {
	// Two different-source paths converging on a shared target tile (a
	// multi-fanin gate pin) must not be reported as intersecting.
	p := NewPath([]coord.Coordinate{coord.New(0, 0), coord.New(1, 0), coord.New(2, 0)})
	q := NewPath([]coord.Coordinate{coord.New(0, 2), coord.New(1, 1), coord.New(2, 0)})
	if p.Intersects(q) {
		t.Errorf("sharing only a common endpoint must not count as an intersection")
	}
}

func TestPathCollectionLengths(t *testing.T) {
	pc := PathCollection{}
	pc = pc.Append(NewPath([]coord.Coordinate{coord.New(0, 0), coord.New(1, 0)}))
	pc = pc.Append(NewPath([]coord.Coordinate{coord.New(0, 0), coord.New(1, 0), coord.New(2, 0)}))
	lengths := pc.Lengths()
	if lengths[0] != 2 || lengths[1] != 3 {
		t.Errorf("Lengths() = %v; want [2 3]", lengths)
	}
}
