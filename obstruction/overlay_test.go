package obstruction

import (
	"testing"

	"github.com/fcnkit/fcn/coord"
)

func TestObstructedCoordinate(t *testing.T) {
	o := New()
	c := coord.New(2, 2)
	if o.ObstructedCoordinate(c) {
		t.Fatalf("fresh overlay must block nothing")
	}
	o.ObstructCoordinate(c)
	if !o.ObstructedCoordinate(c) {
		t.Fatalf("expected %v to be obstructed", c)
	}
	o.ClearCoordinate(c)
	if o.ObstructedCoordinate(c) {
		t.Fatalf("expected %v to be cleared", c)
	}
}

func TestCanCrossRequiresWireBelowAndFreeAbove(t *testing.T) {
	o := New()
	ground := coord.New(3, 3)

	if o.CanCross(ground) {
		t.Fatalf("crossing must be denied when ground coordinate is not a wire")
	}
	o.MarkWire(ground)
	if !o.CanCross(ground) {
		t.Fatalf("crossing must be allowed over a wire with a free crossing layer")
	}
	o.ObstructCoordinate(coord.NewCrossing(3, 3))
	if o.CanCross(ground) {
		t.Fatalf("crossing must be denied once the crossing-layer tile is obstructed")
	}
}

func TestObstructedConnection(t *testing.T) {
	o := New()
	a, b := coord.New(0, 0), coord.New(1, 0)
	if o.ObstructedConnection(a, b) {
		t.Fatalf("fresh overlay must not block any connection")
	}
	o.ObstructConnection(a, b)
	if !o.ObstructedConnection(a, b) {
		t.Fatalf("expected connection a->b to be obstructed")
	}
	if o.ObstructedConnection(b, a) {
		t.Fatalf("connection obstruction must be directional")
	}
}
