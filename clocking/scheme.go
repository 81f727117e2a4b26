// Package clocking maps coordinates to clock phases and defines the
// data-flow neighbor relation that every path-finding primitive in this
// module must respect: signals propagate only from a tile at phase p to a
// tile at phase (p+1) mod N.
package clocking

import (
	"fmt"

	"github.com/fcnkit/fcn/coord"
)

// Scheme assigns a clock phase to every coordinate of a grid and reports
// how many distinct phases it uses.
type Scheme interface {
	// Name is the scheme's identifier, e.g. "2DDWave", "USE", "RES".
	Name() string
	// NumPhases returns N, the clock-phase count (typically 3 or 4).
	NumPhases() int
	// Phase returns phi(c), the clock phase assigned to c.
	Phase(c coord.Coordinate) int
	// AllowsMAJ reports whether three-input majority gates may be placed
	// under this scheme. Only RES allows MAJ (§4.A).
	AllowsMAJ() bool
	// IsOpen reports whether phi is an explicit per-coordinate table
	// (true) or a periodic tiling function of (x, y, z) (false).
	IsOpen() bool
}

// regular is a periodic clocking scheme: phi is computed from (x, y, z) via
// tileFn, never stored per-coordinate.
type regular struct {
	name      string
	numPhases int
	allowsMAJ bool
	tileFn    func(c coord.Coordinate, numPhases int) int
}

func (r regular) Name() string      { return r.name }
func (r regular) NumPhases() int    { return r.numPhases }
func (r regular) AllowsMAJ() bool   { return r.allowsMAJ }
func (r regular) IsOpen() bool      { return false }
func (r regular) Phase(c coord.Coordinate) int {
	return r.tileFn(c, r.numPhases)
}

// TwoDDWave3 is the 3-phase 2DDWave scheme: phi(x,y,z) = (x+y) mod 3.
func TwoDDWave3() Scheme {
	return regular{
		name: "2DDWave", numPhases: 3,
		tileFn: func(c coord.Coordinate, n int) int { return mod(c.X+c.Y, n) },
	}
}

// TwoDDWave4 is the 4-phase variant of 2DDWave.
func TwoDDWave4() Scheme {
	return regular{
		name: "2DDWave", numPhases: 4,
		tileFn: func(c coord.Coordinate, n int) int { return mod(c.X+c.Y, n) },
	}
}

// USE is the 4-phase "USE" scheme, tiling phases in 2x2 blocks.
func USE() Scheme {
	return regular{
		name: "USE", numPhases: 4,
		tileFn: func(c coord.Coordinate, n int) int {
			return mod(2*mod(c.Y, 2)+mod(c.X, 2), n)
		},
	}
}

// RES is the 4-phase "RES" scheme, the only scheme permitting MAJ gates.
func RES() Scheme {
	return regular{
		name: "RES", numPhases: 4, allowsMAJ: true,
		tileFn: func(c coord.Coordinate, n int) int {
			return mod(2*mod(c.X, 2)+mod(c.Y, 2), n)
		},
	}
}

// BANCS is the 3-phase "BANCS" scheme, a diagonal-striped tiling.
func BANCS() Scheme {
	return regular{
		name: "BANCS", numPhases: 3,
		tileFn: func(c coord.Coordinate, n int) int { return mod(c.X-c.Y, n) },
	}
}

// ToPoliNano is the columnar ToPoliNano scheme: phi depends only on x.
func ToPoliNano() Scheme {
	return regular{
		name: "ToPoliNano", numPhases: 4,
		tileFn: func(c coord.Coordinate, n int) int { return mod(c.X, n) },
	}
}

// Bestagon is the 3-phase hexagonal Bestagon scheme.
func Bestagon() Scheme {
	return regular{
		name: "Bestagon", numPhases: 3,
		tileFn: func(c coord.Coordinate, n int) int { return mod(c.X+2*c.Y, n) },
	}
}

func mod(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// byName indexes the named regular schemes by their §6 `scheme` config
// value, for callers (e.g. fgl, exact.Config) that select a scheme by name.
var byName = map[string]func() Scheme{
	"2DDWave3":   TwoDDWave3,
	"2DDWave4":   TwoDDWave4,
	"2DDWave":    TwoDDWave4,
	"USE":        USE,
	"RES":        RES,
	"BANCS":      BANCS,
	"ToPoliNano": ToPoliNano,
	"Bestagon":   Bestagon,
}

// ByName resolves a regular scheme by its name; it returns an error for
// open schemes (which carry per-coordinate state and cannot be recreated
// from a name alone) or unknown names.
func ByName(name string) (Scheme, error) {
	ctor, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("clocking: unknown scheme %q", name)
	}
	return ctor(), nil
}

// OpenScheme is a clocking scheme whose phase assignment is an explicit
// per-coordinate table rather than a periodic function, as required by the
// FGL <zones> element (§6).
type OpenScheme struct {
	SchemeName string
	Phases     int
	MAJ        bool
	zones      map[coord.Coordinate]int
}

// NewOpenScheme constructs an OpenScheme with the given per-coordinate
// phase table. zones is copied defensively.
func NewOpenScheme(name string, numPhases int, allowsMAJ bool, zones map[coord.Coordinate]int) *OpenScheme {
	cp := make(map[coord.Coordinate]int, len(zones))
	for c, p := range zones {
		cp[c] = p
	}
	return &OpenScheme{SchemeName: name, Phases: numPhases, MAJ: allowsMAJ, zones: cp}
}

func (o *OpenScheme) Name() string    { return o.SchemeName }
func (o *OpenScheme) NumPhases() int  { return o.Phases }
func (o *OpenScheme) AllowsMAJ() bool { return o.MAJ }
func (o *OpenScheme) IsOpen() bool    { return true }

// Phase returns the stored phase for c, or -1 if c has no assigned zone.
func (o *OpenScheme) Phase(c coord.Coordinate) int {
	if p, ok := o.zones[c]; ok {
		return p
	}
	return -1
}

// SetPhase assigns phase p to coordinate c, growing the zone table.
func (o *OpenScheme) SetPhase(c coord.Coordinate, p int) {
	o.zones[c] = p
}

// Zones returns a defensive copy of the per-coordinate phase table, used by
// the FGL writer to emit <zones>.
func (o *OpenScheme) Zones() map[coord.Coordinate]int {
	cp := make(map[coord.Coordinate]int, len(o.zones))
	for c, p := range o.zones {
		cp[c] = p
	}
	return cp
}
