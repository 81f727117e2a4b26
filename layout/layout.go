// Package layout defines the gate-level clocked-grid layout produced by
// both the color-routing orchestrator (package colorroute) and the exact
// placement & routing engine (package exact): a clocked grid where each
// coordinate holds at most one logic node or up to two wire segments (when
// a crossing layer exists).
package layout

import (
	"fmt"
	"sync"

	"github.com/fcnkit/fcn/clocking"
	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/routing"
)

// TileKind classifies what a tile holds, mirroring the §6 FGL record kind
// enumeration {empty, vertex, wire, crossing}.
type TileKind int

const (
	Empty TileKind = iota
	Vertex
	Wire
	Crossing
)

func (k TileKind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Wire:
		return "wire"
	case Crossing:
		return "crossing"
	default:
		return "empty"
	}
}

// Direction is a compass-style side of a tile. A tile's DirIn names the
// side the signal enters through (toward its predecessor) and DirOut the
// side it leaves through (toward its successor). None indicates no
// connection on that side.
type Direction int

const (
	None Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DirectionTo returns the Direction of the step from a to b, or None if
// they are not adjacent along one of the eight compass rays.
func DirectionTo(a, b coord.Coordinate) Direction {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 0 && dy < 0:
		return North
	case dx > 0 && dy < 0:
		return NorthEast
	case dx > 0 && dy == 0:
		return East
	case dx > 0 && dy > 0:
		return SouthEast
	case dx == 0 && dy > 0:
		return South
	case dx < 0 && dy > 0:
		return SouthWest
	case dx < 0 && dy == 0:
		return West
	case dx < 0 && dy < 0:
		return NorthWest
	default:
		return None
	}
}

// Tile is a single ground- or crossing-layer position of a Layout.
type Tile struct {
	Kind       TileKind
	NodeID     string // populated when Kind == Vertex; logic-network vertex id
	GateType   string // populated when Kind == Vertex; e.g. "AND", "NOT", "PI"
	DirIn      Direction
	DirOut     Direction
	LatchDelay int // whole clock cycles of artificial latch delay
}

// Layout is a clocked grid of Tiles. It grows only east or south (§3
// Lifecycles) and is otherwise immutable once committed: committing a path
// bumps Revision so that a caller which read Dims/tiles before attempting a
// commit can detect a race against another committer (§5: "only one worker
// ever commits").
type Layout struct {
	mu       sync.RWMutex
	Grid     *clocking.ClockedGrid
	tiles    map[coord.Coordinate]Tile
	Revision uint64
}

// New constructs an empty Layout over the given clocked grid.
func New(grid *clocking.ClockedGrid) *Layout {
	return &Layout{Grid: grid, tiles: make(map[coord.Coordinate]Tile)}
}

// Dims returns the layout's bounding box.
func (l *Layout) Dims() coord.Dimension {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.Grid.Grid.Dims
}

// Tile returns the tile at c (the zero Tile, kind Empty, if unset).
func (l *Layout) Tile(c coord.Coordinate) Tile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tiles[c]
}

// SetTile assigns t to coordinate c and bumps Revision.
func (l *Layout) SetTile(c coord.Coordinate, t Tile) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tiles[c] = t
	l.Revision++
}

// PlaceVertex places logic-network vertex id, of the given gate type (e.g.
// "AND", "NOT", "PI"), at tile c. gateType is opaque to Layout — it is
// carried through only so that FGL export (package fgl) and other
// consumers can recover a placed vertex's operation without a separate
// lookup back into the network.Network it came from.
func (l *Layout) PlaceVertex(c coord.Coordinate, id string, gateType string) {
	l.SetTile(c, Tile{Kind: Vertex, NodeID: id, GateType: gateType})
}

// GrowEast extends the layout's grid by one column.
func (l *Layout) GrowEast() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Grid.Grid.Dims = l.Grid.Grid.Dims.GrowEast()
	l.Revision++
}

// GrowSouth extends the layout's grid by one row.
func (l *Layout) GrowSouth() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Grid.Grid.Dims = l.Grid.Grid.Dims.GrowSouth()
	l.Revision++
}

// Snapshot returns a deep copy of the tile map, used by commit/rollback
// logic in colorroute to guarantee atomicity (§8 property 8).
func (l *Layout) Snapshot() map[coord.Coordinate]Tile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	cp := make(map[coord.Coordinate]Tile, len(l.tiles))
	for c, t := range l.tiles {
		cp[c] = t
	}
	return cp
}

// Restore replaces the tile map wholesale with a previously captured
// Snapshot, used to roll back a failed or non-atomic commit attempt.
func (l *Layout) Restore(snapshot map[coord.Coordinate]Tile) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tiles = make(map[coord.Coordinate]Tile, len(snapshot))
	for c, t := range snapshot {
		l.tiles[c] = t
	}
	l.Revision++
}

// CommitPath marks every coordinate of p as a wire (promoting to a
// Crossing tile at any z=1 coordinate the path uses), and wires up
// DirIn/DirOut from each tile's predecessor/successor in the path, per
// §4.E "wire commit" and §4.H step 5. It does not itself check for
// conflicts with other committed paths — callers (colorroute) are
// responsible for only committing a conflict-free subset.
func (l *Layout) CommitPath(p routing.Path) error {
	coords := p.Coordinates()
	if len(coords) == 0 {
		return fmt.Errorf("layout: cannot commit an empty path")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, c := range coords {
		t := l.tiles[c]
		if t.Kind == Empty {
			if c.Z == 1 {
				t.Kind = Crossing
			} else {
				t.Kind = Wire
			}
		}
		if i > 0 {
			t.DirIn = DirectionTo(c, coords[i-1])
		}
		if i+1 < len(coords) {
			t.DirOut = DirectionTo(c, coords[i+1])
		}
		l.tiles[c] = t
	}
	l.Revision++
	return nil
}

// IsWire reports whether the tile at c currently carries a wire (a Wire or
// Crossing tile).
func (l *Layout) IsWire(c coord.Coordinate) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.tiles[c]
	return ok && (t.Kind == Wire || t.Kind == Crossing)
}

// AllTiles returns every occupied (non-Empty) coordinate and its tile, for
// FGL export and testing.
func (l *Layout) AllTiles() map[coord.Coordinate]Tile {
	return l.Snapshot()
}
