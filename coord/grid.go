package coord

// GridKind selects the adjacency/topology rule used by Grid. It mirrors the
// FGL <topology> enumeration in §6 of the specification.
type GridKind int

const (
	// Cartesian is a plain orthogonal grid (4-neighborhood per layer).
	Cartesian GridKind = iota
	// ShiftedCartesianOddRow offsets odd rows, a common FCN layout shape.
	ShiftedCartesianOddRow
	// ShiftedCartesianEvenRow offsets even rows.
	ShiftedCartesianEvenRow
	// ShiftedCartesianOddColumn offsets odd columns.
	ShiftedCartesianOddColumn
	// ShiftedCartesianEvenColumn offsets even columns.
	ShiftedCartesianEvenColumn
	// HexagonalOddRow is a hexagonal tiling with odd-row offset.
	HexagonalOddRow
	// HexagonalEvenRow is a hexagonal tiling with even-row offset.
	HexagonalEvenRow
	// HexagonalOddColumn is a hexagonal tiling with odd-column offset.
	HexagonalOddColumn
	// HexagonalEvenColumn is a hexagonal tiling with even-column offset.
	HexagonalEvenColumn
)

// String renders the FGL <topology> identifier for kind.
func (k GridKind) String() string {
	switch k {
	case Cartesian:
		return "cartesian"
	case ShiftedCartesianOddRow:
		return "odd_row_cartesian"
	case ShiftedCartesianEvenRow:
		return "even_row_cartesian"
	case ShiftedCartesianOddColumn:
		return "odd_column_cartesian"
	case ShiftedCartesianEvenColumn:
		return "even_column_cartesian"
	case HexagonalOddRow:
		return "odd_row_hex"
	case HexagonalEvenRow:
		return "even_row_hex"
	case HexagonalOddColumn:
		return "odd_column_hex"
	case HexagonalEvenColumn:
		return "even_column_hex"
	default:
		return "unknown"
	}
}

// ParseGridKind is the inverse of GridKind.String, used by the FGL reader.
func ParseGridKind(s string) (GridKind, bool) {
	for k := Cartesian; k <= HexagonalEvenColumn; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return Cartesian, false
}

// Grid is the pure spatial substrate: a bounding box plus a topology rule
// for adjacency. It carries no clocking information — clocking.ClockedGrid
// wraps a Grid with a clocking.Scheme to add the temporal dimension.
type Grid struct {
	Dims Dimension
	Kind GridKind
}

// NewGrid constructs a Grid of the given dimensions and topology.
func NewGrid(dims Dimension, kind GridKind) Grid {
	return Grid{Dims: dims, Kind: kind}
}

// WithinBounds reports whether c lies inside the grid's bounding box.
func (g Grid) WithinBounds(c Coordinate) bool {
	return g.Dims.WithinBounds(c)
}

// Adjacent reports whether a and b are neighbors under g's topology,
// ignoring any clocking discipline (clocking.ClockedGrid layers that on
// top via OutgoingClocked/IncomingClocked).
func (g Grid) Adjacent(a, b Coordinate) bool {
	for _, n := range g.Surrounding(a) {
		if n.Equal(b) {
			return true
		}
	}
	return false
}

// Surrounding returns every in-bounds neighbor of c on c's own layer
// (same Z) under g's topology, regardless of clocking discipline. It does
// not include the coordinate directly above or below c on the other layer.
func (g Grid) Surrounding(c Coordinate) []Coordinate {
	if !g.WithinBounds(c) {
		return nil
	}
	offsets := g.neighborOffsets(c)
	out := make([]Coordinate, 0, len(offsets))
	for _, o := range offsets {
		n := Coordinate{X: c.X + o[0], Y: c.Y + o[1], Z: c.Z}
		if g.WithinBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// neighborOffsets returns the (dx, dy) offsets for c's topology, dispatched
// once per grid kind (the hot path inside A*/JPS is monomorphized per grid
// kind, per §9 of the specification: polymorphism over grid kinds is
// runtime dispatch at the grid boundary only).
func (g Grid) neighborOffsets(c Coordinate) [][2]int {
	switch g.Kind {
	case Cartesian:
		return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	case ShiftedCartesianOddRow, ShiftedCartesianEvenRow:
		return shiftedRowOffsets(g.Kind, c.Y)
	case ShiftedCartesianOddColumn, ShiftedCartesianEvenColumn:
		return shiftedColumnOffsets(g.Kind, c.X)
	case HexagonalOddRow, HexagonalEvenRow:
		return hexRowOffsets(g.Kind, c.Y)
	case HexagonalOddColumn, HexagonalEvenColumn:
		return hexColumnOffsets(g.Kind, c.X)
	default:
		return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
}

func shiftedRowOffsets(kind GridKind, y int) [][2]int {
	shiftHere := (kind == ShiftedCartesianOddRow && y%2 != 0) ||
		(kind == ShiftedCartesianEvenRow && y%2 == 0)
	if shiftHere {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 0}}
	}
	return [][2]int{{-1, -1}, {0, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}}
}

func shiftedColumnOffsets(kind GridKind, x int) [][2]int {
	shiftHere := (kind == ShiftedCartesianOddColumn && x%2 != 0) ||
		(kind == ShiftedCartesianEvenColumn && x%2 == 0)
	if shiftHere {
		return [][2]int{{0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}}
	}
	return [][2]int{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}}
}

// hexRowOffsets returns the six hexagonal neighbors for a pointy-top,
// row-offset hex grid.
func hexRowOffsets(kind GridKind, y int) [][2]int {
	shiftHere := (kind == HexagonalOddRow && y%2 != 0) ||
		(kind == HexagonalEvenRow && y%2 == 0)
	if shiftHere {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 0}}
	}
	return [][2]int{{-1, -1}, {0, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}}
}

// hexColumnOffsets returns the six hexagonal neighbors for a flat-top,
// column-offset hex grid.
func hexColumnOffsets(kind GridKind, x int) [][2]int {
	shiftHere := (kind == HexagonalOddColumn && x%2 != 0) ||
		(kind == HexagonalEvenColumn && x%2 == 0)
	if shiftHere {
		return [][2]int{{0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}}
	}
	return [][2]int{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}}
}

// IsCartesian reports whether g uses plain orthogonal adjacency, the only
// topology Jump Point Search (pathfinding.JumpPointSearch) supports.
func (g Grid) IsCartesian() bool {
	return g.Kind == Cartesian
}
