package exact

import (
	"sort"
	"sync"

	"github.com/fcnkit/fcn/coord"
)

// solverNode is one entry in the incremental solver tree (§4.J.3): each
// node owns the accumulated state for one candidate dimension and a
// back-pointer to the ancestor it was grown from, so that a move from
// X*Y to (X+1)*Y or X*(Y+1) can "reuse" the ancestor's already-placed
// assignments instead of re-deriving them from scratch. The assumption
// literals lit_e/lit_s of §4.J.1 are modeled here as the two booleans
// eastGrown/southGrown marking which border was most recently extended.
type solverNode struct {
	dim        coord.Dimension
	state      DimensionState
	parent     *solverNode
	eastGrown  bool
	southGrown bool
	placement  *SearchState // the winning/partial assignment at this node
}

// solverTree is the mutex-protected map[Dimension]*solverNode of §9's
// design note: dimensions are looked up by value, never by pointer chase
// through a shared mutable graph.
type solverTree struct {
	mu    sync.Mutex
	nodes map[coord.Dimension]*solverNode
}

func newSolverTree() *solverTree {
	return &solverTree{nodes: make(map[coord.Dimension]*solverNode)}
}

// nodeFor returns the solverNode for dim, creating one (forked from its
// nearest smaller ancestor, if any) on first access.
func (t *solverTree) nodeFor(dim coord.Dimension) *solverNode {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.nodes[dim]; ok {
		return n
	}
	parent := t.nearestAncestorLocked(dim)
	n := &solverNode{dim: dim, state: StateNew, parent: parent}
	if parent != nil {
		n.eastGrown = dim.X > parent.dim.X
		n.southGrown = dim.Y > parent.dim.Y
	}
	t.nodes[dim] = n
	return n
}

// nearestAncestorLocked finds the largest already-explored dimension that
// is component-wise <= dim (a valid ancestor to grow from), preferring the
// closest by total area. Caller holds t.mu.
func (t *solverTree) nearestAncestorLocked(dim coord.Dimension) *solverNode {
	var best *solverNode
	for d, n := range t.nodes {
		if d.X <= dim.X && d.Y <= dim.Y && d.Z <= dim.Z && d != dim {
			if best == nil || dimensionArea(d) > dimensionArea(best.dim) {
				best = n
			}
		}
	}
	return best
}

func (t *solverTree) setState(dim coord.Dimension, s DimensionState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.nodes[dim]; ok {
		n.state = s
	}
}

// parentPlacement returns dim's nearest-ancestor placement if that ancestor
// is satisfiable, so a freshly forked SearchState can seed from it instead
// of searching from scratch (§4.J.3 incremental reuse). Returns nil if dim
// has no node yet, no ancestor, or its ancestor isn't SAT.
func (t *solverTree) parentPlacement(dim coord.Dimension) *SearchState {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.nodes[dim]
	if !ok || n.parent == nil || n.parent.state != StateSAT {
		return nil
	}
	return n.parent.placement
}

// setPlacement records the satisfying assignment found for dim, so that a
// still-larger dimension forking from it later can reuse it in turn.
func (t *solverTree) setPlacement(dim coord.Dimension, s *SearchState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.nodes[dim]; ok {
		n.placement = s
	}
}

// dimensionArea is the candidate-ranking metric for the factorization
// order of §4.J.3/§8: dimensions are explored smallest-area first.
func dimensionArea(d coord.Dimension) int {
	return (d.X + 1) * (d.Y + 1) * (d.Z + 1)
}

// lessDimension imposes the deterministic growth order: smaller area
// first, ties broken by (X, Y, Z) lexicographically, matching this
// module's Coordinate.Less tie-break discipline.
func lessDimension(a, b coord.Dimension) bool {
	if ad, bd := dimensionArea(a), dimensionArea(b); ad != bd {
		return ad < bd
	}
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// generateDimensions enumerates every candidate Dimension with
// 0 <= X,Y <= upperBound (Z fixed by whether crossings are enabled), in
// increasing-area order (§8 "factorization order").
func generateDimensions(upperBound int, crossings bool) []coord.Dimension {
	z := 0
	if crossings {
		z = 1
	}
	var dims []coord.Dimension
	for x := 0; x <= upperBound; x++ {
		for y := 0; y <= upperBound; y++ {
			dims = append(dims, coord.Dimension{X: x, Y: y, Z: z})
		}
	}
	sort.Slice(dims, func(i, j int) bool { return lessDimension(dims[i], dims[j]) })
	return dims
}
