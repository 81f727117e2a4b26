package network

import (
	"errors"
	"fmt"

	"github.com/fcnkit/fcn/fcnerr"
)

var _ Network = (*SimpleNetwork)(nil)

// visitState mirrors the teacher's White/Gray/Black DFS coloring
// (dfs.TopologicalSort) used here to detect cycles while computing levels.
type visitState int

const (
	white visitState = iota
	gray
	black
)

// Hierarchy records, for every vertex, its level (longest path from any
// primary input) and inv_level (longest path to any primary output), per
// §3 "Network hierarchy".
type Hierarchy struct {
	Level    map[VertexID]int
	InvLevel map[VertexID]int
}

// Levelize computes level(v) = 1 + max(level(predecessor)) for every
// vertex reachable from a primary input (PIs themselves get level 0), and
// inv_level analogously from primary outputs, by running a topological DFS
// forward and backward (grounded on dfs.TopologicalSort's DFS-with-
// three-color-state shape, generalized from string vertex IDs to
// network.VertexID). Returns fcnerr.MalformedInput wrapping a cycle error
// if n is not acyclic.
func Levelize(n Network) (Hierarchy, error) {
	level, err := longestPathLevels(n, func(v VertexID) []EdgeID { return n.InEdges(v) }, n.Source)
	if err != nil {
		return Hierarchy{}, err
	}
	invLevel, err := longestPathLevels(n, func(v VertexID) []EdgeID { return n.OutEdges(v) }, n.Target)
	if err != nil {
		return Hierarchy{}, err
	}
	return Hierarchy{Level: level, InvLevel: invLevel}, nil
}

// longestPathLevels computes, for every vertex, 1 + the max level of its
// "predecessors" (vertices reached by predecessorEdges then
// predecessorOf), memoized via DFS post-order, matching the teacher's
// recursive-visit-with-memo shape.
func longestPathLevels(n Network, predecessorEdges func(VertexID) []EdgeID, predecessorOf func(EdgeID) VertexID) (map[VertexID]int, error) {
	level := make(map[VertexID]int, len(n.Vertices()))
	state := make(map[VertexID]visitState, len(n.Vertices()))

	var visit func(v VertexID) error
	visit = func(v VertexID) error {
		switch state[v] {
		case black:
			return nil
		case gray:
			return errors.Join(fcnerr.MalformedInput, errors.New("network: cycle detected during levelization"))
		}
		state[v] = gray

		max := -1
		for _, e := range predecessorEdges(v) {
			pred := predecessorOf(e)
			if err := visit(pred); err != nil {
				return err
			}
			if level[pred] > max {
				max = level[pred]
			}
		}
		if max == -1 {
			level[v] = 0 // no predecessors: a PI (or, for inv_level, a PO)
		} else {
			level[v] = max + 1
		}
		state[v] = black
		return nil
	}

	for _, v := range n.Vertices() {
		if err := visit(v); err != nil {
			return nil, err
		}
	}
	return level, nil
}

// CriticalPathLength returns the longest level-to-level chain in the
// hierarchy (max level + 1, or 0 for an empty network). **[EXPANSION,
// grounded on original_source/src/legacy/network_hierarchy.{h,cpp}]**:
// the original's longest-chain query — not present in spec.md's §4.I text
// but consistent with its hierarchy model. The exact engine does not call
// it; its dimension order is by area alone.
func (h Hierarchy) CriticalPathLength() int {
	max := -1
	for _, l := range h.Level {
		if l > max {
			max = l
		}
	}
	return max + 1
}

// BalanceFanIn subdivides every fan-in edge of n whose endpoints differ by
// more than one level, inserting OpWIRE balance vertices so that every
// direct predecessor of v ends up at level(v)-1 (§3: "Optional balance
// vertices subdivide long fan-in edges"). It returns a new SimpleNetwork;
// n is left untouched.
func BalanceFanIn(n *SimpleNetwork, h Hierarchy) (*SimpleNetwork, error) {
	out := NewSimpleNetwork()
	for _, v := range n.Vertices() {
		out.AddVertex(v, n.Op(v))
		if n.IsPI(v) {
			out.MarkPI(v)
		}
		if n.IsPO(v) {
			out.MarkPO(v)
		}
	}

	balanceSeq := 0
	for _, e := range n.Edges() {
		from, to := n.Source(e), n.Target(e)
		gap := h.Level[to] - h.Level[from]
		if gap <= 1 {
			out.AddEdge(e, from, to)
			continue
		}

		prev := from
		for step := 1; step < gap; step++ {
			balanceID := VertexID(fmt.Sprintf("%s_balance_%d", e, balanceSeq))
			balanceSeq++
			out.AddVertex(balanceID, OpWIRE)
			out.AddEdge(EdgeID(fmt.Sprintf("%s_b%d", e, step)), prev, balanceID)
			prev = balanceID
		}
		out.AddEdge(EdgeID(fmt.Sprintf("%s_final", e)), prev, to)
	}
	return out, nil
}
