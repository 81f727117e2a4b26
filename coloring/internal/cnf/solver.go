// Package cnf is a from-scratch DPLL-style CNF satisfiability solver. No
// SAT/SMT binding exists anywhere in the retrieved example corpus, so
// coloring.SATEngine's k-colorability check is built here instead of
// importing one, in the same branch-and-bound idiom as the teacher's
// tsp.bbEngine: deterministic branch order, admissible pruning via unit
// propagation, and an explicit search-state struct rather than recursion
// hidden behind library calls.
package cnf

import "fmt"

// Literal names a boolean variable and its polarity, in the classic DIMACS
// convention: variable v is stored as v+1, a positive Literal asserts the
// variable and its arithmetic negation (see Pos and Neg) asserts its
// negation. Var recovers the 0-indexed variable for direct use as a Go
// slice index.
type Literal int

// Var returns the 0-indexed variable a literal refers to.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l) - 1
	}
	return int(l) - 1
}

// Positive reports whether l asserts its variable (true) or negates it.
func (l Literal) Positive() bool { return l > 0 }

// Pos returns the positive literal for variable v.
func Pos(v int) Literal { return Literal(v + 1) }

// Neg returns the negative literal for variable v.
func Neg(v int) Literal { return Literal(-(v + 1)) }

// Clause is a disjunction of literals.
type Clause []Literal

// Formula is a conjunction of clauses over NumVars boolean variables.
type Formula struct {
	NumVars int
	Clauses []Clause
}

// AddClause appends a clause to f.
func (f *Formula) AddClause(lits ...Literal) {
	f.Clauses = append(f.Clauses, Clause(lits))
}

// AtLeastOne adds a clause asserting at least one of vs is true.
func (f *Formula) AtLeastOne(vs ...int) {
	lits := make(Clause, len(vs))
	for i, v := range vs {
		lits[i] = Pos(v)
	}
	f.Clauses = append(f.Clauses, lits)
}

// AtMostOne adds O(n^2) pairwise clauses asserting at most one of vs is
// true.
func (f *Formula) AtMostOne(vs ...int) {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			f.AddClause(Neg(vs[i]), Neg(vs[j]))
		}
	}
}

// searchState is the explicit branch-and-bound state carried through the
// recursive search, mirroring tsp.bbEngine's struct-carrying-state idiom
// rather than closures capturing mutable locals.
type searchState struct {
	formula    *Formula
	assignment []int8 // -1 unassigned, 0 false, 1 true
	trail      []int  // variables assigned, in order, for backtracking
}

// Solve runs DPLL search over f, honoring an optional set of forced unit
// assumptions (used by coloring.SATEngine to fix clique colors ahead of
// search). It returns the satisfying assignment (indexed by variable) and
// true, or a nil assignment and false if f is unsatisfiable under those
// assumptions.
func Solve(f *Formula, assumptions []Literal) ([]bool, bool) {
	s := &searchState{
		formula:    f,
		assignment: make([]int8, f.NumVars),
	}
	for i := range s.assignment {
		s.assignment[i] = -1
	}

	unitClauses := make([]Clause, len(assumptions))
	for i, lit := range assumptions {
		unitClauses[i] = Clause{lit}
	}
	work := append(append([]Clause(nil), f.Clauses...), unitClauses...)

	if !s.search(work) {
		return nil, false
	}
	out := make([]bool, f.NumVars)
	for i, v := range s.assignment {
		out[i] = v == 1
	}
	return out, true
}

// search performs unit propagation to a fixpoint, then branches on the
// first unassigned variable in index order (deterministic branch order,
// per the grounding idiom), trying true before false.
func (s *searchState) search(clauses []Clause) bool {
	clauses, ok := s.propagate(clauses)
	if !ok {
		return false
	}

	branchVar := -1
	for v, val := range s.assignment {
		if val == -1 {
			branchVar = v
			break
		}
	}
	if branchVar == -1 {
		return true // every variable assigned, all clauses satisfied
	}

	mark := len(s.trail)
	for _, val := range [2]int8{1, 0} {
		s.assignment[branchVar] = val
		s.trail = append(s.trail, branchVar)
		if s.search(append([]Clause(nil), clauses...)) {
			return true
		}
		s.undoTo(mark)
	}
	return false
}

func (s *searchState) undoTo(mark int) {
	for len(s.trail) > mark {
		v := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		s.assignment[v] = -1
	}
}

// propagate applies unit propagation to a fixpoint, returning the
// simplified clause set and false if a conflict (empty clause) is
// produced.
func (s *searchState) propagate(clauses []Clause) ([]Clause, bool) {
	changed := true
	for changed {
		changed = false
		for _, c := range clauses {
			status, unit := s.evalClause(c)
			switch status {
			case clauseFalse:
				return nil, false
			case clauseUnit:
				s.assignment[unit.Var()] = polarityValue(unit)
				s.trail = append(s.trail, unit.Var())
				changed = true
			}
		}
	}
	return clauses, true
}

type clauseStatus int

const (
	clauseSat clauseStatus = iota
	clauseUnresolved
	clauseUnit
	clauseFalse
)

// evalClause classifies c under the current (possibly partial) assignment.
func (s *searchState) evalClause(c Clause) (clauseStatus, Literal) {
	unassignedCount := 0
	var lastUnassigned Literal
	for _, lit := range c {
		v := s.assignment[lit.Var()]
		if v == -1 {
			unassignedCount++
			lastUnassigned = lit
			continue
		}
		if (v == 1) == lit.Positive() {
			return clauseSat, 0
		}
	}
	switch unassignedCount {
	case 0:
		return clauseFalse, 0
	case 1:
		return clauseUnit, lastUnassigned
	default:
		return clauseUnresolved, 0
	}
}

func polarityValue(l Literal) int8 {
	if l.Positive() {
		return 1
	}
	return 0
}

func (l Literal) String() string {
	if l.Positive() {
		return fmt.Sprintf("x%d", l.Var())
	}
	return fmt.Sprintf("!x%d", l.Var())
}
