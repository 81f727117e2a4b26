package cnf

import "testing"

func TestSolveSatisfiable(t *testing.T) {
	f := &Formula{NumVars: 2}
	f.AddClause(Pos(0), Pos(1))
	f.AddClause(Neg(0), Neg(1))

	assignment, ok := Solve(f, nil)
	if !ok {
		t.Fatalf("expected SAT")
	}
	if assignment[0] == assignment[1] {
		t.Errorf("clauses require x0 != x1, got %v", assignment)
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	f := &Formula{NumVars: 1}
	f.AddClause(Pos(0))
	f.AddClause(Neg(0))

	_, ok := Solve(f, nil)
	if ok {
		t.Fatalf("expected UNSAT")
	}
}

func TestSolveRespectsAssumptions(t *testing.T) {
	f := &Formula{NumVars: 2}
	f.AtLeastOne(0, 1)
	f.AtMostOne(0, 1)

	assignment, ok := Solve(f, []Literal{Pos(0)})
	if !ok {
		t.Fatalf("expected SAT")
	}
	if !assignment[0] {
		t.Errorf("assumption Pos(0) must force x0 = true")
	}
	if assignment[1] {
		t.Errorf("AtMostOne must force x1 = false when x0 = true")
	}
}

func TestAtMostOnePairwise(t *testing.T) {
	f := &Formula{NumVars: 3}
	f.AtLeastOne(0, 1, 2)
	f.AtMostOne(0, 1, 2)

	assignment, ok := Solve(f, nil)
	if !ok {
		t.Fatalf("expected SAT")
	}
	trueCount := 0
	for _, v := range assignment {
		if v {
			trueCount++
		}
	}
	if trueCount != 1 {
		t.Errorf("exactly one variable should be true, got %d", trueCount)
	}
}

func TestLiteralPolarity(t *testing.T) {
	if !Pos(5).Positive() {
		t.Errorf("Pos(5) must be positive")
	}
	if Neg(5).Positive() {
		t.Errorf("Neg(5) must be negative")
	}
	if Pos(5).Var() != 5 || Neg(5).Var() != 5 {
		t.Errorf("Var() must round-trip regardless of polarity")
	}
}
