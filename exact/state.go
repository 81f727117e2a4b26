package exact

// DimensionState is the per-dimension solver state machine of §4.J.4:
// NEW -> CONSTRAINED -> {SAT, UNSAT, TIMEOUT, ERROR}.
type DimensionState int

const (
	StateNew DimensionState = iota
	StateConstrained
	StateSAT
	StateUNSAT
	StateTimeout
	StateError
)

func (s DimensionState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateConstrained:
		return "CONSTRAINED"
	case StateSAT:
		return "SAT"
	case StateUNSAT:
		return "UNSAT"
	case StateTimeout:
		return "TIMEOUT"
	case StateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CanTransitionTo reports whether the state machine permits s -> next,
// per §4.J.4's explicit transition table.
func (s DimensionState) CanTransitionTo(next DimensionState) bool {
	switch s {
	case StateNew:
		return next == StateConstrained || next == StateError
	case StateConstrained:
		return next == StateSAT || next == StateUNSAT || next == StateTimeout || next == StateError
	default:
		return false // SAT/UNSAT/TIMEOUT/ERROR are terminal for this dimension
	}
}
