package subsolve

import "errors"

// ErrDimensionMismatch is returned when a model's column count does not
// match the problem descriptor.
var ErrDimensionMismatch = errors.New("subsolve: model dimension does not match problem descriptor")

// ErrVariableIndex is returned when a bound override references a variable
// outside the descriptor.
var ErrVariableIndex = errors.New("subsolve: variable index out of range")

// Status classifies the outcome of one subordinate solve.
type Status int

const (
	// StatusOptimal: the restricted problem was solved to proven optimality.
	StatusOptimal Status = iota

	// StatusFeasible: a feasible solution was found but optimality was not
	// proven (typically a limit tripped with an incumbent in hand).
	StatusFeasible

	// StatusInfeasible: the restricted problem admits no feasible solution.
	StatusInfeasible

	// StatusLimitReached: a limit tripped before any feasible solution.
	StatusLimitReached

	// StatusError: the backend failed; no solution information is usable.
	StatusError
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusFeasible:
		return "Feasible"
	case StatusInfeasible:
		return "Infeasible"
	case StatusLimitReached:
		return "LimitReached"
	default:
		return "Error"
	}
}

// HasSolution reports whether a Result with this status carries a usable
// solution vector.
func (s Status) HasSolution() bool { return s == StatusOptimal || s == StatusFeasible }

// Resolved reports whether the restricted problem was fully explored:
// proven optimal or proven infeasible. Heuristics read this as "the
// sub-problem was too small to contain an improving solution".
func (s Status) Resolved() bool { return s == StatusOptimal || s == StatusInfeasible }

// VarType describes one decision variable's domain.
type VarType int

const (
	// ContinuousVar takes any value within its bounds.
	ContinuousVar VarType = iota
	// IntegerVar takes integer values within its bounds.
	IntegerVar
	// BinaryVar takes values in {0, 1}.
	BinaryVar
)

// String returns a human-readable type name.
func (t VarType) String() string {
	switch t {
	case IntegerVar:
		return "Integer"
	case BinaryVar:
		return "Binary"
	default:
		return "Continuous"
	}
}
