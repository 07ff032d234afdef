package subsolve

import (
	"context"
	"math"

	"github.com/lnskit/lnskit/budget"
	"github.com/lnskit/lnskit/pool"
)

// Variable describes one decision variable's static type and bounds, as
// supplied by the external problem import.
type Variable struct {
	Type         VarType
	Lower, Upper float64
}

// Problem is the static descriptor of the optimization problem. It carries
// only what the heuristics need: variable count, types, static bounds, and
// the objective sense. The full model (objective coefficients, constraint
// matrix) stays inside the solver session.
type Problem struct {
	Vars  []Variable
	Sense pool.Sense
}

// NumVars returns the total number of decision variables.
func (p *Problem) NumVars() int { return len(p.Vars) }

// BinaryIndices returns the indices of all 0/1 variables: those declared
// binary, plus integers whose static bounds are {0, 1} within eps. The
// result is in ascending index order.
func (p *Problem) BinaryIndices(eps float64) []int {
	out := make([]int, 0, len(p.Vars))
	for i, v := range p.Vars {
		switch {
		case v.Type == BinaryVar:
			out = append(out, i)
		case v.Type == IntegerVar &&
			math.Abs(v.Lower) < eps && math.Abs(v.Upper-1.0) < eps:
			out = append(out, i)
		}
	}

	return out
}

// Bounds is a per-solve lower/upper override pair for one variable.
type Bounds struct {
	Lower, Upper float64
}

// Fix returns a Bounds pair pinning a variable to v.
func Fix(v float64) Bounds { return Bounds{Lower: v, Upper: v} }

// Request describes one restricted sub-problem solve.
type Request struct {
	// Overrides replace the static bounds of the listed variables for this
	// solve only; variables absent from the map keep their Problem bounds.
	Overrides map[int]Bounds

	// WarmStart optionally seeds the solve with a known feasible solution
	// of the unrestricted problem. Backends that cannot inject starts may
	// ignore it.
	WarmStart []float64

	// Limits bound the solve. The session polls them and stops promptly
	// once any criterion trips, returning its best solution so far.
	Limits budget.Limits
}

// Result is the outcome of one subordinate solve. Solution and Objective
// are meaningful only when Status.HasSolution() is true.
type Result struct {
	Status    Status
	Solution  []float64
	Objective float64
}

// Session is one reusable subordinate-solver instance bound to a Problem
// for its whole lifetime. Implementations must be single-threaded and must
// restore any per-solve bound overrides between calls.
//
// Solve returns an error only for backend faults; infeasibility and limit
// exhaustion are reported through Result.Status.
type Session interface {
	Solve(ctx context.Context, req Request) (Result, error)
	Close() error
}
