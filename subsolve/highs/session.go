//go:build cgo && (linux || darwin) && (amd64 || arm64)

package highs

import (
	"context"
	"fmt"
	"math"

	gohighs "github.com/bartolsthoorn/gohighs/highs"

	"github.com/lnskit/lnskit/pool"
	"github.com/lnskit/lnskit/subsolve"
)

// unlimitedNodes stands in for "node limit unset"; HiGHS expects a finite
// integer for mip_max_nodes.
const unlimitedNodes = math.MaxInt32

// primalFeasible is the HiGHS info value meaning a valid primal solution
// is available (kSolutionStatusFeasible).
const primalFeasible = 2

// Session is a subsolve.Session driving one reusable HiGHS instance.
// Not safe for concurrent use.
type Session struct {
	prob   *subsolve.Problem
	solver *gohighs.Solver

	// dirty lists the columns overridden by the previous request, so the
	// next Solve can restore their static bounds first.
	dirty []int
}

var _ subsolve.Session = (*Session)(nil)

// NewSession loads the model at modelPath into a fresh HiGHS instance and
// binds it to prob. The column count of the loaded model must match the
// descriptor. The instance is configured silent, single-threaded, and
// seeded for determinism.
func NewSession(prob *subsolve.Problem, modelPath string, seed int64) (*Session, error) {
	solver, err := gohighs.NewSolver()
	if err != nil {
		return nil, fmt.Errorf("highs: create solver: %w", err)
	}

	if err = solver.ReadModel(modelPath); err != nil {
		solver.Close()

		return nil, fmt.Errorf("highs: read model %q: %w", modelPath, err)
	}
	if solver.NumCol() != prob.NumVars() {
		solver.Close()

		return nil, fmt.Errorf("%w: model has %d columns, descriptor has %d",
			subsolve.ErrDimensionMismatch, solver.NumCol(), prob.NumVars())
	}

	for _, opt := range []error{
		solver.SetBoolOption("output_flag", false),
		solver.SetIntOption("threads", 1),
		solver.SetIntOption("random_seed", int(seed)),
	} {
		if opt != nil {
			solver.Close()

			return nil, fmt.Errorf("highs: configure solver: %w", opt)
		}
	}

	// The model file carries its own objective sense; align it with the
	// descriptor so both agree on what "better" means.
	if err = solver.SetMaximize(prob.Sense == pool.Maximize); err != nil {
		solver.Close()

		return nil, fmt.Errorf("highs: set objective sense: %w", err)
	}

	return &Session{prob: prob, solver: solver}, nil
}

// Solve runs one restricted solve: restore static bounds perturbed by the
// previous request, apply the new overrides and limits, run HiGHS, and map
// the outcome onto the subsolve status vocabulary.
func (s *Session) Solve(ctx context.Context, req subsolve.Request) (subsolve.Result, error) {
	if err := ctx.Err(); err != nil {
		return subsolve.Result{Status: subsolve.StatusError}, err
	}

	if err := s.restoreBounds(); err != nil {
		return subsolve.Result{Status: subsolve.StatusError}, err
	}
	if err := s.applyOverrides(req.Overrides); err != nil {
		return subsolve.Result{Status: subsolve.StatusError}, err
	}
	if err := s.applyLimits(req.Limits.TimeLimit.Seconds(), req.Limits.NodeLimit); err != nil {
		return subsolve.Result{Status: subsolve.StatusError}, err
	}

	sol, err := s.solver.Run()
	if err != nil {
		return subsolve.Result{Status: subsolve.StatusError}, fmt.Errorf("highs: run: %w", err)
	}

	st := s.mapStatus(sol)
	res := subsolve.Result{Status: st}
	if st.HasSolution() {
		res.Solution = append([]float64(nil), sol.ColValues...)
		res.Objective = sol.Objective
	}

	return res, nil
}

// Close releases the underlying HiGHS instance. Safe to call repeatedly.
func (s *Session) Close() error {
	s.solver.Close()

	return nil
}

func (s *Session) restoreBounds() error {
	for _, col := range s.dirty {
		v := s.prob.Vars[col]
		if err := s.solver.SetColBounds(col, v.Lower, v.Upper); err != nil {
			return fmt.Errorf("highs: restore bounds of column %d: %w", col, err)
		}
	}
	s.dirty = s.dirty[:0]

	return nil
}

func (s *Session) applyOverrides(overrides map[int]subsolve.Bounds) error {
	for col, b := range overrides {
		if col < 0 || col >= s.prob.NumVars() {
			return fmt.Errorf("%w: column %d", subsolve.ErrVariableIndex, col)
		}
		if err := s.solver.SetColBounds(col, b.Lower, b.Upper); err != nil {
			return fmt.Errorf("highs: override bounds of column %d: %w", col, err)
		}
		s.dirty = append(s.dirty, col)
	}

	return nil
}

// applyLimits sets the per-solve budgets. Both options persist on the
// instance, so unset criteria are reset to their unlimited values.
func (s *Session) applyLimits(seconds float64, nodes uint64) error {
	timeLimit := s.solver.Infinity()
	if seconds > 0 {
		timeLimit = seconds
	}
	if err := s.solver.SetFloatOption("time_limit", timeLimit); err != nil {
		return fmt.Errorf("highs: set time limit: %w", err)
	}

	nodeLimit := unlimitedNodes
	if nodes > 0 && nodes < unlimitedNodes {
		nodeLimit = int(nodes)
	}
	if err := s.solver.SetIntOption("mip_max_nodes", nodeLimit); err != nil {
		return fmt.Errorf("highs: set node limit: %w", err)
	}

	return nil
}

func (s *Session) mapStatus(sol *gohighs.Solution) subsolve.Status {
	switch sol.Status {
	case gohighs.ModelStatusOptimal:
		return subsolve.StatusOptimal
	case gohighs.ModelStatusInfeasible, gohighs.ModelStatusUnboundedOrInfeasible:
		return subsolve.StatusInfeasible
	case gohighs.ModelStatusTimeLimit, gohighs.ModelStatusIterationLimit,
		gohighs.ModelStatusObjectiveBound, gohighs.ModelStatusObjectiveTarget:
		if s.hasPrimal() {
			return subsolve.StatusFeasible
		}

		return subsolve.StatusLimitReached
	default:
		return subsolve.StatusError
	}
}

// hasPrimal asks HiGHS whether a valid primal solution accompanies a
// limit-terminated run.
func (s *Session) hasPrimal() bool {
	status, err := s.solver.GetIntInfo("primal_solution_status")

	return err == nil && status == primalFeasible
}
