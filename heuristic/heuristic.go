// Package heuristic - strategy interface and dispatcher.
//
// New is the canonical entry point: it validates Options and routes to the
// requested strategy constructor. The host search then calls Run at its
// own cadence (see Trigger), passing the shared run timer and time limit.
package heuristic

import (
	"context"
	"time"

	"github.com/lnskit/lnskit/budget"
	"github.com/lnskit/lnskit/pool"
	"github.com/lnskit/lnskit/subsolve"
)

// Heuristic is one LNS strategy invoked periodically from the host search.
//
// Contracts:
//   - Run never worsens the incumbent: the objective reported through
//     Context.SetSolution is at least as good as the one read at entry.
//   - Run respects timeLimit to within one sub-problem solve: the loop
//     stops at the first expiry check after the limit passes.
//   - timeLimit <= 0 means unlimited; timer may be nil, disabling the
//     time criterion entirely.
//   - Run returns an error only for contract violations (nil context);
//     sub-problem failures are absorbed into parameter adaptation.
type Heuristic interface {
	Run(ctx context.Context, search Context, timer budget.Timer, timeLimit time.Duration) error
}

// New validates opts and constructs the selected strategy around the
// shared pool and the exclusively-owned subordinate-solver session.
// StrategyNone yields a no-op heuristic; StrategyVendor is rejected with
// ErrVendorStrategy since it lives inside the host solver.
func New(prob *subsolve.Problem, pl *pool.Pool, session subsolve.Session, opts Options) (Heuristic, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	switch opts.Strategy {
	case StrategyNone:
		return nopHeuristic{}, nil
	case StrategyPolishing:
		return NewPolishing(prob, pl, session, opts)
	case StrategyBiasedRecombination:
		return NewBiasedRecombination(prob, pl, session, opts)
	case StrategyVendor:
		return nil, ErrVendorStrategy
	default:
		return nil, ErrUnknownStrategy
	}
}

// nopHeuristic backs StrategyNone: it leaves search state untouched.
type nopHeuristic struct{}

func (nopHeuristic) Run(context.Context, Context, budget.Timer, time.Duration) error { return nil }

// engine carries the collaborators and sub-solve plumbing shared by the
// concrete strategies.
type engine struct {
	prob    *subsolve.Problem
	pool    *pool.Pool
	session subsolve.Session
	eps     float64

	submipNodes uint64
	submipStall uint64
}

func newEngine(prob *subsolve.Problem, pl *pool.Pool, session subsolve.Session, opts Options) (engine, error) {
	switch {
	case prob == nil:
		return engine{}, ErrNilProblem
	case pl == nil:
		return engine{}, ErrNilPool
	case session == nil:
		return engine{}, ErrNilSession
	}

	return engine{
		prob:        prob,
		pool:        pl,
		session:     session,
		eps:         opts.Eps,
		submipNodes: opts.SubMIPNodesLimit,
		submipStall: opts.SubMIPNodesUnsuccessful,
	}, nil
}

// betterByEps reports whether candidate beats incumbent by more than the
// tolerance, respecting the problem sense.
func (e *engine) betterByEps(candidate, incumbent float64) bool {
	if e.prob.Sense == pool.Maximize {
		return candidate > incumbent+e.eps
	}

	return candidate < incumbent-e.eps
}

// solveOnce runs one restricted solve under a fresh sub-problem budget,
// harvests any solution into the pool, and adopts it as the running
// incumbent when strictly better. inc/incObj are the caller's running
// incumbent and are updated in place on adoption.
func (e *engine) solveOnce(
	ctx context.Context,
	timer budget.Timer,
	timeLimit time.Duration,
	overrides map[int]subsolve.Bounds,
	warm []float64,
	inc []float64,
	incObj *float64,
) (improved bool, status subsolve.Status) {
	req := subsolve.Request{
		Overrides: overrides,
		WarmStart: warm,
		Limits: budget.Limits{
			TimeLimit:       remainingTime(timer, timeLimit),
			NodeLimit:       e.submipNodes,
			StagnationLimit: e.submipStall,
		},
	}

	res, err := e.session.Solve(ctx, req)
	if err != nil {
		return false, subsolve.StatusError
	}
	if !res.Status.HasSolution() {
		// Treated as "no improving solution this iteration".
		return false, res.Status
	}

	e.pool.Add(res.Solution, res.Objective)

	if len(res.Solution) == len(inc) && e.betterByEps(res.Objective, *incObj) {
		copy(inc, res.Solution)
		*incObj = res.Objective

		return true, res.Status
	}

	return false, res.Status
}

// remainingTime converts the outer run budget into a per-solve limit.
// limit <= 0 or a nil timer means the criterion is unset.
func remainingTime(timer budget.Timer, limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	if timer == nil {
		return limit
	}

	rem := limit - timer.Elapsed()
	if rem <= 0 {
		// The invoking loop checks expiry before each solve; if the clock
		// crossed the limit in between, hand the backend a token budget
		// rather than an unset one.
		rem = time.Millisecond
	}

	return rem
}

// rounded maps a relaxed 0/1 value onto its nearest bound.
func rounded(v float64) float64 {
	if v > 0.5 {
		return 1.0
	}

	return 0.0
}

// cloneVector copies a solution vector so heuristic-local mutation never
// aliases orchestrator memory.
func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
