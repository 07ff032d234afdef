// Package heuristic - biased recombination matheuristic.
//
// BiasedRecombination implements the recombination-based matheuristic for
// binary MIPs proposed by Maravilha, Campelo and Carrano. Each iteration
// fixes every 0/1 variable to the incumbent's rounded value, then frees a
// sampled subset again: variables are drawn without replacement with
// probability proportional to a disagreement score mixing two signals,
// how much the variable differs between incumbent and a random pool entry,
// and how much it differs between incumbent and the node relaxation. The
// mixing weight follows the two normalized objective gaps, so a nearly
// converged run leans on the relaxation and an early run leans on the
// pool.
//
// The freed-set size is the midpoint of an adaptive window [submipMin,
// submipMax] over the 0/1 variable count: a fully resolved sub-problem
// without gain raises the lower edge, an unresolved one lowers the upper
// edge. Sub-problem solves follow the same budget, pool-harvest, and
// incumbent-adoption contract as polishing.
package heuristic

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/lnskit/lnskit/budget"
	"github.com/lnskit/lnskit/pool"
	"github.com/lnskit/lnskit/subsolve"
)

// BiasedRecombination is the Maravilha strategy. One instance serves a
// whole optimization run: the size window and RNG stream persist across
// invocations. Not safe for concurrent use.
type BiasedRecombination struct {
	engine
	rng *rand.Rand

	binary []int

	// scores holds the per-variable disagreement score of the current
	// iteration, indexed by variable.
	scores []float64

	iterations int

	// Adaptive sub-problem size window.
	submipMin float64
	submipMax float64
	offset    float64
}

var _ Heuristic = (*BiasedRecombination)(nil)

// NewBiasedRecombination constructs the strategy around the shared pool
// and the exclusively-owned session.
func NewBiasedRecombination(prob *subsolve.Problem, pl *pool.Pool, session subsolve.Session, opts Options) (*BiasedRecombination, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	eng, err := newEngine(prob, pl, session, opts)
	if err != nil {
		return nil, err
	}

	return &BiasedRecombination{
		engine:     eng,
		rng:        rngFromSeed(opts.Seed),
		binary:     prob.BinaryIndices(opts.Eps),
		scores:     make([]float64, prob.NumVars()),
		iterations: opts.Iterations,
		submipMin:  opts.SubMIPMin,
		submipMax:  opts.SubMIPMax,
		offset:     opts.Offset,
	}, nil
}

// Window returns the current adaptive sub-problem size window. The lower
// edge never exceeds the upper one, and both stay within [0, 1].
func (h *BiasedRecombination) Window() (min, max float64) { return h.submipMin, h.submipMax }

// Run performs one biased-recombination pass. The strategy needs a pool
// entry, an incumbent, and the node relaxation; when any is missing the
// pass is skipped without touching search state.
func (h *BiasedRecombination) Run(ctx context.Context, search Context, timer budget.Timer, timeLimit time.Duration) error {
	if search == nil {
		return ErrNilContext
	}
	if h.pool.Len() < 1 {
		return nil
	}

	incumbent, incObj, ok := search.Incumbent()
	if !ok {
		return nil
	}
	relaxed, relObj, ok := search.Relaxation()
	if !ok {
		return nil
	}
	inc := cloneVector(incumbent)

	meter := budget.NewMeter(budget.Limits{TimeLimit: timeLimit}, timer)

	for it := 0; it < h.iterations; it++ {
		if ctx.Err() != nil || meter.Expired() {
			break
		}

		entry := h.pool.Entries()[h.rng.Intn(h.pool.Len())]
		bias := h.mixBias(entry.Objective, incObj, relObj)

		// Default: every 0/1 variable pinned to the incumbent's rounding.
		overrides := make(map[int]subsolve.Bounds, len(h.binary))
		total := 0.0
		for _, idx := range h.binary {
			overrides[idx] = subsolve.Fix(rounded(inc[idx]))
			h.scores[idx] = bias*math.Abs(inc[idx]-entry.Solution[idx]) +
				(1-bias)*math.Abs(inc[idx]-relaxed[idx])
			total += h.scores[idx]
		}

		// Free the sampled subset again; the rest stay fixed.
		free := int(math.Max(1, float64(len(h.binary))*(h.submipMin+h.submipMax)/2))
		for _, idx := range sampleScores(h.rng, h.binary, h.scores, total, free) {
			delete(overrides, idx)
		}

		improved, status := h.solveOnce(ctx, timer, timeLimit, overrides, inc, inc, &incObj)
		if !improved {
			if status.Resolved() {
				// Too small: raise the lower edge toward the upper one.
				h.submipMin += (h.submipMax - h.submipMin) * h.offset
			} else {
				// Too large: lower the upper edge toward the lower one.
				h.submipMax -= (h.submipMax - h.submipMin) * h.offset
			}
		}
	}

	search.SetSolution(inc, incObj)

	return nil
}

// mixBias combines the two normalized objective gaps into the pool-vs-
// relaxation mixing weight. Both gap terms are clipped to [0, 1] before
// mixing.
func (h *BiasedRecombination) mixBias(entryObj, incObj, relObj float64) float64 {
	feasBias := 1 - clip01((entryObj-incObj)/(h.eps+math.Abs(incObj)))
	relBias := 1 - clip01((incObj-relObj)/(h.eps+math.Abs(relObj)))

	if sum := feasBias + relBias; sum > 0 {
		return 1 - feasBias/sum
	}

	// Both gaps saturated; fall back to an even mix.
	return 0.5
}

// clip01 clamps v into [0, 1].
func clip01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
