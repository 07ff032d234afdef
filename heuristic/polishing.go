// Package heuristic - evolutionary solution polishing.
//
// Polishing implements Rothberg's evolutionary algorithm for polishing
// mixed-integer solutions [1]. Each invocation runs two phases:
//
//  1. Mutation (pool ≥ 1): pick a pool entry with bias toward the best,
//     fix a shuffled prefix of the 0/1 variables to the entry's rounded
//     values, and solve the rest. The fixing fraction adapts on failure:
//     a fully resolved sub-problem without gain was too small (shrink the
//     fixed set), an unresolved one was too large (grow it). The
//     adaptation step itself decays geometrically once per phase.
//  2. Recombination (pool ≥ 2): fix the 0/1 variables on which a random
//     pair of pool entries agrees, free the rest. One randomly chosen
//     iteration per invocation recombines the whole pool instead of a
//     pair (consensus mode). Recombination never adapts the fraction.
//
// Every sub-problem solve runs under a fresh budget carrying the remaining
// run time, the node cap, and the stagnation cap; any solution found is
// offered to the pool, and strictly better ones become the new running
// incumbent reported back through Context.SetSolution.
//
// [1] Rothberg, E. An evolutionary algorithm for polishing mixed integer
// programming solutions. INFORMS Journal on Computing, v. 19, n. 4, 2007.
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

// Polishing is the Rothberg strategy. One instance serves a whole
// optimization run: the fixing fraction, its adaptation step, and the RNG
// stream persist across invocations. Not safe for concurrent use.
type Polishing struct {
	engine
	rng *rand.Rand

	// binary holds the 0/1 variable indices; mutationOverrides shuffles it
	// in place, so its order carries over between iterations.
	binary []int

	numMutations      int
	numRecombinations int

	// Adaptive state.
	fixingFraction  float64
	offset          float64
	offsetReduction float64
	offsetMinimum   float64
}

var _ Heuristic = (*Polishing)(nil)

// NewPolishing constructs the strategy around the shared pool and the
// exclusively-owned session.
func NewPolishing(prob *subsolve.Problem, pl *pool.Pool, session subsolve.Session, opts Options) (*Polishing, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	eng, err := newEngine(prob, pl, session, opts)
	if err != nil {
		return nil, err
	}

	return &Polishing{
		engine:            eng,
		rng:               rngFromSeed(opts.Seed),
		binary:            prob.BinaryIndices(opts.Eps),
		numMutations:      opts.NumMutations,
		numRecombinations: opts.NumRecombinations,
		fixingFraction:    opts.FixingFraction,
		offset:            opts.OffsetInit,
		offsetReduction:   opts.OffsetReduction,
		offsetMinimum:     opts.OffsetMinimum,
	}, nil
}

// FixingFraction returns the current adaptive fixing fraction,
// always within [0, 1].
func (h *Polishing) FixingFraction() float64 { return h.fixingFraction }

// Offset returns the current fixing-fraction adaptation step.
func (h *Polishing) Offset() float64 { return h.offset }

// Run performs one polishing pass. See the file header for the two-phase
// structure and the Heuristic interface for the budget and incumbent
// contracts.
func (h *Polishing) Run(ctx context.Context, search Context, timer budget.Timer, timeLimit time.Duration) error {
	if search == nil {
		return ErrNilContext
	}

	incumbent, incObj, ok := search.Incumbent()
	if !ok {
		// Nothing to polish yet.
		return nil
	}
	inc := cloneVector(incumbent)

	meter := budget.NewMeter(budget.Limits{TimeLimit: timeLimit}, timer)

	// Mutation phase: needs at least one seed solution.
	if h.pool.Len() >= 1 {
		for i := 0; i < h.numMutations; i++ {
			if ctx.Err() != nil || meter.Expired() {
				break
			}

			entry := h.pool.Entries()[h.biasedIndex()]
			improved, status := h.solveOnce(ctx, timer, timeLimit,
				h.mutationOverrides(entry), inc, inc, &incObj)

			if !improved {
				if status.Resolved() {
					// Too small to contain an improving solution.
					h.fixingFraction = math.Max(0, h.fixingFraction-h.offset)
				} else {
					// Too large to be explored efficiently.
					h.fixingFraction = math.Min(1, h.fixingFraction+h.offset)
				}
			}
		}

		// Decay the adaptation step once per phase, floored.
		h.offset = math.Max(h.offsetMinimum, (1-h.offsetReduction)*h.offset)
	}

	// Recombination phase: needs at least two solutions to combine.
	if h.pool.Len() >= 2 && h.numRecombinations > 0 {
		// Exactly one iteration recombines the whole pool.
		consensus := h.rng.Intn(h.numRecombinations)

		for i := 0; i < h.numRecombinations; i++ {
			if ctx.Err() != nil || meter.Expired() {
				break
			}

			var (
				overrides map[int]subsolve.Bounds
				warm      []float64
			)
			if i == consensus {
				overrides = h.consensusOverrides()
				warm = h.pool.Entries()[0].Solution
			} else {
				first, second := h.pickPair()
				overrides = h.pairOverrides(first, second)
				warm = first.Solution
			}

			// No fraction adaptation here.
			h.solveOnce(ctx, timer, timeLimit, overrides, warm, inc, &incObj)
		}
	}

	search.SetSolution(inc, incObj)

	return nil
}

// biasedIndex draws a pool index with bias toward the front: a uniform
// draw k, redrawn uniformly below k while k > 0. On a sorted pool this
// prefers the best entries without ever excluding the rest.
func (h *Polishing) biasedIndex() int {
	k := h.rng.Intn(h.pool.Len())
	if k != 0 {
		k = h.rng.Intn(k)
	}

	return k
}

// mutationOverrides shuffles the 0/1 variables and fixes the first
// round(fixingFraction·count) of them to the entry's rounded values.
// Unfixed variables keep their static bounds by omission.
func (h *Polishing) mutationOverrides(entry pool.Entry) map[int]subsolve.Bounds {
	h.rng.Shuffle(len(h.binary), func(i, j int) {
		h.binary[i], h.binary[j] = h.binary[j], h.binary[i]
	})

	fixed := int(math.Round(float64(len(h.binary)) * h.fixingFraction))
	overrides := make(map[int]subsolve.Bounds, fixed)
	for j := 0; j < fixed && j < len(h.binary); j++ {
		idx := h.binary[j]
		overrides[idx] = subsolve.Fix(rounded(entry.Solution[idx]))
	}

	return overrides
}

// consensusOverrides fixes each 0/1 variable on which every pool entry
// agrees (within eps of the first entry's rounded value) and frees the
// rest.
func (h *Polishing) consensusOverrides() map[int]subsolve.Bounds {
	entries := h.pool.Entries()
	overrides := make(map[int]subsolve.Bounds, len(h.binary))

	for _, idx := range h.binary {
		value := rounded(entries[0].Solution[idx])
		agree := true
		for i := 1; i < len(entries); i++ {
			if math.Abs(value-entries[i].Solution[idx]) >= h.eps {
				agree = false
				break
			}
		}
		if agree {
			overrides[idx] = subsolve.Fix(value)
		}
	}

	return overrides
}

// pickPair selects two distinct pool entries: the second uniformly over
// [1, size), the first uniformly below it.
func (h *Polishing) pickPair() (pool.Entry, pool.Entry) {
	idx2 := h.rng.Intn(h.pool.Len()-1) + 1
	idx1 := h.rng.Intn(idx2)
	entries := h.pool.Entries()

	return entries[idx1], entries[idx2]
}

// pairOverrides fixes each 0/1 variable on which the two entries agree
// within eps, to the first entry's rounded value.
func (h *Polishing) pairOverrides(first, second pool.Entry) map[int]subsolve.Bounds {
	overrides := make(map[int]subsolve.Bounds, len(h.binary))
	for _, idx := range h.binary {
		if math.Abs(first.Solution[idx]-second.Solution[idx]) < h.eps {
			overrides[idx] = subsolve.Fix(rounded(first.Solution[idx]))
		}
	}

	return overrides
}
