// Package heuristic - strategy configuration.
//
// Options carries the full configuration surface consumed by the core:
// strategy selection, invocation cadence, seed, comparison tolerance, the
// per-strategy parameter sets, and the per-sub-problem budgets. Defaults
// mirror the reference parameterization of each algorithm.
package heuristic

import (
	"fmt"

	"github.com/lnskit/lnskit/pool"
)

// DEFAULTS - single source of truth for DefaultOptions.
const (
	// DefaultNumMutations is the mutation-phase iteration count per
	// polishing invocation.
	DefaultNumMutations = 20

	// DefaultNumRecombinations is the recombination-phase iteration count
	// per polishing invocation.
	DefaultNumRecombinations = 40

	// DefaultFixingFraction is the initial fraction of 0/1 variables fixed
	// when building a polishing sub-problem.
	DefaultFixingFraction = 0.5

	// DefaultOffsetInit is the initial fixing-fraction adaptation step.
	DefaultOffsetInit = 0.2

	// DefaultOffsetReduction is the geometric shrink factor applied to the
	// adaptation step after each mutation phase.
	DefaultOffsetReduction = 0.25

	// DefaultOffsetMinimum floors the adaptation step.
	DefaultOffsetMinimum = 0.01

	// DefaultIterations is the per-invocation iteration count of the
	// biased-recombination strategy.
	DefaultIterations = 1

	// DefaultSubMIPMin and DefaultSubMIPMax bracket the biased
	// sub-problem size as a fraction of the 0/1 variable count.
	DefaultSubMIPMin = 0.0
	DefaultSubMIPMax = 0.65

	// DefaultBiasOffset moves the sub-problem size window on each
	// unsuccessful iteration.
	DefaultBiasOffset = 0.45

	// DefaultSubMIPNodesLimit caps explored nodes per sub-problem solve.
	DefaultSubMIPNodesLimit = 500

	// DefaultSubMIPNodesUnsuccessful is the per-sub-problem stagnation
	// cap; 0 leaves the criterion unset.
	DefaultSubMIPNodesUnsuccessful = 0
)

// Options is the configuration surface of the heuristic core. Values come
// from the host application's configuration layer; no parsing happens here
// beyond ParseStrategy.
type Options struct {
	// Strategy selects the active variant.
	Strategy Strategy

	// Frequency is the invocation cadence in explored-node units: the host
	// search runs the heuristic whenever its node count is a multiple of
	// Frequency. 0 disables invocation.
	Frequency uint64

	// Seed drives all randomized decisions. Seed 0 selects a fixed
	// default stream, so runs are reproducible either way.
	Seed int64

	// Eps is the tolerance for objective comparisons and rounding
	// agreement checks.
	Eps float64

	// Polishing parameters.
	NumMutations      int
	NumRecombinations int
	FixingFraction    float64
	OffsetInit        float64
	OffsetReduction   float64
	OffsetMinimum     float64

	// Biased-recombination parameters.
	Iterations int
	SubMIPMin  float64
	SubMIPMax  float64
	Offset     float64

	// Per-sub-problem budgets, shared by both strategies.
	SubMIPNodesLimit        uint64
	SubMIPNodesUnsuccessful uint64
}

// DefaultOptions returns the reference parameterization with polishing
// selected and invocation disabled (Frequency 0).
func DefaultOptions() Options {
	return Options{
		Strategy:                StrategyPolishing,
		Frequency:               0,
		Seed:                    0,
		Eps:                     pool.DefaultEpsilon,
		NumMutations:            DefaultNumMutations,
		NumRecombinations:       DefaultNumRecombinations,
		FixingFraction:          DefaultFixingFraction,
		OffsetInit:              DefaultOffsetInit,
		OffsetReduction:         DefaultOffsetReduction,
		OffsetMinimum:           DefaultOffsetMinimum,
		Iterations:              DefaultIterations,
		SubMIPMin:               DefaultSubMIPMin,
		SubMIPMax:               DefaultSubMIPMax,
		Offset:                  DefaultBiasOffset,
		SubMIPNodesLimit:        DefaultSubMIPNodesLimit,
		SubMIPNodesUnsuccessful: DefaultSubMIPNodesUnsuccessful,
	}
}

// Validate checks internal consistency. All failures wrap ErrOptionRange
// except unknown strategies, which surface ErrUnknownStrategy.
func (o Options) Validate() error {
	switch o.Strategy {
	case StrategyNone, StrategyPolishing, StrategyBiasedRecombination, StrategyVendor:
		// ok
	default:
		return ErrUnknownStrategy
	}

	if o.Eps < 0 {
		return fmt.Errorf("%w: eps %v must be non-negative", ErrOptionRange, o.Eps)
	}
	if o.NumMutations < 0 {
		return fmt.Errorf("%w: mutations %d must be non-negative", ErrOptionRange, o.NumMutations)
	}
	if o.NumRecombinations < 0 {
		return fmt.Errorf("%w: recombinations %d must be non-negative", ErrOptionRange, o.NumRecombinations)
	}
	if o.FixingFraction < 0 || o.FixingFraction > 1 {
		return fmt.Errorf("%w: fixing fraction %v outside [0,1]", ErrOptionRange, o.FixingFraction)
	}
	if o.OffsetInit < 0 || o.OffsetInit > 1 {
		return fmt.Errorf("%w: offset init %v outside [0,1]", ErrOptionRange, o.OffsetInit)
	}
	if o.OffsetReduction < 0 || o.OffsetReduction > 1 {
		return fmt.Errorf("%w: offset reduction %v outside [0,1]", ErrOptionRange, o.OffsetReduction)
	}
	if o.OffsetMinimum < 0 || o.OffsetMinimum > 1 {
		return fmt.Errorf("%w: offset minimum %v outside [0,1]", ErrOptionRange, o.OffsetMinimum)
	}
	if o.Iterations < 0 {
		return fmt.Errorf("%w: iterations %d must be non-negative", ErrOptionRange, o.Iterations)
	}
	if o.SubMIPMin < 0 || o.SubMIPMin > 1 || o.SubMIPMax < 0 || o.SubMIPMax > 1 {
		return fmt.Errorf("%w: sub-problem size window [%v,%v] outside [0,1]",
			ErrOptionRange, o.SubMIPMin, o.SubMIPMax)
	}
	if o.SubMIPMin > o.SubMIPMax {
		return fmt.Errorf("%w: sub-problem size window [%v,%v] is inverted",
			ErrOptionRange, o.SubMIPMin, o.SubMIPMax)
	}
	if o.Offset < 0 || o.Offset > 1 {
		return fmt.Errorf("%w: offset %v outside [0,1]", ErrOptionRange, o.Offset)
	}

	return nil
}
