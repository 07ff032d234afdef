package heuristic

import "errors"

// ErrUnknownStrategy is returned for a strategy value or name this package
// does not recognize.
var ErrUnknownStrategy = errors.New("heuristic: unknown strategy")

// ErrVendorStrategy is returned when constructing StrategyVendor: the
// vendor heuristic runs inside the host solver, not in this package.
var ErrVendorStrategy = errors.New("heuristic: vendor strategy is provided by the host solver")

// ErrOptionRange is returned by Options.Validate when a parameter is
// outside its documented range.
var ErrOptionRange = errors.New("heuristic: option out of range")

// ErrNilProblem is returned when a strategy is constructed without a
// problem descriptor.
var ErrNilProblem = errors.New("heuristic: nil problem descriptor")

// ErrNilPool is returned when a strategy is constructed without a solution
// pool.
var ErrNilPool = errors.New("heuristic: nil solution pool")

// ErrNilSession is returned when a strategy is constructed without a
// subordinate-solver session.
var ErrNilSession = errors.New("heuristic: nil subordinate-solver session")

// ErrNilContext is returned by Run when the search context is nil.
var ErrNilContext = errors.New("heuristic: nil search context")

// Strategy selects the active LNS variant.
type Strategy int

const (
	// StrategyNone disables heuristic improvement; New returns a no-op.
	StrategyNone Strategy = iota

	// StrategyPolishing selects the Rothberg solution-polishing algorithm.
	StrategyPolishing

	// StrategyBiasedRecombination selects the Maravilha biased
	// recombination matheuristic.
	StrategyBiasedRecombination

	// StrategyVendor defers to the host solver's built-in improvement
	// heuristic; it has no in-core behavior.
	StrategyVendor
)

// String returns the canonical configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyPolishing:
		return "polishing"
	case StrategyBiasedRecombination:
		return "biased-recombination"
	case StrategyVendor:
		return "vendor"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a configuration name onto a Strategy. Unknown names
// are a fatal configuration error for the caller.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "none":
		return StrategyNone, nil
	case "polishing":
		return StrategyPolishing, nil
	case "biased-recombination":
		return StrategyBiasedRecombination, nil
	case "vendor":
		return StrategyVendor, nil
	default:
		return StrategyNone, ErrUnknownStrategy
	}
}

// Context is the orchestrator-provided view of the running search.
// Implementations are supplied by the host search adapter; heuristics only
// read the current state and install candidate incumbents.
type Context interface {
	// Incumbent returns the best known feasible solution and its
	// objective. ok is false while no incumbent exists yet.
	Incumbent() (values []float64, objective float64, ok bool)

	// Relaxation returns the fractional relaxation values and objective at
	// the current search node. ok is false when unavailable; strategies
	// that need the relaxation skip their pass in that case.
	Relaxation() (values []float64, objective float64, ok bool)

	// SetSolution installs values as a candidate incumbent. It is accepted
	// unconditionally; validity is the caller's responsibility.
	SetSolution(values []float64, objective float64)
}
