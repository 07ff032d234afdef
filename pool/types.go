package pool

import "errors"

// DefaultEpsilon is the per-coordinate tolerance used by the similarity
// check and by objective tie-breaking. Two solutions whose coordinates all
// differ by less than this value count as the same solution.
const DefaultEpsilon = 1e-5

// ErrPoolCapacity is returned when a pool is constructed with capacity < 1.
var ErrPoolCapacity = errors.New("pool: capacity must be at least 1")

// panicEpsilonInvalid guards the WithEpsilon constructor (programmer error).
const panicEpsilonInvalid = "pool: WithEpsilon: eps must be finite and positive"

// Sense declares the optimization direction used to order objectives.
type Sense int

const (
	// Minimize treats smaller objective values as better.
	Minimize Sense = iota
	// Maximize treats larger objective values as better.
	Maximize
)

// String returns a human-readable direction name.
func (s Sense) String() string {
	if s == Maximize {
		return "Maximize"
	}

	return "Minimize"
}

// Better reports whether objective a is strictly better than b under s.
func (s Sense) Better(a, b float64) bool {
	if s == Maximize {
		return a > b
	}

	return a < b
}

// Entry is one pool slot: a solution vector, its objective evaluation, and
// an insertion-order key used only for deterministic tie-breaking.
type Entry struct {
	// Solution holds one value per decision variable. Callers must treat
	// it as read-only; the pool replaces it wholesale on overwrite.
	Solution []float64

	// Objective is the objective function evaluation of Solution.
	Objective float64

	// Age is assigned by decrementing a counter that starts at its
	// maximum, so more recently inserted entries carry smaller ages and
	// win objective ties. Age never drives eviction.
	Age uint64
}
