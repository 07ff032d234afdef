package budget

import "time"

// DefaultEpsilon is the objective tolerance used by the default
// improvement detector: drops smaller than this do not reset the
// stagnation counter.
const DefaultEpsilon = 1e-5

// panicNilImproved guards WithImproved (programmer error).
const panicNilImproved = "budget: WithImproved: fn must be non-nil"

// Limits bounds one solve scope. A zero field means that criterion is
// unset and never trips.
type Limits struct {
	// TimeLimit caps elapsed wall-clock time measured on the shared Timer.
	TimeLimit time.Duration

	// NodeLimit caps the externally-reported explored-node count.
	NodeLimit uint64

	// StagnationLimit caps the number of nodes explored since the last
	// incumbent improvement. Consulted by Stagnated only; the outer run
	// ignores it.
	StagnationLimit uint64
}

// Timer is a read-only elapsed-time source shared across nesting levels.
// Implementations must be monotonic; there is no mutation contract beyond
// the elapsed-time query.
type Timer interface {
	Elapsed() time.Duration
}

// NewTimer starts a wall-clock timer at the current instant.
func NewTimer() Timer { return &startTimer{start: time.Now()} }

type startTimer struct{ start time.Time }

func (t *startTimer) Elapsed() time.Duration { return time.Since(t.start) }

// ImprovedFunc reports whether current improves on previous by more than
// the caller's tolerance.
type ImprovedFunc func(current, previous float64) bool

// MinimizeImproved is the default detector: an objective drop greater than
// DefaultEpsilon counts as improvement.
func MinimizeImproved(current, previous float64) bool {
	return previous-current > DefaultEpsilon
}

// MaximizeImproved is the mirror detector for maximization runs.
func MaximizeImproved(current, previous float64) bool {
	return current-previous > DefaultEpsilon
}

// Meter observes one solve scope against its Limits. It is purely
// observational: the search must poll Expired or Stagnated each iteration
// and stop itself. Not safe for concurrent use.
type Meter struct {
	limits   Limits
	timer    Timer
	improved ImprovedFunc

	nodes uint64

	// Incumbent trajectory; baseline is set on the first observation.
	baselineSet bool
	lastObj     float64
	nodesAtLast uint64

	// Latched once any criterion trips.
	tripped bool
}

// MeterOption adjusts meter construction parameters.
type MeterOption func(*Meter)

// WithImproved overrides the improvement detector (MinimizeImproved by
// default). Panics on nil fn (programmer error).
func WithImproved(fn ImprovedFunc) MeterOption {
	if fn == nil {
		panic(panicNilImproved)
	}

	return func(m *Meter) { m.improved = fn }
}

// NewMeter returns a fresh meter for one solve scope. timer may be nil,
// in which case the time criterion never trips.
func NewMeter(limits Limits, timer Timer, opts ...MeterOption) *Meter {
	m := &Meter{
		limits:   limits,
		timer:    timer,
		improved: MinimizeImproved,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Observe records the externally-reported explored-node count and, when
// hasIncumbent is true, the current incumbent objective. The first
// incumbent observation establishes the improvement baseline; later ones
// reset the stagnation counter only on genuine improvement.
func (m *Meter) Observe(nodes uint64, incumbent float64, hasIncumbent bool) {
	m.nodes = nodes
	if !hasIncumbent {
		return
	}

	if !m.baselineSet {
		m.baselineSet = true
		m.lastObj = incumbent
		m.nodesAtLast = nodes

		return
	}

	if m.improved(incumbent, m.lastObj) {
		m.lastObj = incumbent
		m.nodesAtLast = nodes
	}
}

// Nodes returns the last observed explored-node count.
func (m *Meter) Nodes() uint64 { return m.nodes }

// Expired reports whether the time or node limit has been reached. Once
// true it stays true.
func (m *Meter) Expired() bool {
	if m.tripped {
		return true
	}

	if m.limits.TimeLimit > 0 && m.timer != nil && m.timer.Elapsed() >= m.limits.TimeLimit {
		m.tripped = true

		return true
	}
	if m.limits.NodeLimit > 0 && m.nodes >= m.limits.NodeLimit {
		m.tripped = true

		return true
	}

	return false
}

// Stagnated reports whether more nodes than StagnationLimit have been
// explored since the last incumbent improvement. Used by the sub-problem
// abort path only. Once true it stays true.
func (m *Meter) Stagnated() bool {
	if m.tripped {
		return true
	}

	if m.limits.StagnationLimit > 0 && m.baselineSet &&
		m.nodes-m.nodesAtLast > m.limits.StagnationLimit {
		m.tripped = true

		return true
	}

	return false
}

// Tripped reports whether any criterion has latched.
func (m *Meter) Tripped() bool { return m.tripped }
