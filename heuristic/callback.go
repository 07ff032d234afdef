package heuristic

import "github.com/lnskit/lnskit/pool"

// Trigger gates heuristic invocation by explored-node cadence: the host
// search asks ShouldRun on every node event and invokes the active
// strategy when it fires. A frequency of 0 disables invocation.
type Trigger struct {
	frequency uint64
}

// NewTrigger returns a cadence gate firing every frequency explored nodes.
func NewTrigger(frequency uint64) Trigger {
	return Trigger{frequency: frequency}
}

// ShouldRun reports whether the heuristic should run at this node count.
// Fires on every multiple of the frequency, node 0 included.
func (t Trigger) ShouldRun(nodes uint64) bool {
	return t.frequency > 0 && nodes%t.frequency == 0
}

// Recorder is the pool-update hook the host search calls whenever its own
// branch-and-cut finds a new incumbent, so heuristics later recombine
// solutions the host discovered on its own.
type Recorder struct {
	pool *pool.Pool
}

// NewRecorder binds the hook to the shared solution pool.
func NewRecorder(pl *pool.Pool) Recorder {
	return Recorder{pool: pl}
}

// Record offers a freshly found incumbent to the pool and reports whether
// it was retained (near-duplicates and non-improving entries are dropped
// silently).
func (r Recorder) Record(values []float64, objective float64) bool {
	return r.pool.Add(values, objective)
}
