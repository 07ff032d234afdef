// Package pool provides a bounded, deduplicated collection of feasible
// solutions gathered during a mixed-integer optimization run.
//
// A Pool keeps at most Cap() entries, each a solution vector with its
// objective value. Near-duplicate solutions (every coordinate within
// Epsilon of an existing entry) are rejected so the pool stays diverse.
// Once full, a new entry may only displace the worst one, so pool quality
// is monotonically non-decreasing. Ties between objectives within Epsilon
// are broken deterministically by insertion order, favoring more recent
// entries.
//
// The pool is owned by the orchestrating search and shared by reference
// with heuristic strategies, which append through Add only. It is not
// safe for concurrent use; the single-thread configuration of the host
// search is the serialization boundary.
package pool
