// Package pool - bounded deduplicated solution pool.
//
// Contracts:
//   - Len() ≤ Cap() after every operation.
//   - No two entries are similar: some coordinate differs by ≥ Epsilon.
//   - Once full, the worst retained objective never worsens.
//   - If sorted, entries are ordered best-first by Sense, ties within
//     Epsilon broken by ascending Age (most recent first).
//
// Complexity: Add is O(size·dim) for the similarity scan plus
// O(size·log size) for the optional re-sort.
package pool

import (
	"math"
	"sort"
)

// Pool is a bounded, deduplicated, optionally sorted collection of
// solution/objective pairs. The zero value is not usable; construct
// with New.
type Pool struct {
	sense   Sense
	maxSize int
	sorted  bool
	eps     float64
	nextAge uint64
	entries []Entry
}

// Option adjusts pool construction parameters.
type Option func(*Pool)

// WithEpsilon overrides the similarity/tie tolerance (DefaultEpsilon).
// Panics on NaN, infinite, or non-positive values (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(p *Pool) { p.eps = eps }
}

// New returns an empty pool holding at most maxSize entries. If sorted is
// true, entries are kept ordered best-first by sense after every successful
// insertion. Returns ErrPoolCapacity when maxSize < 1.
func New(sense Sense, maxSize int, sorted bool, opts ...Option) (*Pool, error) {
	if maxSize < 1 {
		return nil, ErrPoolCapacity
	}

	p := &Pool{
		sense:   sense,
		maxSize: maxSize,
		sorted:  sorted,
		eps:     DefaultEpsilon,
		nextAge: math.MaxUint64,
		entries: make([]Entry, 0, maxSize),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Add tries to insert a solution with its objective evaluation.
//
// The entry is rejected when the pool already contains a similar solution
// (every coordinate within Epsilon), regardless of objective. Under
// capacity the entry is appended; at capacity it replaces the worst entry
// only when objective is strictly better than that worst value. On any
// successful insertion the pool is re-sorted (when sorted) and the age
// counter advances. Reports whether insertion occurred.
//
// Solutions whose length differs from the stored dimension are rejected.
func (p *Pool) Add(solution []float64, objective float64) bool {
	if len(p.entries) > 0 && len(solution) != len(p.entries[0].Solution) {
		return false
	}

	// One scan does double duty: similarity rejection and locating the
	// worst entry for possible replacement.
	var (
		worstIdx = 0
		worstVal = bestPossible(p.sense)
		i, j     int
	)
	for i = range p.entries {
		similar := true
		for j = range solution {
			if math.Abs(solution[j]-p.entries[i].Solution[j]) > p.eps {
				similar = false
				break
			}
		}
		if similar {
			return false
		}

		// Entry i is worse than the tracked worst so far.
		if p.sense.Better(worstVal, p.entries[i].Objective) {
			worstIdx = i
			worstVal = p.entries[i].Objective
		}
	}

	inserted := false
	switch {
	case len(p.entries) < p.maxSize:
		sol := make([]float64, len(solution))
		copy(sol, solution)
		p.entries = append(p.entries, Entry{Solution: sol, Objective: objective, Age: p.nextAge})
		inserted = true

	case p.sense.Better(objective, worstVal):
		// Overwrite the worst slot in place.
		e := &p.entries[worstIdx]
		copy(e.Solution, solution)
		e.Objective = objective
		e.Age = p.nextAge
		inserted = true
	}

	if inserted {
		if p.sorted {
			p.sortEntries()
		}
		p.nextAge--
	}

	return inserted
}

// Entries returns the pool contents as a read-only view. Callers must not
// mutate the returned slice or the solutions it references; when sorted,
// the order is best-first.
func (p *Pool) Entries() []Entry { return p.entries }

// Len returns the number of entries currently held.
func (p *Pool) Len() int { return len(p.entries) }

// Cap returns the maximum number of entries the pool can hold.
func (p *Pool) Cap() int { return p.maxSize }

// Sense returns the optimization direction the pool orders by.
func (p *Pool) Sense() Sense { return p.sense }

// Epsilon returns the similarity/tie tolerance in effect.
func (p *Pool) Epsilon() float64 { return p.eps }

// Best returns the best entry by objective (ties within Epsilon broken by
// ascending Age) and false when the pool is empty. Works for sorted and
// unsorted pools alike.
func (p *Pool) Best() (Entry, bool) {
	if len(p.entries) == 0 {
		return Entry{}, false
	}

	best := 0
	for i := 1; i < len(p.entries); i++ {
		switch {
		case math.Abs(p.entries[i].Objective-p.entries[best].Objective) < p.eps:
			if p.entries[i].Age < p.entries[best].Age {
				best = i
			}
		case p.sense.Better(p.entries[i].Objective, p.entries[best].Objective):
			best = i
		}
	}

	return p.entries[best], true
}

// sortEntries orders entries best-first by objective under the pool sense,
// breaking ties within Epsilon by ascending Age. The (objective, age) key
// is a total order, so the result is deterministic.
func (p *Pool) sortEntries() {
	sort.Slice(p.entries, func(i, j int) bool {
		a, b := p.entries[i], p.entries[j]
		if math.Abs(a.Objective-b.Objective) < p.eps {
			return a.Age < b.Age
		}

		return p.sense.Better(a.Objective, b.Objective)
	})
}

// bestPossible seeds the worst-entry tracker with the value every real
// objective beats, so the first scanned entry always becomes the tracked
// worst.
func bestPossible(s Sense) float64 {
	if s == Maximize {
		return math.Inf(1)
	}

	return math.Inf(-1)
}
