package pool_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lnskit/lnskit/pool"
)

// PoolSuite exercises insertion, deduplication, replacement and ordering.
type PoolSuite struct {
	suite.Suite
}

// mustPool builds a sorted minimizing pool of the given capacity.
func (s *PoolSuite) mustPool(capacity int) *pool.Pool {
	p, err := pool.New(pool.Minimize, capacity, true)
	require.NoError(s.T(), err)

	return p
}

// sol builds a distinct 3-dimensional solution keyed by v.
func sol(v float64) []float64 { return []float64{v, v + 1, v + 2} }

// objectives flattens the pool into its objective sequence.
func objectives(p *pool.Pool) []float64 {
	out := make([]float64, 0, p.Len())
	for _, e := range p.Entries() {
		out = append(out, e.Objective)
	}

	return out
}

// TestDistinctInsertionsSorted verifies three distinct solutions all land
// and come back ordered best-first.
func (s *PoolSuite) TestDistinctInsertionsSorted() {
	p := s.mustPool(3)
	require.True(s.T(), p.Add(sol(1), 10))
	require.True(s.T(), p.Add(sol(2), 8))
	require.True(s.T(), p.Add(sol(3), 12))

	require.Equal(s.T(), 3, p.Len())
	require.Equal(s.T(), []float64{8, 10, 12}, objectives(p))
}

// TestWorseThanWorstRejected verifies a full pool rejects entries that do
// not beat the current worst objective.
func (s *PoolSuite) TestWorseThanWorstRejected() {
	p := s.mustPool(3)
	require.True(s.T(), p.Add(sol(1), 10))
	require.True(s.T(), p.Add(sol(2), 8))
	require.True(s.T(), p.Add(sol(3), 12))

	require.False(s.T(), p.Add(sol(4), 15))
	require.Equal(s.T(), []float64{8, 10, 12}, objectives(p))
}

// TestBetterReplacesWorst verifies worst-replacement at capacity.
func (s *PoolSuite) TestBetterReplacesWorst() {
	p := s.mustPool(3)
	require.True(s.T(), p.Add(sol(1), 10))
	require.True(s.T(), p.Add(sol(2), 8))
	require.True(s.T(), p.Add(sol(3), 12))

	require.True(s.T(), p.Add(sol(4), 5))
	require.Equal(s.T(), []float64{5, 8, 10}, objectives(p))
}

// TestSimilarRejectedDespiteBetterObjective verifies the similarity check
// precedes any objective comparison.
func (s *PoolSuite) TestSimilarRejectedDespiteBetterObjective() {
	p := s.mustPool(3)
	require.True(s.T(), p.Add(sol(1), 10))

	near := sol(1)
	near[0] += 1e-6 // inside the similarity tolerance
	require.False(s.T(), p.Add(near, 1))
	require.Equal(s.T(), []float64{10}, objectives(p))
}

// TestMaximizeOrdering verifies sense-aware ordering and replacement.
func (s *PoolSuite) TestMaximizeOrdering() {
	p, err := pool.New(pool.Maximize, 2, true)
	require.NoError(s.T(), err)

	require.True(s.T(), p.Add(sol(1), 3))
	require.True(s.T(), p.Add(sol(2), 7))
	require.Equal(s.T(), []float64{7, 3}, objectives(p))

	// 5 beats the worst (3) under Maximize.
	require.True(s.T(), p.Add(sol(3), 5))
	require.Equal(s.T(), []float64{7, 5}, objectives(p))
}

// TestAgeTieBreak verifies that objective ties within epsilon sort the
// more recent insertion first.
func (s *PoolSuite) TestAgeTieBreak() {
	p := s.mustPool(3)
	require.True(s.T(), p.Add(sol(1), 10))
	require.True(s.T(), p.Add(sol(2), 10))

	entries := p.Entries()
	require.Equal(s.T(), sol(2), entries[0].Solution, "newer entry wins the tie")
	require.Equal(s.T(), sol(1), entries[1].Solution)
	require.Less(s.T(), entries[0].Age, entries[1].Age)
}

// TestDimensionMismatchRejected verifies rejection of solutions with the
// wrong length.
func (s *PoolSuite) TestDimensionMismatchRejected() {
	p := s.mustPool(2)
	require.True(s.T(), p.Add(sol(1), 10))
	require.False(s.T(), p.Add([]float64{1, 2}, 1))
}

// TestBoundAndMonotoneWorst drives a randomized insertion sequence and
// checks the structural invariants: size bound, pairwise dissimilarity,
// and a non-worsening worst objective once full.
func (s *PoolSuite) TestBoundAndMonotoneWorst() {
	const capacity = 5
	p := s.mustPool(capacity)
	rng := rand.New(rand.NewSource(42))

	worst := func() float64 {
		w := p.Entries()[0].Objective
		for _, e := range p.Entries() {
			if e.Objective > w {
				w = e.Objective
			}
		}

		return w
	}

	full := false
	prevWorst := 0.0
	for i := 0; i < 200; i++ {
		v := rng.Float64() * 100
		inserted := p.Add(sol(v), v)
		require.LessOrEqual(s.T(), p.Len(), capacity)

		if full && inserted {
			require.LessOrEqual(s.T(), worst(), prevWorst, "worst objective must not regress")
		}
		if p.Len() == capacity {
			full = true
			prevWorst = worst()
		}
	}

	// Pairwise dissimilarity: at least one coordinate differs by >= eps.
	entries := p.Entries()
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			distinct := false
			for k := range entries[i].Solution {
				if diff := entries[i].Solution[k] - entries[j].Solution[k]; diff >= p.Epsilon() || -diff >= p.Epsilon() {
					distinct = true
					break
				}
			}
			require.True(s.T(), distinct, "entries %d and %d are near-duplicates", i, j)
		}
	}
}

// TestUnsortedPoolStillDeduplicates verifies dedupe and bound without
// maintaining order.
func (s *PoolSuite) TestUnsortedPoolStillDeduplicates() {
	p, err := pool.New(pool.Minimize, 2, false)
	require.NoError(s.T(), err)

	require.True(s.T(), p.Add(sol(1), 10))
	require.True(s.T(), p.Add(sol(2), 5))
	require.False(s.T(), p.Add(sol(1), 1), "similar solution rejected")

	best, ok := p.Best()
	require.True(s.T(), ok)
	require.Equal(s.T(), 5.0, best.Objective)
}

// TestCapacityValidation verifies the constructor sentinel.
func (s *PoolSuite) TestCapacityValidation() {
	_, err := pool.New(pool.Minimize, 0, true)
	require.ErrorIs(s.T(), err, pool.ErrPoolCapacity)
}

// TestWithEpsilonPanicsOnInvalid verifies programmer-error policy.
func (s *PoolSuite) TestWithEpsilonPanicsOnInvalid() {
	require.Panics(s.T(), func() { pool.WithEpsilon(-1) })
	require.Panics(s.T(), func() { pool.WithEpsilon(0) })
}

func TestPoolSuite(t *testing.T) {
	suite.Run(t, new(PoolSuite))
}
