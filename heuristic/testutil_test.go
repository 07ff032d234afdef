// Shared fixtures for the heuristic tests: a scripted subordinate-solver
// session, a recording search context, and a settable timer.
package heuristic_test

import (
	"context"
	"time"

	"github.com/lnskit/lnskit/pool"
	"github.com/lnskit/lnskit/subsolve"
)

// binProblem builds a minimization problem of n binary variables.
func binProblem(n int) *subsolve.Problem {
	vars := make([]subsolve.Variable, n)
	for i := range vars {
		vars[i] = subsolve.Variable{Type: subsolve.BinaryVar, Lower: 0, Upper: 1}
	}

	return &subsolve.Problem{Vars: vars, Sense: pool.Minimize}
}

// vec builds an n-dimensional vector filled with v.
func vec(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// scriptSession replays a scripted sequence of results, repeating the last
// one forever, and records every request it receives.
type scriptSession struct {
	results  []subsolve.Result
	requests []subsolve.Request
}

func (s *scriptSession) Solve(_ context.Context, req subsolve.Request) (subsolve.Result, error) {
	s.requests = append(s.requests, req)

	if len(s.results) == 0 {
		return subsolve.Result{Status: subsolve.StatusInfeasible}, nil
	}
	res := s.results[0]
	if len(s.results) > 1 {
		s.results = s.results[1:]
	}

	return res, nil
}

func (s *scriptSession) Close() error { return nil }

// infeasibleForever is a session that proves every sub-problem infeasible.
func infeasibleForever() *scriptSession {
	return &scriptSession{results: []subsolve.Result{{Status: subsolve.StatusInfeasible}}}
}

// searchStub is a recording heuristic.Context.
type searchStub struct {
	inc    []float64
	incObj float64
	hasInc bool

	rel    []float64
	relObj float64
	hasRel bool

	installed    [][]float64
	installedObj []float64
}

func (s *searchStub) Incumbent() ([]float64, float64, bool) { return s.inc, s.incObj, s.hasInc }

func (s *searchStub) Relaxation() ([]float64, float64, bool) { return s.rel, s.relObj, s.hasRel }

func (s *searchStub) SetSolution(values []float64, objective float64) {
	cp := make([]float64, len(values))
	copy(cp, values)
	s.installed = append(s.installed, cp)
	s.installedObj = append(s.installedObj, objective)
}

// stubTimer is a settable elapsed-time source.
type stubTimer struct{ d time.Duration }

func (t *stubTimer) Elapsed() time.Duration { return t.d }
