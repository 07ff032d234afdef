// Package subsolve defines the subordinate-solver collaborator consumed by
// the LNS heuristics: a problem descriptor, per-solve bound overrides, an
// abort budget, and the status/result vocabulary.
//
// A Session is one reusable solver instance bound to a fixed problem for
// its whole lifetime. Heuristic strategies own exactly one session each
// and drive all of their restricted sub-problem solves through it. The
// session must run single-threaded, poll the request limits, and return
// promptly with its best feasible solution once a limit trips.
//
// Solve failures (infeasible, limit reached, backend error) are ordinary
// outcomes, not faults: callers absorb them as "no improving solution this
// iteration" and feed them into parameter adaptation.
//
// The production backend lives in subsolve/highs; tests use scripted
// in-memory sessions.
package subsolve
