// Package lnskit implements large-neighborhood-search (LNS) matheuristics
// that improve incumbent solutions of a mixed-integer program while it is
// being solved by an external branch-and-cut engine.
//
// The host search periodically hands control to one of the strategies in
// this module; the strategy builds one or more restricted sub-problems from
// a pool of diverse feasible solutions, solves each through a subordinate
// solver session under its own budget, and reports a (possibly improved)
// incumbent back.
//
// Everything is organized under five subpackages:
//
//	pool/           — bounded, deduplicated pool of solution/objective pairs
//	budget/         — wall-clock, node-count and stagnation abort signals
//	subsolve/       — subordinate-solver collaborator interface
//	subsolve/highs/ — HiGHS-backed subordinate solver (cgo, optional platforms)
//	heuristic/      — strategy interface, solution polishing (Rothberg) and
//	                  biased recombination (Maravilha) matheuristics
//
// Design principles:
//
//   - Deterministic: seeded RNG everywhere; no time-based randomness.
//   - Single-threaded by contract: the host search thread is the only
//     thread; subordinate solvers are configured to use one thread.
//   - Strict sentinels: invalid configuration surfaces as sentinel errors
//     from each package's types.go; solve failures inside a heuristic pass
//     are absorbed and drive parameter adaptation instead.
//   - Tolerance policy: a fixed per-package epsilon (1e-5) governs all
//     equality and ordering comparisons on solver output.
//
//	go get github.com/lnskit/lnskit
package lnskit
