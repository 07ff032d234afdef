// Package heuristic implements the LNS improvement strategies invoked
// periodically from a host branch-and-cut search.
//
// Two matheuristics are provided:
//
//   - Polishing: the evolutionary solution-polishing algorithm of Rothberg
//     (mutation of pool solutions plus pairwise/consensus recombination).
//   - BiasedRecombination: the recombination matheuristic of Maravilha,
//     Campelo and Carrano, which frees variables by weighted sampling over
//     per-variable disagreement scores between incumbent, pool entry, and
//     node relaxation.
//
// Both construct restricted sub-problems by fixing 0/1 variables, solve
// them through an exclusively-owned subsolve.Session under a fresh budget
// scope, harvest any solution into the shared pool, and report back a
// never-worse incumbent through the Context the host search provides.
//
// Strategies adapt their own sub-problem sizing parameters across
// invocations; a single Heuristic instance therefore serves one whole
// optimization run. Everything is single-threaded and deterministic under
// a fixed Options.Seed.
package heuristic
