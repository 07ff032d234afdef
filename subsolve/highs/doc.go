// Package highs provides a subsolve.Session backed by the HiGHS solver
// through the gohighs bindings.
//
// The session loads the model file once and is reused for every restricted
// solve: per-request bound overrides are applied before a run and restored
// afterwards, so consecutive solves always start from the static problem
// bounds. HiGHS is pinned to a single thread and a fixed random seed to
// preserve the module's single-threaded, deterministic contract.
//
// Limit mapping: Limits.TimeLimit and Limits.NodeLimit map onto the native
// "time_limit" and "mip_max_nodes" options. Limits.StagnationLimit has no
// HiGHS counterpart and is ignored; callers that need a stagnation cap
// should pair it with a node cap, which the heuristics in this module do.
// WarmStart is accepted but not forwarded: the bindings expose no MIP-start
// entry point.
//
// Like the bindings, this backend builds on linux/darwin amd64/arm64 only.
package highs
