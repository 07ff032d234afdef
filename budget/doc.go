// Package budget provides observational abort signals for nested solve
// scopes: the outer optimization run and each restricted sub-problem solve.
//
// A Meter never stops anything by itself. The surrounding search polls
// Expired (wall-clock and node-count limits) or Stagnated (nodes explored
// since the last incumbent improvement) on every iteration and acts on the
// boolean. Once any criterion trips, the meter latches and keeps reporting
// true.
//
// Meters are cheap and scoped: construct one per solve, discard it when
// that solve ends. The elapsed-time source is a shared read-only Timer so
// that inner scopes inherit the outer run's clock.
package budget
