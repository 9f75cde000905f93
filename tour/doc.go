// Package tour selects, for every obstacle, which of its candidate viewing
// poses to visit and in what order, by exact dynamic programming over the
// combinatorial space of (subset of obstacles to visit) x (candidate slot
// per visited obstacle) x (visiting order), per spec.md §4.5.
//
// The Held-Karp DP is adapted from tsp's closed-cycle formulation in the
// teacher library: this planner's tour is open (the robot never returns to
// its start), which the same DP machinery produces by forcing every edge
// into vertex 0 to cost zero rather than by deriving a separate open-tour
// recurrence.
package tour
