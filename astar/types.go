// Package astar implements the pose-space best-first search that finds the
// cheapest kinematically valid path between two robot poses on a grid, and
// memoizes every path, cost, and traversed motion it discovers so repeated
// queries between the same pair of poses are free (spec.md §4.4).
//
// The search itself is grounded on dijkstra's heap/runner shape in the
// teacher library: a small ordered priority queue built on container/heap,
// the mutable per-query state (distances, parents, visited set) held in
// local variables of PathCost, and a lazy decrease-key discipline (push duplicates, skip stale pops via a visited
// set) rather than a heap that supports key decrease directly.
package astar

import (
	"errors"

	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/grid"
	"github.com/vantage-robotics/sentrywalk/pose"
)

// ErrNoPath indicates the search exhausted every reachable state without
// finding end; this can only happen if the grid disconnects start from end,
// since the planner's grid is otherwise fully interior-connected.
var ErrNoPath = errors.New("astar: no path between the given poses")

// Search owns the three memo tables shared across every query made against
// it: path_table, cost_table (both keyed symmetrically, since a path is
// reversible) and motion_table (keyed in a single direction; the opposite
// edge's motion is always direction.Motion.Inverse of the stored one).
//
// A zero Search is not usable; construct with New.
type Search struct {
	grid   *grid.Grid
	tuning direction.Tuning

	pathTable   map[pose.EdgeKey][]pose.CellState
	costTable   map[pose.EdgeKey]int
	motionTable map[pose.EdgeKey]direction.Motion
}

// New constructs a Search bound to g, weighing every edge it discovers with
// tuning's cost coefficients (spec.md §6). The returned Search retains its
// memo tables for its entire lifetime; construct a fresh Search if g's
// obstacle set or tuning changes, since stale entries would otherwise leak
// outdated geometry or costs.
func New(g *grid.Grid, tuning direction.Tuning) *Search {
	return &Search{
		grid:        g,
		tuning:      tuning,
		pathTable:   make(map[pose.EdgeKey][]pose.CellState),
		costTable:   make(map[pose.EdgeKey]int),
		motionTable: make(map[pose.EdgeKey]direction.Motion),
	}
}

// Motion returns the kinematic primitive that drives the robot directly
// from one pose to an adjacent pose in a single step, discovered as a side
// effect of some earlier PathCost call between poses whose search frontier
// passed through this edge. ok is false if no such edge has been recorded.
func (s *Search) Motion(from, to pose.CellState) (direction.Motion, bool) {
	key := pose.EdgeKey{From: from.Key(), To: to.Key()}
	if m, ok := s.motionTable[key]; ok {
		return m, true
	}
	reverse := pose.EdgeKey{From: to.Key(), To: from.Key()}
	if m, ok := s.motionTable[reverse]; ok {
		return m.Inverse()
	}
	return 0, false
}
