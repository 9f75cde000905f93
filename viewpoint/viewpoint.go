// Package viewpoint generates, for each obstacle, the ordered set of
// candidate robot poses from which a photo of that obstacle's image is
// valid, each tagged with a quality penalty (spec.md §4.3).
//
// The candidate geometry is fixed per obstacle facing and mirrors
// Obstacle.get_view_state in the source this planner was distilled from:
// five slots along the obstacle's facing axis, in this order: straight
// ahead at 2 cells (TooCloseCost), 4 cells ahead and one cell to either
// side (ScreenshotCost each), straight ahead at 3 cells (TooCloseCost/2),
// and straight ahead at 4 cells (no penalty).
package viewpoint

import (
	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/grid"
	"github.com/vantage-robotics/sentrywalk/pose"
)

// Candidates returns, for each non-SKIP obstacle on g in insertion order,
// the ordered list of valid (on-grid and reachable) candidate viewing poses
// for that obstacle. Obstacles facing direction.Skip contribute no entry at
// all (not even an empty slice) — spec.md §4.3: "Obstacles with direction
// SKIP contribute no candidates." tuning's TooCloseCost and ScreenshotCost
// set the per-slot penalty scale (spec.md §6).
//
// Complexity: O(|obstacles| * |obstacle_slots| * |grid_obstacles|), since
// each of the five fixed slots runs grid.Reachable's O(n) obstacle scan.
func Candidates(g *grid.Grid, tuning direction.Tuning) [][]pose.CellState {
	var out [][]pose.CellState
	for _, obstacle := range g.Obstacles() {
		if obstacle.Direction == direction.Skip {
			continue
		}
		out = append(out, candidatesFor(g, obstacle, tuning))
	}
	return out
}

// slot is one of the five fixed candidate-viewpoint offsets for a single
// obstacle facing, expressed along that facing's own axis before the
// per-direction coordinate mapping is applied.
type slot struct {
	dx, dy  int
	penalty int
}

// candidatesFor returns the filtered, order-preserved candidate list for a
// single obstacle, per the slot table in spec.md §4.3.
//
// Complexity: O(|grid_obstacles|) per slot, 5 slots.
func candidatesFor(g *grid.Grid, o pose.Obstacle, tuning direction.Tuning) []pose.CellState {
	const offset = 2 * direction.ExpandedCell
	tooClose, screenshot := tuning.TooCloseCost, tuning.ScreenshotCost

	var (
		slots  [5]slot
		facing direction.Direction
	)

	switch o.Direction {
	case direction.North:
		facing = direction.South
		slots = [5]slot{
			{0, offset, tooClose},
			{-1, offset + 2, screenshot},
			{1, offset + 2, screenshot},
			{0, offset + 1, tooClose / 2},
			{0, offset + 2, 0},
		}
	case direction.South:
		facing = direction.North
		slots = [5]slot{
			{0, -offset, tooClose},
			{1, -offset - 2, screenshot},
			{-1, -offset - 2, screenshot},
			{0, -offset - 1, tooClose / 2},
			{0, -offset - 2, 0},
		}
	case direction.East:
		facing = direction.West
		slots = [5]slot{
			{offset, 0, tooClose},
			{offset + 2, 1, screenshot},
			{offset + 2, -1, screenshot},
			{offset + 1, 0, tooClose / 2},
			{offset + 2, 0, 0},
		}
	case direction.West:
		facing = direction.East
		slots = [5]slot{
			{-offset, 0, tooClose},
			{-offset - 2, 1, screenshot},
			{-offset - 2, -1, screenshot},
			{-offset - 1, 0, tooClose / 2},
			{-offset - 2, 0, 0},
		}
	default:
		return nil
	}

	candidates := make([]pose.CellState, 0, len(slots))
	for _, s := range slots {
		x, y := o.X+s.dx, o.Y+s.dy
		if !g.InBoundsRaw(x, y) || !g.Reachable(x, y) {
			continue
		}
		cs := pose.New(x, y, facing).WithObstacleID(o.ID)
		cs.Penalty = s.penalty
		candidates = append(candidates, cs)
	}
	return candidates
}
