package astar

import (
	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/grid"
)

// moveStep pairs a unit displacement with the heading that results from
// driving straight along it. The order of moveSteps fixes the order in
// which neighbouring states are generated and pushed. The frontier does not
// break priority ties by push order: frontier.Less orders equal priorities
// by x, then y, then heading.
type moveStep struct {
	dx, dy  int
	heading direction.Direction
}

var moveSteps = [4]moveStep{
	{1, 0, direction.East},
	{-1, 0, direction.West},
	{0, 1, direction.North},
	{0, -1, direction.South},
}

// turnStep describes one of the eight perpendicular heading changes the
// robot can make by sweeping a quarter-turn, keyed by (from, to) heading.
type turnStep struct {
	forwardDX, forwardDY int
	forwardMotion        direction.Motion
	reverseDX, reverseDY int
	reverseMotion        direction.Motion
}

// turnTable enumerates, for every ordered pair of perpendicular headings,
// the forward and reverse quarter-turn offsets that realize it. Populated
// from the eight direction-pair branches ported from the source this
// planner was distilled from (_get_neighboring_states' turning half).
var turnTable = buildTurnTable()

func buildTurnTable() map[[2]direction.Direction]turnStep {
	big, small := direction.Turns[0], direction.Turns[1]
	t := make(map[[2]direction.Direction]turnStep, 8)

	t[[2]direction.Direction{direction.North, direction.East}] = turnStep{
		forwardDX: big, forwardDY: small, forwardMotion: direction.ForwardRightTurn,
		reverseDX: -small, reverseDY: -big, reverseMotion: direction.ReverseLeftTurn,
	}
	t[[2]direction.Direction{direction.East, direction.North}] = turnStep{
		forwardDX: small, forwardDY: big, forwardMotion: direction.ForwardLeftTurn,
		reverseDX: -big, reverseDY: -small, reverseMotion: direction.ReverseRightTurn,
	}
	t[[2]direction.Direction{direction.East, direction.South}] = turnStep{
		forwardDX: small, forwardDY: -big, forwardMotion: direction.ForwardRightTurn,
		reverseDX: -big, reverseDY: small, reverseMotion: direction.ReverseLeftTurn,
	}
	t[[2]direction.Direction{direction.South, direction.East}] = turnStep{
		forwardDX: big, forwardDY: -small, forwardMotion: direction.ForwardLeftTurn,
		reverseDX: -small, reverseDY: big, reverseMotion: direction.ReverseRightTurn,
	}
	t[[2]direction.Direction{direction.South, direction.West}] = turnStep{
		forwardDX: -big, forwardDY: -small, forwardMotion: direction.ForwardRightTurn,
		reverseDX: small, reverseDY: big, reverseMotion: direction.ReverseLeftTurn,
	}
	t[[2]direction.Direction{direction.West, direction.South}] = turnStep{
		forwardDX: -small, forwardDY: -big, forwardMotion: direction.ForwardLeftTurn,
		reverseDX: big, reverseDY: small, reverseMotion: direction.ReverseRightTurn,
	}
	t[[2]direction.Direction{direction.West, direction.North}] = turnStep{
		forwardDX: -small, forwardDY: big, forwardMotion: direction.ForwardRightTurn,
		reverseDX: big, reverseDY: -small, reverseMotion: direction.ReverseLeftTurn,
	}
	t[[2]direction.Direction{direction.North, direction.West}] = turnStep{
		forwardDX: -big, forwardDY: small, forwardMotion: direction.ForwardLeftTurn,
		reverseDX: small, reverseDY: -big, reverseMotion: direction.ReverseRightTurn,
	}
	return t
}

// neighbor is one candidate successor state reachable from a pose in a
// single kinematic step.
type neighbor struct {
	x, y     int
	heading  direction.Direction
	safeCost int
	motion   direction.Motion
}

// neighborTurnPenalty is the flat risk surcharge folded into a quarter-turn
// neighbor's safe cost, on top of the ordinary proximity check — turning
// maneuvers sweep a wider arc than straight or half-turn moves.
const neighborTurnPenalty = 10

// neighbors enumerates, in the fixed deterministic order described by
// moveSteps, every kinematically valid successor of pose (x,y,heading) on
// g. This order is the push order only; two candidate states with equal
// priority are ordered by frontier.Less (x, y, heading), not by it.
func neighbors(g *grid.Grid, x, y int, heading direction.Direction, tuning direction.Tuning) []neighbor {
	var out []neighbor

	for _, step := range moveSteps {
		if step.heading == heading {
			out = append(out, straightNeighbors(g, x, y, heading, tuning)...)
			continue
		}
		ts, ok := turnTable[[2]direction.Direction{heading, step.heading}]
		if !ok {
			continue
		}
		if fx, fy := x+ts.forwardDX, y+ts.forwardDY; g.TurnReachable(x, y, fx, fy, heading) {
			out = append(out, neighbor{
				x: fx, y: fy, heading: step.heading,
				safeCost: calculateSafeCost(g, fx, fy, tuning) + neighborTurnPenalty,
				motion:   ts.forwardMotion,
			})
		}
		if rx, ry := x+ts.reverseDX, y+ts.reverseDY; g.TurnReachable(x, y, rx, ry, heading) {
			out = append(out, neighbor{
				x: rx, y: ry, heading: step.heading,
				safeCost: calculateSafeCost(g, rx, ry, tuning) + neighborTurnPenalty,
				motion:   ts.reverseMotion,
			})
		}
	}
	return out
}

// straightNeighbors enumerates the six same-heading successors: forward,
// reverse, and the four lateral half-turn offsets, in the fixed order the
// source this planner was distilled from generates them.
func straightNeighbors(g *grid.Grid, x, y int, heading direction.Direction, tuning direction.Tuning) []neighbor {
	var out []neighbor

	sdx, sdy := straightDelta(heading)
	if fx, fy := x+sdx, y+sdy; g.Reachable(fx, fy) {
		out = append(out, neighbor{x: fx, y: fy, heading: heading, safeCost: calculateSafeCost(g, fx, fy, tuning), motion: direction.Forward})
	}
	if bx, by := x-sdx, y-sdy; g.Reachable(bx, by) {
		out = append(out, neighbor{x: bx, y: by, heading: heading, safeCost: calculateSafeCost(g, bx, by, tuning), motion: direction.Reverse})
	}

	dx, dy, err := direction.HalfTurnDisplacement(heading)
	if err != nil {
		return out
	}

	switch heading {
	case direction.North, direction.South:
		out = appendIfHalfTurnReachable(out, g, x, y, x+dx, y+dy, heading, direction.ForwardOffsetRight, tuning)
		out = appendIfHalfTurnReachable(out, g, x, y, x-dx, y+dy, heading, direction.ForwardOffsetLeft, tuning)
		out = appendIfHalfTurnReachable(out, g, x, y, x+dx, y-dy, heading, direction.ReverseOffsetRight, tuning)
		out = appendIfHalfTurnReachable(out, g, x, y, x-dx, y-dy, heading, direction.ReverseOffsetLeft, tuning)
	case direction.East, direction.West:
		out = appendIfHalfTurnReachable(out, g, x, y, x+dx, y-dy, heading, direction.ForwardOffsetRight, tuning)
		out = appendIfHalfTurnReachable(out, g, x, y, x+dx, y+dy, heading, direction.ForwardOffsetLeft, tuning)
		out = appendIfHalfTurnReachable(out, g, x, y, x-dx, y-dy, heading, direction.ReverseOffsetRight, tuning)
		out = appendIfHalfTurnReachable(out, g, x, y, x-dx, y+dy, heading, direction.ReverseOffsetLeft, tuning)
	}
	return out
}

// straightDelta returns the unit displacement that advances the robot one
// step forward while facing heading.
func straightDelta(heading direction.Direction) (dx, dy int) {
	for _, step := range moveSteps {
		if step.heading == heading {
			return step.dx, step.dy
		}
	}
	return 0, 0
}

func appendIfHalfTurnReachable(out []neighbor, g *grid.Grid, x, y, nx, ny int, heading direction.Direction, motion direction.Motion, tuning direction.Tuning) []neighbor {
	if !g.HalfTurnReachable(x, y, nx, ny) {
		return out
	}
	return append(out, neighbor{x: nx, y: ny, heading: heading, safeCost: calculateSafeCost(g, nx, ny, tuning), motion: motion})
}

// calculateSafeCost charges tuning.SafeCost if any obstacle lies within a
// 2-unit Chebyshev-style box of the destination, otherwise zero. Ported
// from MazeSolver._calculate_safe_cost.
//
// Complexity: O(n) in the obstacle count.
func calculateSafeCost(g *grid.Grid, x, y int, tuning direction.Tuning) int {
	const padding = 2
	for _, o := range g.Obstacles() {
		dx, dy := o.X-x, o.Y-y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx <= padding && dy <= padding {
			return tuning.SafeCost
		}
	}
	return 0
}
