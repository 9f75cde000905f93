package grid

import (
	"math"

	"github.com/vantage-robotics/sentrywalk/direction"
)

// Reachable reports whether (x,y) is a valid straight-line destination: it
// must be interior, and for every obstacle both the Manhattan distance must
// exceed 2 and the Chebyshev distance must be at least 2.
//
// The two obstacle checks are logically redundant — every cell the
// Chebyshev check rejects (both offsets at most 1) already has Manhattan
// distance at most 2, so the Chebyshev check never changes the result — but
// spec.md keeps both verbatim from the source (see DESIGN.md Open Question
// 2) rather than simplifying to the Manhattan check alone.
//
// Complexity: O(n) in the obstacle count.
func (g *Grid) Reachable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	for _, o := range g.obstacles {
		dx, dy := absInt(o.X-x), absInt(o.Y-y)
		if dx+dy <= 2 {
			return false
		}
		if maxInt(dx, dy) < 2 {
			return false
		}
	}
	return true
}

// HalfTurnReachable reports whether a lateral half-turn offset move from
// (x,y) to (x2,y2) clears every obstacle. Both endpoints must be interior.
// The rectangle spanned by the two endpoints is padded by 2*EXPANDED_CELL
// on whichever axis is the *shorter* of the move's extents; no obstacle may
// fall inside the padded rectangle (spec.md §4.2).
//
// Complexity: O(n).
func (g *Grid) HalfTurnReachable(x, y, x2, y2 int) bool {
	if !g.InBounds(x, y) || !g.InBounds(x2, y2) {
		return false
	}
	loX, hiX := minInt(x, x2), maxInt(x, x2)
	loY, hiY := minInt(y, y2), maxInt(y, y2)
	const pad = 2 * direction.ExpandedCell

	for _, o := range g.obstacles {
		if hiX-loX > hiY-loY {
			// x is the longer axis: pad the y-axis only.
			if o.X >= loX && o.X <= hiX && o.Y >= loY-pad && o.Y <= hiY+pad {
				return false
			}
		} else {
			// y is the longer (or equal) axis: pad the x-axis only.
			if o.X >= loX-pad && o.X <= hiX+pad && o.Y >= loY && o.Y <= hiY {
				return false
			}
		}
	}
	return true
}

// TurnReachable reports whether a quarter-turn move from (x,y) to (x2,y2)
// while starting with heading d clears every obstacle. Both endpoints must
// be interior. For every obstacle, the Euclidean distance to both the start
// and end point must be at least TURN_PADDING, and the Euclidean distance
// to each of three curve-sample points (approximating the turn's swept
// path) must be at least MID_TURN_PADDING.
//
// Complexity: O(n).
func (g *Grid) TurnReachable(x, y, x2, y2 int, d direction.Direction) bool {
	if !g.InBounds(x, y) || !g.InBounds(x2, y2) {
		return false
	}
	p1, p2, p3, err := turnCheckPoints(x, y, x2, y2, d)
	if err != nil {
		return false
	}

	for _, o := range g.obstacles {
		if euclid(float64(o.X), float64(o.Y), float64(x), float64(y)) < direction.TurnPadding {
			return false
		}
		if euclid(float64(o.X), float64(o.Y), float64(x2), float64(y2)) < direction.TurnPadding {
			return false
		}
		for _, p := range [3][2]float64{p1, p2, p3} {
			if euclid(float64(o.X), float64(o.Y), p[0], p[1]) < direction.MidTurnPadding {
				return false
			}
		}
	}
	return true
}

// turnCheckPoints computes the three curve-sample points used by
// TurnReachable: the move's midpoint M, the right-triangle corner T formed
// with the start/end pair, and three points interpolated between the start,
// T, and end around M. Ported verbatim from
// Grid._get_turn_checking_points in the source this planner was distilled
// from; the curve is not a true circular arc so these are an approximation,
// not an exact geometric construction.
func turnCheckPoints(x, y, x2, y2 int, d direction.Direction) (p1, p2, p3 [2]float64, err error) {
	fx, fy, fx2, fy2 := float64(x), float64(y), float64(x2), float64(y2)
	midX, midY := (fx+fx2)/2, (fy+fy2)/2

	switch d {
	case direction.North, direction.South:
		trX, trY := fx, fy2
		p1 = [2]float64{(fx + midX) / 2, midY}
		p2 = [2]float64{(trX + midX) / 2, (trY + midY) / 2}
		p3 = [2]float64{midX, (fy2 + midY) / 2}
		return p1, p2, p3, nil
	case direction.East, direction.West:
		trX, trY := fx2, fy
		p1 = [2]float64{midX, (fy + midY) / 2}
		p2 = [2]float64{(trX + midX) / 2, (trY + midY) / 2}
		p3 = [2]float64{(fx2 + midX) / 2, midY}
		return p1, p2, p3, nil
	default:
		return p1, p2, p3, direction.ErrInvalidDirection
	}
}

func euclid(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return math.Sqrt(dx*dx + dy*dy)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
