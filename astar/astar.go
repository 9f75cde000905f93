package astar

import (
	"container/heap"

	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/pose"
)

// PathCost returns the cheapest kinematically valid path from start to end
// (inclusive of both endpoints) and its total cost. Results are memoized:
// a repeat call with the same (start, end) or (end, start) pair returns the
// cached path without re-searching.
//
// Cost accumulates motion cost (rotation x reverse x half-turn, each
// factor floored at 1) plus proximity risk at every step. The arrival
// pose's viewing penalty is deliberately excluded from the returned cost —
// it is charged exactly once by the tour solver when it sums the chosen
// viewpoint's penalty, and folding it into every memoized edge as well
// would double-count it (spec.md §4.4, §9). The penalty still participates
// in search-priority ordering, so the search still favors finishing at the
// requested end pose, even though it inflates nothing in the memoized cost.
//
// Complexity: O(b log b) amortized across repeat calls, where b is the
// number of distinct states explored on first discovery of this pair; O(1)
// on every subsequent call for the same pair in either direction.
func (s *Search) PathCost(start, end pose.CellState) ([]pose.CellState, int, error) {
	key := pose.EdgeKey{From: start.Key(), To: end.Key()}
	if path, ok := s.pathTable[key]; ok {
		return path, s.costTable[key], nil
	}

	if start.Equal(end) {
		solo := []pose.CellState{start}
		s.record(start, end, solo, 0)
		return solo, 0, nil
	}

	gDist := map[pose.Key]int{start.Key(): 0}
	parent := make(map[pose.Key]pose.Key)
	visited := make(map[pose.Key]bool)

	pq := make(frontier, 0, 16)
	heap.Init(&pq)
	heap.Push(&pq, &item{
		priority: manhattan(start, end),
		x:        start.X, y: start.Y, heading: start.Direction,
	})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*item)
		curKey := pose.Key{X: cur.x, Y: cur.y, Direction: cur.heading}
		if visited[curKey] {
			continue
		}

		if cur.x == end.X && cur.y == end.Y && cur.heading == end.Direction {
			path := s.reconstruct(start, end, parent)
			cost := gDist[curKey]
			s.record(start, end, path, cost)
			return path, cost, nil
		}

		visited[curKey] = true
		dist := gDist[curKey]

		for _, n := range neighbors(s.grid, cur.x, cur.y, cur.heading, s.tuning) {
			nKey := pose.Key{X: n.x, Y: n.y, Direction: n.heading}
			if visited[nKey] {
				continue
			}

			s.recordMotionOnce(curKey, nKey, n.motion)

			motionCost := compositeMotionCost(cur.heading, n.heading, n.motion, s.tuning)
			movementCost := motionCost + n.safeCost

			screenshotCost := 0
			if n.x == end.X && n.y == end.Y && n.heading == end.Direction {
				screenshotCost = end.Penalty
			}

			candidate := dist + movementCost
			if existing, ok := gDist[nKey]; !ok || candidate < existing {
				gDist[nKey] = candidate
				parent[nKey] = curKey

				priority := candidate + screenshotCost + manhattan(pose.New(n.x, n.y, n.heading), end)
				heap.Push(&pq, &item{priority: priority, x: n.x, y: n.y, heading: n.heading})
			}
		}
	}

	return nil, 0, ErrNoPath
}

// recordMotionOnce stores the motion taken on edge from->to unless either
// direction of the edge has already been recorded, matching the
// source's "only need to store one of the two directions" discipline.
func (s *Search) recordMotionOnce(from, to pose.Key, motion direction.Motion) {
	fwd := pose.EdgeKey{From: from, To: to}
	if _, ok := s.motionTable[fwd]; ok {
		return
	}
	rev := pose.EdgeKey{From: to, To: from}
	if _, ok := s.motionTable[rev]; ok {
		return
	}
	s.motionTable[fwd] = motion
}

// record stores path and cost under both the (start,end) and (end,start)
// keys, since the underlying path is reversible.
func (s *Search) record(start, end pose.CellState, path []pose.CellState, cost int) {
	fwd := pose.EdgeKey{From: start.Key(), To: end.Key()}
	rev := pose.EdgeKey{From: end.Key(), To: start.Key()}

	s.pathTable[fwd] = path
	s.costTable[fwd] = cost

	reversed := make([]pose.CellState, len(path))
	for i, p := range path {
		reversed[len(path)-1-i] = p
	}
	s.pathTable[rev] = reversed
	s.costTable[rev] = cost
}

func (s *Search) reconstruct(start, end pose.CellState, parent map[pose.Key]pose.Key) []pose.CellState {
	var reversed []pose.Key
	cursor := end.Key()
	for {
		reversed = append(reversed, cursor)
		p, ok := parent[cursor]
		if !ok {
			break
		}
		cursor = p
	}

	path := make([]pose.CellState, len(reversed))
	for i, k := range reversed {
		path[len(reversed)-1-i] = pose.New(k.X, k.Y, k.Direction)
	}
	return path
}

// compositeMotionCost multiplies the rotation, reverse, and half-turn cost
// factors for a single kinematic step, flooring each factor at 1 so that a
// "free" component never zeroes out the whole product (spec.md §4.4).
func compositeMotionCost(from, to direction.Direction, motion direction.Motion, tuning direction.Tuning) int {
	rotation, err := direction.RotationCost(from, to)
	if err != nil {
		rotation = 0
	}
	rotationCost := tuning.TurnFactor * rotation
	if rotationCost == 0 {
		rotationCost = 1
	}

	reverseCost := tuning.ReverseFactor * motion.ReverseCost()
	if reverseCost == 0 {
		reverseCost = 1
	}

	halfTurnCost := tuning.HalfTurnFactor * motion.HalfTurnCost()
	if halfTurnCost == 0 {
		halfTurnCost = 1
	}

	return rotationCost * reverseCost * halfTurnCost
}

// manhattan is the search heuristic: the L1 distance between two poses'
// positions, ignoring heading (spec.md §4.4).
func manhattan(a, b pose.CellState) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
