package tour

import (
	"errors"

	"github.com/vantage-robotics/sentrywalk/astar"
	"github.com/vantage-robotics/sentrywalk/capture"
	"github.com/vantage-robotics/sentrywalk/grid"
	"github.com/vantage-robotics/sentrywalk/pose"
)

// obstacleLookup is the subset of grid.Grid's API tour needs to annotate
// arrival poses without importing the whole grid surface area.
type obstacleLookup interface {
	FindObstacleByID(id int) (pose.Obstacle, bool)
}

// Solve picks a subset of obstacles to visit, one candidate viewing pose per
// visited obstacle, and a visiting order, minimizing total motion cost plus
// viewpoint penalty, then stitches the chosen viewpoints' shortest paths
// into a single annotated route starting at start (spec.md §4.5).
//
// candidates holds one entry per obstacle (in the order viewpoint.Candidates
// produced them); an obstacle with zero candidates cannot be visited and is
// implicitly dropped from every subset that would have included it.
//
// The search over subsets favors visiting MORE obstacles: subsets are tried
// in descending order of obstacle count, and the first subset that yields
// any feasible tour at all wins outright — cheaper tours from a smaller
// subset are never considered once a larger subset succeeds (see DESIGN.md;
// this is the source's own tradeoff, kept intentionally).
//
// Complexity: dominated by the Held-Karp DP re-run once per candidate
// combination of the first successful subset: O(k^2 * 2^k) per combination,
// where k = 1 + number of obstacles in that subset.
func Solve(g *grid.Grid, search pathCoster, start pose.CellState, candidates [][]pose.CellState) ([]pose.CellState, int, error) {
	if len(candidates) == 0 {
		return nil, 0, ErrNoObstacles
	}

	var (
		bestPath []pose.CellState
		bestCost = -1
	)

	for _, mask := range visitOptions(len(candidates)) {
		visitStates := []pose.CellState{start}
		var groups [][]pose.CellState
		for i, group := range candidates {
			if !bitSet(mask, i) {
				continue
			}
			// group may be empty (every candidate for this obstacle was
			// unreachable); it is still counted as "selected" by the mask,
			// so candidateCombinations below correctly yields zero
			// combinations for this subset rather than silently dropping
			// an unreachable obstacle from the requirement.
			groups = append(groups, group)
			visitStates = append(visitStates, group...)
		}

		if err := warmPairwiseCosts(search, visitStates); err != nil {
			return nil, 0, err
		}

		for _, combo := range candidateCombinations(groups) {
			visited := []int{0}
			currentIdx := 1
			penaltyCost := 0
			for idx, group := range groups {
				visited = append(visited, currentIdx+combo[idx])
				penaltyCost += group[combo[idx]].Penalty
				currentIdx += len(group)
			}

			if len(visited) > MaxExactN {
				return nil, 0, ErrSizeTooLarge
			}

			distMatrix, err := buildCostMatrix(search, visitStates, visited)
			if err != nil {
				return nil, 0, err
			}

			order, tourCost, ok := heldKarpOpenTour(distMatrix)
			if !ok {
				continue
			}

			total := int(tourCost) + penaltyCost
			if bestCost >= 0 && total >= bestCost {
				continue
			}

			path, err := reconstructTour(g, search, visitStates, visited, order)
			if err != nil {
				if errors.Is(err, astar.ErrNoPath) {
					// The DP picked an edge that only exists on paper, via
					// unreachablePairCost; this combo was never actually
					// drivable, so try the next one rather than aborting
					// the whole subset (spec.md §4.4 "Failure", §7).
					continue
				}
				return nil, 0, err
			}

			bestCost = total
			bestPath = path
		}

		if bestPath != nil {
			break
		}
	}

	if bestPath == nil {
		return nil, 0, ErrNoTourFound
	}
	return bestPath, bestCost, nil
}

// warmPairwiseCosts ensures every pair of states has a memoized path before
// the DP loop queries the cost matrix, matching
// MazeSolver._generate_paths's upfront all-pairs search. A pair astar
// cannot connect at all is not fatal here (spec.md §4.4 "Failure",
// §7: NoPathFound is "recoverable, implicit") — buildCostMatrix later
// substitutes the unreachablePairCost sentinel for it.
func warmPairwiseCosts(search pathCoster, states []pose.CellState) error {
	for i := 0; i < len(states)-1; i++ {
		for j := i + 1; j < len(states); j++ {
			if _, _, err := search.PathCost(states[i], states[j]); err != nil && !errors.Is(err, astar.ErrNoPath) {
				return err
			}
		}
	}
	return nil
}

// reconstructTour stitches together the shortest paths between consecutive
// visited states in tour order, annotating each obstacle arrival with its
// capture tag.
func reconstructTour(g obstacleLookup, search pathCoster, visitStates []pose.CellState, visited, order []int) ([]pose.CellState, error) {
	built := []pose.CellState{visitStates[visited[order[0]]]}

	for i := 0; i < len(order)-1; i++ {
		from := visitStates[visited[order[i]]]
		to := visitStates[visited[order[i+1]]]

		segment, _, err := search.PathCost(from, to)
		if err != nil {
			return nil, err
		}
		built = append(built, segment[1:]...)

		if to.HasObstacleID {
			obstacle, ok := g.FindObstacleByID(to.ObstacleID)
			if !ok {
				return nil, ErrObstacleNotFound
			}
			built[len(built)-1] = built[len(built)-1].WithObstacleID(to.ObstacleID)
			if err := capture.Annotate(&built[len(built)-1], obstacle); err != nil {
				return nil, err
			}
		}
	}

	return built, nil
}
