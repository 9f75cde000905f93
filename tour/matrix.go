package tour

import (
	"errors"

	"github.com/vantage-robotics/sentrywalk/astar"
	"github.com/vantage-robotics/sentrywalk/pose"
)

// pathCoster is the subset of astar.Search's API tour needs: the cached
// cost (and path) between two poses. Declared locally so tour depends on
// astar only for its ErrNoPath sentinel, not on the concrete Search type,
// matching tsp's dispatcher-over-matrix.Matrix separation between the exact
// DP and its callers.
type pathCoster interface {
	PathCost(start, end pose.CellState) ([]pose.CellState, int, error)
}

// unreachablePairCost is the sentinel distance recorded for a pair of
// states astar could not connect at all (spec.md §4.4 "Failure", §7:
// NoPathFound is "recoverable, implicit"). Matches the source's own
// get_optimal_path, which defaults an absent cost_table entry to 1e9
// rather than failing the whole solve — a missing edge should just make
// tours that need it uncompetitive, not abort the planner.
const unreachablePairCost = 1e9

// buildCostMatrix constructs the symmetric (1+len(visited)) x (1+len(visited))
// matrix of pairwise path costs between visitStates[visited[i]], with
// column 0 forced to zero so the Held-Karp DP solves an open tour rather
// than a closed cycle (see heldKarpOpenTour). A pair astar cannot connect
// gets unreachablePairCost rather than aborting the build.
//
// Complexity: O(v^2) cost lookups, each O(1) once astar's memo is warm.
func buildCostMatrix(search pathCoster, visitStates []pose.CellState, visited []int) ([][]float64, error) {
	n := len(visited)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			_, cost, err := search.PathCost(visitStates[visited[i]], visitStates[visited[j]])
			if errors.Is(err, astar.ErrNoPath) {
				dist[i][j] = unreachablePairCost
				dist[j][i] = unreachablePairCost
				continue
			}
			if err != nil {
				return nil, err
			}
			dist[i][j] = float64(cost)
			dist[j][i] = float64(cost)
		}
	}

	for i := 0; i < n; i++ {
		dist[i][0] = 0
	}

	return dist, nil
}
