package tour

import (
	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/pose"
)

// candidateCombinations enumerates the cartesian product of candidate-slot
// indices across groups, one index per group, in ascending per-group order.
// Ported from MazeSolver._generate_combinations; the recursion depth is
// capped at direction.Iterations purely as a safety valve inherited from
// the source this planner was distilled from; for any realistic obstacle
// count (depth == len(groups)) it is never reached.
//
// Complexity: O(prod(len(groups[i]))).
func candidateCombinations(groups [][]pose.CellState) [][]int {
	var result [][]int
	current := make([]int, 0, len(groups))
	generateCombinations(groups, 0, current, &result, direction.Iterations)
	return result
}

func generateCombinations(groups [][]pose.CellState, index int, current []int, result *[][]int, itersLeft int) {
	if index == len(groups) {
		leaf := make([]int, len(current))
		copy(leaf, current)
		*result = append(*result, leaf)
		return
	}
	if itersLeft == 0 {
		return
	}
	itersLeft--

	for i := range groups[index] {
		current = append(current, i)
		generateCombinations(groups, index+1, current, result, itersLeft)
		current = current[:len(current)-1]
	}
}
