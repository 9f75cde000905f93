package tour

import "sort"

// visitOptions returns every n-bit subset of obstacle indices, encoded as a
// bitmask, ordered by descending popcount (most obstacles visited first)
// with ties broken by ascending bitmask value. This mirrors
// MazeSolver._get_visit_options: Python's sort is stable, so subsets of
// equal popcount retain the ascending order they were generated in.
//
// Complexity: O(2^n log(2^n)).
func visitOptions(n int) []uint {
	total := uint(1) << uint(n)
	opts := make([]uint, total)
	for i := uint(0); i < total; i++ {
		opts[i] = i
	}
	sort.SliceStable(opts, func(i, j int) bool {
		return popcount(opts[i]) > popcount(opts[j])
	})
	return opts
}

func popcount(v uint) int {
	count := 0
	for v != 0 {
		count += int(v & 1)
		v >>= 1
	}
	return count
}

// bitSet reports whether bit i is set in mask.
func bitSet(mask uint, i int) bool {
	return mask&(1<<uint(i)) != 0
}
