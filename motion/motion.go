// Package motion converts a reconstructed pose path into the sequence of
// drive primitives and capture markers the robot actually executes,
// per spec.md §4.7.
package motion

import (
	"errors"
	"fmt"

	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/pose"
)

// ErrReconstructionMiss indicates consecutive poses in a planned path have
// no recorded edge in either direction in the motion lookup, which should
// never happen for a path produced by astar.Search.PathCost.
var ErrReconstructionMiss = errors.New("motion: no recorded motion between consecutive poses")

// Lookup resolves the single-step motion between two adjacent poses,
// trying the edge in either direction (astar.Search satisfies this).
type Lookup interface {
	Motion(from, to pose.CellState) (direction.Motion, bool)
}

// Reconstruct walks consecutive pairs of path and returns the drive
// primitive for every step. Immediately after the step into a pose that
// carries screenshot tags, it emits one direction.Capture marker per tag
// and appends that tag to obstacleTags.
//
// Complexity: O(len(path)) lookups, each O(1).
func Reconstruct(lookup Lookup, path []pose.CellState) (motions []direction.Motion, obstacleTags []string, err error) {
	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]

		m, ok := lookup.Motion(from, to)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %v -> %v", ErrReconstructionMiss, from.Key(), to.Key())
		}
		motions = append(motions, m)

		for _, tag := range to.Screenshots {
			motions = append(motions, direction.Capture)
			obstacleTags = append(obstacleTags, tag)
		}
	}
	return motions, obstacleTags, nil
}
