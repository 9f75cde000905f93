package planner

import (
	"github.com/vantage-robotics/sentrywalk/astar"
	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/grid"
	"github.com/vantage-robotics/sentrywalk/motion"
	"github.com/vantage-robotics/sentrywalk/pose"
	"github.com/vantage-robotics/sentrywalk/tour"
	"github.com/vantage-robotics/sentrywalk/viewpoint"
)

// Result is the complete output of a Plan call: the annotated pose path, its
// total cost, and the drive-primitive sequence that executes it.
type Result struct {
	// Path is the full sequence of poses from the start through every
	// visited obstacle's chosen viewing pose, in visiting order.
	Path []pose.CellState

	// Cost is the tour's total motion cost plus viewpoint penalty
	// (spec.md §4.5, §9).
	Cost int

	// Motions is the drive-primitive sequence that executes Path,
	// interleaved with direction.Capture markers at each photo.
	Motions []direction.Motion

	// ObstacleTags is the capture tag recorded at each direction.Capture
	// marker in Motions, in the same order.
	ObstacleTags []string
}

// Plan builds a grid from opts' obstacle layout, generates candidate
// viewing poses for every obstacle, solves the visit-order/viewpoint-choice
// tour from opts' start pose, and reconstructs the resulting drive plan.
//
// Plan is a pure, synchronous, single-call function: it performs no I/O and
// depends on no global or time-varying state, so repeated calls with
// identical opts always return an identical Result (spec.md §5).
//
// Complexity: dominated by tour.Solve's Held-Karp re-solve over the largest
// feasible obstacle subset; see tour.Solve's doc comment.
func Plan(options ...Option) (Result, error) {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	if len(opts.Obstacles) == 0 {
		return Result{}, ErrNoObstacles
	}

	g := grid.New(opts.SizeX, opts.SizeY)
	for _, o := range opts.Obstacles {
		g.AddObstacle(pose.Obstacle{X: o.X, Y: o.Y, Direction: o.Direction, ID: o.ID})
	}

	candidates := viewpoint.Candidates(g, opts.Tuning)

	search := astar.New(g, opts.Tuning)
	start := pose.New(opts.StartX, opts.StartY, opts.StartHeading)

	path, cost, err := tour.Solve(g, search, start, candidates)
	if err != nil {
		return Result{}, err
	}

	motions, tags, err := motion.Reconstruct(search, path)
	if err != nil {
		return Result{}, err
	}

	return Result{Path: path, Cost: cost, Motions: motions, ObstacleTags: tags}, nil
}
