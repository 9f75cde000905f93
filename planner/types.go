package planner

import (
	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/grid"
)

// Options configures a single Plan call: arena dimensions, the robot's
// start pose, the obstacle layout to visit, and the cost tuning applied to
// every edge astar and viewpoint weigh.
//
// Zero value is not meaningful; use DefaultOptions and override fields via
// With* options as needed.
type Options struct {
	SizeX, SizeY int
	StartX       int
	StartY       int
	StartHeading direction.Direction
	Obstacles    []ObstacleSpec
	Tuning       direction.Tuning
}

// ObstacleSpec describes one obstacle to place on the grid before planning.
type ObstacleSpec struct {
	X, Y      int
	Direction direction.Direction
	ID        int
}

// Option is a functional option that mutates an in-progress Options value.
type Option func(*Options)

// WithGridSize overrides the arena dimensions (default grid.DefaultSizeX x
// grid.DefaultSizeY).
func WithGridSize(sizeX, sizeY int) Option {
	return func(o *Options) {
		o.SizeX, o.SizeY = sizeX, sizeY
	}
}

// WithStart sets the robot's starting pose.
func WithStart(x, y int, heading direction.Direction) Option {
	return func(o *Options) {
		o.StartX, o.StartY, o.StartHeading = x, y, heading
	}
}

// WithObstacles replaces the obstacle layout to visit, in the given order.
func WithObstacles(obstacles ...ObstacleSpec) Option {
	return func(o *Options) {
		o.Obstacles = obstacles
	}
}

// WithTurnFactor overrides the rotation cost coefficient (spec.md §6).
func WithTurnFactor(factor int) Option {
	return func(o *Options) { o.Tuning.TurnFactor = factor }
}

// WithHalfTurnFactor overrides the lateral half-turn cost coefficient
// (spec.md §6).
func WithHalfTurnFactor(factor int) Option {
	return func(o *Options) { o.Tuning.HalfTurnFactor = factor }
}

// WithReverseFactor overrides the reverse-drive cost coefficient
// (spec.md §6).
func WithReverseFactor(factor int) Option {
	return func(o *Options) { o.Tuning.ReverseFactor = factor }
}

// WithSafeCost overrides the proximity-risk surcharge charged for stepping
// near an obstacle (spec.md §6).
func WithSafeCost(cost int) Option {
	return func(o *Options) { o.Tuning.SafeCost = cost }
}

// WithScreenshotCost overrides the viewing-quality penalty charged for the
// two laterally offset candidate slots (spec.md §6).
func WithScreenshotCost(cost int) Option {
	return func(o *Options) { o.Tuning.ScreenshotCost = cost }
}

// WithTooCloseCost overrides the viewing-quality penalty charged for the
// closest candidate slot; the next-closest straight slot is charged half of
// it (spec.md §6).
func WithTooCloseCost(cost int) Option {
	return func(o *Options) { o.Tuning.TooCloseCost = cost }
}

// DefaultOptions returns an Options value at the planner's default grid
// size, a start pose at (1,1) facing North, no obstacles, and the source's
// default tuning coefficients.
func DefaultOptions() Options {
	return Options{
		SizeX:        grid.DefaultSizeX,
		SizeY:        grid.DefaultSizeY,
		StartX:       1,
		StartY:       1,
		StartHeading: direction.North,
		Tuning:       direction.DefaultTuning(),
	}
}
