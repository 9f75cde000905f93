// Package pose defines the robot's CellState and the grid's Obstacle, the
// two value types every other package in the planner is built around.
//
// Both types key their equality on position-plus-direction only; CellState's
// Penalty and Screenshots fields are metadata that must never participate in
// equality, hashing, or map-key derivation (spec.md §9) — exactly as
// core.Vertex's Metadata in the teacher library is explicitly documented as
// "not deep-copied by Clone" and excluded from identity.
package pose

import "github.com/vantage-robotics/sentrywalk/direction"

// CellState is a robot pose: a grid cell plus a facing direction, with
// optional viewing-quality metadata attached by the viewpoint package and
// capture annotations attached by the capture package.
//
// Equality (Equal, Key) considers only X, Y, Direction. Penalty and
// Screenshots are carried along for bookkeeping and must not affect how
// two CellStates compare or hash.
type CellState struct {
	X, Y      int
	Direction direction.Direction

	// Penalty is the viewpoint-quality cost charged when this pose is used
	// as an arrival/viewing position (0 for ordinary waypoints).
	Penalty int

	// ObstacleID and HasObstacleID identify which obstacle this pose is a
	// candidate viewing position for. Unused on ordinary path waypoints.
	ObstacleID    int
	HasObstacleID bool

	// Screenshots is an append-only list of "{obstacleID}_{C|L|R}" tags
	// recorded by the capture package when this pose is an arrival pose.
	Screenshots []string
}

// New constructs a CellState with zero metadata.
func New(x, y int, d direction.Direction) CellState {
	return CellState{X: x, Y: y, Direction: d}
}

// Key returns the identity tuple used for map lookups in astar's memo
// tables. Never include Penalty or Screenshots here.
func (c CellState) Key() Key {
	return Key{X: c.X, Y: c.Y, Direction: c.Direction}
}

// Equal reports whether c and other share the same position and heading,
// ignoring Penalty and Screenshots.
func (c CellState) Equal(other CellState) bool {
	return c.X == other.X && c.Y == other.Y && c.Direction == other.Direction
}

// AddScreenshot appends a capture tag to c's Screenshots list.
func (c *CellState) AddScreenshot(tag string) {
	c.Screenshots = append(c.Screenshots, tag)
}

// WithObstacleID returns a copy of c tagged as a viewing candidate for the
// given obstacle id.
func (c CellState) WithObstacleID(id int) CellState {
	c.ObstacleID = id
	c.HasObstacleID = true
	return c
}

// Key is the hashable (x,y,direction) identity of a CellState, suitable as
// a map key in astar's path_table/cost_table/motion_table.
type Key struct {
	X, Y      int
	Direction direction.Direction
}

// EdgeKey is the hashable identity of a directed pair of poses, used as the
// motion_table key (spec.md §3: stored under exactly one of the two
// directed keys).
type EdgeKey struct {
	From, To Key
}

// Obstacle is a facing, identified object placed on the grid. Equality for
// Grid's insert-dedup considers only (X, Y, Direction); ID is ignored, per
// spec.md §3.
type Obstacle struct {
	X, Y      int
	Direction direction.Direction
	ID        int
}

// Equal reports whether o and other occupy the same cell with the same
// facing, ignoring ID.
func (o Obstacle) Equal(other Obstacle) bool {
	return o.X == other.X && o.Y == other.Y && o.Direction == other.Direction
}
