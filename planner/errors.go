package planner

import "errors"

// ErrNoObstacles indicates Plan was called with an empty obstacle layout,
// so there is nothing to photograph and no tour to solve.
var ErrNoObstacles = errors.New("planner: no obstacles to visit")
