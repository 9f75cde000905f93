package tour

import "errors"

// ErrSizeTooLarge signals that a subset's selected-obstacle count plus the
// start vertex exceeds MaxExactN, the same pragmatic resource guard the
// teacher library's Held-Karp solver applies.
var ErrSizeTooLarge = errors.New("tour: too many selected obstacles for exact solving")

// ErrNoObstacles indicates Solve was asked to plan a tour with zero
// candidate obstacle groups; there is nothing to visit.
var ErrNoObstacles = errors.New("tour: no obstacle candidates supplied")

// ErrObstacleNotFound indicates a visited view pose's obstacle id has no
// matching obstacle on the grid, which should never happen for candidates
// produced by the viewpoint package.
var ErrObstacleNotFound = errors.New("tour: obstacle id not found on grid")

// ErrNoTourFound indicates every subset of obstacles, under every
// candidate-slot assignment, failed to produce a feasible open tour. Solve
// always tries the empty subset last, and its tour (the start pose alone)
// is always feasible, so when no viewing candidate can be reached Solve
// returns that one-pose path at cost 0 rather than this error.
var ErrNoTourFound = errors.New("tour: no feasible tour found")
