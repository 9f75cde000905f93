// Package grid owns the obstacle set and the bounds/clearance predicates
// that gate every candidate move and viewing pose: straight reachability,
// half-turn reachability, and turn reachability (spec.md §4.2).
//
// Design mirrors gridgraph.GridGraph: a container (the obstacle set is
// grown only through AddObstacle, matching the source's add-only
// Grid.add_obstacle, and emptied only through Reset) holding
// its dimensions and a dedup'd slice of domain objects, with small pure
// predicate methods hung off it.
package grid

import "github.com/vantage-robotics/sentrywalk/pose"

// DefaultSizeX and DefaultSizeY are the planner's default grid dimensions
// (spec.md §3).
const (
	DefaultSizeX = 20
	DefaultSizeY = 20
)

// Grid holds the arena dimensions and the obstacle set. Valid interior
// coordinates satisfy 1 <= x <= SizeX-2, 1 <= y <= SizeY-2 (a one-cell
// border is always forbidden).
type Grid struct {
	SizeX, SizeY int
	obstacles    []pose.Obstacle
}

// New constructs an empty Grid of the given dimensions.
func New(sizeX, sizeY int) *Grid {
	return &Grid{SizeX: sizeX, SizeY: sizeY}
}

// NewDefault constructs a Grid at the planner's default 20x20 dimensions.
func NewDefault() *Grid {
	return New(DefaultSizeX, DefaultSizeY)
}

// AddObstacle inserts o unless an obstacle already occupies the same
// (x,y,direction) (id is ignored for the dedup comparison, per spec.md §3).
//
// Complexity: O(n) in the current obstacle count.
func (g *Grid) AddObstacle(o pose.Obstacle) {
	for _, existing := range g.obstacles {
		if existing.Equal(o) {
			return
		}
	}
	g.obstacles = append(g.obstacles, o)
}

// Obstacles returns the grid's obstacle set. Callers must not mutate the
// returned slice's elements in place to add/remove obstacles; use
// AddObstacle and Reset instead.
func (g *Grid) Obstacles() []pose.Obstacle {
	return g.obstacles
}

// Reset clears every obstacle from the grid.
func (g *Grid) Reset() {
	g.obstacles = nil
}

// FindObstacleByID returns the obstacle with the given ID and true, or the
// zero Obstacle and false if none matches.
//
// Complexity: O(n).
func (g *Grid) FindObstacleByID(id int) (pose.Obstacle, bool) {
	for _, o := range g.obstacles {
		if o.ID == id {
			return o, true
		}
	}
	return pose.Obstacle{}, false
}

// InBounds reports whether (x,y) is a valid interior coordinate: neither on
// nor outside the one-cell forbidden border.
//
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 1 && x <= g.SizeX-2 && y >= 1 && y <= g.SizeY-2
}

// InBoundsRaw reports whether (x,y) lies inside the full [0,SizeX)x[0,SizeY)
// rectangle, used only by the viewing-pose generator's off-grid filter
// (spec.md §4.3 checks raw grid membership before the stricter interior
// Reachable test runs).
//
// Complexity: O(1).
func (g *Grid) InBoundsRaw(x, y int) bool {
	return x >= 0 && x < g.SizeX && y >= 0 && y < g.SizeY
}
