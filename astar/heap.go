package astar

import "github.com/vantage-robotics/sentrywalk/direction"

// item is one entry in the search frontier: a candidate state and the
// priority (f = g + h, plus any screenshot cost at the goal) it was pushed
// with. Stale entries (a state popped after it was already visited under a
// better priority) are simply discarded by the caller; this is the lazy
// decrease-key discipline dijkstra.go also uses.
type item struct {
	priority int
	x, y     int
	heading  direction.Direction
}

// frontier is a min-heap of *item ordered first by priority, then by x,
// then by y, then by heading — replicating Python's tuple comparison over
// (priority, x, y, direction), which the search this package is grounded on
// relies on for deterministic tie-breaking (spec.md §5).
type frontier []*item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.x != b.x {
		return a.x < b.x
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return a.heading < b.heading
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*item)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}
