package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/grid"
	"github.com/vantage-robotics/sentrywalk/pose"
)

func TestGrid_InBounds(t *testing.T) {
	g := grid.NewDefault()
	require.True(t, g.InBounds(1, 1))
	require.True(t, g.InBounds(18, 18))
	require.False(t, g.InBounds(0, 1))
	require.False(t, g.InBounds(19, 1))
	require.False(t, g.InBounds(1, 19))
}

func TestGrid_AddObstacle_DedupsIgnoringID(t *testing.T) {
	g := grid.NewDefault()
	g.AddObstacle(pose.Obstacle{X: 5, Y: 5, Direction: direction.North, ID: 1})
	g.AddObstacle(pose.Obstacle{X: 5, Y: 5, Direction: direction.North, ID: 2})

	require.Len(t, g.Obstacles(), 1)
}

func TestGrid_Reachable_RejectsNearObstacle(t *testing.T) {
	g := grid.NewDefault()
	g.AddObstacle(pose.Obstacle{X: 10, Y: 10, Direction: direction.North, ID: 1})

	require.False(t, g.Reachable(10, 11), "adjacent to obstacle")
	require.False(t, g.Reachable(11, 11), "diagonal, chebyshev < 2")
	require.True(t, g.Reachable(10, 13))
}

func TestGrid_Reachable_RejectsBorder(t *testing.T) {
	g := grid.NewDefault()
	require.False(t, g.Reachable(0, 5))
	require.False(t, g.Reachable(19, 5))
}

func TestGrid_HalfTurnReachable_BlocksWithinPaddedStrip(t *testing.T) {
	g := grid.NewDefault()
	g.AddObstacle(pose.Obstacle{X: 5, Y: 8, Direction: direction.North, ID: 1})

	// Longer axis is x (5 units): pad y by 2; obstacle y=8 within [6-2,6+2].
	require.False(t, g.HalfTurnReachable(2, 6, 7, 6))
	require.True(t, g.HalfTurnReachable(2, 2, 7, 2))
}

func TestGrid_TurnReachable_RejectsCloseObstacle(t *testing.T) {
	g := grid.NewDefault()
	g.AddObstacle(pose.Obstacle{X: 6, Y: 4, Direction: direction.North, ID: 1})

	require.False(t, g.TurnReachable(1, 1, 1+direction.Turns[0], 1+direction.Turns[1], direction.North))
}

func TestGrid_TurnReachable_AcceptsClearPath(t *testing.T) {
	g := grid.NewDefault()

	require.True(t, g.TurnReachable(1, 1, 1+direction.Turns[0], 1+direction.Turns[1], direction.North))
}

func TestGrid_FindObstacleByID(t *testing.T) {
	g := grid.NewDefault()
	g.AddObstacle(pose.Obstacle{X: 5, Y: 5, Direction: direction.North, ID: 7})

	got, ok := g.FindObstacleByID(7)
	require.True(t, ok)
	require.Equal(t, 5, got.X)

	_, ok = g.FindObstacleByID(99)
	require.False(t, ok)
}
