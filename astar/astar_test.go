package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vantage-robotics/sentrywalk/astar"
	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/grid"
	"github.com/vantage-robotics/sentrywalk/pose"
)

func TestPathCost_StraightForwardRun(t *testing.T) {
	g := grid.NewDefault()
	s := astar.New(g, direction.DefaultTuning())

	start := pose.New(1, 1, direction.North)
	end := pose.New(1, 5, direction.North)

	path, cost, err := s.PathCost(start, end)
	require.NoError(t, err)
	require.Equal(t, start, path[0])
	require.Equal(t, end, path[len(path)-1])
	require.Equal(t, 4, cost, "four unobstructed forward steps at unit motion cost")
}

func TestPathCost_SameStartAndEndIsZeroCost(t *testing.T) {
	g := grid.NewDefault()
	s := astar.New(g, direction.DefaultTuning())

	p := pose.New(5, 5, direction.East)
	path, cost, err := s.PathCost(p, p)
	require.NoError(t, err)
	require.Equal(t, []pose.CellState{p}, path)
	require.Zero(t, cost)
}

func TestPathCost_IsMemoizedBothDirections(t *testing.T) {
	g := grid.NewDefault()
	s := astar.New(g, direction.DefaultTuning())

	start := pose.New(2, 2, direction.East)
	end := pose.New(6, 2, direction.East)

	path1, cost1, err := s.PathCost(start, end)
	require.NoError(t, err)

	path2, cost2, err := s.PathCost(end, start)
	require.NoError(t, err)

	require.Equal(t, cost1, cost2)
	require.Equal(t, path1[0], path2[len(path2)-1])
	require.Equal(t, path1[len(path1)-1], path2[0])
}

func TestMotion_RecordedDuringSearchAndInvertible(t *testing.T) {
	g := grid.NewDefault()
	s := astar.New(g, direction.DefaultTuning())

	start := pose.New(1, 1, direction.North)
	end := pose.New(1, 5, direction.North)
	path, _, err := s.PathCost(start, end)
	require.NoError(t, err)
	require.True(t, len(path) >= 2)

	m, ok := s.Motion(path[0], path[1])
	require.True(t, ok)
	require.Equal(t, direction.Forward, m)

	inv, ok := s.Motion(path[1], path[0])
	require.True(t, ok)
	require.Equal(t, direction.Reverse, inv)
}

func TestPathCost_ChargesScreenshotInPriorityNotCost(t *testing.T) {
	g := grid.NewDefault()
	s := astar.New(g, direction.DefaultTuning())

	start := pose.New(1, 1, direction.North)
	end := pose.New(1, 5, direction.North)
	end.Penalty = direction.DefaultTuning().ScreenshotCost

	_, cost, err := s.PathCost(start, end)
	require.NoError(t, err)
	require.Equal(t, 4, cost, "viewing penalty must not leak into the memoized edge cost")
}
