package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/planner"
	"github.com/vantage-robotics/sentrywalk/pose"
)

func TestPlan_NoObstaclesReturnsError(t *testing.T) {
	_, err := planner.Plan()
	require.ErrorIs(t, err, planner.ErrNoObstacles)
}

func TestPlan_SingleObstacleProducesAnnotatedPath(t *testing.T) {
	result, err := planner.Plan(
		planner.WithStart(1, 1, direction.North),
		planner.WithObstacles(planner.ObstacleSpec{X: 10, Y: 10, Direction: direction.North, ID: 1}),
	)
	require.NoError(t, err)
	require.NotEmpty(t, result.Path)
	require.Equal(t, pose.New(1, 1, direction.North), result.Path[0])
	require.Len(t, result.ObstacleTags, 1)
	require.Contains(t, result.ObstacleTags[0], "1_")

	captures := 0
	for _, m := range result.Motions {
		if m == direction.Capture {
			captures++
		}
	}
	require.Equal(t, 1, captures)
}

func TestPlan_HigherSafeCostNeverLowersCost(t *testing.T) {
	obstacle := planner.ObstacleSpec{X: 10, Y: 10, Direction: direction.East, ID: 1}

	cheap, err := planner.Plan(
		planner.WithObstacles(obstacle),
		planner.WithSafeCost(0),
	)
	require.NoError(t, err)

	expensive, err := planner.Plan(
		planner.WithObstacles(obstacle),
		planner.WithSafeCost(10_000),
	)
	require.NoError(t, err)

	require.LessOrEqual(t, cheap.Cost, expensive.Cost)
}

func TestPlan_IsDeterministicAcrossRepeatedCalls(t *testing.T) {
	opts := []planner.Option{
		planner.WithStart(1, 1, direction.North),
		planner.WithObstacles(
			planner.ObstacleSpec{X: 6, Y: 6, Direction: direction.South, ID: 1},
			planner.ObstacleSpec{X: 14, Y: 14, Direction: direction.West, ID: 2},
		),
	}

	first, err := planner.Plan(opts...)
	require.NoError(t, err)

	second, err := planner.Plan(opts...)
	require.NoError(t, err)

	require.Equal(t, first.Cost, second.Cost)
	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Motions, second.Motions)
}
