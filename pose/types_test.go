package pose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/pose"
)

func TestCellState_EqualityIgnoresMetadata(t *testing.T) {
	a := pose.New(3, 4, direction.North)
	a.Penalty = 50
	a.AddScreenshot("1_C")

	b := pose.New(3, 4, direction.North)

	require.True(t, a.Equal(b), "equality must ignore Penalty and Screenshots")
	require.Equal(t, a.Key(), b.Key())
}

func TestCellState_InequalityOnHeading(t *testing.T) {
	a := pose.New(3, 4, direction.North)
	b := pose.New(3, 4, direction.South)

	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Key(), b.Key())
}

func TestObstacle_EqualityIgnoresID(t *testing.T) {
	a := pose.Obstacle{X: 1, Y: 2, Direction: direction.East, ID: 1}
	b := pose.Obstacle{X: 1, Y: 2, Direction: direction.East, ID: 99}

	require.True(t, a.Equal(b))
}

func TestCellState_AddScreenshotAppends(t *testing.T) {
	c := pose.New(0, 0, direction.West)
	c.AddScreenshot("1_L")
	c.AddScreenshot("2_R")

	require.Equal(t, []string{"1_L", "2_R"}, c.Screenshots)
}
