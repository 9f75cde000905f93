// Package capture labels an arrival pose with which side of its facing
// obstacle the robot's camera actually sees: centered (C), to the left (L),
// or to the right (R) of the obstacle's image, per spec.md §4.6.
package capture

import (
	"errors"
	"fmt"

	"github.com/vantage-robotics/sentrywalk/direction"
	"github.com/vantage-robotics/sentrywalk/pose"
)

// ErrInvalidDirection indicates RelativePosition was asked to classify a
// pose whose heading is not one of the four cardinal directions.
var ErrInvalidDirection = errors.New("capture: pose heading must be a cardinal direction")

// RelativePosition classifies where obstacle sits relative to a robot
// standing at `at`, given the robot's heading. Ported verbatim from
// MazeSolver._get_capture_relative_position.
//
// Complexity: O(1).
func RelativePosition(at pose.CellState, obstacle pose.Obstacle) (string, error) {
	switch at.Direction {
	case direction.North:
		switch {
		case obstacle.X == at.X && obstacle.Y > at.Y:
			return "C", nil
		case obstacle.X < at.X:
			return "L", nil
		default:
			return "R", nil
		}
	case direction.South:
		switch {
		case obstacle.X == at.X && obstacle.Y < at.Y:
			return "C", nil
		case obstacle.X < at.X:
			return "R", nil
		default:
			return "L", nil
		}
	case direction.East:
		switch {
		case obstacle.Y == at.Y && obstacle.X > at.X:
			return "C", nil
		case obstacle.Y < at.Y:
			return "R", nil
		default:
			return "L", nil
		}
	case direction.West:
		switch {
		case obstacle.Y == at.Y && obstacle.X < at.X:
			return "C", nil
		case obstacle.Y < at.Y:
			return "L", nil
		default:
			return "R", nil
		}
	default:
		return "", ErrInvalidDirection
	}
}

// Tag formats the screenshot tag recorded on an arrival pose: the
// obstacle's id followed by its relative-position letter.
func Tag(obstacleID int, position string) string {
	return fmt.Sprintf("%d_%s", obstacleID, position)
}

// Annotate computes the relative position of obstacle as seen from at and
// appends the resulting tag to at's Screenshots.
func Annotate(at *pose.CellState, obstacle pose.Obstacle) error {
	position, err := RelativePosition(*at, obstacle)
	if err != nil {
		return err
	}
	at.AddScreenshot(Tag(obstacle.ID, position))
	return nil
}
