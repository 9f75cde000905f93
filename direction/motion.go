package direction

// Motion is a drive primitive the robot can execute between two poses that
// share the kinematic relationship the primitive name implies (forward,
// reverse, quarter-turn, or lateral half-turn offset). Values are fixed by
// spec.md §3 so that value + Inverse(value) == 10 for every drive primitive;
// Capture is its own inverse and sits far outside that range (1000) so it
// can never collide with a drive primitive during arithmetic.
type Motion int

// The full primitive set. Values are load-bearing: motion_table entries are
// read back by value and inverted via 10-m, so these must not be
// renumbered.
const (
	ForwardLeftTurn   Motion = 0
	ForwardOffsetLeft Motion = 1
	Forward           Motion = 2
	ForwardOffsetRight Motion = 3
	ForwardRightTurn  Motion = 4

	ReverseRightTurn   Motion = 6
	ReverseOffsetLeft  Motion = 7
	Reverse            Motion = 8
	ReverseOffsetRight Motion = 9
	ReverseLeftTurn    Motion = 10

	// Capture is a zero-distance marker meaning "take a photo here"; it is
	// interleaved into the motion list by the motion package, never
	// produced by astar's neighbor enumeration.
	Capture Motion = 1000
)

// String names the primitive for error messages and test output.
func (m Motion) String() string {
	switch m {
	case ForwardLeftTurn:
		return "FORWARD_LEFT_TURN"
	case ForwardOffsetLeft:
		return "FORWARD_OFFSET_LEFT"
	case Forward:
		return "FORWARD"
	case ForwardOffsetRight:
		return "FORWARD_OFFSET_RIGHT"
	case ForwardRightTurn:
		return "FORWARD_RIGHT_TURN"
	case ReverseRightTurn:
		return "REVERSE_RIGHT_TURN"
	case ReverseOffsetLeft:
		return "REVERSE_OFFSET_LEFT"
	case Reverse:
		return "REVERSE"
	case ReverseOffsetRight:
		return "REVERSE_OFFSET_RIGHT"
	case ReverseLeftTurn:
		return "REVERSE_LEFT_TURN"
	case Capture:
		return "CAPTURE"
	default:
		return "INVALID"
	}
}

// Inverse returns the opposite primitive: for any drive primitive m,
// Inverse(m) == 10 - m; Capture inverts to itself. ok is false for any
// value outside the closed enum — callers (astar.Search.Motion) must check
// it rather than trust arithmetic on untrusted table data.
//
// Complexity: O(1).
func (m Motion) Inverse() (Motion, bool) {
	if m == Capture {
		return Capture, true
	}
	opp := Motion(10 - int(m))
	if !opp.valid() {
		return 0, false
	}
	return opp, true
}

// valid reports whether m is one of the eleven defined Motion values.
func (m Motion) valid() bool {
	switch m {
	case ForwardLeftTurn, ForwardOffsetLeft, Forward, ForwardOffsetRight, ForwardRightTurn,
		ReverseRightTurn, ReverseOffsetLeft, Reverse, ReverseOffsetRight, ReverseLeftTurn,
		Capture:
		return true
	default:
		return false
	}
}

// ReverseCost returns 1 if m drives the robot backward, 0 otherwise.
// Capture has no meaningful reverse cost; callers must not ask it (it is
// never part of a drive edge), so ReverseCost returns 0 for it rather than
// erroring — this file's callers (astar's edge-cost composition) never
// invoke it on Capture.
func (m Motion) ReverseCost() int {
	switch m {
	case ReverseRightTurn, ReverseOffsetLeft, Reverse, ReverseOffsetRight, ReverseLeftTurn:
		return 1
	default:
		return 0
	}
}

// HalfTurnCost returns 1 if m is any lateral OFFSET primitive, 0 otherwise.
func (m Motion) HalfTurnCost() int {
	switch m {
	case ForwardOffsetLeft, ForwardOffsetRight, ReverseOffsetLeft, ReverseOffsetRight:
		return 1
	default:
		return 0
	}
}

// IsCombinable reports whether m can be merged with a run of identical
// adjacent primitives by a downstream command formatter. Only plain
// Forward/Reverse are combinable; turns and offsets were detuned out of
// combinability once the physical robot needed per-segment correction
// (spec.md carries this as a behavioral constant, not a design choice to
// revisit here).
func (m Motion) IsCombinable() bool {
	return m == Forward || m == Reverse
}

// Fixed kinematic and search-space constants. Unlike Tuning's cost
// coefficients, these encode the robot's physical geometry and the DP
// enumeration's resource guard, not a cost tradeoff — spec.md §6 calls out
// only the *cost* constants as "tuning changes planner output" knobs, so
// these stay compile-time (see DESIGN.md).
const (
	TurnPadding    = 2
	MidTurnPadding = 2
	TurnRadius     = 1
	ExpandedCell   = 1
	Iterations     = 2000
)

// Tuning bundles every cost coefficient spec.md §6 identifies as a tuning
// knob: changing any of these changes planner output without changing its
// kinematic feasibility. Every package that weighs a cost (grid's callers
// have none of these; astar and viewpoint do) takes a Tuning value
// explicitly rather than reading package-level constants, so planner.Option
// can override them per Plan call (spec.md §6, "constants as interface").
type Tuning struct {
	TurnFactor     int
	HalfTurnFactor int
	ReverseFactor  int
	SafeCost       int
	ScreenshotCost int
	TooCloseCost   int
}

// DefaultTuning returns the coefficients the source this planner was
// distilled from hardcodes in tools/consts.py.
func DefaultTuning() Tuning {
	return Tuning{
		TurnFactor:     6,
		HalfTurnFactor: 10,
		ReverseFactor:  3,
		SafeCost:       1000,
		ScreenshotCost: 100,
		TooCloseCost:   50,
	}
}

// Turns holds the (big, small) leg lengths of a quarter-turn primitive:
// TURNS = [5*TURN_RADIUS, 3*TURN_RADIUS].
var Turns = [2]int{5 * TurnRadius, 3 * TurnRadius}

// HalfTurns holds the (big, small) leg lengths of a lateral half-turn
// offset: HALF_TURNS = [4*TURN_RADIUS, 1*TURN_RADIUS].
var HalfTurns = [2]int{4 * TurnRadius, 1 * TurnRadius}
