// Package sentrywalk plans camera-equipped ground-robot routes across a
// bordered grid arena: given a set of oriented obstacles to photograph, it
// picks the best reachable viewing pose for each one, the best subset and
// order to visit them in, and reconstructs the resulting drive plan as a
// sequence of kinematic primitives.
//
// Pure Go, zero runtime dependencies beyond testify in tests — one
// synchronous call, no I/O, no global state, no randomness.
//
// Under the hood, everything is organized under flat subpackages:
//
//	direction/ — headings, rotation/turn geometry, motion primitives, tuning
//	pose/      — CellState (robot pose) and Obstacle value types
//	grid/      — obstacle set and reachability/clearance predicates
//	viewpoint/ — candidate viewing-pose generation per obstacle
//	astar/     — pose-space shortest-path search with memoized results
//	tour/      — viewpoint selection and visiting-order optimization
//	capture/   — per-photo relative-position annotation
//	motion/    — pose-path to drive-primitive reconstruction
//	planner/   — top-level orchestration (Plan)
//
//	go get github.com/vantage-robotics/sentrywalk
package sentrywalk
