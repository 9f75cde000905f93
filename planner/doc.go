// Package planner is the top-level entry point: it wires grid, viewpoint,
// astar, tour, capture, and motion into the single call a caller makes to
// go from an obstacle layout to an executable drive plan (spec.md §4.5).
//
// Configuration follows the functional-options pattern used throughout the
// module (dijkstra.Option, matrix.Option, tsp.Options): every cost
// coefficient spec.md §6 calls a tuning knob is overridable per call via a
// planner.Option rather than baked into a build-time constant.
package planner
