// Package astar is documented in types.go and astar.go.
package astar
