// Package direction is documented in direction.go.
package direction
