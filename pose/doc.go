// Package pose is documented in types.go.
package pose
