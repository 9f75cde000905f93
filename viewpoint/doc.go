// Package viewpoint is documented in viewpoint.go.
package viewpoint
