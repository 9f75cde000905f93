// Package grid is documented in types.go and clearance.go; this file exists
// only to host the package-level overview, matching gridgraph's doc.go/
// types.go split in the teacher library.
package grid
