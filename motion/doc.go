// Package motion is documented in motion.go.
package motion
