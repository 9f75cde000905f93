// Package capture is documented in capture.go.
package capture
