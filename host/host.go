// Package host provides the console, clock, random and platform services
// used by the corelang cpu, and line sources for loading scripts.
package host

import (
	"io"
)

// Host bundles a Console and a System.
type Host struct {
	*Console
	*System
}

// New creates a host reading from input and writing to output.
func New(input io.Reader, output io.Writer) *Host {
	return &Host{
		Console: &Console{Input: input, Output: output},
		System:  NewSystem(),
	}
}
