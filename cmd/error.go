package cmd

import (
	"errors"
)

// MultiError collects the failures of a script run, one per failed line.
type MultiError []error

// Error lists every failure on its own line.
func (m MultiError) Error() string {
	return errors.Join(m...).Error()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m MultiError) Unwrap() []error {
	return m
}
