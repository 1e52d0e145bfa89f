// Package schema normalizes and validates CV records before rendering.
package schema

import "fmt"

// MalformedRecordError represents a structurally invalid record that cannot
// be recovered by defaulting, such as a list field given as a scalar.
type MalformedRecordError struct {
	Message string
	Cause   error
}

func (e *MalformedRecordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed record: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed record: %s", e.Message)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Cause
}
