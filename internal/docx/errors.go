// Package docx renders CV records into styled Word documents.
package docx

import "fmt"

// ComposeError represents a fatal error while building the document object.
// No partial output is ever produced after one of these.
type ComposeError struct {
	Message string
	Cause   error
}

func (e *ComposeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compose error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compose error: %s", e.Message)
}

func (e *ComposeError) Unwrap() error {
	return e.Cause
}

// SerializeError represents a failure while writing the finished document to
// its output stream.
type SerializeError struct {
	Message string
	Cause   error
}

func (e *SerializeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("serialize error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("serialize error: %s", e.Message)
}

func (e *SerializeError) Unwrap() error {
	return e.Cause
}

// AssetLoadWarning reports a photo or logo that could not be loaded. It is
// logged and the render continues without the image; it is never fatal.
type AssetLoadWarning struct {
	Path  string
	Cause error
}

func (e *AssetLoadWarning) Error() string {
	return fmt.Sprintf("asset load warning: %s: %v", e.Path, e.Cause)
}

func (e *AssetLoadWarning) Unwrap() error {
	return e.Cause
}
