// Package extract pulls plain text out of uploaded résumé files.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// UnsupportedFormatError indicates an upload with a file type the extractor
// cannot handle.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q (expected .pdf, .doc or .docx)", e.Extension)
}

// ExtractionError represents a failure to read text from a supported file.
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Text extracts the plain text of a résumé file, dispatching on the file
// extension. Blank output is an error: a résumé with no extractable text
// cannot be parsed downstream.
func Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = fromPDF(path)
	case ".docx", ".doc":
		text, err = fromDOCX(path)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
	if err != nil {
		return "", &ExtractionError{Path: path, Cause: err}
	}

	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Path: path, Cause: fmt.Errorf("document contains no extractable text")}
	}
	return text, nil
}

// Supported reports whether the extractor understands the file's extension.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}
