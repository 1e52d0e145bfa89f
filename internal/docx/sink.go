package docx

import (
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/unidoc/unioffice/document"
)

// ContentType is the MIME type of the rendered artifact.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// FallbackFilename is used when the candidate name sanitizes to nothing.
const FallbackFilename = "CV_Anonyme.docx"

// Serialize writes the finished document to w. The document is fully
// serialized into memory first so a failing writer never receives a partial
// file.
func Serialize(doc *document.Document, w io.Writer) error {
	data, err := Bytes(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &SerializeError{Message: "failed to write document", Cause: err}
	}
	return nil
}

// Bytes serializes the document and returns the complete artifact.
func Bytes(doc *document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, &SerializeError{Message: "failed to serialize document", Cause: err}
	}
	return buf.Bytes(), nil
}

// Filename derives the download filename from the (usually anonymized)
// candidate name: keep letters, digits, spaces and underscores, join the
// remaining fields with underscores, and prefix CV_. "O. S." becomes
// CV_O_S.docx. A name that sanitizes away entirely yields FallbackFilename.
func Filename(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' {
			sb.WriteRune(r)
		}
	}

	fields := strings.FieldsFunc(sb.String(), func(r rune) bool { return r == ' ' })
	if len(fields) == 0 {
		return FallbackFilename
	}
	return "CV_" + strings.Join(fields, "_") + ".docx"
}
