package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"smartcv/internal/types"
)

//go:embed cv_record.schema.json
var recordSchema string

// Decode parses raw JSON into a CVRecord. The input may omit any field or use
// null; those are recovered later by Normalize. A structural mismatch (wrong
// type for a field, non-object root) is a MalformedRecordError.
func Decode(data []byte) (*types.CVRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &MalformedRecordError{Message: "empty payload"}
	}

	if err := validateShape(data); err != nil {
		return nil, err
	}

	var rec types.CVRecord
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&rec); err != nil {
		return nil, &MalformedRecordError{Message: "invalid record JSON", Cause: err}
	}

	return &rec, nil
}

// validateShape checks the payload against the embedded record schema.
func validateShape(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(recordSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &MalformedRecordError{Message: "record is not valid JSON", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return &MalformedRecordError{Message: sb.String()}
}
