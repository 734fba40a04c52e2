package fhir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseError reports an uploaded document that is not a JSON object.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("parsing questionnaire: %v", e.Err)
	}
	return fmt.Sprintf("parsing questionnaire %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes data as a questionnaire. Any JSON object is accepted;
// fields outside the supported subset are ignored. Malformed JSON or a
// top-level value that is not an object yields a *ParseError.
func Parse(source string, data []byte) (*Questionnaire, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("document is empty")}
	}
	if trimmed[0] != '{' {
		if !json.Valid(trimmed) {
			return nil, &ParseError{Source: source, Err: fmt.Errorf("invalid JSON")}
		}
		return nil, &ParseError{Source: source, Err: fmt.Errorf("top-level value must be an object")}
	}

	var q Questionnaire
	if err := json.Unmarshal(trimmed, &q); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return &q, nil
}
