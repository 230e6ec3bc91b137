// Package schema validates the engine's JSON result shape before it
// crosses a process boundary (HTTP response, structured CLI output).
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resultSchema describes the shape of the engine's {content, template,
// beauty} result, as returned by internal/toc.Result.
const resultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["content", "template", "beauty"],
  "properties": {
    "content": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "cursor"],
        "properties": {
          "title":  {"type": "string"},
          "cursor": {"type": "integer", "minimum": 0},
          "number": {"type": "integer"}
        }
      }
    },
    "template": {"type": "string"},
    "beauty":   {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

var compiled *jsonschema.Schema

func compile() (*jsonschema.Schema, error) {
	if compiled != nil {
		return compiled, nil
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("result.json", bytes.NewReader([]byte(resultSchema))); err != nil {
		return nil, fmt.Errorf("failed to load result schema: %w", err)
	}
	s, err := compiler.Compile("result.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile result schema: %w", err)
	}
	compiled = s
	return s, nil
}

// ValidateResult checks an already-marshaled engine result against the
// canonical result schema.
func ValidateResult(resultJSON []byte) error {
	s, err := compile()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(resultJSON, &doc); err != nil {
		return fmt.Errorf("failed to decode result for validation: %w", err)
	}

	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("result does not match schema: %w", err)
	}
	return nil
}
