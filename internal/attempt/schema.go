package attempt

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// attemptSchema validates incoming attempt documents before they reach the
// engine. The engine itself tolerates malformed values; the schema exists so
// the CLI can reject garbage files with a useful message instead of emitting
// an empty analysis.
const attemptSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["student_id", "test_id", "timestamp", "questions"],
  "properties": {
    "student_id": {"type": "string", "minLength": 1},
    "test_id": {"type": "string", "minLength": 1},
    "timestamp": {"type": "string", "format": "date-time"},
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question_id", "topic", "max_score", "score", "correct"],
        "properties": {
          "question_id": {"type": "string"},
          "topic": {"type": "string"},
          "max_score": {"type": "number", "minimum": 0},
          "score": {"type": "number", "minimum": 0},
          "correct": {"type": "boolean"},
          "response": {"type": ["string", "null"]},
          "time_spent_seconds": {"type": ["number", "null"]}
        }
      }
    },
    "metadata": {
      "type": "object",
      "properties": {
        "grade_level": {"type": "integer", "minimum": 1, "maximum": 12},
        "preferred_language": {"type": "string"}
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(attemptSchema), &doc); err != nil {
			compileErr = fmt.Errorf("parse attempt schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://attempt.json"
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Validate checks raw JSON against the attempt schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := schema()
	if err != nil {
		return err
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Parse validates raw JSON and unmarshals it into a TestAttempt.
func Parse(raw []byte) (*TestAttempt, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var att TestAttempt
	if err := json.Unmarshal(raw, &att); err != nil {
		return nil, fmt.Errorf("decode attempt: %w", err)
	}
	return &att, nil
}
