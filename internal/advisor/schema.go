package advisor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrShapeMismatch is returned when parsed JSON does not match the expected shape.
var ErrShapeMismatch = errors.New("response shape mismatch")

const recommendationsSchemaJSON = `{
  "type": "object",
  "required": ["recommendations"],
  "properties": {
    "recommendations": {
      "type": "array",
      "minItems": 3,
      "items": {
        "type": "object",
        "required": ["title", "description", "startupCost", "timeToProfit", "skillsNeeded", "nextSteps"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "startupCost": {"type": "string"},
          "timeToProfit": {"type": "string"},
          "skillsNeeded": {"type": "array", "items": {"type": "string"}},
          "nextSteps": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

const coursesSchemaJSON = `{
  "type": "object",
  "required": ["foundational", "specialized", "advanced"],
  "definitions": {
    "course": {
      "type": "object",
      "required": ["title", "provider", "instructor", "duration", "rating", "students", "price", "level", "description", "url", "skills"],
      "properties": {
        "title": {"type": "string", "minLength": 1},
        "provider": {"enum": ["LinkedIn Learning", "Udemy", "Coursera"]},
        "instructor": {"type": "string"},
        "duration": {"type": "string"},
        "rating": {"type": "number", "minimum": 0, "maximum": 5},
        "students": {"type": "string"},
        "price": {"type": "string"},
        "level": {"enum": ["Beginner", "Intermediate", "Advanced"]},
        "description": {"type": "string"},
        "url": {"type": "string"},
        "skills": {"type": "array", "items": {"type": "string"}}
      }
    },
    "tier": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/course"}}
  },
  "properties": {
    "foundational": {"$ref": "#/definitions/tier"},
    "specialized": {"$ref": "#/definitions/tier"},
    "advanced": {"$ref": "#/definitions/tier"}
  }
}`

var (
	recommendationsSchema = mustSchema(recommendationsSchemaJSON)
	coursesSchema         = mustSchema(coursesSchemaJSON)
)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("advisor: invalid schema: %v", err))
	}
	return schema
}

// checkShape validates raw against schema and reports every violation.
func checkShape(schema *gojsonschema.Schema, raw json.RawMessage) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrShapeMismatch, strings.Join(msgs, "; "))
}
