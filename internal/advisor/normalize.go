package advisor

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoValidJSON is returned when no parseable JSON can be recovered from a completion.
var ErrNoValidJSON = errors.New("no valid JSON found in response")

var (
	bracePattern      = regexp.MustCompile(`(?s)\{.*\}`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ExtractJSON recovers a JSON document from a raw model completion. Attempts,
// first success wins: the whole text, the greedy first-{ to last-} span, and
// that span with code fences removed and whitespace collapsed.
func ExtractJSON(text string) (json.RawMessage, error) {
	if json.Valid([]byte(text)) {
		return json.RawMessage(strings.TrimSpace(text)), nil
	}
	span := bracePattern.FindString(text)
	if span == "" {
		return nil, ErrNoValidJSON
	}
	if json.Valid([]byte(span)) {
		return json.RawMessage(span), nil
	}
	cleaned := strings.ReplaceAll(span, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.ReplaceAll(cleaned, "\n", " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if json.Valid([]byte(cleaned)) {
		return json.RawMessage(cleaned), nil
	}
	return nil, ErrNoValidJSON
}

// Normalize extracts JSON from text and decodes it into out.
func Normalize(text string, out any) (json.RawMessage, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return raw, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return raw, nil
}
