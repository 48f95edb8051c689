// Package jsonx recovers JSON objects from free-form model output. Models
// frequently wrap JSON in prose or code fences despite instructions; Extract
// tries progressively looser strategies before giving up.
package jsonx

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mrumer-yk/creative-market-agent/internal/domain"
)

// fenceRe matches a ``` or ```json fenced block, shortest interior first.
var fenceRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// braceRe matches the first '{' through the last '}' in the text.
var braceRe = regexp.MustCompile(`(?s)\{.*\}`)

// Extract parses text into a JSON object using three strategies in order:
// the trimmed text itself, the interior of the first fenced code block, and
// the widest {...} span. The first strategy that yields valid JSON wins;
// if all three fail the error wraps domain.ErrMalformedOutput.
func Extract(text string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)

	if raw, ok := tryParse(trimmed); ok {
		return raw, nil
	}

	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		if raw, ok := tryParse(m[1]); ok {
			return raw, nil
		}
	}

	if span := braceRe.FindString(trimmed); span != "" {
		if raw, ok := tryParse(span); ok {
			return raw, nil
		}
	}

	return nil, fmt.Errorf("%w: no parseable JSON in %d bytes of output", domain.ErrMalformedOutput, len(text))
}

// tryParse validates candidate as a JSON object and returns it untouched.
func tryParse(candidate string) (json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, false
	}
	return json.RawMessage(candidate), true
}
