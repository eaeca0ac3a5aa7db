package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/michaelwsd/lingualift/internal/domain"
)

var (
	jsonFenceRe = regexp.MustCompile("(?is)```\\s*json[ \\t]*\\r?\\n?(.*?)```")
	anyFenceRe  = regexp.MustCompile("(?s)```[^\\n`]*\\n?(.*?)```")
)

// Candidates returns the JSON candidates found in text, in recovery order:
// fenced blocks labelled json, any fenced block, the first balanced
// top-level object, and finally the whole text.
func Candidates(text string) []string {
	var out []string
	for _, m := range jsonFenceRe.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	for _, m := range anyFenceRe.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	if obj, ok := firstObject(text); ok {
		out = append(out, obj)
	}
	return append(out, strings.TrimSpace(text))
}

// ExtractObject recovers a JSON object containing requiredKey from free
// text. The first candidate that parses to an object with the key wins.
// An empty requiredKey accepts any object. Fails with domain.ErrExtraction.
func ExtractObject(text, requiredKey string) (json.RawMessage, error) {
	for _, c := range Candidates(text) {
		if c == "" {
			continue
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(c), &obj); err != nil || obj == nil {
			continue
		}
		if requiredKey != "" {
			if v, ok := obj[requiredKey]; !ok || isNull(v) {
				continue
			}
		}
		return json.RawMessage(c), nil
	}
	if requiredKey == "" {
		return nil, fmt.Errorf("%w: no JSON object in response", domain.ErrExtraction)
	}
	return nil, fmt.Errorf("%w: no JSON object with %q in response", domain.ErrExtraction, requiredKey)
}

// Decode unmarshals a structured response into v. Schema-constrained
// responses are tried verbatim first, then through the recovery ladder.
func Decode(text string, v any) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return errors.New("empty response")
	}
	err := json.Unmarshal([]byte(trimmed), v)
	if err == nil {
		return nil
	}
	raw, extractErr := ExtractObject(trimmed, "")
	if extractErr != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// firstObject returns the first balanced {...} substring, skipping braces
// inside JSON strings.
func firstObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	for start >= 0 {
		if end, ok := matchBrace(text, start); ok {
			return text[start : end+1], true
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

func matchBrace(text string, start int) (int, bool) {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
