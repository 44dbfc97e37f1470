// Package extract pulls a best-effort JSON document out of free-form model
// output. Generative models frequently wrap JSON in markdown fences, prose, or
// near-JSON (single quotes, bare keys, trailing commas); this package strips
// the wrapping, applies a fixed sequence of textual repairs, and reports a
// typed reason when the text still cannot be parsed.
//
// This is heuristic text munging, not a grammar. Known failure modes:
//   - Quote normalization rewrites every single quote, so a genuine apostrophe
//     inside a single-quoted string value ("it's") breaks the repaired text.
//   - Bare-key quoting can match identifier-colon sequences inside string
//     values.
//   - Only the outermost first-open to last-close bracket span is considered;
//     trailing prose containing a stray bracket widens the span.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Shape selects which top-level JSON value the caller expects.
type Shape int

const (
	Object Shape = iota
	Array
)

func (s Shape) String() string {
	if s == Array {
		return "array"
	}
	return "object"
}

var (
	// ErrNoJSON means the text contains no bracket-delimited span of the
	// expected shape.
	ErrNoJSON = errors.New("no JSON candidate found")

	// ErrUnparseable means a candidate span was found but remained invalid
	// after every repair.
	ErrUnparseable = errors.New("candidate is not valid JSON after repair")
)

var (
	fenceRe       = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe     = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
)

// JSON returns the first parseable JSON document of the expected shape found
// in text. The raw span is tried as-is first; on failure one repair pass runs
// and the parse is retried once.
func JSON(text string, shape Shape) (json.RawMessage, error) {
	candidate, err := locate(text, shape)
	if err != nil {
		return nil, err
	}

	if json.Valid([]byte(candidate)) {
		return json.RawMessage(candidate), nil
	}

	repaired := repair(candidate)
	if json.Valid([]byte(repaired)) {
		return json.RawMessage(repaired), nil
	}

	return nil, fmt.Errorf("extract %s: %w", shape, ErrUnparseable)
}

// locate strips markdown fences and slices the first-open to last-close
// bracket span of the expected shape.
func locate(text string, shape Shape) (string, error) {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	text = strings.TrimSpace(text)

	opener, closer := "{", "}"
	if shape == Array {
		opener, closer = "[", "]"
	}

	start := strings.Index(text, opener)
	end := strings.LastIndex(text, closer)
	if start < 0 || end <= start {
		return "", fmt.Errorf("extract %s: %w", shape, ErrNoJSON)
	}

	return text[start : end+1], nil
}

// repair applies the fixed cleanup sequence: flatten newlines, drop trailing
// commas, normalize single quotes to double quotes, quote bare object keys.
// Each step can over-correct; callers get one repaired attempt, not a loop.
func repair(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = trailingComma.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "'", `"`)
	s = bareKeyRe.ReplaceAllString(s, `${1}"${2}":`)
	return s
}
