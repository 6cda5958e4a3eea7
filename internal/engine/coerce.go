/*
Copyright 2025 The Saltcheck Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package engine

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CoerceExpected converts a textual expected value into the semantic kind
// of the actual value before comparison. Expected values always arrive as
// text from a markup file; the actual value's kind decides the target.
// Coercion is best-effort: when the text cannot be converted, the original
// value is returned unchanged and the mismatch surfaces as an assertion
// failure instead of an error.
func CoerceExpected(expected, actual interface{}) interface{} {
	text, ok := expected.(string)
	if !ok {
		return expected
	}

	switch KindOf(actual) {
	case KindBool:
		// Only the exact text "False" maps to false. Any other non-empty
		// text is truthy, matching the loose boolean reading of strings.
		if text == "False" {
			return false
		}

		return len(text) > 0
	case KindInt:
		if n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err == nil {
			return n
		}

		return expected
	case KindFloat:
		if f, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return f
		}

		return expected
	case KindString:
		return text
	case KindSequence:
		if parsed, ok := parseAs(text, KindSequence); ok {
			return parsed
		}

		return expected
	case KindMapping:
		if parsed, ok := parseAs(text, KindMapping); ok {
			return parsed
		}

		return expected
	}

	// Null and unknown targets keep the text unchanged.
	return expected
}

// parseAs parses text as YAML and keeps the result only when it matches the
// wanted kind.
func parseAs(text string, want Kind) (interface{}, bool) {
	var parsed interface{}
	if err := yaml.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, false
	}

	if KindOf(parsed) != want {
		return nil, false
	}

	return parsed, true
}
