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

// Package engine implements the assertion engine: the closed set of
// assertion kinds, expected-value coercion, evaluation, and the result
// types runs are reported with.
package engine

// Assertion identifies one of the supported assertion kinds.
type Assertion int

// The closed set of assertion kinds a test definition may declare.
const (
	AssertionUnknown Assertion = iota
	AssertEqual
	AssertNotEqual
	AssertTrue
	AssertFalse
	AssertIn
	AssertNotIn
	AssertGreater
	AssertGreaterEqual
	AssertLess
	AssertLessEqual
	AssertEmpty
	AssertNotEmpty
)

var assertionNames = map[Assertion]string{
	AssertEqual:        "assertEqual",
	AssertNotEqual:     "assertNotEqual",
	AssertTrue:         "assertTrue",
	AssertFalse:        "assertFalse",
	AssertIn:           "assertIn",
	AssertNotIn:        "assertNotIn",
	AssertGreater:      "assertGreater",
	AssertGreaterEqual: "assertGreaterEqual",
	AssertLess:         "assertLess",
	AssertLessEqual:    "assertLessEqual",
	AssertEmpty:        "assertEmpty",
	AssertNotEmpty:     "assertNotEmpty",
}

// ParseAssertion maps a declared assertion name to its kind.
// ok is false for names outside the supported set.
func ParseAssertion(name string) (Assertion, bool) {
	for assertion, known := range assertionNames {
		if known == name {
			return assertion, true
		}
	}

	return AssertionUnknown, false
}

// String returns the canonical assertion name.
func (a Assertion) String() string {
	if name, ok := assertionNames[a]; ok {
		return name
	}

	return "unknown"
}

// RequiresExpected returns true for kinds that compare against an
// expected-return value. Emptiness and boolean kinds judge the actual value
// on its own.
func (a Assertion) RequiresExpected() bool {
	switch a {
	case AssertEmpty, AssertNotEmpty, AssertTrue, AssertFalse:
		return false
	}

	return true
}

// SkipsCoercion returns true for kinds whose evaluation operates on the
// actual value directly, so the textual expected value is never coerced.
func (a Assertion) SkipsCoercion() bool {
	switch a {
	case AssertIn, AssertNotIn, AssertEmpty, AssertNotEmpty, AssertTrue, AssertFalse:
		return true
	}

	return false
}
