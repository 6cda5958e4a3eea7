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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing
)

func TestAssertion_Evaluate(t *testing.T) {
	tests := []struct {
		name        string
		assertion   Assertion
		expected    interface{}
		actual      interface{}
		printResult bool
		want        string
	}{
		{
			name:        "assertEqual pass",
			assertion:   AssertEqual,
			expected:    "hello",
			actual:      "hello",
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertEqual pass across numeric types",
			assertion:   AssertEqual,
			expected:    int64(5),
			actual:      5,
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertEqual fail",
			assertion:   AssertEqual,
			expected:    "hello",
			actual:      "world",
			printResult: true,
			want:        "Fail: hello is not equal to world",
		},
		{
			name:        "assertEqual fail without print",
			assertion:   AssertEqual,
			expected:    "secret",
			actual:      "other",
			printResult: false,
			want:        "Fail: Result is not equal",
		},
		{
			name:        "assertNotEqual pass",
			assertion:   AssertNotEqual,
			expected:    "hello",
			actual:      "world",
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertNotEqual fail",
			assertion:   AssertNotEqual,
			expected:    5,
			actual:      5,
			printResult: true,
			want:        "Fail: 5 is equal to 5",
		},
		{
			name:        "assertNotEqual fail without print",
			assertion:   AssertNotEqual,
			expected:    "secret",
			actual:      "secret",
			printResult: false,
			want:        "Fail: Result is equal",
		},
		{
			name:        "assertTrue pass",
			assertion:   AssertTrue,
			actual:      true,
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertTrue fail on false",
			assertion:   AssertTrue,
			actual:      false,
			printResult: true,
			want:        "Fail: false not True",
		},
		{
			name:        "assertTrue fail on non-boolean",
			assertion:   AssertTrue,
			actual:      "yes",
			printResult: true,
			want:        "Fail: yes not True",
		},
		{
			name:        "assertFalse pass",
			assertion:   AssertFalse,
			actual:      false,
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertFalse pass on the text False",
			assertion:   AssertFalse,
			actual:      "False",
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertFalse pass on empty text",
			assertion:   AssertFalse,
			actual:      "",
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertFalse fail on non-empty text",
			assertion:   AssertFalse,
			actual:      "anything-nonempty",
			printResult: true,
			want:        "Fail: true not False",
		},
		{
			name:        "assertFalse fail on true",
			assertion:   AssertFalse,
			actual:      true,
			printResult: true,
			want:        "Fail: true not False",
		},
		{
			name:        "assertIn pass on sequence",
			assertion:   AssertIn,
			expected:    "dev",
			actual:      []interface{}{"prod", "dev", "qa"},
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertIn pass on substring",
			assertion:   AssertIn,
			expected:    "lo wo",
			actual:      "hello world",
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertIn fail",
			assertion:   AssertIn,
			expected:    "dev",
			actual:      []interface{}{"prod", "qa"},
			printResult: true,
			want:        "Fail: dev not found in [prod qa]",
		},
		{
			name:        "assertIn fail without print",
			assertion:   AssertIn,
			expected:    "dev",
			actual:      []interface{}{"prod", "qa"},
			printResult: false,
			want:        "Fail: Result not found",
		},
		{
			name:        "assertNotIn pass",
			assertion:   AssertNotIn,
			expected:    "dev",
			actual:      []interface{}{"prod", "qa"},
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertNotIn fail",
			assertion:   AssertNotIn,
			expected:    "dev",
			actual:      []interface{}{"prod", "dev"},
			printResult: true,
			want:        "Fail: dev was found in [prod dev]",
		},
		{
			name:        "assertNotIn fail without print",
			assertion:   AssertNotIn,
			expected:    "dev",
			actual:      []interface{}{"prod", "dev"},
			printResult: false,
			want:        "Fail: Result was found",
		},
		{
			name:        "assertGreater pass with expected as threshold",
			assertion:   AssertGreater,
			expected:    7,
			actual:      5,
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertGreater fail",
			assertion:   AssertGreater,
			expected:    5,
			actual:      7,
			printResult: true,
			want:        "Fail: 5 not greater than 7",
		},
		{
			name:        "assertGreater fail on equal",
			assertion:   AssertGreater,
			expected:    5,
			actual:      5,
			printResult: true,
			want:        "Fail: 5 not greater than 5",
		},
		{
			name:        "assertGreaterEqual pass on equal",
			assertion:   AssertGreaterEqual,
			expected:    5,
			actual:      5,
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertGreaterEqual fail",
			assertion:   AssertGreaterEqual,
			expected:    5,
			actual:      7,
			printResult: true,
			want:        "Fail: 5 not greater than or equal to 7",
		},
		{
			name:        "assertLess pass",
			assertion:   AssertLess,
			expected:    5,
			actual:      7,
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertLess fail",
			assertion:   AssertLess,
			expected:    7,
			actual:      5,
			printResult: true,
			want:        "Fail: 7 not less than 5",
		},
		{
			name:        "assertLessEqual pass on equal",
			assertion:   AssertLessEqual,
			expected:    5,
			actual:      5,
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertLessEqual fail",
			assertion:   AssertLessEqual,
			expected:    7,
			actual:      5,
			printResult: true,
			want:        "Fail: 7 not less than or equal to 5",
		},
		{
			name:        "ordering on strings",
			assertion:   AssertLess,
			expected:    "abc",
			actual:      "abd",
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "ordering on incomparable kinds fails",
			assertion:   AssertGreater,
			expected:    5,
			actual:      []interface{}{},
			printResult: true,
			want:        "Fail: cannot compare int with []interface {}",
		},
		{
			name:        "assertEmpty pass",
			assertion:   AssertEmpty,
			actual:      "",
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertEmpty pass on nil",
			assertion:   AssertEmpty,
			actual:      nil,
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertEmpty pass on zero",
			assertion:   AssertEmpty,
			actual:      0,
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertEmpty fail",
			assertion:   AssertEmpty,
			actual:      "something",
			printResult: true,
			want:        "Fail: something is not empty",
		},
		{
			name:        "assertNotEmpty pass",
			assertion:   AssertNotEmpty,
			actual:      []interface{}{"changes"},
			printResult: true,
			want:        StatusPass,
		},
		{
			name:        "assertNotEmpty fail",
			assertion:   AssertNotEmpty,
			actual:      map[string]interface{}{},
			printResult: true,
			want:        "Fail: value is empty",
		},
		{
			name:        "unknown assertion",
			assertion:   AssertionUnknown,
			expected:    1,
			actual:      1,
			printResult: true,
			want:        StatusBadAssertion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.assertion.Evaluate(tt.expected, tt.actual, tt.printResult)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssertion_Evaluate_NeverPanics(t *testing.T) {
	// Every kind against every odd operand pairing must come back as a
	// status string with a Pass or Fail prefix.
	kinds := []Assertion{
		AssertEqual, AssertNotEqual, AssertTrue, AssertFalse,
		AssertIn, AssertNotIn, AssertGreater, AssertGreaterEqual,
		AssertLess, AssertLessEqual, AssertEmpty, AssertNotEmpty,
	}
	values := []interface{}{
		nil, true, false, 0, 42, -1.5, "", "text", "False",
		[]interface{}{1, "a"}, map[string]interface{}{"k": "v"}, struct{}{},
	}

	for _, kind := range kinds {
		for _, expected := range values {
			for _, actual := range values {
				got := kind.Evaluate(expected, actual, true)

				ok := got == StatusPass || strings.HasPrefix(got, "Fail")
				assert.True(t, ok, "%s(%#v, %#v) returned %q", kind, expected, actual, got)
			}
		}
	}
}
