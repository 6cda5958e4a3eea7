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

// Evaluate runs the assertion against the expected and actual values and
// returns a status string: StatusPass or a "Fail: <message>" string. It
// never returns an error; incomparable operands fail with a message.
// printResult=false switches messages that would echo values to generic
// text, for tests whose results must not leak into reports.
func (a Assertion) Evaluate(expected, actual interface{}, printResult bool) string {
	switch a {
	case AssertEqual:
		if equalValues(expected, actual) {
			return StatusPass
		}

		if !printResult {
			return Fail("Result is not equal")
		}

		return Fail("%v is not equal to %v", expected, actual)
	case AssertNotEqual:
		if !equalValues(expected, actual) {
			return StatusPass
		}

		if !printResult {
			return Fail("Result is equal")
		}

		return Fail("%v is equal to %v", expected, actual)
	case AssertTrue:
		if b, ok := actual.(bool); ok && b {
			return StatusPass
		}

		return Fail("%v not True", actual)
	case AssertFalse:
		value := actual
		if text, ok := actual.(string); ok {
			value = textAsBool(text)
		}

		if b, ok := value.(bool); ok && !b {
			return StatusPass
		}

		return Fail("%v not False", value)
	case AssertIn:
		if containsValue(actual, expected) {
			return StatusPass
		}

		if !printResult {
			return Fail("Result not found")
		}

		return Fail("%v not found in %v", expected, actual)
	case AssertNotIn:
		if !containsValue(actual, expected) {
			return StatusPass
		}

		if !printResult {
			return Fail("Result was found")
		}

		return Fail("%v was found in %v", expected, actual)
	case AssertGreater:
		return evaluateOrdering(expected, actual, "greater than", func(c int) bool { return c > 0 })
	case AssertGreaterEqual:
		return evaluateOrdering(expected, actual, "greater than or equal to", func(c int) bool { return c >= 0 })
	case AssertLess:
		return evaluateOrdering(expected, actual, "less than", func(c int) bool { return c < 0 })
	case AssertLessEqual:
		return evaluateOrdering(expected, actual, "less than or equal to", func(c int) bool { return c <= 0 })
	case AssertEmpty:
		if !truthy(actual) {
			return StatusPass
		}

		return Fail("%v is not empty", actual)
	case AssertNotEmpty:
		if truthy(actual) {
			return StatusPass
		}

		return Fail("value is empty")
	}

	return StatusBadAssertion
}

// evaluateOrdering compares expected against actual with expected as the
// left-hand operand, so expected-return is the threshold value.
func evaluateOrdering(expected, actual interface{}, relation string, holds func(int) bool) string {
	c, err := compareValues(expected, actual)
	if err != nil {
		return Fail("%s", err.Error())
	}

	if holds(c) {
		return StatusPass
	}

	return Fail("%v not %s %v", expected, relation, actual)
}

// textAsBool reads a string as a boolean the way expected-value coercion
// does: only the exact text "False" and the empty string are false.
func textAsBool(text string) bool {
	if text == "False" {
		return false
	}

	return len(text) > 0
}
