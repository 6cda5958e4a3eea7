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
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	spaces = "    " // Global indentation constant for consistent formatting.
)

// StateResult holds the ordered per-test results for one state. A state
// with no discovered tests stays empty and is reported as missing tests.
type StateResult struct {
	Name    string
	results *orderedmap.OrderedMap[string, TestResult]
}

// NewStateResult creates an empty result set for a state.
func NewStateResult(name string) *StateResult {
	return &StateResult{
		Name:    name,
		results: orderedmap.New[string, TestResult](),
	}
}

// Add records a test result, keeping insertion order.
func (sr *StateResult) Add(testName string, result TestResult) {
	sr.results.Set(testName, result)
}

// Get returns the result recorded for a test name.
func (sr *StateResult) Get(testName string) (TestResult, bool) {
	return sr.results.Get(testName)
}

// Len returns the number of recorded results.
func (sr *StateResult) Len() int {
	return sr.results.Len()
}

// Missing returns true when no tests were discovered for the state.
func (sr *StateResult) Missing() bool {
	return sr.results.Len() == 0
}

// HasFailures returns true if any test in the state failed.
func (sr *StateResult) HasFailures() bool {
	for pair := sr.results.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Failed() {
			return true
		}
	}

	return false
}

// Print writes the state's results. With onlyFails, passing and skipped
// tests are left out.
func (sr *StateResult) Print(w io.Writer, onlyFails bool) {
	fmt.Fprintf(w, "%s:\n", sr.Name) //nolint:errcheck // output function, error handling not practical

	if sr.Missing() {
		fmt.Fprintf(w, "%s%s\n", spaces, colorStatus("No tests found")) //nolint:errcheck // output function, error handling not practical
		return
	}

	for pair := sr.results.Oldest(); pair != nil; pair = pair.Next() {
		if onlyFails && !pair.Value.Failed() {
			continue
		}

		fmt.Fprintf(w, "%s%s: %s (%.4fs)\n", spaces, pair.Key, colorStatus(pair.Value.Status), pair.Value.Duration) //nolint:errcheck // output function, error handling not practical
	}
}
