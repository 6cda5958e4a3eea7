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
	"math"
	"strings"
)

// TestResult is the outcome of a single test: a status string and the
// wall-clock duration in seconds rounded to four decimal places.
type TestResult struct {
	Status   string  `json:"status"`
	Duration float64 `json:"duration"`
}

// NewTestResult builds a result, rounding the duration.
func NewTestResult(status string, seconds float64) TestResult {
	return TestResult{Status: status, Duration: RoundDuration(seconds)}
}

// Passed returns true for passing results.
func (r TestResult) Passed() bool {
	return strings.HasPrefix(r.Status, "Pass")
}

// Failed returns true for every failing class, including invalid tests and
// bad assertions.
func (r TestResult) Failed() bool {
	return strings.HasPrefix(r.Status, "Fail")
}

// Skipped returns true for skipped results.
func (r TestResult) Skipped() bool {
	return strings.HasPrefix(r.Status, "Skip")
}

// Print writes the result as one named line, in the same shape state
// results use.
func (r TestResult) Print(w io.Writer, name string) {
	fmt.Fprintf(w, "%s: %s (%.4fs)\n", name, colorStatus(r.Status), r.Duration) //nolint:errcheck // output function, error handling not practical
}

// RoundDuration rounds a duration in seconds to the four decimal places
// results are reported with.
func RoundDuration(seconds float64) float64 {
	return math.Round(seconds*10000) / 10000
}
