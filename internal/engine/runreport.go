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
	"sort"
	"strings"

	"github.com/gertd/go-pluralize"
	"github.com/google/uuid"
)

// Summary aggregates the counters of a whole run.
type Summary struct {
	ExecutionTime float64
	Passed        int
	Failed        int
	Skipped       int
	MissingTests  int
}

// RunReport collects per-state results for one run. RunID ties log lines of
// a run together, the way a job id does.
type RunReport struct {
	RunID  string
	States []*StateResult
}

// NewRunReport creates a report with a fresh run id.
func NewRunReport() *RunReport {
	return &RunReport{RunID: uuid.New().String()}
}

// Add appends a state's results in run order.
func (rr *RunReport) Add(sr *StateResult) {
	rr.States = append(rr.States, sr)
}

// HasFailures returns true if any test failed or any state had no tests.
func (rr *RunReport) HasFailures() bool {
	for _, sr := range rr.States {
		if sr.Missing() || sr.HasFailures() {
			return true
		}
	}

	return false
}

// Summary computes the aggregate counters. Statuses are matched on their
// Pass/Fail/Skip prefix, so invalid tests and bad assertions count as
// failures.
func (rr *RunReport) Summary() Summary {
	var s Summary

	for _, sr := range rr.States {
		if sr.Missing() {
			s.MissingTests++
			continue
		}

		for pair := sr.results.Oldest(); pair != nil; pair = pair.Next() {
			switch {
			case pair.Value.Passed():
				s.Passed++
			case pair.Value.Failed():
				s.Failed++
			case pair.Value.Skipped():
				s.Skipped++
			}

			s.ExecutionTime += pair.Value.Duration
		}
	}

	s.ExecutionTime = RoundDuration(s.ExecutionTime)

	return s
}

// Print writes every state's results sorted by state name, followed by the
// aggregate summary block.
func (rr *RunReport) Print(w io.Writer, onlyFails bool) {
	states := make([]*StateResult, len(rr.States))
	copy(states, rr.States)
	sort.Slice(states, func(i, j int) bool { return states[i].Name < states[j].Name })

	for _, sr := range states {
		sr.Print(w, onlyFails)
	}

	summary := rr.Summary()

	fmt.Fprintf(w, "TEST RESULTS:\n")                                                                                       //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(w, "%sExecution Time: %.4f\n", spaces, summary.ExecutionTime)                                               //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(w, "%sPassed: %d\n", spaces, summary.Passed)                                                                //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(w, "%sFailed: %d\n", spaces, summary.Failed)                                                                //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(w, "%sSkipped: %d\n", spaces, summary.Skipped)                                                              //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(w, "%sMissing Tests: %d\n", spaces, summary.MissingTests)                                                   //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(w, "%s\n", summaryLine(summary.Passed+summary.Failed+summary.Skipped, summary.Failed, summary.MissingTests)) //nolint:errcheck // output function, error handling not practical
}

// summaryLine builds the closing one-liner, go-test style.
func summaryLine(total, failed, missing int) string {
	plural := pluralize.NewClient()

	if failed == 0 && missing == 0 {
		return fmt.Sprintf("ok\t%s", plural.Pluralize("test", total, true))
	}

	reasons := make([]string, 0, 2)
	if failed > 0 {
		reasons = append(reasons, fmt.Sprintf("%s failed", plural.Pluralize("test", failed, true)))
	}

	if missing > 0 {
		reasons = append(reasons, fmt.Sprintf("%s without tests", plural.Pluralize("state", missing, true)))
	}

	return fmt.Sprintf("FAIL\t%s", strings.Join(reasons, ", "))
}
