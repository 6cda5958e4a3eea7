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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing
)

func TestNewTestResult(t *testing.T) {
	t.Run("rounds the duration to four decimals", func(t *testing.T) {
		result := NewTestResult(StatusPass, 0.123456)

		assert.Equal(t, StatusPass, result.Status)
		assert.Equal(t, 0.1235, result.Duration)
	})

	t.Run("keeps a zero duration", func(t *testing.T) {
		result := NewTestResult(StatusSkip, 0)

		assert.Equal(t, 0.0, result.Duration)
	})
}

func TestTestResult_StatusClasses(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		passed  bool
		failed  bool
		skipped bool
	}{
		{name: "pass", status: StatusPass, passed: true},
		{name: "skip", status: StatusSkip, skipped: true},
		{name: "assertion failure", status: Fail("5 is not equal to 6"), failed: true},
		{name: "invalid test", status: StatusInvalidTest, failed: true},
		{name: "bad assertion", status: StatusBadAssertion, failed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TestResult{Status: tt.status}

			assert.Equal(t, tt.passed, result.Passed())
			assert.Equal(t, tt.failed, result.Failed())
			assert.Equal(t, tt.skipped, result.Skipped())
		})
	}
}

func TestTestResult_Print(t *testing.T) {
	var buf bytes.Buffer

	result := NewTestResult(StatusPass, 0.25)
	result.Print(&buf, "check banner")

	assert.Contains(t, buf.String(), "check banner: ")
	assert.Contains(t, buf.String(), "Pass")
	assert.Contains(t, buf.String(), "(0.2500s)")
}

func TestRoundDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    float64
	}{
		{name: "rounds up", seconds: 1.23456789, want: 1.2346},
		{name: "rounds down", seconds: 0.00014, want: 0.0001},
		{name: "sub-precision collapses to zero", seconds: 0.000049, want: 0},
		{name: "zero", seconds: 0, want: 0},
		{name: "already exact", seconds: 2.5, want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundDuration(tt.seconds), 1e-9)
		})
	}
}
