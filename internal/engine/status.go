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
	"strings"

	"github.com/gonvenience/bunt"
)

// The exact status strings a test can resolve to. Reports match on the
// Pass/Fail/Skip prefix, so every failure class keeps the Fail prefix.
const (
	StatusPass         = "Pass"
	StatusSkip         = "Skip"
	StatusInvalidTest  = "Fail - invalid test"
	StatusBadAssertion = "Fail - bad assertion"
)

// Fail builds a failing status string from a message.
func Fail(format string, args ...interface{}) string {
	return "Fail: " + fmt.Sprintf(format, args...)
}

// colorStatus renders a status string with its color: green for passes,
// red for failures, yellow otherwise. bunt degrades to plain text when the
// output is not a terminal.
func colorStatus(status string) string {
	switch {
	case strings.HasPrefix(status, "Pass"):
		return bunt.Sprintf("Green{%s}", status)
	case strings.HasPrefix(status, "Fail"):
		return bunt.Sprintf("Red{%s}", status)
	}

	return bunt.Sprintf("Yellow{%s}", status)
}
