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

package runner

import (
	"bytes"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
	"gopkg.in/yaml.v3"
)

// debugPrintTest prints a test definition in a consistent format.
func (e *Executor) debugPrintTest(name string, spec *api.TestSpec) {
	utils.DebugPrintf("Running test %s:\n", name)
	utils.DebugPrintf("  - module_and_function: %s\n", spec.ModuleAndFunction)

	if len(spec.Args) > 0 {
		utils.DebugPrintf("  - args: %v\n", spec.Args)
	}

	if len(spec.Kwargs) > 0 {
		utils.DebugPrintf("  - kwargs: %v\n", spec.Kwargs)
	}

	if spec.Assertion != "" {
		utils.DebugPrintf("  - assertion: %s\n", spec.Assertion)
	}

	if spec.AssertionSection != "" {
		utils.DebugPrintf("  - assertion_section: %s\n", spec.AssertionSection)
	}

	if spec.HasExpectedReturn() {
		utils.DebugPrintf("  - expected-return: %v\n", spec.ExpectedReturn)
	}

	if spec.HasPillarData() {
		utils.DebugPrintf("  - pillar-data: %v\n", spec.PillarData)
	}

	if spec.HasGrainData() {
		utils.DebugPrintf("  - grain-data: %v\n", spec.GrainData)
	}

	if spec.Skip {
		utils.DebugPrintf("  - skip: true\n")
	}
}

// debugPrintFailure prints a diff of expected against actual for failures
// whose values are too large to read from the failure message alone.
func (e *Executor) debugPrintFailure(name string, expected, actual interface{}) {
	diff, err := failureDiff(expected, actual)
	if err != nil || diff == "" {
		return
	}

	utils.DebugPrintf("Expected and actual values of %s differ:\n%s", name, diff)
}

// failureDiff renders a unified diff for multiline text and a structural
// report for mappings and sequences. Scalars produce no diff; the failure
// message already shows them.
func failureDiff(expected, actual interface{}) (string, error) {
	expectedText, expectedIsText := expected.(string)
	actualText, actualIsText := actual.(string)

	if expectedIsText && actualIsText {
		if !strings.Contains(expectedText, "\n") && !strings.Contains(actualText, "\n") {
			return "", nil
		}

		return textDiff(expectedText, actualText)
	}

	if structured(expected) || structured(actual) {
		return structureDiff(expected, actual)
	}

	return "", nil
}

func structured(value interface{}) bool {
	switch value.(type) {
	case map[string]interface{}, []interface{}:
		return true
	}

	return false
}

// textDiff renders a unified diff between two multiline strings.
func textDiff(expected, actual string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}

// structureDiff renders a dyff report between two structured values.
func structureDiff(expected, actual interface{}) (string, error) {
	from, err := diffInput("expected", expected)
	if err != nil {
		return "", err
	}

	to, err := diffInput("actual", actual)
	if err != nil {
		return "", err
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", err
	}

	var rendered bytes.Buffer

	human := &dyff.HumanReport{Report: report, OmitHeader: true}
	if err := human.WriteReport(&rendered); err != nil {
		return "", err
	}

	return rendered.String(), nil
}

// diffInput wraps a value as an in-memory document for comparison.
func diffInput(label string, value interface{}) (ytbx.InputFile, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	documents, err := ytbx.LoadDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{Location: label, Documents: documents}, nil
}
