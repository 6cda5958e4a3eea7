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

// Package runner executes single test definitions: it validates them,
// invokes the Salt function under test, and evaluates the declared
// assertion against the returned value.
package runner

import (
	"fmt"
	"time"

	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/saltcheck-contrib/saltcheck/internal/engine"
	"github.com/saltcheck-contrib/saltcheck/internal/salt"
)

// Executor runs one test definition at a time through the full lifecycle:
// validation, skip handling, the Salt call, result drilling, expected-value
// coercion, and assertion evaluation.
type Executor struct {
	caller    salt.Caller
	validator *Validator
	debug     bool

	// Mockable function field
	nowFunc func() time.Time
}

// NewExecutor creates an executor that invokes Salt through the given caller.
func NewExecutor(caller salt.Caller, debug bool) *Executor {
	return &Executor{
		caller:    caller,
		validator: NewValidator(caller, debug),
		debug:     debug,
		nowFunc:   time.Now,
	}
}

// Validator returns the executor's validator, so orchestrators can reset
// its memoized inventories at run start.
func (e *Executor) Validator() *Validator {
	return e.validator
}

// Run executes a single test definition and returns its result. The result
// is always usable for reporting; a non-nil error additionally signals that
// the Salt invocation itself failed, so callers can decide whether one
// broken call should stop a batch.
func (e *Executor) Run(name string, spec *api.TestSpec) (engine.TestResult, error) {
	start := e.nowFunc()

	if e.debug {
		e.debugPrintTest(name, spec)
	}

	if !e.validator.IsValid(name, spec) {
		return engine.NewTestResult(engine.StatusInvalidTest, e.elapsed(start)), nil
	}

	if spec.Skip {
		return engine.NewTestResult(engine.StatusSkip, 0.0), nil
	}

	assertion := effectiveAssertion(spec)

	actual, err := e.caller.Call(spec.ModuleAndFunction, spec.Args, callKwargs(spec))
	if err != nil {
		return engine.NewTestResult(engine.Fail("%v", err), e.elapsed(start)), err
	}

	actual = drillSection(actual, spec.AssertionSection)

	expected := spec.ExpectedReturn
	if !assertion.SkipsCoercion() {
		expected = engine.CoerceExpected(expected, actual)
	}

	status := assertion.Evaluate(expected, actual, spec.ShouldPrintResult())

	result := engine.NewTestResult(status, e.elapsed(start))
	if e.debug && result.Failed() {
		e.debugPrintFailure(name, expected, actual)
	}

	return result, nil
}

// elapsed returns the seconds since start.
func (e *Executor) elapsed(start time.Time) float64 {
	return e.nowFunc().Sub(start).Seconds()
}

// effectiveAssertion resolves the assertion a definition runs under. The
// state-apply alias always asserts on a non-empty state result; unsupported
// names resolve to the unknown kind, which evaluates to a bad-assertion
// failure.
func effectiveAssertion(spec *api.TestSpec) engine.Assertion {
	if spec.IsStateApply() {
		return engine.AssertNotEmpty
	}

	assertion, _ := engine.ParseAssertion(spec.Assertion)

	return assertion
}

// callKwargs assembles the keyword arguments for the Salt call: the declared
// kwargs plus the pillar and grain injections. An absent injection is removed
// from the set so a definition run repeatedly never carries stale pillar or
// grain values into a later call.
func callKwargs(spec *api.TestSpec) map[string]interface{} {
	kwargs := make(map[string]interface{}, len(spec.Kwargs)+2)
	for key, value := range spec.Kwargs {
		kwargs[key] = value
	}

	if spec.HasPillarData() {
		kwargs["pillar"] = spec.PillarData
	} else {
		delete(kwargs, "pillar")
	}

	if spec.HasGrainData() {
		kwargs["grain"] = spec.GrainData
	} else {
		delete(kwargs, "grain")
	}

	return kwargs
}

// drillSection selects one key of a mapping result before assertion. Drilled
// values read as text; a missing key or a non-mapping result reads as the
// text "False" so emptiness and boolean assertions treat it as a failure.
func drillSection(value interface{}, section string) interface{} {
	if section == "" {
		return value
	}

	mapping, ok := value.(map[string]interface{})
	if !ok {
		return "False"
	}

	inner, ok := mapping[section]
	if !ok {
		return "False"
	}

	return sectionText(inner)
}

// sectionText renders a drilled value the way Salt's outputter does.
// Booleans become True/False so a drilled false keeps its falsy reading.
func sectionText(value interface{}) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "True"
		}

		return "False"
	case string:
		return v
	case nil:
		return "None"
	}

	return fmt.Sprintf("%v", value)
}
