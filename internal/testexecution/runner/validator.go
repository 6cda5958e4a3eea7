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
	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/saltcheck-contrib/saltcheck/internal/engine"
	"github.com/saltcheck-contrib/saltcheck/internal/salt"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
)

// Validator scores test definitions against the required threshold before
// they run. Module and function inventories are fetched through the caller
// and memoized for the life of the validator; they are assumed stable
// within a run.
type Validator struct {
	caller salt.Caller
	debug  bool

	modules   []string
	functions map[string][]string
}

// NewValidator creates a validator that resolves module and function
// existence through the given caller.
func NewValidator(caller salt.Caller, debug bool) *Validator {
	return &Validator{
		caller:    caller,
		debug:     debug,
		functions: make(map[string][]string),
	}
}

// Reset drops the memoized module and function inventories so the next
// validation refetches them. Orchestrators call it at run start.
func (v *Validator) Reset() {
	v.modules = nil
	v.functions = make(map[string][]string)
}

// IsValid scores a test definition and compares it against the threshold
// its shape requires. Skipped tests always validate; the state-apply alias
// needs only the operation name and its module; assertions without an
// expected-return need four points; everything else needs the full six.
func (v *Validator) IsValid(name string, spec *api.TestSpec) bool {
	score := 0

	if spec.ModuleAndFunction != "" {
		score++

		if module, function, ok := spec.SplitModuleFunction(); ok {
			if v.moduleExists(module) {
				score++
			}

			if v.functionExists(module, function) {
				score++
			}
		}
	}

	if _, ok := engine.ParseAssertion(spec.Assertion); ok {
		score++
	}

	if spec.HasExpectedReturn() {
		score++
	}

	if spec.ExpectedReturn != nil {
		score++
	}

	required := requiredScore(spec)

	if v.debug {
		utils.DebugPrintf("Test %s scored %d of required %d\n", name, score, required)
	}

	return score >= required
}

// requiredScore returns the threshold a definition must reach to run.
func requiredScore(spec *api.TestSpec) int {
	if spec.Skip {
		return 0
	}

	if spec.IsStateApply() {
		return 2
	}

	if assertion, ok := engine.ParseAssertion(spec.Assertion); ok && !assertion.RequiresExpected() {
		return 4
	}

	return 6
}

// moduleExists reports whether a module is available on the minion. Lookup
// failures leave the memo unset and fail closed.
func (v *Validator) moduleExists(module string) bool {
	if v.modules == nil {
		modules, err := v.caller.ListModules()
		if err != nil {
			if v.debug {
				utils.DebugPrintf("Failed to list modules: %v\n", err)
			}

			return false
		}

		v.modules = modules
	}

	return containsName(v.modules, module)
}

// functionExists reports whether module.function is available on the
// minion. Lookup failures fail closed instead of aborting the run.
func (v *Validator) functionExists(module, function string) bool {
	functions, ok := v.functions[module]
	if !ok {
		listed, err := v.caller.ListFunctions(module)
		if err != nil {
			if v.debug {
				utils.DebugPrintf("Failed to list functions of %s: %v\n", module, err)
			}

			return false
		}

		v.functions[module] = listed
		functions = listed
	}

	return containsName(functions, module+"."+function)
}

func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}

	return false
}
