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

package processor

import (
	"fmt"

	"github.com/gertd/go-pluralize"
	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/saltcheck-contrib/saltcheck/internal/engine"
	"github.com/saltcheck-contrib/saltcheck/internal/salt"
	"github.com/saltcheck-contrib/saltcheck/internal/testexecution/runner"
	testexecutionUtils "github.com/saltcheck-contrib/saltcheck/internal/testexecution/utils"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
	"github.com/spf13/afero"
)

// Processor runs the tests of one or more states and aggregates their
// results into a run report. One executor serves the whole run, so module
// and function lookups stay memoized across states.
type Processor struct {
	fs       afero.Fs
	caller   salt.Caller
	renderer salt.Renderer
	executor *runner.Executor
	options  *testexecutionUtils.Options
}

// NewProcessor creates a processor for one run.
func NewProcessor(fs afero.Fs, caller salt.Caller, renderer salt.Renderer, options *testexecutionUtils.Options) *Processor {
	return &Processor{
		fs:       fs,
		caller:   caller,
		renderer: renderer,
		executor: runner.NewExecutor(caller, options.Debug),
		options:  options,
	}
}

// RunStateTests discovers and runs the tests of the given states, in the
// order they were named.
func (p *Processor) RunStateTests(states []string) (*engine.RunReport, error) {
	p.executor.Validator().Reset()
	return p.runStates(states)
}

// RunHighstateTests resolves the states assigned to the minion through the
// top file and runs their tests.
func (p *Processor) RunHighstateTests() (*engine.RunReport, error) {
	p.executor.Validator().Reset()

	topStates, err := p.caller.TopStates(p.options.Saltenv)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve top states for %s: %w", p.options.Saltenv, err)
	}

	var states []string

	for _, state := range topStates {
		if !containsState(states, state) {
			states = append(states, state)
		}
	}

	return p.runStates(states)
}

// RunSingleTest validates and runs one ad hoc test definition.
func (p *Processor) RunSingleTest(name string, spec *api.TestSpec) (engine.TestResult, error) {
	p.executor.Validator().Reset()
	return p.executor.Run(name, spec)
}

func (p *Processor) runStates(states []string) (*engine.RunReport, error) {
	report := engine.NewRunReport()

	for _, state := range states {
		stateResult, err := p.runState(state)
		if err != nil {
			return nil, err
		}

		report.Add(stateResult)
	}

	return report, nil
}

// runState discovers, loads, and runs the tests of one state. Each test's
// result is recorded in file order; an invocation failure is already carried
// by the test's failed result, so the run continues with the next test.
func (p *Processor) runState(state string) (*engine.StateResult, error) {
	files := discoverTestFiles(p.fs, state, p.options)

	if p.options.Debug {
		plural := pluralize.NewClient()
		utils.DebugPrintf("Found %s for state %s\n", plural.Pluralize("test file", len(files), true), state)
	}

	suite, err := loadSuite(p.renderer, files)
	if err != nil {
		return nil, err
	}

	result := engine.NewStateResult(state)

	for pair := suite.Oldest(); pair != nil; pair = pair.Next() {
		testResult, _ := p.executor.Run(pair.Key, pair.Value)
		result.Add(pair.Key, testResult)
	}

	return result, nil
}

func containsState(states []string, state string) bool {
	for _, s := range states {
		if s == state {
			return true
		}
	}

	return false
}
