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

// Package salt implements the collaborators that talk to Salt: the caller
// that invokes execution-module functions through salt-call and the
// renderers that turn test files into structured test suites.
package salt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
	"gopkg.in/yaml.v3"
)

// Caller invokes Salt execution-module functions and answers the
// introspection queries the validator and orchestrator need.
type Caller interface {
	// Call invokes module.function with positional and keyword arguments
	// and returns the function's return value.
	Call(function string, args []interface{}, kwargs map[string]interface{}) (interface{}, error)
	// ListModules returns the names of the execution modules available on
	// the minion.
	ListModules() ([]string, error)
	// ListFunctions returns the fully-qualified function names of a module,
	// e.g. "test.echo" for module "test".
	ListFunctions(module string) ([]string, error)
	// TopStates returns the states assigned to the minion for an
	// environment, in top-file order.
	TopStates(saltenv string) ([]string, error)
}

// CLICaller shells out to the salt-call binary. Regular calls run masterless
// (--local); the state-apply alias and top-file resolution go through the
// full client because state lookups need the master context.
type CLICaller struct {
	binary string
	debug  bool

	// Mockable function field
	runCommand func(name string, args ...string) ([]byte, []byte, error)
}

// NewCLICaller creates a caller around the given salt-call binary.
func NewCLICaller(binary string, debug bool) *CLICaller {
	return &CLICaller{
		binary: binary,
		debug:  debug,
		runCommand: func(name string, args ...string) ([]byte, []byte, error) {
			cmd := exec.Command(name, args...)

			var stdout, stderr bytes.Buffer

			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			err := cmd.Run()

			return stdout.Bytes(), stderr.Bytes(), err
		},
	}
}

// Call invokes a Salt execution-module function. The state-apply alias is
// translated into its grains.setval and state.apply sequence; everything
// else becomes one masterless salt-call invocation.
func (c *CLICaller) Call(function string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	if function == api.StateApplyAlias {
		return c.stateApply(args, kwargs)
	}

	cmdArgs := []string{"--local", "--out=json", function}
	for _, arg := range args {
		cmdArgs = append(cmdArgs, cliValue(arg))
	}

	cmdArgs = append(cmdArgs, kwargArgs(kwargs)...)

	return c.commandValue(function, cmdArgs)
}

// stateApply applies a state as test setup: custom grains are set first
// through grains.setval, then state.apply runs with the remaining keyword
// arguments (pillar data passes through).
func (c *CLICaller) stateApply(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s requires a state name as its first argument", api.StateApplyAlias)
	}

	stateName := fmt.Sprintf("%v", args[0])

	if grains, ok := kwargs["grain"].(map[string]interface{}); ok {
		keys := make([]string, 0, len(grains))
		for key := range grains {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			if _, err := c.commandValue("grains.setval", []string{"--out=json", "grains.setval", key, cliValue(grains[key])}); err != nil {
				return nil, err
			}
		}
	}

	cmdArgs := []string{"--out=json", "state.apply", stateName}

	remaining := make(map[string]interface{}, len(kwargs))
	for key, value := range kwargs {
		if key == "grain" {
			continue
		}

		remaining[key] = value
	}

	cmdArgs = append(cmdArgs, kwargArgs(remaining)...)

	return c.commandValue("state.apply", cmdArgs)
}

// ListModules returns the execution modules available on the minion.
func (c *CLICaller) ListModules() ([]string, error) {
	value, err := c.commandValue("sys.list_modules", []string{"--local", "--out=json", "sys.list_modules"})
	if err != nil {
		return nil, err
	}

	return stringSlice(value)
}

// ListFunctions returns the fully-qualified function names of a module.
func (c *CLICaller) ListFunctions(module string) ([]string, error) {
	value, err := c.commandValue("sys.list_functions", []string{"--local", "--out=json", "sys.list_functions", module})
	if err != nil {
		return nil, err
	}

	return stringSlice(value)
}

// TopStates resolves the states assigned to the minion for an environment.
func (c *CLICaller) TopStates(saltenv string) ([]string, error) {
	value, err := c.commandValue("state.show_top", []string{"--out=json", "state.show_top"})
	if err != nil {
		return nil, err
	}

	top, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected state.show_top output of type %T", value)
	}

	entries, ok := top[saltenv]
	if !ok {
		return nil, fmt.Errorf("environment %q not present in top data", saltenv)
	}

	return stringSlice(entries)
}

// commandValue runs salt-call and unwraps the {"local": ...} envelope of its
// JSON output.
func (c *CLICaller) commandValue(function string, cmdArgs []string) (interface{}, error) {
	if c.debug {
		utils.DebugPrintf("Running salt command: %s %s\n", c.binary, strings.Join(cmdArgs, " "))
	}

	stdout, stderr, err := c.runCommand(c.binary, cmdArgs...)
	if err != nil {
		return nil, commandFailure(fmt.Sprintf("salt-call %s failed", function), stderr, err)
	}

	var envelope map[string]interface{}
	if err := yaml.Unmarshal(stdout, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse salt-call %s output: %w", function, err)
	}

	value, ok := envelope["local"]
	if !ok {
		return nil, fmt.Errorf("salt-call %s output has no local envelope", function)
	}

	return value, nil
}

// cliValue renders an argument value the way salt-call expects it on the
// command line: JSON, which Salt's YAML argument parsing reconstructs with
// the original type.
func cliValue(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(data)
}

// kwargArgs renders keyword arguments as sorted key=value command-line
// arguments.
func kwargArgs(kwargs map[string]interface{}) []string {
	keys := make([]string, 0, len(kwargs))
	for key := range kwargs {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	args := make([]string, 0, len(keys))
	for _, key := range keys {
		args = append(args, fmt.Sprintf("%s=%s", key, cliValue(kwargs[key])))
	}

	return args
}

// stringSlice converts a decoded YAML/JSON list into a string slice.
func stringSlice(value interface{}) ([]string, error) {
	items, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", value)
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, fmt.Sprintf("%v", item))
	}

	return result, nil
}

// commandFailure wraps a process error with the tail of its stderr so the
// underlying salt failure stays visible.
func commandFailure(action string, stderr []byte, err error) error {
	tail := stderrTail(stderr, 5)
	if tail == "" {
		return fmt.Errorf("%s: %w", action, err)
	}

	return fmt.Errorf("%s: %w: %s", action, err, tail)
}

// stderrTail returns the last n non-empty lines of captured stderr.
func stderrTail(stderr []byte, n int) string {
	lines := strings.Split(strings.TrimSpace(string(stderr)), "\n")

	kept := make([]string, 0, n)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		kept = append(kept, strings.TrimSpace(line))
	}

	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}

	return strings.Join(kept, "; ")
}
