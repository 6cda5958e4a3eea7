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
	"errors"
	"testing"

	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing
)

func TestValidator_IsValid(t *testing.T) {
	tests := []struct {
		name string
		spec *api.TestSpec
		want bool
	}{
		{
			name: "full definition with expected return",
			spec: &api.TestSpec{
				ModuleAndFunction: "test.echo",
				Args:              []interface{}{"hi"},
				Assertion:         "assertEqual",
				ExpectedReturn:    "hi",
				ExpectedReturnSet: true,
			},
			want: true,
		},
		{
			name: "missing expected return",
			spec: &api.TestSpec{
				ModuleAndFunction: "test.echo",
				Assertion:         "assertEqual",
			},
			want: false,
		},
		{
			name: "null expected return scores only key presence",
			spec: &api.TestSpec{
				ModuleAndFunction: "test.echo",
				Assertion:         "assertEqual",
				ExpectedReturnSet: true,
			},
			want: false,
		},
		{
			name: "emptiness assertion needs no expected return",
			spec: &api.TestSpec{
				ModuleAndFunction: "test.ping",
				Assertion:         "assertTrue",
			},
			want: true,
		},
		{
			name: "unknown module",
			spec: &api.TestSpec{
				ModuleAndFunction: "nosuch.echo",
				Assertion:         "assertTrue",
			},
			want: false,
		},
		{
			name: "unknown function",
			spec: &api.TestSpec{
				ModuleAndFunction: "test.nope",
				Assertion:         "assertTrue",
			},
			want: false,
		},
		{
			name: "operation name without a dot",
			spec: &api.TestSpec{
				ModuleAndFunction: "testecho",
				Assertion:         "assertTrue",
			},
			want: false,
		},
		{
			name: "unrecognized assertion",
			spec: &api.TestSpec{
				ModuleAndFunction: "test.echo",
				Assertion:         "assertAlmostEqual",
				ExpectedReturn:    "hi",
				ExpectedReturnSet: true,
			},
			want: false,
		},
		{
			name: "skip validates anything",
			spec: &api.TestSpec{Skip: true},
			want: true,
		},
		{
			name: "state apply needs only name and module",
			spec: &api.TestSpec{
				ModuleAndFunction: api.StateApplyAlias,
				Args:              []interface{}{"app"},
			},
			want: true,
		},
		{
			name: "empty definition",
			spec: &api.TestSpec{},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			validator := NewValidator(newStubCaller(), false)
			assert.Equal(t, tc.want, validator.IsValid(tc.name, tc.spec))
		})
	}
}

func TestValidator_MemoizesLookups(t *testing.T) {
	caller := newStubCaller()
	validator := NewValidator(caller, false)

	spec := &api.TestSpec{ModuleAndFunction: "test.ping", Assertion: "assertTrue"}

	for range 3 {
		assert.True(t, validator.IsValid("ping", spec))
	}

	assert.Equal(t, 1, caller.listModulesCalls)
	assert.Equal(t, 1, caller.listFunctionsCalls)
}

func TestValidator_Reset(t *testing.T) {
	caller := newStubCaller()
	validator := NewValidator(caller, false)

	spec := &api.TestSpec{ModuleAndFunction: "test.ping", Assertion: "assertTrue"}
	assert.True(t, validator.IsValid("ping", spec))
	assert.Equal(t, 1, caller.listModulesCalls)

	validator.Reset()

	assert.True(t, validator.IsValid("ping", spec))
	assert.Equal(t, 2, caller.listModulesCalls)
	assert.Equal(t, 2, caller.listFunctionsCalls)
}

func TestValidator_LookupFailures(t *testing.T) {
	t.Run("module listing failure fails closed", func(t *testing.T) {
		caller := newStubCaller()
		caller.listModulesErr = errors.New("minion unreachable")
		caller.listFunctionsErr = errors.New("minion unreachable")

		validator := NewValidator(caller, false)
		assert.False(t, validator.IsValid("ping", &api.TestSpec{
			ModuleAndFunction: "test.ping",
			Assertion:         "assertTrue",
		}))
	})

	t.Run("function listing failure fails closed", func(t *testing.T) {
		caller := newStubCaller()
		caller.listFunctionsErr = errors.New("module crashed")

		validator := NewValidator(caller, false)
		assert.False(t, validator.IsValid("ping", &api.TestSpec{
			ModuleAndFunction: "test.ping",
			Assertion:         "assertTrue",
		}))
	})

	t.Run("failures are not cached", func(t *testing.T) {
		caller := newStubCaller()
		caller.listModulesErr = errors.New("transient")

		validator := NewValidator(caller, false)
		spec := &api.TestSpec{ModuleAndFunction: "test.ping", Assertion: "assertTrue"}
		assert.False(t, validator.IsValid("ping", spec))

		caller.listModulesErr = nil
		assert.True(t, validator.IsValid("ping", spec))
	})

	t.Run("no lookups without an operation name", func(t *testing.T) {
		caller := newStubCaller()
		validator := NewValidator(caller, false)

		validator.IsValid("nameless", &api.TestSpec{Assertion: "assertTrue"})
		assert.Equal(t, 0, caller.listModulesCalls)
		assert.Equal(t, 0, caller.listFunctionsCalls)
	})
}
