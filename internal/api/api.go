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

// Package api provides the type definitions for test files and helper
// methods that inspect a parsed test definition.
package api

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// StateApplyAlias is the reserved operation name meaning "apply a named
// state as setup/teardown". It bypasses normal assertion requirements and
// always runs under assertNotEmpty.
const StateApplyAlias = "saltcheck.state_apply"

// TestSpec represents a single test definition from a test file.
type TestSpec struct {
	ModuleAndFunction string                 `json:"module_and_function,omitempty" yaml:"module_and_function,omitempty" jsonschema:"description=Execution module function to call as <module>.<function>"`
	Args              []interface{}          `json:"args,omitempty"              yaml:"args,omitempty"              jsonschema:"description=Positional arguments for the function"`
	Kwargs            map[string]interface{} `json:"kwargs,omitempty"            yaml:"kwargs,omitempty"            jsonschema:"description=Keyword arguments for the function"`
	Assertion         string                 `json:"assertion,omitempty"         yaml:"assertion,omitempty"         jsonschema:"enum=assertEqual,enum=assertNotEqual,enum=assertTrue,enum=assertFalse,enum=assertIn,enum=assertNotIn,enum=assertGreater,enum=assertGreaterEqual,enum=assertLess,enum=assertLessEqual,enum=assertEmpty,enum=assertNotEmpty"`
	ExpectedReturn    interface{}            `json:"expected-return,omitempty"   yaml:"expected-return,omitempty"   jsonschema:"description=Value the function call is expected to return"`
	AssertionSection  string                 `json:"assertion_section,omitempty" yaml:"assertion_section,omitempty" jsonschema:"description=Key to drill into a dictionary-typed return before asserting"`
	PrintResult       *bool                  `json:"print_result,omitempty"      yaml:"print_result,omitempty"      jsonschema:"description=Echo expected and actual values in failure messages (default true)"`
	PillarData        map[string]interface{} `json:"pillar-data,omitempty"       yaml:"pillar-data,omitempty"       jsonschema:"description=Pillar values injected into the call"`
	GrainData         map[string]interface{} `json:"grain-data,omitempty"        yaml:"grain-data,omitempty"        jsonschema:"description=Grain values injected into the call"`
	Skip              bool                   `json:"skip,omitempty"              yaml:"skip,omitempty"              jsonschema:"description=Record the test as skipped without running it"`

	// ExpectedReturnSet records whether the expected-return key appeared in
	// the source document at all, independent of its value. The validator
	// scores key presence and value separately.
	ExpectedReturnSet bool `json:"-" yaml:"-"`
}

// UnmarshalYAML implements yaml.Unmarshaler so that the presence of the
// expected-return key survives parsing even when its value is null.
func (t *TestSpec) UnmarshalYAML(node *yaml.Node) error {
	type plain TestSpec

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*t = TestSpec(p)

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "expected-return" {
			t.ExpectedReturnSet = true
			break
		}
	}

	return nil
}

// HasExpectedReturn returns true if the expected-return key was present in
// the test definition, even with a null value.
func (t *TestSpec) HasExpectedReturn() bool {
	return t.ExpectedReturnSet
}

// HasPillarData returns true if any pillar values are set.
func (t *TestSpec) HasPillarData() bool {
	return len(t.PillarData) > 0
}

// HasGrainData returns true if any grain values are set.
func (t *TestSpec) HasGrainData() bool {
	return len(t.GrainData) > 0
}

// IsStateApply returns true if the operation is the reserved state-apply alias.
func (t *TestSpec) IsStateApply() bool {
	return t.ModuleAndFunction == StateApplyAlias
}

// ShouldPrintResult returns whether failure messages should echo the
// expected and actual values. Unset means true.
func (t *TestSpec) ShouldPrintResult() bool {
	return t.PrintResult == nil || *t.PrintResult
}

// SplitModuleFunction splits module_and_function at the first dot.
// ok is false when there is no dot to split on.
func (t *TestSpec) SplitModuleFunction() (module, function string, ok bool) {
	return strings.Cut(t.ModuleAndFunction, ".")
}

// Suite is an ordered mapping of test name to test definition. Order is the
// order of first appearance; overwriting a name keeps its original position.
type Suite struct {
	tests *orderedmap.OrderedMap[string, *TestSpec]
}

// NewSuite returns an empty Suite.
func NewSuite() *Suite {
	return &Suite{tests: orderedmap.New[string, *TestSpec]()}
}

// UnmarshalYAML implements yaml.Unmarshaler for a whole test file.
func (s *Suite) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("test file must be a mapping of test names, got %s", nodeKindName(node.Kind))
	}

	s.tests = orderedmap.New[string, *TestSpec]()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		spec := &TestSpec{}

		if err := node.Content[i+1].Decode(spec); err != nil {
			return fmt.Errorf("test %q: %w", keyNode.Value, err)
		}

		s.tests.Set(keyNode.Value, spec)
	}

	return nil
}

// Set inserts or overwrites a test definition. An overwritten name keeps its
// original position in the iteration order.
func (s *Suite) Set(name string, spec *TestSpec) {
	if s.tests == nil {
		s.tests = orderedmap.New[string, *TestSpec]()
	}

	s.tests.Set(name, spec)
}

// Get returns the definition for a test name.
func (s *Suite) Get(name string) (*TestSpec, bool) {
	if s.tests == nil {
		return nil, false
	}

	return s.tests.Get(name)
}

// Len returns the number of test definitions.
func (s *Suite) Len() int {
	if s.tests == nil {
		return 0
	}

	return s.tests.Len()
}

// Oldest returns the first pair in insertion order, for iteration:
//
//	for pair := suite.Oldest(); pair != nil; pair = pair.Next() { ... }
func (s *Suite) Oldest() *orderedmap.Pair[string, *TestSpec] {
	if s.tests == nil {
		return nil
	}

	return s.tests.Oldest()
}

// Names returns the test names in insertion order.
func (s *Suite) Names() []string {
	names := make([]string, 0, s.Len())
	for pair := s.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Merge folds other into s, later keys overwriting earlier ones in place.
func (s *Suite) Merge(other *Suite) {
	if other == nil {
		return
	}

	for pair := other.Oldest(); pair != nil; pair = pair.Next() {
		s.Set(pair.Key, pair.Value)
	}
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}

	return "unknown"
}
