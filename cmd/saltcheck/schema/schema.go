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

// Package schema provides the schema subcommand for saltcheck.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/invopop/jsonschema"
	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
)

// Cmd represents the schema command, which prints the JSON Schema of a
// single test definition. Editors and CI linters can point at the output
// to validate test files before a run.
type Cmd struct{}

// Run executes the schema command.
func (c *Cmd) Run(_ *kong.Context) error {
	reflector := jsonschema.Reflector{ExpandedStruct: true}

	data, err := json.MarshalIndent(reflector.Reflect(&api.TestSpec{}), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render schema: %w", err)
	}

	utils.OutputPrintf("%s\n", data)

	return nil
}
