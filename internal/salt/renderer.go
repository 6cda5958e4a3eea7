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

package salt

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/gonvenience/ytbx"
	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Renderer turns a test file into an ordered suite of test definitions.
// Rendering may expand templating before the structural parse; callers treat
// the output as already-structured data.
type Renderer interface {
	Render(path string) (*api.Suite, error)
}

// CommandRenderer renders test files through Salt's own rendering pipeline
// (slsutil.renderer via salt-call), so jinja constructs behave exactly as
// they do in states.
type CommandRenderer struct {
	binary string
	debug  bool

	// Mockable function field
	runCommand func(name string, args ...string) ([]byte, []byte, error)
}

// NewCommandRenderer creates a renderer around the given salt-call binary.
func NewCommandRenderer(binary string, debug bool) *CommandRenderer {
	return &CommandRenderer{
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

// Render renders one test file and parses the result into an ordered suite.
// The document is parsed as ordered nodes so the file's test order survives
// the JSON round trip.
func (r *CommandRenderer) Render(path string) (*api.Suite, error) {
	if r.debug {
		utils.DebugPrintf("Rendering test file: %s\n", path)
	}

	stdout, stderr, err := r.runCommand(r.binary, "--local", "--out=json", "slsutil.renderer", path)
	if err != nil {
		return nil, commandFailure(fmt.Sprintf("failed to render %s", path), stderr, err)
	}

	documents, err := ytbx.LoadDocuments(stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse render output for %s: %w", path, err)
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("render output for %s is empty", path)
	}

	var envelope struct {
		Local *api.Suite `yaml:"local"`
	}

	if err := documents[0].Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode rendered tests from %s: %w", path, err)
	}

	if envelope.Local == nil {
		return api.NewSuite(), nil
	}

	return envelope.Local, nil
}

// templateContext provides the variables available in test file templates.
type templateContext struct {
	Env    string
	Pillar map[string]interface{}
	Grains map[string]interface{}
}

// TemplateRenderer renders test files with Go's text/template before the
// structural parse. It serves masterless setups where no salt-call binary is
// available; template lookups that miss fail the render rather than
// degrading silently.
type TemplateRenderer struct {
	fs      afero.Fs
	context *templateContext
}

// NewTemplateRenderer creates a built-in renderer for an environment.
func NewTemplateRenderer(fs afero.Fs, saltenv string) *TemplateRenderer {
	return &TemplateRenderer{
		fs: fs,
		context: &templateContext{
			Env:    saltenv,
			Pillar: map[string]interface{}{},
			Grains: map[string]interface{}{},
		},
	}
}

// Render reads, templates and parses one test file.
func (r *TemplateRenderer) Render(path string) (*api.Suite, error) {
	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test file %s: %w", path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, r.context); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", path, err)
	}

	suite := api.NewSuite()
	if err := yaml.Unmarshal([]byte(buf.String()), suite); err != nil {
		return nil, fmt.Errorf("failed to parse rendered tests from %s: %w", path, err)
	}

	return suite, nil
}
