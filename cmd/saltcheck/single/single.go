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

// Package single provides the single subcommand for saltcheck.
package single

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/saltcheck-contrib/saltcheck/internal/api"
	internalcfg "github.com/saltcheck-contrib/saltcheck/internal/config"
	"github.com/saltcheck-contrib/saltcheck/internal/engine"
	"github.com/saltcheck-contrib/saltcheck/internal/salt"
	"github.com/saltcheck-contrib/saltcheck/internal/testexecution/processor"
	testexecutionUtils "github.com/saltcheck-contrib/saltcheck/internal/testexecution/utils"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// singleRunner allows dependency injection for test runs (for production and testing).
type singleRunner interface {
	RunSingleTest(name string, spec *api.TestSpec) (engine.TestResult, error)
}

// Mockable function
//
//nolint:gochecknoglobals // Global variables for dependency injection in tests
var newProcessorFunc = func(fs afero.Fs, cfg *internalcfg.Config, options *testexecutionUtils.Options) singleRunner {
	caller := salt.NewCLICaller(cfg.SaltCall(), options.Debug)
	return processor.NewProcessor(fs, caller, newRenderer(fs, cfg, options), options)
}

// Cmd represents the single command, which runs one inline test definition
// without touching any test files.
type Cmd struct {
	Test string `help:"Inline test definition in YAML or JSON." required:""`
	Name string `default:"single"                               help:"Name to report the test result under."`

	Config *internalcfg.Config `kong:"-"`
	Debug  bool                `kong:"-"`

	fs afero.Fs
}

// AfterApply sets the filesystem to the OS filesystem.
func (c *Cmd) AfterApply() error {
	c.fs = afero.NewOsFs()
	return nil
}

// Run executes the single command. Invocation failures are already carried
// by the failed result, so only the result decides the exit status.
func (c *Cmd) Run(_ *kong.Context) error {
	spec, err := parseDefinition(c.Test)
	if err != nil {
		return err
	}

	p := newProcessorFunc(c.fs, c.Config, c.newOptions(c.Config))

	result, _ := p.RunSingleTest(c.Name, spec)
	result.Print(os.Stdout, c.Name)

	if result.Failed() {
		return errors.New("test failed")
	}

	return nil
}

func (c *Cmd) newOptions(cfg *internalcfg.Config) *testexecutionUtils.Options {
	return &testexecutionUtils.Options{
		Saltenv:   cfg.Saltenv,
		Extension: cfg.Extension,
		Debug:     c.Debug,
	}
}

func newRenderer(fs afero.Fs, cfg *internalcfg.Config, options *testexecutionUtils.Options) salt.Renderer {
	if cfg.Renderer == internalcfg.RendererTemplate {
		return salt.NewTemplateRenderer(fs, options.Saltenv)
	}

	return salt.NewCommandRenderer(cfg.SaltCall(), options.Debug)
}

func parseDefinition(definition string) (*api.TestSpec, error) {
	spec := &api.TestSpec{}
	if err := yaml.Unmarshal([]byte(definition), spec); err != nil {
		return nil, fmt.Errorf("failed to parse test definition: %w", err)
	}

	return spec, nil
}
