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

// Package highstate provides the highstate subcommand for saltcheck.
package highstate

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"
	"github.com/saltcheck-contrib/saltcheck/internal/cache"
	internalcfg "github.com/saltcheck-contrib/saltcheck/internal/config"
	"github.com/saltcheck-contrib/saltcheck/internal/engine"
	"github.com/saltcheck-contrib/saltcheck/internal/salt"
	"github.com/saltcheck-contrib/saltcheck/internal/testexecution/processor"
	testexecutionUtils "github.com/saltcheck-contrib/saltcheck/internal/testexecution/utils"
	"github.com/spf13/afero"
)

// highstateRunner allows dependency injection for test runs (for production and testing).
type highstateRunner interface {
	RunHighstateTests() (*engine.RunReport, error)
}

// refresher allows dependency injection for cache refreshes (for production and testing).
type refresher interface {
	Refresh(cfg *internalcfg.Config, saltenv string) error
}

// Mockable functions
//
//nolint:gochecknoglobals // Global variables for dependency injection in tests
var (
	newProcessorFunc = func(fs afero.Fs, cfg *internalcfg.Config, options *testexecutionUtils.Options) highstateRunner {
		caller := salt.NewCLICaller(cfg.SaltCall(), options.Debug)
		return processor.NewProcessor(fs, caller, newRenderer(fs, cfg, options), options)
	}
	newRefresherFunc = func(fs afero.Fs, debug bool) refresher {
		return cache.NewRefresher(fs, debug)
	}
)

// Cmd represents the highstate command, which runs the tests of every
// state assigned to the minion through the top file.
type Cmd struct {
	CheckAll  bool   `help:"Run every test file in each state's test directory."   name:"check-all"`
	Saltenv   string `help:"Environment to search for tests."`
	OnlyFails bool   `help:"Print only failing tests."                             name:"only-fails"`

	Config *internalcfg.Config `kong:"-"`
	Debug  bool                `kong:"-"`

	fs afero.Fs
}

// AfterApply sets the filesystem to the OS filesystem.
func (c *Cmd) AfterApply() error {
	c.fs = afero.NewOsFs()
	return nil
}

// Run executes the highstate command.
func (c *Cmd) Run(_ *kong.Context) error {
	options := c.newOptions(c.Config)

	if c.Config.AutoUpdate() {
		if err := newRefresherFunc(c.fs, c.Debug).Refresh(c.Config, options.Saltenv); err != nil {
			return err
		}
	}

	p := newProcessorFunc(c.fs, c.Config, options)

	report, err := p.RunHighstateTests()
	if err != nil {
		return err
	}

	report.Print(os.Stdout, c.OnlyFails)

	if report.HasFailures() {
		return errors.New("test run completed with failures")
	}

	return nil
}

func (c *Cmd) newOptions(cfg *internalcfg.Config) *testexecutionUtils.Options {
	saltenv := c.Saltenv
	if saltenv == "" {
		saltenv = cfg.Saltenv
	}

	return &testexecutionUtils.Options{
		Saltenv:     saltenv,
		Extension:   cfg.Extension,
		SearchRoots: cfg.SearchRoots(saltenv),
		CheckAll:    c.CheckAll,
		OnlyFails:   c.OnlyFails,
		Debug:       c.Debug,
	}
}

func newRenderer(fs afero.Fs, cfg *internalcfg.Config, options *testexecutionUtils.Options) salt.Renderer {
	if cfg.Renderer == internalcfg.RendererTemplate {
		return salt.NewTemplateRenderer(fs, options.Saltenv)
	}

	return salt.NewCommandRenderer(cfg.SaltCall(), options.Debug)
}
