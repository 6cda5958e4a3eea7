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

// Package check provides the check subcommand for the saltcheck tool.
package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	internalcfg "github.com/saltcheck-contrib/saltcheck/internal/config"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
	"github.com/spf13/afero"
)

// Cmd represents the check subcommand.
type Cmd struct {
	Config     *internalcfg.Config `kong:"-"`
	ConfigPath string              `kong:"-"`
	fs         afero.Fs
}

// AfterApply implements kong.AfterApply.
func (c *Cmd) AfterApply() error {
	c.fs = afero.NewOsFs()
	return nil
}

// Run executes the check subcommand.
func (c *Cmd) Run(_ *kong.Context) error {
	// combine all error messages
	var allErrors []string

	if c.ConfigPath == "" {
		utils.OutputPrintf("No configuration file provided, using detected dependencies\n")
	} else {
		utils.OutputPrintf("Configuration file: %s\n\n", c.ConfigPath)
	}

	// Always check dependencies, file roots, and repositories
	if err := c.Config.CheckDependencies(); err != nil {
		allErrors = append(allErrors, err.Error())
	}

	if err := c.Config.CheckRoots(c.fs); err != nil {
		allErrors = append(allErrors, err.Error())
	}

	if err := c.Config.CheckRepositories(); err != nil {
		allErrors = append(allErrors, err.Error())
	}

	if len(allErrors) > 0 {
		return fmt.Errorf("configuration check failed:\n%s", strings.Join(allErrors, "\n"))
	}

	utils.OutputPrintf("Configuration check successful\n")

	utils.OutputPrintf("\nDependencies:\n")

	for name, value := range c.Config.Dependencies {
		utils.OutputPrintf("- %s: %s\n", name, value)
	}

	utils.OutputPrintf("\nSettings:\n")
	utils.OutputPrintf("- saltenv: %s\n", c.Config.Saltenv)
	utils.OutputPrintf("- cachedir: %s\n", c.Config.Cachedir)
	utils.OutputPrintf("- extension: %s\n", c.Config.Extension)
	utils.OutputPrintf("- renderer: %s\n", c.Config.Renderer)
	utils.OutputPrintf("- auto_update_cache: %t\n", c.Config.AutoUpdate())

	if len(c.Config.FileRoots) > 0 {
		utils.OutputPrintf("\nFile roots:\n")

		envs := make([]string, 0, len(c.Config.FileRoots))
		for env := range c.Config.FileRoots {
			envs = append(envs, env)
		}

		sort.Strings(envs)

		for _, env := range envs {
			utils.OutputPrintf("- %s: %s\n", env, strings.Join(c.Config.FileRoots[env], ", "))
		}
	}

	if len(c.Config.Repositories) > 0 {
		utils.OutputPrintf("\nRepositories:\n")

		for name, path := range c.Config.Repositories {
			utils.OutputPrintf("- %s: %s\n", name, path)
		}
	}

	return nil
}
