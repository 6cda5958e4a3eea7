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

// Package refresh provides the refresh subcommand for saltcheck.
package refresh

import (
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/saltcheck-contrib/saltcheck/internal/cache"
	internalcfg "github.com/saltcheck-contrib/saltcheck/internal/config"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
	"github.com/spf13/afero"
)

// refresher allows dependency injection for cache refreshes (for production and testing).
type refresher interface {
	Refresh(cfg *internalcfg.Config, saltenv string) error
}

// Mockable function
//
//nolint:gochecknoglobals // Global variables for dependency injection in tests
var newRefresherFunc = func(fs afero.Fs, debug bool) refresher {
	return cache.NewRefresher(fs, debug)
}

// Cmd represents the refresh command, which stages file_roots and
// repositories into the minion file cache.
type Cmd struct {
	Saltenv string `help:"Environment to populate in the cache."`

	Config *internalcfg.Config `kong:"-"`
	Debug  bool                `kong:"-"`

	fs afero.Fs
}

// AfterApply sets the filesystem to the OS filesystem.
func (c *Cmd) AfterApply() error {
	c.fs = afero.NewOsFs()
	return nil
}

// Run executes the refresh command.
func (c *Cmd) Run(_ *kong.Context) error {
	saltenv := c.Saltenv
	if saltenv == "" {
		saltenv = c.Config.Saltenv
	}

	if err := newRefresherFunc(c.fs, c.Debug).Refresh(c.Config, saltenv); err != nil {
		return err
	}

	utils.OutputPrintf("Cache refreshed for environment %s at %s\n", saltenv, filepath.Join(c.Config.Cachedir, "files", saltenv))

	return nil
}
