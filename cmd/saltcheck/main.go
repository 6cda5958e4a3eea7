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

// Package main is the main package for the saltcheck tool.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/alecthomas/kong"
	checkCmd "github.com/saltcheck-contrib/saltcheck/cmd/saltcheck/check"
	"github.com/saltcheck-contrib/saltcheck/cmd/saltcheck/highstate"
	"github.com/saltcheck-contrib/saltcheck/cmd/saltcheck/refresh"
	"github.com/saltcheck-contrib/saltcheck/cmd/saltcheck/run"
	"github.com/saltcheck-contrib/saltcheck/cmd/saltcheck/schema"
	"github.com/saltcheck-contrib/saltcheck/cmd/saltcheck/single"
	versionCmd "github.com/saltcheck-contrib/saltcheck/cmd/saltcheck/version"
	internalConfig "github.com/saltcheck-contrib/saltcheck/internal/config"
	"github.com/saltcheck-contrib/saltcheck/internal/version"
	"github.com/spf13/afero"
)

// CLI represents the command-line interface.
type CLI struct {
	ConfigFile string           `default:"~/.config/saltcheck.yaml" help:"Path to saltcheck config file" short:"c" type:"path"`
	Debug      bool             `help:"Print debug output during runs"`
	Version    kong.VersionFlag `help:"Print the version of saltcheck"`

	Run        run.Cmd        `cmd:"" help:"Run the tests of one or more states"`
	Highstate  highstate.Cmd  `cmd:"" help:"Run the tests of every state assigned through the top file"`
	Single     single.Cmd     `cmd:"" help:"Run one inline test definition"`
	Refresh    refresh.Cmd    `cmd:"" help:"Stage file_roots and repositories into the cache"`
	Check      checkCmd.Cmd   `cmd:"" help:"Check dependencies and configuration"`
	Schema     schema.Cmd     `cmd:"" help:"Print the JSON Schema for test definitions"`
	VersionCmd versionCmd.Cmd `cmd:"" help:"Print the version of saltcheck" name:"version"`
}

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("saltcheck"),
		kong.Description("An assertion-based test runner for Salt states."),
		kong.UsageOnError(),
		kong.Vars{"version": version.GetVersion()},
	)

	configPath := cli.ConfigFile
	fs := afero.NewOsFs()

	cfg, err := internalConfig.Load(fs, configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			configPath = ""

			cfg, err = internalConfig.Fallback()
			if err != nil {
				log.Fatalf("%v", err)
			}
		} else {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	// Set config in the command structs
	cli.Run.Config = cfg
	cli.Run.Debug = cli.Debug
	cli.Highstate.Config = cfg
	cli.Highstate.Debug = cli.Debug
	cli.Single.Config = cfg
	cli.Single.Debug = cli.Debug
	cli.Refresh.Config = cfg
	cli.Refresh.Debug = cli.Debug
	cli.Check.Config = cfg
	cli.Check.ConfigPath = configPath

	// Run the selected command
	err = ctx.Run()
	if err != nil {
		log.Fatalf("%v", err)
	}
}
