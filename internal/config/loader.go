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

package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/saltcheck-contrib/saltcheck/internal/utils"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Config represents the main configuration structure.
type Config struct {
	Dependencies    map[string]string   `json:"dependencies"`
	Saltenv         string              `json:"saltenv"`
	Cachedir        string              `json:"cachedir"`
	FileRoots       map[string][]string `json:"file_roots"`
	Repositories    map[string]string   `json:"repositories"`
	Extension       string              `json:"extension"`
	Renderer        string              `json:"renderer"`
	AutoUpdateCache *bool               `json:"auto_update_cache"`
}

const (
	// SaltCallCmd is the default name of the salt-call command.
	SaltCallCmd = "salt-call"

	// DefaultSaltenv is the environment searched when none is configured.
	DefaultSaltenv = "base"
	// DefaultCachedir is the minion cache directory test files are staged in.
	DefaultCachedir = "/var/cache/salt/minion"
	// DefaultExtension is the filename extension of test files.
	DefaultExtension = ".tst"

	// RendererCommand renders test files through salt-call slsutil.renderer.
	RendererCommand = "command"
	// RendererTemplate renders test files with the built-in template engine.
	RendererTemplate = "template"
)

// Load loads and validates a saltcheck configuration file.
func Load(fs afero.Fs, configPath string) (*Config, error) {
	if !strings.HasSuffix(configPath, ".yaml") && !strings.HasSuffix(configPath, ".yml") {
		return nil, fmt.Errorf("Config file must have .yaml or .yml extension")
	}

	expandedPath, err := utils.ExpandTildeAbs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := afero.ReadFile(fs, expandedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, os.ErrNotExist
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Validate the YAML before unmarshalling
	if err := utils.ValidateYAML(data); err != nil {
		return nil, fmt.Errorf("invalid YAML in config file %s: %w", data, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	cfg.fillDefaults()

	if cfg.Renderer != RendererCommand && cfg.Renderer != RendererTemplate {
		return nil, fmt.Errorf("unknown renderer %q, must be %q or %q", cfg.Renderer, RendererCommand, RendererTemplate)
	}

	return &cfg, nil
}

// Fallback returns a config that uses only binaries from PATH.
func Fallback() (*Config, error) {
	mandatoryDeps := []string{SaltCallCmd}

	foundDeps := make(map[string]string)

	var missingMandatoryDeps []string

	// Check mandatory dependencies
	for _, dep := range mandatoryDeps {
		if _, err := exec.LookPath(dep); err != nil {
			missingMandatoryDeps = append(missingMandatoryDeps, dep)
		} else {
			foundDeps[dep] = dep
		}
	}

	// Fail only if mandatory dependencies are missing
	if len(missingMandatoryDeps) > 0 {
		return nil, fmt.Errorf("missing required dependencies from PATH (%s)", strings.Join(missingMandatoryDeps, ", "))
	}

	cfg := &Config{Dependencies: foundDeps}
	cfg.fillDefaults()

	return cfg, nil
}

func (c *Config) fillDefaults() {
	if c.Dependencies == nil {
		c.Dependencies = make(map[string]string)
	}

	if c.FileRoots == nil {
		c.FileRoots = make(map[string][]string)
	}

	if c.Repositories == nil {
		c.Repositories = make(map[string]string)
	}

	if c.Saltenv == "" {
		c.Saltenv = DefaultSaltenv
	}

	if c.Cachedir == "" {
		c.Cachedir = DefaultCachedir
	}

	if c.Extension == "" {
		c.Extension = DefaultExtension
	}

	if c.Renderer == "" {
		c.Renderer = RendererCommand
	}
}

// AutoUpdate reports whether the cache should be refreshed before a run.
// The refresh is on unless the config switches it off.
func (c *Config) AutoUpdate() bool {
	return c.AutoUpdateCache == nil || *c.AutoUpdateCache
}

// SaltCall returns the configured salt-call invocation.
func (c *Config) SaltCall() string {
	if cmd, ok := c.Dependencies[SaltCallCmd]; ok && cmd != "" {
		return cmd
	}

	return SaltCallCmd
}

// SearchRoots returns the directories searched for test files in an
// environment. Test files are discovered in the staged cache, not in
// file_roots directly.
func (c *Config) SearchRoots(saltenv string) []string {
	if saltenv == "" {
		saltenv = c.Saltenv
	}

	return []string{filepath.Join(c.Cachedir, "files", saltenv)}
}
