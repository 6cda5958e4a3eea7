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

// Package cache stages state trees into the minion file cache. Test files
// are discovered in cachedir/files/<saltenv>, the same layout cp.cache_master
// produces, so every configured source gets copied there before a run.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	cp "github.com/otiai10/copy"
	"github.com/saltcheck-contrib/saltcheck/internal/config"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
	"github.com/spf13/afero"
)

// Refresher copies file_roots and repository worktrees into the cache.
type Refresher struct {
	fs    afero.Fs
	debug bool

	// Mockable function field
	copy func(src, dest string, opts ...cp.Options) error
}

// NewRefresher creates a refresher for the given filesystem.
func NewRefresher(fs afero.Fs, debug bool) *Refresher {
	return &Refresher{
		fs:    fs,
		debug: debug,
		copy:  cp.Copy,
	}
}

// Refresh populates cachedir/files/<saltenv> from the file_roots configured
// for that environment and from every repository worktree. Sources are
// overlaid in file_roots order, repositories last in name order; later
// sources overwrite earlier ones, matching fileserver backend precedence.
func (r *Refresher) Refresh(cfg *config.Config, saltenv string) error {
	if saltenv == "" {
		saltenv = cfg.Saltenv
	}

	target := filepath.Join(cfg.Cachedir, "files", saltenv)
	if err := r.fs.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", target, err)
	}

	if r.debug {
		utils.DebugPrintf("Updating cache for environment: %s\n", saltenv)
	}

	for _, root := range cfg.FileRoots[saltenv] {
		if err := r.stage(root, target); err != nil {
			return err
		}
	}

	repoNames := make([]string, 0, len(cfg.Repositories))
	for name := range cfg.Repositories {
		repoNames = append(repoNames, name)
	}

	sort.Strings(repoNames)

	for _, name := range repoNames {
		if err := r.stage(cfg.Repositories[name], target); err != nil {
			return err
		}
	}

	return nil
}

// stage copies the contents of one source directory into the cache target.
// Git metadata is not part of the served file tree and is skipped.
func (r *Refresher) stage(source, target string) error {
	expanded, err := utils.ExpandTildeAbs(source)
	if err != nil {
		return fmt.Errorf("failed to expand source path %s: %w", source, err)
	}

	info, err := r.fs.Stat(expanded)
	if err != nil {
		return fmt.Errorf("source directory %s does not exist", source)
	}

	if !info.IsDir() {
		return fmt.Errorf("source path %s is not a directory", source)
	}

	if r.debug {
		utils.DebugPrintf("Caching %s into %s\n", expanded, target)
	}

	opts := cp.Options{
		Skip: func(_ os.FileInfo, src, _ string) (bool, error) {
			return filepath.Base(src) == ".git", nil
		},
	}

	if err := r.copy(expanded, target, opts); err != nil {
		return fmt.Errorf("failed to cache %s: %w", expanded, err)
	}

	return nil
}
