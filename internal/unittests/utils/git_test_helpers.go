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

package utils

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// GitRepoOptions defines options for creating a test git repository.
type GitRepoOptions struct {
	// Path to create the repository at (required)
	Path string

	// RemoteURL is the URL to use for the remote; if empty no remote is added
	RemoteURL string

	// RemoteName is the name to use for the remote (defaults to "origin")
	RemoteName string
}

// CreateGitRepo initializes a git repository for repository-checker tests.
func CreateGitRepo(t *testing.T, opts GitRepoOptions) {
	t.Helper()

	if opts.Path == "" {
		t.Fatalf("GitRepoOptions.Path is required")
	}

	if opts.RemoteName == "" {
		opts.RemoteName = "origin"
	}

	repo, err := git.PlainInit(opts.Path, false)
	if err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	if opts.RemoteURL != "" {
		_, err = repo.CreateRemote(&config.RemoteConfig{
			Name: opts.RemoteName,
			URLs: []string{opts.RemoteURL},
		})
		if err != nil {
			t.Fatalf("Failed to add remote: %v", err)
		}
	}
}
