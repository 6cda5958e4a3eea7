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

// Package utils from internal/unittests provides helper functions for unit tests.
package utils

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// WriteTestFile writes content to a file on fs, creating parent directories
// as needed, and returns the path. Works with both MemMapFs and OsFs.
func WriteTestFile(t *testing.T, fs afero.Fs, path, content string) string {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory %s: %v", filepath.Dir(path), err)
	}

	if err := afero.WriteFile(fs, path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}

	return path
}

// CreateTestDir creates a directory at exactly the given path on fs, including
// parents. Unlike t.TempDir() the location is caller-chosen and not cleaned up
// automatically.
// Example:
//
//	repoPath := testutils.CreateTestDir(t, fs, filepath.Join(tmpDir, "states"))
func CreateTestDir(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	if err := fs.MkdirAll(path, 0o750); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}
