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
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestWriteTestFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	filePath := filepath.Join("/suite", "nested", "init.tst")
	content := "test-one:\n  assertion: assertTrue\n"

	path := WriteTestFile(t, fs, filePath, content)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	if string(data) != content {
		t.Errorf("File content mismatch. Got %q, want %q", string(data), content)
	}
}

func TestCreateTestDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	dirPath := filepath.Join("/roots", "nested", "states")

	path := CreateTestDir(t, fs, dirPath)

	exists, err := afero.DirExists(fs, path)
	if err != nil {
		t.Fatalf("Failed to stat directory: %v", err)
	}

	if !exists {
		t.Fatalf("Directory was not created at %s", path)
	}
}
