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

// Package processor provides test file discovery, suite loading, and the
// orchestration of test runs across one or more states.
package processor

import (
	"path/filepath"
	"strings"

	testexecutionUtils "github.com/saltcheck-contrib/saltcheck/internal/testexecution/utils"
	"github.com/saltcheck-contrib/saltcheck/internal/utils"
	"github.com/spf13/afero"
)

// testDirName is the directory inside a state tree that holds its test files.
const testDirName = "saltcheck-tests"

// discoverTestFiles finds the test files of one state across the search
// roots. Without check-all, every root contributes its init test and its
// named test, in that order. With check-all, the first root that contains
// the state's parent directory wins and its whole test tree is gathered,
// even when that tree turns out to be empty.
func discoverTestFiles(fs afero.Fs, state string, options *testexecutionUtils.Options) []string {
	prefix, leaf := testexecutionUtils.SplitStateName(state)

	var files []string

	for _, root := range options.SearchRoots {
		base := testexecutionUtils.StateBaseDir(root, prefix)
		if !isDir(fs, base) {
			if options.Debug {
				utils.DebugPrintf("Skipping search path %s because it is not a directory\n", base)
			}

			continue
		}

		if options.CheckAll {
			return gatherTestFiles(fs, filepath.Join(base, leaf), options)
		}

		initFile := filepath.Join(base, leaf, testDirName, "init"+options.Extension)
		if isFile(fs, initFile) {
			if options.Debug {
				utils.DebugPrintf("Found init test file %s\n", initFile)
			}

			files = append(files, initFile)
		}

		namedFile := filepath.Join(base, testDirName, leaf+options.Extension)
		if isFile(fs, namedFile) {
			if options.Debug {
				utils.DebugPrintf("Found named test file %s\n", namedFile)
			}

			files = append(files, namedFile)
		}
	}

	return files
}

// gatherTestFiles collects every test file under a state directory's test
// tree. A missing test directory yields no files.
func gatherTestFiles(fs afero.Fs, stateDir string, options *testexecutionUtils.Options) []string {
	testDir := filepath.Join(stateDir, testDirName)
	if !isDir(fs, testDir) {
		return nil
	}

	return walkTestFiles(fs, testDir, options)
}

// walkTestFiles walks a directory top-down, emitting each directory's test
// files in name order before descending into its subdirectories.
func walkTestFiles(fs afero.Fs, dir string, options *testexecutionUtils.Options) []string {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil
	}

	var (
		files   []string
		subdirs []string
	)

	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
			continue
		}

		if !strings.HasSuffix(entry.Name(), options.Extension) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if options.Debug {
			utils.DebugPrintf("Found test file %s\n", path)
		}

		files = append(files, path)
	}

	for _, subdir := range subdirs {
		files = append(files, walkTestFiles(fs, filepath.Join(dir, subdir), options)...)
	}

	return files
}

// isDir reports whether path exists and is a directory.
func isDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}

// isFile reports whether path exists and is a regular file.
func isFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}
