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
	"strings"
)

// SplitStateName splits a dot-separated state name into its namespace
// prefix and leaf at the last dot. Plain names have an empty prefix.
func SplitStateName(name string) (prefix, leaf string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i], name[i+1:]
	}

	return "", name
}

// StateBaseDir joins a search root with a namespace prefix, dots becoming
// path separators. An empty prefix maps to the root itself.
func StateBaseDir(root, prefix string) string {
	if prefix == "" {
		return root
	}

	return filepath.Join(root, strings.ReplaceAll(prefix, ".", "/"))
}
