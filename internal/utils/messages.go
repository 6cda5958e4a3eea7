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

// Package utils provides small shared helpers for paths, YAML validation
// and user-facing messages.
package utils

import (
	"fmt"
	"os"
)

// OutputPrintf writes user-facing output to stdout.
func OutputPrintf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// WarningPrintf writes a warning message to stderr with a "WARNING: " prefix.
func WarningPrintf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "WARNING: "+format, args...)
}

// DebugPrintf writes a debug message to stderr with a "DEBUG: " prefix.
// It always prints; callers decide whether debug output is enabled.
func DebugPrintf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "DEBUG: "+format, args...)
}
