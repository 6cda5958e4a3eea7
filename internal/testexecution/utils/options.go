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

// Package utils provides shared types and helpers for the test execution
// layer.
package utils

// Options carries the settings one run executes under, assembled by the
// command layer from configuration values and command-line flags.
type Options struct {
	// Saltenv is the environment whose cached state tree is searched.
	Saltenv string
	// Extension is the test-file extension, including the leading dot.
	Extension string
	// SearchRoots are the directories states are looked up under, in
	// search order.
	SearchRoots []string
	// CheckAll collects every test file under a state's test directory
	// instead of probing the two conventional locations.
	CheckAll bool
	// OnlyFails restricts printed results to failing tests.
	OnlyFails bool
	// Debug prints test definitions and diagnostics while running.
	Debug bool
}
