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

// Package version records the version stamped into the binary at build time.
package version

// version is overridden by the release build via
// -ldflags "-X github.com/saltcheck-contrib/saltcheck/internal/version.version=...".
var version = "dev"

// GetVersion returns the version of the running binary.
func GetVersion() string {
	return version
}
