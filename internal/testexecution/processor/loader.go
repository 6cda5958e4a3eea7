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

package processor

import (
	"fmt"

	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/saltcheck-contrib/saltcheck/internal/salt"
)

// loadSuite renders each discovered test file and merges the definitions
// into one ordered suite. A test name defined in more than one file keeps
// its first-seen position but takes the definition of the later file.
func loadSuite(renderer salt.Renderer, files []string) (*api.Suite, error) {
	suite := api.NewSuite()

	for _, file := range files {
		rendered, err := renderer.Render(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load test file %s: %w", file, err)
		}

		suite.Merge(rendered)
	}

	return suite, nil
}
