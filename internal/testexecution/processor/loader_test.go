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
	"testing"

	"github.com/saltcheck-contrib/saltcheck/internal/api"
	"github.com/stretchr/testify/assert"  //nolint:depguard // testify is widely used for testing
	"github.com/stretchr/testify/require" //nolint:depguard // testify is widely used for testing
)

// stubRenderer serves canned suites per path and records the render order.
type stubRenderer struct {
	suites   map[string]*api.Suite
	err      error
	rendered []string
}

func (r *stubRenderer) Render(path string) (*api.Suite, error) {
	r.rendered = append(r.rendered, path)

	if r.err != nil {
		return nil, r.err
	}

	suite, ok := r.suites[path]
	if !ok {
		return nil, fmt.Errorf("no suite for %s", path)
	}

	return suite, nil
}

func suiteOf(names ...string) *api.Suite {
	suite := api.NewSuite()
	for _, name := range names {
		suite.Set(name, &api.TestSpec{ModuleAndFunction: "test.ping", Assertion: "assertTrue"})
	}

	return suite
}

func TestLoadSuite(t *testing.T) {
	t.Run("merges files in discovery order", func(t *testing.T) {
		renderer := &stubRenderer{suites: map[string]*api.Suite{
			"/tests/init.tst":  suiteOf("check service", "check config"),
			"/tests/extra.tst": suiteOf("check logs"),
		}}

		suite, err := loadSuite(renderer, []string{"/tests/init.tst", "/tests/extra.tst"})
		require.NoError(t, err)

		assert.Equal(t, []string{"/tests/init.tst", "/tests/extra.tst"}, renderer.rendered)
		assert.Equal(t, []string{"check service", "check config", "check logs"}, suite.Names())
	})

	t.Run("later file overwrites a test but keeps its position", func(t *testing.T) {
		overriding := api.NewSuite()
		overriding.Set("check service", &api.TestSpec{ModuleAndFunction: "service.status", Assertion: "assertTrue"})

		renderer := &stubRenderer{suites: map[string]*api.Suite{
			"/tests/init.tst":     suiteOf("check service", "check config"),
			"/tests/override.tst": overriding,
		}}

		suite, err := loadSuite(renderer, []string{"/tests/init.tst", "/tests/override.tst"})
		require.NoError(t, err)

		assert.Equal(t, []string{"check service", "check config"}, suite.Names())

		spec, ok := suite.Get("check service")
		require.True(t, ok)
		assert.Equal(t, "service.status", spec.ModuleAndFunction)
	})

	t.Run("no files yield an empty suite", func(t *testing.T) {
		suite, err := loadSuite(&stubRenderer{}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, suite.Len())
	})

	t.Run("render failure names the file", func(t *testing.T) {
		renderer := &stubRenderer{err: fmt.Errorf("jinja blew up")}

		_, err := loadSuite(renderer, []string{"/tests/broken.tst"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/tests/broken.tst")
		assert.Contains(t, err.Error(), "jinja blew up")
	})
}
