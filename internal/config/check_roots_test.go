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

package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestCheckRoots(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := fs.MkdirAll("/srv/salt/base", 0o755); err != nil {
		t.Fatalf("Failed to create root dir: %v", err)
	}

	if err := fs.MkdirAll("/srv/salt/dev", 0o755); err != nil {
		t.Fatalf("Failed to create root dir: %v", err)
	}

	if err := afero.WriteFile(fs, "/srv/salt/top.sls", []byte("base: {}"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name: "all roots exist",
			cfg: &Config{
				FileRoots: map[string][]string{
					"base": {"/srv/salt/base"},
					"dev":  {"/srv/salt/dev"},
				},
			},
		},
		{
			name: "missing root directory",
			cfg: &Config{
				FileRoots: map[string][]string{
					"base": {"/srv/salt/missing"},
				},
			},
			wantErr: "directory does not exist",
		},
		{
			name: "root is a file",
			cfg: &Config{
				FileRoots: map[string][]string{
					"base": {"/srv/salt/top.sls"},
				},
			},
			wantErr: "not a directory",
		},
		{
			name: "one bad root among several",
			cfg: &Config{
				FileRoots: map[string][]string{
					"base": {"/srv/salt/base", "/srv/salt/missing"},
				},
			},
			wantErr: "directory does not exist",
		},
		{
			name: "no file_roots configured",
			cfg: &Config{
				FileRoots: map[string][]string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.CheckRoots(fs)
			if tt.wantErr != "" {
				if err == nil {
					t.Errorf("CheckRoots() error = nil, wantErr %q", tt.wantErr)
					return
				}

				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("CheckRoots() error = %v, wantErr %q", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Errorf("CheckRoots() error = %v, wantErr nil", err)
			}
		})
	}
}

func TestCheckRootsListsEveryInvalidRoot(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg := &Config{
		FileRoots: map[string][]string{
			"base": {"/missing/one"},
			"dev":  {"/missing/two"},
		},
	}

	err := cfg.CheckRoots(fs)
	if err == nil {
		t.Fatal("CheckRoots() error = nil, want errors for both roots")
	}

	for _, want := range []string{"base: /missing/one", "dev: /missing/two"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("CheckRoots() error %q should mention %q", err.Error(), want)
		}
	}
}
