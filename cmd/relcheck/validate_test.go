// Copyright 2026 The Relcheck Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDialectCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{}
	addDialectFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestResolveSchema(t *testing.T) {
	schemasFile := filepath.Join(t.TempDir(), "schemas.yml")
	require.NoError(t, os.WriteFile(schemasFile, []byte(`
version: "1"
schemas:
  - name: archlinux
    columns: [version, created]
    date_columns: [created]
`), 0o644))

	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  bool
	}{
		{
			name:     "debian",
			args:     []string{"--debian"},
			expected: "debian",
		},
		{
			name:     "ubuntu",
			args:     []string{"--ubuntu"},
			expected: "ubuntu",
		},
		{
			name:     "custom dialect from schemas file",
			args:     []string{"--dialect", "archlinux", "--schemas", schemasFile},
			expected: "archlinux",
		},
		{
			name:    "no dialect selected",
			args:    nil,
			wantErr: true,
		},
		{
			name:    "both built-in dialects selected",
			args:    []string{"--debian", "--ubuntu"},
			wantErr: true,
		},
		{
			name:    "built-in plus custom dialect",
			args:    []string{"--debian", "--dialect", "archlinux"},
			wantErr: true,
		},
		{
			name:    "custom dialect without schemas file",
			args:    []string{"--dialect", "archlinux"},
			wantErr: true,
		},
		{
			name:    "custom dialect not declared",
			args:    []string{"--dialect", "gentoo", "--schemas", schemasFile},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := resolveSchema(newDialectCommand(t, tt.args...))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, schema.Name)
		})
	}
}
