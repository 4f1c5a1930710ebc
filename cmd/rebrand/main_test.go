// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing config file")
	return path
}

func TestCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string) []string
		wantErr     bool
		errContains string
		wantStdout  string
		wantStderr  string
		validate    func(t *testing.T, dir string)
	}{
		{
			name: "built_in_migration",
			setup: func(t *testing.T, dir string) []string {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("PromptForge enhances your prompt."), 0644))
				return []string{"--dir", dir}
			},
			wantStdout: "Updated index.html\n",
			validate: func(t *testing.T, dir string) {
				b, err := os.ReadFile(filepath.Join(dir, "index.html"))
				require.NoError(t, err)
				assert.Equal(t, "CommandCenter enhances your prompt.", string(b))
			},
		},
		{
			name: "nothing_present",
			setup: func(t *testing.T, dir string) []string {
				return []string{"--dir", dir}
			},
			wantStdout: "",
		},
		{
			name: "custom_config_file",
			setup: func(t *testing.T, dir string) []string {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
				configPath := filepath.Join(t.TempDir(), "rebrand.yaml")
				configContent := `
files:
  - notes.txt
replacements:
  - old: x
    new: y
  - old: y
    new: z
`
				require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644), "writing config file")
				return []string{"--config", configPath, "--dir", dir}
			},
			wantStdout: "Updated notes.txt\n",
			validate: func(t *testing.T, dir string) {
				b, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
				require.NoError(t, err)
				assert.Equal(t, "z", string(b))
			},
		},
		{
			name: "summary",
			setup: func(t *testing.T, dir string) []string {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "script.js"), []byte("Enhancing..."), 0644))
				return []string{"--dir", dir, "--summary"}
			},
			wantStdout: "Updated script.js\n" +
				"    - index.html                          missing\n" +
				"    ⟳ script.js                           updated      1 replaced sha256:f40a853e58a1\n" +
				"✅ 1 updated, 0 unchanged, 1 missing\n",
		},
		{
			name: "summary_with_nothing_present",
			setup: func(t *testing.T, dir string) []string {
				return []string{"--dir", dir, "--summary"}
			},
			wantStdout: "    - index.html                          missing\n" +
				"    - script.js                           missing\n" +
				"✅ 0 updated, 0 unchanged, 2 missing\n",
		},
		{
			name: "file_pattern_matching_no_target",
			setup: func(t *testing.T, dir string) []string {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
				return []string{"--dir", dir, "--config", writeConfig(t, "rebrand.yaml", `
files:
  - notes.txt
replacements:
  - old: x
    new: y
  - old: y
    new: z
    file: "*.css"
`)}
			},
			wantStdout: "⚠️  replacements[1]: file pattern \"*.css\" matches no target file\n" +
				"Updated notes.txt\n",
			wantStderr: "matches no target file",
			validate: func(t *testing.T, dir string) {
				b, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
				require.NoError(t, err)
				assert.Equal(t, "y", string(b), "the css-only pair must not run")
			},
		},
		{
			name: "invalid_config",
			setup: func(t *testing.T, dir string) []string {
				configPath := filepath.Join(t.TempDir(), "rebrand.yaml")
				require.NoError(t, os.WriteFile(configPath, []byte(`invalid: yaml: :`), 0644))
				return []string{"--config", configPath}
			},
			wantErr:     true,
			errContains: "loading config",
		},
		{
			name: "config_without_directory",
			setup: func(t *testing.T, dir string) []string {
				configPath := filepath.Join(t.TempDir(), "rebrand.json")
				require.NoError(t, os.WriteFile(configPath, []byte(`{"files": ["a.txt"]}`), 0644))
				return []string{"--config", configPath}
			},
			wantErr:     true,
			errContains: "directory is required",
		},
		{
			name: "read_failure",
			setup: func(t *testing.T, dir string) []string {
				require.NoError(t, os.Mkdir(filepath.Join(dir, "index.html"), 0755))
				return []string{"--dir", dir}
			},
			wantErr:     true,
			errContains: "rewriting files",
		},
		{
			name: "positional_args_rejected",
			setup: func(t *testing.T, dir string) []string {
				return []string{"index.html"}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := tt.setup(t, dir)

			stdout, stderr, err := runCommand(t, args...)
			if tt.wantErr {
				require.Error(t, err, "command should fail")
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				}
				return
			}

			require.NoError(t, err, "command should succeed")
			assert.Equal(t, tt.wantStdout, stdout)
			if tt.wantStderr != "" {
				assert.Contains(t, stderr, tt.wantStderr)
			} else {
				assert.Empty(t, stderr, "default log level should keep stderr quiet")
			}
			if tt.validate != nil {
				tt.validate(t, dir)
			}
		})
	}
}

func TestCommand_DebugLogsToStderr(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := runCommand(t, "--dir", dir, "--debug")
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "file not found, skipping")
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	require.NotNil(t, cmd, "command should not be nil")
	assert.Equal(t, "rebrand", cmd.Use, "command name should match")
	assert.NotEmpty(t, cmd.Short, "should have short description")

	for _, name := range []string{"config", "dir", "summary"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should exist", name)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "rebrand version info:")
	assert.Contains(t, stdout, "Go:")
}

func TestFormatVersion(t *testing.T) {
	got := FormatVersion(&VersionInfo{
		Version:   "v1.0.0",
		GoVersion: "go1.23.5",
		Platform:  "linux/amd64",
		Revision:  "abc123",
		Time:      "2025-01-01T00:00:00Z",
		Modified:  true,
	})

	want := `rebrand version info:
Version:   v1.0.0
Revision:  abc123 (modified)
Built:     2025-01-01T00:00:00Z
Go:        go1.23.5
Platform:  linux/amd64
`
	assert.Equal(t, want, got)
}
