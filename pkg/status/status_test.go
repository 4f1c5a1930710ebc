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

package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

func TestFileStatus_String(t *testing.T) {
	assert.Equal(t, "missing", StatusMissing.String())
	assert.Equal(t, "unchanged", StatusUnchanged.String())
	assert.Equal(t, "updated", StatusUpdated.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
	assert.Equal(t, "unknown", FileStatus(42).String())
}

func TestManager_FileExists(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("x"), 0644))

	m := New(dir)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "present", path: "index.html", want: true},
		{name: "absent", path: "script.js", want: false},
		{name: "absent_in_missing_dir", path: "js/script.js", want: false},
		{name: "parent_is_a_file", path: "index.html/child", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.FileExists(ctx, tt.path))
		})
	}
}

func TestManager_ReadWrite(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "script.js")
	require.NoError(t, os.WriteFile(path, []byte("a much longer original body"), 0600))

	m := New(dir)
	assert.Equal(t, path, m.AbsPath("script.js"))

	got, err := m.ReadFile(ctx, "script.js")
	require.NoError(t, err)
	assert.Equal(t, "a much longer original body", string(got))

	require.NoError(t, m.WriteFile(ctx, "script.js", []byte("short")))

	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(got), "write should truncate the old content")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "existing permissions should be kept")
}

func TestManager_ReadMissing(t *testing.T) {
	m := New(t.TempDir())

	_, err := m.ReadFile(testContext(t), "nope.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManager_WriteIntoMissingDir(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "gone"))

	err := m.WriteFile(testContext(t), "index.html", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing file")
}

func TestManager_Tracking(t *testing.T) {
	ctx := testContext(t)
	m := New(t.TempDir())

	m.TrackFile(ctx, FileInfo{Path: "index.html", Status: StatusUpdated, Replacements: 4})
	m.TrackFile(ctx, FileInfo{Path: "script.js", Status: StatusMissing})
	m.TrackFile(ctx, FileInfo{Path: "index.html", Status: StatusUnchanged})

	files := m.ListFiles(ctx)
	require.Len(t, files, 2)
	assert.Equal(t, "index.html", files[0].Path, "order should follow first tracking")
	assert.Equal(t, StatusUnchanged, files[0].Status, "later tracking should win")
	assert.Equal(t, "script.js", files[1].Path)

	info, err := m.GetFileInfo(ctx, "script.js")
	require.NoError(t, err)
	assert.Equal(t, StatusMissing, info.Status)

	_, err = m.GetFileInfo(ctx, "other.css")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not tracked")

	assert.Equal(t, 1, m.Count(StatusMissing))
	assert.Equal(t, 1, m.Count(StatusUnchanged))
	assert.Equal(t, 0, m.Count(StatusUpdated))
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}
