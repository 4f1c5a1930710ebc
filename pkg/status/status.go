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
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents what a run did to a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusMissing              // File doesn't exist, skipped
	StatusUnchanged            // File exists and no replacement changed it
	StatusUpdated              // File was rewritten
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusUnchanged:
		return "unchanged"
	case StatusUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains what happened to one target file
type FileInfo struct {
	Path         string     // Path relative to the base directory
	Status       FileStatus // Outcome
	Size         int64      // Size in bytes after the run
	Replacements int        // Occurrences replaced
	Checksum     string     // SHA-256 of the final content
}

// 💾 FileManager handles the file system operations a rewrite needs
type FileManager interface {
	FileExists(ctx context.Context, path string) bool
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 📈 StatusReporter records per-file outcomes
type StatusReporter interface {
	TrackFile(ctx context.Context, info FileInfo)
	GetFileInfo(ctx context.Context, path string) (FileInfo, error)
	ListFiles(ctx context.Context) []FileInfo
}

var (
	_ FileManager    = (*Manager)(nil)
	_ StatusReporter = (*Manager)(nil)
)

// 🔧 Manager implements both FileManager and StatusReporter for one base directory
type Manager struct {
	baseDir string

	mu    sync.RWMutex
	files map[string]FileInfo
	order []string
}

// 🏭 New creates a new status manager rooted at baseDir
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
		files:   make(map[string]FileInfo),
	}
}

// 🔒 AbsPath returns the absolute path for a given relative path
func (m *Manager) AbsPath(path string) string {
	return filepath.Join(m.baseDir, path)
}

// 🔍 Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// FileManager interface implementation

// FileExists reports whether path can be stat'ed. Any stat failure counts as
// absent, including a base directory that is really a regular file.
func (m *Manager) FileExists(ctx context.Context, path string) bool {
	_, err := os.Stat(m.AbsPath(path))
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("treating file as absent")
		return false
	}
	return true
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.AbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile truncates path and writes content in place. It is not atomic:
// a failure part way through can leave the file truncated.
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	absPath := m.AbsPath(path)

	zerolog.Ctx(ctx).Debug().
		Str("path", absPath).
		Int("size", len(content)).
		Msg("writing file")

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, seen := m.files[info.Path]; !seen {
		m.order = append(m.order, info.Path)
	}
	m.files[info.Path] = info

	zerolog.Ctx(ctx).Debug().
		Str("path", info.Path).
		Stringer("status", info.Status).
		Int("replacements", info.Replacements).
		Msg("tracked file")
}

func (m *Manager) GetFileInfo(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[path]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", path)
	}
	return info, nil
}

// ListFiles returns tracked files in the order they were first tracked.
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.order))
	for _, path := range m.order {
		files = append(files, m.files[path])
	}
	return files
}

// Count returns how many tracked files ended with the given status.
func (m *Manager) Count(s FileStatus) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, info := range m.files {
		if info.Status == s {
			n++
		}
	}
	return n
}
