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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/rebrand/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Replacement represents a literal string replacement
type Replacement struct {
	Old  string  `json:"old" yaml:"old" toml:"old"`                                  // Exact text to find
	New  string  `json:"new" yaml:"new" toml:"new"`                                  // Text to put in its place
	File *string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"` // Optional file name glob to apply to
}

// 📚 Config describes one rewrite run
type Config struct {
	Directory    string        `json:"directory" yaml:"directory" toml:"directory"`          // Base directory the files live in
	Files        []string      `json:"files" yaml:"files" toml:"files"`                      // Target file names, processed in order
	Replacements []Replacement `json:"replacements" yaml:"replacements" toml:"replacements"` // Applied in order
}

// 📖 Parse reads and decodes a config file without validating it. Callers
// that override fields (such as the directory) validate afterwards.
func Parse(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Directory == "" {
		return errors.Errorf("directory is required")
	}
	if len(cfg.Files) == 0 {
		return errors.Errorf("at least one file is required")
	}

	for i, name := range cfg.Files {
		if name == "" {
			return errors.Errorf("files[%d]: name is required", i)
		}
		// names are joined onto Directory and must stay inside it
		if !filepath.IsLocal(name) {
			return errors.Errorf("files[%d]: %q must be a relative path inside the directory", i, name)
		}
	}

	for i, r := range cfg.Replacements {
		if r.Old == "" {
			return errors.Errorf("replacements[%d]: old is required", i)
		}
		if r.File != nil && !doublestar.ValidatePattern(*r.File) {
			return errors.Errorf("replacements[%d]: invalid file pattern %q", i, *r.File)
		}
	}

	cfg.Directory = filepath.Clean(cfg.Directory)

	return nil
}

// Rules converts the replacements into text rules, keeping their order.
func (cfg *Config) Rules() []text.Rule {
	rules := make([]text.Rule, 0, len(cfg.Replacements))
	for _, r := range cfg.Replacements {
		rule := text.Rule{Old: r.Old, New: r.New}
		if r.File != nil {
			rule.FileGlob = *r.File
		}
		rules = append(rules, rule)
	}
	return rules
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s %v (%d replacements)", cfg.Directory, cfg.Files, len(cfg.Replacements))
}
