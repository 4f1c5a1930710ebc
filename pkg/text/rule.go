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

// Package text applies ordered literal replacements to file content.
package text

import (
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule is a single literal replacement
type Rule struct {
	Old string // Exact text to find
	New string // Text to put in its place

	// FileGlob limits the rule to matching file names. Empty matches every file.
	FileGlob string
}

// 🔍 Applies reports whether the rule should run against the named file
func (r Rule) Applies(name string) (bool, error) {
	if r.FileGlob == "" {
		return true, nil
	}
	ok, err := doublestar.Match(r.FileGlob, name)
	if err != nil {
		return false, errors.Errorf("matching %q against %q: %w", name, r.FileGlob, err)
	}
	return ok, nil
}

// 📊 Result holds the outcome of applying rules to some content
type Result struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	ReplacementCount int
	WasModified      bool
}

// FilterRules returns the rules that apply to name, in their original order.
func FilterRules(name string, rules []Rule) ([]Rule, error) {
	out := make([]Rule, 0, len(rules))
	for i, rule := range rules {
		ok, err := rule.Applies(name)
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		if ok {
			out = append(out, rule)
		}
	}
	return out, nil
}
