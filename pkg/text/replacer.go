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

package text

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Replacer applies rules sequentially using literal string replacement
type Replacer struct{}

// NewReplacer creates a new Replacer
func NewReplacer() *Replacer {
	return &Replacer{}
}

// Apply runs every rule over s in order. Each rule sees the output of the
// previous one. It returns the final text and the number of occurrences
// replaced across all rules.
func Apply(s string, rules []Rule) (string, int) {
	count := 0
	for _, rule := range rules {
		// an empty Old would match between every rune
		if rule.Old == "" {
			continue
		}
		n := strings.Count(s, rule.Old)
		if n == 0 {
			continue
		}
		s = strings.ReplaceAll(s, rule.Old, rule.New)
		count += n
	}
	return s, count
}

// ReplaceText reads all of content and applies rules to it
func (r *Replacer) ReplaceText(ctx context.Context, content io.Reader, rules []Rule) (*Result, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	modified, count := Apply(string(originalContent), rules)

	result := &Result{
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(modified),
		ReplacementCount: count,
	}
	// rules can cancel each other out, so compare the final text instead of counting
	result.WasModified = !bytes.Equal(result.OriginalContent, result.ModifiedContent)

	zerolog.Ctx(ctx).Trace().
		Int("rules", len(rules)).
		Int("replacements", count).
		Bool("modified", result.WasModified).
		Msg("applied replacement rules")

	return result, nil
}

// ReplaceFile is ReplaceText restricted to the rules whose file glob matches name.
func (r *Replacer) ReplaceFile(ctx context.Context, name string, content io.Reader, rules []Rule) (*Result, error) {
	applicable, err := FilterRules(name, rules)
	if err != nil {
		return nil, errors.Errorf("filtering rules for %s: %w", name, err)
	}
	return r.ReplaceText(ctx, content, applicable)
}

// ValidateRules checks that every rule can be applied
func (r *Replacer) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Old == "" {
			return errors.Errorf("rule %d: old text is required", i)
		}
		if rule.FileGlob != "" && !doublestar.ValidatePattern(rule.FileGlob) {
			return errors.Errorf("rule %d: invalid file glob %q", i, rule.FileGlob)
		}
	}
	return nil
}
