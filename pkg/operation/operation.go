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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/rebrand/pkg/config"
	"github.com/walteh/rebrand/pkg/status"
	"github.com/walteh/rebrand/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single unit of work
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains what a rewrite operation needs
type Options struct {
	// Files gives access to the target files
	Files status.FileManager
	// Reporter records per-file outcomes
	Reporter status.StatusReporter
	// Replacer applies the rules
	Replacer *text.Replacer
	// Rules are applied in order
	Rules []text.Rule
}

func (o Options) validate() error {
	if o.Files == nil {
		return errors.Errorf("file manager is required")
	}
	if o.Reporter == nil {
		return errors.Errorf("status reporter is required")
	}
	if o.Replacer == nil {
		return errors.Errorf("replacer is required")
	}
	return nil
}

// 📋 Plan builds one rewrite operation per configured file, in config order
func Plan(cfg *config.Config, mgr *status.Manager) ([]Operation, error) {
	opts := Options{
		Files:    mgr,
		Reporter: mgr,
		Replacer: text.NewReplacer(),
		Rules:    cfg.Rules(),
	}
	if err := opts.Replacer.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	ops := make([]Operation, 0, len(cfg.Files))
	for _, name := range cfg.Files {
		op, err := NewRewriteOperation(name, opts)
		if err != nil {
			return nil, errors.Errorf("creating operation for %s: %w", name, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// 🚀 Rewrite applies cfg to its files and returns what happened to each one.
// On error the returned slice still lists the files handled before the failure.
func Rewrite(ctx context.Context, cfg *config.Config) ([]status.FileInfo, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("directory", cfg.Directory).
		Strs("files", cfg.Files).
		Int("replacements", len(cfg.Replacements)).
		Msg("starting rewrite")

	mgr := status.New(cfg.Directory)

	ops, err := Plan(cfg, mgr)
	if err != nil {
		return nil, err
	}

	if err := NewRunner().Run(ctx, ops...); err != nil {
		return mgr.ListFiles(ctx), err
	}

	logger.Debug().
		Int("updated", mgr.Count(status.StatusUpdated)).
		Int("unchanged", mgr.Count(status.StatusUnchanged)).
		Int("missing", mgr.Count(status.StatusMissing)).
		Msg("rewrite complete")

	return mgr.ListFiles(ctx), nil
}
