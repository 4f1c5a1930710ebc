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
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/rebrand/pkg/log"
	"github.com/walteh/rebrand/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 rewriteOperation rewrites a single file
type rewriteOperation struct {
	name string
	opts Options
}

// 📦 NewRewriteOperation creates the operation for one target file name
func NewRewriteOperation(name string, opts Options) (Operation, error) {
	if name == "" {
		return nil, errors.Errorf("file name is required")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &rewriteOperation{name: name, opts: opts}, nil
}

func (op *rewriteOperation) Name() string {
	return op.name
}

// 🏃 Execute runs the rewrite
func (op *rewriteOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("file", op.name).Logger()

	if !op.opts.Files.FileExists(ctx, op.name) {
		logger.Debug().Msg("file not found, skipping")
		op.opts.Reporter.TrackFile(ctx, status.FileInfo{
			Path:   op.name,
			Status: status.StatusMissing,
		})
		return nil
	}

	original, err := op.opts.Files.ReadFile(ctx, op.name)
	if err != nil {
		return errors.Errorf("reading %s: %w", op.name, err)
	}

	result, err := op.opts.Replacer.ReplaceFile(ctx, op.name, bytes.NewReader(original), op.opts.Rules)
	if err != nil {
		return errors.Errorf("replacing text in %s: %w", op.name, err)
	}

	info := status.FileInfo{
		Path:         op.name,
		Size:         int64(len(result.ModifiedContent)),
		Replacements: result.ReplacementCount,
		Checksum:     status.Checksum(result.ModifiedContent),
	}

	if !result.WasModified {
		logger.Debug().Int("replacements", result.ReplacementCount).Msg("content unchanged")
		info.Status = status.StatusUnchanged
		op.opts.Reporter.TrackFile(ctx, info)
		return nil
	}

	if err := op.opts.Files.WriteFile(ctx, op.name, result.ModifiedContent); err != nil {
		return errors.Errorf("writing %s: %w", op.name, err)
	}

	info.Status = status.StatusUpdated
	op.opts.Reporter.TrackFile(ctx, info)

	logger.Debug().Int("replacements", result.ReplacementCount).Msg("file rewritten")
	log.FromContext(ctx).Updated(ctx, op.name)

	return nil
}
