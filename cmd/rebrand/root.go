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
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rebrand/pkg/config"
	"github.com/walteh/rebrand/pkg/log"
	"github.com/walteh/rebrand/pkg/operation"
	"github.com/walteh/rebrand/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// Handler holds the flags for one invocation
type Handler struct {
	configFile string
	directory  string
	debug      bool
	summary    bool

	stdout io.Writer
	stderr io.Writer
}

// NewCommand creates the root command
func NewCommand() *cobra.Command {
	h := &Handler{}

	cmd := &cobra.Command{
		Use:   "rebrand",
		Short: "Rewrite PromptForge UI copy to CommandCenter",
		Long: `rebrand applies an ordered list of literal replacements to a fixed set of files.
It will:
1. Skip any target file that does not exist
2. Apply every replacement, in order, to the whole file
3. Write the file back only if it changed and print "Updated <file>"

With no flags it runs the built-in PromptForge to CommandCenter migration.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			h.stdout = cmd.OutOrStdout()
			h.stderr = cmd.ErrOrStderr()
			ctx := h.setupLogging(cmd.Context())
			return h.Run(ctx)
		},
	}

	h.addFlags(cmd)
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// addFlags adds the root flags
func (h *Handler) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&h.configFile, "config", "c", "", "replacement file (.yaml, .yml, .hcl, .json, .toml); built-in migration when empty")
	cmd.Flags().StringVar(&h.directory, "dir", "", "override the directory the target files live in")
	cmd.PersistentFlags().BoolVarP(&h.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&h.summary, "summary", false, "print a per-file summary after the run")
}

// setupLogging stores a zerolog logger on stderr in the context
func (h *Handler) setupLogging(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	level := zerolog.WarnLevel
	if h.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: h.stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// loadConfig returns the built-in config or the one from --config, with --dir applied
func (h *Handler) loadConfig(ctx context.Context) (*config.Config, error) {
	var cfg *config.Config
	if h.configFile == "" {
		cfg = config.Default()
	} else {
		parsed, err := config.Parse(ctx, h.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = parsed
	}

	if h.directory != "" {
		abs, err := filepath.Abs(h.directory)
		if err != nil {
			return nil, errors.Errorf("getting absolute directory path: %w", err)
		}
		cfg.Directory = abs
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Run performs the rewrite
func (h *Handler) Run(ctx context.Context) error {
	if h.stdout == nil {
		h.stdout = os.Stdout
	}

	cfg, err := h.loadConfig(ctx)
	if err != nil {
		return err
	}

	console := log.New(h.stdout, *zerolog.Ctx(ctx))
	ctx = log.NewContext(ctx, console)

	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("running rewrite")

	if err := warnUnmatched(console, cfg); err != nil {
		return err
	}

	files, err := operation.Rewrite(ctx, cfg)
	if err != nil {
		return errors.Errorf("rewriting files: %w", err)
	}

	if h.summary {
		if len(files) > 0 {
			console.Println(status.FormatFiles(files))
		}
		console.Success(status.FormatTotals(files))
	}

	return nil
}

// warnUnmatched warns about replacements whose file pattern selects none of the targets
func warnUnmatched(console *log.Logger, cfg *config.Config) error {
	for i, rule := range cfg.Rules() {
		if rule.FileGlob == "" {
			continue
		}
		matched := false
		for _, name := range cfg.Files {
			ok, err := rule.Applies(name)
			if err != nil {
				return errors.Errorf("replacements[%d]: %w", i, err)
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			console.Warningf("replacements[%d]: file pattern %q matches no target file", i, rule.FileGlob)
		}
	}
	return nil
}
