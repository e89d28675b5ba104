// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/prebetafinal/epitypes"
	"github.com/prebetafinal/epitypes/internal/config"
	"github.com/prebetafinal/epitypes/internal/logging"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// rootOptions holds persistent flag values shared by every subcommand.
type rootOptions struct {
	configPath  string
	tables      []string
	textFormats []string
	logLevel    string
	noColor     bool

	getenv func(string) string
}

// runtime holds dependencies resolved for one command run.
type runtime struct {
	cfg        *config.Config
	logger     *logging.Logger
	classifier *epitypes.Classifier
	styles     *styles
}

// NewRootCommand creates and returns the root cobra command for epitypes
func NewRootCommand() *cobra.Command {
	return newRootCommand(os.Getenv)
}

func newRootCommand(getenv func(string) string) *cobra.Command {
	opts := &rootOptions{getenv: getenv}

	cmd := &cobra.Command{
		Use:   "epitypes",
		Short: "Classify files into nature, type and format",
		Long: `epitypes classifies filesystem entries into a semantic hierarchy:

  nature  page, asset, folder, ignored or unknown
  type    a grouping within the nature (document, code, image, ...)
  format  a concrete file format within the type (markdown, png, ...)

Classification is driven by an extension table (JSON or YAML). The built-in
table is used unless --table, EPITYPES_TABLE or the config file name others.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the returned error
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath(), "config file (YAML)")
	flags.StringArrayVar(&opts.tables, "table", nil, "classification table file, repeatable; tables are merged in order")
	flags.StringSliceVar(&opts.textFormats, "text-format", nil, "asset formats treated as text (default svg)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(newClassifyCommand(opts))
	cmd.AddCommand(newExtensionsCommand(opts))
	cmd.AddCommand(newScanCommand(opts))
	cmd.AddCommand(newTableCommand(opts))

	return cmd
}

// setup resolves configuration, logger and classifier for cmd.
func (o *rootOptions) setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(o.getenv)
	cfg.MergeWithFlags(o.tables, o.textFormats, o.logLevel, o.noColor)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if len(cfg.Tables) == 0 {
		logger.Debug("using built-in table %s", epitypes.DefaultTableName)
	} else {
		logger.Debug("loading tables %s", strings.Join(cfg.Tables, ", "))
	}

	classifier, err := cfg.NewClassifier()
	if err != nil {
		return nil, fmt.Errorf("load classification table: %w", err)
	}

	for _, overlap := range classifier.Table().Overlaps() {
		logger.Info("extension %q resolves to %s, shadowing %d other entries", overlap.Extension, overlap.Winner, len(overlap.Shadowed))
	}

	return &runtime{
		cfg:        cfg,
		logger:     logger,
		classifier: classifier,
		styles:     newStyles(cmd.OutOrStdout(), cfg.NoColor),
	}, nil
}
