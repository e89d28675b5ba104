// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package cmd

import (
	"fmt"
	"io"

	"github.com/prebetafinal/epitypes"
	"github.com/spf13/cobra"
)

// newExtensionsCommand creates and returns the extensions subcommand
func newExtensionsCommand(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "extensions <pages|assets> [type]",
		Short: "List extensions registered under a nature and optional type",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			nature, err := epitypes.ParseNature(args[0])
			if err != nil {
				return err
			}

			if nature != epitypes.NaturePage && nature != epitypes.NatureAsset {
				return fmt.Errorf("%w: %s carries no extensions, use pages or assets", epitypes.ErrInvalidNature, nature)
			}

			typeName := ""
			if len(args) == 2 {
				typeName = args[1]
			}

			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			exts := rt.classifier.Extensions(nature, typeName)
			if len(exts) == 0 && typeName != "" {
				rt.logger.Warn("no %s type named %q", nature, typeName)
			}

			return writeExtensions(cmd.OutOrStdout(), output, exts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json, yaml")

	return cmd
}

func writeExtensions(w io.Writer, output string, exts []string) error {
	if output != outputText {
		return encode(w, output, exts)
	}

	for _, ext := range exts {
		if _, err := fmt.Fprintln(w, ext); err != nil {
			return err
		}
	}

	return nil
}
