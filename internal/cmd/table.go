// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// errOverlaps is returned by "table check --strict" when overlaps exist.
var errOverlaps = errors.New("table has overlapping extensions")

// newTableCommand creates and returns the table subcommand
func newTableCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Inspect the classification table",
	}

	cmd.AddCommand(newTableDumpCommand(opts))
	cmd.AddCommand(newTableCheckCommand(opts))

	return cmd
}

func newTableDumpCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the effective (merged) table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			return encode(cmd.OutOrStdout(), outputYAML, rt.classifier.Table().Data())
		},
	}
}

func newTableCheckCommand(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report extensions declared by more than one format",
		Long: `Report extensions declared by more than one format.

The first declaration wins during classification; later ones are shadowed.
With --strict any overlap is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			overlaps := rt.classifier.Table().Overlaps()
			if len(overlaps) == 0 {
				_, err := fmt.Fprintln(w, "no overlapping extensions")
				return err
			}

			for _, o := range overlaps {
				shadowed := make([]string, len(o.Shadowed))
				for i, s := range o.Shadowed {
					shadowed[i] = s.String()
				}

				line := fmt.Sprintf("%s: %s shadows %s", o.Extension, o.Winner, strings.Join(shadowed, ", "))
				if _, err := fmt.Fprintln(w, rt.styles.warn.Sprint(line)); err != nil {
					return err
				}
			}

			if strict {
				return fmt.Errorf("%w: %d", errOverlaps, len(overlaps))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any extension overlaps")

	return cmd
}
