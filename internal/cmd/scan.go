// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package cmd

import (
	"fmt"

	"github.com/prebetafinal/epitypes/internal/scan"
	"github.com/spf13/cobra"
)

// newScanCommand creates and returns the scan subcommand
func newScanCommand(opts *rootOptions) *cobra.Command {
	var (
		output  string
		entries bool
	)

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Classify every entry of a directory tree",
		Long: `Walk a directory tree, classify every entry and print totals per nature.

Ignored directories such as .git are reported once and not descended into.
With --output json or yaml every entry is printed as a record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			report, err := scan.Walk(cmd.Context(), args[0], rt.classifier, scan.Options{
				Logger: rt.logger.With("root", args[0]),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != outputText {
				return encode(w, output, report.Records())
			}

			if entries {
				for _, e := range report.Entries {
					if _, err := fmt.Fprintf(w, "%s: %s\n", e.Path, rt.styles.classification(e.Classification)); err != nil {
						return err
					}
				}

				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}

			if len(report.Errors) > 0 {
				rt.logger.Warn("%s", rt.styles.warn.Sprintf("%d entries could not be read", len(report.Errors)))
			}

			return report.Print(w)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json, yaml")
	cmd.Flags().BoolVar(&entries, "entries", false, "list every classified entry before the summary")

	return cmd
}
