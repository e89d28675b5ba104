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

// classifyRecord is one classify result with its text predicate.
type classifyRecord struct {
	epitypes.Record `yaml:",inline"`
	Text            bool `json:"text" yaml:"text"`
}

// newClassifyCommand creates and returns the classify subcommand
func newClassifyCommand(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "classify <path>...",
		Short: "Classify one or more paths",
		Long: `Print nature, type and format for each path.

Missing paths are reported as ignored, the same as explicitly ignored items.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			return runClassify(rt, args, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json, yaml")

	return cmd
}

func runClassify(rt *runtime, paths []string, output string, w io.Writer) error {
	records := make([]classifyRecord, 0, len(paths))
	for _, path := range paths {
		cls := rt.classifier.Classify(path)
		rt.logger.Debug("%s: %s", path, cls)

		records = append(records, classifyRecord{
			Record: epitypes.NewRecord(path, cls),
			Text:   rt.classifier.IsTextFile(path),
		})

		if output != outputText {
			continue
		}

		suffix := ""
		if records[len(records)-1].Text {
			suffix = " (text)"
		}

		if _, err := fmt.Fprintf(w, "%s: %s%s\n", path, rt.styles.classification(cls), suffix); err != nil {
			return err
		}
	}

	if output == outputText {
		return nil
	}

	return encode(w, output, records)
}
