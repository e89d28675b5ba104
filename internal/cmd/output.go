// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/prebetafinal/epitypes"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// styles colours nature names in text output.
type styles struct {
	natures map[epitypes.Nature]*color.Color
	warn    *color.Color
}

// newStyles enables colour only when w is a terminal and colour is not disabled.
func newStyles(w io.Writer, noColor bool) *styles {
	s := &styles{
		natures: map[epitypes.Nature]*color.Color{
			epitypes.NaturePage:    color.New(color.FgGreen),
			epitypes.NatureAsset:   color.New(color.FgCyan),
			epitypes.NatureFolder:  color.New(color.FgBlue, color.Bold),
			epitypes.NatureUnknown: color.New(color.FgYellow),
			epitypes.NatureIgnored: color.New(color.FgHiBlack),
		},
		warn: color.New(color.FgYellow),
	}

	enabled := !noColor && isTerminal(w)
	for _, c := range s.natures {
		setColor(c, enabled)
	}
	setColor(s.warn, enabled)

	return s
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// classification renders c with its nature colour.
func (s *styles) classification(c epitypes.Classification) string {
	if col, ok := s.natures[c.Nature()]; ok {
		return col.Sprint(c.String())
	}

	return c.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// validateOutput rejects unsupported --output values.
func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}

	return fmt.Errorf("invalid output format %q, must be one of: text, json, yaml", format)
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	}

	return fmt.Errorf("invalid output format %q", format)
}
