// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import "strings"

// NormalizeExtensions converts a table extension list to canonical form.
//
// Accepted extension forms:
//   - "md"
//   - ".MD"
//   - "*.md"
//
// Empty values and duplicates are skipped. Returned extensions are lower-case,
// carry no leading dot and preserve first-seen input order.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = normalizeExtension(ext)
		if ext == "" {
			continue
		}

		if _, ok := seen[ext]; ok {
			continue
		}

		seen[ext] = struct{}{}
		out = append(out, ext)
	}

	return out
}

func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, "*.")
	ext = strings.TrimLeft(ext, ".")
	return asciiLower(ext)
}

// Extensions returns extensions registered under nature.
//
// With a non-empty typeName only that type's formats are considered; an unknown
// type yields an empty result. With an empty typeName every type of the nature is
// considered. Only NaturePage and NatureAsset carry extensions.
// The result is de-duplicated and follows table declaration order.
func (t *Table) Extensions(nature Nature, typeName string) []string {
	if t == nil {
		return nil
	}

	types := t.types(nature)
	out := make([]string, 0, 16)
	seen := make(map[string]struct{})
	for i := range types {
		if typeName != "" && types[i].Name != typeName {
			continue
		}

		for _, format := range types[i].Formats {
			for _, ext := range format.Extensions {
				if _, ok := seen[ext]; ok {
					continue
				}

				seen[ext] = struct{}{}
				out = append(out, ext)
			}
		}
	}

	return out
}
