// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import (
	"path/filepath"
	"strings"
)

// itemName returns the last element of path, ignoring trailing separators.
func itemName(path string) string {
	if path == "" {
		return ""
	}

	return filepath.Base(path)
}

// fileExtension returns the lower-case extension of the last path element without dot.
//
// Dotfiles report the part after the leading dot (".bashrc" -> "bashrc"),
// and a trailing dot yields an empty extension.
func fileExtension(path string) string {
	name := itemName(path)
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}

	return asciiLower(name[i+1:])
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
