// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

// testTableJSON overlaps "md" inside pages and "txt" across pages and assets.
const testTableJSON = `{
  "ignored": {"items": [".git", "node_modules"]},
  "pages": {"types": {
    "document": {"formats": {
      "markdown": {"extensions": ["md", "Markdown"]},
      "text": {"extensions": [".txt"]}
    }},
    "code": {"formats": {
      "go": {"extensions": ["go"]},
      "notes": {"extensions": ["md"]}
    }}
  }},
  "assets": {"types": {
    "image": {"formats": {
      "png": {"extensions": ["png"]},
      "svg": {"extensions": ["svg"]}
    }},
    "data": {"formats": {
      "csv": {"extensions": ["csv"], "textual": true},
      "text": {"extensions": ["txt"]}
    }}
  }}
}`

func mustTable(t testing.TB, src string) *Table {
	t.Helper()

	table, err := ParseTableString(src)
	require.NoError(t, err)

	return table
}

func mustClassifier(t testing.TB, table *Table, fsys fstest.MapFS) *Classifier {
	t.Helper()

	c, err := NewClassifier(table, ClassifierOptions{
		FileSystem: FSFileSystem{FS: fsys},
	})
	require.NoError(t, err)

	return c
}

// testFS holds one regular file per name.
func testFS(names ...string) fstest.MapFS {
	fsys := make(fstest.MapFS, len(names))
	for _, name := range names {
		fsys[name] = &fstest.MapFile{Data: []byte("x")}
	}

	return fsys
}
