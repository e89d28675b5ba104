// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIsIgnored_ExactNames(t *testing.T) {
	t.Parallel()

	table := mustTable(t, testTableJSON)

	assert.True(t, table.IsIgnored(".git"))
	assert.False(t, table.IsIgnored(".GIT"))
	assert.False(t, table.IsIgnored(".gitignore"))
	assert.False(t, table.IsIgnored("repo/.git"))
}

func TestTableLookup(t *testing.T) {
	t.Parallel()

	table := mustTable(t, testTableJSON)

	typeName, format, ok := table.Lookup(NatureAsset, "txt")
	require.True(t, ok)
	assert.Equal(t, "data", typeName)
	assert.Equal(t, "text", format)

	_, _, ok = table.Lookup(NatureFolder, "txt")
	assert.False(t, ok)

	_, _, ok = table.Lookup(NaturePage, "TXT")
	assert.False(t, ok)
}

func TestTableOverlaps(t *testing.T) {
	t.Parallel()

	table := mustTable(t, testTableJSON)

	got := table.Overlaps()
	require.Len(t, got, 2)

	assert.Equal(t, "md", got[0].Extension)
	assert.Equal(t, Page{Type: "document", Format: "markdown"}, got[0].Winner)
	assert.Equal(t, []Classification{Page{Type: "code", Format: "notes"}}, got[0].Shadowed)

	assert.Equal(t, "txt", got[1].Extension)
	assert.Equal(t, Page{Type: "document", Format: "text"}, got[1].Winner)
	assert.Equal(t, []Classification{Asset{Type: "data", Format: "text"}}, got[1].Shadowed)
}

func TestTableData_IsCopy(t *testing.T) {
	t.Parallel()

	table := mustTable(t, testTableJSON)

	data := table.Data()
	data.Ignored[0] = "changed"
	data.Pages[0].Formats[0].Extensions[0] = "changed"
	data.Pages[0].Name = "changed"

	again := table.Data()
	assert.Equal(t, ".git", again.Ignored[0])
	assert.Equal(t, "md", again.Pages[0].Formats[0].Extensions[0])
	assert.Equal(t, "document", again.Pages[0].Name)
	assert.True(t, table.IsIgnored(".git"))
}

func TestTableIsTextual(t *testing.T) {
	t.Parallel()

	table := mustTable(t, testTableJSON)

	assert.True(t, table.IsTextual(NatureAsset, "data", "csv"))
	assert.False(t, table.IsTextual(NatureAsset, "image", "svg"))
	assert.False(t, table.IsTextual(NatureAsset, "data", "missing"))
	assert.False(t, table.IsTextual(NaturePage, "data", "csv"))
}

func TestNilTable(t *testing.T) {
	t.Parallel()

	var table *Table
	assert.False(t, table.IsIgnored(".git"))
	assert.False(t, table.IsTextual(NatureAsset, "image", "svg"))
	assert.Nil(t, table.Overlaps())
	assert.Equal(t, Data{}, table.Data())

	_, _, ok := table.Lookup(NaturePage, "md")
	assert.False(t, ok)
}
