// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prebetafinal/epitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTableYAML = `
ignored: {items: [.git]}
pages:
  types:
    document:
      formats:
        markdown: {extensions: [md, markdown]}
assets:
  types:
    image:
      formats:
        png: {extensions: [png]}
        svg: {extensions: [svg]}
`

const overlappingTableYAML = `
ignored: {items: []}
pages:
  types:
    document:
      formats:
        text: {extensions: [txt]}
assets:
  types:
    data:
      formats:
        log: {extensions: [txt, log]}
`

// run executes the CLI with an empty environment and returns stdout.
func run(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()

	getenv := func(key string) string { return env[key] }
	cmd := newRootCommand(getenv)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func fixture(t *testing.T) (tablePath string, root string) {
	t.Helper()

	dir := t.TempDir()
	tablePath = filepath.Join(dir, "table.yaml")
	writeFile(t, tablePath, testTableYAML)

	root = filepath.Join(dir, "site")
	writeFile(t, filepath.Join(root, "index.md"), "# hi")
	writeFile(t, filepath.Join(root, "logo.svg"), "<svg/>")
	writeFile(t, filepath.Join(root, "photo.png"), "png")
	writeFile(t, filepath.Join(root, "data.bin"), "bin")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref")

	return tablePath, root
}

func TestClassifyCommand_Text(t *testing.T) {
	t.Parallel()

	tablePath, root := fixture(t)

	out, err := run(t, nil, "--table", tablePath, "classify",
		filepath.Join(root, "index.md"),
		filepath.Join(root, "logo.svg"),
		filepath.Join(root, "photo.png"),
		filepath.Join(root, "data.bin"),
		filepath.Join(root, ".git"),
		root,
		filepath.Join(root, "missing.md"),
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, filepath.Join(root, "index.md")+": page/document/markdown (text)", lines[0])
	assert.Equal(t, filepath.Join(root, "logo.svg")+": asset/image/svg (text)", lines[1])
	assert.Equal(t, filepath.Join(root, "photo.png")+": asset/image/png", lines[2])
	assert.Equal(t, filepath.Join(root, "data.bin")+": unknown/bin", lines[3])
	assert.Equal(t, filepath.Join(root, ".git")+": ignored", lines[4])
	assert.Equal(t, root+": folder", lines[5])
	assert.Equal(t, filepath.Join(root, "missing.md")+": ignored", lines[6])
}

func TestClassifyCommand_JSON(t *testing.T) {
	t.Parallel()

	tablePath, root := fixture(t)
	path := filepath.Join(root, "photo.png")

	out, err := run(t, nil, "--table", tablePath, "--text-format", "png", "classify", "-o", "json", path)
	require.NoError(t, err)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, map[string]interface{}{
		"path":   path,
		"nature": "asset",
		"type":   "image",
		"format": "png",
		"text":   true,
	}, got[0])
}

func TestClassifyCommand_InvalidOutput(t *testing.T) {
	t.Parallel()

	_, err := run(t, nil, "classify", "-o", "xml", "a.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestClassifyCommand_MissingTable(t *testing.T) {
	t.Parallel()

	_, err := run(t, nil, "--table", filepath.Join(t.TempDir(), "missing.yaml"), "classify", "a.md")
	require.ErrorIs(t, err, epitypes.ErrNotFound)
}

func TestClassifyCommand_TableFromEnv(t *testing.T) {
	t.Parallel()

	tablePath, root := fixture(t)

	out, err := run(t, map[string]string{"EPITYPES_TABLE": tablePath}, "classify", filepath.Join(root, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, out, "page/document/markdown")
}

func TestExtensionsCommand(t *testing.T) {
	t.Parallel()

	tablePath, _ := fixture(t)

	out, err := run(t, nil, "--table", tablePath, "extensions", "pages")
	require.NoError(t, err)
	assert.Equal(t, "md\nmarkdown\n", out)

	out, err = run(t, nil, "--table", tablePath, "extensions", "assets", "image", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["png", "svg"]`, out)

	out, err = run(t, nil, "--table", tablePath, "extensions", "assets", "video")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, nil, "--table", tablePath, "extensions", "folder")
	require.ErrorIs(t, err, epitypes.ErrInvalidNature)

	_, err = run(t, nil, "extensions", "images")
	require.ErrorIs(t, err, epitypes.ErrInvalidNature)
}

func TestExtensionsCommand_DefaultTable(t *testing.T) {
	t.Parallel()

	out, err := run(t, nil, "extensions", "assets", "image")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "svg")
}

func TestScanCommand(t *testing.T) {
	t.Parallel()

	tablePath, root := fixture(t)

	out, err := run(t, nil, "--table", tablePath, "scan", "--entries", root)
	require.NoError(t, err)

	assert.Contains(t, out, ".git: ignored\n")
	assert.Contains(t, out, "index.md: page/document/markdown\n")
	assert.NotContains(t, out, "HEAD")
	assert.Contains(t, out, "total           5")

	out, err = run(t, nil, "--table", tablePath, "scan", "-o", "yaml", root)
	require.NoError(t, err)
	assert.Contains(t, out, "- path: logo.svg\n  nature: asset\n  type: image\n  format: svg\n")
}

func TestTableDumpCommand(t *testing.T) {
	t.Parallel()

	tablePath, _ := fixture(t)

	out, err := run(t, nil, "--table", tablePath, "table", "dump")
	require.NoError(t, err)

	dumped, err := epitypes.ParseTableString(out)
	require.NoError(t, err)

	want, err := epitypes.LoadFile(tablePath)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), dumped.Data())
}

func TestTableDumpCommand_MergesTables(t *testing.T) {
	t.Parallel()

	tablePath, _ := fixture(t)
	extra := filepath.Join(t.TempDir(), "extra.yaml")
	writeFile(t, extra, overlappingTableYAML)

	out, err := run(t, nil, "--table", tablePath, "--table", extra, "table", "dump")
	require.NoError(t, err)

	dumped, err := epitypes.ParseTableString(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"md", "markdown", "txt"}, dumped.Extensions(epitypes.NaturePage, ""))
	assert.Equal(t, []string{"png", "svg", "txt", "log"}, dumped.Extensions(epitypes.NatureAsset, ""))
}

func TestTableCheckCommand(t *testing.T) {
	t.Parallel()

	tablePath, _ := fixture(t)
	out, err := run(t, nil, "--table", tablePath, "table", "check", "--strict")
	require.NoError(t, err)
	assert.Equal(t, "no overlapping extensions\n", out)

	overlapping := filepath.Join(t.TempDir(), "overlap.yaml")
	writeFile(t, overlapping, overlappingTableYAML)

	out, err = run(t, nil, "--table", overlapping, "table", "check")
	require.NoError(t, err)
	assert.Equal(t, "txt: page/document/text shadows asset/data/log\n", out)

	_, err = run(t, nil, "--table", overlapping, "table", "check", "--strict")
	require.ErrorIs(t, err, errOverlaps)
}
