// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import "path/filepath"

// Classifier classifies paths against a loaded Table.
//
// A Classifier holds no mutable state and is safe for concurrent use.
// Every call queries the file system again; nothing is cached.
type Classifier struct {
	// table is the immutable classification table.
	table *Table
	// fs answers directory and regular-file queries.
	fs FileSystem
	// textFormats are asset format names reported as text.
	textFormats map[string]struct{}
}

// NewClassifier creates a classifier bound to table.
func NewClassifier(table *Table, opts ClassifierOptions) (*Classifier, error) {
	if table == nil {
		return nil, ErrNilTable
	}

	opts.applyDefaults()

	textFormats := make(map[string]struct{}, len(opts.TextAssetFormats))
	for _, format := range opts.TextAssetFormats {
		textFormats[format] = struct{}{}
	}

	return &Classifier{
		table:       table,
		fs:          opts.FileSystem,
		textFormats: textFormats,
	}, nil
}

// NewDefaultClassifier creates a host file system classifier over the embedded table.
func NewDefaultClassifier() (*Classifier, error) {
	table, err := DefaultTable()
	if err != nil {
		return nil, err
	}

	return NewClassifier(table, ClassifierOptions{})
}

// Classify returns the classification of path.
//
// Decision order:
// 1. Base name in the ignored set: Ignored, even for directories.
// 2. Directory: Folder.
// 3. Not an existing regular file: Ignored.
// 4. First page type/format declaring the extension: Page.
// 5. First asset type/format declaring the extension: Asset.
// 6. Otherwise: Unknown with the lower-case extension.
func (c *Classifier) Classify(path string) Classification {
	if c == nil {
		return Ignored{}
	}

	if c.table.IsIgnored(itemName(path)) {
		return Ignored{}
	}

	if c.fs.IsDir(path) {
		return Folder{}
	}

	if !c.fs.IsRegular(path) {
		return Ignored{}
	}

	ext := fileExtension(path)
	if m, ok := c.table.lookup(NaturePage, ext); ok {
		return Page{Type: m.typeName, Format: m.format}
	}

	if m, ok := c.table.lookup(NatureAsset, ext); ok {
		return Asset{Type: m.typeName, Format: m.format}
	}

	return Unknown{Extension: ext}
}

// ClassifyInDir classifies entries of one directory.
//
// names are entry names joined to dir with the host separator.
func (c *Classifier) ClassifyInDir(dir string, names []string) []Classification {
	out := make([]Classification, len(names))
	for i, name := range names {
		out[i] = c.Classify(filepath.Join(dir, name))
	}

	return out
}

// IsPage reports whether path classifies as a page.
func (c *Classifier) IsPage(path string) bool {
	return c.Classify(path).Nature() == NaturePage
}

// IsAsset reports whether path classifies as an asset.
func (c *Classifier) IsAsset(path string) bool {
	return c.Classify(path).Nature() == NatureAsset
}

// IsTextFile reports whether path holds text content.
//
// Every page is text. An asset is text when its format is one of the configured
// text asset formats or the table marks the format textual.
func (c *Classifier) IsTextFile(path string) bool {
	switch v := c.Classify(path).(type) {
	case Page:
		return true
	case Asset:
		if _, ok := c.textFormats[v.Format]; ok {
			return true
		}

		return c.table.IsTextual(NatureAsset, v.Type, v.Format)
	}

	return false
}

// Extensions returns extensions registered under nature and optional typeName.
func (c *Classifier) Extensions(nature Nature, typeName string) []string {
	if c == nil {
		return nil
	}

	return c.table.Extensions(nature, typeName)
}

// Table returns the classification table.
func (c *Classifier) Table() *Table {
	if c == nil {
		return nil
	}

	return c.table
}
