// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import (
	"fmt"
	"strings"
)

// Nature is the top-level classification axis.
type Nature uint8

const (
	// NatureUnknown is a regular file whose extension is not in the table.
	NatureUnknown Nature = iota
	// NatureIgnored is an explicitly ignored item or a path that is not a regular file.
	NatureIgnored
	// NatureFolder is a directory.
	NatureFolder
	// NaturePage is editable textual content.
	NaturePage
	// NatureAsset is consumable, often binary, content.
	NatureAsset
)

var natureNames = [...]string{
	NatureUnknown: "unknown",
	NatureIgnored: "ignored",
	NatureFolder:  "folder",
	NaturePage:    "page",
	NatureAsset:   "asset",
}

// String returns the lower-case nature name.
func (n Nature) String() string {
	if int(n) < len(natureNames) {
		return natureNames[n]
	}

	return fmt.Sprintf("nature(%d)", uint8(n))
}

// MarshalText implements encoding.TextMarshaler.
func (n Nature) MarshalText() ([]byte, error) {
	if int(n) >= len(natureNames) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNature, uint8(n))
	}

	return []byte(natureNames[n]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Nature) UnmarshalText(text []byte) error {
	parsed, err := ParseNature(string(text))
	if err != nil {
		return err
	}

	*n = parsed
	return nil
}

// ParseNature parses a nature name.
//
// Table section names ("pages", "assets") are accepted as aliases.
func ParseNature(s string) (Nature, error) {
	switch asciiLower(strings.TrimSpace(s)) {
	case "page", "pages":
		return NaturePage, nil
	case "asset", "assets":
		return NatureAsset, nil
	case "folder", "folders":
		return NatureFolder, nil
	case "ignored":
		return NatureIgnored, nil
	case "unknown":
		return NatureUnknown, nil
	}

	return NatureUnknown, fmt.Errorf("%w: %q", ErrInvalidNature, s)
}

// Classification is the result of classifying one path.
//
// The concrete value is one of Ignored, Folder, Page, Asset or Unknown.
type Classification interface {
	// Nature reports the top-level axis of the classification.
	Nature() Nature
	String() string

	classification()
}

// Ignored is an explicitly ignored item or a path that does not resolve to a regular file.
type Ignored struct{}

// Folder is a directory.
type Folder struct{}

// Page is a textual, editable file.
type Page struct {
	// Type is the page type name from the table.
	Type string `json:"type" yaml:"type"`
	// Format is the format name within Type.
	Format string `json:"format" yaml:"format"`
}

// Asset is a consumable file.
type Asset struct {
	// Type is the asset type name from the table.
	Type string `json:"type" yaml:"type"`
	// Format is the format name within Type.
	Format string `json:"format" yaml:"format"`
}

// Unknown is a regular file whose extension is not registered in the table.
type Unknown struct {
	// Extension is the lower-case extension without dot, empty for extensionless files.
	Extension string `json:"extension" yaml:"extension"`
}

func (Ignored) Nature() Nature { return NatureIgnored }
func (Folder) Nature() Nature  { return NatureFolder }
func (Page) Nature() Nature    { return NaturePage }
func (Asset) Nature() Nature   { return NatureAsset }
func (Unknown) Nature() Nature { return NatureUnknown }

func (Ignored) String() string { return NatureIgnored.String() }
func (Folder) String() string  { return NatureFolder.String() }
func (p Page) String() string  { return NaturePage.String() + "/" + p.Type + "/" + p.Format }
func (a Asset) String() string { return NatureAsset.String() + "/" + a.Type + "/" + a.Format }
func (u Unknown) String() string {
	if u.Extension == "" {
		return NatureUnknown.String()
	}

	return NatureUnknown.String() + "/" + u.Extension
}

func (Ignored) classification() {}
func (Folder) classification()  {}
func (Page) classification()    {}
func (Asset) classification()   {}
func (Unknown) classification() {}

// Record is a flat, serializable view of one classified path.
type Record struct {
	// Path is the classified input path.
	Path string `json:"path" yaml:"path"`
	// Nature is the top-level axis.
	Nature Nature `json:"nature" yaml:"nature"`
	// Type is set for pages and assets.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Format is set for pages and assets.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	// Extension is set for unknown files.
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
}

// NewRecord flattens a classification of path into a Record.
func NewRecord(path string, c Classification) Record {
	rec := Record{Path: path, Nature: NatureIgnored}
	if c == nil {
		return rec
	}

	rec.Nature = c.Nature()
	switch v := c.(type) {
	case Page:
		rec.Type, rec.Format = v.Type, v.Format
	case Asset:
		rec.Type, rec.Format = v.Type, v.Format
	case Unknown:
		rec.Extension = v.Extension
	}

	return rec
}

// ClassifierOptions controls classifier behavior.
type ClassifierOptions struct {
	// FileSystem answers directory and regular-file queries.
	// Nil defaults to OSFileSystem.
	FileSystem FileSystem `json:"-" yaml:"-"`
	// TextAssetFormats lists asset format names treated as text by IsTextFile.
	// Nil defaults to DefaultTextAssetFormats; an empty non-nil slice disables
	// text asset detection.
	TextAssetFormats []string `json:"text_asset_formats,omitempty" yaml:"text_asset_formats,omitempty"`
}

// DefaultTextAssetFormats are asset formats whose content is text.
var DefaultTextAssetFormats = []string{"svg"}

// applyDefaults fills zero-valued options with defaults.
func (opts *ClassifierOptions) applyDefaults() {
	if opts.FileSystem == nil {
		opts.FileSystem = OSFileSystem{}
	}

	if opts.TextAssetFormats == nil {
		opts.TextAssetFormats = DefaultTextAssetFormats
	}
}
