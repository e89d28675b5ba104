// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileSystem answers the two path queries Classify needs.
type FileSystem interface {
	// IsDir reports whether path is an existing directory.
	IsDir(path string) bool
	// IsRegular reports whether path is an existing regular file.
	IsRegular(path string) bool
}

// OSFileSystem queries the host file system. Symlinks are followed.
type OSFileSystem struct{}

// IsDir implements FileSystem.
func (OSFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegular implements FileSystem.
func (OSFileSystem) IsRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// FSFileSystem queries an fs.FS.
//
// Paths are converted to slash form and cleaned; leading "/" and "./" are
// stripped so that callers can pass the same paths they pass to Classify.
type FSFileSystem struct {
	FS fs.FS
}

// IsDir implements FileSystem.
func (f FSFileSystem) IsDir(name string) bool {
	info, ok := f.stat(name)
	return ok && info.IsDir()
}

// IsRegular implements FileSystem.
func (f FSFileSystem) IsRegular(name string) bool {
	info, ok := f.stat(name)
	return ok && info.Mode().IsRegular()
}

func (f FSFileSystem) stat(name string) (fs.FileInfo, bool) {
	if f.FS == nil {
		return nil, false
	}

	name = fsPath(name)
	if !fs.ValidPath(name) {
		return nil, false
	}

	info, err := fs.Stat(f.FS, name)
	if err != nil {
		return nil, false
	}

	return info, true
}

// fsPath converts a host-style path to an fs.FS name.
func fsPath(name string) string {
	name = filepath.ToSlash(strings.TrimSpace(name))
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return "."
	}

	return path.Clean(name)
}
