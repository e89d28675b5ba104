// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Source provides a classification table document.
type Source interface {
	// Open returns the raw document. An error matching fs.ErrNotExist means the
	// source is unavailable.
	Open() (io.ReadCloser, error)
}

// FileSource reads a table document from a file path.
type FileSource string

// Open implements Source. A directory is reported as fs.ErrNotExist.
func (s FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(string(s))
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "open", Path: string(s), Err: fs.ErrNotExist}
	}

	return f, nil
}

// String returns the file path.
func (s FileSource) String() string {
	return string(s)
}

// FSSource reads a table document from a file system.
type FSSource struct {
	// FS is the file system holding the document.
	FS fs.FS
	// Name is the slash-separated document path inside FS.
	Name string
}

// Open implements Source. A directory is reported as fs.ErrNotExist.
func (s FSSource) Open() (io.ReadCloser, error) {
	if s.FS == nil {
		return nil, &fs.PathError{Op: "open", Path: s.Name, Err: fs.ErrNotExist}
	}

	f, err := s.FS.Open(s.Name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "open", Path: s.Name, Err: fs.ErrNotExist}
	}

	return f, nil
}

// String returns the document name.
func (s FSSource) String() string {
	return s.Name
}

// BytesSource serves an in-memory table document.
type BytesSource []byte

// Open implements Source. A nil BytesSource is unavailable.
func (s BytesSource) Open() (io.ReadCloser, error) {
	if s == nil {
		return nil, fs.ErrNotExist
	}

	return io.NopCloser(bytes.NewReader(s)), nil
}

// Load reads and parses a classification table from src.
//
// Unavailable sources report ErrNotFound, unparsable documents ErrMalformed.
func Load(src Source) (*Table, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrNotFound)
	}

	rc, err := src.Open()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}

		return nil, fmt.Errorf("open table: %w", err)
	}
	defer func() { _ = rc.Close() }()

	table, err := ParseTable(rc)
	if err != nil {
		if name, ok := src.(fmt.Stringer); ok {
			return nil, fmt.Errorf("parse table %s: %w", name, err)
		}

		return nil, fmt.Errorf("parse table: %w", err)
	}

	return table, nil
}

// LoadFile reads and parses a classification table from a file.
func LoadFile(path string) (*Table, error) {
	return Load(FileSource(path))
}

// LoadFS reads and parses a classification table from a file system.
func LoadFS(fsys fs.FS, name string) (*Table, error) {
	return Load(FSSource{FS: fsys, Name: name})
}

// LoadBytes parses a classification table from an in-memory document.
func LoadBytes(b []byte) (*Table, error) {
	return Load(BytesSource(b))
}

// LoadFiles reads tables from files and merges them in the given order.
func LoadFiles(paths ...string) (*Table, error) {
	tables := make([]*Table, 0, len(paths))
	for _, path := range paths {
		table, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		tables = append(tables, table)
	}

	return Merge(tables...), nil
}
