// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import "errors"

// Sentinel errors for epitypes operations.
var (
	// ErrNotFound indicates the classification table source does not exist.
	ErrNotFound = errors.New("classification table not found")
	// ErrMalformed indicates the classification table cannot be parsed into the expected shape.
	ErrMalformed = errors.New("malformed classification table")
	// ErrNilTable indicates a nil *Table passed to a constructor.
	ErrNilTable = errors.New("classification table is nil")
	// ErrNilClassifier indicates a nil Classifier receiver.
	ErrNilClassifier = errors.New("classifier is nil")
	// ErrInvalidNature indicates an unsupported nature name.
	ErrInvalidNature = errors.New("invalid nature")
)
