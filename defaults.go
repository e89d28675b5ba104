// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import (
	_ "embed"
	"fmt"
)

//go:embed epitypes.json
var defaultTableJSON []byte

// DefaultTableName is the file name of the built-in table.
const DefaultTableName = "epitypes.json"

// DefaultTable parses the built-in classification table.
//
// Each call returns a fresh Table.
func DefaultTable() (*Table, error) {
	table, err := LoadBytes(defaultTableJSON)
	if err != nil {
		return nil, fmt.Errorf("default table: %w", err)
	}

	return table, nil
}

// DefaultTableDocument returns a copy of the built-in table document.
func DefaultTableDocument() []byte {
	return append([]byte(nil), defaultTableJSON...)
}
