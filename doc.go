// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

/*
Package epitypes classifies filesystem entries into a semantic hierarchy of
nature, type and format driven by a configurable extension table.

Natures:
  - page: editable textual content (documents, code, data)
  - asset: consumable, often binary content (images, audio, archives)
  - folder: a directory
  - ignored: an explicitly ignored item name, or a path that is not a regular file
  - unknown: a regular file whose extension is not in the table

Basic flow:
  - load a table (`Load`, `LoadFile`, `LoadFS`, `LoadBytes` or `DefaultTable`)
  - optionally overlay tables (`Merge`)
  - build a classifier (`NewClassifier`) with an injected `FileSystem`
  - ask for a classification (`Classify`) or a predicate (`IsPage` / `IsAsset` / `IsTextFile`)

Types and formats are searched in table declaration order and the first match
wins, pages before assets. Extensions match case-insensitively.

Table document shape (JSON or YAML):

	{
	  "ignored": {"items": [".git"]},
	  "pages":   {"types": {"document": {"formats": {"markdown": {"extensions": ["md", "markdown"]}}}}},
	  "assets":  {"types": {"image": {"formats": {"svg": {"extensions": ["svg"], "textual": true}}}}}
	}
*/
package epitypes
