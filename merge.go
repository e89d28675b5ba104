// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

// Merge overlays tables in the given order into a new table.
//
// Ignored items are unioned. Types and formats are merged by name and keep the
// position of their first declaration, so earlier tables keep search priority.
// Extensions of a merged format are unioned; Textual is set when any input sets it.
// Nil tables are skipped.
func Merge(tables ...*Table) *Table {
	var out Data
	seenIgnored := make(map[string]struct{})
	for _, t := range tables {
		if t == nil {
			continue
		}

		for _, name := range t.data.Ignored {
			if _, ok := seenIgnored[name]; ok {
				continue
			}

			seenIgnored[name] = struct{}{}
			out.Ignored = append(out.Ignored, name)
		}

		out.Pages = mergeTypes(out.Pages, t.data.Pages)
		out.Assets = mergeTypes(out.Assets, t.data.Assets)
	}

	return newTable(out)
}

// mergeTypes overlays src types onto dst, returning the merged slice.
func mergeTypes(dst []TypeEntry, src []TypeEntry) []TypeEntry {
	for _, typ := range copyTypes(src) {
		i := indexOfType(dst, typ.Name)
		if i < 0 {
			dst = append(dst, typ)
			continue
		}

		for _, format := range typ.Formats {
			j := indexOfFormat(dst[i].Formats, format.Name)
			if j < 0 {
				dst[i].Formats = append(dst[i].Formats, format)
				continue
			}

			merged := &dst[i].Formats[j]
			merged.Extensions = NormalizeExtensions(append(merged.Extensions, format.Extensions...))
			merged.Textual = merged.Textual || format.Textual
		}
	}

	return dst
}

func indexOfType(types []TypeEntry, name string) int {
	for i := range types {
		if types[i].Name == name {
			return i
		}
	}

	return -1
}

func indexOfFormat(formats []FormatEntry, name string) int {
	for i := range formats {
		if formats[i].Name == name {
			return i
		}
	}

	return -1
}
