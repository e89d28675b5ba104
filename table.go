// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

// FormatEntry is one concrete file format within a type.
type FormatEntry struct {
	// Name is the format name, unique within its type.
	Name string `json:"name" yaml:"name"`
	// Extensions are lower-case extensions without leading dot, never empty.
	Extensions []string `json:"extensions" yaml:"extensions"`
	// Textual marks format content as text regardless of its nature.
	Textual bool `json:"textual,omitempty" yaml:"textual,omitempty"`
}

// TypeEntry is one semantic grouping of formats within a nature.
type TypeEntry struct {
	// Name is the type name, unique within its nature.
	Name string `json:"name" yaml:"name"`
	// Formats are searched in declaration order.
	Formats []FormatEntry `json:"formats" yaml:"formats"`
}

// Data is the raw ordered content of a classification table.
type Data struct {
	// Ignored are exact item names matched against the path base name.
	Ignored []string `json:"ignored" yaml:"ignored"`
	// Pages are page types in declaration order.
	Pages []TypeEntry `json:"pages" yaml:"pages"`
	// Assets are asset types in declaration order.
	Assets []TypeEntry `json:"assets" yaml:"assets"`
}

// Table is an immutable classification table.
//
// A Table is safe for concurrent use; nothing mutates it after construction.
type Table struct {
	// ignored is the exact-name ignore set.
	ignored map[string]struct{}
	// pageIndex maps extension to first declared page match.
	pageIndex map[string]tableMatch
	// assetIndex maps extension to first declared asset match.
	assetIndex map[string]tableMatch
	// data keeps declaration order for queries and introspection.
	data Data
}

// tableMatch is one resolved (type, format) location.
type tableMatch struct {
	typeName string
	format   string
	textual  bool
}

// Overlap describes an extension registered under more than one table entry.
type Overlap struct {
	// Extension is the shared extension.
	Extension string `json:"extension" yaml:"extension"`
	// Winner is the entry Classify resolves the extension to.
	Winner Classification `json:"-" yaml:"-"`
	// Shadowed are entries never reached for Extension, in declaration order.
	Shadowed []Classification `json:"-" yaml:"-"`
}

// newTable builds lookup indexes over data. data must already be normalized.
func newTable(data Data) *Table {
	t := &Table{
		ignored:    make(map[string]struct{}, len(data.Ignored)),
		pageIndex:  buildIndex(data.Pages),
		assetIndex: buildIndex(data.Assets),
		data:       data,
	}

	for _, name := range data.Ignored {
		t.ignored[name] = struct{}{}
	}

	return t
}

// buildIndex maps each extension to its first declared (type, format).
//
// Iterating in declaration order and keeping the first insertion gives the same
// answer as an ordered linear search that stops at the first match.
func buildIndex(types []TypeEntry) map[string]tableMatch {
	index := make(map[string]tableMatch)
	for i := range types {
		for _, format := range types[i].Formats {
			for _, ext := range format.Extensions {
				if _, ok := index[ext]; ok {
					continue
				}

				index[ext] = tableMatch{
					typeName: types[i].Name,
					format:   format.Name,
					textual:  format.Textual,
				}
			}
		}
	}

	return index
}

// IsIgnored reports whether name is an explicitly ignored item.
func (t *Table) IsIgnored(name string) bool {
	if t == nil {
		return false
	}

	_, ok := t.ignored[name]
	return ok
}

// Lookup returns the first (type, format) declared for ext under nature.
//
// ext is matched exactly; callers pass lower-case extensions without dot.
func (t *Table) Lookup(nature Nature, ext string) (typeName string, format string, ok bool) {
	m, ok := t.lookup(nature, ext)
	return m.typeName, m.format, ok
}

func (t *Table) lookup(nature Nature, ext string) (tableMatch, bool) {
	if t == nil {
		return tableMatch{}, false
	}

	var index map[string]tableMatch
	switch nature {
	case NaturePage:
		index = t.pageIndex
	case NatureAsset:
		index = t.assetIndex
	default:
		return tableMatch{}, false
	}

	m, ok := index[ext]
	return m, ok
}

// IsTextual reports whether the table marks format of typeName under nature as textual.
func (t *Table) IsTextual(nature Nature, typeName string, format string) bool {
	if t == nil {
		return false
	}

	for _, typ := range t.types(nature) {
		if typ.Name != typeName {
			continue
		}

		for _, f := range typ.Formats {
			if f.Name == format {
				return f.Textual
			}
		}
	}

	return false
}

// Data returns a deep copy of the table content in declaration order.
func (t *Table) Data() Data {
	if t == nil {
		return Data{}
	}

	return Data{
		Ignored: append([]string(nil), t.data.Ignored...),
		Pages:   copyTypes(t.data.Pages),
		Assets:  copyTypes(t.data.Assets),
	}
}

// Overlaps reports extensions registered under more than one entry.
//
// Pages are searched before assets, so a page entry always shadows an asset entry.
func (t *Table) Overlaps() []Overlap {
	if t == nil {
		return nil
	}

	var order []string
	byExt := make(map[string][]Classification)
	collect := func(nature Nature, types []TypeEntry) {
		for i := range types {
			for _, format := range types[i].Formats {
				var c Classification = Page{Type: types[i].Name, Format: format.Name}
				if nature == NatureAsset {
					c = Asset{Type: types[i].Name, Format: format.Name}
				}

				for _, ext := range format.Extensions {
					if _, ok := byExt[ext]; !ok {
						order = append(order, ext)
					}

					byExt[ext] = append(byExt[ext], c)
				}
			}
		}
	}

	collect(NaturePage, t.data.Pages)
	collect(NatureAsset, t.data.Assets)

	var out []Overlap
	for _, ext := range order {
		entries := byExt[ext]
		if len(entries) < 2 {
			continue
		}

		out = append(out, Overlap{
			Extension: ext,
			Winner:    entries[0],
			Shadowed:  entries[1:],
		})
	}

	return out
}

// types returns declared types for nature.
func (t *Table) types(nature Nature) []TypeEntry {
	switch nature {
	case NaturePage:
		return t.data.Pages
	case NatureAsset:
		return t.data.Assets
	}

	return nil
}

func copyTypes(types []TypeEntry) []TypeEntry {
	if types == nil {
		return nil
	}

	out := make([]TypeEntry, len(types))
	for i := range types {
		out[i].Name = types[i].Name
		out[i].Formats = make([]FormatEntry, len(types[i].Formats))
		for j, f := range types[i].Formats {
			out[i].Formats[j] = FormatEntry{
				Name:       f.Name,
				Extensions: append([]string(nil), f.Extensions...),
				Textual:    f.Textual,
			}
		}
	}

	return out
}
