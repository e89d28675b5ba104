// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document keys of the classification table.
const (
	keyIgnored    = "ignored"
	keyItems      = "items"
	keyPages      = "pages"
	keyAssets     = "assets"
	keyTypes      = "types"
	keyFormats    = "formats"
	keyExtensions = "extensions"
	keyTextual    = "textual"
)

// ParseTable parses a classification table document from reader.
//
// The document is JSON or YAML with the shape:
//
//	ignored.items: [name, ...]
//	pages.types.<type>.formats.<format>.extensions: [ext, ...]
//	assets.types.<type>.formats.<format>.extensions: [ext, ...]
//
// Mapping order is preserved and defines search order. Unknown keys are ignored.
// Documents starting with "{" are read as JSON first, so JSON-only escapes such
// as "\/" are accepted. Any structural problem is reported as ErrMalformed.
func ParseTable(r io.Reader) (*Table, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	doc, err := decodeDocument(src)
	if err != nil {
		return nil, err
	}

	data, err := parseDocument(doc)
	if err != nil {
		return nil, err
	}

	return newTable(data), nil
}

// decodeDocument decodes src into a node tree, as JSON when it looks like a
// JSON object and as YAML otherwise.
func decodeDocument(src []byte) (*yaml.Node, error) {
	if !looksLikeJSON(src) {
		return decodeYAML(src)
	}

	doc, jsonErr := decodeJSON(src)
	if jsonErr == nil {
		return doc, nil
	}

	// flow-style YAML also starts with "{"
	if doc, err := decodeYAML(src); err == nil {
		return doc, nil
	}

	return nil, jsonErr
}

func decodeYAML(src []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(src)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}

		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return &doc, nil
}

// ParseTableString parses a classification table from string input.
func ParseTableString(src string) (*Table, error) {
	return ParseTable(strings.NewReader(src))
}

// parseDocument converts a decoded document node into normalized table data.
func parseDocument(doc *yaml.Node) (Data, error) {
	root := resolveNode(doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Data{}, fmt.Errorf("%w: empty document", ErrMalformed)
		}

		root = resolveNode(root.Content[0])
	}

	if err := expectKind(root, yaml.MappingNode, "document"); err != nil {
		return Data{}, err
	}

	ignoredNode, err := requiredKey(root, keyIgnored, "")
	if err != nil {
		return Data{}, err
	}

	itemsNode, err := requiredKey(ignoredNode, keyItems, keyIgnored)
	if err != nil {
		return Data{}, err
	}

	ignored, err := parseIgnored(itemsNode, keyIgnored+"."+keyItems)
	if err != nil {
		return Data{}, err
	}

	pages, err := parseNature(root, keyPages)
	if err != nil {
		return Data{}, err
	}

	assets, err := parseNature(root, keyAssets)
	if err != nil {
		return Data{}, err
	}

	return Data{
		Ignored: ignored,
		Pages:   pages,
		Assets:  assets,
	}, nil
}

// parseIgnored parses the ignored item list keeping exact names.
func parseIgnored(n *yaml.Node, path string) ([]string, error) {
	values, err := scalarList(n, path)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out, nil
}

// parseNature parses "<nature>.types" into ordered type entries.
func parseNature(root *yaml.Node, key string) ([]TypeEntry, error) {
	natureNode, err := requiredKey(root, key, "")
	if err != nil {
		return nil, err
	}

	typesNode, err := requiredKey(natureNode, keyTypes, key)
	if err != nil {
		return nil, err
	}

	typesPath := key + "." + keyTypes
	if err := expectMapping(typesNode, typesPath); err != nil {
		return nil, err
	}

	types := make([]TypeEntry, 0, len(typesNode.Content)/2)
	err = eachPair(typesNode, typesPath, func(name string, value *yaml.Node) error {
		typePath := typesPath + "." + name
		formatsNode, err := requiredKey(value, keyFormats, typePath)
		if err != nil {
			return err
		}

		formats, err := parseFormats(formatsNode, typePath+"."+keyFormats)
		if err != nil {
			return err
		}

		types = append(types, TypeEntry{Name: name, Formats: formats})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return types, nil
}

// parseFormats parses one "formats" mapping into ordered format entries.
func parseFormats(n *yaml.Node, path string) ([]FormatEntry, error) {
	if err := expectMapping(n, path); err != nil {
		return nil, err
	}

	formats := make([]FormatEntry, 0, len(n.Content)/2)
	err := eachPair(n, path, func(name string, value *yaml.Node) error {
		formatPath := path + "." + name
		extNode, err := requiredKey(value, keyExtensions, formatPath)
		if err != nil {
			return err
		}

		raw, err := scalarList(extNode, formatPath+"."+keyExtensions)
		if err != nil {
			return err
		}

		exts := NormalizeExtensions(raw)
		if len(exts) == 0 {
			return fmt.Errorf("%w: line %d: %s.%s: no extensions", ErrMalformed, extNode.Line, formatPath, keyExtensions)
		}

		textual := false
		if textualNode, ok, err := optionalKey(value, keyTextual, formatPath); err != nil {
			return err
		} else if ok {
			if textualNode.Kind != yaml.ScalarNode || textualNode.ShortTag() != "!!bool" {
				return fmt.Errorf("%w: line %d: %s.%s: expected boolean", ErrMalformed, textualNode.Line, formatPath, keyTextual)
			}

			if textual, err = strconv.ParseBool(textualNode.Value); err != nil {
				return fmt.Errorf("%w: line %d: %s.%s: expected boolean", ErrMalformed, textualNode.Line, formatPath, keyTextual)
			}
		}

		formats = append(formats, FormatEntry{
			Name:       name,
			Extensions: exts,
			Textual:    textual,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return formats, nil
}

// eachPair calls fn for every key/value pair of mapping n in document order.
func eachPair(n *yaml.Node, path string, fn func(key string, value *yaml.Node) error) error {
	seen := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := resolveNode(n.Content[i])
		if keyNode.Kind != yaml.ScalarNode || strings.TrimSpace(keyNode.Value) == "" {
			return fmt.Errorf("%w: line %d: %s: expected non-empty name", ErrMalformed, keyNode.Line, path)
		}

		if _, ok := seen[keyNode.Value]; ok {
			return fmt.Errorf("%w: line %d: %s: duplicate key %q", ErrMalformed, keyNode.Line, path, keyNode.Value)
		}

		seen[keyNode.Value] = struct{}{}
		if err := fn(keyNode.Value, resolveNode(n.Content[i+1])); err != nil {
			return err
		}
	}

	return nil
}

// requiredKey returns the value of key in mapping n or an ErrMalformed error.
func requiredKey(n *yaml.Node, key string, parent string) (*yaml.Node, error) {
	value, ok, err := optionalKey(n, key, parent)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("%w: line %d: missing key %q", ErrMalformed, n.Line, joinKey(parent, key))
	}

	return value, nil
}

// optionalKey returns the value of key in mapping n when present.
func optionalKey(n *yaml.Node, key string, parent string) (*yaml.Node, bool, error) {
	if err := expectKind(n, yaml.MappingNode, parentName(parent)); err != nil {
		return nil, false, err
	}

	var found *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		if resolveNode(n.Content[i]).Value != key {
			continue
		}

		if found != nil {
			return nil, false, fmt.Errorf("%w: line %d: duplicate key %q", ErrMalformed, n.Content[i].Line, joinKey(parent, key))
		}

		found = resolveNode(n.Content[i+1])
	}

	return found, found != nil, nil
}

// scalarList returns values of a sequence of strings.
//
// Numbers, booleans and nulls are rejected rather than converted.
func scalarList(n *yaml.Node, path string) ([]string, error) {
	if err := expectKind(n, yaml.SequenceNode, path); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolveNode(item)
		if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
			return nil, fmt.Errorf("%w: line %d: %s: expected string item", ErrMalformed, item.Line, path)
		}

		out = append(out, item.Value)
	}

	return out, nil
}

// expectKind reports ErrMalformed when n is not of kind.
func expectKind(n *yaml.Node, kind yaml.Kind, path string) error {
	if n != nil && n.Kind == kind {
		return nil
	}

	line := 0
	if n != nil {
		line = n.Line
	}

	return fmt.Errorf("%w: line %d: %s: expected %s", ErrMalformed, line, path, kindName(kind))
}

// expectMapping is expectKind for mappings that also accepts an empty list,
// which some JSON encoders write for an empty object.
func expectMapping(n *yaml.Node, path string) error {
	if n != nil && n.Kind == yaml.SequenceNode && len(n.Content) == 0 {
		return nil
	}

	return expectKind(n, yaml.MappingNode, path)
}

// resolveNode follows YAML aliases to their anchored node.
func resolveNode(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		return "scalar"
	}

	return "node"
}

func joinKey(parent string, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}

func parentName(parent string) string {
	if parent == "" {
		return "document"
	}

	return parent
}

// MarshalYAML encodes table data in the same document shape ParseTable reads.
func (d Data) MarshalYAML() (interface{}, error) {
	root := mappingNode()

	ignored := mappingNode()
	appendPair(ignored, keyItems, sequenceNode(d.Ignored, yaml.Style(0)))
	appendPair(root, keyIgnored, ignored)

	appendPair(root, keyPages, natureNode(d.Pages))
	appendPair(root, keyAssets, natureNode(d.Assets))

	return root, nil
}

func natureNode(types []TypeEntry) *yaml.Node {
	typesNode := mappingNode()
	for _, typ := range types {
		formatsNode := mappingNode()
		for _, format := range typ.Formats {
			formatNode := mappingNode()
			appendPair(formatNode, keyExtensions, sequenceNode(format.Extensions, yaml.FlowStyle))
			if format.Textual {
				appendPair(formatNode, keyTextual, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
			}

			appendPair(formatsNode, format.Name, formatNode)
		}

		typeNode := mappingNode()
		appendPair(typeNode, keyFormats, formatsNode)
		appendPair(typesNode, typ.Name, typeNode)
	}

	out := mappingNode()
	appendPair(out, keyTypes, typesNode)
	return out
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequenceNode(values []string, style yaml.Style) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: style}
	for _, v := range values {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
	}

	return n
}

func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}
