// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package epitypes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// looksLikeJSON reports whether src starts with a JSON object.
func looksLikeJSON(src []byte) bool {
	src = bytes.TrimLeft(bytes.TrimPrefix(src, utf8BOM), " \t\r\n")
	return len(src) > 0 && src[0] == '{'
}

// jsonDecoder builds a yaml node tree from JSON tokens.
//
// Object member order is kept and every node carries the line of its token,
// so JSON and YAML documents share one table builder and one error format.
type jsonDecoder struct {
	dec *json.Decoder
	// newlines are byte offsets of '\n' in the input.
	newlines []int64
}

// decodeJSON decodes a single JSON value from src into a document node.
func decodeJSON(src []byte) (*yaml.Node, error) {
	src = bytes.TrimPrefix(src, utf8BOM)

	d := &jsonDecoder{
		dec: json.NewDecoder(bytes.NewReader(src)),
	}
	d.dec.UseNumber()
	for i, b := range src {
		if b == '\n' {
			d.newlines = append(d.newlines, int64(i))
		}
	}

	tok, err := d.token()
	if err != nil {
		return nil, err
	}

	root, err := d.value(tok)
	if err != nil {
		return nil, err
	}

	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: line %d: unexpected data after document", ErrMalformed, d.line())
	}

	return &yaml.Node{Kind: yaml.DocumentNode, Line: 1, Column: 1, Content: []*yaml.Node{root}}, nil
}

// value converts tok, and for delimiters everything up to the matching close, to a node.
func (d *jsonDecoder) value(tok json.Token) (*yaml.Node, error) {
	line := d.line()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return d.object(line)
		case '[':
			return d.array(line)
		}

		return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrMalformed, line, v.String())
	case string:
		return scalar("!!str", v, line), nil
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return scalar("!!float", v.String(), line), nil
		}

		return scalar("!!int", v.String(), line), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(v), line), nil
	case nil:
		return scalar("!!null", "null", line), nil
	}

	return nil, fmt.Errorf("%w: line %d: unexpected token %v", ErrMalformed, line, tok)
}

func (d *jsonDecoder) object(line int) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle, Line: line}
	for d.dec.More() {
		keyTok, err := d.token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected object key", ErrMalformed, d.line())
		}

		keyNode := scalar("!!str", key, d.line())

		tok, err := d.token()
		if err != nil {
			return nil, err
		}

		value, err := d.value(tok)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, keyNode, value)
	}

	return n, d.closing('}')
}

func (d *jsonDecoder) array(line int) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle, Line: line}
	for d.dec.More() {
		tok, err := d.token()
		if err != nil {
			return nil, err
		}

		item, err := d.value(tok)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, item)
	}

	return n, d.closing(']')
}

// closing consumes the delimiter ending the current object or array.
func (d *jsonDecoder) closing(want json.Delim) error {
	tok, err := d.token()
	if err != nil {
		return err
	}

	if tok != want {
		return fmt.Errorf("%w: line %d: expected %q", ErrMalformed, d.line(), want.String())
	}

	return nil
}

// token reads the next token, reporting decoder failures as ErrMalformed.
func (d *jsonDecoder) token() (json.Token, error) {
	tok, err := d.dec.Token()
	if err == nil {
		return tok, nil
	}

	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, d.lineAt(syntaxErr.Offset), err)
	}

	return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, d.line(), err)
}

// line returns the line of the last token read.
func (d *jsonDecoder) line() int {
	return d.lineAt(d.dec.InputOffset())
}

// lineAt returns the 1-based line holding the byte just before offset.
func (d *jsonDecoder) lineAt(offset int64) int {
	i, _ := slices.BinarySearch(d.newlines, offset)
	return i + 1
}

func scalar(tag string, value string, line int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, Line: line}
}
