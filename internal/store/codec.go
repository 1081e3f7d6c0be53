// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package store

import (
	"fmt"
	"strconv"

	"nickandperla.net/skippy/internal/parser"
	"nickandperla.net/skippy/internal/reader"
	"nickandperla.net/skippy/internal/value"
)

// Encode flattens v into a kind tag and a source text.
//
// Lists are written with value.Source and read back through the parser,
// so a builtin nested inside a list comes back as the symbol of its id.
func Encode(v *value.Value) (kind, source string) {
	kind = v.Kind().String()
	if v.Is(value.Error) {
		return kind, v.Err()
	}
	return kind, v.Source()
}

// Decode is the inverse of Encode.
func Decode(kind, source string) (*value.Value, error) {
	switch kind {
	case value.Number.String():
		x, err := strconv.ParseFloat(source, 64)
		if err != nil {
			return nil, fmt.Errorf("decode number %q: %w", source, err)
		}
		return value.Num(x), nil
	case value.Error.String():
		return value.Err("%s", source), nil
	case value.Symbol.String():
		return value.Sym(source), nil
	case value.Func.String():
		return value.Fun(source), nil
	case value.SExpr.String(), value.QExpr.String():
		root, err := parser.Parse("<store>", source)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
		top := reader.Read(root)
		if top.Len() != 1 {
			return nil, fmt.Errorf("decode %s: expected one expression, got %d", kind, top.Len())
		}
		x := top.Take(0)
		if x.Kind().String() != kind {
			return nil, fmt.Errorf("decode %s: read back %s", kind, x.Kind())
		}
		return x, nil
	}
	return nil, fmt.Errorf("decode: unknown kind %q", kind)
}
