// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package reader turns syntax trees into skippy values.
package reader

import (
	"strconv"

	"nickandperla.net/skippy/internal/ast"
	"nickandperla.net/skippy/internal/value"
)

// Read converts a syntax tree node into a freshly owned value tree.
func Read(n *ast.Node) *value.Value {
	if n.HasTag("number") {
		return readNumber(n)
	}
	if n.HasTag("symbol") {
		return value.Sym(n.Contents)
	}

	var x *value.Value
	switch {
	case n.IsRoot(), n.HasTag("sexpr"):
		x = value.NewSExpr()
	case n.HasTag("qexpr"):
		x = value.NewQExpr()
	default:
		x = value.NewSExpr()
	}

	for _, c := range n.Children {
		if isPunctuation(c) {
			continue
		}
		x.Add(Read(c))
	}
	return x
}

func readNumber(n *ast.Node) *value.Value {
	f, err := strconv.ParseFloat(n.Contents, 64)
	if err != nil {
		return value.Err("invalid number")
	}
	return value.Num(f)
}

// isPunctuation reports whether a child node is structural only.
func isPunctuation(n *ast.Node) bool {
	switch n.Contents {
	case "(", ")", "{", "}":
		return true
	}
	return n.Tag == ast.TagRegex
}
