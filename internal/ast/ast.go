// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package ast defines the syntax tree produced by the skippy parser.
//
// Tags follow the mpc convention: the root is ">", anchors are "regex",
// delimiters are "char", and an expression node carries the chain of rules
// that produced it, e.g. "expr|number|regex" or "expr|sexpr|>".
package ast

import (
	"fmt"
	"io"
	"strings"
)

// Tags emitted by the parser.
const (
	TagRoot   = ">"
	TagRegex  = "regex"
	TagChar   = "char"
	TagNumber = "expr|number|regex"
	TagSymbol = "expr|symbol|regex"
	TagSExpr  = "expr|sexpr|>"
	TagQExpr  = "expr|qexpr|>"
)

// Node is a syntax tree node.
type Node struct {
	Tag      string
	Contents string // Matched text for leaves; empty for interior nodes
	Children []*Node
	Line     int
	Col      int
}

// IsRoot returns true if the node is the syntax root.
func (n *Node) IsRoot() bool { return n.Tag == TagRoot }

// HasTag reports whether the node's tag contains the given rule name.
func (n *Node) HasTag(rule string) bool { return strings.Contains(n.Tag, rule) }

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// CountNodes returns the number of nodes in the tree rooted at n.
func CountNodes(n *Node) int {
	total := 1
	for _, c := range n.Children {
		total += CountNodes(c)
	}
	return total
}

// CountLeaves returns the number of childless nodes in the tree rooted at n.
func CountLeaves(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += CountLeaves(c)
	}
	return total
}

// Fprint writes an indented dump of the tree to w.
func Fprint(w io.Writer, n *Node) error {
	return fprint(w, n, 0)
}

func fprint(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	var err error
	if n.IsLeaf() && n.Tag != TagRoot {
		_, err = fmt.Fprintf(w, "%s%s:%d:%d '%s'\n", indent, n.Tag, n.Line, n.Col, n.Contents)
	} else {
		_, err = fmt.Fprintf(w, "%s%s \n", indent, n.Tag)
	}
	if err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := fprint(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// String returns the tree dump as a string.
func (n *Node) String() string {
	var sb strings.Builder
	Fprint(&sb, n)
	return sb.String()
}
