// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parser builds skippy syntax trees from source text.
package parser

import (
	"fmt"
	"io"
	"strings"

	"nickandperla.net/skippy/internal/ast"
	"nickandperla.net/skippy/internal/scanner"
	"nickandperla.net/skippy/internal/token"
)

// SyntaxError describes malformed input.
type SyntaxError struct {
	Filename string
	Line     int
	Col      int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: error: %s", e.Filename, e.Line, e.Col, e.Msg)
}

// Parser is a recursive-descent parser over a scanner.
type Parser struct {
	filename string
	scan     *scanner.Scanner
}

// New creates a parser reading from r. The filename is used in diagnostics.
func New(filename string, r io.Reader) *Parser {
	return &Parser{filename: filename, scan: scanner.New(r)}
}

// Parse parses a complete input into a tree rooted at a ">" node.
func Parse(filename, input string) (*ast.Node, error) {
	return New(filename, strings.NewReader(input)).Parse()
}

// Parse consumes the whole input.
//
//	skippy : /^/ <expr>* /$/ ;
func (p *Parser) Parse() (*ast.Node, error) {
	root := &ast.Node{Tag: ast.TagRoot, Line: 1, Col: 1}
	root.Children = append(root.Children, &ast.Node{Tag: ast.TagRegex, Line: 1, Col: 1})

	for {
		item, err := p.scan.Next()
		if err != nil {
			return nil, err
		}
		if item.Token == token.EOF {
			root.Children = append(root.Children, &ast.Node{Tag: ast.TagRegex, Line: item.Line, Col: item.Col})
			return root, nil
		}
		if item.Token == token.RPAREN || item.Token == token.RBRACE {
			return nil, p.errorf(item, "unexpected %s, expected expression or end of input", item.Token.Describe())
		}
		node, err := p.parseExpr(item)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, node)
	}
}

// parseExpr parses one expression starting at item.
//
//	expr : <number> | <symbol> | <sexpr> | <qexpr> ;
func (p *Parser) parseExpr(item *scanner.Item) (*ast.Node, error) {
	switch item.Token {
	case token.NUMBER:
		return &ast.Node{Tag: ast.TagNumber, Contents: item.Value, Line: item.Line, Col: item.Col}, nil
	case token.SYMBOL:
		return &ast.Node{Tag: ast.TagSymbol, Contents: item.Value, Line: item.Line, Col: item.Col}, nil
	case token.LPAREN, token.LBRACE:
		return p.parseList(item)
	case token.ILLEGAL:
		return nil, p.errorf(item, "unexpected character '%s'", item.Value)
	}
	return nil, p.errorf(item, "unexpected %s, expected expression", item.Token.Describe())
}

// parseList parses the body of a list whose opening delimiter is open.
//
//	sexpr : '(' <expr>* ')' ;
//	qexpr : '{' <expr>* '}' ;
func (p *Parser) parseList(open *scanner.Item) (*ast.Node, error) {
	tag := ast.TagSExpr
	if open.Token == token.LBRACE {
		tag = ast.TagQExpr
	}
	closer := open.Token.Closer()

	node := &ast.Node{Tag: tag, Line: open.Line, Col: open.Col}
	node.Children = append(node.Children, &ast.Node{Tag: ast.TagChar, Contents: open.Value, Line: open.Line, Col: open.Col})

	for {
		item, err := p.scan.Next()
		if err != nil {
			return nil, err
		}
		switch {
		case item.Token == closer:
			node.Children = append(node.Children, &ast.Node{Tag: ast.TagChar, Contents: item.Value, Line: item.Line, Col: item.Col})
			return node, nil
		case item.Token == token.EOF, item.Token == token.RPAREN, item.Token == token.RBRACE:
			return nil, p.errorf(item, "expected expression or %s, got %s", closer.Describe(), item.Token.Describe())
		}
		child, err := p.parseExpr(item)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
}

func (p *Parser) errorf(item *scanner.Item, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Filename: p.filename,
		Line:     item.Line,
		Col:      item.Col,
		Msg:      fmt.Sprintf(format, args...),
	}
}
