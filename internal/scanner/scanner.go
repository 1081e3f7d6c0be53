// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a streaming Unicode-aware lexer for skippy.
package scanner

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"nickandperla.net/skippy/internal/token"
)

// Scanner tokenizes skippy input rune-by-rune.
type Scanner struct {
	reader *bufio.Reader
	buf    strings.Builder
	peeked *Item
	line   int // Current line number (1-based)
	col    int // Current column number (1-based)
}

// Item represents a scanned token with its value.
type Item struct {
	Token token.Token
	Value string
	Line  int // Line number where this token started
	Col   int // Column where this token started
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
		line:   1,
		col:    1,
	}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Line returns the current line number (1-based).
func (s *Scanner) Line() int {
	return s.line
}

// Col returns the current column number (1-based).
func (s *Scanner) Col() int {
	return s.col
}

// Peek returns the next item without consuming it.
func (s *Scanner) Peek() (*Item, error) {
	if s.peeked != nil {
		return s.peeked, nil
	}
	item, err := s.Next()
	if err != nil {
		return nil, err
	}
	s.peeked = item
	return item, nil
}

// Next returns the next token from the input.
//
// As with the regex grammar this scanner implements, a number is tried
// before a symbol at each position: "12ab" scans as NUMBER "12" followed
// by SYMBOL "ab", and "-" alone is a symbol.
func (s *Scanner) Next() (*Item, error) {
	if s.peeked != nil {
		item := s.peeked
		s.peeked = nil
		return item, nil
	}

	if err := s.SkipWhitespace(); err != nil {
		return nil, err
	}

	s.buf.Reset()
	startLine, startCol := s.line, s.col

	r, _, err := s.reader.ReadRune()
	if err == io.EOF {
		return &Item{Token: token.EOF, Line: startLine, Col: startCol}, nil
	}
	if err != nil {
		return nil, err
	}
	s.advance(r)

	if token.IsDelimiter(r) {
		return &Item{Token: token.TokenFromRune(r), Value: string(r), Line: startLine, Col: startCol}, nil
	}

	if token.IsDigit(r) || (r == '-' && s.nextIsDigit(0)) {
		s.buf.WriteRune(r)
		if err := s.scanNumber(); err != nil {
			return nil, err
		}
		return &Item{Token: token.NUMBER, Value: s.buf.String(), Line: startLine, Col: startCol}, nil
	}

	if token.IsSymbolRune(r) {
		s.buf.WriteRune(r)
		for {
			next, _, err := s.reader.ReadRune()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			if !token.IsSymbolRune(next) {
				s.reader.UnreadRune()
				break
			}
			s.advance(next)
			s.buf.WriteRune(next)
		}
		return &Item{Token: token.SYMBOL, Value: s.buf.String(), Line: startLine, Col: startCol}, nil
	}

	return &Item{Token: token.ILLEGAL, Value: string(r), Line: startLine, Col: startCol}, nil
}

// scanNumber consumes the remaining digits of a number whose first rune is
// already in buf, plus an optional fractional part.
func (s *Scanner) scanNumber() error {
	if err := s.scanDigits(); err != nil {
		return err
	}
	// The fraction needs a digit after the dot; "1." is NUMBER "1" and
	// leaves "." for the next token.
	b, err := s.reader.Peek(2)
	if err != nil && err != io.EOF {
		return err
	}
	if len(b) == 2 && b[0] == '.' && token.IsDigit(rune(b[1])) {
		s.reader.ReadRune()
		s.advance('.')
		s.buf.WriteRune('.')
		return s.scanDigits()
	}
	return nil
}

func (s *Scanner) scanDigits() error {
	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !token.IsDigit(r) {
			s.reader.UnreadRune()
			return nil
		}
		s.advance(r)
		s.buf.WriteRune(r)
	}
}

// nextIsDigit reports whether the byte at offset n past the read position is
// an ASCII digit.
func (s *Scanner) nextIsDigit(n int) bool {
	b, _ := s.reader.Peek(n + 1)
	return len(b) == n+1 && token.IsDigit(rune(b[n]))
}

// advance updates the position after consuming r.
func (s *Scanner) advance(r rune) {
	if r == '\n' {
		s.line++
		s.col = 1
		return
	}
	s.col++
}

// SkipWhitespace consumes and discards whitespace.
func (s *Scanner) SkipWhitespace() error {
	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			s.reader.UnreadRune()
			return nil
		}
		s.advance(r)
	}
}
