// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines skippy token types and delimiter constants.
package token

// Token represents a skippy token type.
type Token int

const (
	EOF Token = iota
	ILLEGAL

	NUMBER // -?[0-9]+([.][0-9]+)?
	SYMBOL // [a-zA-Z0-9_+\-*/\\=<>!&%^]+

	// Delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
)

// Delimiter runes.
const (
	RuneLParen = '('
	RuneRParen = ')'
	RuneLBrace = '{'
	RuneRBrace = '}'
)

// IsDelimiter returns true if the rune opens or closes a list.
func IsDelimiter(r rune) bool {
	switch r {
	case RuneLParen, RuneRParen, RuneLBrace, RuneRBrace:
		return true
	}
	return false
}

// TokenFromRune returns the token type for a delimiter rune.
func TokenFromRune(r rune) Token {
	switch r {
	case RuneLParen:
		return LPAREN
	case RuneRParen:
		return RPAREN
	case RuneLBrace:
		return LBRACE
	case RuneRBrace:
		return RBRACE
	}
	return ILLEGAL
}

// IsSymbolRune returns true if the rune may appear in a symbol.
func IsSymbolRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '_', '+', '-', '*', '/', '\\', '=', '<', '>', '!', '&', '%', '^':
		return true
	}
	return false
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// String returns the string representation of a token.
func (t Token) String() string {
	switch t {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case NUMBER:
		return "NUMBER"
	case SYMBOL:
		return "SYMBOL"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	}
	return "UNKNOWN"
}

// Describe returns the user-facing description of a token, as used in
// syntax error messages.
func (t Token) Describe() string {
	switch t {
	case EOF:
		return "end of input"
	case NUMBER:
		return "number"
	case SYMBOL:
		return "symbol"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case LBRACE:
		return "'{'"
	case RBRACE:
		return "'}'"
	}
	return "illegal character"
}

// IsOpen returns true if the token opens a list.
func (t Token) IsOpen() bool {
	return t == LPAREN || t == LBRACE
}

// Closer returns the token that closes a list opened by t, or ILLEGAL.
func (t Token) Closer() Token {
	switch t {
	case LPAREN:
		return RPAREN
	case LBRACE:
		return RBRACE
	}
	return ILLEGAL
}
