package scanner

import (
	"testing"

	"nickandperla.net/skippy/internal/token"
)

func scanAll(t *testing.T, input string) []*Item {
	t.Helper()
	s := NewFromString(input)
	var items []*Item
	for {
		item, err := s.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Token == token.EOF {
			return items
		}
		items = append(items, item)
	}
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		input  string
		tokens []token.Token
		values []string
	}{
		{"", nil, nil},
		{"   \t ", nil, nil},
		{"42", []token.Token{token.NUMBER}, []string{"42"}},
		{"-3.25", []token.Token{token.NUMBER}, []string{"-3.25"}},
		{"-", []token.Token{token.SYMBOL}, []string{"-"}},
		{"+ 1 2", []token.Token{token.SYMBOL, token.NUMBER, token.NUMBER}, []string{"+", "1", "2"}},
		{"(head {1 2})", []token.Token{
			token.LPAREN, token.SYMBOL, token.LBRACE, token.NUMBER, token.NUMBER, token.RBRACE, token.RPAREN,
		}, []string{"(", "head", "{", "1", "2", "}", ")"}},
		{"12ab", []token.Token{token.NUMBER, token.SYMBOL}, []string{"12", "ab"}},
		{"1.", []token.Token{token.NUMBER, token.ILLEGAL}, []string{"1", "."}},
		{"undefined-symbol", []token.Token{token.SYMBOL}, []string{"undefined-symbol"}},
		{`a\b=<>!&%^`, []token.Token{token.SYMBOL}, []string{`a\b=<>!&%^`}},
		{"#", []token.Token{token.ILLEGAL}, []string{"#"}},
	}

	for _, tt := range tests {
		items := scanAll(t, tt.input)
		if len(items) != len(tt.tokens) {
			t.Errorf("%q: expected %d tokens, got %d", tt.input, len(tt.tokens), len(items))
			continue
		}
		for i, item := range items {
			if item.Token != tt.tokens[i] {
				t.Errorf("%q: token %d: expected %s, got %s", tt.input, i, tt.tokens[i], item.Token)
			}
			if item.Value != tt.values[i] {
				t.Errorf("%q: value %d: expected '%s', got '%s'", tt.input, i, tt.values[i], item.Value)
			}
		}
	}
}

func TestScanPositions(t *testing.T) {
	items := scanAll(t, "(+ 1\n  22)")
	expected := []struct{ line, col int }{
		{1, 1}, {1, 2}, {1, 4}, {2, 3}, {2, 5},
	}
	if len(items) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(items))
	}
	for i, item := range items {
		if item.Line != expected[i].line || item.Col != expected[i].col {
			t.Errorf("token %d (%s): expected %d:%d, got %d:%d",
				i, item.Value, expected[i].line, expected[i].col, item.Line, item.Col)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := NewFromString("foo bar")
	p, err := s.Peek()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := s.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != n || n.Value != "foo" {
		t.Errorf("expected peeked item 'foo' to be returned by Next, got '%s'", n.Value)
	}
	n, _ = s.Next()
	if n.Value != "bar" {
		t.Errorf("expected 'bar', got '%s'", n.Value)
	}
}
