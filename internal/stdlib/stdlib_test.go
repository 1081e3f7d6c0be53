package stdlib

import (
	"strings"
	"testing"

	"nickandperla.net/skippy/internal/parser"
)

func TestPreludeParsesLineByLine(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(Prelude), "\n")
	if len(lines) == 0 {
		t.Fatal("empty prelude")
	}
	for i, line := range lines {
		root, err := parser.Parse("prelude.sk", line)
		if err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
		if n := len(root.Children); n != 3 {
			t.Errorf("line %d: expected one expression per line, got %d root children", i+1, n)
		}
	}
}
