package skippy

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nickandperla.net/skippy/internal/parser"
	"nickandperla.net/skippy/internal/store"
)

func newRuntime(t *testing.T, opts ...Option) *Runtime {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestEval(t *testing.T) {
	r := newRuntime(t)
	tests := []struct {
		input    string
		expected string
	}{
		{"+ 1 2", "3"},
		{"(eval (list + 1 2 3))", "6"},
		{"(head {})", "Error: Function 'head' passed empty Q-expression!"},
		{"(def {x} 10)", "()"},
		{"(* x 2)", "20"},
		{"", "()"},
		{"head", "<function>"},
	}
	for _, tt := range tests {
		got, err := r.Eval(tt.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("%q: expected '%s', got '%s'", tt.input, tt.expected, got)
		}
	}
}

func TestEvalSyntaxError(t *testing.T) {
	r := newRuntime(t)
	_, err := r.Eval("(+ 1 2")
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *parser.SyntaxError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "<stdin>:1:") {
		t.Errorf("unexpected diagnostic: %s", err)
	}

	// The runtime keeps working.
	if got, _ := r.Eval("(+ 1 1)"); got != "2" {
		t.Errorf("expected 2, got %s", got)
	}
}

func TestWithFilename(t *testing.T) {
	r := newRuntime(t, WithFilename("demo.sk"))
	_, err := r.Eval("}")
	if err == nil || !strings.HasPrefix(err.Error(), "demo.sk:1:1: error:") {
		t.Errorf("expected demo.sk diagnostic, got %v", err)
	}
}

func TestNoPreludeByDefault(t *testing.T) {
	r := newRuntime(t)
	for _, name := range []string{"nil", "true", "e", "pi"} {
		expected := "Error: Unbound symbol '" + name + "'!"
		if got, _ := r.Eval(name); got != expected {
			t.Errorf("%q: expected '%s', got '%s'", name, expected, got)
		}
	}
	if got, _ := r.Eval("(+ 1 e)"); got != "Error: Unbound symbol 'e'!" {
		t.Errorf("expected unbound e, got '%s'", got)
	}
}

func TestStdlibOption(t *testing.T) {
	r := newRuntime(t, WithStdlib())
	for input, expected := range map[string]string{
		"nil":           "{}",
		"(+ true 1)":    "2",
		"false":         "0",
		"(join nil {})": "{}",
	} {
		if got, _ := r.Eval(input); got != expected {
			t.Errorf("%q: expected '%s', got '%s'", input, expected, got)
		}
	}
}

func TestCustomPrelude(t *testing.T) {
	r := newRuntime(t, WithPrelude("(def {answer} 42)\n\n(def {twice} (* answer 2))\n"))
	if got, _ := r.Eval("twice"); got != "84" {
		t.Errorf("expected 84, got '%s'", got)
	}
	if got, _ := r.Eval("nil"); !strings.HasPrefix(got, "Error:") {
		t.Errorf("custom prelude should not bind the stdlib, got '%s'", got)
	}
}

func TestBadPrelude(t *testing.T) {
	if _, err := New(WithPrelude("(def {x} 1)\n(def {y")); err == nil {
		t.Fatal("expected prelude syntax error")
	}
}

func TestLoadReader(t *testing.T) {
	r := newRuntime(t, WithFilename("script.sk"))
	var out bytes.Buffer
	src := "(def {a} 2)\n\n(* a a)\n(/ a 0)\n"
	if err := r.LoadReader(strings.NewReader(src), &out); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	expected := "()\n4\nError: Division by zero!\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}

	err := r.LoadReader(strings.NewReader("(+ 1 1)\n(+ 1\n(def {never} 1)\n"), nil)
	if err == nil || !strings.HasPrefix(err.Error(), "script.sk:2:") {
		t.Fatalf("expected syntax error on line 2, got %v", err)
	}
	if got, _ := r.Eval("never"); !strings.HasPrefix(got, "Error:") {
		t.Errorf("loading should stop at the syntax error, never = %s", got)
	}
}

func TestLoadReaderLongLine(t *testing.T) {
	line := "(+" + strings.Repeat(" 1", 40000) + ")"
	if len(line) <= 64*1024 {
		t.Fatalf("test line too short: %d bytes", len(line))
	}
	r := newRuntime(t)
	var out bytes.Buffer
	if err := r.LoadReader(strings.NewReader(line+"\n(+ 1 2)"), &out); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if out.String() != "40000\n3\n" {
		t.Errorf("expected both lines evaluated, got %q", out.String())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.sk")
	if err := os.WriteFile(path, []byte("(def {l} {1 2 3})\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := newRuntime(t)
	if err := r.LoadFile(path, nil); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got, _ := r.Eval("(tail l)"); got != "{2 3}" {
		t.Errorf("expected {2 3}, got %s", got)
	}
	if err := r.LoadFile(filepath.Join(t.TempDir(), "missing.sk"), nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBindings(t *testing.T) {
	r := newRuntime(t)
	r.Eval("(def {zz} 1)")
	names := r.Bindings()
	if names[len(names)-1] != "zz" {
		t.Errorf("expected zz last, got %v", names)
	}
	found := false
	for _, n := range names {
		if n == "def" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected builtins in bindings, got %v", names)
	}
}

func TestSQLitePersistenceAcrossRuntimes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skippy.db")

	r1, err := New(WithSQLiteStore(path), WithPersistMode(PersistAlways))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r1.Eval("(def {x l} 5 {1 2 (+ 1 2)})")
	r1.Eval("(def {nil} 7)")
	r1.Close()

	r2 := newRuntime(t, WithSQLiteStore(path), WithPersistMode(PersistAlways), WithStdlib())
	tests := map[string]string{
		"(+ x 1)":                "6",
		"l":                      "{1 2 (+ 1 2)}",
		"(eval (tail (tail l)))": "3",
		// Restored bindings win over the prelude.
		"nil": "7",
	}
	for input, expected := range tests {
		if got, _ := r2.Eval(input); got != expected {
			t.Errorf("%q: expected '%s', got '%s'", input, expected, got)
		}
	}

	// PersistNever neither restores nor writes.
	r3 := newRuntime(t, WithSQLiteStore(path))
	if got, _ := r3.Eval("x"); !strings.HasPrefix(got, "Error:") {
		t.Errorf("expected x unbound without persistence, got %s", got)
	}
}

func TestWithSQLiteStoreError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "no", "such", "dir", "x.db")
	if _, err := New(WithSQLiteStore(dir)); err == nil {
		t.Fatal("expected open error")
	}
}

func TestParsePersistMode(t *testing.T) {
	if m, ok := ParsePersistMode("always"); !ok || m != PersistAlways {
		t.Errorf("expected PersistAlways, got %v %v", m, ok)
	}
	if _, ok := ParsePersistMode("on_demand"); ok {
		t.Error("expected on_demand to be rejected")
	}
}

func TestPreludeIsNotPersisted(t *testing.T) {
	s := store.NewMemory()
	r := newRuntime(t, WithStore(s), WithPersistMode(PersistAlways), WithStdlib())
	r.Eval("(def {mine} 1)")

	names, err := s.Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != 1 || names[0] != "mine" {
		t.Errorf("expected only [mine] in store, got %v", names)
	}
}

func TestPersistAlwaysNeedsStore(t *testing.T) {
	if _, err := New(WithPersistMode(PersistAlways)); err == nil {
		t.Fatal("expected error for PersistAlways without a store")
	}
}
