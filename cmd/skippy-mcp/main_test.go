package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"nickandperla.net/skippy/internal/config"
	"nickandperla.net/skippy/pkg/skippy"
)

func newSession(t *testing.T) *session {
	t.Helper()
	rt, err := skippy.New(skippy.WithMemoryStore())
	if err != nil {
		t.Fatalf("skippy.New: %v", err)
	}
	t.Cleanup(func() { rt.Close() })
	return &session{rt: rt}
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var sb strings.Builder
	for _, c := range res.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String(), res.IsError
}

func TestEvalTool(t *testing.T) {
	s := newSession(t)
	tests := []struct {
		expr    string
		text    string
		isError bool
	}{
		{"(+ 1 2 3)", "6", false},
		{"(head {})", "Error: Function 'head' passed empty Q-expression!", false},
		{"(+ 1", "", true},
	}
	for _, tt := range tests {
		text, isError := call(t, s.handleEval, map[string]any{"expr": tt.expr})
		if isError != tt.isError {
			t.Errorf("%q: expected isError=%v, got %v (%s)", tt.expr, tt.isError, isError, text)
			continue
		}
		if !tt.isError && text != tt.text {
			t.Errorf("%q: expected '%s', got '%s'", tt.expr, tt.text, text)
		}
	}

	if _, isError := call(t, s.handleEval, map[string]any{}); !isError {
		t.Error("expected missing expr to be a tool error")
	}
}

func TestDefineAndBindingsTools(t *testing.T) {
	s := newSession(t)

	text, isError := call(t, s.handleDefine, map[string]any{"name": "nums", "expr": "{1 2 3}"})
	if isError || text != "()" {
		t.Fatalf("define: got '%s' isError=%v", text, isError)
	}
	if text, _ := call(t, s.handleEval, map[string]any{"expr": "(tail nums)"}); text != "{2 3}" {
		t.Errorf("expected {2 3}, got %s", text)
	}

	text, _ = call(t, s.handleBindings, nil)
	names := strings.Split(text, "\n")
	if names[len(names)-1] != "nums" {
		t.Errorf("expected nums last in bindings, got %v", names)
	}

	for _, bad := range []string{"", "a b", "{x}", "42", "-1.5", "x)"} {
		if _, isError := call(t, s.handleDefine, map[string]any{"name": bad, "expr": "1"}); !isError {
			t.Errorf("expected name %q to be rejected", bad)
		}
	}
}

func TestDefineRejectsMoreThanOneExpression(t *testing.T) {
	s := newSession(t)

	for _, expr := range []string{"1) (def {y} 2", "1 (def {y} 2)", "", "(+ 1"} {
		if _, isError := call(t, s.handleDefine, map[string]any{"name": "x", "expr": expr}); !isError {
			t.Errorf("expr %q: expected tool error", expr)
		}
	}
	for _, name := range []string{"x", "y"} {
		if text, _ := call(t, s.handleEval, map[string]any{"expr": name}); text != "Error: Unbound symbol '"+name+"'!" {
			t.Errorf("rejected define left %s bound: %s", name, text)
		}
	}

	if text, isError := call(t, s.handleDefine, map[string]any{"name": "x", "expr": "(+ 1 2)"}); isError || text != "()" {
		t.Errorf("expected single expression to define, got '%s' isError=%v", text, isError)
	}
}

func TestNewRuntimeConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"defaults", config.Default(), false},
		{"always without db", config.Config{PersistMode: "always"}, true},
		{"unknown mode", config.Config{PersistMode: "sometimes"}, true},
		{"always with db", config.Config{PersistMode: "always", DB: filepath.Join(t.TempDir(), "s.db")}, false},
	}
	for _, tt := range tests {
		rt, err := newRuntime(tt.cfg)
		if tt.wantErr {
			if err == nil {
				rt.Close()
				t.Errorf("%s: expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		rt.Close()
	}
}
