// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Command skippy-mcp serves a skippy runtime as MCP tools over stdio.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"nickandperla.net/skippy/internal/ast"
	"nickandperla.net/skippy/internal/config"
	"nickandperla.net/skippy/internal/scanner"
	"nickandperla.net/skippy/internal/token"
	"nickandperla.net/skippy/pkg/skippy"
)

const version = "0.0.0.0.7"

// session serializes tool calls against one runtime.
type session struct {
	mu sync.Mutex
	rt *skippy.Runtime
}

func (s *session) eval(input string) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := s.rt.Eval(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *session) handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.eval(expr)
}

func (s *session) handleDefine(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !validSymbol(name) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid symbol name %q", name)), nil
	}

	root, err := s.rt.Parse(expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if n := countExprs(root); n != 1 {
		return mcp.NewToolResultError(fmt.Sprintf("expr must be exactly one expression, got %d", n)), nil
	}
	return s.eval(fmt.Sprintf("(def {%s} %s)", name, expr))
}

// countExprs counts the top-level expressions under a parsed root.
func countExprs(root *ast.Node) int {
	n := 0
	for _, c := range root.Children {
		if c.Tag != ast.TagRegex {
			n++
		}
	}
	return n
}

func (s *session) handleBindings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mcp.NewToolResultText(strings.Join(s.rt.Bindings(), "\n")), nil
}

// validSymbol reports whether name lexes as exactly one symbol.
func validSymbol(name string) bool {
	sc := scanner.NewFromString(name)
	item, err := sc.Next()
	if err != nil || item.Token != token.SYMBOL || item.Value != name {
		return false
	}
	item, err = sc.Next()
	return err == nil && item.Token == token.EOF
}

func newServer(s *session) *server.MCPServer {
	srv := server.NewMCPServer(
		"skippy",
		version,
		server.WithToolCapabilities(false),
	)

	srv.AddTool(
		mcp.NewTool("skippy_eval",
			mcp.WithDescription("Evaluate one line of skippy. Returns the printed result; language errors print as 'Error: ...'."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("Expression to evaluate, e.g. (+ 1 2) or (head {1 2 3})"),
			),
		),
		s.handleEval,
	)

	srv.AddTool(
		mcp.NewTool("skippy_define",
			mcp.WithDescription("Bind a symbol to the value of an expression, as (def {name} expr)."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Symbol name to define"),
			),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("Expression whose value is bound"),
			),
		),
		s.handleDefine,
	)

	srv.AddTool(
		mcp.NewTool("skippy_bindings",
			mcp.WithDescription("List every bound name, builtins first, one per line."),
		),
		s.handleBindings,
	)

	return srv
}

// newRuntime builds the shared runtime from cfg. Diagnostics go to stderr
// since stdout carries the protocol.
func newRuntime(cfg config.Config) (*skippy.Runtime, error) {
	mode, ok := skippy.ParsePersistMode(cfg.PersistMode)
	if !ok {
		return nil, fmt.Errorf("unknown persist mode: %s (use never or always)", cfg.PersistMode)
	}
	if mode == skippy.PersistAlways && cfg.DB == "" {
		return nil, fmt.Errorf("persist mode always needs a database (-db)")
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := []skippy.Option{
		skippy.WithPersistMode(mode),
		skippy.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))),
	}
	if cfg.DB != "" {
		opts = append(opts, skippy.WithSQLiteStore(cfg.DB))
	}
	switch {
	case cfg.PreludeFile != "":
		src, err := os.ReadFile(cfg.PreludeFile)
		if err != nil {
			return nil, fmt.Errorf("read prelude: %w", err)
		}
		opts = append(opts, skippy.WithPrelude(string(src)))
	case cfg.Stdlib:
		opts = append(opts, skippy.WithStdlib())
	}
	return skippy.New(opts...)
}

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file (default $"+config.EnvVar+")")
		dbPath      = flag.String("db", "", "SQLite database path")
		persistMode = flag.String("persist-mode", "", "Persistence mode: never or always")
	)
	flag.Parse()

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *dbPath != "" {
		cfg.DB = *dbPath
	}
	if *persistMode != "" {
		cfg.PersistMode = *persistMode
	}

	rt, err := newRuntime(cfg)
	if err != nil {
		log.Fatalf("start runtime: %v", err)
	}
	defer rt.Close()

	if err := server.ServeStdio(newServer(&session{rt: rt})); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
