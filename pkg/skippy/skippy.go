// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package skippy provides the skippy runtime.
package skippy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"nickandperla.net/skippy/internal/ast"
	"nickandperla.net/skippy/internal/eval"
	"nickandperla.net/skippy/internal/parser"
	"nickandperla.net/skippy/internal/reader"
	"nickandperla.net/skippy/internal/store"
	"nickandperla.net/skippy/internal/value"
)

// Value is a skippy runtime value.
type Value = value.Value

// Runtime is the skippy interpreter runtime.
type Runtime struct {
	evaluator   *eval.Evaluator
	store       store.Store
	persistMode eval.PersistMode
	logger      *slog.Logger
	prelude     string
	filename    string
	err         error // first option failure
}

// New creates a runtime. Builtins are bound first, then the prelude (if
// any) is loaded, then (with PersistAlways) stored bindings are restored
// over it. PersistAlways requires a store.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{
		logger:   slog.New(slog.DiscardHandler),
		filename: "<stdin>",
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.err != nil {
		r.Close()
		return nil, r.err
	}
	if r.persistMode == eval.PersistAlways && r.store == nil {
		return nil, fmt.Errorf("persist mode %s needs a store", r.persistMode)
	}

	// The prelude is never written through to the store.
	evalOpts := []eval.Option{eval.WithLogger(r.logger)}
	if r.store != nil {
		evalOpts = append(evalOpts, eval.WithStore(r.store))
	}
	r.evaluator = eval.New(evalOpts...)

	if r.prelude != "" {
		if _, err := r.load("prelude", strings.NewReader(r.prelude), nil); err != nil {
			r.Close()
			return nil, fmt.Errorf("load prelude: %w", err)
		}
	}

	r.evaluator.SetPersistMode(r.persistMode)
	if r.persistMode == eval.PersistAlways {
		if err := r.evaluator.Restore(); err != nil {
			r.Close()
			return nil, fmt.Errorf("restore bindings: %w", err)
		}
	}

	return r, nil
}

// Parse parses one line of input into its syntax tree.
func (r *Runtime) Parse(input string) (*ast.Node, error) {
	return parser.Parse(r.filename, input)
}

// EvalValue parses and evaluates one line of input. Language errors are
// returned as Error values; only syntax errors are Go errors.
func (r *Runtime) EvalValue(input string) (*Value, error) {
	root, err := r.Parse(input)
	if err != nil {
		return nil, err
	}
	return r.evaluator.Eval(reader.Read(root)), nil
}

// Eval evaluates one line of input and returns the printed result.
func (r *Runtime) Eval(input string) (string, error) {
	v, err := r.EvalValue(input)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// LoadReader evaluates src line by line, writing each printed result to
// out when out is non-nil. It stops at the first syntax error.
func (r *Runtime) LoadReader(src io.Reader, out io.Writer) error {
	_, err := r.load(r.filename, src, out)
	return err
}

// LoadFile evaluates a file line by line. See LoadReader.
func (r *Runtime) LoadFile(path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = r.load(path, f, out)
	return err
}

func (r *Runtime) load(name string, src io.Reader, out io.Writer) (int, error) {
	br := bufio.NewReader(src)
	n := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return n, fmt.Errorf("read %s: %w", name, readErr)
		}
		if line == "" && readErr == io.EOF {
			return n, nil
		}
		n++
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) != "" {
			root, err := parser.Parse(name, line)
			if err != nil {
				var se *parser.SyntaxError
				if errors.As(err, &se) {
					se.Line = n
				}
				return n, err
			}
			v := r.evaluator.Eval(reader.Read(root))
			if v.Is(value.Error) {
				r.logger.Debug("line evaluated to error", "source", name, "line", n, "error", v.Err())
			}
			if out != nil {
				fmt.Fprintln(out, v)
			}
		}

		if readErr == io.EOF {
			return n, nil
		}
	}
}

// Bindings returns the bound names in insertion order.
func (r *Runtime) Bindings() []string {
	return r.evaluator.Env().Names()
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}
