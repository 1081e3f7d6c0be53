// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"
	"log/slog"
	"strings"

	"nickandperla.net/skippy/internal/store"
	"nickandperla.net/skippy/internal/value"
)

// PersistMode controls when bindings are written to the store.
type PersistMode int

const (
	// PersistNever keeps bindings in memory only.
	PersistNever PersistMode = iota
	// PersistAlways writes every def through to the store and restores
	// stored bindings on startup.
	PersistAlways
)

// String returns the string representation of a PersistMode.
func (m PersistMode) String() string {
	switch m {
	case PersistNever:
		return "NEVER"
	case PersistAlways:
		return "ALWAYS"
	default:
		return "UNKNOWN"
	}
}

// ParsePersistMode parses a string into a PersistMode.
func ParsePersistMode(s string) (PersistMode, bool) {
	switch strings.ToUpper(s) {
	case "NEVER", "":
		return PersistNever, true
	case "ALWAYS":
		return PersistAlways, true
	default:
		return PersistNever, false
	}
}

// Evaluator reduces skippy values against an environment.
type Evaluator struct {
	env         Environment
	store       store.Store
	persistMode PersistMode
	logger      *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithEnvironment replaces the default namespace. Builtins are not added to
// a supplied environment; call AddBuiltins if it needs them.
func WithEnvironment(env Environment) Option {
	return func(e *Evaluator) { e.env = env }
}

// WithStore sets the persistence store.
func WithStore(s store.Store) Option {
	return func(e *Evaluator) { e.store = s }
}

// WithPersistMode sets the persistence mode.
func WithPersistMode(mode PersistMode) Option {
	return func(e *Evaluator) { e.persistMode = mode }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates a new Evaluator with the given options. Unless an environment
// is supplied, it starts from a namespace holding every builtin.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.env == nil {
		ns := NewNamespace()
		AddBuiltins(ns)
		e.env = ns
	}
	return e
}

// SetPersistMode changes the persistence mode for later defs.
func (e *Evaluator) SetPersistMode(mode PersistMode) {
	e.persistMode = mode
}

// Env returns the evaluator's environment.
func (e *Evaluator) Env() Environment {
	return e.env
}

// Eval reduces v to its result. Eval takes ownership of v.
func (e *Evaluator) Eval(v *value.Value) *value.Value {
	switch v.Kind() {
	case value.Symbol:
		return e.env.Get(v.Sym())
	case value.SExpr:
		return e.evalSExpr(v)
	}
	// Numbers, errors, functions and Q-expressions evaluate to themselves.
	return v
}

func (e *Evaluator) evalSExpr(v *value.Value) *value.Value {
	for i, c := range v.Cells() {
		v.SetCell(i, e.Eval(c))
	}

	// Every cell is evaluated before the scan, so the leftmost error wins.
	for i, c := range v.Cells() {
		if c.Is(value.Error) {
			return v.Take(i)
		}
	}

	switch v.Len() {
	case 0:
		return v
	case 1:
		return v.Take(0)
	}

	f := v.Pop(0)
	if !f.Is(value.Func) {
		return value.Err("First element is not a function!")
	}
	return e.call(f.FuncID(), v)
}

// call applies the builtin with the given id to args, handing args over.
func (e *Evaluator) call(id string, args *value.Value) *value.Value {
	fn := getBuiltin(id)
	if fn == nil {
		return value.Err("Unknown builtin '%s'!", id)
	}
	e.logger.Debug("apply builtin", "id", id, "argc", args.Len())
	return fn(e, args)
}

// define binds name in the environment and writes it through to the store
// when persistence is on.
func (e *Evaluator) define(name string, v *value.Value) {
	e.env.Put(name, v)
	e.logger.Debug("define", "name", name, "kind", v.Kind().String())

	if e.persistMode != PersistAlways || e.store == nil {
		return
	}
	if err := e.store.Put(name, v); err != nil {
		e.logger.Warn("persist binding failed", "name", name, "error", err)
	}
}

// Restore loads every stored binding into the environment.
func (e *Evaluator) Restore() error {
	if e.store == nil {
		return nil
	}
	names, err := e.store.Names()
	if err != nil {
		return fmt.Errorf("list stored bindings: %w", err)
	}
	for _, name := range names {
		v, err := e.store.Get(name)
		if err != nil {
			return fmt.Errorf("load binding %s: %w", name, err)
		}
		if v == nil {
			continue
		}
		e.env.Put(name, v)
	}
	e.logger.Debug("restored bindings", "count", len(names))
	return nil
}
