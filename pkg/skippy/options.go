// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package skippy

import (
	"fmt"
	"log/slog"

	"nickandperla.net/skippy/internal/eval"
	"nickandperla.net/skippy/internal/stdlib"
	"nickandperla.net/skippy/internal/store"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithSQLiteStore configures SQLite persistence at the given path.
// An open failure is reported by New.
func WithSQLiteStore(path string) Option {
	return func(r *Runtime) {
		s, err := store.NewSQLite(path)
		if err != nil {
			r.err = fmt.Errorf("open store %s: %w", path, err)
			return
		}
		r.store = s
	}
}

// WithMemoryStore configures an in-memory store (for testing).
func WithMemoryStore() Option {
	return func(r *Runtime) {
		r.store = store.NewMemory()
	}
}

// WithStore configures a custom store. The Runtime closes it on Close.
func WithStore(s Store) Option {
	return func(r *Runtime) {
		r.store = s
	}
}

// WithPersistMode sets the persistence mode.
func WithPersistMode(mode PersistMode) Option {
	return func(r *Runtime) {
		r.persistMode = mode
	}
}

// WithLogger sets the structured logger used by the runtime and evaluator.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithPrelude sets a prelude source to be loaded on startup. By default no
// prelude is loaded and only the builtins are bound.
func WithPrelude(source string) Option {
	return func(r *Runtime) {
		r.prelude = source
	}
}

// WithStdlib loads the embedded standard prelude on startup.
func WithStdlib() Option {
	return WithPrelude(stdlib.Prelude)
}

// WithFilename sets the name used in syntax error diagnostics.
func WithFilename(name string) Option {
	return func(r *Runtime) {
		r.filename = name
	}
}

// Store interface for custom stores.
type Store = store.Store

// PersistMode controls when bindings are persisted.
type PersistMode = eval.PersistMode

// Persist mode constants.
const (
	PersistNever  = eval.PersistNever
	PersistAlways = eval.PersistAlways
)

// ParsePersistMode parses a string into a PersistMode.
func ParsePersistMode(s string) (PersistMode, bool) {
	return eval.ParsePersistMode(s)
}
