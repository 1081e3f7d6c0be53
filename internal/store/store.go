// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package store provides persistence for skippy bindings.
package store

import "nickandperla.net/skippy/internal/value"

// Store is the interface for binding persistence.
type Store interface {
	// Get retrieves a binding by name. Returns nil if not found.
	Get(name string) (*value.Value, error)
	// Put stores a binding by name, overwriting if it exists.
	Put(name string, v *value.Value) error
	// Names lists bound names in the order they were first stored.
	Names() ([]string, error)
	// Close releases resources.
	Close() error
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*SQLite)(nil)
)
