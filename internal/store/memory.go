// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package store

import (
	"sync"

	"nickandperla.net/skippy/internal/value"
)

// Memory is an in-memory store for testing.
type Memory struct {
	mu    sync.RWMutex
	data  map[string]*value.Value
	order []string
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]*value.Value)}
}

// Get retrieves a copy of the binding for name.
func (m *Memory) Get(name string) (*value.Value, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[name]; ok {
		return v.Copy(), nil
	}
	return nil, nil
}

// Put stores a copy of v under name.
func (m *Memory) Put(name string, v *value.Value) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[name]; !ok {
		m.order = append(m.order, name)
	}
	m.data[name] = v.Copy()
	return nil
}

// Names lists bound names in insertion order.
func (m *Memory) Names() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...), nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
