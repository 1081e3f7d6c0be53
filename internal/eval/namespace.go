// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the skippy evaluator.
package eval

import "nickandperla.net/skippy/internal/value"

// Environment maps symbol names to values. Implementations copy values in
// on Put and out on Get, so callers always own what they hold.
type Environment interface {
	// Get returns a copy of the bound value, or an Error value if unbound.
	Get(name string) *value.Value
	// Put binds a copy of v to name, replacing any existing binding.
	Put(name string, v *value.Value)
	// Names returns the bound names in insertion order.
	Names() []string
}

type binding struct {
	name string
	val  *value.Value
}

// Namespace is the flat global environment.
type Namespace struct {
	bindings []binding
}

// NewNamespace creates a new empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{}
}

// Get retrieves a copy of the value bound to name.
func (n *Namespace) Get(name string) *value.Value {
	for _, b := range n.bindings {
		if b.name == name {
			return b.val.Copy()
		}
	}
	return value.Err("Unbound symbol '%s'!", name)
}

// Put binds a copy of v to name. The caller keeps ownership of v.
func (n *Namespace) Put(name string, v *value.Value) {
	for i := range n.bindings {
		if n.bindings[i].name == name {
			n.bindings[i].val = v.Copy()
			return
		}
	}
	n.bindings = append(n.bindings, binding{name: name, val: v.Copy()})
}

// Names returns the bound names in insertion order.
func (n *Namespace) Names() []string {
	names := make([]string, len(n.bindings))
	for i, b := range n.bindings {
		names[i] = b.name
	}
	return names
}
