// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "nickandperla.net/skippy/internal/value"

// BuiltinFunc is the signature for builtin functions. A builtin owns args
// and returns a freshly owned result.
type BuiltinFunc func(e *Evaluator, args *value.Value) *value.Value

// builtinNames lists every name bound at startup and the id of the builtin
// it refers to. Several names may alias one builtin.
var builtinNames = []struct {
	name string
	id   string
}{
	// Variable functions
	{"def", "def"},

	// List functions
	{"list", "list"},
	{"head", "head"},
	{"tail", "tail"},
	{"eval", "eval"},
	{"join", "join"},

	// Mathematical functions
	{"+", "add"},
	{"add", "add"},
	{"-", "sub"},
	{"sub", "sub"},
	{"*", "mul"},
	{"mul", "mul"},
	{"/", "div"},
	{"div", "div"},
	{"%", "mod"},
	{"mod", "mod"},
	{"^", "pow"},
	{"pow", "pow"},
	{"min", "min"},
	{"max", "max"},
}

// getBuiltin returns the builtin function for the given id, or nil if not found.
func getBuiltin(id string) BuiltinFunc {
	switch id {
	case "def":
		return builtinDef
	case "list":
		return builtinList
	case "head":
		return builtinHead
	case "tail":
		return builtinTail
	case "eval":
		return builtinEval
	case "join":
		return builtinJoin
	case "add", "sub", "mul", "div", "mod", "pow", "min", "max":
		return func(e *Evaluator, args *value.Value) *value.Value {
			return builtinOp(e, args, id)
		}
	}
	return nil
}

// AddBuiltins binds every builtin name in env.
func AddBuiltins(env Environment) {
	for _, b := range builtinNames {
		env.Put(b.name, value.Fun(b.id))
	}
}

// BuiltinNames returns every name bound by AddBuiltins.
func BuiltinNames() []string {
	names := make([]string, len(builtinNames))
	for i, b := range builtinNames {
		names[i] = b.name
	}
	return names
}
