// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "nickandperla.net/skippy/internal/value"

// builtinDef binds each symbol of its first argument to the matching
// remaining argument: (def {a b} 1 2).
func builtinDef(e *Evaluator, args *value.Value) *value.Value {
	if err := assertSome("def", args); err != nil {
		return err
	}
	if err := assertType("def", args, 0, value.QExpr); err != nil {
		return err
	}

	syms := args.Cell(0)
	for i, s := range syms.Cells() {
		if !s.Is(value.Symbol) {
			return value.Err("Function 'def' cannot define non-symbol! Got %s at index %d.", s.Kind(), i)
		}
	}

	if syms.Len() != args.Len()-1 {
		return value.Err("Function 'def' cannot define incorrect number of values to symbols! Got %d symbols and %d values.",
			syms.Len(), args.Len()-1)
	}

	for i, s := range syms.Cells() {
		e.define(s.Sym(), args.Cell(i+1))
	}
	return value.NewSExpr()
}
