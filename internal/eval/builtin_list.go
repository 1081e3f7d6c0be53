// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "nickandperla.net/skippy/internal/value"

// builtinList turns its argument S-expression into a Q-expression in place.
func builtinList(e *Evaluator, args *value.Value) *value.Value {
	return args.Retag(value.QExpr)
}

func builtinHead(e *Evaluator, args *value.Value) *value.Value {
	if err := assertArgs("head", args, 1); err != nil {
		return err
	}
	if err := assertType("head", args, 0, value.QExpr); err != nil {
		return err
	}
	if err := assertNotEmpty("head", args, 0); err != nil {
		return err
	}

	v := args.Take(0)
	for v.Len() > 1 {
		v.Pop(1)
	}
	return v
}

func builtinTail(e *Evaluator, args *value.Value) *value.Value {
	if err := assertArgs("tail", args, 1); err != nil {
		return err
	}
	if err := assertType("tail", args, 0, value.QExpr); err != nil {
		return err
	}
	if err := assertNotEmpty("tail", args, 0); err != nil {
		return err
	}

	v := args.Take(0)
	v.Pop(0)
	return v
}

// builtinEval runs a Q-expression as code.
func builtinEval(e *Evaluator, args *value.Value) *value.Value {
	if err := assertArgs("eval", args, 1); err != nil {
		return err
	}
	if err := assertType("eval", args, 0, value.QExpr); err != nil {
		return err
	}

	x := args.Take(0)
	return e.Eval(x.Retag(value.SExpr))
}

func builtinJoin(e *Evaluator, args *value.Value) *value.Value {
	for i := range args.Cells() {
		if err := assertType("join", args, i, value.QExpr); err != nil {
			return err
		}
	}
	if args.Len() == 0 {
		return value.NewQExpr()
	}

	x := args.Pop(0)
	for args.Len() > 0 {
		x.Join(args.Pop(0))
	}
	return x
}
