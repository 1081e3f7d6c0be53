// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"math"

	"nickandperla.net/skippy/internal/value"
)

// opNames maps arithmetic builtin ids to the name used in error messages.
var opNames = map[string]string{
	"add": "+",
	"sub": "-",
	"mul": "*",
	"div": "/",
	"mod": "%",
	"pow": "^",
	"min": "min",
	"max": "max",
}

// builtinOp folds args left to right with the operator id.
func builtinOp(e *Evaluator, args *value.Value, id string) *value.Value {
	name := opNames[id]
	if err := assertSome(name, args); err != nil {
		return err
	}
	for i := range args.Cells() {
		if err := assertType(name, args, i, value.Number); err != nil {
			return err
		}
	}

	x := args.Pop(0)

	// Unary minus negates.
	if id == "sub" && args.Len() == 0 {
		x.SetNum(-x.Num())
	}

	for args.Len() > 0 {
		y := args.Pop(0).Num()
		acc := x.Num()

		switch id {
		case "add":
			acc += y
		case "sub":
			acc -= y
		case "mul":
			acc *= y
		case "div":
			if y == 0 {
				return value.Err("Division by zero!")
			}
			acc /= y
		case "mod":
			// Both operands are truncated to integers first.
			d := int64(y)
			if d == 0 {
				return value.Err("Division by zero!")
			}
			acc = float64(int64(acc) % d)
		case "pow":
			acc = math.Pow(acc, y)
		case "min":
			if acc > y {
				acc = y
			}
		case "max":
			if acc <= y {
				acc = y
			}
		}

		x.SetNum(acc)
	}
	return x
}
