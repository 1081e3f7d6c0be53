// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "nickandperla.net/skippy/internal/value"

// Argument checks return nil when the check passes and an Error value
// otherwise. The builtin returns that Error and drops its args with it.

func assertArgs(name string, args *value.Value, n int) *value.Value {
	if args.Len() != n {
		return value.Err("Function '%s' passed incorrect number of arguments. Got %d, but expected %d.",
			name, args.Len(), n)
	}
	return nil
}

func assertType(name string, args *value.Value, i int, k value.Kind) *value.Value {
	if got := args.Cell(i).Kind(); got != k {
		return value.Err("Function '%s' passed incorrect type for argument %d. Got %s, but expected %s.",
			name, i, got, k)
	}
	return nil
}

func assertNotEmpty(name string, args *value.Value, i int) *value.Value {
	if args.Cell(i).Len() == 0 {
		return value.Err("Function '%s' passed empty Q-expression!", name)
	}
	return nil
}

func assertSome(name string, args *value.Value) *value.Value {
	if args.Len() == 0 {
		return value.Err("Function '%s' passed no arguments!", name)
	}
	return nil
}
