// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package value defines skippy runtime values.
//
// A list Value exclusively owns its cells. Functions that take ownership of
// a Value say so; callers must not touch a Value after handing it over.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the active variant of a Value.
type Kind int

const (
	Number Kind = iota
	Error
	Symbol
	Func
	SExpr
	QExpr
)

// String returns the user-facing type name, as used in error messages.
func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Error:
		return "Error"
	case Symbol:
		return "Symbol"
	case Func:
		return "Function"
	case SExpr:
		return "S-Expression"
	case QExpr:
		return "Q-Expression"
	}
	return "Unknown"
}

// IsList returns true for S- and Q-expressions.
func (k Kind) IsList() bool { return k == SExpr || k == QExpr }

// Value is a tagged runtime datum.
type Value struct {
	kind  Kind
	num   float64
	str   string // Error message, symbol name or builtin id
	cells []*Value
}

// Num creates a Number.
func Num(x float64) *Value { return &Value{kind: Number, num: x} }

// Err creates an Error with a formatted message.
func Err(format string, args ...any) *Value {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Value{kind: Error, str: msg}
}

// Sym creates a Symbol.
func Sym(name string) *Value { return &Value{kind: Symbol, str: name} }

// Fun creates a reference to the builtin with the given id.
func Fun(id string) *Value { return &Value{kind: Func, str: id} }

// NewSExpr creates an S-expression owning the given cells.
func NewSExpr(cells ...*Value) *Value { return &Value{kind: SExpr, cells: cells} }

// NewQExpr creates a Q-expression owning the given cells.
func NewQExpr(cells ...*Value) *Value { return &Value{kind: QExpr, cells: cells} }

// Kind returns the active variant.
func (v *Value) Kind() Kind { return v.kind }

// Is reports whether v is of kind k.
func (v *Value) Is(k Kind) bool { return v.kind == k }

func (v *Value) must(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("value: %s accessed as %s", v.kind, k))
	}
}

func (v *Value) mustList() {
	if !v.kind.IsList() {
		panic(fmt.Sprintf("value: %s accessed as list", v.kind))
	}
}

// Num returns the number held by a Number.
func (v *Value) Num() float64 { v.must(Number); return v.num }

// SetNum replaces the number held by a Number.
func (v *Value) SetNum(x float64) { v.must(Number); v.num = x }

// Err returns the message held by an Error.
func (v *Value) Err() string { v.must(Error); return v.str }

// Sym returns the name held by a Symbol.
func (v *Value) Sym() string { v.must(Symbol); return v.str }

// FuncID returns the builtin id held by a Func.
func (v *Value) FuncID() string { v.must(Func); return v.str }

// Len returns the number of cells in a list.
func (v *Value) Len() int { v.mustList(); return len(v.cells) }

// Cell returns the i-th cell of a list. The list keeps ownership.
func (v *Value) Cell(i int) *Value { v.mustList(); return v.cells[i] }

// SetCell replaces the i-th cell of a list, taking ownership of x.
func (v *Value) SetCell(i int, x *Value) { v.mustList(); v.cells[i] = x }

// Cells returns the cells of a list. The list keeps ownership.
func (v *Value) Cells() []*Value { v.mustList(); return v.cells }

// Retag switches a list between S- and Q-expression in place.
func (v *Value) Retag(k Kind) *Value {
	v.mustList()
	if !k.IsList() {
		panic(fmt.Sprintf("value: cannot retag list as %s", k))
	}
	v.kind = k
	return v
}

// Add appends x to a list, taking ownership of x.
func (v *Value) Add(x *Value) *Value {
	v.mustList()
	v.cells = append(v.cells, x)
	return v
}

// Pop removes the i-th cell from a list and hands it to the caller.
func (v *Value) Pop(i int) *Value {
	v.mustList()
	x := v.cells[i]
	copy(v.cells[i:], v.cells[i+1:])
	v.cells[len(v.cells)-1] = nil
	v.cells = v.cells[:len(v.cells)-1]
	return x
}

// Take removes the i-th cell and releases the rest of the list. Only the
// returned cell survives; v is left empty.
func (v *Value) Take(i int) *Value {
	x := v.Pop(i)
	v.cells = nil
	return x
}

// Join moves every cell of y onto the end of v and releases y.
func (v *Value) Join(y *Value) *Value {
	v.mustList()
	y.mustList()
	v.cells = append(v.cells, y.cells...)
	y.cells = nil
	return v
}

// Copy returns a deep copy of v.
func (v *Value) Copy() *Value {
	x := &Value{kind: v.kind, num: v.num, str: v.str}
	if v.kind.IsList() {
		x.cells = make([]*Value, len(v.cells))
		for i, c := range v.cells {
			x.cells[i] = c.Copy()
		}
	}
	return x
}

// Equal reports whether v and w are structurally equal.
func (v *Value) Equal(w *Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Number:
		return v.num == w.num
	case Error, Symbol, Func:
		return v.str == w.str
	}
	if len(v.cells) != len(w.cells) {
		return false
	}
	for i := range v.cells {
		if !v.cells[i].Equal(w.cells[i]) {
			return false
		}
	}
	return true
}

// String returns the printed form of v.
func (v *Value) String() string {
	var sb strings.Builder
	v.write(&sb, false)
	return sb.String()
}

// Source returns a form of v that reads back to an equivalent value, with
// builtins written as their id symbol instead of "<function>".
func (v *Value) Source() string {
	var sb strings.Builder
	v.write(&sb, true)
	return sb.String()
}

func (v *Value) write(sb *strings.Builder, source bool) {
	switch v.kind {
	case Number:
		sb.WriteString(FormatNumber(v.num))
	case Error:
		sb.WriteString("Error: ")
		sb.WriteString(v.str)
	case Symbol:
		sb.WriteString(v.str)
	case Func:
		if source {
			sb.WriteString(v.str)
		} else {
			sb.WriteString("<function>")
		}
	case SExpr:
		v.writeCells(sb, '(', ')', source)
	case QExpr:
		v.writeCells(sb, '{', '}', source)
	}
}

func (v *Value) writeCells(sb *strings.Builder, open, close byte, source bool) {
	sb.WriteByte(open)
	for i, c := range v.cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.write(sb, source)
	}
	sb.WriteByte(close)
}

// FormatNumber renders x in plain decimal with the fewest digits that
// round-trip.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
