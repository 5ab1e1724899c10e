package product

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindInt
	KindFloat
)

// Value is a normalized cell. The zero Value is empty (unset).
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
}

func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func Int(n int64) Value {
	return Value{Kind: KindInt, Int: n}
}

func Float(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// Any returns the value as a plain Go value suitable for spreadsheet cells.
// Empty values return nil.
func (v Value) Any() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	default:
		return nil
	}
}

// Text renders the value for text outputs. Integral floats keep a trailing
// ".0" so that weights and prices stay recognizable as decimals.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		text := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !strings.ContainsAny(text, ".eEnN") {
			text += ".0"
		}
		return text
	default:
		return ""
	}
}

// Truthy reports whether the value counts as content: non-empty strings and
// non-zero numbers.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindString:
		return v.Str != ""
	case KindInt:
		return v.Int != 0
	case KindFloat:
		return v.Float != 0
	default:
		return false
	}
}

// Row is one converted product. Every target field has a slot.
type Row [NumFields]Value

func (r Row) Get(field Field) Value {
	return r[field]
}

func (r *Row) Set(field Field, value Value) {
	r[field] = value
}
