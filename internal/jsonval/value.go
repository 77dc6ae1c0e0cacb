// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package jsonval

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies which JSON shape a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one decoded JSON value. The zero Value is null. Values are
// immutable once constructed; object member order is the order keys appeared
// in the source text (or were passed to ObjectValue).
type Value struct {
	kind   Kind
	boolv  bool
	num    json.Number
	str    string
	arr    []Value
	keys   []string
	fields map[string]Value
}

// Member is one key/value pair of an object, used when building values by
// hand (tests, mostly).
type Member struct {
	Key   string
	Value Value
}

// NullValue returns the null value.
func NullValue() Value { return Value{kind: Null} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: Bool, boolv: b} }

// NumberValue returns a numeric value holding the given literal.
func NumberValue(n json.Number) Value { return Value{kind: Number, num: n} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// ArrayValue returns an array of the given elements.
func ArrayValue(elems ...Value) Value {
	return Value{kind: Array, arr: elems}
}

// ObjectValue returns an object whose member order follows the argument
// order. Duplicate keys keep the last value but the first position.
func ObjectValue(members ...Member) Value {
	v := Value{kind: Object, fields: make(map[string]Value, len(members))}
	for _, m := range members {
		if _, ok := v.fields[m.Key]; !ok {
			v.keys = append(v.keys, m.Key)
		}
		v.fields[m.Key] = m.Value
	}
	return v
}

// Kind reports the value's shape tag.
func (v Value) Kind() Kind { return v.kind }

// Composite reports whether the value is an array or object. Null is never
// composite, which keeps null vs {} from recursing during comparison.
func (v Value) Composite() bool { return v.kind == Array || v.kind == Object }

// Bool returns the boolean payload. Valid only when Kind() == Bool.
func (v Value) Bool() bool { return v.boolv }

// Number returns the numeric literal. Valid only when Kind() == Number.
func (v Value) Number() json.Number { return v.num }

// Str returns the string payload. Valid only when Kind() == String.
func (v Value) Str() string { return v.str }

// Len returns the element count for arrays and the member count for objects,
// and 0 for everything else.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.keys)
	default:
		return 0
	}
}

// Index returns the i-th array element. Valid only when Kind() == Array and
// 0 <= i < Len().
func (v Value) Index(i int) Value { return v.arr[i] }

// Keys returns the object's keys in insertion order. The caller must not
// mutate the returned slice.
func (v Value) Keys() []string { return v.keys }

// Field returns the member value for key and whether it exists.
func (v Value) Field(key string) (Value, bool) {
	val, ok := v.fields[key]
	return val, ok
}

// Equal reports strict deep equality of two values: same kind, no coercion
// between types, numbers compared numerically (1 == 1.0), arrays element by
// element, objects member by member with key sets equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.boolv == b.boolv
	case Number:
		return numberEqual(a.num, b.num)
	case String:
		return a.str == b.str
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for _, k := range a.keys {
			bv, ok := b.fields[k]
			if !ok || !Equal(a.fields[k], bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// numberEqual compares two JSON number literals by numeric value, so 1, 1.0
// and 1e0 are all equal. Literals that fail to parse (which the decoder never
// produces) fall back to textual comparison.
func numberEqual(a, b json.Number) bool {
	af, aerr := a.Float64()
	bf, berr := b.Float64()
	if aerr != nil || berr != nil {
		return a.String() == b.String()
	}
	return af == bf
}

// String renders the value as a compact JSON literal.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb, "", "")
	return sb.String()
}

// Pretty renders the value as indented JSON, preserving object member order.
func (v Value) Pretty(indent string) string {
	var sb strings.Builder
	v.write(&sb, "", indent)
	return sb.String()
}

// Interface converts the value to plain Go types: nil, bool, json.Number,
// string, []any, map[string]any. Object member order is lost; callers that
// care about order walk the Value directly.
func (v Value) Interface() any {
	switch v.kind {
	case Null:
		return nil
	case Bool:
		return v.boolv
	case Number:
		return v.num
	case String:
		return v.str
	case Array:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case Object:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.fields[k].Interface()
		}
		return out
	default:
		return nil
	}
}

func (v Value) write(sb *strings.Builder, prefix, indent string) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.boolv))
	case Number:
		sb.WriteString(v.num.String())
	case String:
		sb.WriteString(quote(v.str))
	case Array:
		if len(v.arr) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[")
		inner := prefix + indent
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteString(",")
			}
			if indent != "" {
				sb.WriteString("\n" + inner)
			}
			e.write(sb, inner, indent)
		}
		if indent != "" {
			sb.WriteString("\n" + prefix)
		}
		sb.WriteString("]")
	case Object:
		if len(v.keys) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{")
		inner := prefix + indent
		for i, k := range v.keys {
			if i > 0 {
				sb.WriteString(",")
			}
			if indent != "" {
				sb.WriteString("\n" + inner)
			}
			sb.WriteString(quote(k))
			sb.WriteString(":")
			if indent != "" {
				sb.WriteString(" ")
			}
			v.fields[k].write(sb, inner, indent)
		}
		if indent != "" {
			sb.WriteString("\n" + prefix)
		}
		sb.WriteString("}")
	}
}

// quote produces a JSON string literal. json.Marshal never fails for a
// string, so the error is discarded.
func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
