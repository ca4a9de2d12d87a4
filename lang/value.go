package lang

import "math"

// ValueType enumerates the different runtime value categories.
type ValueType int

const (
	TypeNumber ValueType = iota
	TypeRational
	TypeBool
	TypeString
	TypeSymbol
	TypeKeyword
	TypeList
	TypeSet
	TypeMap
)

var typeNames = [...]string{
	TypeNumber:   "number",
	TypeRational: "rational",
	TypeBool:     "boolean",
	TypeString:   "string",
	TypeSymbol:   "symbol",
	TypeKeyword:  "keyword",
	TypeList:     "list",
	TypeSet:      "set",
	TypeMap:      "map",
}

// String returns the lowercase type name used in error messages.
func (t ValueType) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Value represents both parsed syntax and runtime objects. Evaluated
// results are themselves valid syntax nodes.
type Value struct {
	Type    ValueType
	payload interface{}
}

// Rational is an exact fraction kept in lowest terms with a positive
// denominator. Construct it through NewRational.
type Rational struct {
	Num int64
	Den int64
}

// Float returns the fraction as a floating value.
func (r *Rational) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

var (
	True  = BoolValue(true)
	False = BoolValue(false)
)

// Number constructs a plain numeric Value.
func Number(f float64) Value {
	return Value{Type: TypeNumber, payload: f}
}

// BoolValue returns the boolean Value equivalent.
func BoolValue(b bool) Value {
	return Value{Type: TypeBool, payload: b}
}

// StringValue constructs a string Value.
func StringValue(s string) Value {
	return Value{Type: TypeString, payload: s}
}

// List constructs an ordered sequence from the provided values.
func List(vals ...Value) Value {
	items := make([]Value, len(vals))
	copy(items, vals)
	return Value{Type: TypeList, payload: items}
}

// SetValue wraps s.
func SetValue(s *Set) Value {
	return Value{Type: TypeSet, payload: s}
}

// MapValue wraps m.
func MapValue(m *Map) Value {
	return Value{Type: TypeMap, payload: m}
}

// Num returns the payload of a Number, or 0 for other values.
func (v Value) Num() float64 {
	if f, ok := v.payload.(float64); ok {
		return f
	}
	return 0
}

// Rat returns the fraction of a Rational, or nil.
func (v Value) Rat() *Rational {
	if r, ok := v.payload.(*Rational); ok {
		return r
	}
	return nil
}

// Bool returns the payload of a boolean Value.
func (v Value) Bool() bool {
	if b, ok := v.payload.(bool); ok {
		return b
	}
	return false
}

// Str returns the contents of a string Value.
func (v Value) Str() string {
	if s, ok := v.payload.(string); ok {
		return s
	}
	return ""
}

// Atom returns the interned handle of a symbol or keyword.
func (v Value) Atom() *Atom {
	if a, ok := v.payload.(*Atom); ok {
		return a
	}
	return nil
}

// Name returns the name of a symbol or keyword, or "" for other values.
func (v Value) Name() string {
	if a := v.Atom(); a != nil {
		return a.Name
	}
	return ""
}

// Items returns the elements of a list. The slice must not be modified.
func (v Value) Items() []Value {
	if items, ok := v.payload.([]Value); ok {
		return items
	}
	return nil
}

// Set returns the underlying set, or nil.
func (v Value) Set() *Set {
	if s, ok := v.payload.(*Set); ok {
		return s
	}
	return nil
}

// Map returns the underlying map, or nil.
func (v Value) Map() *Map {
	if m, ok := v.payload.(*Map); ok {
		return m
	}
	return nil
}

// IsNumeric reports whether v is a Number or a Rational.
func (v Value) IsNumeric() bool {
	return v.Type == TypeNumber || v.Type == TypeRational
}

// Float returns the floating view of a Number or Rational.
func (v Value) Float() (float64, bool) {
	switch v.Type {
	case TypeNumber:
		return v.Num(), true
	case TypeRational:
		if r := v.Rat(); r != nil {
			return r.Float(), true
		}
	}
	return 0, false
}

// IsTruthy reports whether v counts as true in a boolean context.
// false, 0, NaN and the empty string are falsy.
func IsTruthy(v Value) bool {
	switch v.Type {
	case TypeBool:
		return v.Bool()
	case TypeNumber:
		f := v.Num()
		return f != 0 && !math.IsNaN(f)
	case TypeString:
		return v.Str() != ""
	default:
		return true
	}
}
