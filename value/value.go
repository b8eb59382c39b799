// Package value defines a tagged variant used between the converters and the
// serializer. Every JSON literal produced or consumed by the mapper is one of
// its arms; values the mapper does not specialize travel in the opaque arm.
package value

import "fmt"

// Kind represents value arm
type Kind int

const (
	Null Kind = iota
	String
	Int
	Uint
	Float
	Bool
	Char
	Array
	Opaque
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case String:
		return "string"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Array:
		return "array"
	case Opaque:
		return "opaque"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value represents a tagged scalar, array or opaque value
type Value struct {
	kind   Kind
	text   string
	i      int64
	u      uint64
	f      float64
	bits   int
	b      bool
	r      rune
	items  []Value
	opaque interface{}
}

func NullOf() Value               { return Value{kind: Null} }
func StringOf(s string) Value     { return Value{kind: String, text: s} }
func IntOf(i int64) Value         { return Value{kind: Int, i: i} }
func UintOf(u uint64) Value       { return Value{kind: Uint, u: u} }
func BoolOf(b bool) Value         { return Value{kind: Bool, b: b} }
func CharOf(r rune) Value         { return Value{kind: Char, r: r} }
func ArrayOf(items []Value) Value { return Value{kind: Array, items: items} }

// FloatOf creates a float value, bits (32 or 64) drives the shortest text form
func FloatOf(f float64, bits int) Value {
	if bits != 32 {
		bits = 64
	}
	return Value{kind: Float, f: f, bits: bits}
}

// OpaqueOf wraps a value the mapper does not specialize, on decode it carries the raw token
func OpaqueOf(v interface{}) Value { return Value{kind: Opaque, opaque: v} }

func (v Value) Kind() Kind          { return v.kind }
func (v Value) IsNull() bool        { return v.kind == Null }
func (v Value) Text() string        { return v.text }
func (v Value) Int() int64          { return v.i }
func (v Value) Uint() uint64        { return v.u }
func (v Value) Float() float64      { return v.f }
func (v Value) Bits() int           { return v.bits }
func (v Value) Bool() bool          { return v.b }
func (v Value) Char() rune          { return v.r }
func (v Value) Items() []Value      { return v.items }
func (v Value) Opaque() interface{} { return v.opaque }

// Raw returns the raw token carried by a decoded opaque value
func (v Value) Raw() (string, bool) {
	if v.kind != Opaque {
		return "", false
	}
	raw, ok := v.opaque.(string)
	return raw, ok
}
