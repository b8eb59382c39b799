package shape

import (
	"reflect"
)

// Kind identifies a type tag
type Kind int

const (
	Opaque Kind = iota
	String
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Bool
	CharKind
	FixedArray
	Sequence
)

var kindNames = [...]string{
	Opaque:     "Opaque",
	String:     "String",
	Int8:       "Int8",
	Int16:      "Int16",
	Int32:      "Int32",
	Int64:      "Int64",
	Uint8:      "Uint8",
	Uint16:     "Uint16",
	Uint32:     "Uint32",
	Uint64:     "Uint64",
	Float32:    "Float32",
	Float64:    "Float64",
	Bool:       "Bool",
	CharKind:   "Char",
	FixedArray: "FixedArray",
	Sequence:   "Sequence",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// IsContainer returns true for FixedArray and Sequence
func (k Kind) IsContainer() bool {
	return k == FixedArray || k == Sequence
}

// IsScalar returns true for kinds handled by the scalar converter
func (k Kind) IsScalar() bool {
	return k != Opaque && !k.IsContainer()
}

// BitSize returns numeric width of integer and float kinds, 0 otherwise
func (k Kind) BitSize() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	}
	return 0
}

// TypeTag represents a declared field type as seen by the converters
type TypeTag struct {
	Kind Kind
	Elem *TypeTag //FixedArray and Sequence element
}

func (t TypeTag) String() string {
	if t.Kind.IsContainer() && t.Elem != nil {
		return t.Kind.String() + "(" + t.Elem.String() + ")"
	}
	return t.Kind.String()
}

// TagOf returns a type tag for supplied go type, pointers are transparent
func TagOf(rType reflect.Type) TypeTag {
	if rType == nil {
		return TypeTag{Kind: Opaque}
	}
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType == charType {
		return TypeTag{Kind: CharKind}
	}
	switch rType.Kind() {
	case reflect.String:
		return TypeTag{Kind: String}
	case reflect.Int8:
		return TypeTag{Kind: Int8}
	case reflect.Int16:
		return TypeTag{Kind: Int16}
	case reflect.Int32:
		return TypeTag{Kind: Int32}
	case reflect.Int, reflect.Int64:
		return TypeTag{Kind: Int64}
	case reflect.Uint8:
		return TypeTag{Kind: Uint8}
	case reflect.Uint16:
		return TypeTag{Kind: Uint16}
	case reflect.Uint32:
		return TypeTag{Kind: Uint32}
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return TypeTag{Kind: Uint64}
	case reflect.Float32:
		return TypeTag{Kind: Float32}
	case reflect.Float64:
		return TypeTag{Kind: Float64}
	case reflect.Bool:
		return TypeTag{Kind: Bool}
	case reflect.Array:
		elem := TagOf(rType.Elem())
		return TypeTag{Kind: FixedArray, Elem: &elem}
	case reflect.Slice:
		if rType == rawMessageType {
			return TypeTag{Kind: Opaque}
		}
		elem := TagOf(rType.Elem())
		return TypeTag{Kind: Sequence, Elem: &elem}
	}
	return TypeTag{Kind: Opaque}
}

// IsShapeType returns true if supplied type (or pointer to it) can be materialized as a shape
func IsShapeType(rType reflect.Type) bool {
	return EnsureStructType(rType) != nil
}

// EnsureStructType returns struct type for struct or pointer to struct, nil otherwise
func EnsureStructType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return t.Elem()
		}
	}
	return nil
}
