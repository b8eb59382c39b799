package shape

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// ShapeKind distinguishes constructor built shapes from field settable ones
type ShapeKind int

const (
	//MutableShape is zero value constructed, fields are set individually
	MutableShape ShapeKind = iota
	//FixedShape is built with a single positional constructor
	FixedShape
)

func (k ShapeKind) String() string {
	if k == FixedShape {
		return "FixedShape"
	}
	return "MutableShape"
}

// ErrNoConstructor is returned when a fixed shape has no usable positional constructor
var ErrNoConstructor = errors.New("no canonical constructor")

// Fixed is implemented by immutable record types that can only be built with a registered positional constructor
type Fixed interface {
	FixedShape()
}

var fixedType = reflect.TypeOf((*Fixed)(nil)).Elem()

type (
	//Field represents a shape field
	Field struct {
		Name     string
		GoName   string
		Tag      TypeTag
		Ordinal  int
		Type     reflect.Type
		Optional bool
		xField   *xunsafe.Field
	}

	//Descriptor represents a shape: ordered fields and construction strategy
	Descriptor struct {
		Type        reflect.Type
		Kind        ShapeKind
		Fields      []*Field
		byName      map[string]*Field
		constructor *constructor
	}

	constructor struct {
		fn         reflect.Value
		returnsPtr bool
		returnsErr bool
	}
)

// Pointer returns field address for supplied struct pointer
func (f *Field) Pointer(structPtr unsafe.Pointer) unsafe.Pointer {
	return f.xField.Pointer(structPtr)
}

// Value returns addressable field value for supplied struct pointer
func (f *Field) Value(structPtr unsafe.Pointer) reflect.Value {
	return reflect.NewAt(f.Type, f.Pointer(structPtr)).Elem()
}

// Lookup returns a field by JSON name or nil
func (d *Descriptor) Lookup(name string) *Field {
	return d.byName[name]
}

// HasConstructor returns true if positional constructor was registered
func (d *Descriptor) HasConstructor() bool {
	return d.constructor != nil
}

// Construct invokes positional constructor with args in field order, it returns struct value
func (d *Descriptor) Construct(args []reflect.Value) (reflect.Value, error) {
	if d.constructor == nil {
		return reflect.Value{}, fmt.Errorf("%w found for shape: %s", ErrNoConstructor, d.Type.String())
	}
	if len(args) != len(d.Fields) {
		return reflect.Value{}, fmt.Errorf("%w: %s expects %d arguments, but had %d", ErrNoConstructor, d.Type.String(), len(d.Fields), len(args))
	}
	out := d.constructor.fn.Call(args)
	if d.constructor.returnsErr {
		if err, _ := out[1].Interface().(error); err != nil {
			return reflect.Value{}, err
		}
	}
	result := out[0]
	if d.constructor.returnsPtr {
		if result.IsNil() {
			return reflect.Value{}, fmt.Errorf("constructor for %s returned nil", d.Type.String())
		}
		result = result.Elem()
	}
	return result, nil
}

func newDescriptor(rType reflect.Type, kind ShapeKind, fields []*Field, ctor *constructor) *Descriptor {
	ret := &Descriptor{Type: rType, Kind: kind, Fields: fields, byName: make(map[string]*Field, len(fields)), constructor: ctor}
	for _, field := range fields {
		if _, ok := ret.byName[field.Name]; !ok {
			ret.byName[field.Name] = field
		}
	}
	return ret
}

func isFixed(rType reflect.Type) bool {
	return rType.Implements(fixedType) || reflect.PtrTo(rType).Implements(fixedType)
}

func newConstructor(fn interface{}) (reflect.Type, *constructor, error) {
	fnValue := reflect.ValueOf(fn)
	if !fnValue.IsValid() || fnValue.Kind() != reflect.Func || fnValue.IsNil() {
		return nil, nil, fmt.Errorf("invalid constructor: expected func, but had %T", fn)
	}
	fnType := fnValue.Type()
	if fnType.IsVariadic() {
		return nil, nil, fmt.Errorf("invalid constructor %s: variadic constructors are not supported", fnType.String())
	}
	ret := &constructor{fn: fnValue}
	switch fnType.NumOut() {
	case 1:
	case 2:
		if fnType.Out(1) != errorType {
			return nil, nil, fmt.Errorf("invalid constructor %s: second result has to be error", fnType.String())
		}
		ret.returnsErr = true
	default:
		return nil, nil, fmt.Errorf("invalid constructor %s: expected (T) or (T, error) results", fnType.String())
	}
	outType := fnType.Out(0)
	if outType.Kind() == reflect.Ptr {
		ret.returnsPtr = true
		outType = outType.Elem()
	}
	if outType.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("invalid constructor %s: result is not a struct", fnType.String())
	}
	return outType, ret, nil
}

func (c *constructor) validate(rType reflect.Type, fields []*Field) error {
	fnType := c.fn.Type()
	if fnType.NumIn() != len(fields) {
		return fmt.Errorf("%w for shape %s: constructor has %d parameters, but shape declares %d fields", ErrNoConstructor, rType.String(), fnType.NumIn(), len(fields))
	}
	for i, field := range fields {
		if in := fnType.In(i); in != field.Type {
			return fmt.Errorf("%w for shape %s: parameter %d is %s, but field %s is %s", ErrNoConstructor, rType.String(), i, in.String(), field.GoName, field.Type.String())
		}
	}
	return nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()
